package models

import (
	"fmt"
	"strings"
)

const DefaultTemplateCategory = "General"

type Template struct {
	Name      string `json:"name"`
	Category  string `json:"category,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

func (t Template) WithDefaults() Template {
	if strings.TrimSpace(t.Category) == "" {
		t.Category = DefaultTemplateCategory
	}
	return t
}

// VoiceOption is a selectable narrator voice. Older backends send
// display_name instead of name.
type VoiceOption struct {
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	Description string `json:"description,omitempty"`
}

func (v VoiceOption) WithDefaults() VoiceOption {
	if strings.TrimSpace(v.Name) == "" {
		v.Name = v.DisplayName
	}
	if strings.TrimSpace(v.DisplayName) == "" {
		v.DisplayName = v.Name
	}
	return v
}

// Label is what the user sees when picking a voice.
func (v VoiceOption) Label() string {
	if v.Description == "" {
		return v.DisplayName
	}
	return fmt.Sprintf("%s (%s)", v.DisplayName, v.Description)
}

// Plan is a credit plan; Price is in whole currency units.
type Plan struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Features string `json:"features,omitempty"`
}

func (p Plan) IsFree() bool { return p.Price <= 0 }

// FallbackTemplates is shown when /templates fails or returns nothing.
func FallbackTemplates() []Template {
	return []Template{
		{Name: "Motivation", Category: "Inspiration"},
		{Name: "Promo", Category: "Marketing"},
		{Name: "Explainer", Category: "Education"},
		{Name: "Kids", Category: "Cartoon"},
		{Name: "Event", Category: "Celebration"},
	}
}

// FallbackVoices is shown when /voices fails or returns nothing.
func FallbackVoices() []VoiceOption {
	return []VoiceOption{
		{Name: "Female", DisplayName: "Female", Description: "Soft female voice"},
		{Name: "Male", DisplayName: "Male", Description: "Deep male voice"},
		{Name: "Child", DisplayName: "Child", Description: "Child voice"},
		{Name: "Celebrity", DisplayName: "Celebrity", Description: "Celebrity-like demo"},
	}
}

func DefaultPlans() []Plan {
	return []Plan{
		{Name: "Free", Price: 0, Features: "Low quality, 1 render/day"},
		{Name: "Premium", Price: 499, Features: "FullHD, 10 renders/day"},
		{Name: "Pro", Price: 999, Features: "4K, unlimited renders"},
	}
}

// FindPlan looks a plan up by case-insensitive name.
func FindPlan(plans []Plan, name string) (Plan, bool) {
	for _, p := range plans {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, true
		}
	}
	return Plan{}, false
}
