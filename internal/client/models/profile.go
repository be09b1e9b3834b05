package models

import (
	"strings"

	"github.com/aivantu/aivantu/internal/common"
)

const (
	DefaultProfileName = "AiVantu User"
	DefaultProfilePlan = "Free"
)

type Profile struct {
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Country  string `json:"country,omitempty"`
	Photo    string `json:"photo,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
	Plan     string `json:"plan,omitempty"`
}

func (p Profile) WithDefaults() Profile {
	if strings.TrimSpace(p.Name) == "" {
		p.Name = DefaultProfileName
	}
	if strings.TrimSpace(p.Plan) == "" {
		p.Plan = DefaultProfilePlan
	}
	p.Photo = common.FirstNonEmpty(p.Photo, p.PhotoURL)
	p.PhotoURL = p.Photo
	return p
}

// Merge returns p with every blank field of update ignored, so a save only
// overwrites what the user actually typed.
func (p Profile) Merge(update Profile) Profile {
	if strings.TrimSpace(update.Name) != "" {
		p.Name = strings.TrimSpace(update.Name)
	}
	if strings.TrimSpace(update.Country) != "" {
		p.Country = strings.TrimSpace(update.Country)
	}
	if photo := common.FirstNonEmpty(update.Photo, update.PhotoURL); photo != "" {
		p.Photo = strings.TrimSpace(photo)
		p.PhotoURL = p.Photo
	}
	return p
}
