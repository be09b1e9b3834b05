package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/aivantu/aivantu/internal/common"
	"github.com/aivantu/aivantu/internal/filex"
)

// Multipart field names of POST /generate_video.
const (
	FieldUserEmail           = "user_email"
	FieldTitle               = "title"
	FieldScript              = "script"
	FieldTemplate            = "template"
	FieldQuality             = "quality"
	FieldLengthType          = "length_type"
	FieldLang                = "lang"
	FieldBgMusic             = "bg_music"
	FieldVoiceType           = "voice_type"
	FieldCharacters          = "characters"
	FieldCharacterVoiceFiles = "character_voice_files"
	FieldBgMusicFile         = "bg_music_file"
)

const (
	DefaultTemplate   = "Default"
	DefaultQuality    = "HD"
	DefaultLengthType = "short"
	DefaultLang       = "hi"
)

var (
	Qualities   = []string{"HD", "FULLHD", "4K"}
	LengthTypes = []string{"short", "long"}
	Languages   = []string{"hi", "en", "bn"}
)

// GenerateRequest is one render submission. Attachment fields hold local
// file paths.
type GenerateRequest struct {
	UserEmail           string
	Title               string
	Script              string
	Template            string
	Quality             string
	LengthType          string
	Lang                string
	BgMusic             string
	VoiceTypes          []string
	Characters          []string
	CharacterVoiceFiles []string
	BgMusicFile         string
}

// WithDefaults fills blanks the same way the backend would, so the request
// we log and record matches what gets rendered.
func (r GenerateRequest) WithDefaults(now time.Time, email string) GenerateRequest {
	r.UserEmail = common.FirstNonEmpty(strings.TrimSpace(r.UserEmail), email, common.DefaultUserEmail)
	if strings.TrimSpace(r.Title) == "" {
		r.Title = "Video " + now.UTC().Format(time.RFC3339)
	}
	if strings.TrimSpace(r.Template) == "" {
		r.Template = DefaultTemplate
	}
	if strings.TrimSpace(r.Quality) == "" {
		r.Quality = DefaultQuality
	}
	if strings.TrimSpace(r.LengthType) == "" {
		r.LengthType = DefaultLengthType
	}
	if strings.TrimSpace(r.Lang) == "" {
		r.Lang = DefaultLang
	}
	r.Quality = strings.ToUpper(strings.TrimSpace(r.Quality))
	r.LengthType = strings.ToLower(strings.TrimSpace(r.LengthType))
	r.Lang = strings.ToLower(strings.TrimSpace(r.Lang))
	return r
}

// Validate checks option values and attachment files before anything is sent.
func (r GenerateRequest) Validate() error {
	if !contains(Qualities, r.Quality) {
		return fmt.Errorf("%w: quality %q (want one of %s)", common.ErrorInvalidInput, r.Quality, strings.Join(Qualities, ", "))
	}
	if !contains(LengthTypes, r.LengthType) {
		return fmt.Errorf("%w: length type %q (want one of %s)", common.ErrorInvalidInput, r.LengthType, strings.Join(LengthTypes, ", "))
	}
	if !contains(Languages, r.Lang) {
		return fmt.Errorf("%w: language %q (want one of %s)", common.ErrorInvalidInput, r.Lang, strings.Join(Languages, ", "))
	}
	if len(r.CharacterVoiceFiles) > len(r.Characters) && len(r.Characters) > 0 {
		return fmt.Errorf("%w: %d voice files for %d characters", common.ErrorInvalidInput, len(r.CharacterVoiceFiles), len(r.Characters))
	}
	for _, p := range r.Characters {
		if err := filex.CheckAttachment(p, filex.KindImage); err != nil {
			return fmt.Errorf("character image: %w", err)
		}
	}
	for _, p := range r.CharacterVoiceFiles {
		if err := filex.CheckAttachment(p, filex.KindAudio); err != nil {
			return fmt.Errorf("character voice: %w", err)
		}
	}
	if r.BgMusicFile != "" {
		if err := filex.CheckAttachment(r.BgMusicFile, filex.KindAudio); err != nil {
			return fmt.Errorf("background music: %w", err)
		}
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
