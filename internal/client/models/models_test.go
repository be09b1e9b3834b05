package models

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aivantu/aivantu/internal/common"
	"github.com/aivantu/aivantu/internal/filex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideo_WithDefaults(t *testing.T) {
	var v Video
	require.NoError(t, json.Unmarshal([]byte(`{"id": 3, "file_url": "http://h/outputs/video_3.mp4"}`), &v))

	v = v.WithDefaults()
	assert.Equal(t, int64(3), v.ID)
	assert.Equal(t, DefaultVideoTitle, v.Title)
	assert.Equal(t, DefaultVideoStatus, v.Status)
	assert.Equal(t, "http://h/outputs/video_3.mp4", v.URL())
}

func TestVideo_URLPrecedence(t *testing.T) {
	v := Video{File: "outputs/a.mp4", VideoURL: "v", FileURL: "f", DownloadURL: "d"}
	assert.Equal(t, "d", v.URL())
	v.DownloadURL = ""
	assert.Equal(t, "f", v.URL())
	v.FileURL = ""
	assert.Equal(t, "v", v.URL())
	v.VideoURL = ""
	assert.Equal(t, "outputs/a.mp4", v.URL())
	v.File = ""
	assert.Empty(t, v.URL())
}

func TestVideo_CreatedTime(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		want time.Time
	}{
		{"2025-03-01T10:20:30.123456", true, time.Date(2025, 3, 1, 10, 20, 30, 123456000, time.UTC)},
		{"2025-03-01T10:20:30", true, time.Date(2025, 3, 1, 10, 20, 30, 0, time.UTC)},
		{"2025-03-01T10:20:30+05:30", true, time.Date(2025, 3, 1, 4, 50, 30, 0, time.UTC)},
		{"2025-03-01", true, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"yesterday", false, time.Time{}},
		{"", false, time.Time{}},
	}
	for _, tt := range tests {
		got, ok := Video{CreatedAt: tt.in}.CreatedTime()
		require.Equal(t, tt.ok, ok, tt.in)
		if ok {
			require.True(t, tt.want.Equal(got), "%s: got %v", tt.in, got)
		}
	}
}

func TestProfile_WithDefaults(t *testing.T) {
	var p Profile
	require.NoError(t, json.Unmarshal([]byte(`{"email":"a@b.c","photo_url":"http://p/1.png"}`), &p))

	p = p.WithDefaults()
	assert.Equal(t, "a@b.c", p.Email)
	assert.Equal(t, DefaultProfileName, p.Name)
	assert.Equal(t, DefaultProfilePlan, p.Plan)
	assert.Equal(t, "http://p/1.png", p.Photo)
}

func TestProfile_MergeKeepsPreviousForBlanks(t *testing.T) {
	prev := Profile{Email: "a@b.c", Name: "Asha", Country: "India", Plan: "Pro"}

	got := prev.Merge(Profile{Name: "  ", Country: "Nepal"})
	assert.Equal(t, "Asha", got.Name)
	assert.Equal(t, "Nepal", got.Country)
	assert.Equal(t, "Pro", got.Plan)

	got = prev.Merge(Profile{PhotoURL: "http://p/2.png"})
	assert.Equal(t, "http://p/2.png", got.Photo)
}

func TestCatalogDefaults(t *testing.T) {
	assert.Equal(t, DefaultTemplateCategory, Template{Name: "X"}.WithDefaults().Category)

	v := VoiceOption{DisplayName: "Female", Description: "Soft"}.WithDefaults()
	assert.Equal(t, "Female", v.Name)
	assert.Equal(t, "Female (Soft)", v.Label())

	v = VoiceOption{Name: "Robot"}.WithDefaults()
	assert.Equal(t, "Robot", v.DisplayName)
	assert.Equal(t, "Robot", v.Label())
}

func TestFallbackCatalogues(t *testing.T) {
	var names []string
	for _, tpl := range FallbackTemplates() {
		names = append(names, tpl.Name)
	}
	assert.Equal(t, []string{"Motivation", "Promo", "Explainer", "Kids", "Event"}, names)

	names = nil
	for _, v := range FallbackVoices() {
		names = append(names, v.Label())
	}
	assert.Equal(t, "Female (Soft female voice)", names[0])
	assert.Len(t, names, 4)

	plan, ok := FindPlan(DefaultPlans(), "premium")
	require.True(t, ok)
	assert.Equal(t, 499, plan.Price)
	assert.False(t, plan.IsFree())

	free, ok := FindPlan(DefaultPlans(), "Free")
	require.True(t, ok)
	assert.True(t, free.IsFree())

	_, ok = FindPlan(DefaultPlans(), "Enterprise")
	assert.False(t, ok)
}

func TestRenderResult_WithDefaults(t *testing.T) {
	var r RenderResult
	require.NoError(t, json.Unmarshal([]byte(`{"status":"done","video_id":12,"video_url":"http://h/outputs/video_12.mp4"}`), &r))
	r = r.WithDefaults()
	assert.True(t, r.IsDone())
	assert.Equal(t, "http://h/outputs/video_12.mp4", r.DownloadURL)

	empty := RenderResult{}.WithDefaults()
	assert.Equal(t, RenderStatusUnknown, empty.Status)
	assert.False(t, empty.IsDone())

	assert.True(t, RenderResult{Status: " DONE "}.IsDone())
}

func TestAssistantAndUploadDefaults(t *testing.T) {
	var a AssistantReply
	require.NoError(t, json.Unmarshal([]byte(`{"reply": "", "audio_url": null}`), &a))
	a = a.WithDefaults()
	assert.Equal(t, DefaultAssistantReply, a.Reply)
	assert.Empty(t, a.AudioURL)

	assert.Equal(t, "f", UploadResult{FileURL: "f", Path: "p"}.WithDefaults().URL)
	assert.Equal(t, "p", UploadResult{Path: "p"}.WithDefaults().URL)
	assert.Equal(t, "u", UploadResult{URL: "u", Path: "p"}.WithDefaults().URL)
}

func TestPaymentOrder_WithDefaults(t *testing.T) {
	var o PaymentOrder
	require.NoError(t, json.Unmarshal([]byte(`{"id":"PAY-1","links":[{"rel":"self","href":"s"},{"rel":"approve","href":"https://paypal/approve"}]}`), &o))
	o = o.WithDefaults()
	assert.Equal(t, "PAY-1", o.OrderID)
	assert.Equal(t, "https://paypal/approve", o.ApproveURL)
	assert.Equal(t, "created", o.Status)

	r := PaymentOrder{OrderID: "order_9", ID: "other", Status: "paid"}.WithDefaults()
	assert.Equal(t, "order_9", r.OrderID)
	assert.Equal(t, "paid", r.Status)
}

func TestParseProvider(t *testing.T) {
	p, err := ParseProvider(" PayPal ")
	require.NoError(t, err)
	assert.Equal(t, ProviderPaypal, p)

	_, err = ParseProvider("stripe")
	require.ErrorIs(t, err, common.ErrorInvalidInput)
}

func TestGenerateRequest_WithDefaults(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	r := GenerateRequest{Quality: "fullhd", Lang: "EN"}.WithDefaults(now, "me@x.io")
	assert.Equal(t, "me@x.io", r.UserEmail)
	assert.Equal(t, "Video 2026-01-02T03:04:05Z", r.Title)
	assert.Equal(t, DefaultTemplate, r.Template)
	assert.Equal(t, "FULLHD", r.Quality)
	assert.Equal(t, DefaultLengthType, r.LengthType)
	assert.Equal(t, "en", r.Lang)

	r = GenerateRequest{}.WithDefaults(now, "")
	assert.Equal(t, common.DefaultUserEmail, r.UserEmail)
	assert.Equal(t, DefaultQuality, r.Quality)
	assert.Equal(t, DefaultLang, r.Lang)

	r = GenerateRequest{UserEmail: "own@x.io"}.WithDefaults(now, "me@x.io")
	assert.Equal(t, "own@x.io", r.UserEmail)
}

func TestGenerateRequest_Validate(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "c1.png")
	voice := filepath.Join(dir, "c1.mp3")
	require.NoError(t, os.WriteFile(img, []byte("i"), 0o600))
	require.NoError(t, os.WriteFile(voice, []byte("a"), 0o600))

	base := GenerateRequest{}.WithDefaults(time.Now(), "")
	require.NoError(t, base.Validate())

	ok := base
	ok.Characters = []string{img}
	ok.CharacterVoiceFiles = []string{voice}
	ok.BgMusicFile = voice
	require.NoError(t, ok.Validate())

	bad := base
	bad.Quality = "8K"
	require.ErrorIs(t, bad.Validate(), common.ErrorInvalidInput)

	bad = base
	bad.LengthType = "medium"
	require.ErrorIs(t, bad.Validate(), common.ErrorInvalidInput)

	bad = base
	bad.Lang = "fr"
	require.ErrorIs(t, bad.Validate(), common.ErrorInvalidInput)

	bad = base
	bad.Characters = []string{voice}
	require.ErrorIs(t, bad.Validate(), filex.ErrUnsupportedExtension)

	bad = base
	bad.Characters = []string{img}
	bad.CharacterVoiceFiles = []string{voice, voice}
	require.ErrorIs(t, bad.Validate(), common.ErrorInvalidInput)

	bad = base
	bad.BgMusicFile = img
	require.ErrorIs(t, bad.Validate(), filex.ErrUnsupportedExtension)
}
