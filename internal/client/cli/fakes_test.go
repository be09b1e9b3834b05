package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/aivantu/aivantu/internal/client/config"
	"github.com/aivantu/aivantu/internal/client/models"
	"github.com/aivantu/aivantu/internal/client/services"
	"github.com/aivantu/aivantu/internal/filex"
	"github.com/aivantu/aivantu/internal/logging"
)

type fakeAuth struct {
	session  *services.Session
	pingErr  error
	err      error
	lastTok  string
	signOuts int
}

func (f *fakeAuth) SignInWithEmail(_ context.Context, email, name string) (*services.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.session = &services.Session{Email: email, Name: name}
	return f.session, nil
}

func (f *fakeAuth) SignInWithIDToken(_ context.Context, token string) (*services.Session, error) {
	f.lastTok = token
	if f.err != nil {
		return nil, f.err
	}
	f.session = &services.Session{Email: "token@aivantu.com", Token: token}
	return f.session, nil
}

func (f *fakeAuth) Current(context.Context) (*services.Session, error) {
	if f.session == nil {
		return nil, services.ErrNotSignedIn
	}
	return f.session, nil
}

func (f *fakeAuth) Restore(ctx context.Context) (*services.Session, error) { return f.Current(ctx) }

func (f *fakeAuth) SignOut(context.Context) error {
	f.signOuts++
	f.session = nil
	return nil
}

func (f *fakeAuth) Email(context.Context) string {
	if f.session != nil {
		return f.session.Email
	}
	return "demo@aivantu.com"
}

func (f *fakeAuth) Ping(context.Context) error { return f.pingErr }

type fakeCatalog struct {
	templates []models.Template
	voices    []models.VoiceOption
	fallback  bool
	refreshes int
}

func (f *fakeCatalog) Templates(context.Context) ([]models.Template, bool) {
	if len(f.templates) == 0 {
		return models.FallbackTemplates(), true
	}
	return f.templates, f.fallback
}

func (f *fakeCatalog) Voices(context.Context) ([]models.VoiceOption, bool) {
	if len(f.voices) == 0 {
		return models.FallbackVoices(), true
	}
	return f.voices, f.fallback
}

func (f *fakeCatalog) Plans() []models.Plan { return models.DefaultPlans() }
func (f *fakeCatalog) Refresh()             { f.refreshes++ }

type fakeVideo struct {
	gallery   []models.Video
	history   []models.Render
	galleryEr error
	genErr    error

	lastReq      models.GenerateRequest
	lastURL      string
	lastVideoID  int64
	lastKind     filex.Kind
	lastPath     string
	downloadResp *services.Download
}

func (f *fakeVideo) Generate(_ context.Context, req models.GenerateRequest) (*models.Render, error) {
	f.lastReq = req
	if f.genErr != nil {
		return nil, f.genErr
	}
	return &models.Render{ID: "r-1", VideoID: 42, Title: req.Title, Status: "done", DownloadURL: "/outputs/video_42.mp4"}, nil
}

func (f *fakeVideo) Gallery(context.Context) ([]models.Video, error) { return f.gallery, f.galleryEr }
func (f *fakeVideo) Outputs(context.Context) ([]models.Video, error) { return f.gallery, nil }

func (f *fakeVideo) Download(_ context.Context, rawURL string, videoID int64) (*services.Download, error) {
	f.lastURL, f.lastVideoID = rawURL, videoID
	if f.downloadResp != nil {
		return f.downloadResp, nil
	}
	return &services.Download{Path: "downloads/video.mp4", Bytes: 3, Checksum: "abc"}, nil
}

func (f *fakeVideo) History(context.Context, int) ([]models.Render, error) { return f.history, nil }

func (f *fakeVideo) Render(_ context.Context, id string) (*models.Render, error) {
	for _, r := range f.history {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, services.ErrNotDownloaded
}

func (f *fakeVideo) Upload(_ context.Context, kind filex.Kind, path string) (*models.UploadResult, error) {
	f.lastKind, f.lastPath = kind, path
	return &models.UploadResult{URL: "/uploads/" + path}, nil
}

type fakeProfile struct {
	profile models.Profile
	saved   models.Profile
}

func (f *fakeProfile) Get(context.Context) (*models.Profile, error) {
	p := f.profile
	return &p, nil
}

func (f *fakeProfile) Save(_ context.Context, update models.Profile) (*models.Profile, error) {
	f.saved = update
	p := f.profile.Merge(update)
	return &p, nil
}

type fakeDashboard struct{ summary services.Summary }

func (f *fakeDashboard) Summary(context.Context, string) (*services.Summary, error) {
	return &f.summary, nil
}

type fakeAssistant struct{ lastQuery string }

func (f *fakeAssistant) Ask(_ context.Context, query, _ string) (*models.AssistantReply, error) {
	f.lastQuery = query
	return &models.AssistantReply{Reply: "Try a sunrise scene", AudioURL: "/outputs/reply.mp3"}, nil
}

type fakeVoice struct{ lastText string }

func (f *fakeVoice) Preview(_ context.Context, text, _ string) (*models.VoicePreview, error) {
	f.lastText = text
	return &models.VoicePreview{AudioURL: "/outputs/preview.mp3"}, nil
}

type fakePayment struct {
	lastProvider models.Provider
	lastPlan     string
}

func (f *fakePayment) CreateOrder(_ context.Context, provider models.Provider, plan string) (*models.PaymentOrder, error) {
	f.lastProvider, f.lastPlan = provider, plan
	return &models.PaymentOrder{Provider: provider, OrderID: "order_1", Amount: 499, Currency: "INR"}, nil
}

type fakeArchive struct {
	enabled bool
	lastID  string
}

func (f *fakeArchive) Enabled() bool { return f.enabled }

func (f *fakeArchive) Archive(_ context.Context, renderID string) (string, error) {
	f.lastID = renderID
	return "renders/a/b.mp4", nil
}

type testApp struct {
	*App
	out       *bytes.Buffer
	auth      *fakeAuth
	catalog   *fakeCatalog
	video     *fakeVideo
	profile   *fakeProfile
	dashboard *fakeDashboard
	assistant *fakeAssistant
	voice     *fakeVoice
	payment   *fakePayment
	archive   *fakeArchive
}

// newTestApp builds an App over fakes that reads input as typed lines.
func newTestApp(t *testing.T, input string) *testApp {
	t.Helper()

	ta := &testApp{
		out:       &bytes.Buffer{},
		auth:      &fakeAuth{},
		catalog:   &fakeCatalog{},
		video:     &fakeVideo{},
		profile:   &fakeProfile{profile: models.Profile{Email: "demo@aivantu.com", Name: "Asha", Country: "India", Plan: "Free"}},
		dashboard: &fakeDashboard{},
		assistant: &fakeAssistant{},
		voice:     &fakeVoice{},
		payment:   &fakePayment{},
		archive:   &fakeArchive{},
	}
	ta.App = &App{
		config:           &config.Config{Lang: "hi", Currency: "INR"},
		log:              logging.Discard(),
		authService:      ta.auth,
		dashboardService: ta.dashboard,
		catalogService:   ta.catalog,
		videoService:     ta.video,
		profileService:   ta.profile,
		assistantService: ta.assistant,
		voiceService:     ta.voice,
		paymentService:   ta.payment,
		archiveService:   ta.archive,
		reader:           bufio.NewReader(strings.NewReader(input)),
		out:              ta.out,
	}
	return ta
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

// capturePrintln records every printlnFn line.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSpace(fmt.Sprintln(a...)))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}
