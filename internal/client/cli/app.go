package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/aivantu/aivantu/internal/client/client"
	"github.com/aivantu/aivantu/internal/client/config"
	"github.com/aivantu/aivantu/internal/client/repositories/renders"
	"github.com/aivantu/aivantu/internal/client/services"
	"github.com/aivantu/aivantu/internal/client/storage"
	"github.com/aivantu/aivantu/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const pingTimeout = 3 * time.Second

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	authService      services.AuthService
	dashboardService services.DashboardService
	catalogService   services.CatalogService
	videoService     services.VideoService
	profileService   services.ProfileService
	assistantService services.AssistantService
	voiceService     services.VoiceService
	paymentService   services.PaymentService
	archiveService   services.ArchiveService

	mu      sync.RWMutex
	mode    Mode
	session *services.Session

	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires configuration, the local database, the backend client and
// all services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(c.LogLevel, os.Stderr)

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	apiClient, err := client.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout,
		client.WithLogger(logger.With("component", "http")))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Debug(ctx, "backend configured", "base_url", apiClient.BaseURL())

	var presigner storage.Presigner
	if c.ArchiveEnabled() {
		p, err := storage.NewS3Presigner(ctx, storage.Config{
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
			AccessKey:    c.S3AccessKey,
			SecretKey:    c.S3SecretKey,
		})
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("archive storage: %w", err)
		}
		presigner = p
	}

	renderRepo := renders.NewSQLiteRepository(db)
	as := services.NewAuthService(apiClient, db, c.UserEmail)
	cs := services.NewCatalogService(apiClient, logger)

	return &App{
		config:           c,
		log:              logger,
		db:               db,
		authService:      as,
		dashboardService: services.NewDashboardService(apiClient),
		catalogService:   cs,
		videoService:     services.NewVideoService(apiClient, renderRepo, as, c.DownloadDir, logger),
		profileService:   services.NewProfileService(apiClient, as),
		assistantService: services.NewAssistantService(apiClient, c.Lang),
		voiceService:     services.NewVoiceService(apiClient, c.Lang),
		paymentService:   services.NewPaymentService(apiClient, cs, as, c.Currency, logger),
		archiveService:   services.NewArchiveService(presigner, renderRepo, &http.Client{Timeout: c.RequestTimeout}, logger),
		reader:           bufio.NewReader(os.Stdin),
		out:              os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	if s, err := a.authService.Restore(ctx); err == nil {
		a.setSession(s)
	}
	a.Root(ctx)
}

func (a *App) Mode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(context.Background(), "connection mode changed", "mode", mode)
	}
}

func (a *App) setSession(s *services.Session) {
	a.mu.Lock()
	a.session = s
	a.mu.Unlock()
}

func (a *App) currentSession() *services.Session {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session
}

func (a *App) isLoggedIn() bool {
	return a.currentSession() != nil
}

// checkOnline pings the backend once and updates the mode.
func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.authService.Ping(ctx)
	cancel()

	if err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher pings the backend every interval until ctx is
// done, switching the prompt between online and offline.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
