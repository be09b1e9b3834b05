package services

import (
	"context"
	"sync"

	"github.com/aivantu/aivantu/internal/client/client"
	"github.com/aivantu/aivantu/internal/client/models"
	"github.com/aivantu/aivantu/internal/logging"
)

// CatalogService serves the template, voice and plan pickers. Lists are
// fetched once and cached for the life of the process. When the backend
// fails or has nothing, the built-in fallback list is returned and the
// second result is true.
type CatalogService interface {
	Templates(ctx context.Context) ([]models.Template, bool)
	Voices(ctx context.Context) ([]models.VoiceOption, bool)
	Plans() []models.Plan
	Refresh()
}

type catalogService struct {
	client client.Client
	log    logging.Logger

	mu        sync.Mutex
	templates []models.Template
	voices    []models.VoiceOption
}

func NewCatalogService(client client.Client, log logging.Logger) CatalogService {
	return &catalogService{client: client, log: log}
}

func (s *catalogService) Templates(ctx context.Context) ([]models.Template, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.templates != nil {
		return s.templates, false
	}

	items, err := s.client.Templates(ctx)
	if err != nil {
		s.log.Warn(ctx, "templates unavailable, using fallback", "error", err)
		return models.FallbackTemplates(), true
	}
	if len(items) == 0 {
		return models.FallbackTemplates(), true
	}
	s.templates = items
	return items, false
}

func (s *catalogService) Voices(ctx context.Context) ([]models.VoiceOption, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.voices != nil {
		return s.voices, false
	}

	items, err := s.client.Voices(ctx)
	if err != nil {
		s.log.Warn(ctx, "voices unavailable, using fallback", "error", err)
		return models.FallbackVoices(), true
	}
	if len(items) == 0 {
		return models.FallbackVoices(), true
	}
	s.voices = items
	return items, false
}

func (s *catalogService) Plans() []models.Plan {
	return models.DefaultPlans()
}

// Refresh drops cached lists so the next call asks the backend again.
func (s *catalogService) Refresh() {
	s.mu.Lock()
	s.templates = nil
	s.voices = nil
	s.mu.Unlock()
}
