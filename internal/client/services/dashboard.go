package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/aivantu/aivantu/internal/client/client"
	"github.com/aivantu/aivantu/internal/client/models"
	"github.com/aivantu/aivantu/internal/common"
)

const recentVideos = 5

type Summary struct {
	Profile     models.Profile
	TotalVideos int
	Recent      []models.Video
}

type DashboardService interface {
	Summary(ctx context.Context, email string) (*Summary, error)
}

type dashboardService struct {
	client client.Client
}

func NewDashboardService(client client.Client) DashboardService {
	return &dashboardService{client: client}
}

// Summary checks the backend is up, then collects the user's profile and
// gallery. A user with no stored profile gets the default one.
func (s *dashboardService) Summary(ctx context.Context, email string) (*Summary, error) {
	if err := s.client.Health(ctx); err != nil {
		return nil, fmt.Errorf("health: %w", err)
	}

	profile, err := s.client.GetProfile(ctx, email)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		p := models.Profile{Email: email}.WithDefaults()
		profile = &p
	case err != nil:
		return nil, fmt.Errorf("profile: %w", err)
	default:
		p := profile.WithDefaults()
		profile = &p
	}

	videos, err := s.client.Gallery(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("gallery: %w", err)
	}
	sortNewestFirst(videos)

	recent := videos
	if len(recent) > recentVideos {
		recent = recent[:recentVideos]
	}

	return &Summary{Profile: *profile, TotalVideos: len(videos), Recent: recent}, nil
}
