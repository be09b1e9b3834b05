package services

import (
	"context"
	"errors"

	"github.com/aivantu/aivantu/internal/client/client"
	"github.com/aivantu/aivantu/internal/client/models"
	"github.com/aivantu/aivantu/internal/common"
)

type ProfileService interface {
	Get(ctx context.Context) (*models.Profile, error)
	Save(ctx context.Context, update models.Profile) (*models.Profile, error)
}

type profileService struct {
	client   client.Client
	identity Identity
}

func NewProfileService(client client.Client, identity Identity) ProfileService {
	return &profileService{client: client, identity: identity}
}

// Get returns the user's profile with display defaults filled in; a user
// the backend does not know yet gets the default profile.
func (s *profileService) Get(ctx context.Context) (*models.Profile, error) {
	p, err := s.stored(ctx)
	if err != nil {
		return nil, err
	}
	withDefaults := p.WithDefaults()
	return &withDefaults, nil
}

// stored is the profile as the backend keeps it, or an empty one for an
// unknown user.
func (s *profileService) stored(ctx context.Context) (*models.Profile, error) {
	email := s.identity.Email(ctx)

	p, err := s.client.GetProfile(ctx, email)
	if errors.Is(err, common.ErrorNotFound) {
		return &models.Profile{Email: email}, nil
	}
	return p, err
}

// Save merges update into the stored profile; blank fields keep their
// previous values, and display defaults are never sent.
func (s *profileService) Save(ctx context.Context, update models.Profile) (*models.Profile, error) {
	current, err := s.stored(ctx)
	if err != nil {
		return nil, err
	}
	return s.client.SaveProfile(ctx, current.Merge(update))
}
