package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type profileRepository struct {
	kv       KeyValueStore
	notifier Notifier
	logger   *logger.Logger
}

// NewProfileRepository returns a [ProfileRepository]. Profile and
// credentials are single records, so reads surface every error including
// ErrKeyNotFound.
func NewProfileRepository(kv KeyValueStore, notifier Notifier, log *logger.Logger) ProfileRepository {
	return &profileRepository{
		kv:       kv,
		notifier: notifier,
		logger:   log,
	}
}

func (p *profileRepository) GetProfile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile
	if err := p.kv.Get(ctx, models.KeyProfile, &profile); err != nil {
		return models.Profile{}, fmt.Errorf("error loading profile: %w", err)
	}
	return profile, nil
}

func (p *profileRepository) SaveProfile(ctx context.Context, profile models.Profile) error {
	if err := p.kv.Set(ctx, models.KeyProfile, profile); err != nil {
		return fmt.Errorf("error saving profile: %w", err)
	}
	p.publish(models.KeyProfile, models.ChangeUpdated, profile.UserID)
	return nil
}

func (p *profileRepository) ClearProfile(ctx context.Context) error {
	if err := p.kv.Remove(ctx, models.KeyProfile); err != nil {
		return fmt.Errorf("error clearing profile: %w", err)
	}
	p.publish(models.KeyProfile, models.ChangeDeleted, "")
	return nil
}

func (p *profileRepository) GetCredentials(ctx context.Context) (models.Credentials, error) {
	var credentials models.Credentials
	if err := p.kv.Get(ctx, models.KeyCredentials, &credentials); err != nil {
		return models.Credentials{}, fmt.Errorf("error loading credentials: %w", err)
	}
	return credentials, nil
}

func (p *profileRepository) SaveCredentials(ctx context.Context, credentials models.Credentials) error {
	if err := p.kv.Set(ctx, models.KeyCredentials, credentials); err != nil {
		return fmt.Errorf("error saving credentials: %w", err)
	}
	p.publish(models.KeyCredentials, models.ChangeUpdated, credentials.UserID)
	return nil
}

func (p *profileRepository) GetLegacyUser(ctx context.Context) (models.LegacyUser, error) {
	var user models.LegacyUser
	if err := p.kv.Get(ctx, models.KeyProfile, &user); err != nil {
		return models.LegacyUser{}, fmt.Errorf("error loading legacy user: %w", err)
	}
	return user, nil
}

func (p *profileRepository) publish(key string, op models.ChangeOp, id string) {
	if p.notifier == nil {
		return
	}
	p.notifier.Publish(models.ChangeEvent{Key: key, Op: op, ID: id})
}
