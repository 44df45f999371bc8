package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// profileService keeps the login Credentials and the displayed Profile as
// two records. Editing the profile never touches the credentials.
type profileService struct {
	profileRepository store.ProfileRepository
	validator         validators.Validator
	hasher            utils.PasswordHasher
	ids               store.IDGenerator

	defaultPhotoURL string

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewProfileService(profileRepository store.ProfileRepository, cfg config.App, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		validator:         validators.NewUserValidator(),
		hasher:            utils.NewPasswordHasher(cfg.PasswordHashing),
		ids:               utils.NewUUIDGenerator(),
		defaultPhotoURL:   cfg.DefaultPhotoURL,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration.Std(),
		logger:            logger,
	}
}

// RegisterCredentials validates form and stores a new account, replacing any
// previous one. Nothing is written when validation fails.
func (s *profileService) RegisterCredentials(ctx context.Context, form models.SignUp) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, form); err != nil {
		log.Warn().Err(err).Str("email", form.Email).Msg("sign up rejected")
		return models.Profile{}, err
	}

	password, err := s.hasher.Hash(form.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Profile{}, fmt.Errorf("error hashing password: %w", err)
	}

	userID := s.ids.Generate()
	credentials := models.Credentials{
		UserID:   userID,
		Email:    form.Email,
		Password: password,
	}
	if err = s.profileRepository.SaveCredentials(ctx, credentials); err != nil {
		log.Err(err).Str("email", form.Email).Msg("saving credentials failed")
		return models.Profile{}, fmt.Errorf("error saving credentials: %w", err)
	}

	profile := models.Profile{
		UserID: userID,
		Name:   form.Name,
		Email:  form.Email,
		Phone:  form.Phone,
	}
	if err = s.profileRepository.SaveProfile(ctx, profile); err != nil {
		log.Err(err).Str("email", form.Email).Msg("saving profile failed")
		return models.Profile{}, fmt.Errorf("error saving profile: %w", err)
	}

	return profile, nil
}

// Authenticate checks email and password against the stored credentials.
// After a logout the profile record is gone; it is then rebuilt from the
// credentials and stored again.
func (s *profileService) Authenticate(ctx context.Context, email, password string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	credentials, err := s.profileRepository.GetCredentials(ctx)
	if errors.Is(err, store.ErrKeyNotFound) {
		return s.authenticateLegacy(ctx, email, password)
	}
	if err != nil {
		log.Err(err).Msg("reading credentials failed")
		return models.Profile{}, fmt.Errorf("error reading credentials: %w", err)
	}

	if credentials.Email != email || !s.hasher.Compare(credentials.Password, password) {
		log.Warn().Str("email", email).Msg("wrong email or password")
		return models.Profile{}, ErrMismatch
	}

	profile, err := s.profileRepository.GetProfile(ctx)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, store.ErrKeyNotFound) {
		log.Err(err).Msg("reading profile failed")
		return models.Profile{}, fmt.Errorf("error reading profile: %w", err)
	}

	profile = models.Profile{UserID: credentials.UserID, Email: credentials.Email}
	if err = s.profileRepository.SaveProfile(ctx, profile); err != nil {
		log.Err(err).Msg("restoring profile failed")
		return models.Profile{}, fmt.Errorf("error restoring profile: %w", err)
	}

	return profile, nil
}

// authenticateLegacy logs in against a "usuario" record that still carries
// the password, as written before credentials were stored on their own. On
// success the record is split into Credentials and Profile the way the
// startup migration does it.
func (s *profileService) authenticateLegacy(ctx context.Context, email, password string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	legacy, err := s.profileRepository.GetLegacyUser(ctx)
	switch {
	case errors.Is(err, store.ErrKeyNotFound), errors.Is(err, store.ErrMalformedPayload):
		log.Warn().Str("email", email).Msg("login attempted with no registered account")
		return models.Profile{}, ErrNoAccount
	case err != nil:
		log.Err(err).Msg("reading stored user failed")
		return models.Profile{}, fmt.Errorf("error reading stored user: %w", err)
	case legacy.Password == "":
		log.Warn().Str("email", email).Msg("login attempted with no registered account")
		return models.Profile{}, ErrNoAccount
	}

	if legacy.Email != email || legacy.Password != password {
		log.Warn().Str("email", email).Msg("wrong email or password")
		return models.Profile{}, ErrMismatch
	}

	stored, err := s.hasher.Hash(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Profile{}, fmt.Errorf("error hashing password: %w", err)
	}

	credentials := models.Credentials{
		UserID:   s.ids.Generate(),
		Email:    legacy.Email,
		Password: stored,
	}
	if err = s.profileRepository.SaveCredentials(ctx, credentials); err != nil {
		log.Err(err).Msg("saving credentials failed")
		return models.Profile{}, fmt.Errorf("error saving credentials: %w", err)
	}

	profile := models.Profile{
		UserID: credentials.UserID,
		Name:   legacy.Name,
		Email:  legacy.Email,
		Phone:  legacy.Phone,
		Photo:  legacy.Photo,
	}
	if err = s.profileRepository.SaveProfile(ctx, profile); err != nil {
		log.Err(err).Msg("saving profile failed")
		return models.Profile{}, fmt.Errorf("error saving profile: %w", err)
	}

	log.Info().Str("user_id", profile.UserID).Msg("legacy user split on login")
	return profile, nil
}

// GetProfile returns the active profile. An empty photo reads as the
// configured placeholder.
func (s *profileService) GetProfile(ctx context.Context) (models.Profile, error) {
	profile, err := s.profileRepository.GetProfile(ctx)
	if errors.Is(err, store.ErrKeyNotFound) {
		return models.Profile{}, ErrNoProfile
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("reading profile failed")
		return models.Profile{}, fmt.Errorf("error reading profile: %w", err)
	}

	if profile.Photo == "" {
		profile.Photo = s.defaultPhotoURL
	}

	return profile, nil
}

// UpdateProfile trims and stores the edited profile. The stored user ID is
// kept whatever the input carries.
func (s *profileService) UpdateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	profile.Name = strings.TrimSpace(profile.Name)
	profile.Email = strings.TrimSpace(profile.Email)
	profile.Phone = strings.TrimSpace(profile.Phone)
	profile.Photo = strings.TrimSpace(profile.Photo)

	if err := s.validator.Validate(ctx, profile); err != nil {
		log.Warn().Err(err).Msg("profile update rejected")
		return models.Profile{}, err
	}

	if profile.Photo == "" {
		profile.Photo = s.defaultPhotoURL
	}

	current, err := s.profileRepository.GetProfile(ctx)
	switch {
	case err == nil:
		profile.UserID = current.UserID
	case errors.Is(err, store.ErrKeyNotFound):
		return models.Profile{}, ErrNoProfile
	default:
		log.Err(err).Msg("reading profile failed")
		return models.Profile{}, fmt.Errorf("error reading profile: %w", err)
	}

	if err = s.profileRepository.SaveProfile(ctx, profile); err != nil {
		log.Err(err).Msg("saving profile failed")
		return models.Profile{}, fmt.Errorf("error saving profile: %w", err)
	}

	return profile, nil
}

// ClearProfile ends the session by removing the profile. Credentials stay,
// so the user can log in again.
func (s *profileService) ClearProfile(ctx context.Context) error {
	if err := s.profileRepository.ClearProfile(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("clearing profile failed")
		return fmt.Errorf("error clearing profile: %w", err)
	}

	return nil
}

func (s *profileService) CreateToken(ctx context.Context, profile models.Profile) (models.Token, error) {
	if profile.UserID == "" {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, ErrInvalidDataProvided)
	}

	token, err := utils.GenerateJWTToken(s.tokenIssuer, profile.UserID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken reports every validation failure (expired, wrong issuer or
// signature, malformed) as ErrTokenIsExpiredOrInvalid. A valid token is also
// rejected once its session ended: after logout, or when the account it was
// issued for has been replaced by a new registration.
func (s *profileService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	profile, err := s.profileRepository.GetProfile(ctx)
	switch {
	case errors.Is(err, store.ErrKeyNotFound):
		log.Debug().Str("user_id", token.UserID).Msg("token rejected: no active profile")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, ErrSessionEnded)
	case err != nil:
		log.Err(err).Msg("reading profile failed")
		return models.Token{}, fmt.Errorf("error reading profile: %w", err)
	case profile.UserID != token.UserID:
		log.Debug().Str("user_id", token.UserID).Msg("token rejected: issued for another account")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, ErrSessionEnded)
	}

	return token, nil
}
