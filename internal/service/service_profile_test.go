// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/mock"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

const placeholderPhoto = "https://via.placeholder.com/150"

func testAppConfig(hashing string) config.App {
	return config.App{
		TokenSignKey:    "test-key",
		TokenIssuer:     "test-issuer",
		TokenDuration:   config.Duration(time.Hour),
		PasswordHashing: hashing,
		DefaultPhotoURL: placeholderPhoto,
	}
}

func newTestProfileService(t *testing.T, hashing string) (ProfileService, *mock.MockProfileRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockProfileRepository(ctrl)

	return NewProfileService(repo, testAppConfig(hashing), logger.Nop()), repo
}

func validForm() models.SignUp {
	return models.SignUp{
		Name:                 "Ana Souza",
		Email:                "ana@example.com",
		Phone:                "11987654321",
		Password:             "segredo",
		PasswordConfirmation: "segredo",
	}
}

func TestProfileService_RegisterCredentials_Plain(t *testing.T) {
	svc, repo := newTestProfileService(t, config.PasswordHashingPlain)
	ctx := context.Background()

	var savedCredentials models.Credentials
	gomock.InOrder(
		repo.EXPECT().SaveCredentials(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, c models.Credentials) error {
				savedCredentials = c
				return nil
			},
		),
		repo.EXPECT().SaveProfile(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, p models.Profile) error {
				assert.Equal(t, savedCredentials.UserID, p.UserID)
				return nil
			},
		),
	)

	profile, err := svc.RegisterCredentials(ctx, validForm())
	require.NoError(t, err)

	assert.NotEmpty(t, profile.UserID)
	assert.Equal(t, "Ana Souza", profile.Name)
	assert.Equal(t, "ana@example.com", profile.Email)
	assert.Equal(t, "11987654321", profile.Phone)
	assert.Equal(t, "segredo", savedCredentials.Password)
	assert.Equal(t, "ana@example.com", savedCredentials.Email)
}

func TestProfileService_RegisterCredentials_Bcrypt(t *testing.T) {
	svc, repo := newTestProfileService(t, config.PasswordHashingBcrypt)
	ctx := context.Background()

	repo.EXPECT().SaveCredentials(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.Credentials) error {
			assert.True(t, strings.HasPrefix(c.Password, "$2"))
			assert.NotEqual(t, "segredo", c.Password)
			return nil
		},
	)
	repo.EXPECT().SaveProfile(ctx, gomock.Any()).Return(nil)

	_, err := svc.RegisterCredentials(ctx, validForm())
	require.NoError(t, err)
}

func TestProfileService_RegisterCredentials_InvalidWritesNothing(t *testing.T) {
	svc, _ := newTestProfileService(t, config.PasswordHashingPlain)

	form := validForm()
	form.PasswordConfirmation = "different"

	_, err := svc.RegisterCredentials(context.Background(), form)
	assert.ErrorIs(t, err, validators.ErrValidation)
	assert.ErrorIs(t, err, validators.ErrPasswordMismatch)
}

func TestProfileService_RegisterCredentials_StorageError(t *testing.T) {
	svc, repo := newTestProfileService(t, config.PasswordHashingPlain)
	ctx := context.Background()

	repo.EXPECT().SaveCredentials(ctx, gomock.Any()).Return(store.ErrStorageUnavailable)

	_, err := svc.RegisterCredentials(ctx, validForm())
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
}

func TestProfileService_Authenticate(t *testing.T) {
	credentials := models.Credentials{UserID: "u1", Email: "ana@example.com", Password: "segredo"}
	profile := models.Profile{UserID: "u1", Name: "Ana Souza", Email: "ana@example.com"}

	t.Run("no account", func(t *testing.T) {
		svc, repo := newTestProfileService(t, config.PasswordHashingPlain)
		repo.EXPECT().GetCredentials(gomock.Any()).Return(models.Credentials{}, store.ErrKeyNotFound)
		repo.EXPECT().GetLegacyUser(gomock.Any()).Return(models.LegacyUser{}, store.ErrKeyNotFound)

		_, err := svc.Authenticate(context.Background(), "ana@example.com", "segredo")
		assert.ErrorIs(t, err, ErrNoAccount)
	})

	t.Run("profile without password is no account", func(t *testing.T) {
		svc, repo := newTestProfileService(t, config.PasswordHashingPlain)
		repo.EXPECT().GetCredentials(gomock.Any()).Return(models.Credentials{}, store.ErrKeyNotFound)
		repo.EXPECT().GetLegacyUser(gomock.Any()).Return(models.LegacyUser{Name: "Ana", Email: "ana@example.com"}, nil)

		_, err := svc.Authenticate(context.Background(), "ana@example.com", "segredo")
		assert.ErrorIs(t, err, ErrNoAccount)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo := newTestProfileService(t, config.PasswordHashingPlain)
		repo.EXPECT().GetCredentials(gomock.Any()).Return(credentials, nil)

		_, err := svc.Authenticate(context.Background(), "ana@example.com", "errada")
		assert.ErrorIs(t, err, ErrMismatch)
	})

	t.Run("email must match exactly", func(t *testing.T) {
		svc, repo := newTestProfileService(t, config.PasswordHashingPlain)
		repo.EXPECT().GetCredentials(gomock.Any()).Return(credentials, nil)

		_, err := svc.Authenticate(context.Background(), "ANA@example.com", "segredo")
		assert.ErrorIs(t, err, ErrMismatch)
	})

	t.Run("success returns stored profile", func(t *testing.T) {
		svc, repo := newTestProfileService(t, config.PasswordHashingPlain)
		repo.EXPECT().GetCredentials(gomock.Any()).Return(credentials, nil)
		repo.EXPECT().GetProfile(gomock.Any()).Return(profile, nil)

		got, err := svc.Authenticate(context.Background(), "ana@example.com", "segredo")
		require.NoError(t, err)
		assert.Equal(t, profile, got)
	})

	t.Run("after logout profile is restored from credentials", func(t *testing.T) {
		svc, repo := newTestProfileService(t, config.PasswordHashingPlain)
		repo.EXPECT().GetCredentials(gomock.Any()).Return(credentials, nil)
		repo.EXPECT().GetProfile(gomock.Any()).Return(models.Profile{}, store.ErrKeyNotFound)
		repo.EXPECT().SaveProfile(gomock.Any(), models.Profile{UserID: "u1", Email: "ana@example.com"}).Return(nil)

		got, err := svc.Authenticate(context.Background(), "ana@example.com", "segredo")
		require.NoError(t, err)
		assert.Equal(t, "u1", got.UserID)
	})

	t.Run("bcrypt mode accepts legacy plain credentials", func(t *testing.T) {
		svc, repo := newTestProfileService(t, config.PasswordHashingBcrypt)
		repo.EXPECT().GetCredentials(gomock.Any()).Return(credentials, nil)
		repo.EXPECT().GetProfile(gomock.Any()).Return(profile, nil)

		_, err := svc.Authenticate(context.Background(), "ana@example.com", "segredo")
		require.NoError(t, err)
	})
}

func TestProfileService_Authenticate_LegacyUser(t *testing.T) {
	legacy := models.LegacyUser{
		Name:     "Ana Souza",
		Email:    "ana@example.com",
		Phone:    "11987654321",
		Password: "segredo",
		Photo:    "file:///ana.jpg",
	}

	t.Run("wrong password", func(t *testing.T) {
		svc, repo := newTestProfileService(t, config.PasswordHashingPlain)
		repo.EXPECT().GetCredentials(gomock.Any()).Return(models.Credentials{}, store.ErrKeyNotFound)
		repo.EXPECT().GetLegacyUser(gomock.Any()).Return(legacy, nil)

		_, err := svc.Authenticate(context.Background(), "ana@example.com", "errada")
		assert.ErrorIs(t, err, ErrMismatch)
	})

	t.Run("success splits the record", func(t *testing.T) {
		svc, repo := newTestProfileService(t, config.PasswordHashingPlain)

		var savedCredentials models.Credentials
		repo.EXPECT().GetCredentials(gomock.Any()).Return(models.Credentials{}, store.ErrKeyNotFound)
		repo.EXPECT().GetLegacyUser(gomock.Any()).Return(legacy, nil)
		gomock.InOrder(
			repo.EXPECT().SaveCredentials(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, c models.Credentials) error {
					savedCredentials = c
					return nil
				}),
			repo.EXPECT().SaveProfile(gomock.Any(), gomock.Any()).Return(nil),
		)

		got, err := svc.Authenticate(context.Background(), "ana@example.com", "segredo")
		require.NoError(t, err)

		assert.NotEmpty(t, savedCredentials.UserID)
		assert.Equal(t, "ana@example.com", savedCredentials.Email)
		assert.Equal(t, "segredo", savedCredentials.Password)
		assert.Equal(t, models.Profile{
			UserID: savedCredentials.UserID,
			Name:   "Ana Souza",
			Email:  "ana@example.com",
			Phone:  "11987654321",
			Photo:  "file:///ana.jpg",
		}, got)
	})
}

func TestProfileService_GetProfile(t *testing.T) {
	svc, repo := newTestProfileService(t, config.PasswordHashingPlain)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().GetProfile(ctx).Return(models.Profile{}, store.ErrKeyNotFound),
		repo.EXPECT().GetProfile(ctx).Return(models.Profile{Name: "Ana", Email: "ana@example.com"}, nil),
		repo.EXPECT().GetProfile(ctx).Return(models.Profile{}, store.ErrMalformedPayload),
	)

	_, err := svc.GetProfile(ctx)
	assert.ErrorIs(t, err, ErrNoProfile)

	got, err := svc.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, placeholderPhoto, got.Photo)

	_, err = svc.GetProfile(ctx)
	assert.ErrorIs(t, err, store.ErrMalformedPayload)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	svc, repo := newTestProfileService(t, config.PasswordHashingPlain)
	ctx := context.Background()

	repo.EXPECT().GetProfile(ctx).Return(models.Profile{UserID: "u1", Name: "Ana", Email: "ana@example.com"}, nil)
	repo.EXPECT().SaveProfile(ctx, models.Profile{
		UserID: "u1",
		Name:   "Ana Maria",
		Email:  "ana.maria@example.com",
		Photo:  placeholderPhoto,
	}).Return(nil)

	got, err := svc.UpdateProfile(ctx, models.Profile{
		UserID: "someone-else",
		Name:   "  Ana Maria ",
		Email:  " ana.maria@example.com",
		Photo:  "   ",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, placeholderPhoto, got.Photo)
}

func TestProfileService_UpdateProfile_RequiresNameAndEmail(t *testing.T) {
	svc, _ := newTestProfileService(t, config.PasswordHashingPlain)

	_, err := svc.UpdateProfile(context.Background(), models.Profile{Name: " ", Email: "a@b.co"})
	assert.ErrorIs(t, err, validators.ErrValidation)

	_, err = svc.UpdateProfile(context.Background(), models.Profile{Name: "Ana", Email: ""})
	assert.ErrorIs(t, err, validators.ErrEmptyEmail)
}

func TestProfileService_UpdateProfile_NoProfile(t *testing.T) {
	svc, repo := newTestProfileService(t, config.PasswordHashingPlain)
	repo.EXPECT().GetProfile(gomock.Any()).Return(models.Profile{}, store.ErrKeyNotFound)

	_, err := svc.UpdateProfile(context.Background(), models.Profile{Name: "Ana", Email: "a@b.co"})
	assert.ErrorIs(t, err, ErrNoProfile)
}

func TestProfileService_ClearProfile(t *testing.T) {
	svc, repo := newTestProfileService(t, config.PasswordHashingPlain)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().ClearProfile(ctx).Return(nil),
		repo.EXPECT().ClearProfile(ctx).Return(store.ErrStorageUnavailable),
	)

	require.NoError(t, svc.ClearProfile(ctx))
	assert.ErrorIs(t, svc.ClearProfile(ctx), store.ErrStorageUnavailable)
}

func TestProfileService_Tokens(t *testing.T) {
	svc, repo := newTestProfileService(t, config.PasswordHashingPlain)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.Profile{UserID: "u1"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	repo.EXPECT().GetProfile(gomock.Any()).Return(models.Profile{UserID: "u1"}, nil)
	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "u1", parsed.UserID)

	_, err = svc.ParseToken(ctx, token.SignedString+"tampered")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	_, err = svc.CreateToken(ctx, models.Profile{})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestProfileService_ParseToken_Session(t *testing.T) {
	tests := []struct {
		name        string
		profile     models.Profile
		profileErr  error
		wantInvalid bool
		wantStorage bool
	}{
		{name: "after logout", profileErr: store.ErrKeyNotFound, wantInvalid: true},
		{name: "account replaced", profile: models.Profile{UserID: "u2"}, wantInvalid: true},
		{name: "storage failure", profileErr: store.ErrStorageUnavailable, wantStorage: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestProfileService(t, config.PasswordHashingPlain)
			ctx := context.Background()

			token, err := svc.CreateToken(ctx, models.Profile{UserID: "u1"})
			require.NoError(t, err)

			repo.EXPECT().GetProfile(gomock.Any()).Return(tt.profile, tt.profileErr)

			_, err = svc.ParseToken(ctx, token.SignedString)
			require.Error(t, err)
			assert.Equal(t, tt.wantInvalid, errors.Is(err, ErrTokenIsExpiredOrInvalid))
			assert.Equal(t, tt.wantInvalid, errors.Is(err, ErrSessionEnded))
			assert.Equal(t, tt.wantStorage, errors.Is(err, store.ErrStorage))
		})
	}
}

func TestProfileService_ParseToken_WrongIssuer(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockProfileRepository(ctrl)

	other := testAppConfig(config.PasswordHashingPlain)
	other.TokenIssuer = "someone-else"
	issuer := NewProfileService(repo, other, logger.Nop())
	verifier := NewProfileService(repo, testAppConfig(config.PasswordHashingPlain), logger.Nop())

	token, err := issuer.CreateToken(context.Background(), models.Profile{UserID: "u1"})
	require.NoError(t, err)

	_, err = verifier.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
