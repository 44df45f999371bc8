package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-recipe-keeper/internal/adapter"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

func TestRoutes_Version_IsPublic(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetBuildInfo(gomock.Any()).
		Return(models.NewAppBuildInfo("v1.2.0", "2026-10-01", "abc123"))

	rec := serve(h, http.MethodGet, "/api/version", nil, false)

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decodeResponse[versionResponse](t, rec)
	assert.Equal(t, versionResponse{Version: "v1.2.0", Date: "2026-10-01", Commit: "abc123"}, got)
}

func TestRoutes_ProtectedRoutes_RequireToken(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/auth/logout"},
		{http.MethodGet, "/api/profile"},
		{http.MethodPut, "/api/profile"},
		{http.MethodGet, "/api/recipes"},
		{http.MethodPost, "/api/recipes"},
		{http.MethodGet, "/api/recipes/r1"},
		{http.MethodPut, "/api/recipes/r1"},
		{http.MethodDelete, "/api/recipes/r1"},
		{http.MethodPut, "/api/recipes/r1/favorite"},
		{http.MethodGet, "/api/favorites"},
		{http.MethodDelete, "/api/favorites"},
		{http.MethodPost, "/api/favorites/external"},
		{http.MethodGet, "/api/favorites/external/52772"},
		{http.MethodGet, "/api/search"},
		{http.MethodGet, "/api/events"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rec := serve(h, rt.method, rt.path, nil, false)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRoutes_UnknownMethodOnStaticRoute_Returns404(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodPatch, "/api/profile", nil, false)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_Register(t *testing.T) {
	h, m := newTestHandler(t)
	form := models.SignUp{Name: "Ana", Email: "ana@example.com", Password: "secret1", PasswordConfirmation: "secret1"}
	profile := models.Profile{UserID: "u1", Name: "Ana", Email: "ana@example.com"}

	m.profile.EXPECT().RegisterCredentials(gomock.Any(), form).Return(profile, nil)
	m.profile.EXPECT().CreateToken(gomock.Any(), profile).Return(models.Token{SignedString: "jwt"}, nil)

	rec := serve(h, http.MethodPost, "/api/auth/register", encodeBody(t, form), false)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bearer jwt", rec.Header().Get("Authorization"))
	assert.Equal(t, profile, decodeResponse[models.Profile](t, rec))
}

func TestRoutes_Register_ValidationError(t *testing.T) {
	h, m := newTestHandler(t)
	validationErr := fmt.Errorf("%w: %s: %w", validators.ErrValidation, validators.FieldEmail, validators.ErrInvalidEmail)
	m.profile.EXPECT().RegisterCredentials(gomock.Any(), gomock.Any()).Return(models.Profile{}, validationErr)

	rec := serve(h, http.MethodPost, "/api/auth/register", encodeBody(t, models.SignUp{}), false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), validators.ErrInvalidEmail.Error())
}

func TestRoutes_Register_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodPost, "/api/auth/register", strings.NewReader("{"), false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes_Login(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantHeader string
	}{
		{name: "success", wantStatus: http.StatusOK, wantHeader: "Bearer jwt"},
		{name: "no account", err: service.ErrNoAccount, wantStatus: http.StatusUnauthorized},
		{name: "mismatch", err: service.ErrMismatch, wantStatus: http.StatusUnauthorized},
		{name: "storage failure", err: fmt.Errorf("read: %w", store.ErrStorage), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			profile := models.Profile{UserID: "u1", Email: "ana@example.com"}

			if tt.err != nil {
				m.profile.EXPECT().Authenticate(gomock.Any(), "ana@example.com", "secret1").Return(models.Profile{}, tt.err)
			} else {
				m.profile.EXPECT().Authenticate(gomock.Any(), "ana@example.com", "secret1").Return(profile, nil)
				m.profile.EXPECT().CreateToken(gomock.Any(), profile).Return(models.Token{SignedString: "jwt"}, nil)
			}

			body := encodeBody(t, models.LoginRequest{Email: "ana@example.com", Password: "secret1"})
			rec := serve(h, http.MethodPost, "/api/auth/login", body, false)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantHeader, rec.Header().Get("Authorization"))
		})
	}
}

func TestRoutes_Login_TokenFailure(t *testing.T) {
	h, m := newTestHandler(t)
	m.profile.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Profile{UserID: "u1"}, nil)
	m.profile.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)

	rec := serve(h, http.MethodPost, "/api/auth/login", encodeBody(t, models.LoginRequest{}), false)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get("Authorization"))
}

func TestRoutes_Logout(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuth()
	m.profile.EXPECT().ClearProfile(gomock.Any()).Return(nil)

	rec := serve(h, http.MethodPost, "/api/auth/logout", nil, true)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRoutes_Profile(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectAuth()
		profile := models.Profile{UserID: "u1", Name: "Ana", Photo: "placeholder.png"}
		m.profile.EXPECT().GetProfile(gomock.Any()).Return(profile, nil)

		rec := serve(h, http.MethodGet, "/api/profile", nil, true)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, profile, decodeResponse[models.Profile](t, rec))
	})

	t.Run("get without profile", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectAuth()
		m.profile.EXPECT().GetProfile(gomock.Any()).Return(models.Profile{}, service.ErrNoProfile)

		rec := serve(h, http.MethodGet, "/api/profile", nil, true)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("update", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectAuth()
		in := models.Profile{Name: "Ana Maria", Email: "ana@example.com"}
		out := in
		out.UserID = "u1"
		m.profile.EXPECT().UpdateProfile(gomock.Any(), in).Return(out, nil)

		rec := serve(h, http.MethodPut, "/api/profile", encodeBody(t, in), true)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, out, decodeResponse[models.Profile](t, rec))
	})
}

func TestRoutes_Recipes_List(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuth()
	m.recipes.EXPECT().List(gomock.Any()).Return(nil)

	rec := serve(h, http.MethodGet, "/api/recipes", nil, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRoutes_Recipes_ListWithQuery(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuth()
	m.recipes.EXPECT().Search(gomock.Any(), "bolo").Return([]models.Recipe{{ID: "r1", Title: "Bolo"}})

	rec := serve(h, http.MethodGet, "/api/recipes?q=bolo", nil, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decodeResponse[[]models.Recipe](t, rec)
	assert.Len(t, got, 1)
	assert.Equal(t, "r1", got[0].ID)
}

func TestRoutes_Recipes_Create(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuth()
	in := models.Recipe{Title: "Bolo", Ingredients: "ovos", Preparation: "misture", PreparationTime: "30 min"}
	out := in
	out.ID = "r1"
	m.recipes.EXPECT().Create(gomock.Any(), in).Return(out, nil)

	rec := serve(h, http.MethodPost, "/api/recipes", encodeBody(t, in), true)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/recipes/r1", rec.Header().Get("Location"))
	assert.Equal(t, "r1", decodeResponse[models.Recipe](t, rec).ID)
}

func TestRoutes_Recipes_ByID(t *testing.T) {
	notFound := fmt.Errorf("error reading recipe: %w", store.ErrRecipeNotFound)

	t.Run("get", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectAuth()
		m.recipes.EXPECT().Get(gomock.Any(), "r1").Return(models.Recipe{ID: "r1", Title: "Bolo"}, nil)

		rec := serve(h, http.MethodGet, "/api/recipes/r1", nil, true)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Bolo", decodeResponse[models.Recipe](t, rec).Title)
	})

	t.Run("get missing", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectAuth()
		m.recipes.EXPECT().Get(gomock.Any(), "nope").Return(models.Recipe{}, notFound)

		rec := serve(h, http.MethodGet, "/api/recipes/nope", nil, true)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("update", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectAuth()
		in := models.Recipe{Title: "Bolo de milho", Ingredients: "milho", Preparation: "asse", PreparationTime: "1h"}
		out := in
		out.ID = "r1"
		m.recipes.EXPECT().Update(gomock.Any(), "r1", in).Return(out, nil)

		rec := serve(h, http.MethodPut, "/api/recipes/r1", encodeBody(t, in), true)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectAuth()
		m.recipes.EXPECT().Delete(gomock.Any(), "r1").Return(nil)

		rec := serve(h, http.MethodDelete, "/api/recipes/r1", nil, true)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("delete missing", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectAuth()
		m.recipes.EXPECT().Delete(gomock.Any(), "r1").Return(notFound)

		rec := serve(h, http.MethodDelete, "/api/recipes/r1", nil, true)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("set favorite", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectAuth()
		m.recipes.EXPECT().SetFavorite(gomock.Any(), "r1", true).Return(nil)

		rec := serve(h, http.MethodPut, "/api/recipes/r1/favorite", strings.NewReader(`{"favorito":true}`), true)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"favorito":true}`, rec.Body.String())
	})
}

func TestRoutes_Favorites(t *testing.T) {
	t.Run("combined view", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectAuth()
		m.favorites.EXPECT().CombinedView(gomock.Any()).Return([]models.FavoriteItem{
			{Origin: models.OriginLocal, ID: "r1", Title: "Bolo"},
			{Origin: models.OriginAPI, ID: "52772", Title: "Teriyaki Chicken"},
		})

		rec := serve(h, http.MethodGet, "/api/favorites", nil, true)

		assert.Equal(t, http.StatusOK, rec.Code)
		got := decodeResponse[[]models.FavoriteItem](t, rec)
		assert.Len(t, got, 2)
		assert.Equal(t, models.OriginAPI, got[1].Origin)
	})

	t.Run("remove", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectAuth()
		m.favorites.EXPECT().
			RemoveCombined(gomock.Any(), models.FavoriteItem{Origin: models.OriginAPI, ID: "52772"}).
			Return(nil)

		rec := serve(h, http.MethodDelete, "/api/favorites", strings.NewReader(`{"origem":"api","id":"52772"}`), true)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("remove unknown origin", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectAuth()
		m.favorites.EXPECT().RemoveCombined(gomock.Any(), gomock.Any()).Return(service.ErrUnknownOrigin)

		rec := serve(h, http.MethodDelete, "/api/favorites", strings.NewReader(`{"origem":"x","id":"1"}`), true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("remove without id", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectAuth()

		rec := serve(h, http.MethodDelete, "/api/favorites", strings.NewReader(`{"origem":"api"}`), true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("toggle external", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectAuth()
		m.favorites.EXPECT().ToggleExternal(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, r models.ExternalRecipe) (bool, error) {
				assert.Equal(t, "52772", r.ID)
				assert.Equal(t, "Teriyaki Chicken", r.Name)
				return true, nil
			})

		body := strings.NewReader(`{"idMeal":"52772","strMeal":"Teriyaki Chicken","strTags":"Meat"}`)
		rec := serve(h, http.MethodPost, "/api/favorites/external", body, true)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"favorito":true}`, rec.Body.String())
	})

	t.Run("toggle external without idMeal", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectAuth()

		rec := serve(h, http.MethodPost, "/api/favorites/external", strings.NewReader(`{"strMeal":"x"}`), true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("is external favorite", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectAuth()
		m.favorites.EXPECT().IsFavoriteExternal(gomock.Any(), "52772").Return(false)

		rec := serve(h, http.MethodGet, "/api/favorites/external/52772", nil, true)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"favorito":false}`, rec.Body.String())
	})
}

func TestRoutes_Search_PartialFailure(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuth()
	remoteErr := fmt.Errorf("%w: %w", adapter.ErrNetwork, errors.New("connection refused"))
	m.search.EXPECT().Search(gomock.Any(), "bolo").Return(models.SearchResult{
		Local:     []models.Recipe{{ID: "r1", Title: "Bolo"}},
		RemoteErr: remoteErr,
	})

	rec := serve(h, http.MethodGet, "/api/search?q=bolo", nil, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decodeResponse[searchResponse](t, rec)
	assert.Len(t, got.Local, 1)
	assert.NotNil(t, got.Remote)
	assert.Empty(t, got.Remote)
	assert.Empty(t, got.LocalError)
	assert.Equal(t, remoteErr.Error(), got.RemoteError)
}

func TestRoutes_InvalidToken(t *testing.T) {
	h, m := newTestHandler(t)
	m.profile.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

	rec := serve(h, http.MethodGet, "/api/recipes", nil, true)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
