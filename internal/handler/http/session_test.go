package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/mock"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// newSessionRouter serves the API over real services and an in-memory store.
func newSessionRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey:    "session-test-key",
			TokenIssuer:     "recipes",
			TokenDuration:   config.Duration(time.Hour),
			PasswordHashing: config.PasswordHashingPlain,
		},
	}
	storages := store.NewStoragesWithKV(store.NewMemoryKeyValueStore(), logger.Nop())
	recipeAPI := mock.NewMockRecipeAPIAdapter(gomock.NewController(t))

	services := service.NewServices(storages, recipeAPI, cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	return NewHandler(services, logger.Nop()).Init()
}

func sessionDo(t *testing.T, router http.Handler, method, target, authorization string, body any) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	if body != nil {
		req = httptest.NewRequest(method, target, encodeBody(t, body))
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func register(t *testing.T, router http.Handler, email string) string {
	t.Helper()

	rec := sessionDo(t, router, http.MethodPost, "/api/auth/register", "", models.SignUp{
		Name:                 "Ana Souza",
		Email:                email,
		Phone:                "11987654321",
		Password:             "segredo",
		PasswordConfirmation: "segredo",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	authorization := rec.Header().Get("Authorization")
	require.NotEmpty(t, authorization)
	return authorization
}

func TestSession_LogoutEndsSession(t *testing.T) {
	router := newSessionRouter(t)
	token := register(t, router, "ana@example.com")

	recipe := models.Recipe{Title: "Bolo", Ingredients: "ovos", Preparation: "asse", PreparationTime: "40 min"}
	rec := sessionDo(t, router, http.MethodPost, "/api/recipes", token, recipe)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = sessionDo(t, router, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = sessionDo(t, router, http.MethodGet, "/api/recipes", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = sessionDo(t, router, http.MethodPost, "/api/recipes", token, recipe)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = sessionDo(t, router, http.MethodPost, "/api/auth/login", "", models.LoginRequest{Email: "ana@example.com", Password: "segredo"})
	require.Equal(t, http.StatusOK, rec.Code)
	newToken := rec.Header().Get("Authorization")

	rec = sessionDo(t, router, http.MethodGet, "/api/recipes", newToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeResponse[[]models.Recipe](t, rec), 1)
}

func TestSession_ReRegistrationInvalidatesOldToken(t *testing.T) {
	router := newSessionRouter(t)
	oldToken := register(t, router, "ana@example.com")
	newToken := register(t, router, "bia@example.com")

	rec := sessionDo(t, router, http.MethodGet, "/api/profile", oldToken, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = sessionDo(t, router, http.MethodGet, "/api/profile", newToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bia@example.com", decodeResponse[models.Profile](t, rec).Email)
}
