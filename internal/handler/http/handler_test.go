package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/mock"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

const testToken = "test-token"

type testMocks struct {
	recipes   *mock.MockRecipeService
	favorites *mock.MockFavoritesService
	profile   *mock.MockProfileService
	search    *mock.MockSearchService
	appInfo   *mock.MockAppInfoService
	notifier  store.Notifier
}

func newTestHandler(t *testing.T) (*Handler, *testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &testMocks{
		recipes:   mock.NewMockRecipeService(ctrl),
		favorites: mock.NewMockFavoritesService(ctrl),
		profile:   mock.NewMockProfileService(ctrl),
		search:    mock.NewMockSearchService(ctrl),
		appInfo:   mock.NewMockAppInfoService(ctrl),
		notifier:  store.NewNotifier(),
	}

	h := NewHandler(&service.Services{
		RecipeService:    m.recipes,
		FavoritesService: m.favorites,
		ProfileService:   m.profile,
		SearchService:    m.search,
		AppInfoService:   m.appInfo,
		Notifier:         m.notifier,
	}, logger.Nop())

	return h, m
}

// expectAuth lets testToken through the auth middleware as user "u1".
func (m *testMocks) expectAuth() {
	m.profile.EXPECT().
		ParseToken(gomock.Any(), testToken).
		Return(models.Token{UserID: "u1"}, nil)
}

func encodeBody(t *testing.T, v any) io.Reader {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}

// serve sends a request through the full router. When authorized is set the
// request carries testToken.
func serve(h *Handler, method, target string, body io.Reader, authorized bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func decodeResponse[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}
