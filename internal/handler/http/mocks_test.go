package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-places/internal/config"
	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/internal/service"
	"github.com/MKhiriev/go-places/internal/utils"
	"github.com/MKhiriev/go-places/models"
	"github.com/go-chi/chi/v5"
)

// mockAuthService implements service.AuthService for unit tests.
type mockAuthService struct {
	createTokenFn func(ctx context.Context, identity models.Identity) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) CreateToken(ctx context.Context, identity models.Identity) (models.Token, error) {
	return m.createTokenFn(ctx, identity)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockUserService implements service.UserService for unit tests.
type mockUserService struct {
	listUsersFn  func(ctx context.Context) ([]models.User, error)
	signupFn     func(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error)
	loginFn      func(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	deleteUserFn func(ctx context.Context, requesterID, userID string) error
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockUserService) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error) {
	return m.signupFn(ctx, req)
}

func (m *mockUserService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return m.loginFn(ctx, req)
}

func (m *mockUserService) DeleteUser(ctx context.Context, requesterID, userID string) error {
	return m.deleteUserFn(ctx, requesterID, userID)
}

// mockPlaceService implements service.PlaceService for unit tests.
type mockPlaceService struct {
	getPlaceByIDFn     func(ctx context.Context, placeID string) (models.Place, error)
	listPlacesByUserFn func(ctx context.Context, userID string) ([]models.Place, error)
	createPlaceFn      func(ctx context.Context, req models.CreatePlaceRequest) (models.Place, error)
	updatePlaceFn      func(ctx context.Context, req models.UpdatePlaceRequest) (models.Place, error)
	deletePlaceFn      func(ctx context.Context, requesterID, placeID string) error
}

func (m *mockPlaceService) GetPlaceByID(ctx context.Context, placeID string) (models.Place, error) {
	return m.getPlaceByIDFn(ctx, placeID)
}

func (m *mockPlaceService) ListPlacesByUser(ctx context.Context, userID string) ([]models.Place, error) {
	return m.listPlacesByUserFn(ctx, userID)
}

func (m *mockPlaceService) CreatePlace(ctx context.Context, req models.CreatePlaceRequest) (models.Place, error) {
	return m.createPlaceFn(ctx, req)
}

func (m *mockPlaceService) UpdatePlace(ctx context.Context, req models.UpdatePlaceRequest) (models.Place, error) {
	return m.updatePlaceFn(ctx, req)
}

func (m *mockPlaceService) DeletePlace(ctx context.Context, requesterID, placeID string) error {
	return m.deletePlaceFn(ctx, requesterID, placeID)
}

// mockAppInfoService implements service.AppInfoService for unit tests.
type mockAppInfoService struct {
	version string
	build   models.AppBuildInfo
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return m.build
}

const (
	testUserID  = "0195a0a4-7c1e-7b3a-9c4d-2f6e8a1b3c5d"
	testPlaceID = "0195a0a4-9d2f-7e4b-8a6c-3b7d9e1f2a4c"
	testToken   = "valid.jwt.token"
)

// newTestHandler builds a Handler over the given services with a temporary
// images directory and a 1 KiB image limit.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	if services.AppInfoService == nil {
		services.AppInfoService = &mockAppInfoService{version: "test-version"}
	}
	if services.AuthService == nil {
		services.AuthService = acceptingAuth(testUserID)
	}
	return NewHandler(
		services,
		config.Server{},
		config.Files{ImagesDir: t.TempDir(), MaxImageSize: 1024},
		logger.Nop(),
	)
}

// acceptingAuth accepts testToken as the token of userID.
func acceptingAuth(userID string) *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != testToken {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{Claims: models.TokenClaims{UserID: userID, Email: "a@x.com"}}, nil
		},
	}
}

// withIdentity returns r carrying the identity of userID, as the auth
// middleware would.
func withIdentity(r *http.Request, userID string) *http.Request {
	return r.WithContext(utils.WithIdentity(r.Context(), models.Identity{UserID: userID, Email: "a@x.com"}))
}

// withURLParams returns r with chi URL params set, for handlers called
// without the router.
func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// serve sends req through the full router of h.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}
