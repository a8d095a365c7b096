package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-places/internal/config"
	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/internal/mock"
	"github.com/MKhiriev/go-places/internal/store"
	"github.com/MKhiriev/go-places/internal/utils"
	"github.com/MKhiriev/go-places/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const (
	testUserID   = "0195a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b"
	otherUserID  = "0195a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5c"
	testSignKey  = "test-sign-key"
	testIssuer   = "go-places-test"
	defaultImage = "https://dummyimage.com/user"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:      testSignKey,
		TokenIssuer:       testIssuer,
		TokenDuration:     time.Hour,
		PasswordHashCost:  bcrypt.MinCost,
		DefaultUserImage:  defaultImage,
		DefaultPlaceImage: "https://dummyimage.com/place",
		Version:           "test",
	}
}

type userServiceMocks struct {
	users   *mock.MockUserRepository
	images  *mock.MockImageStorage
	remover *mock.MockImageRemover
}

// newTestUserService returns the bare *userService without the validation
// wrapper.
func newTestUserService(t *testing.T) (*userService, userServiceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := userServiceMocks{
		users:   mock.NewMockUserRepository(ctrl),
		images:  mock.NewMockImageStorage(ctrl),
		remover: mock.NewMockImageRemover(ctrl),
	}

	cfg := testAppConfig()
	storages := &store.Storages{UserRepository: m.users, ImageStorage: m.images}
	svc := NewUserService(storages, NewAuthService(cfg, logger.Nop()), m.remover, cfg, logger.Nop())

	return svc.(*UserValidationService).inner.(*userService), m
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

// ── Signup ───────────────────────────────────────────────────────────────────

func TestUserService_Signup_Success(t *testing.T) {
	svc, m := newTestUserService(t)
	ctx := context.Background()

	m.users.EXPECT().FindUserByEmail(ctx, "max@test.com").Return(models.User{}, store.ErrUserNotFound)
	m.users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.True(t, utils.IsValidUUID(u.UserID))
			assert.Equal(t, "Max", u.Name)
			assert.Equal(t, "max@test.com", u.Email)
			assert.Equal(t, defaultImage, u.Image)
			assert.NoError(t, utils.CheckPassword(u.Password, "secret1"), "password must be stored hashed")
			u.Places = []string{}
			return u, nil
		},
	)

	resp, err := svc.Signup(ctx, models.SignupRequest{Name: " Max ", Email: " Max@Test.com", Password: "secret1"})
	require.NoError(t, err)

	assert.Equal(t, "max@test.com", resp.Email)
	require.NotEmpty(t, resp.Token)

	token, err := utils.ValidateAndParseJWTToken(resp.Token, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, token.Claims.UserID)
	assert.Equal(t, "max@test.com", token.Claims.Email)
}

func TestUserService_Signup_EmailExists(t *testing.T) {
	svc, m := newTestUserService(t)
	ctx := context.Background()

	m.users.EXPECT().FindUserByEmail(ctx, "max@test.com").Return(models.User{UserID: testUserID}, nil)

	_, err := svc.Signup(ctx, models.SignupRequest{Name: "Max", Email: "max@test.com", Password: "secret1"})
	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestUserService_Signup_LookupFails(t *testing.T) {
	svc, m := newTestUserService(t)
	ctx := context.Background()

	m.users.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, store.ErrExecutingQuery)

	_, err := svc.Signup(ctx, models.SignupRequest{Name: "Max", Email: "max@test.com", Password: "secret1"})
	require.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestUserService_Signup_StoresUploadedImage(t *testing.T) {
	svc, m := newTestUserService(t)
	ctx := context.Background()
	upload := &models.ImageUpload{Ext: "png", Content: strings.NewReader("png")}

	m.users.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	m.images.EXPECT().Save(ctx, "png", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, r io.Reader) (string, error) {
			b, _ := io.ReadAll(r)
			assert.Equal(t, "png", string(b))
			return "/uploads/images/a.png", nil
		},
	)
	m.users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "/uploads/images/a.png", u.Image)
			return u, nil
		},
	)

	_, err := svc.Signup(ctx, models.SignupRequest{Name: "Max", Email: "max@test.com", Password: "secret1", Image: upload})
	require.NoError(t, err)
}

func TestUserService_Signup_CreateFailsRemovesImage(t *testing.T) {
	svc, m := newTestUserService(t)
	ctx := context.Background()
	upload := &models.ImageUpload{Ext: "jpg", Content: strings.NewReader("jpg")}

	gomock.InOrder(
		m.users.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, store.ErrUserNotFound),
		m.images.EXPECT().Save(ctx, "jpg", gomock.Any()).Return("/uploads/images/b.jpg", nil),
		m.users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists),
		m.remover.EXPECT().Remove(ctx, "/uploads/images/b.jpg"),
	)

	_, err := svc.Signup(ctx, models.SignupRequest{Name: "Max", Email: "max@test.com", Password: "secret1", Image: upload})
	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestUserService_Signup_ImageSaveFails(t *testing.T) {
	svc, m := newTestUserService(t)
	ctx := context.Background()

	m.users.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	m.images.EXPECT().Save(ctx, gomock.Any(), gomock.Any()).Return("", store.ErrImageTooLarge)

	_, err := svc.Signup(ctx, models.SignupRequest{
		Name: "Max", Email: "max@test.com", Password: "secret1",
		Image: &models.ImageUpload{Ext: "png", Content: strings.NewReader("big")},
	})
	require.ErrorIs(t, err, store.ErrImageTooLarge)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestUserService_Login(t *testing.T) {
	stored := models.User{UserID: testUserID, Email: "max@test.com"}

	t.Run("success", func(t *testing.T) {
		svc, m := newTestUserService(t)
		ctx := context.Background()
		user := stored
		user.Password = hashed(t, "secret1")

		m.users.EXPECT().FindUserByEmail(ctx, "max@test.com").Return(user, nil)

		resp, err := svc.Login(ctx, models.LoginRequest{Email: "MAX@test.com ", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, testUserID, resp.UserID)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, m := newTestUserService(t)
		ctx := context.Background()
		user := stored
		user.Password = hashed(t, "secret1")

		m.users.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(user, nil)

		_, err := svc.Login(ctx, models.LoginRequest{Email: "max@test.com", Password: "secret2"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, m := newTestUserService(t)
		ctx := context.Background()

		m.users.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, store.ErrUserNotFound)

		_, err := svc.Login(ctx, models.LoginRequest{Email: "nobody@test.com", Password: "secret1"})
		require.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

// ── ListUsers ────────────────────────────────────────────────────────────────

func TestUserService_ListUsers(t *testing.T) {
	svc, m := newTestUserService(t)
	ctx := context.Background()

	m.users.EXPECT().ListUsers(ctx).Return([]models.User{}, nil)
	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	m.users.EXPECT().ListUsers(ctx).Return(nil, store.ErrExecutingQuery)
	_, err = svc.ListUsers(ctx)
	require.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ── DeleteUser ───────────────────────────────────────────────────────────────

func TestUserService_DeleteUser_Success(t *testing.T) {
	svc, m := newTestUserService(t)
	ctx := context.Background()
	user := models.User{UserID: testUserID, Image: "/uploads/images/u.png", Places: []string{"p1", "p2"}}

	m.users.EXPECT().FindUserByID(ctx, testUserID).Return(user, nil)
	m.users.EXPECT().DeleteUser(ctx, user).Return([]string{"/uploads/images/p1.png", "/uploads/images/p2.png"}, nil)
	m.remover.EXPECT().Remove(ctx, "/uploads/images/u.png")
	m.remover.EXPECT().Remove(ctx, "/uploads/images/p1.png")
	m.remover.EXPECT().Remove(ctx, "/uploads/images/p2.png")

	require.NoError(t, svc.DeleteUser(ctx, testUserID, testUserID))
}

func TestUserService_DeleteUser_NotOwner(t *testing.T) {
	svc, _ := newTestUserService(t)

	err := svc.DeleteUser(context.Background(), otherUserID, testUserID)
	require.ErrorIs(t, err, ErrNotAccountOwner)
}

func TestUserService_DeleteUser_MalformedID(t *testing.T) {
	svc, _ := newTestUserService(t)

	err := svc.DeleteUser(context.Background(), "abc", "abc")
	require.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	svc, m := newTestUserService(t)
	ctx := context.Background()

	m.users.EXPECT().FindUserByID(ctx, testUserID).Return(models.User{}, store.ErrUserNotFound)

	err := svc.DeleteUser(ctx, testUserID, testUserID)
	require.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_DeleteUser_TransactionFailsKeepsImages(t *testing.T) {
	svc, m := newTestUserService(t)
	ctx := context.Background()
	user := models.User{UserID: testUserID, Image: "/uploads/images/u.png"}

	m.users.EXPECT().FindUserByID(ctx, testUserID).Return(user, nil)
	m.users.EXPECT().DeleteUser(ctx, user).Return(nil, errors.Join(store.ErrExecutingStatement, errors.New("lock timeout")))

	err := svc.DeleteUser(ctx, testUserID, testUserID)
	require.ErrorIs(t, err, store.ErrExecutingStatement)
}
