package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"forumhub/internal/auth"
	"forumhub/internal/config"
	"forumhub/internal/handler"
	"forumhub/internal/model"
	"forumhub/internal/repository"
	"forumhub/internal/service"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) ListByRank(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// MockPostRepository is a mock implementation of repository.PostRepository.
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *model.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) ListApproved(ctx context.Context, limit int) ([]repository.ApprovedPost, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ApprovedPost), args.Error(1)
}

// MockStore is a mock implementation of storage.Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Put(ctx context.Context, key, contentType string, body io.Reader) error {
	args := m.Called(ctx, key, contentType, body)
	return args.Error(0)
}

func (m *MockStore) URL(key string) string {
	args := m.Called(key)
	return args.String(0)
}

// MockTokenStore is a mock implementation of auth.TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint, username string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, username, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uint), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

type testServer struct {
	e         *echo.Echo
	jwt       *auth.JWTService
	userRepo  *MockUserRepository
	postRepo  *MockPostRepository
	blobStore *MockStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{JWTSecret: "test-secret"}

	userRepo := new(MockUserRepository)
	postRepo := new(MockPostRepository)
	blobStore := new(MockStore)

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	gate := auth.NewGate(userRepo)

	postService := service.NewPostService(postRepo)
	memberService := service.NewMemberService(userRepo)
	uploadService := service.NewUploadService(blobStore)
	authService := service.NewAuthService(userRepo, jwtService, new(MockTokenStore))

	e := echo.New()
	Register(
		e,
		cfg,
		gate,
		handler.NewAuthHandler(authService),
		handler.NewPostHandler(postService),
		handler.NewMemberHandler(memberService),
		handler.NewUploadHandler(uploadService),
	)

	return &testServer{e: e, jwt: jwtService, userRepo: userRepo, postRepo: postRepo, blobStore: blobStore}
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(body.Bytes(), &envelope))
	require.Contains(t, envelope, "success")
	return envelope
}

func TestPreflightBypassesRouting(t *testing.T) {
	ts := newTestServer(t)

	paths := []string{"/api/posts", "/api/upload", "/anything/else"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, path, nil)
			req.Header.Set(echo.HeaderOrigin, "http://example.com")
			rec := httptest.NewRecorder()

			ts.e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Empty(t, rec.Body.String())
			assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
			assert.NotEmpty(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods))
		})
	}
}

func TestUnmatchedAPIRouteReturnsEnvelope(t *testing.T) {
	ts := newTestServer(t)

	// Unknown paths and method mismatches on known paths are equally
	// unmatched: both get the 404 envelope, never a 401 or 405.
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/does-not-exist"},
		{http.MethodPut, "/api/posts"},
		{http.MethodDelete, "/api/members"},
		{http.MethodGet, "/api/upload"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			ts.e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			envelope := decodeEnvelope(t, rec.Body)
			assert.Equal(t, false, envelope["success"])
			assert.Equal(t, "not found", envelope["message"])
		})
	}
}

func TestMissingStaticAssetKeepsDefaultRendering(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/missing/asset.css", nil)
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, rec.Body.String(), "success")
}

func TestUploadRequiresAuthentication(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "no authorization header", token: ""},
		{name: "malformed token", token: "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)

			req := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader(""))
			if tt.token != "" {
				req.Header.Set(echo.HeaderAuthorization, "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			ts.e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			envelope := decodeEnvelope(t, rec.Body)
			assert.Equal(t, false, envelope["success"])

			// Rejected before any blob store interaction.
			ts.blobStore.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUploadWithoutFileReturns400(t *testing.T) {
	ts := newTestServer(t)
	ts.userRepo.On("FindByID", mock.Anything, uint(42)).Return(&model.User{ID: 42, Username: "alice"}, nil)

	token, err := ts.jwt.GenerateAccessToken(42, "alice")
	require.NoError(t, err)

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec.Body)
	assert.Equal(t, false, envelope["success"])
	ts.blobStore.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadStoresFileAndReturnsURL(t *testing.T) {
	ts := newTestServer(t)
	ts.userRepo.On("FindByID", mock.Anything, uint(42)).Return(&model.User{ID: 42, Username: "alice"}, nil)
	ts.blobStore.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "uploads/") && strings.HasSuffix(key, "-avatar.png")
	}), mock.Anything, mock.Anything).Return(nil)
	ts.blobStore.On("URL", mock.Anything).Return("/r2-assets/uploads/123-avatar.png")

	token, err := ts.jwt.GenerateAccessToken(42, "alice")
	require.NoError(t, err)

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "avatar.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec.Body)
	assert.Equal(t, true, envelope["success"])
	assert.Equal(t, "/r2-assets/uploads/123-avatar.png", envelope["url"])
	ts.blobStore.AssertExpectations(t)
}

func TestCreatePostRequiresAuthentication(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/posts",
		strings.NewReader(`{"category":"general","title":"t","content":"c"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	envelope := decodeEnvelope(t, rec.Body)
	assert.Equal(t, false, envelope["success"])
	ts.postRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreatePostIgnoresClientSuppliedStatus(t *testing.T) {
	ts := newTestServer(t)
	ts.userRepo.On("FindByID", mock.Anything, uint(42)).Return(&model.User{ID: 42, Username: "alice"}, nil)

	var stored *model.Post
	ts.postRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*model.Post)
		}).
		Return(nil)

	token, err := ts.jwt.GenerateAccessToken(42, "alice")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/posts",
		strings.NewReader(`{"category":"general","title":"t","content":"c","status":"approved"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, stored)
	assert.Equal(t, model.StatusPendingReview, stored.Status)
	assert.Equal(t, uint(42), stored.AuthorID)
}

func TestListPostsIsPublic(t *testing.T) {
	ts := newTestServer(t)
	ts.postRepo.On("ListApproved", mock.Anything, 20).Return([]repository.ApprovedPost{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec.Body)
	assert.Equal(t, true, envelope["success"])
	assert.Contains(t, envelope, "posts")
}

func TestLoginFailureIsUniform401(t *testing.T) {
	ts := newTestServer(t)
	ts.userRepo.On("FindByUsername", mock.Anything, "nobody").Return(nil, gorm.ErrRecordNotFound)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"nobody","password":"whatever"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	envelope := decodeEnvelope(t, rec.Body)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "invalid username or password", envelope["message"])
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
