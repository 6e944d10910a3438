package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hustled_backend/internal/auth"
	"hustled_backend/internal/handlers"
	"hustled_backend/internal/middleware"
	"hustled_backend/internal/models"
	"hustled_backend/internal/repositories"
	"hustled_backend/internal/routes"
	"hustled_backend/internal/services"
	"hustled_backend/internal/validator"
	"hustled_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// The handler tests exercise the full request path (routing,
// middleware, binding, services) against in-memory repositories; the
// db handle threaded through the gin context is unused by the fakes.

type fakeUserRepo struct {
	nextID uint
	users  map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) FindByID(_ *gorm.DB, id uint) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByUsername(_ *gorm.DB, username string) (*models.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) ExistsByUsername(_ *gorm.DB, username string) (bool, error) {
	_, ok := f.users[username]
	return ok, nil
}

func (f *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	if _, ok := f.users[user.Username]; ok {
		return repositories.ErrUserAlreadyExists
	}
	f.nextID++
	user.ID = f.nextID
	copied := *user
	f.users[user.Username] = &copied
	return nil
}

func (f *fakeUserRepo) Update(_ *gorm.DB, user *models.User) error {
	if _, ok := f.users[user.Username]; !ok {
		return repositories.ErrUserNotFound
	}
	copied := *user
	f.users[user.Username] = &copied
	return nil
}

type fakeProfileRepo struct {
	nextID   uint
	profiles map[uint]*models.CandidateProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uint]*models.CandidateProfile)}
}

func (f *fakeProfileRepo) FindByUserID(_ *gorm.DB, userID uint) (*models.CandidateProfile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProfileRepo) ExistsByUserID(_ *gorm.DB, userID uint) (bool, error) {
	_, ok := f.profiles[userID]
	return ok, nil
}

func (f *fakeProfileRepo) Save(_ *gorm.DB, profile *models.CandidateProfile) error {
	if profile.ID == 0 {
		f.nextID++
		profile.ID = f.nextID
	}
	copied := *profile
	f.profiles[profile.UserID] = &copied
	return nil
}

type testEnv struct {
	router      *gin.Engine
	userRepo    *fakeUserRepo
	profileRepo *fakeProfileRepo
	tokens      *auth.TokenManager
}

func newTestEnv(t *testing.T, allowBodyUserID bool) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := newFakeUserRepo()
	profileRepo := newFakeProfileRepo()
	tokens := auth.NewTokenManager("handler-test-secret", time.Hour)

	authService := services.NewAuthService(userRepo, tokens)
	profileService := services.NewCandidateProfileService(profileRepo, allowBodyUserID)

	base := handlers.NewBaseHandler(validator.New(), apperrors.NewGinErrorHandler(false))
	appHandlers := &handlers.AppHandlers{
		AuthHandler:             handlers.NewAuthHandler(base, authService),
		CandidateProfileHandler: handlers.NewCandidateProfileHandler(base, profileService),
	}

	router := gin.New()
	router.Use(middleware.DBMiddleware(nil))
	routes.RegisterRoutes(router, appHandlers, tokens)

	return &testEnv{
		router:      router,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		tokens:      tokens,
	}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	parsed := map[string]interface{}{}
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &parsed)
	}
	return w, parsed
}

func (e *testEnv) signup(t *testing.T, path, username, password string) {
	t.Helper()
	w, _ := e.request(t, http.MethodPost, path, "", map[string]string{
		"username": username,
		"password": password,
		"email":    username + "@x.com",
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func (e *testEnv) loginToken(t *testing.T, path, username, password string) string {
	t.Helper()
	w, body := e.request(t, http.MethodPost, path, "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}
