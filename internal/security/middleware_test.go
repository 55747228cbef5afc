package security_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quillist/internal/apperrors"
	"quillist/internal/model"
	"quillist/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBlocklist struct{ mock.Mock }

func (m *MockBlocklist) Contains(ctx context.Context, jti string) (bool, error) {
	args := m.Called(ctx, jti)
	return args.Bool(0), args.Error(1)
}

type MockUserProvider struct{ mock.Mock }

func (m *MockUserProvider) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestJWTMiddleware_MissingHeader(t *testing.T) {
	service := newTestJWTService(t)
	blocklist := new(MockBlocklist)

	called := false
	mw := security.JWTMiddleware(security.AccessToken, service, blocklist)(okHandler(&called))

	recorder := httptest.NewRecorder()
	mw.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/books", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), apperrors.ErrMissingCredential.Error())
	assert.False(t, called)
	blocklist.AssertNotCalled(t, "Contains", mock.Anything, mock.Anything)
}

func TestJWTMiddleware_MalformedHeader(t *testing.T) {
	service := newTestJWTService(t)
	blocklist := new(MockBlocklist)

	called := false
	mw := security.JWTMiddleware(security.AccessToken, service, blocklist)(okHandler(&called))

	request := httptest.NewRequest(http.MethodGet, "/api/v1/books", nil)
	request.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	recorder := httptest.NewRecorder()
	mw.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, called)
}

func TestJWTMiddleware_InvalidToken(t *testing.T) {
	service := newTestJWTService(t)
	blocklist := new(MockBlocklist)

	called := false
	mw := security.JWTMiddleware(security.AccessToken, service, blocklist)(okHandler(&called))

	request := httptest.NewRequest(http.MethodGet, "/api/v1/books", nil)
	request.Header.Set("Authorization", "Bearer не-токен")

	recorder := httptest.NewRecorder()
	mw.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), apperrors.ErrInvalidToken.Error())
	assert.False(t, called)
}

func TestJWTMiddleware_RevokedToken(t *testing.T) {
	service := newTestJWTService(t)
	tokenStr, err := service.CreateToken(testTokenUser, time.Hour, false)
	require.NoError(t, err)

	blocklist := new(MockBlocklist)
	blocklist.On("Contains", mock.Anything, mock.Anything).Return(true, nil)

	called := false
	mw := security.JWTMiddleware(security.AccessToken, service, blocklist)(okHandler(&called))

	request := httptest.NewRequest(http.MethodGet, "/api/v1/books", nil)
	request.Header.Set("Authorization", "Bearer "+tokenStr)

	recorder := httptest.NewRecorder()
	mw.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	// отозванный токен отвечает тем же кодом, что и невалидный
	assert.Contains(t, recorder.Body.String(), apperrors.ErrInvalidToken.Error())
	assert.False(t, called)
}

func TestJWTMiddleware_BlocklistError(t *testing.T) {
	service := newTestJWTService(t)
	tokenStr, err := service.CreateToken(testTokenUser, time.Hour, false)
	require.NoError(t, err)

	blocklist := new(MockBlocklist)
	blocklist.On("Contains", mock.Anything, mock.Anything).Return(false, assert.AnError)

	called := false
	mw := security.JWTMiddleware(security.AccessToken, service, blocklist)(okHandler(&called))

	request := httptest.NewRequest(http.MethodGet, "/api/v1/books", nil)
	request.Header.Set("Authorization", "Bearer "+tokenStr)

	recorder := httptest.NewRecorder()
	mw.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.False(t, called)
}

func TestJWTMiddleware_RefreshTokenOnAccessRoute(t *testing.T) {
	service := newTestJWTService(t)
	tokenStr, err := service.CreateToken(testTokenUser, time.Hour, true)
	require.NoError(t, err)

	blocklist := new(MockBlocklist)
	blocklist.On("Contains", mock.Anything, mock.Anything).Return(false, nil)

	called := false
	mw := security.JWTMiddleware(security.AccessToken, service, blocklist)(okHandler(&called))

	request := httptest.NewRequest(http.MethodGet, "/api/v1/books", nil)
	request.Header.Set("Authorization", "Bearer "+tokenStr)

	recorder := httptest.NewRecorder()
	mw.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), apperrors.ErrAccessTokenRequired.Error())
	assert.False(t, called)
}

func TestJWTMiddleware_AccessTokenOnRefreshRoute(t *testing.T) {
	service := newTestJWTService(t)
	tokenStr, err := service.CreateToken(testTokenUser, time.Hour, false)
	require.NoError(t, err)

	blocklist := new(MockBlocklist)
	blocklist.On("Contains", mock.Anything, mock.Anything).Return(false, nil)

	called := false
	mw := security.JWTMiddleware(security.RefreshToken, service, blocklist)(okHandler(&called))

	request := httptest.NewRequest(http.MethodGet, "/api/v1/auth/refresh-token", nil)
	request.Header.Set("Authorization", "Bearer "+tokenStr)

	recorder := httptest.NewRecorder()
	mw.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), apperrors.ErrRefreshTokenRequired.Error())
	assert.False(t, called)
}

func TestJWTMiddleware_Success(t *testing.T) {
	service := newTestJWTService(t)
	tokenStr, err := service.CreateToken(testTokenUser, time.Hour, false)
	require.NoError(t, err)

	blocklist := new(MockBlocklist)
	blocklist.On("Contains", mock.Anything, mock.Anything).Return(false, nil)

	var gotClaims *security.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := security.GetClaimsFromContext(r.Context())
		require.NoError(t, err)
		gotClaims = claims
		w.WriteHeader(http.StatusOK)
	})

	mw := security.JWTMiddleware(security.AccessToken, service, blocklist)(next)

	request := httptest.NewRequest(http.MethodGet, "/api/v1/books", nil)
	request.Header.Set("Authorization", "Bearer "+tokenStr)

	recorder := httptest.NewRecorder()
	mw.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, gotClaims)
	assert.Equal(t, testTokenUser, gotClaims.User)
}

func requestWithClaims(t *testing.T) *http.Request {
	t.Helper()
	request := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	claims := &security.Claims{User: testTokenUser}
	return request.WithContext(context.WithValue(request.Context(), security.ClaimsContextKey, claims))
}

func TestRoleMiddleware_NoClaims(t *testing.T) {
	users := new(MockUserProvider)

	called := false
	mw := security.RoleMiddleware(users, model.RoleUser)(okHandler(&called))

	recorder := httptest.NewRecorder()
	mw.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, called)
}

func TestRoleMiddleware_UserNotFound(t *testing.T) {
	users := new(MockUserProvider)
	users.On("FindByEmail", mock.Anything, testTokenUser.Email).Return(nil, apperrors.ErrUserNotFound)

	called := false
	mw := security.RoleMiddleware(users, model.RoleUser)(okHandler(&called))

	recorder := httptest.NewRecorder()
	mw.ServeHTTP(recorder, requestWithClaims(t))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.False(t, called)
}

// Неподтверждённый аккаунт получает отказ до проверки роли,
// даже когда роль подошла бы
func TestRoleMiddleware_UnverifiedBeforeRole(t *testing.T) {
	users := new(MockUserProvider)
	users.On("FindByEmail", mock.Anything, testTokenUser.Email).Return(&model.User{
		Email:      testTokenUser.Email,
		Role:       model.RoleAdmin,
		IsVerified: false,
	}, nil)

	called := false
	mw := security.RoleMiddleware(users, model.RoleAdmin)(okHandler(&called))

	recorder := httptest.NewRecorder()
	mw.ServeHTTP(recorder, requestWithClaims(t))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Contains(t, recorder.Body.String(), apperrors.ErrAccountNotVerified.Error())
	assert.False(t, called)
}

func TestRoleMiddleware_RoleNotAllowed(t *testing.T) {
	users := new(MockUserProvider)
	users.On("FindByEmail", mock.Anything, testTokenUser.Email).Return(&model.User{
		Email:      testTokenUser.Email,
		Role:       model.RoleUser,
		IsVerified: true,
	}, nil)

	called := false
	mw := security.RoleMiddleware(users, model.RoleAdmin)(okHandler(&called))

	recorder := httptest.NewRecorder()
	mw.ServeHTTP(recorder, requestWithClaims(t))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Contains(t, recorder.Body.String(), apperrors.ErrInsufficientPermission.Error())
	assert.False(t, called)
}

func TestRoleMiddleware_Success(t *testing.T) {
	verifiedUser := &model.User{
		UID:        testTokenUser.UserUID,
		Email:      testTokenUser.Email,
		Role:       model.RoleUser,
		IsVerified: true,
	}
	users := new(MockUserProvider)
	users.On("FindByEmail", mock.Anything, testTokenUser.Email).Return(verifiedUser, nil)

	var gotUser *model.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := security.GetCurrentUserFromContext(r.Context())
		require.NoError(t, err)
		gotUser = user
		w.WriteHeader(http.StatusOK)
	})

	mw := security.RoleMiddleware(users, model.RoleAdmin, model.RoleUser)(next)

	recorder := httptest.NewRecorder()
	mw.ServeHTTP(recorder, requestWithClaims(t))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, verifiedUser, gotUser)
}
