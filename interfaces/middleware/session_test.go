package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobcast/infrastructure/configuration"
	"jobcast/infrastructure/utils"
	"jobcast/interfaces/middleware"
	"jobcast/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func sessionRouter(authUsecase usecase.IAuthUsecase) *gin.Engine {
	router := gin.New()
	router.GET("/api/auth/session", middleware.Session(authUsecase), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"fid": ctx.GetInt64("fid"), "username": ctx.GetString("username")})
	})
	return router
}

func TestSession_ValidToken(t *testing.T) {
	authUsecase := usecase.NewAuthUsecase(nil, configuration.App{SecretKey: "test-secret", SessionTTL: 24})
	router := sessionRouter(authUsecase)

	now := time.Now()
	token, err := utils.GenerateToken(map[string]interface{}{
		"fid":        int64(3621),
		"signerUuid": "signer-1",
		"username":   "horsefacts",
		"iat":        now.Unix(),
		"exp":        now.Add(time.Hour).Unix(),
	}, "test-secret")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"fid":3621`)
	assert.Contains(t, w.Body.String(), `"username":"horsefacts"`)
}

func TestSession_MissingHeader(t *testing.T) {
	authUsecase := usecase.NewAuthUsecase(nil, configuration.App{SecretKey: "test-secret", SessionTTL: 24})
	router := sessionRouter(authUsecase)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSession_ExpiredToken(t *testing.T) {
	authUsecase := usecase.NewAuthUsecase(nil, configuration.App{SecretKey: "test-secret", SessionTTL: 24})
	router := sessionRouter(authUsecase)

	now := time.Now()
	token, err := utils.GenerateToken(map[string]interface{}{
		"fid": int64(3621),
		"iat": now.Add(-2 * time.Hour).Unix(),
		"exp": now.Add(-time.Hour).Unix(),
	}, "test-secret")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSession_WrongSecret(t *testing.T) {
	authUsecase := usecase.NewAuthUsecase(nil, configuration.App{SecretKey: "test-secret", SessionTTL: 24})
	router := sessionRouter(authUsecase)

	token, err := utils.GenerateToken(map[string]interface{}{
		"fid": int64(3621),
		"exp": time.Now().Add(time.Hour).Unix(),
	}, "other-secret")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
