package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"verdant/plantcare-api/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func signToken(t *testing.T, secret, userID string) string {
	t.Helper()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"type":    "auth",
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	s, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func newAuthTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	d, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, d.AutoMigrate(model.User{}))

	r := gin.New()
	r.Use(NewRequestIDMiddleware())
	r.GET("/protected", NewAuthMiddleware(d), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.MustGet("userID")})
	})

	return r, d
}

func doProtected(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	viper.Set("jwt.secret", "primary-secret")
	viper.Set("jwt.legacy_secrets", []string{})

	r, _ := newAuthTestRouter(t)

	w := doProtected(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No Authorization header provided")
}

func TestAuthMiddleware_PrimarySecret(t *testing.T) {
	viper.Set("jwt.secret", "primary-secret")
	viper.Set("jwt.legacy_secrets", []string{})

	r, d := newAuthTestRouter(t)
	require.NoError(t, d.Create(&model.User{ID: "u1", Name: "Ana", Email: "ana@example.com"}).Error)

	w := doProtected(r, "Bearer "+signToken(t, "primary-secret", "u1"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1")
}

func TestAuthMiddleware_LegacySecret(t *testing.T) {
	viper.Set("jwt.secret", "primary-secret")
	viper.Set("jwt.legacy_secrets", []string{"old-secret-a", "old-secret-b"})

	r, d := newAuthTestRouter(t)
	require.NoError(t, d.Create(&model.User{ID: "u1", Name: "Ana", Email: "ana@example.com"}).Error)

	w := doProtected(r, "Bearer "+signToken(t, "old-secret-b", "u1"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1")
}

func TestAuthMiddleware_UnknownSecret(t *testing.T) {
	viper.Set("jwt.secret", "primary-secret")
	viper.Set("jwt.legacy_secrets", []string{"old-secret-a"})

	r, d := newAuthTestRouter(t)
	require.NoError(t, d.Create(&model.User{ID: "u1", Name: "Ana", Email: "ana@example.com"}).Error)

	w := doProtected(r, "Bearer "+signToken(t, "some-other-secret", "u1"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Please authenticate")
}

func TestAuthMiddleware_UserGone(t *testing.T) {
	viper.Set("jwt.secret", "primary-secret")
	viper.Set("jwt.legacy_secrets", []string{})

	r, _ := newAuthTestRouter(t)

	w := doProtected(r, "Bearer "+signToken(t, "primary-secret", "deleted-user"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Please authenticate")
}

func TestAuthMiddleware_TestTokenGated(t *testing.T) {
	viper.Set("jwt.secret", "primary-secret")
	viper.Set("jwt.legacy_secrets", []string{})
	viper.Set("auth.allow_test_tokens", false)

	r, _ := newAuthTestRouter(t)

	w := doProtected(r, "Bearer test-token-abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	viper.Set("auth.allow_test_tokens", true)
	defer viper.Set("auth.allow_test_tokens", false)

	w = doProtected(r, "Bearer test-token-abc")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test-user-id")
}

func TestVerifyToken_FirstErrorReturned(t *testing.T) {
	viper.Set("jwt.secret", "primary-secret")
	viper.Set("jwt.legacy_secrets", []string{"old-secret-a"})

	_, err := VerifyToken("not-a-jwt")
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}

func TestVerifyToken_MissingUserIDClaim(t *testing.T) {
	viper.Set("jwt.secret", "primary-secret")
	viper.Set("jwt.legacy_secrets", []string{})

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"type": "auth",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	s, err := tok.SignedString([]byte("primary-secret"))
	require.NoError(t, err)

	_, err = VerifyToken(s)
	assert.EqualError(t, err, "token has no user_id claim")
}
