package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"verdant/plantcare-api/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const testTokenPrefix = "test-token-"

// VerifyToken checks an HS256 token against jwt.secret first and then
// against every entry of jwt.legacy_secrets in order; the first
// successful verification wins. When all attempts fail the error of
// the first (primary secret) attempt is returned. The fallback list
// exists to bridge tokens issued by a previously deployed signing
// setup; new deployments should configure a single secret and leave
// the list empty.
func VerifyToken(tokenStr string) (userID string, err error) {
	secrets := append(
		[]string{viper.GetString("jwt.secret")},
		viper.GetStringSlice("jwt.legacy_secrets")...,
	)

	var (
		token    *jwt.Token
		firstErr error
	)

	for i, secret := range secrets {
		t, parseErr := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
			}

			return []byte(secret), nil
		})
		if parseErr == nil && t.Valid {
			token = t

			if i > 0 {
				zap.L().Warn("Token verified with a legacy secret", zap.Int("secret_index", i))
			}
			break
		}

		if firstErr == nil {
			if parseErr == nil {
				parseErr = errors.New("token is invalid")
			}
			firstErr = parseErr
		}
	}

	if token == nil {
		return "", firstErr
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("token has no claims")
	}

	userID, ok = claims["user_id"].(string)
	if !ok {
		return "", errors.New("token has no user_id claim")
	}

	return userID, nil
}

// NewAuthMiddleware returns a middleware that authenticates requests
// carrying a bearer token in the Authorization header and attaches the
// resolved user to the request context.
func NewAuthMiddleware(d *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "No Authorization header provided",
				"requestID": requestID,
			})
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")

		// Fixed synthetic identity for local development and tests.
		// config.Setup refuses to enable this in release mode
		if strings.HasPrefix(tokenStr, testTokenPrefix) && viper.GetBool("auth.allow_test_tokens") {
			zap.L().Debug("Using test token", zap.String("requestID", requestID))

			c.Set("userID", "test-user-id")
			c.Set("userEmail", "test@example.com")
			c.Set("userName", "Test User")
			c.Next()
			return
		}

		userID, err := VerifyToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Please authenticate",
				"details":   err.Error(),
				"requestID": requestID,
			})

			zap.L().Debug("Failed to verify token", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		// A token can outlive its account. A missing user is an
		// authentication failure, not a not-found
		var user model.User
		err = d.Where("id = ?", userID).First(&user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":     "Please authenticate",
					"requestID": requestID,
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to check if user exists", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.Set("userID", user.ID)
		c.Set("userEmail", user.Email)
		c.Set("userName", user.Name)
		c.Next()
	}
}
