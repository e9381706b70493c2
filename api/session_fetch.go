package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
	"verdant/plantcare-api/internal/model"
	"verdant/plantcare-api/internal/session"
	"verdant/plantcare-api/pkg/middleware"
	"verdant/plantcare-api/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

// sessionKeyCookie scopes the cached resolution to one browser. An IP
// won't do as a cache key: callers behind the same NAT would read each
// other's identities.
const sessionKeyCookie = "session_key"

const sessionKeyLifetime = 30 * 24 * time.Hour

func (a *API) sessionCacheKey(c *gin.Context) string {
	if key, err := c.Cookie(sessionKeyCookie); err == nil && key != "" {
		return key
	}

	key := util.RandStr(24)
	c.SetCookie(sessionKeyCookie, key, int(sessionKeyLifetime.Seconds()), "/", "", viper.GetBool("host.ssl.enabled"), true)
	return key
}

// SessionFetch resolves the effective user for the caller. Identity
// can come from the session cookie, from a bearer header or from the
// cached previous resolution, consulted in exactly that order; the
// first source that yields a user wins. Callers with no identity at
// all get a synthesized guest instead of an error, authenticated
// routes will still reject the guest's token.
func (a *API) SessionFetch(c *gin.Context) {
	cacheKey := a.sessionCacheKey(c)

	cookieSource := session.SourceFunc{
		SourceName: "cookie",
		Fn: func(ctx context.Context) (*session.Identity, error) {
			tokenStr, err := c.Cookie("session_token")
			if err != nil {
				return nil, nil
			}

			return a.identityFromToken(tokenStr)
		},
	}

	headerSource := session.SourceFunc{
		SourceName: "header",
		Fn: func(ctx context.Context) (*session.Identity, error) {
			header := c.GetHeader("Authorization")
			if header == "" {
				return nil, nil
			}

			return a.identityFromToken(strings.TrimPrefix(header, "Bearer "))
		},
	}

	resolver := session.NewResolver(
		cookieSource,
		headerSource,
		a.Sessions.Source(cacheKey),
	)

	id, source := resolver.Resolve(c.Request.Context())

	a.Sessions.Put(cacheKey, id)

	c.JSON(http.StatusOK, gin.H{
		"user":   id,
		"source": source,
	})
}

func (a *API) identityFromToken(tokenStr string) (*session.Identity, error) {
	userID, err := middleware.VerifyToken(tokenStr)
	if err != nil {
		return nil, err
	}

	var user model.User
	if err := a.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &session.Identity{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}
