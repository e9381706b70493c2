// Package api contains all endpoints available
package api

import (
	"context"
	"fmt"
	"time"
	"verdant/plantcare-api/db"
	"verdant/plantcare-api/internal/service"
	"verdant/plantcare-api/internal/session"
	"verdant/plantcare-api/internal/storage"
	"verdant/plantcare-api/pkg/middleware"
	"verdant/plantcare-api/pkg/security"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var store = persist.NewMemoryStore(time.Minute)

type API struct {
	DB       *gorm.DB
	Router   *gin.Engine
	Argon    *security.ArgonHash
	Store    storage.Store
	Vision   *service.Vision
	Sessions *session.Cache
}

func NewRouter() (*API, error) {
	a := &API{
		Argon:    security.New(),
		Sessions: session.NewCache(time.Hour),
	}

	db, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	a.DB = db

	makeLogger()

	a.Store, err = storage.NewFromConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize image storage, %w", err)
	}

	a.Vision, err = service.NewVision(context.Background())
	if err != nil {
		zap.L().Warn("Plant analysis disabled", zap.Error(err))
		a.Vision = nil
	}

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true
	router.MaxMultipartMemory = 5 << 20

	a.registerRoutes()

	service.ReminderCleanup(time.Hour, db)

	return a, nil
}

func (a *API) registerRoutes() {
	auth := middleware.NewAuthMiddleware(a.DB)
	loginLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: 2,
		Burst:             5,
	})
	maxUploadSize := viper.GetInt64("upload.max_size")

	main := a.Router.Group("/api")
	{
		// HEAD /api/heartbeat		-> Used to check if the server is alive
		main.HEAD("/heartbeat", a.Heartbeat)

		// HEAD /api/validate		-> Validates a bearer token
		main.HEAD("/validate", auth, a.Validate)

		// GET /api/session		-> Resolves the effective user for the caller
		main.GET("/session", a.SessionFetch)

		// GET /api/uploads/:filename	-> Serves an uploaded image
		main.GET("/uploads/:filename", cacheFor(60), a.UploadServe)
	}

	users := main.Group("/users", middleware.BodySizeLimiter(1<<20))
	{
		// POST /api/users/register	-> Registers a new user
		users.POST("/register", loginLimiter, a.UserRegister)

		// POST /api/users/login	-> Logs in a user and returns a bearer token
		users.POST("/login", loginLimiter, a.UserLogin)

		// GET /api/users/me		-> Returns the caller's profile
		users.GET("/me", auth, a.UserFetch)

		// PUT /api/users/me		-> Updates the caller's name
		users.PUT("/me", auth, a.UserUpdate)

		// PUT /api/users/me/password	-> Changes the caller's password
		users.PUT("/me/password", auth, a.UserPassword)
	}

	// The avatar route takes a file so it gets the bigger body limit
	main.PUT("/users/me/avatar", auth, middleware.BodySizeLimiter(maxUploadSize), a.UserAvatar)

	plants := main.Group("/plants", auth)
	{
		// GET /api/plants		-> Lists the caller's plants
		plants.GET("", a.PlantList)

		// POST /api/plants		-> Creates a plant, optional photo
		plants.POST("", middleware.BodySizeLimiter(maxUploadSize), a.PlantCreate)

		// GET /api/plants/:id		-> Returns one plant
		plants.GET("/:id", a.PlantFetch)

		// PUT /api/plants/:id		-> Updates a plant, optional new photo
		plants.PUT("/:id", middleware.BodySizeLimiter(maxUploadSize), a.PlantUpdate)

		// POST /api/plants/:id/water	-> Marks a plant as watered now
		plants.POST("/:id/water", a.PlantWater)

		// DELETE /api/plants/:id	-> Deletes a plant and its reminders
		plants.DELETE("/:id", a.PlantDelete)
	}

	reminders := main.Group("/reminders", auth, middleware.BodySizeLimiter(1<<20))
	{
		// GET /api/reminders		-> Lists reminders sorted by due date
		reminders.GET("", a.ReminderList)

		// GET /api/reminders/digest	-> Due-soon summary for the notification toast
		reminders.GET("/digest", a.ReminderDigest)

		// POST /api/reminders		-> Creates a reminder for an owned plant
		reminders.POST("", a.ReminderCreate)

		// GET /api/reminders/:id	-> Returns one reminder
		reminders.GET("/:id", a.ReminderFetch)

		// PUT /api/reminders/:id	-> Updates a reminder
		reminders.PUT("/:id", a.ReminderUpdate)

		// PATCH /api/reminders/:id/complete -> Marks a reminder done
		reminders.PATCH("/:id/complete", a.ReminderComplete)

		// DELETE /api/reminders/:id	-> Deletes a reminder
		reminders.DELETE("/:id", a.ReminderDelete)
	}

	ai := main.Group("/ai", auth)
	{
		// POST /api/ai/analyze		-> Plant health analysis via Gemini
		ai.POST("/analyze", middleware.BodySizeLimiter(maxUploadSize), a.AIAnalyze)
	}
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(store, time.Second*time.Duration(sec))
}
