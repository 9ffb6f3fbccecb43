package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"example.com/mindfulwealth/backend/internal/ai"
	"example.com/mindfulwealth/backend/internal/auth"
	"example.com/mindfulwealth/backend/internal/config"
	"example.com/mindfulwealth/backend/internal/engine"
	"example.com/mindfulwealth/backend/internal/handlers"
	"example.com/mindfulwealth/backend/internal/notifications"
	"example.com/mindfulwealth/backend/internal/repository"
)

// New assembles the Echo HTTP server with routes and dependencies.
func New(cfg config.Config, logger *slog.Logger, db *pgxpool.Pool) *echo.Echo {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewRefreshTokenRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	budgetRepo := repository.NewBudgetRepository(db)
	savedImpulseRepo := repository.NewSavedImpulseRepository(db)
	chatLogRepo := repository.NewChatLogRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)
	notificationHub := notifications.NewHub()

	// The remote tier is optional: without an API key the engine starts at
	// the rule-based tier.
	var aiClient ai.Client
	if strings.TrimSpace(cfg.AI.APIKey) != "" {
		switch strings.ToLower(cfg.AI.Provider) {
		case "gemini":
			aiClient = ai.NewGeminiClient(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model, cfg.AI.Timeout, cfg.AI.MaxOutputTokens)
		default:
			aiClient = ai.NewGroqClient(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model, cfg.AI.Timeout, cfg.AI.MaxOutputTokens)
		}
	}

	defaults := engine.Style{
		Personality:       engine.Personality(cfg.Engine.DefaultPersonality),
		Language:          engine.Language(cfg.Engine.DefaultLanguage),
		PreferredCurrency: engine.Currency(cfg.Engine.DefaultCurrency),
	}
	analysisEngine := engine.New(aiClient, engine.NewComposer(time.Now().UnixNano()), logger, cfg.AI.Timeout, defaults)

	authHandler := handlers.NewAuthHandler(userRepo, tokenRepo, tokenManager)
	chatHandler := handlers.NewChatHandler(analysisEngine, userRepo, transactionRepo, budgetRepo, savedImpulseRepo, chatLogRepo, notificationHub, logger)
	transactionHandler := handlers.NewTransactionHandler(transactionRepo, budgetRepo)
	budgetHandler := handlers.NewBudgetHandler(budgetRepo)
	savedImpulseHandler := handlers.NewSavedImpulseHandler(savedImpulseRepo)
	dashboardHandler := handlers.NewDashboardHandler(dashboardRepo)
	settingsHandler := handlers.NewSettingsHandler(userRepo)
	notificationHandler := handlers.NewNotificationHandler(notificationHub)

	registerRoutes(
		e,
		authHandler,
		chatHandler,
		transactionHandler,
		budgetHandler,
		savedImpulseHandler,
		dashboardHandler,
		settingsHandler,
		notificationHandler,
		auth.JWTMiddleware(tokenManager),
		authRateLimiter(cfg.Auth),
		chatRateLimiter(cfg.AI),
	)

	return e
}

// NewHTTPServer builds a net/http server with the configured timeouts.
func NewHTTPServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote_ip", v.RemoteIP),
				slog.Duration("latency", v.Latency),
			}

			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			msg := "request completed"
			if v.Status >= http.StatusInternalServerError {
				logger.LogAttrs(c.Request().Context(), slog.LevelError, msg, attrs...)
				return nil
			}

			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, msg, attrs...)
			return nil
		},
	})
}

func authRateLimiter(cfg config.AuthConfig) echo.MiddlewareFunc {
	limit := rate.Limit(float64(cfg.RateLimitPerMinute) / 60.0)
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      limit,
		Burst:     cfg.RateLimitBurst,
		ExpiresIn: time.Minute,
	})

	return middleware.RateLimiter(store)
}

func chatRateLimiter(cfg config.AIConfig) echo.MiddlewareFunc {
	limit := rate.Limit(float64(cfg.RateLimitPerMinute) / 60.0)
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      limit,
		Burst:     cfg.RateLimitBurst,
		ExpiresIn: time.Minute,
	})

	return middleware.RateLimiter(store)
}
