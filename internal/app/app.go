// internal/app/app.go
package app

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"trail-comments/internal/client"
	"trail-comments/internal/config"
	"trail-comments/internal/feed"
	"trail-comments/internal/logging"
	"trail-comments/internal/router"
	"trail-comments/pkg/utils"
)

type App struct {
	Config  *config.Config
	Echo    *echo.Echo
	Service feed.FeedService
	Client  *client.CommentsClient
	Logger  *zap.Logger
}

func Initialize() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	commentsClient, err := NewCommentsClient(cfg, logger)
	if err != nil {
		return nil, err
	}

	return New(cfg, commentsClient, logger), nil
}

// NewCommentsClient builds the comments client with the no-store transport
// described by cfg.
func NewCommentsClient(cfg *config.Config, logger *zap.Logger) (*client.CommentsClient, error) {
	httpClient, err := utils.NewHTTPClient(utils.TransportOptions{
		ProxyURL:       cfg.ProxyURL,
		TLSFingerprint: cfg.TLSFingerprint,
		Timeout:        cfg.RequestTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	commentsClient, err := client.NewCommentsClient(cfg.Origin, httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create comments client: %w", err)
	}

	logger.Info("comments client ready",
		zap.String("origin", cfg.Origin),
		zap.String("proxy", utils.MaskProxyURL(cfg.ProxyURL)),
		zap.Bool("tls_fingerprint", cfg.TLSFingerprint))

	return commentsClient, nil
}

// New wires the echo server around an existing client.
func New(cfg *config.Config, commentsClient *client.CommentsClient, logger *zap.Logger) *App {
	feedService := feed.NewFeedService(commentsClient, cfg.DefaultLimit, logger)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	router.NewRouter(e, feedService)

	return &App{
		Config:  cfg,
		Echo:    e,
		Service: feedService,
		Client:  commentsClient,
		Logger:  logger,
	}
}

func (a *App) Start() error {
	port := a.Config.ServerPort
	if port == "" {
		port = "8080"
	}
	return a.Echo.Start(":" + port)
}
