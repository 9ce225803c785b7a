package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/RouckBlankOo/AdminDashboardImmo/config"
	"github.com/RouckBlankOo/AdminDashboardImmo/internal/controller"
	circuitbreaker "github.com/RouckBlankOo/AdminDashboardImmo/internal/infrastructure/circuit-breaker"
	"github.com/RouckBlankOo/AdminDashboardImmo/internal/infrastructure/tracing"
	"github.com/RouckBlankOo/AdminDashboardImmo/internal/middleware"
	"github.com/RouckBlankOo/AdminDashboardImmo/internal/repository"
	"github.com/RouckBlankOo/AdminDashboardImmo/internal/service"
	"github.com/RouckBlankOo/AdminDashboardImmo/internal/session"
	"github.com/RouckBlankOo/AdminDashboardImmo/pkg/httpclient"
	"github.com/RouckBlankOo/AdminDashboardImmo/pkg/response"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type App struct {
	Config  *config.Config
	Server  *echo.Echo
	Service service.DashboardService
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()

	if collectorHost := app.Config.TracingConfig.CollectorHost; collectorHost != "" {
		traceProvider, err := tracing.InitTracing(collectorHost)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to initialize tracing")
		} else {
			defer func() {
				if err := traceProvider.Shutdown(context.Background()); err != nil {
					logger.Error().Err(err).Msg("Failed to shutdown tracing")
				}
			}()

			tracer := traceProvider.Tracer("admin-dashboard-immo")
			e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
					defer span.End()

					req := c.Request()
					c.SetRequest(req.WithContext(ctx))

					return next(c)
				}
			})
		}
	}

	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	var storage session.Storage
	if app.Config.RedisConfig.Addr != "" {
		storage = session.NewRedisStorage(app.Config.RedisConfig.Addr, app.Config.RedisConfig.Password)
	} else {
		storage = session.NewFileStorage(app.Config.SessionFile)
	}

	authClient := httpclient.NewClient(nil, circuitbreaker.CreateCircuitBreaker[httpclient.Response]("auth-api"))
	sessions := session.NewStore(storage, authClient, app.Config)
	if err := sessions.Load(context.Background()); err != nil {
		logger.Error().Err(err).Msg("Failed to restore persisted session")
	}

	apiClient := httpclient.NewClient(sessions, circuitbreaker.CreateCircuitBreaker[httpclient.Response]("property-api"))
	repo := repository.CreateAPIRepository(apiClient, sessions, app.Config)
	svc := service.CreateDashboardService(repo, sessions)
	apiClient.SetAuthFailureHook(svc.HandleAuthFailure)
	app.Service = svc

	if sessions.IsAuthenticated() {
		go func() {
			if err := svc.Refresh(context.Background()); err != nil {
				logger.Error().Err(err).Msg("Initial property fetch failed")
			}
		}()
	}

	g := e.Group("/api/v1")
	g.Use(middleware.Logger)

	controller.CreateController(g, svc)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "", "pong")
	})

	app.Server = e

	if err := e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
