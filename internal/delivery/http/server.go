package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/porchfest-map/internal/config"
	"github.com/porchfest-map/internal/delivery/http/handler"
	"github.com/porchfest-map/internal/delivery/http/middleware"
	"github.com/porchfest-map/internal/pkg/errors"
	"github.com/porchfest-map/internal/pkg/utils"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// HealthCheck - проверка зависимостей для /health (nil - проверять нечего)
type HealthCheck func(ctx context.Context) error

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger
	health HealthCheck

	// Handlers
	mapHandler     *handler.MapHandler
	sessionHandler *handler.SessionHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	health HealthCheck,
	mapHandler *handler.MapHandler,
	sessionHandler *handler.SessionHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Porchfest Map",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		health:         health,
		mapHandler:     mapHandler,
		sessionHandler: sessionHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.healthHandler)

	// Общие данные карты
	api.Get("/map/config", s.mapHandler.GetConfig)
	api.Get("/points", s.mapHandler.GetPoints)
	api.Get("/points/:id", s.mapHandler.GetPoint)
	api.Get("/genres", s.mapHandler.GetGenres)

	// Действия пользователя, привязанные к cookie сессии
	session := api.Group("/session", middleware.Session(
		s.config.Session.CookieName,
		365*24*time.Hour,
	))
	session.Get("/", s.sessionHandler.GetSession)
	session.Put("/filter", s.sessionHandler.ApplyFilter)
	session.Post("/refresh", s.sessionHandler.Refresh)
	session.Post("/points/:id/select", s.sessionHandler.SelectPoint)
	session.Post("/bookmark", s.sessionHandler.ToggleBookmark)
	session.Post("/detail/close", s.sessionHandler.CloseDetail)
	session.Delete("/visited", s.sessionHandler.ClearVisited)
}

// healthHandler - liveness процесса и доступность хранилища состояния
func (s *Server) healthHandler(c *fiber.Ctx) error {
	if s.health != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if err := s.health(ctx); err != nil {
			s.logger.Warn("Health check failed", zap.Error(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"error":  err.Error(),
				"time":   time.Now(),
			})
		}
	}

	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now(),
	})
}

// App - fiber-приложение (для тестов)
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки, не обработанные в хендлерах (404 маршрута, паника и т.п.)
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if e, ok := err.(*fiber.Error); ok {
			if e.Code >= fiber.StatusInternalServerError {
				logger.Error("HTTP Error", zap.String("path", c.Path()), zap.Int("status", e.Code), zap.Error(err))
			}
			return utils.SendError(c, errors.New(codeForStatus(e.Code), e.Message, e.Code))
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		return errors.ErrInvalidRequest.Code
	default:
		return errors.ErrInternalServer.Code
	}
}
