package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"photoclub_backend/internal/lib/jwt"
	appmiddleware "photoclub_backend/internal/middleware"
	httprouters "photoclub_backend/internal/transport/http"
	"photoclub_backend/internal/transport/http/dto/response"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Server struct {
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	tokens  *jwt.Manager
	host    string
	port    string
}

func New(log *slog.Logger, host, port string, routers *httprouters.Routers, tokens *jwt.Manager) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Validator = &CustomValidator{validator: validator.New()}

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(appmiddleware.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("method", v.Method),
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	return &Server{
		log:     log,
		e:       e,
		routers: routers,
		tokens:  tokens,
		host:    host,
		port:    port,
	}
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("addr", s.host+":"+s.port))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(fmt.Sprintf("%s:%s", s.host, s.port)); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", op, "http server")

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

// adminOnlyMiddleware gates every mutating route behind the signed admin
// token. The client-side admin flag never reaches this check.
func (s *Server) adminOnlyMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return c.JSON(http.StatusUnauthorized, response.Error("admin token required"))
		}

		if err := s.tokens.Verify(token); err != nil {
			return c.JSON(http.StatusUnauthorized, response.Error("invalid admin token"))
		}

		return next(c)
	}
}

func (s *Server) BuildRouters() {
	s.e.GET("/health", s.routers.Health)
	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := s.e.Group("/api")
	{
		api.GET("/data/:type", s.routers.GetData)
		api.GET("/photographers", s.routers.GetPhotographers)
		api.POST("/admin/login", s.routers.AdminLogin)

		api.POST("/upload", s.routers.Upload, s.adminOnlyMiddleware)
		api.DELETE("/upload", s.routers.DeleteUpload, s.adminOnlyMiddleware)
		api.POST("/photographers", s.routers.MutatePhotographers, s.adminOnlyMiddleware)
		api.POST("/linktree", s.routers.MutateLinktree, s.adminOnlyMiddleware)
		api.POST("/update-title", s.routers.UpdateTitle, s.adminOnlyMiddleware)
	}
}
