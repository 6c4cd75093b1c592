package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"GoldSentinel/internal/config"
	"GoldSentinel/internal/engine"
	"GoldSentinel/internal/model"
)

// Server exposes the engine's SignalReport over HTTP for the presentation
// layer. It is a thin collaborator: every request goes through the
// evaluator's single-flight path, so aggressive polling cannot stampede the
// upstream data provider.
type Server struct {
	echo *echo.Echo
	eval *engine.Evaluator
	cfg  *config.Config
}

// statusResponse is the wire shape consumed by the dashboard. Field shapes
// must stay stable; additions only.
type statusResponse struct {
	Timestamp string               `json:"timestamp"`
	Session   model.SessionProfile `json:"session"`
	Engine    model.SignalReport   `json:"engine"`
}

// NewServer wires routes and middleware.
func NewServer(eval *engine.Evaluator, cfg *config.Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{echo: e, eval: eval, cfg: cfg}
	e.GET("/api/status", s.Status)
	e.GET("/healthz", s.Health)
	return s
}

// Status returns the current SignalReport. The optional interval query
// parameter must match the configured fast interval; the engine evaluates a
// single instrument on a fixed timeframe pair.
func (s *Server) Status(c echo.Context) error {
	if iv := c.QueryParam("interval"); iv != "" && iv != s.cfg.DataSource.FastInterval {
		return echo.NewHTTPError(http.StatusBadRequest,
			"unsupported interval: "+iv)
	}
	rep := s.eval.Evaluate(c.Request().Context())
	return c.JSON(http.StatusOK, statusResponse{
		Timestamp: rep.EvaluatedAt.UTC().Format("15:04:05 UTC"),
		Session:   rep.Session,
		Engine:    rep,
	})
}

// Health is a liveness probe.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Start blocks serving HTTP until Shutdown.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
