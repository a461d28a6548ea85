// Package web provides a real-time observation dashboard for a running
// floor simulation. It never touches the Manager directly: the driver
// pushes frame snapshots in, and control requests (evacuation drills,
// status changes) flow back out through callbacks the driver wires up.
package web

import (
	"fmt"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/nellwatson/go-floorcrew/internal/log"
	"github.com/nellwatson/go-floorcrew/pkg/crew"
	"github.com/nellwatson/go-floorcrew/pkg/hub"
	"github.com/nellwatson/go-floorcrew/pkg/spatial"
)

// Frame is one published simulation frame.
type Frame struct {
	Frame     uint64           `json:"frame"`
	Workers   []crew.Snapshot  `json:"workers"`
	Forklifts []spatial.Entity `json:"forklifts"`
	Census    crew.Census      `json:"census"`
}

// Server is the dashboard server.
type Server struct {
	app  *fiber.App
	port string

	mu        sync.RWMutex
	lastFrame Frame

	frameHub *hub.Hub

	// Control callbacks, wired by the driver before Start.
	OnEvacuation   func(active bool)
	OnWorkerStatus func(id string, status crew.Status) bool
}

// NewServer creates a dashboard server listening on the given port.
func NewServer(port string) *Server {
	s := &Server{
		port:     port,
		frameHub: hub.New("frames"),
	}

	app := fiber.New(fiber.Config{
		AppName:               "Floorcrew Dashboard",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	api := app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Get("/workers", s.handleWorkers)
	api.Get("/forklifts", s.handleForklifts)
	api.Post("/evacuation", s.handleEvacuation)
	api.Post("/workers/:id/status", s.handleWorkerStatus)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/frames", websocket.New(s.handleFramesWS))

	s.app = app
	return s
}

// Start runs the hub and the HTTP listener. Blocks.
func (s *Server) Start() error {
	go s.frameHub.Run()
	log.Info("dashboard listening", "port", s.port)
	if err := s.app.Listen(":" + s.port); err != nil {
		return fmt.Errorf("dashboard listen: %w", err)
	}
	return nil
}

// Shutdown stops the HTTP listener.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// PublishFrame records the latest frame and broadcasts it to websocket
// subscribers. Called by the driver once per rendered frame; it must
// never block the frame loop, and the hub guarantees that.
func (s *Server) PublishFrame(f Frame) {
	s.mu.Lock()
	s.lastFrame = f
	s.mu.Unlock()

	if s.frameHub.ClientCount() > 0 {
		if err := s.frameHub.BroadcastJSON(f); err != nil {
			log.Warn("frame broadcast failed", "err", err)
		}
	}
}
