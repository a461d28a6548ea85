package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/nellwatson/go-floorcrew/pkg/crew"
	"github.com/nellwatson/go-floorcrew/pkg/hub"
)

// handleStatus returns the latest census.
func (s *Server) handleStatus(c *fiber.Ctx) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return c.JSON(fiber.Map{
		"frame":   s.lastFrame.Frame,
		"census":  s.lastFrame.Census,
		"viewers": s.frameHub.ClientCount(),
	})
}

// handleWorkers returns the latest worker snapshots.
func (s *Server) handleWorkers(c *fiber.Ctx) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return c.JSON(s.lastFrame.Workers)
}

// handleForklifts returns the latest forklift positions.
func (s *Server) handleForklifts(c *fiber.Ctx) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return c.JSON(s.lastFrame.Forklifts)
}

// EvacuationRequest toggles the evacuation drill.
type EvacuationRequest struct {
	Active bool `json:"active"`
}

func (s *Server) handleEvacuation(c *fiber.Ctx) error {
	var req EvacuationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid body",
		})
	}
	if s.OnEvacuation == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "evacuation control not configured",
		})
	}
	s.OnEvacuation(req.Active)
	return c.JSON(fiber.Map{"active": req.Active})
}

// WorkerStatusRequest changes one worker's work status.
type WorkerStatusRequest struct {
	Status crew.Status `json:"status"`
}

func (s *Server) handleWorkerStatus(c *fiber.Ctx) error {
	var req WorkerStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid body",
		})
	}
	switch req.Status {
	case crew.StatusWorking, crew.StatusBreak, crew.StatusResponding, crew.StatusIdle:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unknown status",
		})
	}
	if s.OnWorkerStatus == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "status control not configured",
		})
	}
	if !s.OnWorkerStatus(c.Params("id"), req.Status) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown worker",
		})
	}
	return c.JSON(fiber.Map{"id": c.Params("id"), "status": req.Status})
}

// handleFramesWS streams every published frame to the client.
func (s *Server) handleFramesWS(c *websocket.Conn) {
	client := hub.NewClient(s.frameHub, c)
	client.Run()
}
