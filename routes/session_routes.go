package routes

import (
	"github.com/edupulse/edupulse_server/handlers"
	"github.com/gofiber/fiber/v2"
)

func SessionRoutes(app *fiber.App, h *handlers.SessionHandler, rh *handlers.ReviewHandler) {
	sessions := app.Group("/sessions")

	// Literal paths go first; Fiber matches in registration order.
	sessions.Get("", h.ListSessions)
	sessions.Get("/approved", h.ListApprovedSessions)
	sessions.Get("/tutor/:email", h.ListSessionsByTutor)
	sessions.Get("/:id/reviews", rh.ListSessionReviews)
	sessions.Get("/:id", h.GetSession)
	sessions.Post("", h.CreateSession)
	sessions.Patch("/:id/status", h.UpdateStatus)
	sessions.Patch("/:id/approve", h.ApproveSession)
	sessions.Patch("/:id/reject", h.RejectSession)
	sessions.Patch("/:id", h.UpdateSession)
	sessions.Delete("/:id", h.DeleteSession)

	app.Post("/reviews", rh.CreateReview)
}
