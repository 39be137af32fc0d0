package routes

import (
	"github.com/edupulse/edupulse_server/handlers"
	"github.com/gofiber/fiber/v2"
)

func UserRoutes(app *fiber.App, h *handlers.UserHandler) {
	users := app.Group("/users")

	users.Get("", h.ListUsers)
	users.Get("/search", h.SearchByEmail)
	users.Get("/pending-tutors", h.ListPendingTutors)
	users.Get("/:email/role", h.GetRole)
	users.Post("", h.CreateUser)
	users.Patch("/request-tutor", h.RequestTutor)
	users.Patch("/:id/role", h.UpdateRole)
	users.Patch("/:id/approve-tutor", h.ApproveTutor)
	users.Delete("/:id/decline-tutor", h.DeclineTutor)
}
