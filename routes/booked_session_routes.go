package routes

import (
	"github.com/edupulse/edupulse_server/handlers"
	"github.com/gofiber/fiber/v2"
)

func BookedSessionRoutes(app *fiber.App, h *handlers.BookedSessionHandler) {
	booked := app.Group("/bookedSessions")

	booked.Post("", h.CreateBooking)
	booked.Get("", h.ListBookings)
	booked.Get("/:sessionId/:studentEmail", h.CheckBooking)
}
