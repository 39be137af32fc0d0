package routes

import (
	"github.com/edupulse/edupulse_server/handlers"
	"github.com/gofiber/fiber/v2"
)

func NoteRoutes(app *fiber.App, h *handlers.NoteHandler) {
	notes := app.Group("/notes")

	notes.Post("", h.CreateNote)
	notes.Get("", h.ListNotes)
	notes.Put("/:id", h.UpdateNote)
	notes.Delete("/:id", h.DeleteNote)
}
