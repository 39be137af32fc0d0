package routes

import (
	"github.com/edupulse/edupulse_server/handlers"
	"github.com/gofiber/fiber/v2"
)

func MaterialRoutes(app *fiber.App, h *handlers.MaterialHandler) {
	materials := app.Group("/materials")

	materials.Post("", h.CreateMaterial)
	materials.Get("", h.ListMaterials)
	materials.Get("/:sessionId", h.ListSessionMaterials)
	materials.Put("/:id", h.UpdateMaterial)
	materials.Delete("/:id", h.DeleteMaterial)
}
