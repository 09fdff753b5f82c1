package svr

import (
	"github.com/gofiber/fiber/v2"

	"github.com/raidlog/droptracker/internal/pkg/middlewares"
)

type V1 struct {
	fiber.Router
}

// Meta serves the service-level endpoints: health checks and build info.
type Meta struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App) (*V1, *Meta) {
	v1 := app.Group("/api/v1", middlewares.AcceptsJSON)
	meta := app.Group("/api/_")

	return &V1{Router: v1}, &Meta{Router: meta}
}
