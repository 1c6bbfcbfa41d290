// Package server exposes the aggregated content list over HTTP for the
// site frontend to consume.
package server

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"

	"github.com/PriKalra/priyata-universe/internal/content"
)

// Loader produces the current content list; the hub satisfies this.
type Loader interface {
	Load(ctx context.Context) ([]content.Item, error)
}

// contentResponse mirrors the shape the frontend's feed hook expects:
// the item list plus loading and error flags. Loading is always false
// over HTTP since the response itself is the settled state.
type contentResponse struct {
	Items   []content.Item `json:"items"`
	Loading bool           `json:"loading"`
	Error   *string        `json:"error"`
}

// New builds the fiber app serving the content API.
func New(loader Loader) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "priyata-universe feed",
		DisableStartupMessage: true,
	})

	app.Use(requestid.New())
	app.Use(cors.New())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	app.Get("/api/content", func(c *fiber.Ctx) error {
		items, err := loader.Load(c.UserContext())
		if err != nil {
			log.WithError(err).Warn("content load failed")
			msg := err.Error()
			return c.Status(fiber.StatusServiceUnavailable).JSON(contentResponse{
				Items:   []content.Item{},
				Loading: false,
				Error:   &msg,
			})
		}
		return c.JSON(contentResponse{Items: items, Loading: false, Error: nil})
	})

	return app
}
