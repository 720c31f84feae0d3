package handlers

import (
	"bufio"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/dmoran14/buddies-cup/internal/websocket"
)

// StreamDay returns a handler for GET /api/v1/stream/:day — a server-sent
// events feed of the day's live results. Each accepted score write broadcasts
// a refreshed payload (see broadcastDay); subscribers just hold the connection
// open and re-render on every event.
//
// SSE rather than a raw websocket because the client only ever listens, and
// fiber's fasthttp core streams it without an upgrade dance.
func StreamDay(hub *websocket.Hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		day := c.Params("day")
		if day != "1" && day != "2" && day != "3" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "day must be 1, 2, or 3",
			})
		}

		c.Set("Content-Type", "text/event-stream")
		c.Set("Cache-Control", "no-cache")
		c.Set("Connection", "keep-alive")

		client := &websocket.Client{Day: day, Send: make(chan []byte, 16)}
		hub.Register(client)

		c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
			defer hub.Unregister(client)
			for msg := range client.Send {
				if _, err := fmt.Fprintf(w, "data: %s\n\n", msg); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}))
		return nil
	}
}
