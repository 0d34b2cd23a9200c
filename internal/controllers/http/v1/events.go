package http

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"weather-dashboard/internal/presenter"
)

// HandleEvents godoc
// @Summary Stream dashboard events
// @Description Server-sent events. The first event is "state" with the full view, then one event per update: clock, current, daily, chart, title, loading, notification.
// @Tags Dashboard
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Router /api/v1/events [get]
func (r *routes) handleEvents(c *fiber.Ctx) error {
	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	events, unsubscribe := r.store.Subscribe()
	initial := r.store.Snapshot()
	requestID, _ := c.Locals("requestid").(string)

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer unsubscribe()

		r.l.Info("event stream opened", map[string]any{"requestId": requestID})
		err := streamEvents(w, initial, events, r.done, r.heartbeat)
		r.l.Info("event stream closed", map[string]any{"requestId": requestID, "reason": fmt.Sprint(err)})
	}))

	return nil
}

// streamEvents writes the initial state and then every event until the
// subscription ends, done closes or the client goes away.
func streamEvents(
	w *bufio.Writer,
	initial presenter.State,
	events <-chan presenter.Event,
	done <-chan struct{},
	heartbeat time.Duration,
) error {
	if err := writeEvent(w, "state", initial); err != nil {
		return err
	}

	ticker := time.NewTicker(heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := writeEvent(w, string(ev.Kind), ev.Data); err != nil {
				return err
			}
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return err
			}
			if err := w.Flush(); err != nil {
				return err
			}
		}
	}
}

func writeEvent(w *bufio.Writer, event string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return err
	}
	return w.Flush()
}
