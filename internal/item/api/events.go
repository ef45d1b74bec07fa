package api

import (
	"io"

	"github.com/gin-gonic/gin"
)

// StreamEvents pushes store events to the client as server-sent events. The
// first event is "ready" with the current count; it is sent after the
// subscription exists, so nothing published afterwards is missed.
func (h *ItemHandler) StreamEvents(c *gin.Context) {
	ctx := c.Request.Context()
	events := h.itemService.Watch(ctx, h.sseBuffer)

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.SSEvent("ready", gin.H{"count": h.itemService.CountItems(ctx)})
	c.Writer.Flush()

	c.Stream(func(_ io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case ev := <-events:
			c.SSEvent(string(ev.Type), ev)
			return true
		}
	})
}
