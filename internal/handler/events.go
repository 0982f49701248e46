package handler

import (
	"io"

	"github.com/gin-gonic/gin"
)

// StreamEvents
// @Summary Stream match events
// @Description Server-sent events for match.ready, match.started, match.completed and match.disputed
// @Tags events
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Router /events [get]
func (h *Handler) StreamEvents(c *gin.Context) {
	ch, cancel := h.broker.Subscribe()
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case e, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(string(e.Type), e)
			return true
		case <-clientGone:
			return false
		}
	})
}
