package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/broadcast"
)

// StreamHandler exposes per-office lifecycle events over server-sent events.
type StreamHandler struct {
	broker *broadcast.Broker
}

func NewStreamHandler(broker *broadcast.Broker) *StreamHandler {
	return &StreamHandler{broker: broker}
}

// Events handles GET /v1/offices/:office_id/events. The connection stays
// open until the client disconnects or the server shuts down.
//
// @Summary      Stream lifecycle events for an office
// @Tags         events
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        office_id  path  string  true  "Office id"
// @Success      200  {string}  string  "SSE stream"
// @Router       /v1/offices/{office_id}/events [get]
func (h *StreamHandler) Events(c echo.Context) error {
	officeID := c.Param("office_id")
	if officeID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "office_id is required")
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	sub := h.broker.Subscribe(officeID)
	defer sub.Close()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-sub.Events():
			if !ok {
				return nil
			}
			payload, err := json.Marshal(event)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(res, "data: %s\n\n", payload); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
