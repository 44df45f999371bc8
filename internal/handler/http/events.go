package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
)

const eventsKeepAlive = 25 * time.Second

// events streams change notifications as Server-Sent Events until the
// client disconnects. Each event is named "change" and carries a JSON
// models.ChangeEvent.
func (h *Handler) events(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	rc := http.NewResponseController(w)

	events, unsubscribe := h.services.Notifier.Subscribe()
	defer unsubscribe()

	// Streams outlive the server write timeout.
	_ = rc.SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		log.Err(err).Msg("response does not support streaming")
		return
	}

	keepAlive := time.NewTicker(eventsKeepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-keepAlive.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event)
			if err != nil {
				log.Err(err).Msg("encoding change event failed")
				continue
			}
			if _, err = fmt.Fprintf(w, "event: change\ndata: %s\n\n", data); err != nil {
				return
			}
		}

		if err := rc.Flush(); err != nil {
			return
		}
	}
}
