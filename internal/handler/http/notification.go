package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/peoplecore/hrm-backend-go/internal/handler/http/middleware"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/response"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/jwt"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/sse"
	notificationsvc "github.com/peoplecore/hrm-backend-go/internal/service/notification"
)

// sseHeartbeatInterval keeps idle SSE connections from being dropped by
// intermediaries.
const sseHeartbeatInterval = 30 * time.Second

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	MarkAllRead(w http.ResponseWriter, r *http.Request)
	SSEToken(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type NotificationHandlerImpl struct {
	service    *notificationsvc.Service
	hub        *sse.Hub
	jwtService jwt.Service
}

func NewNotificationHandler(service *notificationsvc.Service, hub *sse.Hub, jwtService jwt.Service) NotificationHandler {
	return &NotificationHandlerImpl{service: service, hub: hub, jwtService: jwtService}
}

func (h *NotificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	unreadOnly := r.URL.Query().Get("unread") == "true"

	notifications, err := h.service.ListForUser(r.Context(), userID, unreadOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, notifications)
}

func (h *NotificationHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Notification ID is required", nil)
		return
	}

	if err := h.service.MarkRead(r.Context(), id, middleware.UserID(r)); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Notification marked as read", nil)
}

func (h *NotificationHandlerImpl) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.service.MarkAllRead(r.Context(), middleware.UserID(r)); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "All notifications marked as read", nil)
}

// SSEToken exchanges an access token for a short-lived token that can ride in
// the stream URL, since EventSource cannot set headers.
func (h *NotificationHandlerImpl) SSEToken(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	if userID == "" {
		response.Unauthorized(w, "Authentication required")
		return
	}

	token, expiresIn, err := h.jwtService.GenerateSSEToken(userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"token":      token,
		"expires_in": expiresIn,
	})
}

// Stream holds the connection open and writes notifications as server-sent
// events until the client disconnects.
func (h *NotificationHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		response.Unauthorized(w, "SSE token is required")
		return
	}

	userID, err := h.jwtService.ValidateSSEToken(token)
	if err != nil {
		response.Unauthorized(w, "Invalid SSE token")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming is not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	fmt.Fprintf(w, "event: connected\ndata: {}\n\n")
	flusher.Flush()

	events, cleanup := h.hub.Subscribe(userID)
	defer cleanup()

	heartbeat := time.NewTicker(sseHeartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": heartbeat\n\n")
			flusher.Flush()
		case event, open := <-events:
			if !open {
				return
			}
			payload, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, payload)
			flusher.Flush()
		}
	}
}
