package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"quizgame/internal/app"
	"quizgame/internal/domain"

	"github.com/gorilla/websocket"
)

// UserLookup resolves the registered player behind a connection.
type UserLookup interface {
	User(ctx context.Context, id int64) (domain.User, error)
}

type WSHandler struct {
	service    *app.QuizService
	users      UserLookup
	defaultSet string
	upgrader   websocket.Upgrader
}

func NewWSHandler(service *app.QuizService, users UserLookup, defaultSet string) *WSHandler {
	return &WSHandler{
		service:    service,
		users:      users,
		defaultSet: defaultSet,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type gradedPayload struct {
	Correct bool `json:"correct"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

// ServeWS upgrades HTTP requests to websockets and drives one quiz pass per
// answer cycle: question -> answer -> graded -> question | completed.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("userId"), 10, 64)
	if err != nil || userID <= 0 {
		http.Error(w, "missing or invalid userId", http.StatusBadRequest)
		return
	}
	setID := r.URL.Query().Get("setId")
	if setID == "" {
		setID = h.defaultSet
	}
	if setID == "" {
		http.Error(w, "missing setId", http.StatusBadRequest)
		return
	}
	if _, err := h.users.User(r.Context(), userID); err != nil {
		writeDomainError(w, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("ws upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	send := func(typ string, payload any) bool {
		if err := conn.WriteJSON(outboundMessage[any]{Type: typ, Payload: payload}); err != nil {
			slog.Warn("ws write error", "user", userID, "err", err)
			return false
		}
		return true
	}
	sendError := func(msg string) bool {
		return send("error", errorPayload{Message: msg})
	}

	first, err := h.service.Start(r.Context(), userID, setID)
	if err != nil {
		sendError(err.Error())
		return
	}
	defer h.service.Abandon(r.Context(), userID)

	if !send("question", first) {
		return
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			return
		}
		switch inbound.Type {
		case "answer":
			var payload answerRequest
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				if !sendError("invalid answer payload") {
					return
				}
				continue
			}
			sel, err := toSelections(payload.Selections)
			if err != nil {
				if !sendError(err.Error()) {
					return
				}
				continue
			}
			out, err := h.service.Submit(r.Context(), userID, sel)
			if err != nil {
				if !sendError(err.Error()) {
					return
				}
				continue
			}
			if !out.Retried && !send("graded", gradedPayload{Correct: out.Correct}) {
				return
			}
			if out.Complete {
				if !send("completed", out.Result) {
					return
				}
				continue
			}
			if !send("question", out.Next) {
				return
			}
		case "current":
			view, err := h.service.Current(r.Context(), userID)
			if err != nil {
				if !sendError(err.Error()) {
					return
				}
				continue
			}
			if !send("question", view) {
				return
			}
		default:
			if !sendError("unsupported message type") {
				return
			}
		}
	}
}
