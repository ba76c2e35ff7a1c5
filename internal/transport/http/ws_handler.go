package http

import (
	"encoding/json"
	"log"
	"net/http"

	"edukids-quiz-service/internal/app"
	"edukids-quiz-service/internal/domain"
	"edukids-quiz-service/internal/profile"
	"github.com/gorilla/websocket"
)

// WSHandler is the presentation adapter: it forwards client events into the
// quiz use cases and streams snapshots back, leaving all rendering client-side.
type WSHandler struct {
	service  *app.QuizService
	profiles *profile.Manager
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.QuizService, profiles *profile.Manager) *WSHandler {
	return &WSHandler{
		service:  service,
		profiles: profiles,
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

type startPayload struct {
	Subject string `json:"subject"`
}

type answerPayload struct {
	Option int `json:"option"`
}

type hintPayload struct {
	Hint string `json:"hint"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades HTTP requests to websockets and wires them into the quiz engine.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		http.Error(w, "missing clientId", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx := r.Context()
	h.service.Connect(ctx, clientID)

	updates, cancel, err := h.service.Subscribe(ctx, clientID)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	defer cancel()
	defer h.service.Leave(ctx, clientID)

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	updatesDone := make(chan struct{})

	// The writer goroutine owns all connection writes; everything else queues
	// through send so no two writes race on the socket.
	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	go func() {
		defer close(updatesDone)
		for {
			select {
			case snapshot, ok := <-updates:
				if !ok {
					return
				}
				select {
				case send <- outboundMessage[any]{Type: snapshot.Event, Payload: snapshot}:
				case <-closeSignals:
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	// Initial state: subject menu, accessibility settings, cached user.
	if subjects, err := h.service.Subjects(ctx); err == nil {
		send <- outboundMessage[any]{Type: "subjects", Payload: subjects}
	}
	send <- outboundMessage[any]{Type: "settings", Payload: h.profiles.Settings(ctx)}
	if user, ok := h.profiles.User(ctx); ok {
		send <- outboundMessage[any]{Type: "user", Payload: user}
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "start":
			var payload startPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- errorMessage("invalid start payload")
				continue
			}
			if _, err := h.service.Start(ctx, clientID, payload.Subject); err != nil {
				send <- errorMessage(err.Error())
			}
		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- errorMessage("invalid answer payload")
				continue
			}
			feedback, err := h.service.Answer(ctx, clientID, payload.Option)
			if err != nil {
				send <- errorMessage(err.Error())
				continue
			}
			send <- outboundMessage[any]{Type: "answerResult", Payload: feedback}
		case "advance":
			if _, err := h.service.Advance(ctx, clientID); err != nil {
				send <- errorMessage(err.Error())
			}
		case "hint":
			hint, err := h.service.Hint(ctx, clientID)
			if err != nil {
				send <- errorMessage(err.Error())
				continue
			}
			send <- outboundMessage[any]{Type: "hint", Payload: hintPayload{Hint: hint}}
		case "saveSettings":
			var settings domain.AccessibilitySettings
			if err := json.Unmarshal(inbound.Payload, &settings); err != nil {
				send <- errorMessage("invalid settings payload")
				continue
			}
			if err := h.profiles.SaveSettings(ctx, settings); err != nil {
				log.Printf("save settings: %v", err)
			}
			send <- outboundMessage[any]{Type: "settings", Payload: settings}
		case "saveUser":
			var user domain.UserProfile
			if err := json.Unmarshal(inbound.Payload, &user); err != nil {
				send <- errorMessage("invalid user payload")
				continue
			}
			if err := h.profiles.SaveUser(ctx, user); err != nil {
				log.Printf("save user: %v", err)
			}
			send <- outboundMessage[any]{Type: "user", Payload: user}
		case "signOut":
			if err := h.profiles.ClearUser(ctx); err != nil {
				log.Printf("clear user: %v", err)
			}
			send <- outboundMessage[any]{Type: "signedOut", Payload: struct{}{}}
		default:
			send <- errorMessage("unsupported message type")
		}
	}

	close(closeSignals)
	<-updatesDone
	close(send)
	<-writerDone
}

func errorMessage(message string) outboundMessage[any] {
	return outboundMessage[any]{Type: "error", Payload: errorPayload{Message: message}}
}
