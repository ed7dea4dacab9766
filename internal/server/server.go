// Package server exposes the chat over a websocket endpoint plus a health
// check, one coordinator session per connection.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"AdvisorBot/internal/advisor"
	"AdvisorBot/internal/coordinator"
	"AdvisorBot/internal/model"
	"AdvisorBot/internal/recorder"
	"AdvisorBot/internal/source"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // browser clients connect from file:// and localhost
	},
}

// incoming is one client chat message.
type incoming struct {
	Message string `json:"message"`
}

// Server owns the HTTP surface and the shared handler dependencies.
type Server struct {
	Quotes         *source.QuoteService
	News           *source.NewsService
	Generator      advisor.Generator
	Recorder       recorder.Recorder
	DefaultPersona string

	httpSrv *http.Server
}

func New(addr string, quotes *source.QuoteService, news *source.NewsService, gen advisor.Generator, rec recorder.Recorder, defaultPersona string) *Server {
	s := &Server{
		Quotes:         quotes,
		News:           news,
		Generator:      gen,
		Recorder:       rec,
		DefaultPersona: defaultPersona,
	}

	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.handleWS)

	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // websocket writes manage their own deadlines
	}
	return s
}

// ListenAndServe blocks until the server stops.
func (s *Server) ListenAndServe() error {
	log.Printf("[INFO] listening on %s", s.httpSrv.Addr)
	return s.httpSrv.ListenAndServe()
}

// Shutdown drains the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

// handleWS runs one chat session for the life of the connection. Messages
// are handled serially in arrival order.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ERROR] websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	session := coordinator.NewSession(s.Quotes, s.News, s.Generator, s.Recorder, s.DefaultPersona)
	log.Printf("[INFO] client connected: %s", r.RemoteAddr)

	welcome := &model.Reply{
		Message: fmt.Sprintf("Hello! I'm your stock advisor. Ask me about prices, news, or whether to buy. "+
			"You can also switch my personality, currently %s.", session.Persona()),
		Personality: session.Persona(),
	}
	if err := conn.WriteJSON(welcome); err != nil {
		log.Printf("[WARN] send welcome: %v", err)
		return
	}

	for {
		var in incoming
		if err := conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WARN] read message: %v", err)
			}
			log.Printf("[INFO] client disconnected: %s", r.RemoteAddr)
			return
		}
		if in.Message == "" {
			continue
		}

		reply := session.Route(r.Context(), in.Message)
		if err := conn.WriteJSON(reply); err != nil {
			log.Printf("[WARN] write reply: %v", err)
			return
		}
	}
}
