package server

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"dangian/generation"
)

// Message types sent over the websocket
const (
	MessageLayout  = "layout"
	MessageCreated = "created"
	MessageError   = "error"
)

// LayoutResponse is one generated dungeon
type LayoutResponse struct {
	ID     string                `json:"id"`
	Seed   int64                 `json:"seed"`
	Layout generation.Layout     `json:"layout"`
	Tiles  generation.TileMatrix `json:"tiles"`
}

// Message is the websocket envelope
type Message struct {
	Type   string          `json:"type"`
	Layout *LayoutResponse `json:"layout,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// Server exposes the generator over HTTP and websockets
type Server struct {
	defaults       generation.Options
	logger         *slog.Logger
	hub            *Hub
	router         *mux.Router
	originPatterns []string
}

// New creates a server generating with defaults. originPatterns lists the
// hosts allowed to open websockets from a browser.
func New(defaults generation.Options, logger *slog.Logger, originPatterns []string) *Server {
	s := &Server{
		defaults:       defaults,
		logger:         logger,
		hub:            NewHub(),
		router:         mux.NewRouter(),
		originPatterns: originPatterns,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(s.logRequests)

	s.router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	s.router.HandleFunc("/dungeon", s.getDungeon).Methods("GET")
	s.router.HandleFunc("/dungeon", s.createDungeon).Methods("POST")
	s.router.HandleFunc("/dungeon/tiles", s.getTiles).Methods("GET")
	s.router.HandleFunc("/ws", s.handleWebSocket)
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Hub returns the websocket client registry
func (s *Server) Hub() *Hub {
	return s.hub
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	s.hub.CloseAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Generate builds a dungeon for req with its own random source
func (s *Server) Generate(req LayoutRequest) (*LayoutResponse, error) {
	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	dungeon, err := generation.NewDungeon(req.Options(s.defaults), generation.NewSeededRandom(seed))
	if err != nil {
		return nil, err
	}

	return &LayoutResponse{
		ID:     uuid.New().String(),
		Seed:   seed,
		Layout: dungeon.Layout(),
		Tiles:  dungeon.GenerateTileMatrix(),
	}, nil
}

func (s *Server) getDungeon(w http.ResponseWriter, r *http.Request) {
	req, err := ParseLayoutQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp, err := s.Generate(req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) createDungeon(w http.ResponseWriter, r *http.Request) {
	var req LayoutRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
	}

	resp, err := s.Generate(req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if msg, err := json.Marshal(Message{Type: MessageCreated, Layout: resp}); err == nil {
		s.hub.Broadcast(msg)
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) getTiles(w http.ResponseWriter, r *http.Request) {
	req, err := ParseLayoutQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp, err := s.Generate(req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Dungeon-Seed", fmt.Sprint(resp.Seed))
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, resp.Tiles.String())
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.originPatterns,
	})
	if err != nil {
		s.logger.Error("websocket accept", "error", err)
		return
	}
	defer conn.CloseNow()

	s.hub.Add(conn)
	defer s.hub.Remove(conn)

	clientID := uuid.New().String()
	s.logger.Debug("websocket connected", "client", clientID)

	ctx := r.Context()
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			s.logger.Debug("websocket closed", "client", clientID, "status", websocket.CloseStatus(err))
			return
		}

		reply := s.handleMessage(data)
		payload, err := json.Marshal(reply)
		if err != nil {
			s.logger.Error("marshal websocket reply", "error", err)
			return
		}
		if err := conn.Write(ctx, websocket.MessageText, payload); err != nil {
			return
		}
	}
}

func (s *Server) handleMessage(data []byte) Message {
	var req LayoutRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return Message{Type: MessageError, Error: "invalid request: " + err.Error()}
	}

	resp, err := s.Generate(req)
	if err != nil {
		return Message{Type: MessageError, Error: err.Error()}
	}
	return Message{Type: MessageLayout, Layout: resp}
}

// writeError maps generator errors onto HTTP status codes
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, generation.ErrInvalidOptions):
		status = http.StatusBadRequest
	case errors.Is(err, generation.ErrGenerationFailed):
		status = http.StatusUnprocessableEntity
	default:
		s.logger.Error("generate dungeon", "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// statusRecorder captures the response status for request logging
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Hijack lets websocket upgrades pass through the logging middleware
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	r.status = http.StatusSwitchingProtocols
	return hj.Hijack()
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start))
	})
}
