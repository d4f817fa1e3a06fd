package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"

	"dangian/generation"
	"dangian/geometry"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()

	defaults := generation.DefaultOptions()
	defaults.Iterations = 3
	defaults.Size = geometry.Pt(320.0, 240.0)

	s := New(defaults, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func getLayout(t *testing.T, ts *httptest.Server, query string) (*http.Response, LayoutResponse) {
	t.Helper()

	resp, err := http.Get(ts.URL + "/dungeon?" + query)
	if err != nil {
		t.Fatalf("GET /dungeon: %v", err)
	}
	defer resp.Body.Close()

	var body LayoutResponse
	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp, body
}

func TestHealth(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	if resp.StatusCode != http.StatusOK || body["status"] != "ok" {
		t.Errorf("health = %d %v, want 200 ok", resp.StatusCode, body)
	}
}

func TestGetDungeonSameSeedSameLayout(t *testing.T) {
	_, ts := newTestServer(t)

	_, a := getLayout(t, ts, "seed=99")
	_, b := getLayout(t, ts, "seed=99")

	if a.Seed != 99 || b.Seed != 99 {
		t.Fatalf("seeds = %d, %d, want 99", a.Seed, b.Seed)
	}
	if !reflect.DeepEqual(a.Layout, b.Layout) {
		t.Error("same seed produced different layouts")
	}
	if !reflect.DeepEqual(a.Tiles, b.Tiles) {
		t.Error("same seed produced different tile matrices")
	}
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("ids = %q, %q, want distinct non-empty ids", a.ID, b.ID)
	}
	if len(a.Layout.Rooms) != 8 || len(a.Layout.Paths) != 7 {
		t.Errorf("rooms = %d, paths = %d, want 8 and 7", len(a.Layout.Rooms), len(a.Layout.Paths))
	}
	if a.Tiles.Width != 64 || a.Tiles.Height != 48 {
		t.Errorf("tiles = %dx%d, want 64x48", a.Tiles.Width, a.Tiles.Height)
	}
}

func TestGetDungeonOverrides(t *testing.T) {
	_, ts := newTestServer(t)

	_, body := getLayout(t, ts, "seed=1&iterations=1&width=100&height=50&tileSize=10&snap=false")
	if body.Layout.Canvas != geometry.Rect(0.0, 0.0, 100.0, 50.0) {
		t.Errorf("canvas = %v, want (0,0 100x50)", body.Layout.Canvas)
	}
	if body.Layout.TileSize != 10 || len(body.Layout.Rooms) != 2 {
		t.Errorf("tileSize = %v rooms = %d, want 10 and 2", body.Layout.TileSize, len(body.Layout.Rooms))
	}
}

func TestGetDungeonErrors(t *testing.T) {
	_, ts := newTestServer(t)

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"malformed number", "iterations=abc", http.StatusBadRequest},
		{"negative iterations", "iterations=-1", http.StatusBadRequest},
		{"zero tile size", "tileSize=0", http.StatusBadRequest},
		{"NaN width", "width=NaN", http.StatusBadRequest},
		{"infinite width", "width=Inf", http.StatusBadRequest},
		{"vanishing tile size", "tileSize=1e-300", http.StatusBadRequest},
		{"deep tree", "iterations=60", http.StatusBadRequest},
		{"unsatisfiable ratio", "iterations=1&width=100&height=100&ratioX=1&ratioY=1", http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := getLayout(t, ts, tt.query)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
		})
	}
}

func TestGetTiles(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/dungeon/tiles?seed=5&width=50&height=20&tileSize=10&iterations=0")
	if err != nil {
		t.Fatalf("GET /dungeon/tiles: %v", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d rows, want 2:\n%s", len(lines), data)
	}
	if fields := strings.Fields(lines[0]); len(fields) != 5 {
		t.Errorf("row has %d cells, want 5", len(fields))
	}
	if resp.Header.Get("X-Dungeon-Seed") != "5" {
		t.Errorf("seed header = %q, want 5", resp.Header.Get("X-Dungeon-Seed"))
	}
}

func TestParseLayoutQuery(t *testing.T) {
	req, err := ParseLayoutQuery(url.Values{"iterations": {"2"}, "ratioY": {"0.3"}, "snap": {"false"}})
	if err != nil {
		t.Fatalf("ParseLayoutQuery: %v", err)
	}
	if req.Width != nil || req.Seed != nil {
		t.Error("unset parameters should stay nil")
	}

	opts := req.Options(generation.DefaultOptions())
	if opts.Iterations != 2 || opts.RatioToDiscard.Y != 0.3 || opts.RatioToDiscard.X != 0.45 || opts.SnapToTiles {
		t.Errorf("options = %+v", opts)
	}
}

func dialWS(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.CloseNow() })
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, request string) Message {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := conn.Write(ctx, websocket.MessageText, []byte(request)); err != nil {
		t.Fatalf("write: %v", err)
	}
	return readMessage(t, conn)
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("decode message: %v", err)
	}
	return msg
}

func TestWebSocketLayoutRequest(t *testing.T) {
	_, ts := newTestServer(t)
	conn := dialWS(t, ts)

	msg := roundTrip(t, conn, `{"seed": 12, "iterations": 2}`)
	if msg.Type != MessageLayout || msg.Layout == nil {
		t.Fatalf("reply = %+v, want a layout", msg)
	}
	if msg.Layout.Seed != 12 || len(msg.Layout.Layout.Rooms) != 4 {
		t.Errorf("seed = %d rooms = %d, want 12 and 4", msg.Layout.Seed, len(msg.Layout.Layout.Rooms))
	}

	msg = roundTrip(t, conn, `not json`)
	if msg.Type != MessageError || msg.Error == "" {
		t.Errorf("reply to bad request = %+v, want an error", msg)
	}

	msg = roundTrip(t, conn, `{"tileSize": -1}`)
	if msg.Type != MessageError || !strings.Contains(msg.Error, "invalid dungeon options") {
		t.Errorf("reply to invalid options = %+v", msg)
	}

	msg = roundTrip(t, conn, `{"tileSize": 1e-300}`)
	if msg.Type != MessageError || !strings.Contains(msg.Error, "invalid dungeon options") {
		t.Errorf("reply to vanishing tile size = %+v", msg)
	}
}

func TestWebSocketBroadcastOnCreate(t *testing.T) {
	s, ts := newTestServer(t)
	conn := dialWS(t, ts)

	// a round trip guarantees the connection is registered with the hub
	roundTrip(t, conn, `{"seed": 1}`)
	if s.Hub().Count() != 1 {
		t.Fatalf("hub has %d clients, want 1", s.Hub().Count())
	}

	resp, err := http.Post(ts.URL+"/dungeon", "application/json", bytes.NewBufferString(`{"seed": 77}`))
	if err != nil {
		t.Fatalf("POST /dungeon: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	msg := readMessage(t, conn)
	if msg.Type != MessageCreated || msg.Layout == nil || msg.Layout.Seed != 77 {
		t.Errorf("broadcast = %+v, want created layout with seed 77", msg)
	}
}
