package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
)

// newHubServer accepts websockets into hub and hands the server side of each
// connection to the test
func newHubServer(t *testing.T, hub *Hub) (*httptest.Server, <-chan *websocket.Conn) {
	t.Helper()

	accepted := make(chan *websocket.Conn, 4)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.CloseNow()

		hub.Add(conn)
		accepted <- conn
		for {
			if _, _, err := conn.Read(r.Context()); err != nil {
				return
			}
		}
	}))
	t.Cleanup(ts.Close)
	return ts, accepted
}

func TestHubBroadcastDropsFailedClients(t *testing.T) {
	hub := NewHub()
	ts, accepted := newHubServer(t, hub)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	healthy, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer healthy.CloseNow()
	<-accepted

	broken, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer broken.CloseNow()
	second := <-accepted

	if hub.Count() != 2 {
		t.Fatalf("hub has %d clients, want 2", hub.Count())
	}

	// writes to a closed connection fail immediately
	second.CloseNow()
	hub.Broadcast([]byte(`{"type":"created"}`))

	if hub.Count() != 1 {
		t.Errorf("hub has %d clients after broadcast, want 1", hub.Count())
	}

	_, data, err := healthy.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != `{"type":"created"}` {
		t.Errorf("message = %s, want the broadcast payload", data)
	}

	hub.CloseAll()
	if hub.Count() != 0 {
		t.Errorf("hub has %d clients after CloseAll, want 0", hub.Count())
	}
}
