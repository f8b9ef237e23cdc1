package websocket

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*Hub, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	router := gin.New()
	router.GET("/ws", hub.ServeWs)
	srv := httptest.NewServer(router)
	t.Cleanup(func() {
		cancel()
		srv.Close()
	})
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var ev Event
	require.NoError(t, json.Unmarshal(data, &ev))
	return ev
}

func TestHub_FiltersByBusiness(t *testing.T) {
	hub, url := startHub(t)

	all := dial(t, url)
	acme := dial(t, url+"?business_id=acme")
	time.Sleep(100 * time.Millisecond)

	hub.Publish(Event{Type: EventTaxCalculationCreated, BusinessID: "other", Payload: map[string]string{"id": "1"}})
	hub.Publish(Event{Type: EventTaxCalculationCreated, BusinessID: "acme", Payload: map[string]string{"id": "2"}})
	hub.Publish(Event{Type: EventTaxRateSuperseded})

	first := readEvent(t, all)
	assert.Equal(t, "other", first.BusinessID)
	assert.False(t, first.OccurredAt.IsZero())
	assert.Equal(t, "acme", readEvent(t, all).BusinessID)
	assert.Equal(t, EventTaxRateSuperseded, readEvent(t, all).Type)

	got := readEvent(t, acme)
	assert.Equal(t, "acme", got.BusinessID)
	assert.Equal(t, map[string]any{"id": "2"}, got.Payload)
	assert.Equal(t, EventTaxRateSuperseded, readEvent(t, acme).Type)
}

func TestClient_Wants(t *testing.T) {
	scoped := &Client{businessID: "acme"}
	assert.True(t, scoped.wants("acme"))
	assert.True(t, scoped.wants(""))
	assert.False(t, scoped.wants("other"))

	everyone := &Client{}
	assert.True(t, everyone.wants("other"))
}

func TestHub_DropsSlowClient(t *testing.T) {
	hub := NewHub(nil)
	slow := &Client{hub: hub, send: make(chan []byte, 1)}
	probe := &Client{hub: hub, send: make(chan []byte, 8)}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go hub.Run(ctx)
	hub.register <- slow
	hub.register <- probe

	hub.Publish(Event{Type: "a"})
	hub.Publish(Event{Type: "b"})
	hub.Publish(Event{Type: "c"})

	// once the probe has seen the last event the hub is done with "b"
	for i := 0; i < 3; i++ {
		select {
		case <-probe.send:
		case <-time.After(2 * time.Second):
			t.Fatal("probe client starved")
		}
	}

	first, ok := <-slow.send
	require.True(t, ok)
	assert.Contains(t, string(first), `"type":"a"`)
	_, ok = <-slow.send
	assert.False(t, ok, "slow client should have been dropped")
}
