package broadcast

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/homestretch/internal/models"
)

func dialHub(t *testing.T, hub *Hub) (*websocket.Conn, func()) {
	t.Helper()
	srv := httptest.NewServer(hub.Handler())
	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}

	return conn, func() {
		conn.Close()
		srv.Close()
	}
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d clients, have %d", n, hub.ClientCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHubDeliversRaceResults(t *testing.T) {
	hub := NewHub(nil)
	defer hub.Close()

	conn, cleanup := dialHub(t, hub)
	defer cleanup()
	waitForClients(t, hub, 1)

	result := &models.RaceResult{RaceID: uuid.New(), RaceName: "Debut Sprint", Turn: 4}
	hub.PublishRaceResult(result)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event Event
	require.NoError(t, conn.ReadJSON(&event))

	assert.Equal(t, OpRaceResult, event.Op)
	require.NotNil(t, event.Race)
	assert.Equal(t, result.RaceID, event.Race.RaceID)
	assert.Equal(t, "Debut Sprint", event.Race.RaceName)
	assert.False(t, event.Timestamp.IsZero())
}

func TestHubDeliversSweepSummaries(t *testing.T) {
	hub := NewHub(nil)
	defer hub.Close()

	conn, cleanup := dialHub(t, hub)
	defer cleanup()
	waitForClients(t, hub, 1)

	hub.PublishSweep(map[string]int{"careers": 100})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event Event
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, OpSweep, event.Op)
	assert.NotNil(t, event.Sweep)
}

func TestHubReapsDisconnectedClients(t *testing.T) {
	hub := NewHub(nil)
	defer hub.Close()

	conn, cleanup := dialHub(t, hub)
	defer cleanup()
	waitForClients(t, hub, 1)

	conn.Close()
	waitForClients(t, hub, 0)

	// Publishing to an empty hub is a no-op
	hub.PublishSweep(nil)
}

func TestHubCloseRejectsNewClients(t *testing.T) {
	hub := NewHub(nil)
	hub.Close()
	assert.Equal(t, 0, hub.ClientCount())

	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if resp != nil {
		resp.Body.Close()
	}
	if err == nil {
		// The upgrade may succeed before the hub drops the connection;
		// either way no client is registered
		conn.Close()
	}
	assert.Equal(t, 0, hub.ClientCount())

	// Close is idempotent
	hub.Close()
}
