package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch chan []byte) []byte {
	t.Helper()
	select {
	case data := <-ch:
		return data
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return nil
	}
}

func TestBroadcastReachesSessionSubscribers(t *testing.T) {
	hub := NewHub()

	conn := &Connection{SessionID: "s_abc", Send: make(chan []byte, 8), Hub: hub}
	other := &Connection{SessionID: "s_other", Send: make(chan []byte, 8), Hub: hub}
	hub.Register(conn)
	hub.Register(other)

	hub.BroadcastToSession("s_abc", string(MsgAssistantMessage), map[string]string{"text": "hello"})

	var msg Message
	require.NoError(t, json.Unmarshal(receive(t, conn.Send), &msg))
	assert.Equal(t, MsgAssistantMessage, msg.Type)
	assert.JSONEq(t, `{"text":"hello"}`, string(msg.Payload))

	select {
	case data := <-other.Send:
		t.Fatalf("unrelated session received message: %s", data)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnregisterClosesConnection(t *testing.T) {
	hub := NewHub()

	conn := &Connection{SessionID: "s_abc", Send: make(chan []byte, 8), Hub: hub}
	hub.Register(conn)
	hub.Unregister(conn)

	select {
	case _, ok := <-conn.Send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}

	// Broadcasting to a session with no subscribers is a no-op.
	hub.BroadcastToSession("s_abc", string(MsgSessionCompleted), map[string]bool{"done": true})
}
