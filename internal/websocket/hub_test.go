package websocket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recvWithin(t *testing.T, ch chan []byte, d time.Duration) []byte {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(d):
		t.Fatal("timed out waiting for broadcast")
		return nil
	}
}

func TestBroadcastReachesOnlySubscribedDay(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	day1 := &Client{Day: "1", Send: make(chan []byte, 4)}
	day2 := &Client{Day: "2", Send: make(chan []byte, 4)}
	hub.Register(day1)
	hub.Register(day2)

	hub.BroadcastToDay("1", []byte("front nine update"))

	msg := recvWithin(t, day1.Send, time.Second)
	assert.Equal(t, "front nine update", string(msg))

	select {
	case msg := <-day2.Send:
		t.Fatalf("day 2 client received day 1 broadcast: %q", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{Day: "3", Send: make(chan []byte, 4)}
	hub.Register(client)
	hub.Unregister(client)

	select {
	case _, open := <-client.Send:
		assert.False(t, open, "send channel should be closed after unregister")
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}

	// A broadcast after unregister must not panic or deliver.
	hub.BroadcastToDay("3", []byte("late"))
	time.Sleep(20 * time.Millisecond)
}

func TestSlowClientIsDropped(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	slow := &Client{Day: "1", Send: make(chan []byte)} // No buffer, never drained
	healthy := &Client{Day: "1", Send: make(chan []byte, 8)}
	hub.Register(slow)
	hub.Register(healthy)

	// The first broadcast can't be buffered by the slow client, so the hub
	// drops it and closes its channel; the healthy client keeps receiving.
	hub.BroadcastToDay("1", []byte("one"))
	hub.BroadcastToDay("1", []byte("two"))

	require.Equal(t, "one", string(recvWithin(t, healthy.Send, time.Second)))
	require.Equal(t, "two", string(recvWithin(t, healthy.Send, time.Second)))

	select {
	case _, open := <-slow.Send:
		assert.False(t, open, "slow client's channel should be closed")
	case <-time.After(time.Second):
		t.Fatal("slow client was never dropped")
	}
}
