package ws

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"testing"
	"time"

	"github.com/google/uuid"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}

func TestHubRoutesToUser(t *testing.T) {
	hub := NewHub(log.New(io.Discard, "", 0))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	alice, bob := uuid.New(), uuid.New()
	a1 := NewClient(hub, nil, alice)
	a2 := NewClient(hub, nil, alice)
	b := NewClient(hub, nil, bob)
	hub.Register(a1)
	hub.Register(a2)
	hub.Register(b)
	waitFor(t, func() bool { return hub.ClientCount() == 3 })

	hub.NotifyUser(alice, map[string]string{"type": "swap_requested"})

	for _, c := range []*Client{a1, a2} {
		select {
		case msg := <-c.send:
			var got map[string]string
			if err := json.Unmarshal(msg, &got); err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got["type"] != "swap_requested" {
				t.Fatalf("unexpected payload: %s", msg)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("expected message for alice")
		}
	}

	select {
	case msg := <-b.send:
		t.Fatalf("bob must not receive alice's message: %s", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub(log.New(io.Discard, "", 0))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	c := NewClient(hub, nil, uuid.New())
	hub.Register(c)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	hub.Unregister(c)
	waitFor(t, func() bool { return hub.ClientCount() == 0 })

	if _, ok := <-c.send; ok {
		t.Fatalf("expected send channel to be closed")
	}
}

func TestNilHubIsSafe(t *testing.T) {
	var hub *Hub
	hub.NotifyUser(uuid.New(), "x")
	if hub.ClientCount() != 0 {
		t.Fatalf("expected zero clients")
	}
}

func TestHubStoppedDoesNotBlock(t *testing.T) {
	hub := NewHub(log.New(io.Discard, "", 0))
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	finished := make(chan struct{})
	go func() {
		// more calls than the register and unregister buffers hold
		for i := 0; i < 300; i++ {
			c := NewClient(hub, nil, uuid.New())
			hub.Register(c)
			hub.Unregister(c)
		}
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatalf("register/unregister blocked after the hub stopped")
	}
}
