package broadcast

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
		Room: "bar-1",
	}

	hub.register <- client

	notice := Notice{
		Event:   "hold.placed",
		BarID:   "bar-1",
		TableID: "table-1",
		Date:    "2026-09-11",
		Clock:   "20:00",
	}
	hub.NotifyHold(notice)

	select {
	case got := <-client.Send:
		var decoded Notice
		if err := json.Unmarshal(got, &decoded); err != nil {
			t.Fatalf("expected valid JSON, got %s", got)
		}
		if decoded.Event != "hold.placed" || decoded.TableID != "table-1" {
			t.Fatalf("unexpected notice %+v", decoded)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for notice")
	}
}

func TestHubDoesNotCrossRooms(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
		Room: "bar-2",
	}
	hub.register <- client

	hub.NotifyHold(Notice{Event: "hold.placed", BarID: "bar-1", TableID: "table-1"})

	select {
	case got := <-client.Send:
		t.Fatalf("expected no delivery for another bar, got %s", got)
	case <-time.After(100 * time.Millisecond):
	}
}
