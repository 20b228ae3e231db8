package roster

import "testing"

func TestHubDeliversSnapshotToSubscriber(t *testing.T) {
	hub := NewHub()

	var calls int
	var last []Doc
	cancel := hub.Subscribe(func(snap []Doc) {
		calls++
		last = snap
	})
	defer cancel()

	before := []Doc{{ID: 1, Name: "Ayşe"}}
	after := append(append([]Doc{}, before...), Doc{ID: 2, Name: "Fatma"})

	// Uzaktaki bir insert tam snapshot olarak gelir, diff değil
	hub.Publish(after)

	if calls != 1 {
		t.Fatalf("tek event tek callback tetiklemeli, calls=%d", calls)
	}
	if len(last) != len(before)+1 {
		t.Fatalf("snapshot uzunluğu %d olmalı, got %d", len(before)+1, len(last))
	}
}

func TestHubUnsubscribeStopsCallbacks(t *testing.T) {
	hub := NewHub()

	var calls int
	cancel := hub.Subscribe(func([]Doc) { calls++ })

	hub.Publish([]Doc{{ID: 1}})
	cancel()
	hub.Publish([]Doc{{ID: 1}, {ID: 2}})
	hub.Publish(nil)

	if calls != 1 {
		t.Fatalf("unsubscribe sonrası callback gelmemeli, calls=%d", calls)
	}

	// cancel'ın tekrar çağrılması zararsızdır
	cancel()
}

func TestHubMultipleSubscribers(t *testing.T) {
	hub := NewHub()

	var a, b int
	cancelA := hub.Subscribe(func([]Doc) { a++ })
	defer cancelA()
	cancelB := hub.Subscribe(func([]Doc) { b++ })

	hub.Publish([]Doc{{ID: 1}})
	cancelB()
	hub.Publish([]Doc{{ID: 1}})

	if a != 2 || b != 1 {
		t.Fatalf("a=%d (want 2) b=%d (want 1)", a, b)
	}
}

func TestHubSubscriberCanCancelDuringPublish(t *testing.T) {
	hub := NewHub()

	var cancel func()
	var calls int
	cancel = hub.Subscribe(func([]Doc) {
		calls++
		cancel()
	})

	hub.Publish([]Doc{{ID: 1}})
	hub.Publish([]Doc{{ID: 2}})

	if calls != 1 {
		t.Fatalf("publish içinde kapanan abone tekrar çağrılmamalı, calls=%d", calls)
	}
}
