package auth

import (
	"testing"

	"github.com/JustTzyy/softwear/internal/model"
)

func TestSession_SetAndClear(t *testing.T) {
	s := NewSession()
	if s.Current() != nil {
		t.Fatal("new session should start empty")
	}

	alice := &model.Identity{ID: 1, Email: "alice@example.com", DisplayName: "Alice", Role: "admin"}
	s.Set(alice)
	if got := s.Current(); got == nil || got.Email != "alice@example.com" {
		t.Fatalf("expected alice to be current, got %+v", got)
	}

	// A new authentication may replace the identity without a Clear between.
	bob := &model.Identity{ID: 2, Email: "bob@example.com", DisplayName: "Bob", Role: "cashier"}
	s.Set(bob)
	if got := s.Current(); got == nil || got.ID != 2 {
		t.Fatalf("expected bob to replace alice, got %+v", got)
	}

	s.Clear()
	if s.Current() != nil {
		t.Fatal("expected empty session after Clear")
	}
}

func TestSession_NotifiesOncePerTransition(t *testing.T) {
	s := NewSession()
	calls := 0
	unsubscribe := s.Subscribe(func() { calls++ })

	id := &model.Identity{ID: 1, Email: "a@b.c", DisplayName: "A", Role: "admin"}
	s.Set(id)
	s.Set(id) // redundant set still notifies
	s.Clear()
	s.Clear() // clearing an empty session still notifies

	if calls != 4 {
		t.Fatalf("expected 4 notifications, got %d", calls)
	}

	unsubscribe()
	s.Set(id)
	if calls != 4 {
		t.Fatalf("expected no notification after unsubscribe, got %d", calls)
	}
	// calling unsubscribe again is harmless
	unsubscribe()
}

func TestSession_MultipleSubscribers(t *testing.T) {
	s := NewSession()
	var order []string
	s.Subscribe(func() { order = append(order, "first") })
	s.Subscribe(func() { order = append(order, "second") })

	s.Set(&model.Identity{ID: 1, Email: "a@b.c", DisplayName: "A", Role: "admin"})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("expected both subscribers notified in registration order, got %v", order)
	}
}
