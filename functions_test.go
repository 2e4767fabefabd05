package kotei_test

import (
	"testing"

	"github.com/edwinsyarief/kotei"
)

// go test -run ^TestGetTyped$ . -count 1
func TestGetTyped(t *testing.T) {
	s := setupStorage(t, 16)
	e := s.Create()
	s.AddComponent(healthCid, e, &Health{HP: 5, MaxHP: 10})

	h, ok := kotei.Get[*Health](s, healthCid, e)
	if !ok || h.HP != 5 {
		t.Fatalf("Get returned %+v, %v", h, ok)
	}
	if _, ok := kotei.Get[*Position](s, healthCid, e); ok {
		t.Error("Get succeeded with the wrong component type")
	}
	if _, ok := kotei.Get[*Health](s, healthCid, 9); ok {
		t.Error("Get succeeded for an entity without the component")
	}
	if p := kotei.GetOrZero[*Position](s, posCid, e); p != nil {
		t.Errorf("expected nil from GetOrZero, got %+v", p)
	}
}

// go test -run ^TestGetValueComponent$ . -count 1
func TestGetValueComponent(t *testing.T) {
	s := setupStorage(t, 16)
	e := s.Create()
	s.AddComponent(posCid, e, Position{X: 7, Y: 8})

	p := kotei.GetOrZero[Position](s, posCid, e)
	if p.X != 7 || p.Y != 8 {
		t.Errorf("expected {7 8}, got %+v", p)
	}
	if z := kotei.GetOrZero[Position](s, posCid, 3); z != (Position{}) {
		t.Errorf("expected zero Position, got %+v", z)
	}
}

// go test -run ^TestEach$ . -count 1
func TestEach(t *testing.T) {
	s := setupStorage(t, 16)
	for i := 1; i <= 4; i++ {
		s.CreateWith(kotei.Attachment{Cid: healthCid, Component: &Health{HP: i}})
	}
	total := 0
	kotei.Each(s, healthCid, func(_ kotei.Eid, h *Health) bool {
		total += h.HP
		return true
	})
	if total != 10 {
		t.Errorf("expected total 10, got %d", total)
	}

	visits := 0
	kotei.Each(s, healthCid, func(_ kotei.Eid, _ *Health) bool {
		visits++
		return visits < 2
	})
	if visits != 2 {
		t.Errorf("expected Each to stop after 2 visits, got %d", visits)
	}
}
