package sketch

import "testing"

func TestIngestRateEWMA(t *testing.T) {
	e := NewIngestRateEWMA(0.5)
	e.Push(4.0)
	if e.Rate() != 4.0 {
		t.Errorf("expected seeded rate 4.0, got %f", e.Rate())
	}
	e.Push(8.0)
	if e.Rate() != 6.0 {
		t.Errorf("expected averaged rate 6.0, got %f", e.Rate())
	}
}
