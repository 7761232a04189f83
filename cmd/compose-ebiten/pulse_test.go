package main

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestPulseReverses(t *testing.T) {
	p := newPulse(0, 1, 1, ease.Linear)

	if v := p.Update(0.5); v < 0.49 || v > 0.51 {
		t.Errorf("halfway value = %v, want 0.5", v)
	}
	if v := p.Update(0.5); v != 1 {
		t.Errorf("end value = %v, want 1", v)
	}
	if v := p.Update(0.25); v < 0.74 || v > 0.76 {
		t.Errorf("after reversing = %v, want 0.75", v)
	}
}
