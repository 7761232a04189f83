package math

import "testing"

func TestRectangleEdges(t *testing.T) {
	r := Rectangle{X: 10, Y: 20, Width: 30, Height: 40}
	if r.Left() != 10 || r.Top() != 20 || r.Right() != 40 || r.Bottom() != 60 {
		t.Errorf("edges: got l=%v t=%v r=%v b=%v", r.Left(), r.Top(), r.Right(), r.Bottom())
	}
	if r.Size() != (Vec2{30, 40}) {
		t.Errorf("Size() = %v, want (30, 40)", r.Size())
	}
	if r.Position() != (Vec2{10, 20}) {
		t.Errorf("Position() = %v, want (10, 20)", r.Position())
	}
}

func TestRectangleIsInside(t *testing.T) {
	r := Rectangle{X: 10, Y: 10, Width: 20, Height: 30}

	tests := []struct {
		name string
		pt   Vec2
		want bool
	}{
		{"top-left corner", Vec2{10, 10}, true},
		{"bottom-right corner", Vec2{30, 40}, true},
		{"center", Vec2{20, 25}, true},
		{"just left", Vec2{9.9, 10}, false},
		{"just past bottom-right", Vec2{30.1, 40}, false},
		{"below", Vec2{20, 40.5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.IsInside(tt.pt); got != tt.want {
				t.Errorf("IsInside(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestRectangleMutators(t *testing.T) {
	r := Rectangle{X: 1, Y: 2, Width: 3, Height: 4}
	r.Move(Vec2{10, 10})
	if r.Position() != (Vec2{11, 12}) {
		t.Errorf("after Move: got %v, want (11, 12)", r.Position())
	}
	r.SetPosition(Vec2{0, 0})
	r.SetSize(Vec2{5, 6})
	want := Rectangle{X: 0, Y: 0, Width: 5, Height: 6}
	if r != want {
		t.Errorf("after SetPosition/SetSize: got %v, want %v", r, want)
	}
}
