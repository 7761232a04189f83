package gpu

import "testing"

func TestParseBlendMode(t *testing.T) {
	tests := []struct {
		name string
		want BlendMode
	}{
		{"alpha", BlendAlpha},
		{"add", BlendAdd},
		{"replace", BlendReplace},
		{"invert", BlendInvert},
	}
	for _, tt := range tests {
		got, err := ParseBlendMode(tt.name)
		if err != nil {
			t.Errorf("ParseBlendMode(%q): %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBlendMode(%q) = %+v, want %+v", tt.name, got, tt.want)
		}
	}

	if _, err := ParseBlendMode("overlay"); err == nil {
		t.Error("expected error for unknown blend mode")
	}
}

func TestVertexArrayCopiesInput(t *testing.T) {
	src := []Vertex{{}, {}, {}}
	va := NewVertexArray(src)
	src[0].UV.X = 1
	if va.Vertices()[0].UV.X != 0 {
		t.Error("VertexArray shares its input slice")
	}
	if va.Len() != 3 {
		t.Errorf("Len() = %d, want 3", va.Len())
	}

	var empty *VertexArray
	if empty.Len() != 0 || empty.Vertices() != nil {
		t.Error("nil VertexArray should be empty")
	}
}
