package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 || m[12] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())
	if result != m {
		t.Errorf("M * I should equal M: got %v, want %v", result, m)
	}
}

func TestMulOrder(t *testing.T) {
	// Translate * Scale scales first, then translates.
	m := Translate(10, 0, 0).Mul(Scale(2, 2, 1))
	got := m.TransformVec2(Vec2{1, 1})
	want := Vec2{12, 2}
	if got != want {
		t.Errorf("T*S applied to (1,1): got %v, want %v", got, want)
	}

	m = Scale(2, 2, 1).Mul(Translate(10, 0, 0))
	got = m.TransformVec2(Vec2{1, 1})
	want = Vec2{22, 2}
	if got != want {
		t.Errorf("S*T applied to (1,1): got %v, want %v", got, want)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, 4)
	result := m.TransformPoint([3]float32{1, 2, 3})
	expected := [3]float32{2, 6, 12}
	if result != expected {
		t.Errorf("TransformPoint with scale: got %v, want %v", result, expected)
	}
}

func TestRotateZ90(t *testing.T) {
	m := RotateZ(float32(math.Pi / 2))
	got := m.TransformVec2(Vec2{1, 0})
	if abs(got.X) > 0.001 || abs(got.Y-1) > 0.001 {
		t.Errorf("RotateZ 90: got %v, want (0, 1)", got)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2))
	result := m.TransformPoint([3]float32{1, 0, 0})
	if abs(result[0]) > 0.001 || abs(result[1]) > 0.001 || abs(result[2]+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestRotateX90(t *testing.T) {
	m := RotateX(float32(math.Pi / 2))
	result := m.TransformPoint([3]float32{0, 1, 0})
	if abs(result[0]) > 0.001 || abs(result[1]) > 0.001 || abs(result[2]-1) > 0.001 {
		t.Errorf("RotateX 90: got %v, want (0, 0, 1)", result)
	}
}

func TestRotateAroundKeepsCenterFixed(t *testing.T) {
	center := Vec2{3, 4}
	m := RotateAround(center, 1.234)
	got := m.TransformVec2(center)
	if abs(got.X-center.X) > 0.0001 || abs(got.Y-center.Y) > 0.0001 {
		t.Errorf("RotateAround moved its center: got %v, want %v", got, center)
	}

	// (4,4) is one unit right of the center; a quarter turn puts it one unit below.
	m = RotateAround(center, float32(math.Pi/2))
	got = m.TransformVec2(Vec2{4, 4})
	if abs(got.X-3) > 0.0001 || abs(got.Y-5) > 0.0001 {
		t.Errorf("RotateAround 90: got %v, want (3, 5)", got)
	}
}

func TestOrthoMapsCorners(t *testing.T) {
	m := Ortho(0, 800, 600, 0, -1, 1)

	topLeft := m.TransformVec2(Vec2{0, 0})
	if abs(topLeft.X+1) > 0.0001 || abs(topLeft.Y-1) > 0.0001 {
		t.Errorf("Ortho top-left: got %v, want (-1, 1)", topLeft)
	}
	bottomRight := m.TransformVec2(Vec2{800, 600})
	if abs(bottomRight.X-1) > 0.0001 || abs(bottomRight.Y+1) > 0.0001 {
		t.Errorf("Ortho bottom-right: got %v, want (1, -1)", bottomRight)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1, 0.1, 100)
	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestApproxEqual(t *testing.T) {
	a := Translate(1, 2, 3)
	b := a
	b[12] += 0.00001
	if !a.ApproxEqual(b, 0.0001) {
		t.Error("expected matrices within tolerance to compare equal")
	}
	b[12] += 1
	if a.ApproxEqual(b, 0.0001) {
		t.Error("expected matrices outside tolerance to differ")
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
