package geometry

import (
	"math"
	"testing"
)

func TestVector3Arithmetic(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(4, 5, 6)

	if got, want := a.Add(b), NewVector3(5, 7, 9); got != want {
		t.Errorf("Add failed: expected %v, got %v", want, got)
	}
	if got, want := b.Sub(a), NewVector3(3, 3, 3); got != want {
		t.Errorf("Sub failed: expected %v, got %v", want, got)
	}
	if got, want := a.Mul(-2), NewVector3(-2, -4, -6); got != want {
		t.Errorf("Mul failed: expected %v, got %v", want, got)
	}
}

func TestVector3Distance(t *testing.T) {
	v1 := NewVector3(0, 0, 0)
	v2 := NewVector3(3, 4, 0)

	if d := v1.Distance(v2); math.Abs(d-5) > 1e-10 {
		t.Errorf("Distance failed: expected 5, got %v", d)
	}
}

func TestVector3Cross(t *testing.T) {
	result := NewVector3(1, 0, 0).Cross(NewVector3(0, 1, 0))

	expected := NewVector3(0, 0, 1)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestVector3MinMax(t *testing.T) {
	a := NewVector3(1, 5, -2)
	b := NewVector3(3, -1, 0)

	if got, want := a.Min(b), NewVector3(1, -1, -2); got != want {
		t.Errorf("Min failed: expected %v, got %v", want, got)
	}
	if got, want := a.Max(b), NewVector3(3, 5, 0); got != want {
		t.Errorf("Max failed: expected %v, got %v", want, got)
	}
}

func TestTriangleArea(t *testing.T) {
	// right triangle with legs 3 and 4
	area := TriangleArea(NewVector3(0, 0, 0), NewVector3(3, 0, 0), NewVector3(0, 0, 4))

	if math.Abs(area-6) > 1e-10 {
		t.Errorf("Area failed: expected 6, got %v", area)
	}
}
