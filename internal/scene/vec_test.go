package scene

import (
	"math"
	"testing"
)

func TestVecNormalize(t *testing.T) {
	v := Vec3{3, 4, 0}.Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("normalized length %v, want 1", v.Length())
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero vector should normalize to zero, got %+v", got)
	}
}

func TestVecCross(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{-2, 0.5, 1}
	c := a.Cross(b)
	if math.Abs(c.Dot(a)) > 1e-12 || math.Abs(c.Dot(b)) > 1e-12 {
		t.Errorf("cross product not orthogonal to its operands: %+v", c)
	}
	if got := (Vec3{1, 0, 0}).Cross(Vec3{0, 1, 0}); got != (Vec3{0, 0, 1}) {
		t.Errorf("x cross y = %+v, want z", got)
	}
}

func TestCameraTopDown(t *testing.T) {
	c := NewCamera()
	c.Elev = 90

	px, py, _ := c.Project(Vec3{}, 100, 100, 10)
	if px != 50 || py != 50 {
		t.Errorf("origin projected to (%v, %v), want image center", px, py)
	}
	px2, py2, _ := c.Project(Vec3{X: 1}, 100, 100, 10)
	if px2 == 50 && py2 == 50 {
		t.Error("off-center point collapsed to the image center")
	}
}
