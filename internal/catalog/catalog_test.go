package catalog

import (
	"math"
	"testing"
)

func TestDefaultLookups(t *testing.T) {
	c := Default()

	m, err := c.Material("S235")
	if err != nil {
		t.Fatalf("Material(S235) failed: %v", err)
	}
	if m.ElasticModulus != 210e9 {
		t.Errorf("S235 E = %g, want 2.1e11", m.ElasticModulus)
	}
	if m.Family != FamilySteel {
		t.Errorf("S235 family = %q, want steel", m.Family)
	}

	s, err := c.Section("IPE 200")
	if err != nil {
		t.Fatalf("Section(IPE 200) failed: %v", err)
	}
	if s.Ix != 1.94e-4 {
		t.Errorf("IPE 200 Ix = %g, want 1.94e-4", s.Ix)
	}
	if s.Depth != 0.200 {
		t.Errorf("IPE 200 depth = %g, want 0.2", s.Depth)
	}
}

func TestUnknownEntries(t *testing.T) {
	c := Default()
	if _, err := c.Material("unobtainium"); err == nil {
		t.Error("expected error for unknown material")
	}
	if _, err := c.Section("IPE 9000"); err == nil {
		t.Error("expected error for unknown section")
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	c := Default()
	m1, _ := c.Material("S355")
	m1.YieldStrength = 1
	m2, _ := c.Material("S355")
	if m2.YieldStrength != 355e6 {
		t.Error("catalog entry was mutated through a lookup copy")
	}
}

func TestRectangularSection(t *testing.T) {
	s := RectangularSection("rc", 0.3, 0.5)

	if got, want := s.Area, 0.15; math.Abs(got-want) > 1e-12 {
		t.Errorf("area = %g, want %g", got, want)
	}
	if got, want := s.Ix, 0.3*0.125/12; math.Abs(got-want)/want > 1e-12 {
		t.Errorf("Ix = %g, want %g", got, want)
	}
	if got, want := s.Sx, 0.3*0.25/6; math.Abs(got-want)/want > 1e-12 {
		t.Errorf("Sx = %g, want %g", got, want)
	}
	// Plastic modulus exceeds elastic modulus for a solid shape.
	if s.Zx <= s.Sx {
		t.Errorf("Zx = %g should exceed Sx = %g", s.Zx, s.Sx)
	}
	if s.J <= 0 {
		t.Errorf("J = %g, want > 0", s.J)
	}
}

func TestRadiusOfGyration(t *testing.T) {
	s := RectangularSection("rc", 0.4, 0.4)
	// r = h/sqrt(12) for a square.
	want := 0.4 / math.Sqrt(12)
	if got := s.RadiusOfGyration(); math.Abs(got-want)/want > 1e-12 {
		t.Errorf("r = %g, want %g", got, want)
	}
}

func TestFixtureCatalog(t *testing.T) {
	c := New()
	c.AddMaterial(Material{Name: "test-steel", ElasticModulus: 1, Family: FamilySteel})

	if _, err := c.Material("test-steel"); err != nil {
		t.Errorf("fixture material not found: %v", err)
	}
	if _, err := c.Material("S235"); err == nil {
		t.Error("empty catalog should not contain stock entries")
	}
}
