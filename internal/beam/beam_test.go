package beam

import (
	"math"
	"testing"
)

// IPE 200 span used throughout: w=10 kN/m, L=5 m, E=210 GPa, I=1.94e-4 m⁴.
const (
	testW = 10000.0
	testL = 5.0
	testE = 2.1e11
	testI = 1.94e-4
	testH = 0.2
)

func testSpan(t *testing.T, support Support) *Span {
	t.Helper()
	s, err := NewSpan(testL, testW, testE, testI, testH, support)
	if err != nil {
		t.Fatalf("NewSpan failed: %v", err)
	}
	return s
}

func relClose(got, want, tol float64) bool {
	if want == 0 {
		return math.Abs(got) <= tol
	}
	return math.Abs(got-want)/math.Abs(want) <= tol
}

func TestSimpleSpan(t *testing.T) {
	r, err := testSpan(t, Simple).Solve()
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	wantDefl := 5 * testW * math.Pow(testL, 4) / (384 * testE * testI)
	if !relClose(r.MaxDeflection, wantDefl, 1e-9) {
		t.Errorf("deflection = %.12g, want %.12g", r.MaxDeflection, wantDefl)
	}
	if r.ReactionLeft != 25000 || r.ReactionRight != 25000 {
		t.Errorf("reactions = %v, %v, want 25000 each", r.ReactionLeft, r.ReactionRight)
	}
	if want := testW * testL * testL / 8; !relClose(r.MaxMoment, want, 1e-12) {
		t.Errorf("moment = %v, want %v", r.MaxMoment, want)
	}
	if want := r.MaxMoment * 0.1 / testI; !relClose(r.MaxStress, want, 1e-12) {
		t.Errorf("stress = %v, want %v", r.MaxStress, want)
	}
}

func TestCantilever(t *testing.T) {
	r, err := testSpan(t, Cantilever).Solve()
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if r.ReactionLeft != 50000 {
		t.Errorf("fixed-end reaction = %v, want 50000", r.ReactionLeft)
	}
	if r.ReactionRight != 0 {
		t.Errorf("free-end reaction = %v, want 0", r.ReactionRight)
	}
	if want := 125000.0; r.MaxMoment != want {
		t.Errorf("fixed-end moment = %v, want %v", r.MaxMoment, want)
	}
	if r.SupportMoment != -125000 {
		t.Errorf("support moment = %v, want -125000", r.SupportMoment)
	}
}

func TestSupportCases(t *testing.T) {
	cases := []struct {
		support    Support
		wantDefl   float64 // coefficient on wL⁴/EI
		wantMoment float64 // coefficient on wL²
	}{
		{Simple, 5.0 / 384, 1.0 / 8},
		{FixedFixed, 1.0 / 384, 1.0 / 12},
		{Cantilever, 1.0 / 8, 1.0 / 2},
		{Continuous, 0.8 * 5.0 / 384, 1.0 / 10},
		{FixedPinned, 1.0 / 185, 1.0 / 8},
	}

	wl4 := testW * math.Pow(testL, 4) / (testE * testI)
	wl2 := testW * testL * testL

	for _, tc := range cases {
		t.Run(string(tc.support), func(t *testing.T) {
			r, err := testSpan(t, tc.support).Solve()
			if err != nil {
				t.Fatalf("Solve failed: %v", err)
			}
			if want := tc.wantDefl * wl4; !relClose(r.MaxDeflection, want, 1e-9) {
				t.Errorf("deflection = %g, want %g", r.MaxDeflection, want)
			}
			if want := tc.wantMoment * wl2; !relClose(r.MaxMoment, want, 1e-9) {
				t.Errorf("moment = %g, want %g", r.MaxMoment, want)
			}
		})
	}
}

func TestFixedPinnedReactions(t *testing.T) {
	r, _ := testSpan(t, FixedPinned).Solve()
	if want := 3 * testW * testL / 8; r.ReactionLeft != want {
		t.Errorf("pinned reaction = %v, want %v", r.ReactionLeft, want)
	}
	if want := 5 * testW * testL / 8; r.ReactionRight != want {
		t.Errorf("fixed reaction = %v, want %v", r.ReactionRight, want)
	}
	if want := -testW * testL * testL / 8; r.SupportMoment != want {
		t.Errorf("support moment = %v, want %v", r.SupportMoment, want)
	}
}

func TestInvalidSpans(t *testing.T) {
	cases := []struct {
		name                  string
		l, w, e, i, h float64
		support               Support
	}{
		{"zero length", 0, testW, testE, testI, testH, Simple},
		{"zero modulus", testL, testW, 0, testI, testH, Simple},
		{"negative inertia", testL, testW, testE, -1, testH, Simple},
		{"zero depth", testL, testW, testE, testI, 0, Simple},
		{"bad support", testL, testW, testE, testI, testH, Support("floating")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewSpan(tc.l, tc.w, tc.e, tc.i, tc.h, tc.support); err == nil {
				t.Error("expected constructor error")
			}
		})
	}
}

func TestUtilization(t *testing.T) {
	s := testSpan(t, Simple)
	r, _ := s.Solve()

	u, err := s.Utilization(r, 141e6, 0)
	if err != nil {
		t.Fatalf("Utilization failed: %v", err)
	}

	wantBending := r.MaxStress / 141e6
	if !relClose(u.Bending, wantBending, 1e-12) {
		t.Errorf("bending utilization = %g, want %g", u.Bending, wantBending)
	}
	wantDefl := r.MaxDeflection / (testL / 360)
	if !relClose(u.Deflection, wantDefl, 1e-12) {
		t.Errorf("deflection utilization = %g, want %g", u.Deflection, wantDefl)
	}
	if u.Governing != math.Max(u.Bending, u.Deflection) {
		t.Errorf("governing = %g, want max of components", u.Governing)
	}

	if _, err := s.Utilization(r, 0, 0); err == nil {
		t.Error("expected error for zero allowable stress")
	}
}
