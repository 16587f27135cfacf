package foundation

import (
	"strings"
	"testing"

	"github.com/strucalc/strucalc/internal/soil"
)

func TestPileGroupCohesive(t *testing.T) {
	f, err := DesignPileGroup(PileInput{
		AxialLoad: 5e6,
		Soil:      soil.Properties{Type: "medium-clay"},
	})
	if err != nil {
		t.Fatalf("DesignPileGroup failed: %v", err)
	}

	if f.Type != PileFoundation {
		t.Errorf("type = %v", f.Type)
	}
	if f.PileCount < 2 {
		t.Errorf("pile count = %d, want >= 2", f.PileCount)
	}
	if f.PileLength < 6 || f.PileLength > 30 {
		t.Errorf("pile length = %v, want within 6-30 m", f.PileLength)
	}
	if f.GroupEfficiency <= 0 || f.GroupEfficiency > 1 {
		t.Errorf("group efficiency = %v, want (0, 1]", f.GroupEfficiency)
	}
	// Reduced group capacity still covers the demand.
	if got := float64(f.PileCount) * f.BearingCapacity * f.GroupEfficiency; got < 5e6 {
		t.Errorf("group capacity %v below demand 5e6", got)
	}
	if f.EstimatedSettlement < 0 || f.EstimatedSettlement > 50 {
		t.Errorf("settlement = %v mm, want within [0, 50]", f.EstimatedSettlement)
	}
	for _, field := range []string{"piles", "layout", "efficiency", "As ="} {
		if !strings.Contains(f.Reinforcement, field) {
			t.Errorf("reinforcement %q missing %q", f.Reinforcement, field)
		}
	}
}

func TestPileGroupGranularShorterThanSoft(t *testing.T) {
	dense, err := DesignPileGroup(PileInput{AxialLoad: 3e6, Soil: soil.Properties{Type: "dense-sand"}})
	if err != nil {
		t.Fatal(err)
	}
	softClay, err := DesignPileGroup(PileInput{AxialLoad: 3e6, Soil: soil.Properties{Type: "soft-clay"}})
	if err != nil {
		t.Fatal(err)
	}

	if dense.PileLength >= softClay.PileLength {
		t.Errorf("dense sand length %v should be shorter than soft clay %v",
			dense.PileLength, softClay.PileLength)
	}
	if dense.PileCount > softClay.PileCount {
		t.Errorf("dense sand needs %d piles, soft clay %d; expected fewer or equal in dense sand",
			dense.PileCount, softClay.PileCount)
	}
}

func TestPileGroupEccentricityAddsPiles(t *testing.T) {
	concentric, err := DesignPileGroup(PileInput{
		AxialLoad: 4e6,
		Soil:      soil.Properties{Type: "stiff-clay"},
	})
	if err != nil {
		t.Fatal(err)
	}
	eccentric, err := DesignPileGroup(PileInput{
		AxialLoad: 4e6,
		Moment:    2e6, // e = 0.5 m > 0.1 m limit
		Soil:      soil.Properties{Type: "stiff-clay"},
	})
	if err != nil {
		t.Fatal(err)
	}

	if eccentric.PileCount <= concentric.PileCount {
		t.Errorf("eccentric group %d piles, concentric %d; expected more",
			eccentric.PileCount, concentric.PileCount)
	}
	found := false
	for _, w := range eccentric.Warnings {
		if strings.Contains(w, "eccentricity") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected eccentricity warning, got %v", eccentric.Warnings)
	}
}

func TestPileGroupSettlementCap(t *testing.T) {
	// Enormous load on weak soil: settlement formula must be capped.
	f, err := DesignPileGroup(PileInput{
		AxialLoad: 50e6,
		Soil:      soil.Properties{Type: "soft-clay"},
	})
	if err != nil {
		t.Skipf("load beyond group capacity growth bound: %v", err)
	}
	if f.EstimatedSettlement > 50 {
		t.Errorf("settlement = %v mm, want capped at 50", f.EstimatedSettlement)
	}
}

func TestPileGroupRejects(t *testing.T) {
	if _, err := DesignPileGroup(PileInput{AxialLoad: 0}); err == nil {
		t.Error("expected error for zero load")
	}
	if _, err := DesignPileGroup(PileInput{AxialLoad: 1e6, PileDiameter: 5}); err == nil {
		t.Error("expected error for unbuildable diameter")
	}
}

func TestConverseLabarre(t *testing.T) {
	// Single pile has no group interaction.
	if eff := converseLabarre(1, 1, 0.45); eff != 1 {
		t.Errorf("1x1 efficiency = %v, want 1", eff)
	}
	// Bigger groups lose more.
	small := converseLabarre(2, 2, 0.45)
	large := converseLabarre(4, 4, 0.45)
	if small <= large {
		t.Errorf("2x2 efficiency %v should exceed 4x4 %v", small, large)
	}
	if large < 0.4 {
		t.Errorf("efficiency floor violated: %v", large)
	}
}

func TestRecommendPressureRatioForcesPiles(t *testing.T) {
	// pressureRatio > 1.5 must return piles regardless of the soil label.
	for _, soilType := range []string{"rock", "dense-sand", "soft-clay", "peat"} {
		capacity := soil.PresumptiveBearing(soilType)
		load := 2.0 * capacity * 100 // ratio 2.0 on 100 m²

		r, err := Recommend(load, 100, 10, SiteConditions{Soil: soil.Properties{Type: soilType}})
		if err != nil {
			t.Fatalf("Recommend(%s) failed: %v", soilType, err)
		}
		if r.Type != PileFoundation {
			t.Errorf("%s at ratio 2.0: recommended %v, want piles", soilType, r.Type)
		}
		if r.PressureRatio < 1.99 || r.PressureRatio > 2.01 {
			t.Errorf("%s: pressure ratio = %v, want 2.0", soilType, r.PressureRatio)
		}
	}
}

func TestRecommendScenarios(t *testing.T) {
	cases := []struct {
		name     string
		soilType string
		ratio    float64
		height   float64
		want     Type
	}{
		{"light building on sand", "medium-sand", 0.3, 12, SpreadFooting},
		{"organic soil", "peat", 0.3, 12, PileFoundation},
		{"heavy on stiff clay", "stiff-clay", 1.0, 12, MatFoundation},
		{"moderate on soft clay", "soft-clay", 0.5, 12, MatFoundation},
		{"tall tower", "dense-sand", 0.3, 60, MatFoundation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			capacity := soil.PresumptiveBearing(tc.soilType)
			load := tc.ratio * capacity * 100

			r, err := Recommend(load, 100, tc.height, SiteConditions{Soil: soil.Properties{Type: tc.soilType}})
			if err != nil {
				t.Fatalf("Recommend failed: %v", err)
			}
			if r.Type != tc.want {
				t.Errorf("recommended %v, want %v (rationale: %v)", r.Type, tc.want, r.Rationale)
			}
			if len(r.Rationale) == 0 {
				t.Error("recommendation must carry a rationale")
			}
		})
	}
}

func TestRecommendConsiderations(t *testing.T) {
	r, err := Recommend(1e6, 100, 10, SiteConditions{
		Soil:               soil.Properties{Type: "peat"},
		WaterTableDepth:    1.0,
		AdjacentStructures: true,
		TightSchedule:      true,
	})
	if err != nil {
		t.Fatal(err)
	}

	joined := strings.Join(r.SpecialConsiderations, "; ")
	for _, want := range []string{"dewatering", "bored piles", "schedule"} {
		if !strings.Contains(joined, want) {
			t.Errorf("considerations %q missing %q", joined, want)
		}
	}
}
