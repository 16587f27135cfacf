package code

import "fmt"

// Code-specific serviceability and allowable-stress parameters.
const (
	asceDeflectionDenominator     = 360.0
	eurocodeDeflectionDenominator = 300.0

	asceAllowableStressFraction     = 0.60
	eurocodeAllowableStressFraction = 0.66
)

// CheckResult reports the deflection and stress verification of a member.
type CheckResult struct {
	DeflectionOK bool
	StressOK     bool

	// Demand / allowable ratios; <= 1 passes.
	DeflectionRatio float64
	StressRatio     float64

	AllowableDeflection float64 // span / code denominator
	AllowableStress     float64 // code fraction of yield
}

// VerifyDesign checks a member's peak deflection and bending stress against
// the code's serviceability limit and allowable-stress fraction.
func VerifyDesign(dc DesignCode, span, maxDeflection, maxStress, yieldStress float64) (*CheckResult, error) {
	if span <= 0 {
		return nil, fmt.Errorf("invalid span %g", span)
	}
	if yieldStress <= 0 {
		return nil, fmt.Errorf("invalid yield stress %g", yieldStress)
	}

	var denom, fraction float64
	switch dc {
	case ASCE716:
		denom, fraction = asceDeflectionDenominator, asceAllowableStressFraction
	case Eurocode:
		denom, fraction = eurocodeDeflectionDenominator, eurocodeAllowableStressFraction
	default:
		return nil, fmt.Errorf("unknown design code %q", dc)
	}

	r := &CheckResult{
		AllowableDeflection: span / denom,
		AllowableStress:     fraction * yieldStress,
	}
	r.DeflectionRatio = maxDeflection / r.AllowableDeflection
	r.StressRatio = maxStress / r.AllowableStress
	r.DeflectionOK = r.DeflectionRatio <= 1.0
	r.StressOK = r.StressRatio <= 1.0
	return r, nil
}
