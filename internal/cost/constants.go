package cost

// UnitCosts are regional installed unit rates.
type UnitCosts struct {
	Concrete   float64 // per m³, placed
	Steel      float64 // per kg, fabricated and fixed
	Excavation float64 // per m³
	Formwork   float64 // per m² of contact area
	Piling     float64 // per m of driven/bored pile
}

// regions holds the built-in regional rate tables, USD.
var regions = map[string]UnitCosts{
	"north-america": {Concrete: 180, Steel: 1.80, Excavation: 25, Formwork: 55, Piling: 140},
	"europe":        {Concrete: 160, Steel: 1.60, Excavation: 22, Formwork: 60, Piling: 130},
	"asia-pacific":  {Concrete: 120, Steel: 1.20, Excavation: 15, Formwork: 35, Piling: 95},
	"middle-east":   {Concrete: 140, Steel: 1.40, Excavation: 12, Formwork: 40, Piling: 110},
}

const defaultRegion = "north-america"

// Scale adjusts unit rates for project size: small jobs pay a premium,
// large jobs buy at volume.
type Scale string

const (
	ScaleSmall  Scale = "small"
	ScaleMedium Scale = "medium"
	ScaleLarge  Scale = "large"
)

var scaleFactors = map[Scale]float64{
	ScaleSmall:  1.15,
	ScaleMedium: 1.00,
	ScaleLarge:  0.92,
}

// Reinforcement mass per cubic metre of concrete assumed for the steel
// takeoff when no bar schedule exists yet.
const (
	footingSteelDensity = 80.0  // kg/m³
	pileCapSteelDensity = 120.0 // kg/m³
)

// workingSpace is the excavation over-dig beyond each footing face.
const workingSpace = 0.25 // m
