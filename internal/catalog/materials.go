package catalog

// Family classifies a material by its structural behavior.
type Family string

const (
	FamilySteel     Family = "steel"
	FamilyConcrete  Family = "concrete"
	FamilyTimber    Family = "timber"
	FamilyAluminum  Family = "aluminum"
	FamilyComposite Family = "composite"
)

// Material is an immutable catalog entry describing a construction material.
// All stresses and moduli are in Pa, density in kg/m³, thermal expansion
// in 1/K.
type Material struct {
	Name             string
	ElasticModulus   float64
	Density          float64
	YieldStrength    float64
	UltimateStrength float64
	PoissonRatio     float64
	ThermalExpansion float64
	Family           Family
	Grade            string
}

// builtinMaterials are the stock entries registered by Default.
// Concrete "yield" strength is the characteristic compressive strength f'c.
var builtinMaterials = []Material{
	{
		Name:             "S235",
		ElasticModulus:   210e9,
		Density:          7850,
		YieldStrength:    235e6,
		UltimateStrength: 360e6,
		PoissonRatio:     0.30,
		ThermalExpansion: 12e-6,
		Family:           FamilySteel,
		Grade:            "EN 10025 S235JR",
	},
	{
		Name:             "S355",
		ElasticModulus:   210e9,
		Density:          7850,
		YieldStrength:    355e6,
		UltimateStrength: 510e6,
		PoissonRatio:     0.30,
		ThermalExpansion: 12e-6,
		Family:           FamilySteel,
		Grade:            "EN 10025 S355JR",
	},
	{
		Name:             "A992",
		ElasticModulus:   200e9,
		Density:          7850,
		YieldStrength:    345e6,
		UltimateStrength: 450e6,
		PoissonRatio:     0.30,
		ThermalExpansion: 12e-6,
		Family:           FamilySteel,
		Grade:            "ASTM A992",
	},
	{
		Name:             "C25/30",
		ElasticModulus:   31e9,
		Density:          2500,
		YieldStrength:    25e6,
		UltimateStrength: 30e6,
		PoissonRatio:     0.20,
		ThermalExpansion: 10e-6,
		Family:           FamilyConcrete,
		Grade:            "EN 206 C25/30",
	},
	{
		Name:             "C30/37",
		ElasticModulus:   33e9,
		Density:          2500,
		YieldStrength:    30e6,
		UltimateStrength: 37e6,
		PoissonRatio:     0.20,
		ThermalExpansion: 10e-6,
		Family:           FamilyConcrete,
		Grade:            "EN 206 C30/37",
	},
	{
		Name:             "GL24h",
		ElasticModulus:   11.5e9,
		Density:          420,
		YieldStrength:    24e6,
		UltimateStrength: 24e6,
		PoissonRatio:     0.35,
		ThermalExpansion: 5e-6,
		Family:           FamilyTimber,
		Grade:            "EN 14080 GL24h",
	},
	{
		Name:             "6061-T6",
		ElasticModulus:   69e9,
		Density:          2700,
		YieldStrength:    240e6,
		UltimateStrength: 290e6,
		PoissonRatio:     0.33,
		ThermalExpansion: 23e-6,
		Family:           FamilyAluminum,
		Grade:            "AA 6061-T6",
	},
}
