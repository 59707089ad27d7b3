package catalog

import "github.com/diego4rmando/orbitlab/internal/orbit"

// Builtin returns the bundled orbit catalog: the figure-eight of Moore /
// Chenciner-Montgomery plus entries from the Šuvakov-Dmitrašinović family
// of equal-mass, zero-angular-momentum choreographies. All share the same
// starting geometry and differ only in the initial velocity pair.
func Builtin() Catalog {
	return Catalog{
		"figure8":     choreography("Figure-8", 0.347111, 0.532728),
		"butterflyI":  choreography("Butterfly I", 0.306893, 0.125507),
		"butterflyII": choreography("Butterfly II", 0.392955, 0.097579),
		"bumblebee":   choreography("Bumblebee", 0.184279, 0.587188),
		"mothI":       choreography("Moth I", 0.464445, 0.396060),
		"mothII":      choreography("Moth II", 0.439166, 0.452968),
		"dragonfly":   choreography("Dragonfly", 0.080584, 0.588836),
		"goggles":     choreography("Goggles", 0.083300, 0.127889),
		"yarn":        choreography("Yarn", 0.559064, 0.349192),
		"yinYangI":    choreography("Yin-Yang I", 0.513938, 0.304736),
	}
}

func choreography(name string, vx, vy float64) orbit.Config {
	cfg := Custom(vx, vy)
	cfg.Name = name
	return cfg
}
