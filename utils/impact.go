package utils

// Rough kg CO2e saved per logged action, per preset habit. Ballpark figures
// for motivational display only; custom habits count as zero.
var co2PerAction = map[string]float64{
	"Recycled items":             0.5,
	"Used public transport":      2.6,
	"Saved water":                0.2,
	"Ate plant-based meal":       1.8,
	"Walked or biked":            2.4,
	"Reduced energy usage":       0.9,
	"Bought local/organic":       0.6,
	"Avoided single-use plastic": 0.1,
	"Composted":                  0.3,
	"Planted something":          1.0,
}

// EstimateCO2Savings returns the kg CO2e credited for a single action, or 0
// for habits outside the preset catalogue.
func EstimateCO2Savings(habitName string) float64 {
	return co2PerAction[habitName]
}

func TotalCO2Savings(habitNames []string) float64 {
	var total float64
	for _, name := range habitNames {
		total += co2PerAction[name]
	}
	return total
}
