package openweather

import "math"

// compassNames lists the 16 compass sectors in clockwise order,
// starting with North centered at 0 degrees.
var compassNames = [16]string{
	"North", "North-Northeast", "Northeast", "East-Northeast",
	"East", "East-Southeast", "Southeast", "South-Southeast",
	"South", "South-Southwest", "Southwest", "West-Southwest",
	"West", "West-Northwest", "Northwest", "North-Northwest",
}

// DegreesToCompass maps a wind-direction degree value to one of 16
// named compass directions. Each sector spans 22.5 degrees; sector
// boundaries round half up. Any real degree value is accepted,
// including negatives and values beyond 360.
func DegreesToCompass(deg float64) string {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	idx := int(math.Round(deg/22.5)) % 16
	return compassNames[idx]
}
