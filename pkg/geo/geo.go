package geo

import (
	"math"
	"strconv"
)

const earthRadiusKm = 6371

type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DistanceKm returns the haversine great-circle distance between two
// points in kilometers.
func DistanceKm(a, b Coords) float64 {
	dLat := toRad(b.Latitude - a.Latitude)
	dLon := toRad(b.Longitude - a.Longitude)
	lat1 := toRad(a.Latitude)
	lat2 := toRad(b.Latitude)

	x := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1)*math.Cos(lat2)
	c := 2 * math.Atan2(math.Sqrt(x), math.Sqrt(1-x))
	return earthRadiusKm * c
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// FormatDistance renders a distance for display: meters under 1 km
// (rounding up to 1000 m displays as "1 km away"), one decimal under
// 10 km, whole kilometers beyond that.
func FormatDistance(km float64) string {
	if km < 1 {
		m := math.Round(km * 1000)
		if m < 1000 {
			return strconv.FormatFloat(m, 'f', 0, 64) + " m away"
		}
		return "1 km away"
	}
	var rounded float64
	if km < 10 {
		rounded = math.Round(km*10) / 10
	} else {
		rounded = math.Round(km)
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " km away"
}
