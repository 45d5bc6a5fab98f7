package resolve

import (
	"math"
	"sort"

	"github.com/mwaleedk/go-emergency-dispatch/internal/models"
)

const earthRadiusKM = 6371.0

func haversineKM(a, b models.Coordinates) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKM * math.Asin(math.Sqrt(h))
}

// etaMinutes is a driving-time estimate of roughly 1.8 minutes per km
// with a 6 minute floor, used when no routing provider is available.
func etaMinutes(distanceKM float64) int {
	eta := int(distanceKM * 1.8)
	if eta < 6 {
		eta = 6
	}
	return eta
}

// rank annotates candidates with distance and ETA from the caller's
// position and orders them by ascending distance, name as tiebreak.
func rank(candidates []models.FacilityCandidate, from models.Coordinates) {
	for i := range candidates {
		c := &candidates[i]
		if c.DistanceKM == 0 {
			c.DistanceKM = roundKM(haversineKM(from, c.Coordinates))
		}
		if c.ETAMinutes == 0 {
			c.ETAMinutes = etaMinutes(c.DistanceKM)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].DistanceKM != candidates[j].DistanceKM {
			return candidates[i].DistanceKM < candidates[j].DistanceKM
		}
		return candidates[i].Name < candidates[j].Name
	})
}

func roundKM(km float64) float64 {
	return math.Round(km*100) / 100
}
