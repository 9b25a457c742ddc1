package game

import (
	"sort"
	"strings"
)

// Waypoint is a named point along a route. Dist is miles from the
// previous waypoint; the first waypoint of a route carries 0.
type Waypoint struct {
	Name    string  `yaml:"name"`
	Lat     float64 `yaml:"lat"`
	Lon     float64 `yaml:"lon"`
	Terrain Terrain `yaml:"terrain"`
	Dist    float64 `yaml:"dist"`
}

var builtinRoutes = map[string][]Waypoint{
	"miami_minneapolis": {
		{Name: "Miami, FL", Lat: 25.76, Lon: -80.19, Terrain: TerrainCoastal, Dist: 0},
		{Name: "Orlando, FL", Lat: 28.54, Lon: -81.38, Terrain: TerrainWetland, Dist: 235},
		{Name: "Atlanta, GA", Lat: 33.75, Lon: -84.39, Terrain: TerrainForest, Dist: 440},
		{Name: "Nashville, TN", Lat: 36.16, Lon: -86.78, Terrain: TerrainHills, Dist: 250},
		{Name: "Louisville, KY", Lat: 38.25, Lon: -85.76, Terrain: TerrainPlains, Dist: 175},
		{Name: "Indianapolis, IN", Lat: 39.77, Lon: -86.16, Terrain: TerrainPlains, Dist: 115},
		{Name: "Chicago, IL", Lat: 41.88, Lon: -87.63, Terrain: TerrainUrban, Dist: 185},
		{Name: "Milwaukee, WI", Lat: 43.04, Lon: -87.91, Terrain: TerrainPlains, Dist: 92},
		{Name: "Minneapolis, MN", Lat: 44.98, Lon: -93.27, Terrain: TerrainPlains, Dist: 337},
	},
	"miami_buffalo": {
		{Name: "Miami, FL", Lat: 25.76, Lon: -80.19, Terrain: TerrainCoastal, Dist: 0},
		{Name: "Jacksonville, FL", Lat: 30.33, Lon: -81.66, Terrain: TerrainWetland, Dist: 345},
		{Name: "Savannah, GA", Lat: 32.08, Lon: -81.09, Terrain: TerrainCoastal, Dist: 140},
		{Name: "Charlotte, NC", Lat: 35.23, Lon: -80.84, Terrain: TerrainHills, Dist: 265},
		{Name: "Roanoke, VA", Lat: 37.27, Lon: -79.94, Terrain: TerrainMountain, Dist: 195},
		{Name: "Pittsburgh, PA", Lat: 40.44, Lon: -79.99, Terrain: TerrainMountain, Dist: 230},
		{Name: "Buffalo, NY", Lat: 42.89, Lon: -78.88, Terrain: TerrainPlains, Dist: 190},
	},
	"miami_burlington": {
		{Name: "Miami, FL", Lat: 25.76, Lon: -80.19, Terrain: TerrainCoastal, Dist: 0},
		{Name: "Jacksonville, FL", Lat: 30.33, Lon: -81.66, Terrain: TerrainWetland, Dist: 345},
		{Name: "Richmond, VA", Lat: 37.54, Lon: -77.44, Terrain: TerrainForest, Dist: 530},
		{Name: "Washington, DC", Lat: 38.91, Lon: -77.04, Terrain: TerrainUrban, Dist: 110},
		{Name: "Philadelphia, PA", Lat: 39.95, Lon: -75.17, Terrain: TerrainUrban, Dist: 140},
		{Name: "Hartford, CT", Lat: 41.76, Lon: -72.68, Terrain: TerrainForest, Dist: 210},
		{Name: "Burlington, VT", Lat: 44.48, Lon: -73.21, Terrain: TerrainMountain, Dist: 215},
	},
	"phoenix_minneapolis": {
		{Name: "Phoenix, AZ", Lat: 33.45, Lon: -112.07, Terrain: TerrainDesert, Dist: 0},
		{Name: "Flagstaff, AZ", Lat: 35.20, Lon: -111.65, Terrain: TerrainMountain, Dist: 145},
		{Name: "Albuquerque, NM", Lat: 35.08, Lon: -106.65, Terrain: TerrainDesert, Dist: 325},
		{Name: "Amarillo, TX", Lat: 35.22, Lon: -101.83, Terrain: TerrainPlains, Dist: 290},
		{Name: "Oklahoma City, OK", Lat: 35.47, Lon: -97.52, Terrain: TerrainPlains, Dist: 260},
		{Name: "Kansas City, MO", Lat: 39.10, Lon: -94.58, Terrain: TerrainPlains, Dist: 350},
		{Name: "Des Moines, IA", Lat: 41.59, Lon: -93.62, Terrain: TerrainPlains, Dist: 195},
		{Name: "Minneapolis, MN", Lat: 44.98, Lon: -93.27, Terrain: TerrainPlains, Dist: 245},
	},
	"phoenix_boise": {
		{Name: "Phoenix, AZ", Lat: 33.45, Lon: -112.07, Terrain: TerrainDesert, Dist: 0},
		{Name: "Flagstaff, AZ", Lat: 35.20, Lon: -111.65, Terrain: TerrainMountain, Dist: 145},
		{Name: "Page, AZ", Lat: 36.91, Lon: -111.46, Terrain: TerrainDesert, Dist: 135},
		{Name: "Salt Lake City, UT", Lat: 40.76, Lon: -111.89, Terrain: TerrainMountain, Dist: 275},
		{Name: "Twin Falls, ID", Lat: 42.56, Lon: -114.46, Terrain: TerrainPlains, Dist: 220},
		{Name: "Boise, ID", Lat: 43.62, Lon: -116.21, Terrain: TerrainMountain, Dist: 130},
	},
	"phoenix_buffalo": {
		{Name: "Phoenix, AZ", Lat: 33.45, Lon: -112.07, Terrain: TerrainDesert, Dist: 0},
		{Name: "Albuquerque, NM", Lat: 35.08, Lon: -106.65, Terrain: TerrainDesert, Dist: 450},
		{Name: "Amarillo, TX", Lat: 35.22, Lon: -101.83, Terrain: TerrainPlains, Dist: 290},
		{Name: "Oklahoma City, OK", Lat: 35.47, Lon: -97.52, Terrain: TerrainPlains, Dist: 260},
		{Name: "St. Louis, MO", Lat: 38.63, Lon: -90.20, Terrain: TerrainPlains, Dist: 500},
		{Name: "Indianapolis, IN", Lat: 39.77, Lon: -86.16, Terrain: TerrainPlains, Dist: 240},
		{Name: "Columbus, OH", Lat: 39.96, Lon: -82.99, Terrain: TerrainPlains, Dist: 175},
		{Name: "Pittsburgh, PA", Lat: 40.44, Lon: -79.99, Terrain: TerrainMountain, Dist: 185},
		{Name: "Buffalo, NY", Lat: 42.89, Lon: -78.88, Terrain: TerrainPlains, Dist: 190},
	},
	"sacramento_boise": {
		{Name: "Sacramento, CA", Lat: 38.58, Lon: -121.49, Terrain: TerrainValley, Dist: 0},
		{Name: "Reno, NV", Lat: 39.53, Lon: -119.81, Terrain: TerrainMountain, Dist: 135},
		{Name: "Winnemucca, NV", Lat: 40.97, Lon: -117.74, Terrain: TerrainDesert, Dist: 165},
		{Name: "Twin Falls, ID", Lat: 42.56, Lon: -114.46, Terrain: TerrainPlains, Dist: 225},
		{Name: "Boise, ID", Lat: 43.62, Lon: -116.21, Terrain: TerrainMountain, Dist: 130},
	},
	"sacramento_minneapolis": {
		{Name: "Sacramento, CA", Lat: 38.58, Lon: -121.49, Terrain: TerrainValley, Dist: 0},
		{Name: "Reno, NV", Lat: 39.53, Lon: -119.81, Terrain: TerrainMountain, Dist: 135},
		{Name: "Salt Lake City, UT", Lat: 40.76, Lon: -111.89, Terrain: TerrainMountain, Dist: 520},
		{Name: "Cheyenne, WY", Lat: 41.14, Lon: -104.82, Terrain: TerrainPlains, Dist: 440},
		{Name: "North Platte, NE", Lat: 41.12, Lon: -100.77, Terrain: TerrainPlains, Dist: 240},
		{Name: "Omaha, NE", Lat: 41.26, Lon: -95.94, Terrain: TerrainPlains, Dist: 290},
		{Name: "Des Moines, IA", Lat: 41.59, Lon: -93.62, Terrain: TerrainPlains, Dist: 150},
		{Name: "Minneapolis, MN", Lat: 44.98, Lon: -93.27, Terrain: TerrainPlains, Dist: 245},
	},
	"houston_minneapolis": {
		{Name: "Houston, TX", Lat: 29.76, Lon: -95.37, Terrain: TerrainCoastal, Dist: 0},
		{Name: "Dallas, TX", Lat: 32.78, Lon: -96.80, Terrain: TerrainPlains, Dist: 240},
		{Name: "Oklahoma City, OK", Lat: 35.47, Lon: -97.52, Terrain: TerrainPlains, Dist: 205},
		{Name: "Wichita, KS", Lat: 37.69, Lon: -97.34, Terrain: TerrainPlains, Dist: 160},
		{Name: "Kansas City, MO", Lat: 39.10, Lon: -94.58, Terrain: TerrainPlains, Dist: 200},
		{Name: "Des Moines, IA", Lat: 41.59, Lon: -93.62, Terrain: TerrainPlains, Dist: 195},
		{Name: "Minneapolis, MN", Lat: 44.98, Lon: -93.27, Terrain: TerrainPlains, Dist: 245},
	},
	"houston_buffalo": {
		{Name: "Houston, TX", Lat: 29.76, Lon: -95.37, Terrain: TerrainCoastal, Dist: 0},
		{Name: "Little Rock, AR", Lat: 34.75, Lon: -92.29, Terrain: TerrainForest, Dist: 450},
		{Name: "Memphis, TN", Lat: 35.15, Lon: -90.05, Terrain: TerrainPlains, Dist: 135},
		{Name: "Nashville, TN", Lat: 36.16, Lon: -86.78, Terrain: TerrainHills, Dist: 210},
		{Name: "Louisville, KY", Lat: 38.25, Lon: -85.76, Terrain: TerrainPlains, Dist: 175},
		{Name: "Columbus, OH", Lat: 39.96, Lon: -82.99, Terrain: TerrainPlains, Dist: 200},
		{Name: "Pittsburgh, PA", Lat: 40.44, Lon: -79.99, Terrain: TerrainMountain, Dist: 185},
		{Name: "Buffalo, NY", Lat: 42.89, Lon: -78.88, Terrain: TerrainPlains, Dist: 190},
	},
	"new_orleans_minneapolis": {
		{Name: "New Orleans, LA", Lat: 29.95, Lon: -90.07, Terrain: TerrainWetland, Dist: 0},
		{Name: "Jackson, MS", Lat: 32.30, Lon: -90.18, Terrain: TerrainForest, Dist: 180},
		{Name: "Memphis, TN", Lat: 35.15, Lon: -90.05, Terrain: TerrainPlains, Dist: 210},
		{Name: "St. Louis, MO", Lat: 38.63, Lon: -90.20, Terrain: TerrainPlains, Dist: 280},
		{Name: "Des Moines, IA", Lat: 41.59, Lon: -93.62, Terrain: TerrainPlains, Dist: 345},
		{Name: "Minneapolis, MN", Lat: 44.98, Lon: -93.27, Terrain: TerrainPlains, Dist: 245},
	},
	"new_orleans_burlington": {
		{Name: "New Orleans, LA", Lat: 29.95, Lon: -90.07, Terrain: TerrainWetland, Dist: 0},
		{Name: "Birmingham, AL", Lat: 33.52, Lon: -86.80, Terrain: TerrainHills, Dist: 345},
		{Name: "Knoxville, TN", Lat: 35.96, Lon: -83.92, Terrain: TerrainMountain, Dist: 250},
		{Name: "Roanoke, VA", Lat: 37.27, Lon: -79.94, Terrain: TerrainMountain, Dist: 255},
		{Name: "Washington, DC", Lat: 38.91, Lon: -77.04, Terrain: TerrainUrban, Dist: 240},
		{Name: "Hartford, CT", Lat: 41.76, Lon: -72.68, Terrain: TerrainForest, Dist: 330},
		{Name: "Burlington, VT", Lat: 44.48, Lon: -73.21, Terrain: TerrainMountain, Dist: 215},
	},
	"charleston_buffalo": {
		{Name: "Charleston, SC", Lat: 32.78, Lon: -79.93, Terrain: TerrainCoastal, Dist: 0},
		{Name: "Charlotte, NC", Lat: 35.23, Lon: -80.84, Terrain: TerrainHills, Dist: 200},
		{Name: "Roanoke, VA", Lat: 37.27, Lon: -79.94, Terrain: TerrainMountain, Dist: 195},
		{Name: "Pittsburgh, PA", Lat: 40.44, Lon: -79.99, Terrain: TerrainMountain, Dist: 230},
		{Name: "Buffalo, NY", Lat: 42.89, Lon: -78.88, Terrain: TerrainPlains, Dist: 190},
	},
	"charleston_burlington": {
		{Name: "Charleston, SC", Lat: 32.78, Lon: -79.93, Terrain: TerrainCoastal, Dist: 0},
		{Name: "Raleigh, NC", Lat: 35.78, Lon: -78.64, Terrain: TerrainForest, Dist: 270},
		{Name: "Richmond, VA", Lat: 37.54, Lon: -77.44, Terrain: TerrainForest, Dist: 170},
		{Name: "Washington, DC", Lat: 38.91, Lon: -77.04, Terrain: TerrainUrban, Dist: 110},
		{Name: "New York, NY", Lat: 40.71, Lon: -74.01, Terrain: TerrainUrban, Dist: 225},
		{Name: "Hartford, CT", Lat: 41.76, Lon: -72.68, Terrain: TerrainForest, Dist: 115},
		{Name: "Burlington, VT", Lat: 44.48, Lon: -73.21, Terrain: TerrainMountain, Dist: 215},
	},
	"charleston_minneapolis": {
		{Name: "Charleston, SC", Lat: 32.78, Lon: -79.93, Terrain: TerrainCoastal, Dist: 0},
		{Name: "Atlanta, GA", Lat: 33.75, Lon: -84.39, Terrain: TerrainForest, Dist: 310},
		{Name: "Nashville, TN", Lat: 36.16, Lon: -86.78, Terrain: TerrainHills, Dist: 250},
		{Name: "St. Louis, MO", Lat: 38.63, Lon: -90.20, Terrain: TerrainPlains, Dist: 310},
		{Name: "Des Moines, IA", Lat: 41.59, Lon: -93.62, Terrain: TerrainPlains, Dist: 345},
		{Name: "Minneapolis, MN", Lat: 44.98, Lon: -93.27, Terrain: TerrainPlains, Dist: 245},
	},
}

// RouteBetween returns the waypoint list for an origin/destination pair.
// When no direct route exists it falls back to any route sharing the same
// origin prefix, so a missing pairing degrades instead of failing setup.
func RouteBetween(originID, destID string) ([]Waypoint, bool) {
	key := originID + "_" + destID
	if route, ok := builtinRoutes[key]; ok {
		return route, true
	}

	for _, k := range sortedRouteKeys() {
		if strings.HasPrefix(k, originID+"_") {
			return builtinRoutes[k], true
		}
	}
	return nil, false
}

func sortedRouteKeys() []string {
	keys := make([]string, 0, len(builtinRoutes))
	for key := range builtinRoutes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// AvailableDestinations lists destination ids reachable from an origin.
func AvailableDestinations(originID string) []string {
	prefix := originID + "_"
	var out []string
	for _, key := range sortedRouteKeys() {
		if strings.HasPrefix(key, prefix) {
			out = append(out, strings.TrimPrefix(key, prefix))
		}
	}
	return out
}

// TotalDistance sums segment lengths along a route.
func TotalDistance(route []Waypoint) float64 {
	total := 0.0
	for _, wp := range route {
		total += wp.Dist
	}
	return total
}
