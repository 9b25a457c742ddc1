package game

// City is a selectable origin or destination. RiskType names the peril
// that drove the evacuation, for flavor and weather framing.
type City struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Lat         float64 `yaml:"lat"`
	Lon         float64 `yaml:"lon"`
	RiskType    string  `yaml:"risk_type,omitempty"`
	Description string  `yaml:"description"`
}

func Origins() []City {
	return []City{
		{
			ID:          "miami",
			Name:        "Miami, FL",
			Lat:         25.76,
			Lon:         -80.19,
			RiskType:    "hurricane",
			Description: "Rising seas and intensifying hurricanes have made the coast unlivable.",
		},
		{
			ID:          "phoenix",
			Name:        "Phoenix, AZ",
			Lat:         33.45,
			Lon:         -112.07,
			RiskType:    "heat",
			Description: "Temperatures regularly exceed 130°F. The water table is gone.",
		},
		{
			ID:          "sacramento",
			Name:        "Sacramento, CA",
			Lat:         38.58,
			Lon:         -121.49,
			RiskType:    "wildfire",
			Description: "Permanent wildfire season has choked the valley in smoke year-round.",
		},
		{
			ID:          "houston",
			Name:        "Houston, TX",
			Lat:         29.76,
			Lon:         -95.37,
			RiskType:    "flood",
			Description: "Chronic flooding and petrochemical contamination forced the evacuation.",
		},
		{
			ID:          "new_orleans",
			Name:        "New Orleans, LA",
			Lat:         29.95,
			Lon:         -90.07,
			RiskType:    "hurricane",
			Description: "The levees failed for the last time. The city belongs to the Gulf now.",
		},
		{
			ID:          "charleston",
			Name:        "Charleston, SC",
			Lat:         32.78,
			Lon:         -79.93,
			RiskType:    "flood",
			Description: "Tidal flooding became permanent. Downtown is underwater at high tide.",
		},
	}
}

func Destinations() []City {
	return []City{
		{
			ID:          "minneapolis",
			Name:        "Minneapolis, MN",
			Lat:         44.98,
			Lon:         -93.27,
			Description: "The Twin Cities climate refuge — abundant freshwater, moderate temps.",
		},
		{
			ID:          "buffalo",
			Name:        "Buffalo, NY",
			Lat:         42.89,
			Lon:         -78.88,
			Description: "Great Lakes access and mild summers make this a top climate haven.",
		},
		{
			ID:          "boise",
			Name:        "Boise, ID",
			Lat:         43.62,
			Lon:         -116.21,
			Description: "Mountain water and cool air draw migrants from the burning West.",
		},
		{
			ID:          "burlington",
			Name:        "Burlington, VT",
			Lat:         44.48,
			Lon:         -73.21,
			Description: "New England resilience — Lake Champlain, forests, and community.",
		},
	}
}

func findCity(cities []City, id string) (City, bool) {
	for _, city := range cities {
		if city.ID == id {
			return city, true
		}
	}
	return City{}, false
}
