package resort

// Resort is a ski resort with a fixed position. Loaded once per process.
type Resort struct {
	ID        string
	Name      string
	Latitude  float64
	Longitude float64
	Region    string
	State     string
	Country   string
}

// Distance is a resort paired with its geodesic distance from a query point.
type Distance struct {
	Resort Resort
	Miles  float64
}

// NearestInput selects the resorts closest to a point.
// Filter is a case-insensitive substring over name, region, state and country.
type NearestInput struct {
	Lat    float64
	Lon    float64
	Filter string
	Limit  int
}

// NearestOutput holds resorts in ascending distance. It may be empty.
type NearestOutput struct {
	Resorts []Distance
}

// SeedOutput reports how many resorts a seed run inserted.
type SeedOutput struct {
	Inserted int
	Total    int
}
