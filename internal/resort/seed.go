package resort

import "strings"

// SeedResorts returns the built-in North American resort table used to
// populate an empty store. IDs are derived with Slug.
func SeedResorts() []Resort {
	out := make([]Resort, len(seedResorts))
	for i, r := range seedResorts {
		r.ID = Slug(r.Name)
		out[i] = r
	}
	return out
}

// FallbackResorts is the minimal set served when the store cannot be read.
func FallbackResorts() []Resort {
	out := make([]Resort, len(fallbackResorts))
	for i, r := range fallbackResorts {
		r.ID = Slug(r.Name)
		out[i] = r
	}
	return out
}

// Slug lower-cases name, turns spaces and hyphens into underscores and drops dots.
func Slug(name string) string {
	s := strings.ToLower(name)
	s = strings.NewReplacer(" ", "_", "-", "_", ".", "").Replace(s)
	return s
}

var fallbackResorts = []Resort{
	{Name: "Vail", Latitude: 39.6433, Longitude: -106.3781, Region: "Central Rockies", State: "CO", Country: "USA"},
	{Name: "Breckenridge", Latitude: 39.4817, Longitude: -106.0384, Region: "Central Rockies", State: "CO", Country: "USA"},
	{Name: "Aspen Snowmass", Latitude: 39.2084, Longitude: -106.9490, Region: "Central Rockies", State: "CO", Country: "USA"},
}

var seedResorts = []Resort{
	// Western US - California, Nevada, Utah
	{Name: "Heavenly", Latitude: 38.9353, Longitude: -119.9400, Region: "Tahoe", State: "CA/NV", Country: "USA"},
	{Name: "Northstar", Latitude: 39.2746, Longitude: -120.1211, Region: "Tahoe", State: "CA", Country: "USA"},
	{Name: "Palisades Tahoe", Latitude: 39.1967, Longitude: -120.2356, Region: "Tahoe", State: "CA", Country: "USA"},
	{Name: "Kirkwood", Latitude: 38.6850, Longitude: -120.0654, Region: "Tahoe", State: "CA", Country: "USA"},
	{Name: "Mammoth Mountain", Latitude: 37.6308, Longitude: -119.0326, Region: "Eastern Sierra", State: "CA", Country: "USA"},
	{Name: "Sierra-at-Tahoe", Latitude: 38.8048, Longitude: -120.0804, Region: "Tahoe", State: "CA", Country: "USA"},
	{Name: "Sugar Bowl", Latitude: 39.3043, Longitude: -120.3336, Region: "Tahoe", State: "CA", Country: "USA"},
	{Name: "Donner Ski Ranch", Latitude: 39.3172, Longitude: -120.3306, Region: "Tahoe", State: "CA", Country: "USA"},
	{Name: "Boreal", Latitude: 39.3365, Longitude: -120.3490, Region: "Tahoe", State: "CA", Country: "USA"},
	{Name: "Mt. Rose", Latitude: 39.3284, Longitude: -119.8850, Region: "Tahoe", State: "NV", Country: "USA"},
	{Name: "Diamond Peak", Latitude: 39.2546, Longitude: -119.9310, Region: "Tahoe", State: "NV", Country: "USA"},
	{Name: "Homewood", Latitude: 39.0860, Longitude: -120.1604, Region: "Tahoe", State: "CA", Country: "USA"},
	{Name: "Soda Springs", Latitude: 39.3211, Longitude: -120.3802, Region: "Tahoe", State: "CA", Country: "USA"},
	{Name: "Dodge Ridge", Latitude: 38.1888, Longitude: -119.9558, Region: "Central Sierra", State: "CA", Country: "USA"},
	{Name: "China Peak", Latitude: 37.2366, Longitude: -119.1574, Region: "Central Sierra", State: "CA", Country: "USA"},
	{Name: "Mountain High", Latitude: 34.3767, Longitude: -117.6908, Region: "Southern California", State: "CA", Country: "USA"},
	{Name: "Snow Valley", Latitude: 34.2250, Longitude: -117.0375, Region: "Southern California", State: "CA", Country: "USA"},
	{Name: "Snow Summit", Latitude: 34.2367, Longitude: -116.8906, Region: "Southern California", State: "CA", Country: "USA"},
	{Name: "Bear Mountain", Latitude: 34.2286, Longitude: -116.8600, Region: "Southern California", State: "CA", Country: "USA"},
	{Name: "Mt. Baldy", Latitude: 34.2700, Longitude: -117.6588, Region: "Southern California", State: "CA", Country: "USA"},
	{Name: "Brighton", Latitude: 40.5977, Longitude: -111.5836, Region: "Wasatch", State: "UT", Country: "USA"},
	{Name: "Solitude", Latitude: 40.6199, Longitude: -111.5919, Region: "Wasatch", State: "UT", Country: "USA"},
	{Name: "Snowbird", Latitude: 40.5830, Longitude: -111.6556, Region: "Wasatch", State: "UT", Country: "USA"},
	{Name: "Alta", Latitude: 40.5884, Longitude: -111.6386, Region: "Wasatch", State: "UT", Country: "USA"},
	{Name: "Park City", Latitude: 40.6461, Longitude: -111.4980, Region: "Wasatch", State: "UT", Country: "USA"},
	{Name: "Deer Valley", Latitude: 40.6374, Longitude: -111.4783, Region: "Wasatch", State: "UT", Country: "USA"},
	{Name: "Snowbasin", Latitude: 41.2160, Longitude: -111.8566, Region: "Wasatch", State: "UT", Country: "USA"},
	{Name: "Powder Mountain", Latitude: 41.3800, Longitude: -111.7800, Region: "Wasatch", State: "UT", Country: "USA"},
	{Name: "Sundance", Latitude: 40.3924, Longitude: -111.5788, Region: "Wasatch", State: "UT", Country: "USA"},
	{Name: "Brian Head", Latitude: 37.7024, Longitude: -112.8498, Region: "Southern Utah", State: "UT", Country: "USA"},
	{Name: "Eagle Point", Latitude: 38.3208, Longitude: -112.3844, Region: "Southern Utah", State: "UT", Country: "USA"},

	// Western US - Colorado
	{Name: "Vail", Latitude: 39.6433, Longitude: -106.3781, Region: "Central Rockies", State: "CO", Country: "USA"},
	{Name: "Breckenridge", Latitude: 39.4817, Longitude: -106.0384, Region: "Central Rockies", State: "CO", Country: "USA"},
	{Name: "Aspen Snowmass", Latitude: 39.2084, Longitude: -106.9490, Region: "Central Rockies", State: "CO", Country: "USA"},
	{Name: "Keystone", Latitude: 39.6084, Longitude: -105.9437, Region: "Central Rockies", State: "CO", Country: "USA"},
	{Name: "Beaver Creek", Latitude: 39.6042, Longitude: -106.5165, Region: "Central Rockies", State: "CO", Country: "USA"},
	{Name: "Copper Mountain", Latitude: 39.5022, Longitude: -106.1497, Region: "Central Rockies", State: "CO", Country: "USA"},
	{Name: "Winter Park", Latitude: 39.8868, Longitude: -105.7625, Region: "Central Rockies", State: "CO", Country: "USA"},
	{Name: "Steamboat", Latitude: 40.4572, Longitude: -106.8045, Region: "Northern Rockies", State: "CO", Country: "USA"},
	{Name: "Telluride", Latitude: 37.9375, Longitude: -107.8123, Region: "San Juan Mountains", State: "CO", Country: "USA"},
	{Name: "Crested Butte", Latitude: 38.8697, Longitude: -106.9878, Region: "Central Rockies", State: "CO", Country: "USA"},
	{Name: "Arapahoe Basin", Latitude: 39.6425, Longitude: -105.8719, Region: "Central Rockies", State: "CO", Country: "USA"},
	{Name: "Loveland", Latitude: 39.6800, Longitude: -105.8979, Region: "Central Rockies", State: "CO", Country: "USA"},
	{Name: "Eldora", Latitude: 39.9372, Longitude: -105.5827, Region: "Front Range", State: "CO", Country: "USA"},
	{Name: "Monarch", Latitude: 38.5121, Longitude: -106.3320, Region: "Central Rockies", State: "CO", Country: "USA"},
	{Name: "Purgatory", Latitude: 37.6303, Longitude: -107.8140, Region: "San Juan Mountains", State: "CO", Country: "USA"},
	{Name: "Wolf Creek", Latitude: 37.4722, Longitude: -106.7931, Region: "San Juan Mountains", State: "CO", Country: "USA"},


	// Western US - Pacific Northwest
	{Name: "Mt. Bachelor", Latitude: 43.9792, Longitude: -121.6886, Region: "Cascade Range", State: "OR", Country: "USA"},
	{Name: "Mt. Hood Meadows", Latitude: 45.3318, Longitude: -121.6652, Region: "Cascade Range", State: "OR", Country: "USA"},
	{Name: "Timberline Lodge", Latitude: 45.3311, Longitude: -121.7110, Region: "Cascade Range", State: "OR", Country: "USA"},
	{Name: "Mt. Baker", Latitude: 48.7767, Longitude: -121.8144, Region: "Cascade Range", State: "WA", Country: "USA"},
	{Name: "Crystal Mountain", Latitude: 46.9355, Longitude: -121.4751, Region: "Cascade Range", State: "WA", Country: "USA"},
	{Name: "Stevens Pass", Latitude: 47.7448, Longitude: -121.0890, Region: "Cascade Range", State: "WA", Country: "USA"},
	{Name: "Snoqualmie Pass", Latitude: 47.4242, Longitude: -121.4133, Region: "Cascade Range", State: "WA", Country: "USA"},
	{Name: "White Pass", Latitude: 46.6360, Longitude: -121.3911, Region: "Cascade Range", State: "WA", Country: "USA"},
	{Name: "Schweitzer", Latitude: 48.3677, Longitude: -116.6226, Region: "Selkirk Mountains", State: "ID", Country: "USA"},
	{Name: "Sun Valley", Latitude: 43.6962, Longitude: -114.3525, Region: "Sawtooth Range", State: "ID", Country: "USA"},
	{Name: "Grand Targhee", Latitude: 43.7885, Longitude: -110.9580, Region: "Teton Range", State: "WY", Country: "USA"},
	{Name: "Jackson Hole", Latitude: 43.5875, Longitude: -110.8276, Region: "Teton Range", State: "WY", Country: "USA"},


	// Eastern US
	{Name: "Killington", Latitude: 43.6045, Longitude: -72.8201, Region: "Green Mountains", State: "VT", Country: "USA"},
	{Name: "Stowe", Latitude: 44.5303, Longitude: -72.7814, Region: "Green Mountains", State: "VT", Country: "USA"},
	{Name: "Sugarloaf", Latitude: 45.0312, Longitude: -70.3131, Region: "Longfellow Mountains", State: "ME", Country: "USA"},
	{Name: "Sunday River", Latitude: 44.4734, Longitude: -70.8569, Region: "Mahoosuc Range", State: "ME", Country: "USA"},
	{Name: "Whiteface Mountain", Latitude: 44.3658, Longitude: -73.9026, Region: "Adirondack Mountains", State: "NY", Country: "USA"},
	{Name: "Gore Mountain", Latitude: 43.6741, Longitude: -74.0070, Region: "Adirondack Mountains", State: "NY", Country: "USA"},
	{Name: "Hunter Mountain", Latitude: 42.2028, Longitude: -74.2226, Region: "Catskill Mountains", State: "NY", Country: "USA"},
	{Name: "Mount Snow", Latitude: 42.9602, Longitude: -72.9204, Region: "Green Mountains", State: "VT", Country: "USA"},
	{Name: "Okemo", Latitude: 43.4018, Longitude: -72.7176, Region: "Green Mountains", State: "VT", Country: "USA"},
	{Name: "Stratton", Latitude: 43.1134, Longitude: -72.9081, Region: "Green Mountains", State: "VT", Country: "USA"},
	{Name: "Sugarbush", Latitude: 44.1359, Longitude: -72.8944, Region: "Green Mountains", State: "VT", Country: "USA"},
	{Name: "Jay Peak", Latitude: 44.9244, Longitude: -72.5255, Region: "Green Mountains", State: "VT", Country: "USA"},
	{Name: "Bretton Woods", Latitude: 44.2542, Longitude: -71.4406, Region: "White Mountains", State: "NH", Country: "USA"},
	{Name: "Loon Mountain", Latitude: 44.0360, Longitude: -71.6214, Region: "White Mountains", State: "NH", Country: "USA"},
	{Name: "Cannon Mountain", Latitude: 44.1773, Longitude: -71.7003, Region: "White Mountains", State: "NH", Country: "USA"},
	{Name: "Attitash", Latitude: 44.0831, Longitude: -71.2294, Region: "White Mountains", State: "NH", Country: "USA"},
	{Name: "Wildcat Mountain", Latitude: 44.2590, Longitude: -71.2401, Region: "White Mountains", State: "NH", Country: "USA"},
	{Name: "Waterville Valley", Latitude: 43.9504, Longitude: -71.5280, Region: "White Mountains", State: "NH", Country: "USA"},


	// Canada
	{Name: "Whistler Blackcomb", Latitude: 50.1163, Longitude: -122.9574, Region: "Coast Mountains", State: "BC", Country: "Canada"},
	{Name: "Banff Sunshine", Latitude: 51.1152, Longitude: -115.7631, Region: "Canadian Rockies", State: "AB", Country: "Canada"},
	{Name: "Lake Louise", Latitude: 51.4254, Longitude: -116.1773, Region: "Canadian Rockies", State: "AB", Country: "Canada"},
	{Name: "Revelstoke", Latitude: 51.0050, Longitude: -118.1957, Region: "Selkirk Mountains", State: "BC", Country: "Canada"},
	{Name: "Big White", Latitude: 49.7352, Longitude: -118.9433, Region: "Monashee Mountains", State: "BC", Country: "Canada"},
	{Name: "Sun Peaks", Latitude: 50.8825, Longitude: -119.8936, Region: "Thompson Plateau", State: "BC", Country: "Canada"},
	{Name: "Fernie", Latitude: 49.4633, Longitude: -115.0861, Region: "Canadian Rockies", State: "BC", Country: "Canada"},
	{Name: "Kicking Horse", Latitude: 51.2979, Longitude: -117.0419, Region: "Purcell Mountains", State: "BC", Country: "Canada"},
	{Name: "Mont Tremblant", Latitude: 46.2095, Longitude: -74.5855, Region: "Laurentian Mountains", State: "QC", Country: "Canada"},
	{Name: "Blue Mountain", Latitude: 44.5015, Longitude: -80.3092, Region: "Niagara Escarpment", State: "ON", Country: "Canada"},
	{Name: "Mont-Sainte-Anne", Latitude: 47.0756, Longitude: -70.9033, Region: "Laurentian Mountains", State: "QC", Country: "Canada"},
	{Name: "Le Massif", Latitude: 47.2792, Longitude: -70.6314, Region: "Charlevoix", State: "QC", Country: "Canada"},
}
