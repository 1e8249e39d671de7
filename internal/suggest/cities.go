package suggest

// cityNames is the static candidate pool for suggestions. It mirrors the
// city list tracked by the dataset collector.
var cityNames = []string{
	"Ahmedabad", "Amsterdam", "Athens", "Auckland", "Bangalore", "Bangkok",
	"Barcelona", "Beijing", "Berlin", "Bogota", "Boston", "Brisbane",
	"Brussels", "Budapest", "Buenos Aires", "Cairo", "Cape Town", "Chennai",
	"Chicago", "Copenhagen", "Dallas", "Delhi", "Dhaka", "Dubai", "Dublin",
	"Edinburgh", "Frankfurt", "Geneva", "Hanoi", "Helsinki", "Hong Kong",
	"Houston", "Hyderabad", "Istanbul", "Jaipur", "Jakarta", "Johannesburg",
	"Karachi", "Kathmandu", "Kolkata", "Kuala Lumpur", "Lagos", "Lahore",
	"Lisbon", "London", "Los Angeles", "Madrid", "Manila", "Melbourne",
	"Mexico City", "Miami", "Milan", "Montreal", "Moscow", "Mumbai", "Munich",
	"Nagpur", "Nairobi", "New York", "Osaka", "Oslo", "Paris", "Prague",
	"Pune", "Reykjavik", "Rio de Janeiro", "Rome", "San Francisco", "Santiago",
	"Sao Paulo", "Seattle", "Seoul", "Shanghai", "Singapore", "Stockholm",
	"Sydney", "Taipei", "Tokyo", "Toronto", "Vancouver", "Vienna", "Warsaw",
	"Wellington", "Zurich",
}

// CollectorCities is the default city set the offline collector samples when
// no explicit list is configured.
func CollectorCities() []string {
	out := make([]string, len(cityNames))
	copy(out, cityNames)
	return out
}
