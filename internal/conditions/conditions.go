// Package conditions classifies raw numeric observations into the qualitative
// labels used by the narrative generator. Every function is total: missing
// inputs fall back to a neutral default instead of failing.
package conditions

// TempFeel describes how the temperature feels. It prefers the feels-like
// reading over the actual temperature and returns "moderate" when both are
// absent. Bucket lower bounds are inclusive.
func TempFeel(temp, feelsLike *float64) string {
	t := feelsLike
	if t == nil {
		t = temp
	}
	if t == nil {
		return "moderate"
	}
	switch v := *t; {
	case v >= 38:
		return "extremely hot"
	case v >= 34:
		return "very hot"
	case v >= 30:
		return "hot"
	case v >= 24:
		return "warm"
	case v >= 18:
		return "mild"
	case v >= 10:
		return "cool"
	case v >= 0:
		return "cold"
	default:
		return "freezing"
	}
}

// HumidityLabel describes relative humidity in percent.
func HumidityLabel(h *float64) string {
	if h == nil {
		return "moderate"
	}
	switch v := *h; {
	case v >= 80:
		return "very humid"
	case v >= 60:
		return "humid"
	case v <= 30:
		return "dry"
	default:
		return "normal"
	}
}

// WindLabel is the coarse 3-way wind description used inside narrative text.
func WindLabel(w *float64) string {
	if w == nil {
		return "calm"
	}
	switch v := *w; {
	case v >= 40:
		return "very windy"
	case v >= 20:
		return "breezy"
	default:
		return "light wind"
	}
}

// WindMood is the finer 6-bucket wind description exposed in the API
// response. The buckets partition the whole range with no gaps.
func WindMood(speedKmh float64) string {
	switch {
	case speedKmh <= 5:
		return "Calm"
	case speedKmh <= 15:
		return "Light Breeze"
	case speedKmh <= 25:
		return "Breezy"
	case speedKmh <= 40:
		return "Windy"
	case speedKmh <= 60:
		return "Very Windy"
	default:
		return "Storm Winds"
	}
}
