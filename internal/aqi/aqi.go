package aqi

import "math"

// breakpoint maps a PM2.5 concentration interval to an AQI interval,
// following the US EPA PM2.5 scale.
type breakpoint struct {
	cLow, cHigh   float64
	aqiLow, aqiHigh int
}

var breakpoints = []breakpoint{
	{0.0, 12.0, 0, 50},
	{12.1, 35.4, 51, 100},
	{35.5, 55.4, 101, 150},
	{55.5, 150.4, 151, 200},
	{150.5, 250.4, 201, 300},
	{250.5, 500.4, 301, 500},
}

// FromPM25 converts a PM2.5 concentration (µg/m³) into a 0-500 AQI value by
// linear interpolation within the matching breakpoint range. The result is
// rounded half-to-even. The second return value is false when the
// concentration falls outside every range (negative or above 500.4).
func FromPM25(pm25 float64) (int, bool) {
	for _, bp := range breakpoints {
		if pm25 >= bp.cLow && pm25 <= bp.cHigh {
			v := (float64(bp.aqiHigh-bp.aqiLow)/(bp.cHigh-bp.cLow))*(pm25-bp.cLow) + float64(bp.aqiLow)
			return int(math.RoundToEven(v)), true
		}
	}
	return 0, false
}

// LabelUnknown is returned by Label for an absent AQI.
const LabelUnknown = "Unknown"

// Label maps an AQI value to its qualitative severity label.
// Pass nil for an absent AQI.
func Label(aqi *int) string {
	if aqi == nil {
		return LabelUnknown
	}
	switch v := *aqi; {
	case v <= 50:
		return "Good"
	case v <= 100:
		return "Moderate"
	case v <= 150:
		return "Unhealthy for Sensitive Groups"
	case v <= 200:
		return "Unhealthy"
	case v <= 300:
		return "Very Unhealthy"
	default:
		return "Hazardous"
	}
}
