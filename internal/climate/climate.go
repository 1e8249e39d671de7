// Package climate resolves a city (or country) to a static climate-region
// tag used to color generated narrative text.
package climate

import "strings"

// GenericTag is returned when neither the city nor the country is known.
const GenericTag = "generic climate"

// cityTags maps well-known cities (lowercase) to their climate tag.
var cityTags = map[string]string{
	"mumbai":    "coastal humid",
	"chennai":   "coastal hot",
	"kolkata":   "tropical humid",
	"delhi":     "continental extreme",
	"new york":  "continental cold",
	"london":    "cold rainy",
	"tokyo":     "temperate mixed",
	"dubai":     "desert hot",
	"singapore": "tropical wet",
	"sydney":    "coastal mild",
}

// countryTags maps ISO country codes (uppercase) to a regional climate tag.
var countryTags = map[string]string{}

func init() {
	groups := []struct {
		tag   string
		codes []string
	}{
		{"cold northern", []string{"NO", "SE", "FI", "IS", "DK", "RU", "CA"}},
		{"tropical asian", []string{"IN", "LK", "BD", "TH", "MY", "ID", "PH", "VN", "SG"}},
		{"desert hot", []string{"AE", "SA", "QA", "KW", "BH", "OM", "EG"}},
		{"cool european", []string{"GB", "IE", "FR", "DE", "NL", "BE"}},
	}
	for _, g := range groups {
		for _, code := range g.codes {
			countryTags[code] = g.tag
		}
	}
}

// Resolve returns the climate tag for a city, falling back to the country
// group and finally to GenericTag. It never fails.
func Resolve(city, country string) string {
	if tag, ok := cityTags[strings.ToLower(strings.TrimSpace(city))]; ok {
		return tag
	}
	if tag, ok := countryTags[strings.ToUpper(strings.TrimSpace(country))]; ok {
		return tag
	}
	return GenericTag
}
