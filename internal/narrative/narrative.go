// Package narrative assembles the human-readable weather guide from an
// observation, its derived condition labels, a climate tag and the computed
// AQI. Text is built from small templated fragments; where several opening
// sentences are available the choice is uniformly random, so callers that
// need reproducible output must inject a seeded rand.Rand.
package narrative

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"weatherguide/internal/common"
	"weatherguide/internal/conditions"
)

// Inputs carries everything the composer needs for one request.
type Inputs struct {
	City    string
	Country string

	Temp      *float64 // °C
	FeelsLike *float64 // °C
	Humidity  *float64 // percent
	Pressure  *float64 // hPa
	WindKmh   float64

	Category    string // coarse provider group, e.g. "Rain"
	Description string // free-text provider description
	ClimateTag  string
	AQI         *int
}

// Guide is the generated text bundle returned to the client.
type Guide struct {
	Summary    string `json:"summary"`
	Morning    string `json:"morning"`
	Afternoon  string `json:"afternoon"`
	Evening    string `json:"evening"`
	Clothing   string `json:"clothing"`
	Activities string `json:"activities"`
	Safety     string `json:"safety"`
	Insight    string `json:"insight"`
}

// Composer generates Guides. Safe for concurrent use; the embedded random
// source is guarded by a mutex since one Composer serves all requests.
type Composer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewComposer returns a Composer driven by rng. A nil rng gets a time-seeded
// source.
func NewComposer(rng *rand.Rand) *Composer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Composer{rng: rng}
}

// Compose builds the full guide for one observation.
func (c *Composer) Compose(in Inputs) Guide {
	feel := conditions.TempFeel(in.Temp, in.FeelsLike)
	cat := in.Category
	if cat == "" {
		cat = in.Description
	}
	if cat == "" {
		cat = "the weather"
	}

	return Guide{
		Summary:    summaryText(in, feel, cat),
		Morning:    c.timeBlock("morning", feel, cat),
		Afternoon:  c.timeBlock("afternoon", feel, cat),
		Evening:    c.timeBlock("evening", feel, cat),
		Clothing:   clothingText(in),
		Activities: activityText(in),
		Safety:     safetyText(in),
		Insight:    insightText(in, feel),
	}
}

func summaryText(in Inputs, feel, cat string) string {
	head := fmt.Sprintf("In %s, %s, the weather feels %s with %s skies.",
		in.City, in.Country, feel, strings.ToLower(cat))

	if in.Temp == nil && in.FeelsLike == nil {
		return head + " Detailed temperature readings are unavailable right now."
	}

	t := deref(in.Temp, deref(in.FeelsLike, 0))
	fl := deref(in.FeelsLike, t)
	h := deref(in.Humidity, 0)

	return head + fmt.Sprintf(
		" Temperature is around %.1f°C (feels like %.1f°C), humidity near %.0f%%, and winds around %.1f km/h.",
		t, fl, h, in.WindKmh)
}

// timeBlock picks one of three phrasings for a part of the day.
func (c *Composer) timeBlock(name, feel, cat string) string {
	lc := strings.ToLower(cat)
	var variants []string
	switch name {
	case "morning":
		variants = []string{
			fmt.Sprintf("Morning starts %s with %s conditions.", feel, lc),
			fmt.Sprintf("A %s morning with a calm start.", feel),
			fmt.Sprintf("Morning feels %s; a good time for a short walk.", feel),
		}
	case "afternoon":
		variants = []string{
			fmt.Sprintf("Afternoon turns %s and you may notice stronger light.", feel),
			fmt.Sprintf("A %s afternoon; plan your main activities now.", feel),
			fmt.Sprintf("Afternoon stays %s with steady weather.", feel),
		}
	default:
		variants = []string{
			fmt.Sprintf("Evening becomes slightly cooler and feels %s.", feel),
			fmt.Sprintf("A calm %s evening, ideal for relaxing outdoors.", feel),
			fmt.Sprintf("Evening stays %s with mild winds.", feel),
		}
	}
	return variants[c.pick(len(variants))]
}

func (c *Composer) pick(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.Intn(n)
}

func clothingText(in Inputs) string {
	t := deref(in.Temp, 25)

	var advice string
	switch {
	case t >= 35:
		advice = "Wear ultra-light cotton, sunglasses, and stay shaded."
	case t >= 28:
		advice = "Light cotton and breathable clothes feel best today."
	case t >= 22:
		advice = "Comfortable T-shirt and jeans are fine. A thin waterproof layer if rain pops up."
	case t >= 15:
		advice = "A light jacket will help especially when the wind picks up."
	case t >= 5:
		advice = "Warm sweaters and a light coat are recommended."
	default:
		advice = "Use a proper winter jacket, gloves, and warm layers."
	}

	switch {
	case strings.Contains(in.ClimateTag, "coastal"):
		advice += " Since it's a coastal region, humidity may make clothes feel heavier."
	case strings.Contains(in.ClimateTag, "desert"):
		advice += " The dry desert air may feel harsh, so cover exposed skin."
	case in.ClimateTag == "cold northern" || in.ClimateTag == "continental cold":
		advice += " Winters here drop quickly, so warm layers help a lot."
	}

	return advice
}

func activityText(in Inputs) string {
	t := deref(in.Temp, 25)
	h := deref(in.Humidity, 0)
	w := in.WindKmh
	cond := strings.ToLower(in.Category + " " + in.Description)

	switch {
	case common.HasAny(cond, "thunder", "storm"):
		return "Strong winds and rain expected. Stick to indoor activities."
	case common.HasAny(cond, "rain", "drizzle"):
		return "Short walks are fine with an umbrella; indoor plans feel nicer."
	case common.HasAny(cond, "snow"):
		return "Walking in snow is enjoyable if roads are safe. Avoid long outdoor travel."
	}

	var tail string
	switch {
	case strings.Contains(in.ClimateTag, "coastal") && h > 70:
		tail = " Coastal humidity may make long outdoor activity feel tiring."
	case strings.Contains(in.ClimateTag, "desert") && t > 34:
		tail = " Desert heat is harsh; limit activity during peak afternoon."
	case in.ClimateTag == "cold rainy" && t < 12:
		tail = " Cold rain may appear unexpectedly, so stay near shelter."
	}

	switch {
	case t >= 36:
		return "Prefer shaded or indoor plans; heat is intense." + tail
	case w >= 35:
		return "Windy day, so pick sheltered spots." + tail
	case h >= 80 && t > 28:
		return "High humidity may reduce comfort, choose lighter activities." + tail
	}
	return "A good day for normal outdoor plans, like walks, small trips, or meeting friends." + tail
}

// safetyText collects independent tips; rules only ever append, so adding a
// condition never removes a previously firing tip.
func safetyText(in Inputs) string {
	t := deref(in.Temp, 25)
	h := deref(in.Humidity, 0)
	w := in.WindKmh
	cond := strings.ToLower(in.Category + " " + in.Description)
	rainy := common.HasAny(cond, "rain", "drizzle", "thunder", "storm")

	var tips []string

	if t >= 36 {
		tips = append(tips, "Stay hydrated and avoid long exposure to the sun.")
	}
	if t <= 5 {
		tips = append(tips, "Wear strong winter layers to avoid cold stress.")
	}
	if h >= 80 {
		tips = append(tips, "High humidity may cause discomfort; take breaks in cool areas.")
	}
	if w >= 40 {
		tips = append(tips, "Strong winds are expected; avoid open areas and secure loose objects.")
	}
	if rainy {
		tips = append(tips, "Roads may be slippery. Travel carefully.")
	}
	if common.HasAny(cond, "snow") {
		tips = append(tips, "Snow and ice can make walkways hazardous; step carefully.")
	}

	if strings.Contains(in.ClimateTag, "desert") && t > 34 {
		tips = append(tips, "Dry air may cause dehydration quickly; carry enough water.")
	}
	if strings.Contains(in.ClimateTag, "coastal") && rainy {
		tips = append(tips, "Coastal areas may experience sudden rain bursts.")
	}

	if in.AQI != nil {
		if *in.AQI > 200 {
			tips = append(tips, "Air quality is very poor; stay indoors with windows closed if possible.")
		} else if *in.AQI > 150 {
			tips = append(tips, "Air quality is unhealthy; limit prolonged outdoor exertion.")
		}
	}

	// Combined-risk rules: each needs two conditions at once.
	if t >= 35 && h >= 75 {
		tips = append(tips, "Heat and humidity together raise heat-stress risk; avoid midday exertion.")
	}
	if t <= 0 && w >= 25 {
		tips = append(tips, "Wind chill makes it feel far colder than it is; cover exposed skin.")
	}
	if rainy && w >= 35 {
		tips = append(tips, "Driving rain and gusty winds make travel risky; delay trips if you can.")
	}
	if in.AQI != nil && *in.AQI >= 150 && t >= 30 {
		tips = append(tips, "Hot, polluted air strains breathing; sensitive groups should stay indoors.")
	}

	if len(tips) == 0 {
		return "No major safety concerns today."
	}
	return strings.Join(tips, " ")
}

// insightText caps its output at three sentences.
func insightText(in Inputs, feel string) string {
	var sentences []string

	sentences = append(sentences,
		fmt.Sprintf("Overall, %s experiences %s conditions today.", in.City, feel))
	sentences = append(sentences,
		fmt.Sprintf("As a %s region, weather patterns shift slightly, but no unusual trends are expected.", in.ClimateTag))

	if in.AQI != nil {
		sentences = append(sentences,
			fmt.Sprintf("Air quality sits around an index of %d, which is worth factoring into outdoor plans.", *in.AQI))
	}
	if in.Pressure != nil && *in.Pressure < 1000 {
		sentences = append(sentences,
			"Pressure is on the lower side, which can signal changing weather.")
	}

	if len(sentences) > 3 {
		sentences = sentences[:3]
	}
	return strings.Join(sentences, " ")
}

func deref(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
