// Package astro provides a coarse moon-phase estimate used to annotate
// calendar events with observing conditions. It is descriptive only and
// never blocks a booking.
package astro

import (
	"fmt"
	"math"
	"time"
)

// SynodicPeriod is the mean length of a lunation in days.
const SynodicPeriod = 29.53058867

// referenceNewMoon is a known new moon used as the epoch for age calculation.
var referenceNewMoon = time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)

type Phase struct {
	Name       string
	Emoji      string
	Visibility string // observing-suitability hint
	Age        float64
}

// MoonAge returns the age of the moon in days at the given instant,
// normalized to [0, SynodicPeriod).
func MoonAge(at time.Time) float64 {
	days := at.Sub(referenceNewMoon).Hours() / 24
	age := math.Mod(days, SynodicPeriod)
	if age < 0 {
		age += SynodicPeriod
	}
	return age
}

// EstimatePhase buckets the moon age into one of eight named phases.
// Bucket boundaries sit midway between principal phases, so age 0 and
// ages past 27.68 both fall in the new-moon bucket.
func EstimatePhase(at time.Time) Phase {
	age := MoonAge(at)

	var name, emoji, visibility string
	switch {
	case age < 1.85:
		name, emoji, visibility = "Luna Nueva", "🌑", "Excelente para observación"
	case age < 5.54:
		name, emoji, visibility = "Luna Creciente", "🌒", "Muy buena para observación"
	case age < 9.23:
		name, emoji, visibility = "Cuarto Creciente", "🌓", "Buena para observación"
	case age < 12.91:
		name, emoji, visibility = "Luna Gibosa Creciente", "🌔", "Regular para observación"
	case age < 16.61:
		name, emoji, visibility = "Luna Llena", "🌕", "No recomendado - mucha luz lunar"
	case age < 20.30:
		name, emoji, visibility = "Luna Gibosa Menguante", "🌖", "Regular para observación"
	case age < 23.99:
		name, emoji, visibility = "Cuarto Menguante", "🌗", "Buena para observación"
	case age < 27.68:
		name, emoji, visibility = "Luna Menguante", "🌘", "Muy buena para observación"
	default:
		name, emoji, visibility = "Luna Nueva", "🌑", "Excelente para observación"
	}

	return Phase{Name: name, Emoji: emoji, Visibility: visibility, Age: age}
}

// Describe renders the phase as the multi-line block embedded in calendar
// event descriptions.
func (p Phase) Describe() string {
	return fmt.Sprintf("• Fase: %s %s\n• Edad lunar: %d días\n• Visibilidad: %s",
		p.Emoji, p.Name, int(math.Round(p.Age)), p.Visibility)
}
