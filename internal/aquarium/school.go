// Package aquarium turns instance activity into a school of fish.
package aquarium

import "aquarium/internal/domain"

// MaxWeeks caps how many weeks of history are rendered.
const MaxWeeks = 100

var (
	visualRange = domain.Range[float64]{Lo: 0.2, Hi: 1.0}

	registrationsRange = domain.Range[float64]{Lo: 0, Hi: 15_000}
	statusesRange      = domain.Range[float64]{Lo: 0, Hi: 100_000}
	loginsRange        = domain.Range[float64]{Lo: 0, Hi: 20_000}
)

// BuildSchool renders one clownfish per week, keeping at most the first
// MaxWeeks entries in input order. Size follows registrations, speed
// follows statuses and bubbles follow logins. Unparsable counters count as
// zero and values beyond the calibration ranges are not clamped.
func BuildSchool(history domain.ActivityHistory) []domain.Fish {
	if len(history) > MaxWeeks {
		history = history[:MaxWeeks]
	}
	school := make([]domain.Fish, 0, len(history))
	for _, week := range history {
		school = append(school, domain.Fish{
			Fish:    domain.SpeciesClownfish,
			Size:    float32(domain.MapRange(registrationsRange, visualRange, week.Registrations.Float())),
			Speed:   float32(domain.MapRange(statusesRange, visualRange, week.Statuses.Float())),
			Bubbles: float32(domain.MapRange(loginsRange, visualRange, week.Logins.Float())),
		})
	}
	return school
}
