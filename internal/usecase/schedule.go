package usecase

import (
	"time"

	"nightsky-booking/internal/data/entity"
)

// DefaultTourTime is the fallback start time for unknown tour types and the
// display time used when rendering the flexible sentinel.
const DefaultTourTime = "21:00"

// IsSummerSeason reports whether the given date falls in the Atacama summer
// observing season (September through March).
func IsSummerSeason(ref time.Time) bool {
	month := int(ref.Month())
	return month < 4 || month > 8
}

// AssignTime maps a tour type and a reference date to the start time the
// operator runs that tour in the current season. Private tours have no fixed
// schedule and get the flexible sentinel; the concrete time is coordinated
// with the customer afterwards. Unknown tour types fall back to
// DefaultTourTime rather than failing.
func AssignTime(tourType entity.TourType, ref time.Time) string {
	summer := IsSummerSeason(ref)

	switch tourType {
	case entity.TourTypeRegular:
		if summer {
			return "21:30"
		}
		return "20:30"
	case entity.TourTypePrivate:
		return entity.TimeFlexible
	case entity.TourTypeAstrophoto:
		if summer {
			return "21:00"
		}
		return "20:00"
	default:
		return DefaultTourTime
	}
}
