package timezone

import "time"

const DefaultTimezone = "America/Bogota"

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// NowFunc fija un timezone y devuelve un reloj inyectable en los usecases.
func NowFunc(tz string) func() time.Time {
	return func() time.Time {
		return NowIn(tz)
	}
}

func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

func ClockOf(t time.Time) string {
	return t.Format(ClockLayout)
}
