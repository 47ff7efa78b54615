package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Fecha is a calendar date without a time component. It is kept as plain
// year/month/day components so that a date picked by the user never shifts a
// day when it crosses a timezone boundary on parse or serialize.
type Fecha struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseFecha parses a "YYYY-MM-DD" string into its components. Strings that
// carry a time suffix ("2024-11-04T00:00:00") are truncated to the date part.
func ParseFecha(s string) (Fecha, error) {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}

	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Fecha{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD", s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Fecha{}, fmt.Errorf("invalid year in date %q", s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return Fecha{}, fmt.Errorf("invalid month in date %q", s)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil || day < 1 || day > 31 {
		return Fecha{}, fmt.Errorf("invalid day in date %q", s)
	}

	return Fecha{Year: year, Month: time.Month(month), Day: day}, nil
}

// FechaDe extracts the local calendar date from an instant.
func FechaDe(t time.Time) Fecha {
	year, month, day := t.Date()
	return Fecha{Year: year, Month: month, Day: day}
}

func (f Fecha) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", f.Year, int(f.Month), f.Day)
}

func (f Fecha) IsZero() bool {
	return f == Fecha{}
}

func (f Fecha) Equal(other Fecha) bool {
	return f == other
}

// Before reports whether f is strictly earlier than other as calendar dates.
func (f Fecha) Before(other Fecha) bool {
	if f.Year != other.Year {
		return f.Year < other.Year
	}
	if f.Month != other.Month {
		return f.Month < other.Month
	}
	return f.Day < other.Day
}

// Weekday computes the day of week from the components alone. The fixed UTC
// anchor is only weekday arithmetic, not a timezone conversion.
func (f Fecha) Weekday() time.Weekday {
	return time.Date(f.Year, f.Month, f.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// AddDias returns the date moved by the given number of calendar days. The
// fixed UTC anchor is only calendar arithmetic, not a timezone conversion.
func (f Fecha) AddDias(dias int) Fecha {
	return FechaDe(time.Date(f.Year, f.Month, f.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, dias))
}

// EnMes reports whether the date falls within the given month and year.
func (f Fecha) EnMes(month time.Month, year int) bool {
	return f.Month == month && f.Year == year
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *Fecha) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*f = Fecha{}
		return nil
	}

	parsed, err := ParseFecha(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
