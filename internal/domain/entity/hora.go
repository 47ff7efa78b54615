package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Hora is a wall-clock time with minute precision, normalized to "HH:MM".
type Hora struct {
	Hour   int
	Minute int
}

// ParseHora accepts "HH:MM" and "HH:MM:SS" (seconds are dropped), with or
// without a leading zero in the hour.
func ParseHora(s string) (Hora, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return Hora{}, fmt.Errorf("invalid time %q, use HH:MM", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return Hora{}, fmt.Errorf("invalid hour in time %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return Hora{}, fmt.Errorf("invalid minute in time %q", s)
	}

	return Hora{Hour: hour, Minute: minute}, nil
}

func (h Hora) String() string {
	return fmt.Sprintf("%02d:%02d", h.Hour, h.Minute)
}

func (h Hora) IsZero() bool {
	return h == Hora{}
}

// Before compares by time of day. The zero-padded string form sorts the same
// way, which the day timeline relies on.
func (h Hora) Before(other Hora) bool {
	if h.Hour != other.Hour {
		return h.Hour < other.Hour
	}
	return h.Minute < other.Minute
}

func (h Hora) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON accepts the backend's two serializations of a LocalTime: the
// string form "HH:MM[:SS]" and the structured array form [hour, minute(, ...)].
func (h *Hora) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" {
			*h = Hora{}
			return nil
		}
		parsed, perr := ParseHora(s)
		if perr != nil {
			return perr
		}
		*h = parsed
		return nil
	}

	var parts []int
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("invalid time value %s", string(data))
	}
	if len(parts) < 2 {
		return fmt.Errorf("invalid time value %s", string(data))
	}
	if parts[0] < 0 || parts[0] > 23 || parts[1] < 0 || parts[1] > 59 {
		return fmt.Errorf("time value %s out of range", string(data))
	}

	*h = Hora{Hour: parts[0], Minute: parts[1]}
	return nil
}
