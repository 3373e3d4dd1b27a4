package calendar

import (
	"github.com/crewplan/backend/internal/types"
)

// KeyFormat is the layout bank holiday dates are keyed by.
const KeyFormat = "02-01-2006"

// Holidays is a read-only registry of bank holiday dates. The zero value is
// an empty registry.
type Holidays struct {
	names map[string]string
}

// NewHolidays returns a registry for a mapping of DD-MM-YYYY dates to
// holiday names. The map is copied, callers may keep modifying theirs.
func NewHolidays(names map[string]string) Holidays {
	h := Holidays{names: make(map[string]string, len(names))}
	for date, name := range names {
		h.names[date] = name
	}
	return h
}

// Default returns the built-in bank holiday table. It is used when no
// persisted holidays exist for the requested location.
func Default() Holidays {
	return NewHolidays(map[string]string{
		"21-04-2023": "Eid-ul-Fitr",
		"15-08-2023": "Independence Day",
		"30-08-2023": "Rakshabandhan",
		"24-10-2023": "Dusshera",
		"13-11-2023": "New Year",
		"14-11-2023": "Bhai Duj",
		"25-12-2023": "Christmas",
		"15-01-2024": "Vasi Uttrayan",
		"26-01-2024": "Republic Day",
		"25-03-2024": "Dhuleti",
	})
}

// IsHoliday reports whether the day is a bank holiday.
func (h Holidays) IsHoliday(d types.Date) bool {
	_, ok := h.names[d.Format(KeyFormat)]
	return ok
}

// Name returns the name of the bank holiday on the day, if there is one.
func (h Holidays) Name(d types.Date) (string, bool) {
	name, ok := h.names[d.Format(KeyFormat)]
	return name, ok
}

// All returns the full date to name mapping of the registry.
func (h Holidays) All() map[string]string {
	all := make(map[string]string, len(h.names))
	for date, name := range h.names {
		all[date] = name
	}
	return all
}

// Len returns the number of holidays in the registry.
func (h Holidays) Len() int {
	return len(h.names)
}
