package core

import "fmt"

// SortOrder selects how the note list is ordered within the pinned and
// unpinned groups.
type SortOrder string

const (
	SortNewestFirst     SortOrder = "newest-first"
	SortOldestFirst     SortOrder = "oldest-first"
	SortTitleAscending  SortOrder = "title-ascending"
	SortTitleDescending SortOrder = "title-descending"
)

// SortOrders lists every accepted SortOrder, default first.
var SortOrders = []SortOrder{SortNewestFirst, SortOldestFirst, SortTitleAscending, SortTitleDescending}

// ParseSortOrder validates s. The empty string maps to SortNewestFirst.
// Unknown values yield a *ValidationError wrapping ErrUnknownSortOrder.
func ParseSortOrder(s string) (SortOrder, error) {
	if s == "" {
		return SortNewestFirst, nil
	}
	for _, o := range SortOrders {
		if string(o) == s {
			return o, nil
		}
	}
	return "", invalid("sort_order", fmt.Errorf("%w: %q", ErrUnknownSortOrder, s))
}

// Preferences holds the persisted user settings.
type Preferences struct {
	SortOrder            SortOrder `yaml:"sort_order" json:"sort_order"`
	DarkMode             bool      `yaml:"dark_mode" json:"dark_mode"`
	NotificationsEnabled bool      `yaml:"notifications_enabled" json:"notifications_enabled"`
	OnboardingCompleted  bool      `yaml:"onboarding_completed" json:"onboarding_completed"`
}

// DefaultPreferences returns the settings of a fresh install.
func DefaultPreferences() Preferences {
	return Preferences{
		SortOrder:            SortNewestFirst,
		NotificationsEnabled: true,
	}
}

// Set assigns a preference by its key. Boolean keys accept "true"/"false".
func (p Preferences) Set(key, value string) (Preferences, error) {
	switch key {
	case "sort_order":
		o, err := ParseSortOrder(value)
		if err != nil {
			return p, err
		}
		p.SortOrder = o
	case "dark_mode":
		b, err := parseBool(key, value)
		if err != nil {
			return p, err
		}
		p.DarkMode = b
	case "notifications_enabled":
		b, err := parseBool(key, value)
		if err != nil {
			return p, err
		}
		p.NotificationsEnabled = b
	case "onboarding_completed":
		b, err := parseBool(key, value)
		if err != nil {
			return p, err
		}
		p.OnboardingCompleted = b
	default:
		return p, invalid("preference", fmt.Errorf("unknown preference %q", key))
	}
	return p, nil
}

func parseBool(key, value string) (bool, error) {
	switch value {
	case "true", "on", "yes", "1":
		return true, nil
	case "false", "off", "no", "0":
		return false, nil
	}
	return false, invalid(key, fmt.Errorf("preference %s expects a boolean, got %q", key, value))
}
