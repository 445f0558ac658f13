// Package lifecycle exposes QuickNotes change streams as lifecycle sources.
package lifecycle

import (
	"context"
	"fmt"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/quicknotes/pkg/core"
)

// PreferencesChanged is emitted each time the preferences file is reloaded.
type PreferencesChanged struct {
	Preferences core.Preferences
}

func (e PreferencesChanged) String() string {
	p := e.Preferences
	return fmt.Sprintf("preferences changed: sort_order=%s dark_mode=%t notifications_enabled=%t onboarding_completed=%t",
		p.SortOrder, p.DarkMode, p.NotificationsEnabled, p.OnboardingCompleted)
}

type preferencesSource struct {
	changes <-chan core.Preferences
	out     chan lifecycle.Event
}

// NewPreferencesSource creates a lifecycle.Source that emits a
// PreferencesChanged event for every value received on changes.
// The event channel is closed once changes is closed or the context ends.
func NewPreferencesSource(changes <-chan core.Preferences) lifecycle.Source {
	return &preferencesSource{
		changes: changes,
		out:     make(chan lifecycle.Event),
	}
}

func (s *preferencesSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *preferencesSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case p, ok := <-s.changes:
				if !ok {
					return nil
				}
				select {
				case s.out <- PreferencesChanged{Preferences: p}:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
