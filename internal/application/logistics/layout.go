package logistics

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/andrescamacho/settlement-go/internal/domain/construction"
	"github.com/andrescamacho/settlement-go/internal/domain/logistics"
	"github.com/andrescamacho/settlement-go/internal/domain/shared"
)

// SiteSpec describes one production site of a simulated settlement
type SiteSpec struct {
	Name        string  `validate:"required"`
	Kind        string  `validate:"required"`
	X           float64 `validate:"-"`
	Y           float64 `validate:"-"`
	Z           float64 `validate:"-"`
	Capacity    float64 `validate:"gt=0"`
	RatePerStep float64 `validate:"gte=0"`
}

// Position returns the site location
func (s SiteSpec) Position() shared.Position {
	return shared.NewPosition(s.X, s.Y, s.Z)
}

// CollectorSpec describes one collector and where it starts
type CollectorSpec struct {
	ID string  `validate:"required"`
	X  float64 `validate:"-"`
	Y  float64 `validate:"-"`
	Z  float64 `validate:"-"`
}

// Position returns the collector start location
func (c CollectorSpec) Position() shared.Position {
	return shared.NewPosition(c.X, c.Y, c.Z)
}

// Layout is the initial world of a simulation
type Layout struct {
	Sites      []SiteSpec      `validate:"required,dive"`
	Collectors []CollectorSpec `validate:"dive"`
}

// Validate checks field constraints and name uniqueness
func (l Layout) Validate() error {
	if err := validator.New().Struct(l); err != nil {
		if validationErrs, ok := err.(validator.ValidationErrors); ok {
			var messages []string
			for _, e := range validationErrs {
				messages = append(messages, fmt.Sprintf("%s: %s", e.Namespace(), e.Tag()))
			}
			return fmt.Errorf("invalid layout: %s", strings.Join(messages, ", "))
		}
		return fmt.Errorf("invalid layout: %w", err)
	}

	seen := make(map[string]bool, len(l.Sites))
	for _, site := range l.Sites {
		if seen[site.Name] {
			return fmt.Errorf("invalid layout: duplicate site %q", site.Name)
		}
		seen[site.Name] = true

		if _, err := logistics.ParseResourceKind(site.Kind); err != nil {
			return fmt.Errorf("invalid layout: site %q: %w", site.Name, err)
		}
	}

	return nil
}

// ModeChange is one entry of a scripted mode timeline.
// Sites names the selection a group mode acts on.
type ModeChange struct {
	Step  int
	Mode  construction.BuildMode
	Sites []string
}

// ModeScript is a timeline of user mode changes replayed by the simulation.
// Entries sharing a step are applied in script order, each as its own transition.
type ModeScript []ModeChange

// ParseModeScript reads entries of the form "step:MODE" or "step:MODE:site1,site2"
func ParseModeScript(entries []string) (ModeScript, error) {
	script := make(ModeScript, 0, len(entries))
	for _, entry := range entries {
		parts := strings.SplitN(entry, ":", 3)
		if len(parts) < 2 {
			return nil, fmt.Errorf("invalid mode script entry %q: expected step:MODE", entry)
		}

		step, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil || step < 0 {
			return nil, fmt.Errorf("invalid mode script entry %q: bad step", entry)
		}

		mode, err := construction.ParseBuildMode(parts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid mode script entry %q: %w", entry, err)
		}

		change := ModeChange{Step: step, Mode: mode}
		if len(parts) == 3 && parts[2] != "" {
			for _, site := range strings.Split(parts[2], ",") {
				change.Sites = append(change.Sites, strings.TrimSpace(site))
			}
		}
		script = append(script, change)
	}
	return script, nil
}
