package construction

import (
	"fmt"
	"strings"
)

// BuildMode is the active construction interaction state.
// Exactly one mode is active at a time.
type BuildMode int

const (
	BuildModeIdle BuildMode = iota
	BuildModePlacing
	BuildModeMoving
	BuildModeDeleting
	BuildModeUpgrading
	BuildModeCopying
	BuildModeGroupMoving
	BuildModeGroupCopying
	BuildModeRoadBuilding
)

var buildModeNames = map[BuildMode]string{
	BuildModeIdle:         "IDLE",
	BuildModePlacing:      "PLACING",
	BuildModeMoving:       "MOVING",
	BuildModeDeleting:     "DELETING",
	BuildModeUpgrading:    "UPGRADING",
	BuildModeCopying:      "COPYING",
	BuildModeGroupMoving:  "GROUP_MOVING",
	BuildModeGroupCopying: "GROUP_COPYING",
	BuildModeRoadBuilding: "ROAD_BUILDING",
}

// AllBuildModes returns every mode in declaration order
func AllBuildModes() []BuildMode {
	return []BuildMode{
		BuildModeIdle,
		BuildModePlacing,
		BuildModeMoving,
		BuildModeDeleting,
		BuildModeUpgrading,
		BuildModeCopying,
		BuildModeGroupMoving,
		BuildModeGroupCopying,
		BuildModeRoadBuilding,
	}
}

// String returns the mode name
func (m BuildMode) String() string {
	if name, ok := buildModeNames[m]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsValid reports whether m is one of the declared modes
func (m BuildMode) IsValid() bool {
	_, ok := buildModeNames[m]
	return ok
}

// ShowsGrid reports whether the placement grid is visible in this mode.
// Every mode except Idle shows it.
func (m BuildMode) ShowsGrid() bool {
	return m.IsValid() && m != BuildModeIdle
}

// IsGroupOperation reports whether the mode acts on a multi-select group
func (m BuildMode) IsGroupOperation() bool {
	return m == BuildModeGroupMoving || m == BuildModeGroupCopying
}

// ParseBuildMode converts a mode name into a BuildMode.
// Matching is case-insensitive and treats '-', '_' and spaces alike.
func ParseBuildMode(s string) (BuildMode, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)

	for mode, name := range buildModeNames {
		if name == normalized || strings.ReplaceAll(name, "_", "") == normalized {
			return mode, nil
		}
	}
	return BuildModeIdle, fmt.Errorf("unknown build mode: %q", s)
}
