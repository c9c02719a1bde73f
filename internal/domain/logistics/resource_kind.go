package logistics

import "strings"

// ResourceKind identifies what a buffer holds
type ResourceKind string

const (
	ResourceWood   ResourceKind = "WOOD"
	ResourceStone  ResourceKind = "STONE"
	ResourceFood   ResourceKind = "FOOD"
	ResourceIron   ResourceKind = "IRON"
	ResourceGold   ResourceKind = "GOLD"
	ResourcePlanks ResourceKind = "PLANKS"
)

var knownResourceKinds = map[ResourceKind]struct{}{
	ResourceWood:   {},
	ResourceStone:  {},
	ResourceFood:   {},
	ResourceIron:   {},
	ResourceGold:   {},
	ResourcePlanks: {},
}

// IsValid reports whether k is a catalogued resource kind
func (k ResourceKind) IsValid() bool {
	_, ok := knownResourceKinds[k]
	return ok
}

func (k ResourceKind) String() string {
	return string(k)
}

// ParseResourceKind converts a case-insensitive name to a ResourceKind
func ParseResourceKind(s string) (ResourceKind, error) {
	kind := ResourceKind(strings.ToUpper(strings.TrimSpace(s)))
	if !kind.IsValid() {
		return "", &ErrUnknownResourceKind{Kind: s}
	}
	return kind, nil
}
