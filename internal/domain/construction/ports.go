package construction

// Collaborators of the mode coordinator. Every one of them is optional:
// a nil value means "nothing to cancel" and is never an error.

// GridVisualizer shows or hides the placement grid
type GridVisualizer interface {
	SetGridVisible(visible bool)
}

// BuildingModeCanceler resets the building manager's own transient modes
// (single ghost previews, pending placement)
type BuildingModeCanceler interface {
	CancelAllModes()
}

// GroupOperationCanceler drops an in-flight multi-select move or copy
type GroupOperationCanceler interface {
	CancelGroupOperation()
}

// MassBuildPreviewClearer removes the mass-build brush preview
type MassBuildPreviewClearer interface {
	ClearMassBuildPreview()
}

// RoadPreviewClearer removes road ghost segments
type RoadPreviewClearer interface {
	ClearRoadPreview()
}

// ProductionToggle switches a producer's output on or off.
// Implementations must leave already buffered output untouched.
type ProductionToggle interface {
	SetProductionEnabled(enabled bool)
}

// ProductionSite is anything that may carry a producer component.
// Producer returns nil when the site has none.
type ProductionSite interface {
	Producer() ProductionToggle
}

// SiteLookup resolves a site identifier to a production site
type SiteLookup interface {
	FindSite(siteID string) (ProductionSite, bool)
}

// CollaboratorDiscovery enumerates collaborator instances already present in
// the host at construction time. It is only consulted for collaborators that
// were not injected explicitly.
type CollaboratorDiscovery interface {
	FindGridVisualizer() (GridVisualizer, bool)
	FindBuildingModeCanceler() (BuildingModeCanceler, bool)
	FindGroupOperationCanceler() (GroupOperationCanceler, bool)
	FindMassBuildPreviewClearer() (MassBuildPreviewClearer, bool)
	FindRoadPreviewClearer() (RoadPreviewClearer, bool)
}
