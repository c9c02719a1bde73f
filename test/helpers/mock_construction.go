package helpers

import (
	"github.com/andrescamacho/settlement-go/internal/domain/construction"
)

// CallLog records collaborator calls in the order they happen
type CallLog struct {
	Calls []string
}

func (l *CallLog) record(call string) {
	if l != nil {
		l.Calls = append(l.Calls, call)
	}
}

// Count returns how many times call was recorded
func (l *CallLog) Count(call string) int {
	n := 0
	for _, c := range l.Calls {
		if c == call {
			n++
		}
	}
	return n
}

// Reset clears the log
func (l *CallLog) Reset() {
	l.Calls = nil
}

// MockGridVisualizer records grid visibility updates
type MockGridVisualizer struct {
	Log     *CallLog
	Visible bool
	Updates int
}

func (m *MockGridVisualizer) SetGridVisible(visible bool) {
	m.Visible = visible
	m.Updates++
	if visible {
		m.Log.record("grid:show")
	} else {
		m.Log.record("grid:hide")
	}
}

// MockCanceler implements every cancellation port.
// OnCancel, when set, runs inside the cancellation call, e.g. to
// simulate a collaborator that switches the mode back to Idle.
type MockCanceler struct {
	Log      *CallLog
	OnCancel func(call string)
	Panic    bool
}

func (m *MockCanceler) handle(call string) {
	m.Log.record(call)
	if m.OnCancel != nil {
		m.OnCancel(call)
	}
	if m.Panic {
		panic(call + " failed")
	}
}

func (m *MockCanceler) CancelAllModes()        { m.handle("building_modes") }
func (m *MockCanceler) CancelGroupOperation()  { m.handle("group_operation") }
func (m *MockCanceler) ClearMassBuildPreview() { m.handle("mass_build_preview") }
func (m *MockCanceler) ClearRoadPreview()      { m.handle("road_preview") }

var (
	_ construction.BuildingModeCanceler    = (*MockCanceler)(nil)
	_ construction.GroupOperationCanceler  = (*MockCanceler)(nil)
	_ construction.MassBuildPreviewClearer = (*MockCanceler)(nil)
	_ construction.RoadPreviewClearer      = (*MockCanceler)(nil)
)

// MockProductionToggle records producer enable/disable calls
type MockProductionToggle struct {
	Enabled bool
	Calls   int
}

func (m *MockProductionToggle) SetProductionEnabled(enabled bool) {
	m.Enabled = enabled
	m.Calls++
}

// MockProductionSite is a site whose producer may be absent
type MockProductionSite struct {
	Toggle *MockProductionToggle
}

func (m *MockProductionSite) Producer() construction.ProductionToggle {
	if m.Toggle == nil {
		return nil
	}
	return m.Toggle
}

// MockDiscovery hands out pre-set collaborators
type MockDiscovery struct {
	Grid         construction.GridVisualizer
	BuildingMode construction.BuildingModeCanceler
	GroupOps     construction.GroupOperationCanceler
	MassBuild    construction.MassBuildPreviewClearer
	RoadBuild    construction.RoadPreviewClearer
}

func (d *MockDiscovery) FindGridVisualizer() (construction.GridVisualizer, bool) {
	return d.Grid, d.Grid != nil
}

func (d *MockDiscovery) FindBuildingModeCanceler() (construction.BuildingModeCanceler, bool) {
	return d.BuildingMode, d.BuildingMode != nil
}

func (d *MockDiscovery) FindGroupOperationCanceler() (construction.GroupOperationCanceler, bool) {
	return d.GroupOps, d.GroupOps != nil
}

func (d *MockDiscovery) FindMassBuildPreviewClearer() (construction.MassBuildPreviewClearer, bool) {
	return d.MassBuild, d.MassBuild != nil
}

func (d *MockDiscovery) FindRoadPreviewClearer() (construction.RoadPreviewClearer, bool) {
	return d.RoadBuild, d.RoadBuild != nil
}

// MockSiteLookup resolves sites from a map
type MockSiteLookup struct {
	Sites map[string]construction.ProductionSite
}

func (l *MockSiteLookup) FindSite(siteID string) (construction.ProductionSite, bool) {
	site, ok := l.Sites[siteID]
	return site, ok
}
