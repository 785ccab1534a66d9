package game

import (
	"strings"
	"testing"

	"github.com/decker502/gridwalk/pkg/components"
)

func TestFormatStatusReport(t *testing.T) {
	report := FormatStatusReport(StatusSnapshot{
		Variant:         "combined",
		PickingStrategy: "events",
		HalfExtent:      14,
		GroundElevation: 0,
		MaxElevation:    28,
		Tick:            42,
		HasPlayer:       true,
		PlayerPosition:  components.Vec3{X: 3, Y: 0.5, Z: -2},
		UIEnabled:       true,
		Phase:           PhaseEnabledHovering,
		Indicators:      []components.Vec3{{X: 3, Y: 0, Z: -2}},
		SelectedTiles:   [][2]int{{3, -2}},
	})

	for _, want := range []string{
		"variant=combined picking=events tick=42",
		"tiles=[-14..13]",
		"player: (3.0, 0.5, -2.0)",
		"phase=UI_ENABLED_HOVERING",
		"indicators: 1",
		"(3, 0, -2)",
		"selected tiles: [[3 -2]]",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestFormatStatusReportNoPlayer(t *testing.T) {
	report := FormatStatusReport(StatusSnapshot{Variant: "stepper", HalfExtent: 6})

	if !strings.Contains(report, "player: (none)") {
		t.Errorf("report should mention missing player:\n%s", report)
	}
	if !strings.Contains(report, "phase=UI_DISABLED") {
		t.Errorf("zero snapshot should report disabled phase:\n%s", report)
	}
	if !strings.Contains(report, "selected tiles: (none)") {
		t.Errorf("report should mention no selected tiles:\n%s", report)
	}
}

func TestPhaseOf(t *testing.T) {
	ui := NewMovementUIState()
	if got := PhaseOf(ui, true); got != PhaseDisabled {
		t.Errorf("disabled UI: got %v", got)
	}
	ui.Enabled = true
	if got := PhaseOf(ui, false); got != PhaseEnabledIdle {
		t.Errorf("enabled, not hovering: got %v", got)
	}
	if got := PhaseOf(ui, true); got != PhaseEnabledHovering {
		t.Errorf("enabled, hovering: got %v", got)
	}
	if got := PhaseOf(nil, true); got != PhaseDisabled {
		t.Errorf("nil UI: got %v", got)
	}
}
