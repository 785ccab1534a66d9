package game

import (
	"fmt"
	"strings"

	"github.com/decker502/gridwalk/pkg/components"
)

// StatusSnapshot 调试报告所需的场景状态
type StatusSnapshot struct {
	Variant         string
	PickingStrategy string
	HalfExtent      int
	GroundElevation float64
	MaxElevation    float64
	Tick            int

	HasPlayer      bool
	PlayerPosition components.Vec3

	UIEnabled bool
	Phase     Phase

	Indicators    []components.Vec3
	SelectedTiles [][2]int
}

// FormatStatusReport 生成纯文本调试报告（用于复制到剪贴板）
func FormatStatusReport(s StatusSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- gridwalk status report ---\n")
	fmt.Fprintf(&b, "variant=%s picking=%s tick=%d\n", s.Variant, s.PickingStrategy, s.Tick)
	fmt.Fprintf(&b, "board: halfExtent=%d tiles=[%d..%d] elevation=[%.1f..%.1f]\n",
		s.HalfExtent, -s.HalfExtent, s.HalfExtent-1, s.GroundElevation, s.MaxElevation)

	if s.HasPlayer {
		fmt.Fprintf(&b, "player: (%.1f, %.1f, %.1f)\n", s.PlayerPosition.X, s.PlayerPosition.Y, s.PlayerPosition.Z)
	} else {
		b.WriteString("player: (none)\n")
	}

	fmt.Fprintf(&b, "movement ui: enabled=%v phase=%s\n", s.UIEnabled, s.Phase)

	fmt.Fprintf(&b, "indicators: %d\n", len(s.Indicators))
	for _, p := range s.Indicators {
		fmt.Fprintf(&b, "  - (%.0f, %.0f, %.0f)\n", p.X, p.Y, p.Z)
	}

	if len(s.SelectedTiles) == 0 {
		b.WriteString("selected tiles: (none)\n")
	} else {
		fmt.Fprintf(&b, "selected tiles: %v\n", s.SelectedTiles)
	}
	return b.String()
}
