package systems

import (
	"testing"

	"github.com/decker502/gridwalk/pkg/components"
	"github.com/decker502/gridwalk/pkg/config"
	"github.com/decker502/gridwalk/pkg/ecs"
	"github.com/decker502/gridwalk/pkg/game"
	"github.com/decker502/gridwalk/pkg/picking"
	"github.com/decker502/gridwalk/pkg/utils"
)

func markSelected(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.GridTileComponent {
	t.Helper()
	tile, ok := ecs.GetComponent[*components.GridTileComponent](em, id)
	if !ok {
		t.Fatalf("entity %d is not a tile", id)
	}
	tile.Selected = true
	return tile
}

func TestTilePick_FlagModelMovesAndClears(t *testing.T) {
	em, tileAt := newTestWorld(t, 6, 0, 0.5)
	s := NewTilePickMovementSystem(em, 0.5, config.PickingEvents)
	target := tileAt(3, -3)
	tile := markSelected(t, em, target)

	ev := []picking.Event{picking.NewSelectionEvent(target, picking.JustSelected)}
	if !s.Update(tick(utils.KeySnapshot{}, ev, nil, enabledUI())) {
		t.Fatal("selection should move the player")
	}
	if got := playerPosition(t, em); got != (components.Vec3{X: 3, Y: 0.5, Z: -3}) {
		t.Errorf("player position: got %+v, want (3, 0.5, -3)", got)
	}
	if tile.Selected {
		t.Error("selection flag should be cleared after consumption")
	}
}

// 地面抬高时玩家坐在地面之上半格
func TestTilePick_SeatsOnRaisedGround(t *testing.T) {
	em, tileAt := newTestWorld(t, 6, 1, 1.5)
	s := NewTilePickMovementSystem(em, 1.5, config.PickingEvents)
	target := tileAt(3, -2)
	tile := markSelected(t, em, target)

	ev := []picking.Event{picking.NewSelectionEvent(target, picking.JustSelected)}
	if !s.Update(tick(utils.KeySnapshot{}, ev, nil, enabledUI())) {
		t.Fatal("selection should move the player")
	}
	if got := playerPosition(t, em); got != (components.Vec3{X: 3, Y: 1.5, Z: -2}) {
		t.Errorf("player position: got %+v, want (3, 1.5, -2)", got)
	}
	if tile.Selected {
		t.Error("selection flag should be cleared after consumption")
	}
}

func TestTilePick_NoFlaggedTileIsIgnored(t *testing.T) {
	em, tileAt := newTestWorld(t, 6, 0, 0.5)
	s := NewTilePickMovementSystem(em, 0.5, config.PickingEvents)

	ev := []picking.Event{picking.NewSelectionEvent(tileAt(1, 1), picking.JustSelected)}
	if s.Update(tick(utils.KeySnapshot{}, ev, nil, enabledUI())) {
		t.Error("no flagged tile should mean no movement")
	}
	if got := playerPosition(t, em); got != (components.Vec3{X: 0, Y: 0.5, Z: 0}) {
		t.Errorf("player moved to %+v", got)
	}
}

func TestTilePick_PollModelUsesPicker(t *testing.T) {
	em, tileAt := newTestWorld(t, 6, 0, 0.5)
	s := NewTilePickMovementSystem(em, 0.5, config.PickingPoll)
	selected := tileAt(-2, 4)
	tile := markSelected(t, em, selected)

	ev := []picking.Event{picking.NewSelectionEvent(selected, picking.JustSelected)}
	if !s.Update(tick(utils.KeySnapshot{}, ev, pickerOver(t, em, tileAt(-2, 4)), enabledUI())) {
		t.Fatal("selection should move the player")
	}
	if got := playerPosition(t, em); got != (components.Vec3{X: -2, Y: 0.5, Z: 4}) {
		t.Errorf("player position: got %+v", got)
	}
	if tile.Selected {
		t.Error("selection flag should be cleared in poll mode too")
	}

	// 指针不在格子上时忽略
	markSelected(t, em, selected)
	if s.Update(tick(utils.KeySnapshot{}, ev, picking.NoPicker{}, enabledUI())) {
		t.Error("no pointer hit should mean no movement")
	}
}

func TestTilePick_InactiveWhenDisabled(t *testing.T) {
	em, tileAt := newTestWorld(t, 6, 0, 0.5)
	s := NewTilePickMovementSystem(em, 0.5, config.PickingEvents)
	target := tileAt(2, 2)
	tile := markSelected(t, em, target)

	ev := []picking.Event{picking.NewSelectionEvent(target, picking.JustSelected)}
	if s.Update(tick(utils.KeySnapshot{}, ev, nil, game.NewMovementUIState())) {
		t.Error("disabled UI should not move the player")
	}
	if !tile.Selected {
		t.Error("disabled UI should not consume the selection flag")
	}
}

func TestTilePick_IgnoresOtherEvents(t *testing.T) {
	em, tileAt := newTestWorld(t, 6, 0, 0.5)
	s := NewTilePickMovementSystem(em, 0.5, config.PickingEvents)
	target := tileAt(1, 0)
	markSelected(t, em, target)

	ev := []picking.Event{
		picking.NewSelectionEvent(target, picking.JustDeselected),
		picking.NewHoverEvent(target, picking.HoverEntered),
		picking.NewHoverEvent(target, picking.HoverLeft),
	}
	if s.Update(tick(utils.KeySnapshot{}, ev, nil, enabledUI())) {
		t.Error("only JustSelected events should move the player")
	}
}

func TestTilePick_SetStrategy(t *testing.T) {
	em, tileAt := newTestWorld(t, 6, 0, 0.5)
	s := NewTilePickMovementSystem(em, 0.5, config.PickingEvents)
	s.SetStrategy(config.PickingPoll)

	// 选中标记在 (1,1)，但指针在 (4,4)，poll 模式以指针为准
	flagged := tileAt(1, 1)
	markSelected(t, em, flagged)
	ev := []picking.Event{picking.NewSelectionEvent(flagged, picking.JustSelected)}
	s.Update(tick(utils.KeySnapshot{}, ev, pickerOver(t, em, tileAt(4, 4)), enabledUI()))

	if got := playerPosition(t, em); got != (components.Vec3{X: 4, Y: 0.5, Z: 4}) {
		t.Errorf("player position: got %+v, want (4, 0.5, 4)", got)
	}
}
