package systems

import (
	"testing"

	"github.com/decker502/gridwalk/pkg/components"
	"github.com/decker502/gridwalk/pkg/ecs"
	"github.com/decker502/gridwalk/pkg/entities"
	"github.com/decker502/gridwalk/pkg/game"
	"github.com/decker502/gridwalk/pkg/utils"
)

func setPlayer(t *testing.T, s *StepMovementSystem, pos components.Vec3) {
	t.Helper()
	_, transform, ok := entities.FindPlayer(s.entityManager)
	if !ok {
		t.Fatal("player not found")
	}
	transform.Position = pos
}

func TestStepMovement_WFromOrigin(t *testing.T) {
	em, _ := newTestWorld(t, 14, 1, 2)
	s := NewStepMovementSystem(em, 14, 1, 28, false)

	if !s.Update(tick(pressed(utils.KeyW), nil, nil, nil)) {
		t.Fatal("W should move the player")
	}
	got := playerPosition(t, em)
	want := components.Vec3{X: -1, Y: 2, Z: -1}
	if got != want {
		t.Errorf("position: got %+v, want %+v", got, want)
	}
}

func TestStepMovement_WAtCornerIsNoop(t *testing.T) {
	em, _ := newTestWorld(t, 14, 1, 2)
	s := NewStepMovementSystem(em, 14, 1, 28, false)
	setPlayer(t, s, components.Vec3{X: -13, Y: 2, Z: -13})

	if s.Update(tick(pressed(utils.KeyW), nil, nil, nil)) {
		t.Error("W at (-13,-13) should not move the player")
	}
	got := playerPosition(t, em)
	if got != (components.Vec3{X: -13, Y: 2, Z: -13}) {
		t.Errorf("position changed to %+v", got)
	}
}

// 边界不对称：单轴键在 -B+1 处停止，D/A 斜向键的另一轴仍能到达 -B
func TestStepMovement_EdgeAsymmetry(t *testing.T) {
	tests := []struct {
		name  string
		start components.Vec3
		key   utils.Key
		want  components.Vec3
	}{
		{"Q stops at -B+1", components.Vec3{X: -13, Z: 0}, utils.KeyQ, components.Vec3{X: -13, Z: 0}},
		{"E stops at -B+1", components.Vec3{X: 0, Z: -13}, utils.KeyE, components.Vec3{X: 0, Z: -13}},
		{"A reaches x=-B", components.Vec3{X: -13, Z: 0}, utils.KeyA, components.Vec3{X: -14, Z: 1}},
		{"D reaches z=-B", components.Vec3{X: 0, Z: -13}, utils.KeyD, components.Vec3{X: 1, Z: -14}},
		{"A at x=-B keeps x", components.Vec3{X: -14, Z: 0}, utils.KeyA, components.Vec3{X: -14, Z: 1}},
		{"D at z=-B keeps z", components.Vec3{X: 0, Z: -14}, utils.KeyD, components.Vec3{X: 1, Z: -14}},
		{"C stops at B-1", components.Vec3{X: 13, Z: 0}, utils.KeyC, components.Vec3{X: 13, Z: 0}},
		{"Z stops at B-1", components.Vec3{X: 0, Z: 13}, utils.KeyZ, components.Vec3{X: 0, Z: 13}},
		{"X moves free axis only", components.Vec3{X: 13, Z: 0}, utils.KeyX, components.Vec3{X: 13, Z: 1}},
		{"W moves free axis only", components.Vec3{X: -13, Z: 5}, utils.KeyW, components.Vec3{X: -13, Z: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStepMovementSystem(nil, 14, 0, 28, false)
			got := s.Step(tt.start, pressed(tt.key))
			if got != tt.want {
				t.Errorf("Step(%+v, %s): got %+v, want %+v", tt.start, tt.key, got, tt.want)
			}
		})
	}
}

// 同一 tick 内多个方向键各自独立作用在同一位置上
func TestStepMovement_KeysAccumulate(t *testing.T) {
	s := NewStepMovementSystem(nil, 14, 0, 28, false)

	got := s.Step(components.Vec3{}, pressed(utils.KeyW, utils.KeyC))
	want := components.Vec3{X: 0, Z: -1}
	if got != want {
		t.Errorf("W+C: got %+v, want %+v", got, want)
	}

	// 第一个键把 x 推到边界后，第二个键的 x 检查基于新值
	got = s.Step(components.Vec3{X: -12, Z: 0}, pressed(utils.KeyW, utils.KeyQ))
	want = components.Vec3{X: -13, Z: -1}
	if got != want {
		t.Errorf("W+Q near edge: got %+v, want %+v", got, want)
	}
}

func TestStepMovement_Vertical(t *testing.T) {
	em, _ := newTestWorld(t, 14, 1, 1)
	s := NewStepMovementSystem(em, 14, 1, 28, false)

	for i := 0; i < 10; i++ {
		s.Update(tick(pressed(utils.KeyUp), nil, nil, nil))
	}
	if got := playerPosition(t, em).Y; got != 11 {
		t.Errorf("elevation after 10 Up: got %v, want 11", got)
	}

	for i := 0; i < 40; i++ {
		s.Update(tick(pressed(utils.KeyUp), nil, nil, nil))
	}
	if got := playerPosition(t, em).Y; got != 28 {
		t.Errorf("elevation should stop at max: got %v, want 28", got)
	}

	for i := 0; i < 40; i++ {
		s.Update(tick(pressed(utils.KeyDown), nil, nil, nil))
	}
	if got := playerPosition(t, em).Y; got != 1 {
		t.Errorf("elevation should stop at ground: got %v, want 1", got)
	}
}

// 任意按键序列都不会离开 [-B, B-1]
func TestStepMovement_StaysInBounds(t *testing.T) {
	const b = 3
	s := NewStepMovementSystem(nil, b, 0, 5, false)
	keys := []utils.Key{utils.KeyW, utils.KeyE, utils.KeyD, utils.KeyC, utils.KeyX, utils.KeyZ, utils.KeyA, utils.KeyQ}

	pos := components.Vec3{}
	for i := 0; i < 500; i++ {
		k1 := keys[(i*7)%len(keys)]
		k2 := keys[(i*3+1)%len(keys)]
		pos = s.Step(pos, pressed(k1, k2))
		if pos.X < -b || pos.X > b-1 || pos.Z < -b || pos.Z > b-1 {
			t.Fatalf("step %d left the board: %+v", i, pos)
		}
	}
}

func TestStepMovement_NoKeysNoMutation(t *testing.T) {
	em, _ := newTestWorld(t, 14, 1, 2)
	s := NewStepMovementSystem(em, 14, 1, 28, false)

	if s.Update(tick(utils.KeySnapshot{}, nil, nil, nil)) {
		t.Error("empty snapshot should not report movement")
	}
	// 松开边沿不触发移动
	if s.Update(tick(released(utils.KeyW), nil, nil, nil)) {
		t.Error("release edge should not move the player")
	}
	if got := playerPosition(t, em); got != (components.Vec3{X: 0, Y: 2, Z: 0}) {
		t.Errorf("position changed to %+v", got)
	}
}

func TestStepMovement_YieldsToMovementUI(t *testing.T) {
	em, _ := newTestWorld(t, 14, 0, 0.5)
	s := NewStepMovementSystem(em, 14, 0, 28, true)
	ui := game.NewMovementUIState()
	ui.Enabled = true

	if s.Update(tick(pressed(utils.KeyC), nil, nil, ui)) {
		t.Error("step mover should be inert while movement UI is enabled")
	}

	ui.Enabled = false
	if !s.Update(tick(pressed(utils.KeyC), nil, nil, ui)) {
		t.Error("step mover should move once movement UI is disabled")
	}
}

func TestStepMovement_NoPlayer(t *testing.T) {
	s := NewStepMovementSystem(ecs.NewEntityManager(), 14, 0, 28, false)
	if s.Update(tick(pressed(utils.KeyW), nil, nil, nil)) {
		t.Error("no player should mean no movement")
	}
}
