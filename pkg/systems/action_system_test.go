package systems

import (
	"math"
	"testing"

	"github.com/decker502/zombieconga/pkg/components"
	"github.com/decker502/zombieconga/pkg/config"
	"github.com/decker502/zombieconga/pkg/ecs"
	"github.com/decker502/zombieconga/pkg/entities"
)

func newActionEntity(em *ecs.EntityManager) (ecs.EntityID, *components.PositionComponent, *components.VisualComponent, *components.ActionComponent) {
	id := em.CreateEntity()
	pos := &components.PositionComponent{X: 0, Y: 0}
	visual := components.NewVisualComponent()
	actions := &components.ActionComponent{}
	em.AddComponent(id, pos)
	em.AddComponent(id, visual)
	em.AddComponent(id, actions)
	return id, pos, visual, actions
}

func TestActionMoveByInterpolates(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewActionSystem(em)
	_, pos, _, actions := newActionEntity(em)

	actions.Run("test", components.MoveBy(100, -50, 1.0))

	system.Update(0.25)
	if !approxEqual(pos.X, 25) || !approxEqual(pos.Y, -12.5) {
		t.Errorf("after 0.25s pos = (%v, %v), want (25, -12.5)", pos.X, pos.Y)
	}

	system.Update(5.0)
	if !approxEqual(pos.X, 100) || !approxEqual(pos.Y, -50) {
		t.Errorf("after overshoot pos = (%v, %v), want (100, -50)", pos.X, pos.Y)
	}
	if actions.HasActions() {
		t.Error("finished sequence should be removed")
	}
}

func TestActionSequenceCarriesLeftoverTime(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewActionSystem(em)
	_, pos, _, actions := newActionEntity(em)

	actions.Run("test", components.Wait(0.5), components.MoveToX(100, 1.0))

	// 0.5 秒等待 + 0.5 秒移动
	system.Update(1.0)
	if !approxEqual(pos.X, 50) {
		t.Errorf("pos.X = %v, want 50", pos.X)
	}
}

func TestActionRemoveDestroysEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewActionSystem(em)
	id, _, _, actions := newActionEntity(em)

	actions.Run("idle", components.Wait(1.0), components.RemoveFromParent())
	actions.Run("other", components.Wait(5.0))

	system.Update(0.5)
	if !em.IsAlive(id) {
		t.Fatal("entity removed too early")
	}

	system.Update(0.6)
	if em.IsAlive(id) {
		t.Error("entity should be marked for removal")
	}
	if actions.HasActions() {
		t.Error("all sequences of a removed entity should stop")
	}
}

func TestActionGroupRunsChildrenTogether(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewActionSystem(em)
	_, pos, visual, actions := newActionEntity(em)

	actions.Run("scatter",
		components.Group(
			components.RotateBy(math.Pi, 1.0),
			components.MoveTo(10, 20, 1.0),
			components.ScaleTo(0, 0.5),
		),
	)

	system.Update(0.5)
	if !approxEqual(visual.Rotation, math.Pi/2) {
		t.Errorf("rotation = %v, want π/2", visual.Rotation)
	}
	if !approxEqual(pos.X, 5) || !approxEqual(pos.Y, 10) {
		t.Errorf("pos = (%v, %v), want (5, 10)", pos.X, pos.Y)
	}
	if !approxEqual(visual.Scale, 0) {
		t.Errorf("scale = %v, want 0", visual.Scale)
	}
	if !actions.HasActions() {
		t.Fatal("group should still be running")
	}

	system.Update(0.5)
	if actions.HasActions() {
		t.Error("group should finish when its longest child finishes")
	}
}

func TestActionReversedReturnsToStart(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewActionSystem(em)
	_, _, visual, actions := newActionEntity(em)

	up := components.ScaleBy(1.2, 0.25)
	turn := components.RotateBy(0.4, 0.5)
	actions.Run("pulse",
		components.Group(
			components.Serial(up, up.Reversed(), up, up.Reversed()),
			components.Serial(turn, turn.Reversed()),
		),
	)

	system.Update(0.25)
	if !approxEqual(visual.Scale, 1.2) {
		t.Errorf("scale after first pulse = %v, want 1.2", visual.Scale)
	}

	system.Update(0.75)
	if !approxEqual(visual.Scale, 1) || !approxEqual(visual.Rotation, 0) {
		t.Errorf("after full cycle scale=%v rotation=%v, want 1 and 0", visual.Scale, visual.Rotation)
	}
}

func TestActionBlinkEndsVisible(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewActionSystem(em)
	_, _, visual, actions := newActionEntity(em)

	// 10 次闪烁 / 3 秒：每个周期 0.3 秒，后半段隐藏
	actions.Run(components.ActionKeyBlink, components.Blink(10, 3.0))

	system.Update(0.1)
	if visual.Hidden {
		t.Error("first half of a blink cycle should be visible")
	}
	system.Update(0.1)
	if !visual.Hidden {
		t.Error("second half of a blink cycle should be hidden")
	}

	system.Update(2.75)
	system.Update(1.0)
	if visual.Hidden {
		t.Error("blink must end visible")
	}
}

func TestCatIdleSequenceDuration(t *testing.T) {
	steps := entities.CatIdleSequence(config.DefaultGameConfig().Cat)

	total := 0.0
	for i := range steps {
		total += steps[i].TotalDuration()
	}
	// 0.5 出现 + 10×1.0 摇摆 + 10 等待 + 0.5 消失
	if !approxEqual(total, 21.0) {
		t.Errorf("idle sequence lasts %v, want 21", total)
	}

	em := ecs.NewEntityManager()
	system := NewActionSystem(em)
	id, _, visual, actions := newActionEntity(em)
	visual.Scale = 0
	actions.Run(components.ActionKeyIdle, steps...)

	system.Update(0.5)
	if !approxEqual(visual.Scale, 1) {
		t.Errorf("cat should be fully visible after appearing, scale=%v", visual.Scale)
	}

	for i := 0; i < 25; i++ {
		system.Update(1.0)
	}
	if em.IsAlive(id) {
		t.Error("cat should remove itself after the idle sequence")
	}
}
