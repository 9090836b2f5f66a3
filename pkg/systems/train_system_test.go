package systems

import (
	"testing"

	"github.com/decker502/zombieconga/pkg/components"
	"github.com/decker502/zombieconga/pkg/ecs"
)

func TestTrainSystemIssuesFollowSteps(t *testing.T) {
	w := newTestWorld()
	system := NewTrainSystem(w.em, w.gs, w.playerID, w.cfg.Train.Speed, w.cfg.Train.StepDuration)
	actionSystem := NewActionSystem(w.em)

	// 玩家在 (1000,700)，第一只猫在正左方 500 像素
	first := w.addTrainCat(500, 700)
	second := w.addTrainCat(500, 900)

	system.Update(0)

	if w.gs.TrainLength != 2 {
		t.Errorf("TrainLength = %d, want 2", w.gs.TrainLength)
	}
	for _, id := range []ecs.EntityID{first, second} {
		actions, _ := ecs.GetComponent[*components.ActionComponent](w.em, id)
		if !actions.HasAction(components.ActionKeyConga) {
			t.Fatalf("cat %d should have a conga step", id)
		}
	}

	// 一步走完：480 * 0.3 = 144 像素
	actionSystem.Update(w.cfg.Train.StepDuration)

	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, first)
	if !approxEqual(pos.X, 644) || !approxEqual(pos.Y, 700) {
		t.Errorf("first cat at (%v, %v), want (644, 700)", pos.X, pos.Y)
	}
	pos, _ = ecs.GetComponent[*components.PositionComponent](w.em, second)
	if !approxEqual(pos.X, 500) || !approxEqual(pos.Y, 756) {
		t.Errorf("second cat at (%v, %v), want (500, 756)", pos.X, pos.Y)
	}
}

func TestTrainSystemWaitsForRunningActions(t *testing.T) {
	w := newTestWorld()
	system := NewTrainSystem(w.em, w.gs, w.playerID, w.cfg.Train.Speed, w.cfg.Train.StepDuration)

	id := w.addTrainCat(500, 700)
	actions, _ := ecs.GetComponent[*components.ActionComponent](w.em, id)
	actions.Run(components.ActionKeyTurned, components.TintTo(1, 0.2))

	system.Update(0)

	if actions.HasAction(components.ActionKeyConga) {
		t.Error("a cat that is still turning green should not get a new step")
	}
}

func TestTrainSystemIgnoresReleasedCats(t *testing.T) {
	w := newTestWorld()
	system := NewTrainSystem(w.em, w.gs, w.playerID, w.cfg.Train.Speed, w.cfg.Train.StepDuration)

	id := w.addTrainCat(500, 700)
	w.em.SetTag(id, components.KindNone)

	system.Update(0)

	if w.gs.TrainLength != 0 {
		t.Errorf("TrainLength = %d, want 0", w.gs.TrainLength)
	}
	actions, _ := ecs.GetComponent[*components.ActionComponent](w.em, id)
	if actions.HasActions() {
		t.Error("released cat should not follow the train")
	}
}
