package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/zombieconga/pkg/components"
	"github.com/decker502/zombieconga/pkg/ecs"
)

func TestSpawnSystemCadence(t *testing.T) {
	w := newTestWorld()
	system := NewSpawnSystem(w.em, w.cfg, w.area, rand.New(rand.NewSource(7)))

	// 第一帧两个生成器各触发一次
	system.Update(0)
	if n := w.em.CountTag(components.KindEnemy); n != 1 {
		t.Errorf("enemies after first tick = %d, want 1", n)
	}
	if n := w.em.CountTag(components.KindCat); n != 1 {
		t.Errorf("cats after first tick = %d, want 1", n)
	}

	// 再过 3 秒：敌人间隔 2.9 → 再 1 个；猫间隔 1.0 → 再 3 只
	for i := 0; i < 12; i++ {
		system.Update(0.25)
	}
	if n := w.em.CountTag(components.KindEnemy); n != 2 {
		t.Errorf("enemies after 3s = %d, want 2", n)
	}
	if n := w.em.CountTag(components.KindCat); n != 4 {
		t.Errorf("cats after 3s = %d, want 4", n)
	}
}

func TestSpawnSystemLargeDeltaCatchesUp(t *testing.T) {
	w := newTestWorld()
	system := NewSpawnSystem(w.em, w.cfg, w.area, rand.New(rand.NewSource(7)))

	system.Update(0)
	system.Update(3.5)
	if n := w.em.CountTag(components.KindCat); n != 4 {
		t.Errorf("cats = %d, want 4", n)
	}
}

func TestSpawnSystemDisabled(t *testing.T) {
	w := newTestWorld()
	system := NewSpawnSystem(w.em, w.cfg, w.area, rand.New(rand.NewSource(7)))
	system.SetEnabled(false)

	system.Update(10)
	if n := w.em.EntityCount(); n != 1 {
		t.Errorf("entity count = %d, want only the player", n)
	}
}

func TestSpawnPositions(t *testing.T) {
	w := newTestWorld()
	system := NewSpawnSystem(w.em, w.cfg, w.area, rand.New(rand.NewSource(42)))

	for i := 0; i < 50; i++ {
		system.Update(1.0)
	}

	halfH := w.cfg.Enemy.Height / 2
	for _, id := range w.em.GetEntitiesWithTag(components.KindEnemy) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
		if pos.X != w.area.MaxX+w.cfg.Enemy.Width/2 {
			t.Errorf("enemy %d x = %v, want right edge + half width", id, pos.X)
		}
		if pos.Y < w.area.MinY+halfH || pos.Y > w.area.MaxY-halfH {
			t.Errorf("enemy %d y = %v outside vertical bounds", id, pos.Y)
		}
	}
	for _, id := range w.em.GetEntitiesWithTag(components.KindCat) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
		if !w.area.Contains(pos.Vec()) {
			t.Errorf("cat %d at %v outside play area", id, pos.Vec())
		}
		visual, _ := ecs.GetComponent[*components.VisualComponent](w.em, id)
		if visual.Scale != 0 {
			t.Errorf("new cat %d scale = %v, want 0", id, visual.Scale)
		}
	}
}
