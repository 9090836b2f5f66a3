package scenes

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// mockScene 记录调用情况的测试场景
type mockScene struct {
	updates   int
	drawn     bool
	deltaTime float64
	onUpdate  func()
}

func (m *mockScene) Update(deltaTime float64) {
	m.updates++
	m.deltaTime = deltaTime
	if m.onUpdate != nil {
		m.onUpdate()
	}
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawn = true
}

func TestSceneManagerUpdateAndDraw(t *testing.T) {
	sm := NewSceneManager()
	// 没有场景时不应 panic
	sm.Update(0.016)
	sm.Draw(nil)

	scene := &mockScene{}
	sm.SwitchTo(scene)
	sm.Update(0.016)
	sm.Draw(nil)

	if scene.updates != 1 || scene.deltaTime != 0.016 {
		t.Errorf("updates=%d deltaTime=%v, want 1 and 0.016", scene.updates, scene.deltaTime)
	}
	if !scene.drawn {
		t.Error("Draw was not forwarded to the scene")
	}
	if sm.GetCurrentScene() != scene {
		t.Error("GetCurrentScene returned the wrong scene")
	}
}

func TestSceneManagerRequestIsDeferred(t *testing.T) {
	sm := NewSceneManager()

	var requests []SceneRequest
	next := &mockScene{}
	sm.SetSceneFactory(func(req SceneRequest) Scene {
		requests = append(requests, req)
		return next
	})

	first := &mockScene{}
	first.onUpdate = func() {
		sm.Request(SceneRequest{Kind: SceneGameOver, Outcome: OutcomeWon, TrainLength: 5})
	}
	sm.SwitchTo(first)

	sm.Update(0.016)
	if sm.GetCurrentScene() != first {
		t.Fatal("switch must wait for the next Update")
	}
	if !sm.HasPendingRequest() {
		t.Fatal("request should be pending")
	}

	sm.Update(0.016)
	if sm.GetCurrentScene() != next {
		t.Fatal("pending request was not applied")
	}
	if next.updates != 1 || first.updates != 1 {
		t.Errorf("first.updates=%d next.updates=%d, want 1 and 1", first.updates, next.updates)
	}
	if len(requests) != 1 || requests[0].Kind != SceneGameOver || requests[0].Outcome != OutcomeWon {
		t.Errorf("factory requests = %+v", requests)
	}
}

func TestSceneManagerRequestWithoutFactory(t *testing.T) {
	sm := NewSceneManager()
	scene := &mockScene{}
	sm.SwitchTo(scene)

	sm.Request(SceneRequest{Kind: SceneGame})
	sm.Update(0.016)

	if sm.GetCurrentScene() != scene {
		t.Error("scene should stay when no factory is set")
	}
	if sm.HasPendingRequest() {
		t.Error("failed request should be dropped")
	}
}

func TestSceneManagerFactoryReturnsNil(t *testing.T) {
	sm := NewSceneManager()
	scene := &mockScene{}
	sm.SwitchTo(scene)
	sm.SetSceneFactory(func(SceneRequest) Scene { return nil })

	sm.Request(SceneRequest{Kind: SceneGameOver})
	sm.Update(0.016)

	if sm.GetCurrentScene() != scene {
		t.Error("scene should stay when the factory fails")
	}
}
