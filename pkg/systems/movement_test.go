package systems

import (
	"math"
	"testing"

	"github.com/decker502/zombieconga/pkg/config"
	"github.com/decker502/zombieconga/pkg/utils"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func approxVec(a, b utils.Vec2) bool {
	return approxEqual(a.X, b.X) && approxEqual(a.Y, b.Y)
}

func TestAdvancePlayerIsLinear(t *testing.T) {
	tests := []struct {
		name string
		pos  utils.Vec2
		vel  utils.Vec2
		dt   float64
	}{
		{"静止", utils.V(10, 20), utils.V(0, 0), 0.5},
		{"零步长", utils.V(10, 20), utils.V(480, -30), 0},
		{"对角", utils.V(0, 0), utils.V(300, 400), 0.016},
		{"大步长", utils.V(-5, 7), utils.V(-480, 0), 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdvancePlayer(tt.pos, tt.vel, tt.dt)
			want := utils.V(tt.pos.X+tt.vel.X*tt.dt, tt.pos.Y+tt.vel.Y*tt.dt)
			if !approxVec(got, want) {
				t.Errorf("AdvancePlayer = %v, want %v", got, want)
			}

			// 拆成两半推进，结果应一致
			half := AdvancePlayer(AdvancePlayer(tt.pos, tt.vel, tt.dt/2), tt.vel, tt.dt/2)
			if !approxVec(half, want) {
				t.Errorf("two half steps = %v, want %v", half, want)
			}
		})
	}
}

func TestSeek(t *testing.T) {
	vel := Seek(utils.V(100, 0), utils.V(0, 0), 480)
	if !approxVec(vel, utils.V(480, 0)) {
		t.Errorf("Seek = %v, want (480, 0)", vel)
	}

	diag := Seek(utils.V(3, 4), utils.V(0, 0), 10)
	if !approxVec(diag, utils.V(6, 8)) {
		t.Errorf("Seek diagonal = %v, want (6, 8)", diag)
	}

	zero := Seek(utils.V(50, 50), utils.V(50, 50), 480)
	if !zero.IsZero() {
		t.Errorf("Seek onto own position = %v, want zero velocity", zero)
	}
}

func TestHasArrived(t *testing.T) {
	target := utils.V(100, 0)
	if !HasArrived(target, utils.V(95, 0), 480, 1.0/60) {
		t.Error("5px away at 8px/frame should arrive")
	}
	if HasArrived(target, utils.V(50, 0), 480, 1.0/60) {
		t.Error("50px away at 8px/frame should not arrive")
	}
	if !HasArrived(target, target, 480, 0) {
		t.Error("standing on the target should count as arrived even with dt = 0")
	}
}

func TestFacingAngle(t *testing.T) {
	vel := utils.V(0, 480)

	if got := FacingAngle(utils.V(100, 100), vel, config.HeadingVelocity); !approxEqual(got, math.Pi/2) {
		t.Errorf("velocity heading = %v, want π/2", got)
	}

	pos := utils.V(100, 100)
	want := math.Atan2(vel.Y-pos.Y, vel.X-pos.X)
	if got := FacingAngle(pos, vel, config.HeadingLegacy); !approxEqual(got, want) {
		t.Errorf("legacy heading = %v, want %v", got, want)
	}

	// 位于原点时两种算法一致
	if FacingAngle(utils.Vec2{}, vel, config.HeadingLegacy) != FacingAngle(utils.Vec2{}, vel, config.HeadingVelocity) {
		t.Error("headings should agree at the origin")
	}
}

func TestBoundsReflect(t *testing.T) {
	rect := utils.Rect{MinX: 0, MinY: 192, MaxX: 2048, MaxY: 1344}

	tests := []struct {
		name    string
		pos     utils.Vec2
		vel     utils.Vec2
		wantPos utils.Vec2
		wantVel utils.Vec2
	}{
		{"内部不变", utils.V(500, 500), utils.V(10, -10), utils.V(500, 500), utils.V(10, -10)},
		{"越过左边", utils.V(-30, 500), utils.V(-480, 0), utils.V(0, 500), utils.V(480, 0)},
		{"越过右下", utils.V(2100, 1400), utils.V(300, 400), utils.V(2048, 1344), utils.V(-300, -400)},
		{"正好贴上边", utils.V(800, 192), utils.V(0, -100), utils.V(800, 192), utils.V(0, 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, vel := BoundsReflect(tt.pos, tt.vel, rect)
			if pos != tt.wantPos || vel != tt.wantVel {
				t.Errorf("BoundsReflect = (%v, %v), want (%v, %v)", pos, vel, tt.wantPos, tt.wantVel)
			}
		})
	}
}

func TestBoundsReflectIdempotentInside(t *testing.T) {
	rect := utils.Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	pos, vel := utils.V(40, 60), utils.V(-5, 5)

	p1, v1 := BoundsReflect(pos, vel, rect)
	p2, v2 := BoundsReflect(p1, v1, rect)
	if p1 != p2 || v1 != v2 || p1 != pos || v1 != vel {
		t.Errorf("BoundsReflect not idempotent inside bounds: (%v,%v) -> (%v,%v)", p1, v1, p2, v2)
	}
}

func TestFollowChain(t *testing.T) {
	leader := utils.V(0, 0)
	links := []ChainLink{
		{Position: utils.V(100, 0)},
		{Position: utils.V(100, 100), Busy: true},
		{Position: utils.V(100, 200)},
	}

	steps := FollowChain(leader, links, 480, 0.3)
	if len(steps) != 2 {
		t.Fatalf("got %d steps, want 2 (busy link skipped)", len(steps))
	}

	// 第一节朝领队走 480*0.3 = 144
	if steps[0].Index != 0 || !approxVec(steps[0].Offset, utils.V(-144, 0)) {
		t.Errorf("first step = %+v, want index 0 offset (-144, 0)", steps[0])
	}
	// 第三节朝忙碌的第二节走
	if steps[1].Index != 2 || !approxVec(steps[1].Offset, utils.V(0, -144)) {
		t.Errorf("third step = %+v, want index 2 offset (0, -144)", steps[1])
	}
}

func TestFollowChainOverlappingLink(t *testing.T) {
	steps := FollowChain(utils.V(5, 5), []ChainLink{{Position: utils.V(5, 5)}}, 480, 0.3)
	if len(steps) != 1 || !steps[0].Offset.IsZero() {
		t.Errorf("overlapping link should get a zero step, got %+v", steps)
	}
}
