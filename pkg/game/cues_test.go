package game

import "testing"

func TestCueBusPublish(t *testing.T) {
	bus := NewCueBus()

	var pushed []CueType
	bus.Subscribe(func(c Cue) { pushed = append(pushed, c.Type) })

	bus.Publish(Cue{Type: CueCatRescued, Entity: 3, Time: 1.5})
	bus.Publish(Cue{Type: CueEnemyHit, Entity: 4, Time: 2.0, RecoverAfter: 3.0})

	if len(pushed) != 2 || pushed[0] != CueCatRescued || pushed[1] != CueEnemyHit {
		t.Errorf("subscriber got %v", pushed)
	}

	drained := bus.Drain()
	if len(drained) != 2 || drained[1].RecoverAfter != 3.0 {
		t.Errorf("Drain = %+v", drained)
	}
	if again := bus.Drain(); len(again) != 0 {
		t.Errorf("second Drain = %+v, want empty", again)
	}
}

func TestCueTypeString(t *testing.T) {
	tests := map[CueType]string{
		CueCatRescued: "CatRescued",
		CueEnemyHit:   "EnemyHit",
		CueGameWon:    "GameWon",
		CueGameLost:   "GameLost",
		CueType(42):   "Unknown",
	}
	for cue, want := range tests {
		if got := cue.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(cue), got, want)
		}
	}
}
