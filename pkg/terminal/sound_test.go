package terminal

import (
	"testing"

	"github.com/decker502/zombieconga/pkg/game"
)

func drain(m *MelodyStreamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := m.Stream(buf)
		if !ok {
			return total, peak
		}
		for _, s := range buf[:n] {
			if s[0] != s[1] {
				panic("channels differ")
			}
			if s[0] > peak {
				peak = s[0]
			}
			if -s[0] > peak {
				peak = -s[0]
			}
		}
		total += n
	}
}

func TestMelodyStreamerEnds(t *testing.T) {
	m := NewMelodyStreamer(sampleRate, game.CueMelody(game.CueGameWon), 0.5)
	if m.Len() == 0 {
		t.Fatal("melody should not be empty")
	}

	total, peak := drain(m)
	if total != m.Len() {
		t.Errorf("streamed %d samples, want %d", total, m.Len())
	}
	if peak <= 0 || peak > 0.5 {
		t.Errorf("peak = %v, want (0, 0.5]", peak)
	}
	if n, ok := m.Stream(make([][2]float64, 16)); ok || n != 0 {
		t.Errorf("drained streamer returned (%d, %v)", n, ok)
	}
}

func TestMelodyStreamerRestIsSilent(t *testing.T) {
	m := NewMelodyStreamer(sampleRate, []game.Note{{Freq: 0, Duration: 0.05}}, 0.5)
	if _, peak := drain(m); peak != 0 {
		t.Errorf("rest peak = %v, want 0", peak)
	}
}

func TestMelodyStreamerSeek(t *testing.T) {
	m := NewMelodyStreamer(sampleRate, game.CueMelody(game.CueCatRescued), 0.5)

	m.Seek(m.Len() + 100)
	if m.Position() != m.Len() {
		t.Errorf("Position = %d, want clamp to %d", m.Position(), m.Len())
	}
	m.Seek(-3)
	if m.Position() != 0 {
		t.Errorf("Position = %d, want 0", m.Position())
	}
}

func TestSoundManagerSilentWithoutSpeaker(t *testing.T) {
	sm := NewSoundManager(0.5)
	sm.PlayCue(game.Cue{Type: game.CueEnemyHit})
	sm.PlayMusic()
	sm.ToggleMusic()
	sm.Cleanup()
	if sm.music != nil {
		t.Error("music should not start before Initialize")
	}
}
