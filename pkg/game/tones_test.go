package game

import (
	"encoding/binary"
	"testing"
)

func TestSynthesizeMelodyLength(t *testing.T) {
	const rate = 48000
	notes := []Note{{Freq: 440, Duration: 0.1}, {Freq: 0, Duration: 0.05}}

	pcm := SynthesizeMelody(rate, notes, 0.5)
	// 16 位立体声：每帧 4 字节
	want := (4800 + 2400) * 4
	if len(pcm) != want {
		t.Fatalf("len(pcm) = %d, want %d", len(pcm), want)
	}

	// 休止部分全部为 0
	for i := 4800 * 4; i < len(pcm); i++ {
		if pcm[i] != 0 {
			t.Fatalf("rest note has non-zero byte at %d", i)
		}
	}

	// 左右声道相同，振幅不超过上限
	peak := 0
	for i := 0; i < 4800*4; i += 4 {
		l := int16(binary.LittleEndian.Uint16(pcm[i:]))
		r := int16(binary.LittleEndian.Uint16(pcm[i+2:]))
		if l != r {
			t.Fatalf("channels differ at frame %d", i/4)
		}
		if v := int(l); v > peak {
			peak = v
		} else if -v > peak {
			peak = -v
		}
	}
	if peak == 0 || peak > 16384 {
		t.Errorf("peak = %d, want (0, 16384]", peak)
	}
}

func TestCueMelodies(t *testing.T) {
	for _, cue := range []CueType{CueCatRescued, CueEnemyHit, CueGameWon, CueGameLost} {
		if len(CueMelody(cue)) == 0 {
			t.Errorf("cue %s has no melody", cue)
		}
	}
	if CueMelody(CueType(99)) != nil {
		t.Error("unknown cue should have no melody")
	}
}
