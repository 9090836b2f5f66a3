package game

import (
	"encoding/binary"
	"math"
)

// Note 合成音的一个音符，Freq 为 0 表示休止
type Note struct {
	Freq     float64 // 频率（Hz）
	Duration float64 // 时长（秒）
}

// 提示音旋律
var cueMelodies = map[CueType][]Note{
	CueCatRescued: {{Freq: 880, Duration: 0.06}, {Freq: 1320, Duration: 0.1}},
	CueEnemyHit:   {{Freq: 220, Duration: 0.08}, {Freq: 147, Duration: 0.18}},
	CueGameWon: {
		{Freq: 523, Duration: 0.12}, {Freq: 659, Duration: 0.12},
		{Freq: 784, Duration: 0.12}, {Freq: 1047, Duration: 0.3},
	},
	CueGameLost: {
		{Freq: 392, Duration: 0.2}, {Freq: 330, Duration: 0.2},
		{Freq: 262, Duration: 0.45},
	},
}

// backgroundMelody 背景音乐的一个循环
var backgroundMelody = []Note{
	{Freq: 262, Duration: 0.2}, {Freq: 330, Duration: 0.2}, {Freq: 392, Duration: 0.2}, {Freq: 330, Duration: 0.2},
	{Freq: 294, Duration: 0.2}, {Freq: 349, Duration: 0.2}, {Freq: 440, Duration: 0.2}, {Freq: 349, Duration: 0.2},
	{Freq: 262, Duration: 0.2}, {Freq: 330, Duration: 0.2}, {Freq: 392, Duration: 0.4},
	{Freq: 0, Duration: 0.2}, {Freq: 196, Duration: 0.4}, {Freq: 0, Duration: 0.4},
}

// SynthesizeMelody 把音符序列合成为 16 位小端立体声 PCM（ebiten audio 的默认格式）
//
// 每个音符是带短淡入淡出的方波，避免音符衔接处的爆音。
func SynthesizeMelody(sampleRate int, notes []Note, amplitude float64) []byte {
	total := 0
	for _, n := range notes {
		total += int(n.Duration * float64(sampleRate))
	}

	pcm := make([]byte, 0, total*4)
	var frame [4]byte
	for _, n := range notes {
		samples := int(n.Duration * float64(sampleRate))
		fade := sampleRate / 200 // 5ms
		for i := 0; i < samples; i++ {
			v := 0.0
			if n.Freq > 0 {
				phase := math.Mod(float64(i)*n.Freq/float64(sampleRate), 1)
				if phase < 0.5 {
					v = amplitude
				} else {
					v = -amplitude
				}
				switch {
				case i < fade:
					v *= float64(i) / float64(fade)
				case samples-i < fade:
					v *= float64(samples-i) / float64(fade)
				}
			}
			s := uint16(int16(v * math.MaxInt16))
			binary.LittleEndian.PutUint16(frame[0:], s)
			binary.LittleEndian.PutUint16(frame[2:], s)
			pcm = append(pcm, frame[:]...)
		}
	}
	return pcm
}

// CueMelody 提示音对应的旋律
func CueMelody(c CueType) []Note {
	return cueMelodies[c]
}

// BackgroundMelody 背景音乐的一个循环
func BackgroundMelody() []Note {
	return backgroundMelody
}
