package terminal

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/decker502/zombieconga/pkg/game"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager 终端前端的提示音播放
//
// 所有提示音混入同一个 beep.Mixer；播放完的旋律由 Mixer 自动移除。
// 未初始化（或初始化失败）时所有播放请求静默忽略。
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	volume      float64
	initialized bool
}

// NewSoundManager 创建提示音播放器
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize 打开扬声器
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup 停止所有声音并关闭扬声器
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.music = nil
	sm.initialized = false
}

// PlayCue 播放提示音；对局结束的提示音同时停掉背景音乐
func (sm *SoundManager) PlayCue(c game.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	notes := game.CueMelody(c.Type)
	if len(notes) == 0 {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if (c.Type == game.CueGameWon || c.Type == game.CueGameLost) && sm.music != nil {
		sm.music.Paused = true
	}
	sm.mixer.Add(NewMelodyStreamer(sampleRate, notes, sm.volume))
}

// PlayMusic 循环播放背景旋律
func (sm *SoundManager) PlayMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if sm.music != nil {
		sm.music.Paused = false
		return
	}
	loop := beep.Loop(-1, NewMelodyStreamer(sampleRate, game.BackgroundMelody(), sm.volume*0.4))
	sm.music = &beep.Ctrl{Streamer: loop}
	log.Printf("[SoundManager] Music started")
	sm.mixer.Add(sm.music)
}

// ToggleMusic 暂停/恢复背景音乐
func (sm *SoundManager) ToggleMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = !sm.music.Paused
	speaker.Unlock()
}

// MelodyStreamer 把音符序列实时合成为方波
// 实现 beep.StreamSeeker，可以被 beep.Loop 循环
type MelodyStreamer struct {
	sr        beep.SampleRate
	notes     []noteSpan
	amplitude float64
	total     int
	pos       int
}

// noteSpan 音符在采样点上的区间
type noteSpan struct {
	Freq  float64
	Start int
	End   int
}

// NewMelodyStreamer 创建旋律流
func NewMelodyStreamer(sr beep.SampleRate, melody []game.Note, amplitude float64) *MelodyStreamer {
	m := &MelodyStreamer{sr: sr, amplitude: amplitude}
	for _, n := range melody {
		length := sr.N(time.Duration(n.Duration * float64(time.Second)))
		m.notes = append(m.notes, noteSpan{Freq: n.Freq, Start: m.total, End: m.total + length})
		m.total += length
	}
	return m
}

// Stream 实现 beep.Streamer
func (m *MelodyStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if m.pos >= m.total {
		return 0, false
	}
	fade := int(m.sr) / 200
	for i := range samples {
		if m.pos >= m.total {
			break
		}
		v := m.sampleAt(m.pos, fade)
		samples[i][0] = v
		samples[i][1] = v
		m.pos++
		n++
	}
	return n, true
}

func (m *MelodyStreamer) sampleAt(pos, fade int) float64 {
	for _, note := range m.notes {
		if pos < note.Start || pos >= note.End {
			continue
		}
		if note.Freq <= 0 {
			return 0
		}
		i := pos - note.Start
		phase := math.Mod(float64(i)*note.Freq/float64(m.sr), 1)
		v := m.amplitude
		if phase >= 0.5 {
			v = -v
		}
		switch {
		case i < fade:
			v *= float64(i) / float64(fade)
		case note.End-pos < fade:
			v *= float64(note.End-pos) / float64(fade)
		}
		return v
	}
	return 0
}

// Err 实现 beep.Streamer
func (m *MelodyStreamer) Err() error {
	return nil
}

// Len 实现 beep.StreamSeeker
func (m *MelodyStreamer) Len() int {
	return m.total
}

// Position 实现 beep.StreamSeeker
func (m *MelodyStreamer) Position() int {
	return m.pos
}

// Seek 实现 beep.StreamSeeker
func (m *MelodyStreamer) Seek(p int) error {
	m.pos = max(0, min(p, m.total))
	return nil
}
