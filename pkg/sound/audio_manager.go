package sound

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/decker502/zombieconga/pkg/game"
)

// AudioManager 音频管理器
//
// 游戏没有音频资源文件，提示音和背景音乐都在启动时合成为 PCM。
// 音量和开关从 game.SettingsManager 读取；context 为 nil 时所有播放都是空操作。
type AudioManager struct {
	context         *audio.Context
	settingsManager *game.SettingsManager
	soundPlayers    map[game.CueType]*audio.Player
	music           *audio.Player
	musicPlaying    bool
}

// NewAudioManager 创建音频管理器并预先合成所有声音
//
// 参数：
//   - ctx: ebiten 音频上下文，可为 nil（静音）
//   - sm: 设置管理器，可为 nil（使用默认音量）
func NewAudioManager(ctx *audio.Context, sm *game.SettingsManager) *AudioManager {
	am := &AudioManager{
		context:         ctx,
		settingsManager: sm,
		soundPlayers:    make(map[game.CueType]*audio.Player),
	}
	if ctx == nil {
		log.Printf("[AudioManager] No audio context, running silent")
		return am
	}

	rate := ctx.SampleRate()
	for _, cue := range game.AllCueTypes() {
		if melody := game.CueMelody(cue); len(melody) > 0 {
			am.soundPlayers[cue] = ctx.NewPlayerFromBytes(game.SynthesizeMelody(rate, melody, 0.3))
		}
	}

	loopPCM := game.SynthesizeMelody(rate, game.BackgroundMelody(), 0.15)
	loop := audio.NewInfiniteLoop(bytes.NewReader(loopPCM), int64(len(loopPCM)))
	music, err := ctx.NewPlayer(loop)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to create music player: %v", err)
	} else {
		am.music = music
	}

	log.Printf("[AudioManager] Synthesized %d cue sounds", len(am.soundPlayers))
	return am
}

// PlayCue 播放提示音，返回是否实际播放
func (am *AudioManager) PlayCue(cue game.CueType) bool {
	settings := am.settings()
	if !settings.SoundEnabled {
		return false
	}
	player, ok := am.soundPlayers[cue]
	if !ok {
		return false
	}

	player.SetVolume(settings.SoundVolume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind cue %s: %v", cue, err)
	}
	player.Play()
	return true
}

// PlayMusic 开始循环播放背景音乐
func (am *AudioManager) PlayMusic() bool {
	settings := am.settings()
	if am.music == nil || !settings.MusicEnabled {
		return false
	}
	if am.musicPlaying && am.music.IsPlaying() {
		return true
	}
	am.music.SetVolume(settings.MusicVolume)
	am.music.Play()
	am.musicPlaying = true
	log.Printf("[AudioManager] Playing background music (volume: %.2f)", settings.MusicVolume)
	return true
}

// StopMusic 停止背景音乐并回到开头
func (am *AudioManager) StopMusic() {
	if am.music == nil {
		return
	}
	am.music.Pause()
	if err := am.music.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind music: %v", err)
	}
	am.musicPlaying = false
}

// PauseMusic 暂停背景音乐
func (am *AudioManager) PauseMusic() {
	if am.music != nil {
		am.music.Pause()
	}
}

// ResumeMusic 恢复之前播放中的背景音乐
func (am *AudioManager) ResumeMusic() {
	if am.music != nil && am.musicPlaying && am.settings().MusicEnabled {
		am.music.Play()
	}
}

// SetMusicVolume 设置音乐音量并立即生效
func (am *AudioManager) SetMusicVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetMusicVolume(volume)
	}
	if am.music != nil {
		am.music.SetVolume(am.settings().MusicVolume)
	}
}

// SetSoundVolume 设置音效音量（影响之后播放的提示音）
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
}

// HandleCue 作为 CueBus 订阅者：播放对应提示音，结局时停止背景音乐
func (am *AudioManager) HandleCue(c game.Cue) {
	if c.Type == game.CueGameWon || c.Type == game.CueGameLost {
		am.StopMusic()
	}
	am.PlayCue(c.Type)
}

func (am *AudioManager) settings() *game.GameSettings {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings()
	}
	return game.DefaultSettings()
}
