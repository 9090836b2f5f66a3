package terminal

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/zombieconga/pkg/components"
	"github.com/decker502/zombieconga/pkg/config"
	"github.com/decker502/zombieconga/pkg/game"
	"github.com/decker502/zombieconga/pkg/session"
	"github.com/decker502/zombieconga/pkg/utils"
)

// FrameDuration 终端刷新间隔
const FrameDuration = 16 * time.Millisecond

// RestartDelay 结算后允许开始新一局前的停留时间（秒）
const RestartDelay = 1.0

var (
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBorder   = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleEnemy    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleCat      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleReleased = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBanner   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)
)

// Frontend 终端版表现层
//
// 驱动一个 session.Session：鼠标按住时把指针位置投影回场景坐标，
// 每帧用真实时间调用 OnTick，再把快照画成字符。
type Frontend struct {
	screen tcell.Screen
	cfg    *config.GameConfig
	sound  *SoundManager
	stats  *game.StatsManager

	session *session.Session
	seed    int64
	start   time.Time
	clock   float64

	proj        Projection
	pointerDown bool
	overAt      float64
	recorded    bool
}

// New 创建终端前端并开始第一局
//
// 参数:
//   - screen: 已初始化的 tcell 屏幕（测试中可以为 nil，只是不绘制）
//   - cfg: 游戏配置
//   - seed: 第一局的随机种子，0 表示使用当前时间
//   - sound: 提示音播放器，可以为 nil
//   - stats: 玩家统计，可以为 nil
func New(screen tcell.Screen, cfg *config.GameConfig, seed int64, sound *SoundManager, stats *game.StatsManager) (*Frontend, error) {
	f := &Frontend{
		screen: screen,
		cfg:    cfg,
		sound:  sound,
		stats:  stats,
		seed:   seed,
	}
	if err := f.newRound(); err != nil {
		return nil, err
	}
	if screen != nil {
		f.resize(screen.Size())
	}
	return f, nil
}

func (f *Frontend) newRound() error {
	s, err := session.New(f.cfg, f.seed)
	if err != nil {
		return fmt.Errorf("failed to start round: %w", err)
	}
	if f.stats != nil {
		s.AttachStats(f.stats)
	}
	if f.sound != nil {
		s.Cues().Subscribe(f.sound.PlayCue)
		f.sound.PlayMusic()
	}
	f.session = s
	f.overAt = 0
	f.recorded = false

	// 下一局换一个种子
	f.seed = s.Seed() + 1
	log.Printf("[Frontend] New round, seed=%d", s.Seed())
	return nil
}

func (f *Frontend) resize(cols, rows int) {
	world := utils.Rect{MaxX: f.cfg.Screen.Width, MaxY: f.cfg.Screen.Height}
	f.proj = NewProjection(world, cols, rows)
}

// Session 当前对局
func (f *Frontend) Session() *session.Session {
	return f.session
}

// Run 运行事件循环直到退出键或 ctx 取消
func (f *Frontend) Run(ctx context.Context) error {
	f.screen.EnableMouse()
	f.screen.HideCursor()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(FrameDuration)
	defer ticker.Stop()
	f.start = time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-eventChan:
			if f.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			f.Tick(time.Since(f.start).Seconds())
			f.Render()
		}
	}
}

// HandleEvent 处理一个输入事件，返回 true 表示退出
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case 'm':
				if f.sound != nil {
					f.sound.ToggleMusic()
				}
			case 'r':
				f.tryRestart()
			}
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		if ev.Buttons()&tcell.Button1 == 0 {
			f.pointerDown = false
			return false
		}
		justPressed := !f.pointerDown
		f.pointerDown = true
		if f.session.IsOver() {
			if justPressed {
				f.tryRestart()
			}
			return false
		}
		f.session.OnPointerUpdate(f.proj.ToWorld(col, row))
	case *tcell.EventResize:
		f.resize(ev.Size())
		if f.screen != nil {
			f.screen.Sync()
		}
	}
	return false
}

// Tick 用绝对时间推进对局
func (f *Frontend) Tick(now float64) {
	f.clock = now
	f.session.OnTick(now)
	f.session.DrainCues()

	if f.session.IsOver() && !f.recorded {
		f.recorded = true
		f.overAt = now
	}
}

// CanRestart 结算画面停留足够久后才能开始新一局
func (f *Frontend) CanRestart() bool {
	return f.session.IsOver() && f.clock-f.overAt >= RestartDelay
}

func (f *Frontend) tryRestart() {
	if !f.CanRestart() {
		return
	}
	if err := f.newRound(); err != nil {
		log.Printf("[Frontend] %v", err)
	}
}

// Glyph 实体在终端上的字符和样式；ok 为 false 表示这一帧不画
func Glyph(v session.EntityView) (r rune, style tcell.Style, ok bool) {
	if v.Hidden || v.Scale <= 0 {
		return 0, style, false
	}
	switch v.Kind {
	case components.KindPlayer:
		return '@', stylePlayer, true
	case components.KindEnemy:
		return 'Z', styleEnemy, true
	case components.KindCat:
		if v.Scale < 0.5 {
			return '.', styleCat, true
		}
		return 'c', styleCat, true
	case components.KindTrain:
		g := int32(255 - 128*utils.Clamp01(v.Tint))
		return 'C', tcell.StyleDefault.Foreground(tcell.NewRGBColor(g/2, 255, g/2)), true
	default:
		return 'x', styleReleased, true
	}
}

// Render 绘制当前快照
func (f *Frontend) Render() {
	if f.screen == nil {
		return
	}
	f.screen.Clear()
	snap := f.session.Snapshot()

	if !f.proj.Valid() {
		f.drawText(0, 0, "terminal too small", styleHUD)
		f.screen.Show()
		return
	}

	f.drawPlayArea(snap.PlayArea)
	for _, v := range snap.Entities {
		r, style, ok := Glyph(v)
		if !ok {
			continue
		}
		col, row := f.proj.ToCell(utils.V(v.X, v.Y))
		f.screen.SetContent(col, row, r, nil, style)
	}

	hud := fmt.Sprintf(" Lives: %d  Cat: %d/%d  Time: %.0fs ", snap.Lives, snap.TrainLength, f.cfg.Rules.WinTrainLength, snap.Time)
	f.drawText(0, 0, hud, styleHUD)

	if snap.Outcome != game.OutcomePlaying {
		f.drawBanner(snap)
	}
	f.screen.Show()
}

func (f *Frontend) drawPlayArea(area utils.Rect) {
	minCol, minRow := f.proj.ToCell(utils.V(area.MinX, area.MinY))
	maxCol, maxRow := f.proj.ToCell(utils.V(area.MaxX, area.MaxY))
	for c := minCol; c <= maxCol; c++ {
		f.screen.SetContent(c, minRow, '-', nil, styleBorder)
		f.screen.SetContent(c, maxRow, '-', nil, styleBorder)
	}
	for r := minRow; r <= maxRow; r++ {
		f.screen.SetContent(minCol, r, '|', nil, styleBorder)
		f.screen.SetContent(maxCol, r, '|', nil, styleBorder)
	}
}

func (f *Frontend) drawBanner(snap session.Snapshot) {
	title := " You Lose! "
	if snap.Outcome == game.OutcomeWon {
		title = " You Win! "
	}
	lines := []string{title, fmt.Sprintf(" Cats: %d ", snap.TrainLength)}
	if f.stats != nil {
		st := f.stats.Stats()
		lines = append(lines, fmt.Sprintf(" Won %d of %d, best %d ", st.Wins, st.GamesPlayed, st.BestTrain))
	}
	if f.CanRestart() {
		lines = append(lines, " r / click: play again ")
	}

	midCol := f.proj.Cols / 2
	row := f.proj.Rows/2 - len(lines)/2
	for i, line := range lines {
		f.drawText(midCol-len(line)/2, row+i, line, styleBanner)
	}
}

func (f *Frontend) drawText(col, row int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		f.screen.SetContent(col+i, row, r, nil, style)
	}
}
