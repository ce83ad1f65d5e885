package terminal

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-squarewave/squarewave/backend"
	"github.com/valerio/go-squarewave/squarewave/sequencer"
	"github.com/valerio/go-squarewave/squarewave/voice"
)

const (
	minTermWidth  = 60
	minTermHeight = 16
	headerHeight  = 4
	logCapacity   = 200
	maxLevel      = 32767
)

// Backend implements the Backend interface using tcell: a live voice monitor
// with the log stream underneath.
type Backend struct {
	screen      tcell.Screen
	ownsScreen  bool
	config      backend.Config
	logBuffer   *LogBuffer
	logLevel    *slog.LevelVar // Log pane filter
	previousLog *slog.Logger

	signals     chan os.Signal
	interrupted atomic.Bool
}

// New creates a terminal backend that drives the process' terminal.
func New() *Backend {
	return &Backend{ownsScreen: true}
}

// NewWithScreen creates a terminal backend drawing on screen, which Init
// will initialize.
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

// Init initializes the terminal backend
func (t *Backend) Init(config backend.Config) error {
	t.config = config

	if t.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to initialize terminal: %w", err)
		}
		t.screen = screen
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}

	// Logs go to the log pane while the screen is up.
	t.logBuffer = NewLogBuffer(logCapacity)
	t.logLevel = new(slog.LevelVar)
	if config.ShowDebug {
		t.logLevel.Set(slog.LevelDebug)
	}
	t.previousLog = slog.Default()
	slog.SetDefault(slog.New(NewLogBufferHandler(t.logBuffer, slog.LevelDebug)))

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	if t.ownsScreen {
		t.signals = make(chan os.Signal, 1)
		signal.Notify(t.signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)
		go t.handleSignals(t.signals)
	}

	slog.Info("Terminal backend initialized", "songs", len(config.Songs))
	return nil
}

// Update draws status and returns the actions for keys pressed since the
// last call.
func (t *Backend) Update(status backend.Status) ([]backend.Action, error) {
	var actions []backend.Action

	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if act, ok := t.processKeyEvent(ev); ok {
				actions = append(actions, act)
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}

	if t.interrupted.Load() {
		actions = append(actions, backend.Quit)
	}

	t.render(status)
	t.screen.Show()

	return actions, nil
}

// Cleanup cleans up terminal resources
func (t *Backend) Cleanup() error {
	if t.signals != nil {
		signal.Stop(t.signals)
		close(t.signals)
		t.signals = nil
	}
	if t.screen != nil {
		t.screen.Fini()
	}
	if t.previousLog != nil {
		slog.SetDefault(t.previousLog)
		t.previousLog = nil
	}
	return nil
}

func (t *Backend) handleSignals(signals <-chan os.Signal) {
	if _, ok := <-signals; ok {
		t.interrupted.Store(true)
	}
}

var keyMapping = map[tcell.Key]backend.Action{
	tcell.KeyEscape: backend.Quit,
	tcell.KeyCtrlC:  backend.Quit,
	tcell.KeyRight:  backend.NextSong,
	tcell.KeyLeft:   backend.PreviousSong,
	tcell.KeyEnter:  backend.TogglePlayback,
}

var runeMapping = map[rune]backend.Action{
	'q': backend.Quit,
	' ': backend.TogglePlayback,
	'n': backend.NextSong,
	'p': backend.PreviousSong,
}

func (t *Backend) processKeyEvent(ev *tcell.EventKey) (backend.Action, bool) {
	if act, ok := keyMapping[ev.Key()]; ok {
		return act, true
	}
	if ev.Key() != tcell.KeyRune {
		return 0, false
	}

	switch ev.Rune() {
	case '+', '=':
		t.changeLogLevel(1)
		return 0, false
	case '-', '_':
		t.changeLogLevel(-1)
		return 0, false
	}

	act, ok := runeMapping[ev.Rune()]
	if ok {
		slog.Debug("Key event (rune)", "rune", string(ev.Rune()), "action", act)
	}
	return act, ok
}

// changeLogLevel makes the log pane more (1) or less (-1) verbose.
func (t *Backend) changeLogLevel(direction int) {
	oldLevel := t.logLevel.Level()
	switch direction {
	case -1:
		switch oldLevel {
		case slog.LevelDebug:
			t.logLevel.Set(slog.LevelInfo)
		case slog.LevelInfo:
			t.logLevel.Set(slog.LevelWarn)
		case slog.LevelWarn:
			t.logLevel.Set(slog.LevelError)
		}
	case 1:
		switch oldLevel {
		case slog.LevelError:
			t.logLevel.Set(slog.LevelWarn)
		case slog.LevelWarn:
			t.logLevel.Set(slog.LevelInfo)
		case slog.LevelInfo:
			t.logLevel.Set(slog.LevelDebug)
		}
	}
	if oldLevel != t.logLevel.Level() {
		slog.Info("Log filter changed", "from", oldLevel, "to", t.logLevel.Level())
	}
}

func (t *Backend) render(status backend.Status) {
	t.screen.Clear()
	termWidth, termHeight := t.screen.Size()
	if termWidth < minTermWidth || termHeight < minTermHeight {
		msg := fmt.Sprintf("Terminal too small: need %dx%d", minTermWidth, minTermHeight)
		t.drawText(0, termHeight/2, termWidth, tcell.StyleDefault.Foreground(tcell.ColorRed), msg)
		return
	}

	t.drawHeader(status, termWidth)
	y := t.drawVoices(status, headerHeight, termWidth, termHeight)
	t.drawLogs(y+1, termWidth, termHeight)
	t.drawHelp(termWidth, termHeight)
}

func (t *Backend) drawHeader(status backend.Status, width int) {
	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	textStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	title := t.config.Title
	if title == "" {
		title = "squarewave"
	}
	if status.Song != "" {
		title = fmt.Sprintf("%s ─ %s (%d/%d)", title, status.Song, status.SongIndex+1, len(t.config.Songs))
	}
	t.drawText(0, 0, width, titleStyle, title)

	info := fmt.Sprintf("%-8s event %d/%d  %.0f BPM  %s  dropped %d",
		status.State, status.Event, status.EventCount, status.BPM,
		formatElapsed(status.Elapsed), status.Stats.DroppedNotes)
	t.drawText(0, 1, width, stateStyle(status.State), info)

	barWidth := width - 8
	filled := int(status.Progress() * float64(barWidth))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	t.drawText(0, 2, width, textStyle, fmt.Sprintf("%5.1f%% %s", status.Progress()*100, bar))
}

func (t *Backend) drawVoices(status backend.Status, startY, width, termHeight int) int {
	headStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	idleStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	liveStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)

	t.drawText(0, startY, width, headStyle, fmt.Sprintf("Voices %d/%d", status.ActiveVoices(), len(status.Voices)))

	y := startY + 1
	maxY := termHeight - 4 // Keep room for logs and help
	for _, v := range status.Voices {
		if y >= maxY {
			break
		}
		if v.Active {
			t.drawText(0, y, width, liveStyle, formatVoice(v, width))
		} else {
			t.drawText(0, y, width, idleStyle, fmt.Sprintf("%2d  ·  --", v.Slot))
		}
		y++
	}
	return y
}

func formatVoice(v voice.State, width int) string {
	line := fmt.Sprintf("%2d  ●  %-4s %8.2f Hz  amp %5d  ",
		v.Slot, backend.NoteName(v.Note), v.Frequency, v.Amplitude)

	barWidth := width - len([]rune(line))
	if barWidth <= 0 {
		return line
	}
	level := int(v.Amplitude)
	if level < 0 {
		level = -level
	}
	filled := level * barWidth / maxLevel
	return line + strings.Repeat("▮", filled)
}

func (t *Backend) drawLogs(startY, width, termHeight int) {
	availableHeight := termHeight - startY - 1
	if availableHeight <= 0 {
		return
	}

	allLogs := t.logBuffer.GetRecent(0)
	logs := make([]LogEntry, 0, availableHeight)
	for _, entry := range allLogs {
		if entry.Level >= t.logLevel.Level() {
			logs = append(logs, entry)
			if len(logs) >= availableHeight {
				break
			}
		}
	}

	debugStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	infoStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	warnStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	errStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	for i, logEntry := range logs {
		style := infoStyle
		switch {
		case logEntry.Level >= slog.LevelError:
			style = errStyle
		case logEntry.Level >= slog.LevelWarn:
			style = warnStyle
		case logEntry.Level < slog.LevelInfo:
			style = debugStyle
		}
		t.drawText(0, startY+i, width, style, FormatLogEntry(logEntry))
	}
}

func (t *Backend) drawHelp(width, termHeight int) {
	help := "q quit │ space stop/play │ n/p next/prev song │ +/- log level"
	t.drawText(0, termHeight-1, width, tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true), help)
}

// drawText writes text at (x, y), truncating with an ellipsis past width.
func (t *Backend) drawText(x, y, width int, style tcell.Style, text string) {
	runes := []rune(text)
	if len(runes) > width {
		if width > 3 {
			runes = append(runes[:width-3], '.', '.', '.')
		} else {
			runes = runes[:width]
		}
	}
	for i, r := range runes {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func stateStyle(state sequencer.State) tcell.Style {
	switch state {
	case sequencer.Playing:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case sequencer.Stopped, sequencer.Finished:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
}

func formatElapsed(d time.Duration) string {
	d = d.Round(100 * time.Millisecond)
	minutes := int(d / time.Minute)
	seconds := (d % time.Minute).Seconds()
	return fmt.Sprintf("%02d:%04.1f", minutes, seconds)
}
