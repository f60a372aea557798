// Package ui is the live timetable view: the grid redrawn at every minute
// boundary and whenever the page changes on disk.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"go.uber.org/zap"

	"tableflip.dev/timetable/pkg/app"
	"tableflip.dev/timetable/pkg/clock"
	"tableflip.dev/timetable/pkg/layout"
	"tableflip.dev/timetable/pkg/lecture"
	"tableflip.dev/timetable/pkg/printers"
	"tableflip.dev/timetable/pkg/store"
	"tableflip.dev/timetable/pkg/timeutil"
)

const helpText = "q quit · a agenda · r reload · ↑/↓ scroll"

// chromeHeight is the rows taken by the header, frame border and footer.
const chromeHeight = 5

type tickMsg struct{ at time.Time }

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct{ event store.Event }

type watchStoppedMsg struct{}

// Model is the Bubble Tea model of the live view.
type Model struct {
	svc  *app.Service
	ctx  context.Context
	log  *zap.Logger
	key  string
	sess *app.Session

	at time.Time
	tt *layout.Timetable

	err    error
	status string
	agenda bool

	theme    Theme
	viewport viewport.Model
	width    int
	height   int

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New opens key and builds the view model at the instant now.
func New(ctx context.Context, svc *app.Service, key string, now time.Time) (*Model, error) {
	sess, err := svc.Open(key)
	if err != nil {
		return nil, err
	}
	log := svc.Log
	if log == nil {
		log = zap.NewNop()
	}
	m := &Model{
		svc:      svc,
		ctx:      ctx,
		log:      log,
		key:      key,
		sess:     sess,
		at:       now,
		theme:    DefaultTheme(),
		viewport: viewport.New(viewport.WithWidth(80), viewport.WithHeight(20)),
	}
	if !sess.Saved() {
		m.status = "page not saved yet"
	}
	m.recompute()
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return startWatchCmd(m.ctx, m.svc)
}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil || svc.Store == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applySizes()
	case tickMsg:
		m.at = msg.at
		m.recompute()
	case watchStartedMsg:
		if msg.err != nil {
			m.log.Warn("watch store", zap.Error(msg.err))
			m.status = "not watching for changes: " + msg.err.Error()
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		if msg.event.Affects(m.sess.Key()) {
			m.reload()
		}
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.stopWatch()
			return m, tea.Quit
		case "a":
			m.agenda = !m.agenda
			m.render()
		case "r":
			m.reload()
		default:
			vp, cmd := m.viewport.Update(msg)
			m.viewport = vp
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) reload() {
	ok, err := m.sess.Reload()
	switch {
	case err != nil:
		m.log.Warn("reload page", zap.String("key", m.sess.Key()), zap.Error(err))
		m.status = "reload failed: " + err.Error()
	case !ok:
		m.status = "page removed from disk"
	default:
		m.status = "reloaded " + m.at.Format("15:04")
	}
	m.recompute()
}

func (m *Model) recompute() {
	m.tt, m.err = m.sess.Layout(m.at)
	m.render()
}

func (m *Model) applySizes() {
	if m.width == 0 || m.height == 0 {
		return
	}
	frameX := m.theme.Frame.GetHorizontalFrameSize()
	m.viewport.SetWidth(max(m.width-frameX, 1))
	m.viewport.SetHeight(max(m.height-chromeHeight, 1))
	m.render()
}

// render refreshes the viewport content from the current geometry.
func (m *Model) render() {
	if m.err != nil {
		m.viewport.SetContent(m.theme.Error.Render(m.err.Error()))
		return
	}
	if m.tt == nil {
		m.viewport.SetContent("")
		return
	}

	var b strings.Builder
	columns := max(len(m.tt.Columns), 1)
	pp := &printers.PrettyPrint{
		Out:         &b,
		Height:      max(m.viewport.Height()-2, 4),
		ColumnWidth: max((m.viewport.Width()-10)/columns-1, 8),
	}
	if m.agenda {
		pp.Agenda(m.tt)
	} else {
		b.WriteString(pp.Grid(m.tt))
	}
	m.viewport.SetContent(strings.TrimRight(b.String(), "\n"))
}

func (m *Model) View() string {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Title.Render("timetable"),
		"  ",
		m.theme.Page.Render(m.sess.Title()),
		"  ",
		m.theme.Clock.Render(fmt.Sprintf("%s %s", lecture.FullName(lecture.FromTime(m.at)), m.at.Format("15:04"))),
	)

	body := m.theme.Frame.Render(m.viewport.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		m.statusLine(),
		m.theme.Help.Render(helpText),
	)
}

func (m *Model) statusLine() string {
	if m.err != nil {
		return m.theme.Error.Render("ERR: " + m.err.Error())
	}
	var parts []string
	if m.tt != nil {
		for _, c := range m.tt.CurrentCells() {
			parts = append(parts, m.theme.Now.Render("now: "+titleOf(c.Lecture)))
		}
	}
	if occ, err := layout.Next(m.sess.State(), m.at, 24*time.Hour); err == nil {
		for _, o := range occ {
			if o.InProgress(m.at) {
				continue
			}
			parts = append(parts, fmt.Sprintf("next: %s in %s", titleOf(o.Lecture), timeutil.FormatWindow(o.Start.Sub(m.at))))
			break
		}
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return m.theme.Status.Render(strings.Join(parts, " · "))
}

func titleOf(l *lecture.Lecture) string {
	if strings.TrimSpace(l.Title) == "" {
		return "(untitled)"
	}
	return l.Title
}

// UI runs the live view until the user quits.
type UI struct {
	Service *app.Service
	Key     string
}

func (u *UI) Do(ctx context.Context) error {
	m, err := New(ctx, u.Service, u.Key, time.Now())
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	ticker, err := clock.Minutely(func(at time.Time) {
		p.Send(tickMsg{at: at})
	})
	if err != nil {
		return err
	}
	defer ticker.Stop()

	_, err = p.Run()
	m.stopWatch()
	return err
}
