package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-todo-fetch/internal/logger"
	"github.com/MKhiriev/go-todo-fetch/internal/service"
	"github.com/MKhiriev/go-todo-fetch/internal/store"
	"github.com/MKhiriev/go-todo-fetch/models"
)

const statusTTL = 2 * time.Second

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type mainLoopModel struct {
	ctx       context.Context
	tasks     service.TaskListService
	logger    *logger.Logger
	buildInfo models.AppBuildInfo

	updates     <-chan store.Snapshot
	unsubscribe func()

	state     store.Snapshot
	idx       int
	input     textinput.Model
	editInput textinput.Model
	editing   bool

	loading bool
	pending int
	spinner spinner.Model
	status  string

	showBuildInfo bool
}

func newMainLoopModel(ctx context.Context, tasks service.TaskListService, buildInfo models.AppBuildInfo, log *logger.Logger) mainLoopModel {
	input := textinput.New()
	input.Placeholder = "What needs to be done?"
	input.Prompt = "+ "
	input.Focus()

	editInput := textinput.New()
	editInput.Prompt = "✎ "

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	updates, unsubscribe := tasks.Subscribe()

	return mainLoopModel{
		ctx:         ctx,
		tasks:       tasks,
		logger:      log,
		buildInfo:   buildInfo,
		updates:     updates,
		unsubscribe: unsubscribe,
		state:       tasks.Snapshot(),
		input:       input,
		editInput:   editInput,
		loading:     true,
		pending:     1,
		spinner:     s,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(
		remoteCmd(m.ctx, opLoad, m.tasks.Load),
		waitForStateChange(m.updates),
		textinput.Blink,
		m.spinner.Tick,
	)
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg:
		m.refresh()
		return m, waitForStateChange(m.updates)

	case subscriptionClosedMsg:
		return m, nil

	case opDoneMsg:
		if m.pending > 0 {
			m.pending--
		}
		if msg.op == opLoad {
			m.loading = false
		}
		if msg.err != nil {
			m.logger.Debug().Err(msg.err).Str("op", string(msg.op)).Msg("operation finished with error")
		}
		if msg.op == opAdd && msg.err == nil {
			m.input.SetValue(m.tasks.Snapshot().Input)
			m.input.CursorEnd()
		}
		m.refresh()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.logger.Debug().Err(msg.err).Msg("copy to clipboard failed")
			return m, nil
		}
		m.status = "Copied to clipboard"
		return m, clearStatusAfter(statusTTL)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m.updateInputs(msg)
}

func (m mainLoopModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.unsubscribe()
		return m, tea.Quit
	}

	if key.Matches(msg, keys.about) {
		m.showBuildInfo = !m.showBuildInfo
		return m, nil
	}
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.editing {
		return m.updateEditKeys(msg)
	}

	switch {
	case key.Matches(msg, keys.enter):
		label := m.input.Value()
		cmd := m.cmdRemote(opAdd, func(ctx context.Context) error { return m.tasks.Add(ctx, label) })
		return m, cmd

	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
		return m, nil

	case key.Matches(msg, keys.down):
		if m.idx < len(m.state.Tasks)-1 {
			m.idx++
		}
		return m, nil

	case key.Matches(msg, keys.edit):
		if err := m.tasks.BeginEdit(m.idx); err != nil {
			return m, nil
		}
		m.refresh()
		return m, textinput.Blink

	case key.Matches(msg, keys.delete):
		if len(m.state.Tasks) == 0 {
			return m, nil
		}
		index := m.idx
		cmd := m.cmdRemote(opDelete, func(ctx context.Context) error { return m.tasks.Delete(ctx, index) })
		return m, cmd

	case key.Matches(msg, keys.reload):
		m.loading = true
		cmd := m.cmdRemote(opLoad, m.tasks.Load)
		return m, cmd

	case key.Matches(msg, keys.copy):
		task, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, cmdCopy(task.Label)
	}

	return m.updateInputs(msg)
}

func (m mainLoopModel) updateEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		cmd := m.cmdRemote(opCommit, m.tasks.CommitEdit)
		return m, cmd

	case key.Matches(msg, keys.esc):
		m.tasks.CancelEdit()
		m.refresh()
		return m, nil
	}

	return m.updateInputs(msg)
}

// updateInputs forwards msg to the focused text input and mirrors its value
// into the store.
func (m mainLoopModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.editing {
		before := m.editInput.Value()
		m.editInput, cmd = m.editInput.Update(msg)
		if v := m.editInput.Value(); v != before {
			m.tasks.SetEditLabel(v)
		}
		return m, cmd
	}

	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.tasks.SetInput(v)
	}
	return m, cmd
}

// refresh re-reads the store and realigns the cursor and the input focus.
func (m *mainLoopModel) refresh() {
	m.state = m.tasks.Snapshot()

	if m.idx >= len(m.state.Tasks) {
		m.idx = len(m.state.Tasks) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}

	switch {
	case m.state.Edit != nil && !m.editing:
		m.editing = true
		m.editInput.SetValue(m.state.Edit.Label)
		m.editInput.CursorEnd()
		m.editInput.Focus()
		m.input.Blur()
	case m.state.Edit == nil && m.editing:
		m.editing = false
		m.editInput.Blur()
		m.editInput.SetValue("")
		m.input.Focus()
	}
}

func (m mainLoopModel) selected() (models.Task, bool) {
	if m.idx < 0 || m.idx >= len(m.state.Tasks) {
		return models.Task{}, false
	}
	return m.state.Tasks[m.idx], true
}

// cmdRemote counts op as pending and schedules it.
func (m *mainLoopModel) cmdRemote(op opKind, fn func(ctx context.Context) error) tea.Cmd {
	m.pending++
	return remoteCmd(m.ctx, op, fn)
}

// remoteCmd runs fn off the UI goroutine and reports its end.
func remoteCmd(ctx context.Context, op opKind, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{op: op, err: fn(ctx)}
	}
}

func waitForStateChange(updates <-chan store.Snapshot) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-updates; !ok {
			return subscriptionClosedMsg{}
		}
		return stateChangedMsg{}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m mainLoopModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.loading && len(m.state.Tasks) == 0:
		b.WriteString("Loading...\n")
	default:
		for i, task := range m.state.Tasks {
			line := taskLine(task)
			if i == m.idx {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		if len(m.state.Tasks) > 0 {
			b.WriteString("\n")
		}
		b.WriteString(taskCount(len(m.state.Tasks)))
		b.WriteString("\n")
	}

	if m.editing {
		b.WriteString("\n")
		b.WriteString(overlayBoxStyle.Render("Edit task\n\n" + m.editInput.View()))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	title := "TODOS"
	if m.pending > 0 {
		title += "  " + m.spinner.View()
	}

	hotKeys := "enter: add  ↑/↓: move  ctrl+e: edit  ctrl+d: delete  ctrl+r: reload  ctrl+y: copy  f1: about"
	if m.editing {
		hotKeys = "enter: save  esc: cancel"
	}

	return appStyle.Render(renderPage(title, b.String(), hotKeys))
}
