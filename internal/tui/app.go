package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/jobboard/internal/domain"
	"github.com/mmcdole/jobboard/internal/listing"
	"github.com/mmcdole/jobboard/internal/tui/components"
	"github.com/mmcdole/jobboard/internal/tui/styles"
)

// Options are the UI settings read from config
type Options struct {
	Theme      string // "light" or "dark"
	FilterMode string // listing.FilterModeSubstring or listing.FilterModeFuzzy
}

// Model is the main Bubble Tea model for the application
type Model struct {
	Ready bool

	ctx    context.Context
	cancel context.CancelFunc
	repos  Repositories
	logger *slog.Logger

	// Mounted listing; replaced on every tab switch
	Tab     Tab
	view    collectionView
	signals chan stateChangedMsg
	state   viewState

	// Theme is not persisted; t toggles it for the session
	Theme      string
	Styles     *styles.Styles
	FilterMode string

	// UI Components
	List        components.ItemList
	Form        components.Form
	Detail      components.Detail
	FilterInput textinput.Model
	Filtering   bool
	Spinner     spinner.Model
	Help        help.Model

	// Dimensions
	Width  int
	Height int

	// Status bar
	StatusMsg   string
	StatusIsErr bool
	statusSeq   int
}

// NewModel creates the model and mounts the jobs view. Nothing is fetched until Init.
func NewModel(ctx context.Context, repos Repositories, opts Options, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(ctx)

	fi := textinput.New()
	fi.Prompt = "/ "
	fi.Placeholder = "Filter by name"
	fi.CharLimit = 100

	m := Model{
		ctx:         ctx,
		cancel:      cancel,
		repos:       repos,
		logger:      logger,
		Tab:         TabJobs,
		signals:     make(chan stateChangedMsg, 1),
		FilterMode:  opts.FilterMode,
		List:        components.NewItemList(),
		Form:        components.NewForm(),
		Detail:      components.NewDetail(),
		FilterInput: fi,
		Spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		Help:        help.New(),
	}
	m.setTheme(opts.Theme)
	m.view = mount(m.Tab, repos, NewChannelObserver(m.signals), logger)
	m.refresh()
	return m
}

// Init loads the mounted view and starts listening for its updates
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadCmd(),
		WaitForStateCmd(m.signals),
		m.Spinner.Tick,
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case stateChangedMsg:
		m.refresh()
		return m, WaitForStateCmd(m.signals)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case CreateDoneMsg:
		return m.handleCreateDone(msg)

	case DetailLoadedMsg:
		if msg.Tab != m.Tab || !m.Detail.IsVisible() || m.Detail.ItemID() != msg.ID {
			return m, nil // Stale: the pane moved on
		}
		if msg.Err != nil {
			m.logger.Error("failed to load item", "error", msg.Err, "id", msg.ID)
			m.Detail.SetError(domain.ErrorMessage(msg.Err))
		} else {
			m.Detail.SetItem(msg.Item)
		}
		return m, nil

	case StatusMsg:
		return m, m.setStatus(msg.Message, msg.IsError)

	case ClearStatusMsg:
		if msg.Seq == m.statusSeq {
			m.StatusMsg = ""
			m.StatusIsErr = false
		}
		return m, nil
	}

	// Cursor blink and other input plumbing
	var cmd tea.Cmd
	switch {
	case m.Form.IsVisible():
		m.Form, cmd, _ = m.Form.Update(msg)
	case m.Filtering:
		m.FilterInput, cmd = m.FilterInput.Update(msg)
	}
	return m, cmd
}

func (m Model) handleCreateDone(msg CreateDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Tab != m.Tab || errors.Is(msg.Err, listing.ErrClosed) {
		return m, nil
	}
	if msg.Err != nil {
		if m.Form.IsVisible() {
			m.Form.SetError(domain.ErrorMessage(msg.Err), nil)
		}
		return m, nil
	}

	m.Form.Hide()
	m.view.DismissError()
	return m, m.setStatus(fmt.Sprintf("Created %q", msg.Title), false)
}

// refresh copies the mounted view's snapshot into the list
func (m *Model) refresh() {
	m.state = m.view.State()
	m.List.SetItems(m.state.Visible, m.state.Query)
}

// switchTab unmounts the current view and mounts a fresh one for tab
func (m *Model) switchTab(tab Tab) tea.Cmd {
	m.view.Close()

	m.Tab = tab
	m.view = mount(tab, m.repos, NewChannelObserver(m.signals), m.logger)
	m.Filtering = false
	m.FilterInput.Reset()
	m.FilterInput.Blur()
	m.Form.Hide()
	m.Detail.Hide()
	m.List = components.NewItemList()
	m.updateLayout()
	m.refresh()
	return m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	view, ctx := m.view, m.ctx
	return func() tea.Msg {
		view.Load(ctx)
		return nil
	}
}

func (m *Model) applyFilter() {
	m.view.ApplyFilter(listing.NewFilter(m.FilterMode, m.FilterInput.Value()))
	m.refresh()
}

func (m *Model) setTheme(name string) {
	p := styles.PaletteFor(name)
	m.Theme = p.Name
	m.Styles = styles.New(p)
	m.Spinner.Style = m.Styles.Spinner
	m.FilterInput.PromptStyle = m.Styles.FilterPrompt
	m.Help.Styles.ShortKey = m.Styles.HelpKey
	m.Help.Styles.ShortDesc = m.Styles.HelpDesc
	m.Help.Styles.ShortSeparator = m.Styles.HelpDesc
	m.Help.Styles.FullKey = m.Styles.HelpKey
	m.Help.Styles.FullDesc = m.Styles.HelpDesc
	m.Help.Styles.FullSeparator = m.Styles.HelpDesc
}

func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.StatusMsg = msg
	m.StatusIsErr = isErr
	return ClearStatusCmd(m.statusSeq)
}

// shutdown unmounts the view and waits for its requests to finish
func (m Model) shutdown() {
	m.view.Close()
	m.view.Wait()
	m.cancel()
}

// Run starts the terminal UI and blocks until it exits
func Run(ctx context.Context, repos Repositories, opts Options, logger *slog.Logger) error {
	m := NewModel(ctx, repos, opts, logger)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.shutdown()
	} else {
		m.shutdown()
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
