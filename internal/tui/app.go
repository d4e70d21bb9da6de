package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/service"
	"github.com/mmcdole/popcorn/internal/tui/components"
	"github.com/mmcdole/popcorn/internal/tui/keybus"
	"github.com/mmcdole/popcorn/internal/tui/styles"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
)

// Pane identifies the focused area
type Pane int

const (
	PaneSearch Pane = iota
	PaneResults
	PaneRight // detail panel or watched list
)

// Window titles
const (
	DefaultWindowTitle = "usePopcorn"
	detailTitlePrefix  = "MOVIE | "
)

// Layout constants
const (
	// Header line + footer line
	ChromeHeight = 2

	LeftColumnPercent = 50
	MinColumnWidth    = 20

	statusDuration = 3 * time.Second
	tickInterval   = 100 * time.Millisecond
)

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Services
	Session *service.Session
	Bus     *keybus.Bus
	logger  *slog.Logger

	// UI Components
	Theme    styles.Theme
	Search   components.SearchBar
	Results  components.ResultsList
	Detail   components.DetailPanel
	Watched  components.WatchedList
	LeftBox  components.Box
	RightBox components.Box

	// Dimensions
	Width  int
	Height int

	// UI state
	Focus        Pane
	StatusMsg    string
	StatusIsErr  bool
	SpinnerFrame int
	WindowTitle  string

	// Scoped key subscriptions
	unsubEscape      func()
	unsubEnterSearch func()
	unsubEnterSelect func()

	initCmd tea.Cmd
}

// NewModel creates a new application model. A non-empty query starts a search right away.
func NewModel(session *service.Session, logger *slog.Logger, query string) Model {
	if logger == nil {
		logger = slog.Default()
	}

	m := Model{
		State:       StateBrowsing,
		Session:     session,
		Bus:         keybus.New(),
		logger:      logger,
		Search:      components.NewSearchBar(),
		Results:     components.NewResultsList(),
		Detail:      components.NewDetailPanel(),
		Watched:     components.NewWatchedList(),
		WindowTitle: DefaultWindowTitle,
	}
	m.applyTheme()
	m.setFocus(PaneSearch)
	m.refreshWatched()

	if query != "" {
		m.Search.SetValue(query)
		m.initCmd = m.setQuery(query)
	}
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.WindowTitle),
		textinput.Blink,
		TickCmd(tickInterval),
		m.initCmd,
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

	case TickMsg:
		m.SpinnerFrame++
		m.Results.SetSpinnerFrame(m.SpinnerFrame)
		m.Detail.SetSpinnerFrame(m.SpinnerFrame)
		return m, TickCmd(tickInterval)

	case SearchResultMsg:
		if m.Session.ApplySearch(msg.Result) {
			m.syncSearch()
		}
		return m, nil

	case DetailResultMsg:
		m.Session.ApplyDetail(msg.Result)
		return m, m.syncDetail()

	case CloseDetailMsg:
		return m, m.closeDetail()

	case FocusSearchMsg:
		m.Search.SetValue("")
		cmd := m.setQuery("")
		return m, tea.Batch(m.setFocus(PaneSearch), cmd)

	case SelectResultMsg:
		if res, ok := m.Results.SelectedResult(); ok {
			return m, m.selectMovie(res.ID)
		}
		return m, nil

	case StatusMsg:
		m.StatusMsg = msg.Message
		m.StatusIsErr = msg.IsError
		return m, ClearStatusCmd(statusDuration)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Route remaining messages (cursor blink) to the search input
	var cmd tea.Cmd
	m.Search, cmd = m.Search.Update(msg)
	return m, cmd
}

// === Search ===

// setQuery forwards the query to the session and starts the lookup
func (m *Model) setQuery(query string) tea.Cmd {
	ticket, ok := m.Session.SetQuery(query)
	m.syncSearch()
	if !ok {
		return nil
	}
	return SearchCmd(m.Session, ticket)
}

// syncSearch copies the search state into the results list
func (m *Model) syncSearch() {
	st := m.Session.SearchState()
	m.Results.SetLoading(st.Loading)
	m.Results.SetError(st.Err)
	if !st.Loading {
		m.Results.SetResults(st.Data)
	}
}

// === Detail ===

// selectMovie toggles the detail for id
func (m *Model) selectMovie(id string) tea.Cmd {
	ticket, ok := m.Session.Select(id)
	if !ok {
		return m.closeDetail()
	}

	m.Detail.Open()
	m.Results.SetSelectedID(id)
	if m.unsubEscape == nil {
		m.unsubEscape = m.Bus.Subscribe(Keys.Escape, func(tea.KeyMsg) tea.Cmd {
			return msgCmd(CloseDetailMsg{})
		})
	}
	return tea.Batch(DetailCmd(m.Session, ticket), m.syncDetail())
}

// syncDetail copies the detail state into the panel and updates the window title
func (m *Model) syncDetail() tea.Cmd {
	id := m.Session.SelectedID()
	if id == "" {
		return nil
	}

	st := m.Session.DetailState()
	m.Detail.SetLoading(st.Loading)
	m.Detail.SetDetail(st.Data)
	m.Detail.SetWatched(m.Session.WatchedEntry(id))

	if !st.Loading && st.Data.Title != "" {
		return m.setWindowTitle(detailTitlePrefix + st.Data.Title)
	}
	return nil
}

// closeDetail closes the open movie and drops the Escape subscription
func (m *Model) closeDetail() tea.Cmd {
	m.Session.Close()
	m.Results.SetSelectedID("")
	if m.unsubEscape != nil {
		m.unsubEscape()
		m.unsubEscape = nil
	}
	return m.setWindowTitle(DefaultWindowTitle)
}

func (m *Model) setWindowTitle(title string) tea.Cmd {
	if m.WindowTitle == title {
		return nil
	}
	m.WindowTitle = title
	return tea.SetWindowTitle(title)
}

// === Watched ===

// addWatched commits the rating of the open movie
func (m *Model) addWatched() tea.Cmd {
	if !m.Detail.CanAdd() {
		return nil
	}

	rating := m.Detail.Rating()
	detail := m.Detail.Detail()
	err := m.Session.AddWatched(context.Background(), detail, rating.Rating(), rating.Decisions())
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyWatched) {
			return msgCmd(StatusMsg{Message: detail.Title + " is already in your list"})
		}
		m.logger.Error("failed to add watched", "id", detail.ID, "error", err)
		return msgCmd(StatusMsg{Message: "Failed to save: " + err.Error(), IsError: true})
	}

	m.refreshWatched()
	return tea.Batch(
		m.closeDetail(),
		msgCmd(StatusMsg{Message: "Added " + detail.Title}),
	)
}

// deleteWatched removes the entry under the cursor
func (m *Model) deleteWatched() tea.Cmd {
	entry, ok := m.Watched.SelectedEntry()
	if !ok {
		return nil
	}
	if err := m.Session.DeleteWatched(context.Background(), entry.ID); err != nil {
		m.logger.Error("failed to delete watched", "id", entry.ID, "error", err)
		return msgCmd(StatusMsg{Message: "Failed to save: " + err.Error(), IsError: true})
	}
	m.refreshWatched()
	return msgCmd(StatusMsg{Message: "Removed " + entry.Title})
}

// refreshWatched recomputes the summary and filtered entries
func (m *Model) refreshWatched() {
	m.Watched.SetSummary(m.Session.Watched().Summary())
	m.Watched.SetEntries(m.Session.FilterWatched(m.Watched.FilterQuery()))
}

// === Theme ===

// toggleTheme flips and persists the palette
func (m *Model) toggleTheme() tea.Cmd {
	if err := m.Session.ToggleTheme(context.Background()); err != nil {
		m.logger.Error("failed to save theme", "error", err)
		return msgCmd(StatusMsg{Message: "Failed to save theme", IsError: true})
	}
	m.applyTheme()
	return nil
}

func (m *Model) applyTheme() {
	m.Theme = styles.NewTheme(m.Session.Dark())
	m.Search.SetTheme(m.Theme)
	m.Watched.SetTheme(m.Theme)
}

// === Focus ===

// setFocus moves keyboard focus and rebinds the focus-scoped Enter handlers
func (m *Model) setFocus(p Pane) tea.Cmd {
	m.Focus = p
	m.Results.SetFocused(p == PaneResults)
	m.Detail.SetFocused(p == PaneRight)
	m.Watched.SetFocused(p == PaneRight)

	for _, unsub := range []func(){m.unsubEnterSelect, m.unsubEnterSearch} {
		if unsub != nil {
			unsub()
		}
	}
	m.unsubEnterSearch, m.unsubEnterSelect = nil, nil

	// Enter outside the input focuses it; the results list overrides it to select
	if p != PaneSearch {
		m.unsubEnterSearch = m.Bus.Subscribe(Keys.Enter, func(tea.KeyMsg) tea.Cmd {
			return msgCmd(FocusSearchMsg{})
		})
	}
	if p == PaneResults {
		m.unsubEnterSelect = m.Bus.Subscribe(Keys.Enter, func(tea.KeyMsg) tea.Cmd {
			return msgCmd(SelectResultMsg{})
		})
	}

	if p == PaneSearch {
		return m.Search.Focus()
	}
	m.Search.Blur()
	return nil
}

// nextFocus cycles search -> results -> right
func (m Model) nextFocus() Pane {
	switch m.Focus {
	case PaneSearch:
		return PaneResults
	case PaneResults:
		return PaneRight
	default:
		return PaneSearch
	}
}

// Shutdown cancels in-flight lookups
func (m Model) Shutdown() {
	m.Session.Shutdown()
}
