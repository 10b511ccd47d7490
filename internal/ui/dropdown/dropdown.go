package dropdown

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/mikaw/roost/internal/search"
)

// State is the widget's observable lifecycle state.
type State int

const (
	StateClosed State = iota
	StateLoading
	StateLoaded
	StateEmpty
)

const (
	defaultDebounce   = 500 * time.Millisecond
	defaultBlurGrace  = 150 * time.Millisecond
	defaultMaxVisible = 8
)

// Fetcher performs the search for one widget instance. The context is
// cancelled when the query is superseded or the widget is torn down.
type Fetcher[T any] func(ctx context.Context, query string) ([]T, error)

// Options configure a dropdown instance. Zero values give the standard
// behavior: open-and-fetch on focus, hide the list after a selection,
// 500ms debounce, no minimum query length.
type Options[T any] struct {
	// ID identifies the instance in the registry. Leave empty for a random
	// id; tests should always supply one to stay deterministic.
	ID       search.InstanceID
	Registry *search.Registry
	Fetch    Fetcher[T]

	// DisplayText projects an item to the text placed into the input on
	// selection. Required. RenderItem projects an item to its list row and
	// defaults to DisplayText.
	DisplayText func(T) string
	RenderItem  func(T) string

	Placeholder    string
	EmptyMessage   string
	LoadingMessage string

	Debounce       time.Duration
	BlurGrace      time.Duration
	MinQueryLength int
	MaxVisible     int

	// DisableOpenOnFocus stops focus from opening the list and fetching
	// the (possibly empty) current query.
	DisableOpenOnFocus bool
	// KeepOpenOnSelect leaves the list open after a selection instead of
	// closing and releasing the active slot.
	KeepOpenOnSelect bool

	// InitialData pre-seeds the empty-query result set so the first focus
	// shows suggestions without a fetch.
	InitialData []T
}

// forceCloseFlag is shared between the registry callback and whichever copy
// of the model is current; Bubble Tea passes models by value.
type forceCloseFlag struct {
	requested bool
}

// Model is a typeahead search dropdown component.
type Model[T any] struct {
	id       search.InstanceID
	registry *search.Registry
	fetch    Fetcher[T]

	displayText func(T) string
	renderItem  func(T) string

	input textinput.Model
	cache *search.Cache[T]
	deb   *search.Debouncer

	state     State
	results   []T
	highlight int
	lastQuery string

	// queryGen guards stale fetch completions; blurGen guards stale blur
	// grace timers.
	queryGen int
	blurGen  int
	focused  bool

	minQuery     int
	blurGrace    time.Duration
	openOnFocus  bool
	hideOnSelect bool
	maxVisible   int

	emptyMessage   string
	loadingMessage string

	forced      *forceCloseFlag
	unregister  func()
	ctx         context.Context
	cancelFetch context.CancelFunc
}

// New builds and registers a dropdown instance. Call Teardown when the
// instance is permanently removed.
func New[T any](opts Options[T]) Model[T] {
	id := opts.ID
	if id == "" {
		id = search.InstanceID(uuid.NewString())
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	blurGrace := opts.BlurGrace
	if blurGrace <= 0 {
		blurGrace = defaultBlurGrace
	}
	maxVisible := opts.MaxVisible
	if maxVisible <= 0 {
		maxVisible = defaultMaxVisible
	}
	renderItem := opts.RenderItem
	if renderItem == nil {
		renderItem = opts.DisplayText
	}
	emptyMessage := opts.EmptyMessage
	if emptyMessage == "" {
		emptyMessage = "No results"
	}
	loadingMessage := opts.LoadingMessage
	if loadingMessage == "" {
		loadingMessage = "Searching..."
	}

	input := textinput.New()
	input.Placeholder = opts.Placeholder
	input.Prompt = "> "

	m := Model[T]{
		id:             id,
		registry:       opts.Registry,
		fetch:          opts.Fetch,
		displayText:    opts.DisplayText,
		renderItem:     renderItem,
		input:          input,
		cache:          search.NewCache[T](),
		deb:            search.NewDebouncer(debounce),
		minQuery:       opts.MinQueryLength,
		blurGrace:      blurGrace,
		openOnFocus:    !opts.DisableOpenOnFocus,
		hideOnSelect:   !opts.KeepOpenOnSelect,
		maxVisible:     maxVisible,
		emptyMessage:   emptyMessage,
		loadingMessage: loadingMessage,
		forced:         &forceCloseFlag{},
		ctx:            context.Background(),
	}

	if opts.InitialData != nil {
		m.cache.Put("", opts.InitialData)
	}

	if m.registry != nil {
		forced := m.forced
		m.unregister = m.registry.Register(id, func() {
			forced.requested = true
		})
	}

	return m
}

// ID returns the instance id.
func (m Model[T]) ID() search.InstanceID {
	return m.id
}

// State returns the widget's current lifecycle state, accounting for a
// pending force-close that has not been consumed by Update yet.
func (m Model[T]) State() State {
	if m.forced.requested {
		return StateClosed
	}
	return m.state
}

// Open reports whether the result list is showing in any form.
func (m Model[T]) Open() bool {
	return m.State() != StateClosed
}

// Focused reports whether the input has keyboard focus.
func (m Model[T]) Focused() bool {
	return m.focused
}

// Value returns the raw input text.
func (m Model[T]) Value() string {
	return m.input.Value()
}

// SetValue replaces the input text without triggering a fetch.
func (m *Model[T]) SetValue(v string) {
	m.input.SetValue(v)
	m.input.CursorEnd()
}

// Results returns the result set currently backing the open list.
func (m Model[T]) Results() []T {
	return m.results
}

// Focus gives the widget keyboard focus, claims the active slot (closing
// all sibling instances), and, unless configured otherwise, opens the list
// for the current query.
func (m *Model[T]) Focus() tea.Cmd {
	m.focused = true
	m.blurGen++ // a pending blur close no longer applies
	cmds := []tea.Cmd{m.input.Focus()}

	if m.registry != nil {
		m.registry.Activate(m.id)
		// Focus re-acquired the slot; any stale force-close is void.
		m.forced.requested = false
	}

	if m.openOnFocus {
		var cmd tea.Cmd
		*m, cmd = m.performQuery()
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Blur drops keyboard focus and starts the grace window. The widget only
// closes if focus has not returned when the window elapses, which tolerates
// focus briefly leaving while the user is picking a result.
func (m *Model[T]) Blur() tea.Cmd {
	m.focused = false
	m.input.Blur()

	m.blurGen++
	token := m.blurGen
	id := m.id
	return tea.Tick(m.blurGrace, func(time.Time) tea.Msg {
		return blurMsg{id: id, token: token}
	})
}

// Teardown unregisters the instance and cancels any pending work. The model
// must not be used afterwards.
func (m *Model[T]) Teardown() {
	m.deb.Cancel()
	if m.cancelFetch != nil {
		m.cancelFetch()
		m.cancelFetch = nil
	}
	if m.registry != nil {
		m.registry.Deactivate(m.id)
	}
	if m.unregister != nil {
		m.unregister()
		m.unregister = nil
	}
}

// Update advances the widget state machine. It must see every message the
// program receives; messages for sibling instances are ignored by id.
func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	// A sibling claimed the active slot: close unconditionally, regardless
	// of local focus or in-flight work.
	if m.forced.requested {
		m.forced.requested = false
		m = m.closeList()
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		return m.handleKey(msg)

	case debounceMsg:
		if msg.id != m.id || !m.deb.Current(msg.token) || !m.focused {
			return m, nil
		}
		return m.performQuery()

	case resultsMsg[T]:
		if msg.id != m.id {
			return m, nil
		}
		return m.applyResults(msg), nil

	case blurMsg:
		if msg.id != m.id || msg.token != m.blurGen || m.focused {
			return m, nil
		}
		m = m.closeList()
		if m.registry != nil {
			m.registry.Deactivate(m.id)
		}
		return m, nil
	}

	return m, nil
}

func (m Model[T]) handleKey(msg tea.KeyMsg) (Model[T], tea.Cmd) {
	switch msg.String() {
	case "esc":
		m = m.closeList()
		m.deb.Cancel()
		m.focused = false
		m.input.Blur()
		if m.registry != nil {
			m.registry.Deactivate(m.id)
		}
		return m, nil

	case "up":
		if m.state == StateLoaded && m.highlight > 0 {
			m.highlight--
		}
		return m, nil

	case "down":
		if m.state == StateLoaded && m.highlight < len(m.results)-1 {
			m.highlight++
		}
		return m, nil

	case "enter":
		if m.state == StateLoaded && m.highlight < len(m.results) {
			return m.selectItem(m.results[m.highlight])
		}
		return m, nil
	}

	before := m.input.Value()
	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, inputCmd
	}

	// Input changed: coalesce the burst and fetch after quiescence.
	token := m.deb.Schedule()
	id := m.id
	debounceCmd := tea.Tick(m.deb.Delay(), func(time.Time) tea.Msg {
		return debounceMsg{id: id, token: token}
	})
	return m, tea.Batch(inputCmd, debounceCmd)
}

// performQuery resolves the current query against the cache, or kicks off a
// fetch on a miss. Cache hits open synchronously with no loading flash.
func (m Model[T]) performQuery() (Model[T], tea.Cmd) {
	query := search.Normalize(m.input.Value())
	if len([]rune(query)) < m.minQuery {
		return m.closeList(), nil
	}
	m.lastQuery = query

	if results, ok := m.cache.Get(query); ok {
		// A hit is only rendered if this instance still holds the slot; an
		// instance that lost exclusivity must not re-open itself.
		if !m.stillActive() {
			return m, nil
		}
		return m.openWith(results), nil
	}

	m.state = StateLoading
	m.results = nil
	m.highlight = 0

	if m.cancelFetch != nil {
		m.cancelFetch() // abort the superseded in-flight request
	}
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancelFetch = cancel

	m.queryGen++
	gen := m.queryGen
	id := m.id
	fetch := m.fetch
	return m, func() tea.Msg {
		results, err := fetch(ctx, query)
		return resultsMsg[T]{id: id, gen: gen, query: query, results: results, err: err}
	}
}

// applyResults applies a fetch completion after checking it still matches
// the widget's current generation, query, and active-slot status. Stale
// completions are discarded silently; that is the correctness mechanism,
// not an error path.
func (m Model[T]) applyResults(msg resultsMsg[T]) Model[T] {
	if msg.gen != m.queryGen {
		return m
	}
	if msg.query != search.Normalize(m.input.Value()) {
		return m
	}
	if !m.stillActive() {
		return m
	}

	if msg.err != nil {
		// Failures surface as an empty list and are never cached, so the
		// same query is retried on the next keystroke or focus.
		log.Printf("dropdown %s: fetch %q failed: %v", m.id, msg.query, msg.err)
		m.state = StateEmpty
		m.results = nil
		m.highlight = 0
		return m
	}

	m.cache.Put(msg.query, msg.results)
	return m.openWith(msg.results)
}

func (m Model[T]) selectItem(item T) (Model[T], tea.Cmd) {
	text := m.displayText(item)
	m.input.SetValue(text)
	m.input.CursorEnd()
	m.deb.Cancel() // SetValue must not trigger a fetch

	if m.hideOnSelect {
		m = m.closeList()
		if m.registry != nil {
			m.registry.Deactivate(m.id)
		}
	}

	id := m.id
	return m, func() tea.Msg {
		return SelectedMsg[T]{ID: id, Item: item, DisplayText: text}
	}
}

func (m Model[T]) openWith(results []T) Model[T] {
	m.results = results
	m.highlight = 0
	if len(results) == 0 {
		m.state = StateEmpty
	} else {
		m.state = StateLoaded
	}
	return m
}

func (m Model[T]) closeList() Model[T] {
	m.state = StateClosed
	m.results = nil
	m.highlight = 0
	// A closed list has no use for an in-flight fetch; abort it rather than
	// waiting for the completion to be discarded.
	if m.cancelFetch != nil {
		m.cancelFetch()
		m.cancelFetch = nil
	}
	return m
}

func (m Model[T]) stillActive() bool {
	if m.registry == nil {
		return true
	}
	return m.registry.ActiveID() == m.id
}
