package ui

import (
	"context"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mikaw/roost/internal/config"
	"github.com/mikaw/roost/internal/directory"
	"github.com/mikaw/roost/internal/location"
	"github.com/mikaw/roost/internal/prefs"
	"github.com/mikaw/roost/internal/search"
	"github.com/mikaw/roost/internal/ui/dropdown"
)

// focusTarget identifies which search field, if any, holds keyboard focus.
type focusTarget int

const (
	focusNone focusTarget = iota
	focusLocation
	focusListing
)

const (
	locationFieldID search.InstanceID = "location"
	listingFieldID  search.InstanceID = "listings"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    directory.Searcher
	Locations *location.Store
	Config    *config.Config
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    directory.Searcher
	locations *location.Store
	config    *config.Config
	prefsPath string

	// UI state
	keys     keyMap
	theme    Theme
	focus    focusTarget
	width    int
	height   int
	ready    bool
	showHelp bool

	// Search fields share one registry so only one list is ever open.
	registry      *search.Registry
	locationField dropdown.Model[directory.Location]
	listingField  dropdown.Model[directory.Listing]

	// Data state
	selection   location.Selection
	locationErr error
	chosen      *directory.Listing
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:       ctx,
		client:    opts.Client,
		locations: opts.Locations,
		config:    opts.Config,
		prefsPath: prefsPath,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(themeName),
		registry:  search.NewRegistry(),
	}
	m.locationField = m.newLocationField()
	m.listingField = m.newListingField()
	return m
}

func (m *Model) newLocationField() dropdown.Model[directory.Location] {
	client := m.client
	opts := dropdown.Options[directory.Location]{
		ID:       locationFieldID,
		Registry: m.registry,
		Fetch: func(ctx context.Context, query string) ([]directory.Location, error) {
			return client.SearchLocations(ctx, query)
		},
		DisplayText:    directory.Location.DisplayName,
		Placeholder:    "City or area",
		EmptyMessage:   "No matching locations",
		LoadingMessage: "Searching locations...",
	}
	if m.config != nil {
		opts.Debounce = m.config.Debounce
		opts.BlurGrace = m.config.BlurGrace
	}
	return dropdown.New(opts)
}

func (m *Model) newListingField() dropdown.Model[directory.Listing] {
	client := m.client
	store := m.locations
	opts := dropdown.Options[directory.Listing]{
		ID:       listingFieldID,
		Registry: m.registry,
		Fetch: func(ctx context.Context, query string) ([]directory.Listing, error) {
			return client.SearchListings(ctx, query, store.Current().Location.ID)
		},
		DisplayText:    func(l directory.Listing) string { return l.Title },
		RenderItem:     directory.Listing.DisplayName,
		Placeholder:    "What are you looking for?",
		EmptyMessage:   "No listings found",
		LoadingMessage: "Searching listings...",
		MinQueryLength: 2,
		// Listing suggestions only make sense once there is a query.
		DisableOpenOnFocus: true,
	}
	if m.config != nil {
		opts.Debounce = m.config.Debounce
		opts.BlurGrace = m.config.BlurGrace
	}
	return dropdown.New(opts)
}

// resetListingField replaces the listing search field so results cached for
// the previous location cannot be served for the new one.
func (m *Model) resetListingField() {
	m.listingField.Teardown()
	m.listingField = m.newListingField()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return reconcileCmd(m.ctx, m.locations)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case selectionMsg:
		m.selection = msg.sel
		m.locationErr = msg.err
		if msg.sel.Location.Valid() {
			m.locationField.SetValue(msg.sel.Location.DisplayName())
		}
		return m, nil

	case dropdown.SelectedMsg[directory.Location]:
		if err := m.locations.Select(msg.Item); err != nil {
			log.Printf("ui: persist location: %v", err)
		}
		m.selection = m.locations.Current()
		m.locationErr = nil
		m.resetListingField()
		return m, nil

	case dropdown.SelectedMsg[directory.Listing]:
		item := msg.Item
		m.chosen = &item
		return m, nil
	}

	// Everything else is dropdown traffic (debounce ticks, fetch results,
	// blur timers); each field filters by its own instance id.
	return m.forward(msg)
}

func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.locationField, cmd = m.locationField.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	m.listingField, cmd = m.listingField.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes the help overlay.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, m.keys.Tab):
		return m.cycleFocus(1)
	case key.Matches(msg, m.keys.ShiftTab):
		return m.cycleFocus(-1)
	}

	// A focused field owns the keyboard; it handles esc itself.
	if m.focus != focusNone {
		return m.forwardKeyToFocused(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.saveThemePref()
		return m, nil

	case key.Matches(msg, m.keys.ClearLocation):
		if err := m.locations.Clear(); err != nil {
			log.Printf("ui: clear location: %v", err)
		}
		m.selection = m.locations.Current()
		m.locationField.SetValue("")
		m.resetListingField()
		// Fall back to the backend default for the cleared slot.
		return m, reconcileCmd(m.ctx, m.locations)
	}

	return m, nil
}

func (m Model) forwardKeyToFocused(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusLocation:
		m.locationField, cmd = m.locationField.Update(msg)
		if !m.locationField.Focused() {
			m.focus = focusNone
		}
	case focusListing:
		m.listingField, cmd = m.listingField.Update(msg)
		if !m.listingField.Focused() {
			m.focus = focusNone
		}
	}
	return m, cmd
}

// cycleFocus moves keyboard focus through none -> location -> listings.
func (m Model) cycleFocus(dir int) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch m.focus {
	case focusLocation:
		cmds = append(cmds, m.locationField.Blur())
	case focusListing:
		cmds = append(cmds, m.listingField.Blur())
	}

	m.focus = focusTarget((int(m.focus) + dir + 3) % 3)

	switch m.focus {
	case focusLocation:
		cmds = append(cmds, m.locationField.Focus())
	case focusListing:
		cmds = append(cmds, m.listingField.Focus())
	}
	return m, tea.Batch(cmds...)
}

// saveThemePref persists the theme without clobbering the stored location.
func (m Model) saveThemePref() {
	if m.prefsPath == "" {
		return
	}
	p, _ := prefs.Load(m.prefsPath)
	p.Theme = m.theme.Name
	if err := prefs.Save(m.prefsPath, p); err != nil {
		log.Printf("ui: save theme pref: %v", err)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

func (m Model) renderMain() string {
	styles := m.theme.Styles()
	fieldStyles := m.theme.DropdownStyles()

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel(styles, "Location", focusLocation))
	b.WriteString("\n")
	b.WriteString(m.locationField.View(fieldStyles, m.width))
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel(styles, "Listings", focusListing))
	b.WriteString("\n")
	b.WriteString(m.listingField.View(fieldStyles, m.width))

	if m.chosen != nil {
		b.WriteString("\n\n")
		b.WriteString(m.renderChosen(styles))
	}

	return b.String()
}

func (m Model) fieldLabel(styles Styles, label string, target focusTarget) string {
	if m.focus == target {
		return styles.LabelFocus.Render("▸ " + label)
	}
	return styles.Label.Render("  " + label)
}

// Messages

type selectionMsg struct {
	sel location.Selection
	err error
}

// Commands

func reconcileCmd(ctx context.Context, store *location.Store) tea.Cmd {
	return func() tea.Msg {
		sel, err := store.Reconcile(ctx)
		return selectionMsg{sel: sel, err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
