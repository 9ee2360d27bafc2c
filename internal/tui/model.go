package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lifelens/lifelens/internal/coach"
	"github.com/lifelens/lifelens/internal/models"
	"github.com/lifelens/lifelens/internal/report"
	"github.com/lifelens/lifelens/internal/storage"
)

type tab int

const (
	tabDashboard tab = iota
	tabMission
	tabCoach
	tabProfile
	tabCount
)

var tabNames = [tabCount]string{"Dashboard", "Mission", "Coach", "Profile"}

type keyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Refresh, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab},
		{k.Refresh, k.Quit},
	}
}

var defaultKeys = keyMap{
	NextTab: key.NewBinding(
		key.WithKeys("tab", "right"),
		key.WithHelp("tab", "next tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab", "left"),
		key.WithHelp("shift+tab", "previous tab"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Model is the read-only TUI over the stored records. All mutation happens
// through the CLI commands; the TUI only renders and refreshes.
type Model struct {
	store  storage.Provider
	keys   keyMap
	help   help.Model
	active tab
	width  int

	entries []models.DailyEntry
	mission models.MissionState
	profile models.UserProfile
	insight models.CoachInsight
	summary report.Summary
	loadErr error
}

func NewModel(store storage.Provider) *Model {
	m := &Model{
		store: store,
		keys:  defaultKeys,
		help:  help.New(),
	}
	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// refresh re-reads all records and recomputes the derived views.
func (m *Model) refresh() {
	m.loadErr = nil

	entries, err := m.store.GetEntries()
	if err != nil {
		m.loadErr = err
		return
	}
	mission, err := m.store.GetMissionState()
	if err != nil {
		m.loadErr = err
		return
	}
	profile, err := m.store.GetUserProfile()
	if err != nil {
		m.loadErr = err
		return
	}

	m.entries = entries
	m.mission = mission
	m.profile = profile
	m.insight = coach.Generate(entries)
	m.summary = report.Summarize(entries, time.Now())
}
