package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/stride-cli/stride/internal/constants"
	"github.com/stride-cli/stride/internal/models"
	"github.com/stride-cli/stride/internal/storage"
	"github.com/stride-cli/stride/internal/streak"
	"github.com/stride-cli/stride/internal/validation"
)

type Item struct {
	Habit  models.Habit
	Stats  streak.Stats
	Status streak.DayStatus
}

func (i Item) Title() string {
	marker := "○"
	switch i.Status {
	case streak.StatusCompleted:
		marker = "✓"
	case streak.StatusMissed:
		marker = "✗"
	case streak.StatusNotScheduled:
		marker = "·"
	}
	return fmt.Sprintf("%s %s", marker, i.Habit.Name)
}

func (i Item) Description() string {
	return fmt.Sprintf("streak %d (best %d) — %s",
		i.Stats.CurrentStreak, i.Stats.LongestStreak, validation.FormatRule(i.Habit.Rule))
}

func (i Item) FilterValue() string { return i.Habit.Name }

type KeyMap struct {
	Mark    key.Binding
	Miss    key.Binding
	Unmark  key.Binding
	Archive key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Mark: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mark done"),
		),
		Miss: key.NewBinding(
			key.WithKeys("M"),
			key.WithHelp("M", "mark missed"),
		),
		Unmark: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "unmark"),
		),
		Archive: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "archive"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type Model struct {
	store storage.Provider
	user  models.User
	list  list.Model
	keys  KeyMap
	today string
	err   error
}

func New(store storage.Provider, user models.User) (Model, error) {
	m := Model{
		store: store,
		user:  user,
		keys:  DefaultKeyMap(),
		today: time.Now().Format(constants.DateFormat),
	}

	items, err := m.loadItems()
	if err != nil {
		return Model{}, err
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Habits — " + m.today
	l.SetShowHelp(true)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{m.keys.Mark, m.keys.Miss, m.keys.Unmark, m.keys.Archive}
	}
	m.list = l

	return m, nil
}

func (m *Model) loadItems() ([]list.Item, error) {
	habits, err := m.store.GetAllHabits(m.user.ID, false, false)
	if err != nil {
		return nil, err
	}

	items := make([]list.Item, len(habits))
	for i, h := range habits {
		entries, err := m.store.GetEntriesForHabit(h.ID)
		if err != nil {
			return nil, err
		}
		items[i] = Item{
			Habit:  h,
			Stats:  streak.ComputeStats(h, entries, m.today),
			Status: streak.ClassifyDate(h, m.today, entries, m.today),
		}
	}
	return items, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Mark):
			return m.writeEntry(true), nil
		case key.Matches(msg, m.keys.Miss):
			return m.writeEntry(false), nil
		case key.Matches(msg, m.keys.Unmark):
			return m.clearEntry(), nil
		case key.Matches(msg, m.keys.Archive):
			return m.archiveSelected(), nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) selected() (Item, bool) {
	item, ok := m.list.SelectedItem().(Item)
	return item, ok
}

func (m Model) writeEntry(completed bool) Model {
	item, ok := m.selected()
	if !ok {
		return m
	}

	now := time.Now()
	entry := models.Entry{
		ID:        uuid.New().String(),
		HabitID:   item.Habit.ID,
		UserID:    m.user.ID,
		Day:       m.today,
		Completed: completed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.store.UpsertEntry(entry); err != nil {
		m.err = err
		return m
	}
	return m.refresh()
}

func (m Model) clearEntry() Model {
	item, ok := m.selected()
	if !ok {
		return m
	}
	// Clearing an unmarked day is a no-op, not an error worth showing.
	_ = m.store.DeleteEntry(item.Habit.ID, m.today)
	return m.refresh()
}

func (m Model) archiveSelected() Model {
	item, ok := m.selected()
	if !ok {
		return m
	}
	if err := m.store.ArchiveHabit(item.Habit.ID); err != nil {
		m.err = err
		return m
	}
	return m.refresh()
}

func (m Model) refresh() Model {
	items, err := m.loadItems()
	if err != nil {
		m.err = err
		return m
	}
	m.list.SetItems(items)
	m.err = nil
	return m
}
