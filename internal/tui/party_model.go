package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/partyplanner/internal/app"
	"github.com/rshade/partyplanner/internal/party"
	"github.com/rshade/partyplanner/internal/state"
	listview "github.com/rshade/partyplanner/internal/tui/list"
)

// ViewState is the screen the model is showing.
type ViewState int

const (
	// ViewStateLoading shows the spinner while the party list is fetched.
	ViewStateLoading ViewState = iota
	// ViewStateList shows the list and details panes.
	ViewStateList
	// ViewStateQuitting is entered on q or ctrl+c.
	ViewStateQuitting
)

// partiesLoadedMsg is sent when the startup list fetch finishes.
type partiesLoadedMsg struct {
	err error
}

// partyDetailLoadedMsg is sent when a detail fetch finishes, successful or not.
type partyDetailLoadedMsg struct {
	id  int
	err error
}

// PartyPlannerModel is the Bubble Tea model for the browse command.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type PartyPlannerModel struct {
	ctx   context.Context
	app   *app.App
	state ViewState

	// snap is refreshed from the app after every fetch; View reads only it.
	snap state.Snapshot
	list *listview.VirtualListModel[party.Party]

	loadingState *LoadingState

	width  int
	height int
}

// NewPartyPlannerModel returns a model in the loading state. Init starts the
// list fetch.
func NewPartyPlannerModel(ctx context.Context, a *app.App) PartyPlannerModel {
	m := PartyPlannerModel{
		ctx:          ctx,
		app:          a,
		state:        ViewStateLoading,
		snap:         a.Snapshot(),
		loadingState: NewLoadingState(),
		width:        defaultWidth,
		height:       defaultHeight,
	}
	m.rebuildList()
	return m
}

// Init starts the spinner and the startup fetch.
func (m PartyPlannerModel) Init() tea.Cmd {
	return tea.Batch(m.loadingState.Init(), m.loadCmd())
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m PartyPlannerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuildList()
		return m, nil

	case partiesLoadedMsg:
		m.state = ViewStateList
		m.refresh()
		return m, nil

	case partyDetailLoadedMsg:
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case keyQuit, keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
	}

	switch m.state {
	case ViewStateLoading:
		return m, m.loadingState.Update(msg)
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m PartyPlannerModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == keyEnter {
			item := m.list.GetSelectedItem()
			if item == nil {
				return m, nil
			}
			return m, m.selectCmd(item.ID)
		}
		m.list.Update(msg)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m PartyPlannerModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.X >= m.listWidth() {
		return m, nil
	}
	idx, ok := m.list.RowAt(msg.Y - headerLines)
	if !ok {
		return m, nil
	}
	m.list.SetSelected(idx)
	return m, m.selectCmd(m.snap.Parties[idx].ID)
}

// loadCmd runs the startup list fetch.
func (m PartyPlannerModel) loadCmd() tea.Cmd {
	ctx, a := m.ctx, m.app
	return func() tea.Msg {
		return partiesLoadedMsg{err: a.Load(ctx)}
	}
}

// selectCmd records the click now and resolves it in the command goroutine,
// so the latest click wins regardless of response order.
func (m PartyPlannerModel) selectCmd(id int) tea.Cmd {
	ctx, a := m.ctx, m.app
	sel := a.NewSelection(id)
	return func() tea.Msg {
		return partyDetailLoadedMsg{id: sel.ID, err: a.Resolve(ctx, sel)}
	}
}

// refresh re-reads the snapshot after a fetch.
func (m *PartyPlannerModel) refresh() {
	m.snap = m.app.Snapshot()
	m.rebuildList()
}

// rebuildList recreates the list for the current snapshot and size, keeping
// the cursor where possible.
func (m *PartyPlannerModel) rebuildList() {
	cursor := 0
	if m.list != nil {
		cursor = m.list.Selected()
	}

	width := m.listWidth()
	rows := m.height - headerLines - footerLines
	if rows < minListRows {
		rows = minListRows
	}

	m.list = listview.NewVirtualListModel(m.snap.Parties, rows, width, func(p party.Party, highlighted bool) string {
		return renderRow(p, highlighted, width)
	})
	m.list.SetSelected(cursor)
}

func (m PartyPlannerModel) listWidth() int {
	w := m.width * listPaneRatio / 100 //nolint:mnd // Percentage calculation.
	if w < minListWidth {
		w = minListWidth
	}
	return w
}

// State returns the current view state.
func (m PartyPlannerModel) State() ViewState {
	return m.state
}

// Cursor returns the index of the highlighted row.
func (m PartyPlannerModel) Cursor() int {
	return m.list.Selected()
}

// Snapshot returns the state the model last rendered from.
func (m PartyPlannerModel) Snapshot() state.Snapshot {
	return m.snap
}
