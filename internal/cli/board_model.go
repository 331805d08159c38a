package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkozlov/orderboard/internal/board"
	"github.com/dkozlov/orderboard/internal/dates"
	"github.com/dkozlov/orderboard/internal/domain"
)

type boardMode int

const (
	modeNormal boardMode = iota
	modePickTarget
	modeConfirm
)

// Messages flowing into the board model.
type (
	ordersRefreshedMsg struct{ orders []domain.Order }
	accessCheckedMsg   struct{ editable bool }
	moveRequestedMsg   struct {
		needsConfirm bool
		err          error
	}
	moveResolvedMsg struct{ err error }
	toggleDoneMsg   struct{ err error }
)

// boardKeys defines the keybindings of the board view.
type boardKeys struct {
	PrevDay   key.Binding
	NextDay   key.Binding
	PrevOrder key.Binding
	NextOrder key.Binding
	Move      key.Binding
	Toggle    key.Binding
	Refresh   key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	Quit      key.Binding
}

func newBoardKeys() boardKeys {
	return boardKeys{
		PrevDay:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev day")),
		NextDay:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next day")),
		PrevOrder: key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "prev order")),
		NextOrder: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "next order")),
		Move:      key.NewBinding(key.WithKeys("m", "enter"), key.WithHelp("m", "move order")),
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle delivered")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Confirm:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		Cancel:    key.NewBinding(key.WithKeys("esc", "n"), key.WithHelp("esc", "no/cancel")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// boardModel is the bubbletea model for the scheduling board.
type boardModel struct {
	app  *App
	keys boardKeys

	today   time.Time
	orders  []domain.Order
	days    []time.Time
	buckets map[string][]domain.Order

	editable bool
	dayIdx   int
	orderIdx int

	mode      boardMode
	moveOrder domain.Order
	moveFrom  string
	targetIdx int

	status string

	vp      viewport.Model
	width   int
	height  int
	visible bool
}

func newBoardModel(app *App) boardModel {
	return boardModel{
		app:     app,
		keys:    newBoardKeys(),
		today:   dates.Midnight(time.Now()),
		buckets: map[string][]domain.Order{},
		vp:      viewport.New(0, 0),
	}
}

func (m boardModel) Init() tea.Cmd {
	return tea.Batch(m.reloadCmd(), m.checkAccessCmd())
}

// setOrders replaces the model's snapshot and recomputes the derived
// window and buckets.
func (m *boardModel) setOrders(orders []domain.Order) {
	m.orders = orders
	m.days = board.Window(m.today, orders)
	m.buckets = board.Buckets(orders)
	m.clampCursor()
}

func (m *boardModel) clampCursor() {
	if len(m.days) == 0 {
		m.dayIdx, m.orderIdx = 0, 0
		return
	}
	if m.dayIdx >= len(m.days) {
		m.dayIdx = len(m.days) - 1
	}
	if m.targetIdx >= len(m.days) {
		m.targetIdx = len(m.days) - 1
	}
	bucket := m.currentBucket()
	if m.orderIdx >= len(bucket) {
		m.orderIdx = 0
	}
}

func (m boardModel) currentDayKey() string {
	if len(m.days) == 0 {
		return ""
	}
	return dates.FormatKey(m.days[m.dayIdx])
}

func (m boardModel) currentBucket() []domain.Order {
	return m.buckets[m.currentDayKey()]
}

func (m boardModel) selectedOrder() (domain.Order, bool) {
	bucket := m.currentBucket()
	if m.orderIdx < 0 || m.orderIdx >= len(bucket) {
		return domain.Order{}, false
	}
	return bucket[m.orderIdx], true
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m boardModel) reloadCmd() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		orders, err := app.Board.Reload(context.Background())
		if err != nil {
			// Keep whatever the board is showing; the next refresh retries.
			return ordersRefreshedMsg{orders: app.Board.Snapshot()}
		}
		return ordersRefreshedMsg{orders: orders}
	}
}

func (m boardModel) checkAccessCmd() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		return accessCheckedMsg{editable: app.Board.HasEditAccess(context.Background())}
	}
}

func (m boardModel) requestMoveCmd(order domain.Order, source, target string) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		needsConfirm, err := app.Board.RequestMove(context.Background(), order.OrderNumber, source, target)
		return moveRequestedMsg{needsConfirm: needsConfirm, err: err}
	}
}

func (m boardModel) resolveMoveCmd(propagate bool) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		var err error
		if propagate {
			err = app.Board.ConfirmMove(context.Background())
		} else {
			err = app.Board.DeclineMove(context.Background())
		}
		return moveResolvedMsg{err: err}
	}
}

func (m boardModel) toggleCmd(order domain.Order) tea.Cmd {
	app := m.app
	checked := !order.Status.Delivered()
	return func() tea.Msg {
		err := app.Board.Toggle(context.Background(), order.OrderNumber, checked)
		return toggleDoneMsg{err: err}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - 3
		m.visible = true
		m.vp.SetContent(m.renderDays())
		return m, nil

	case ordersRefreshedMsg:
		m.setOrders(msg.orders)
		m.vp.SetContent(m.renderDays())
		return m, nil

	case accessCheckedMsg:
		m.editable = msg.editable
		return m, nil

	case moveRequestedMsg:
		if msg.err != nil {
			m.mode = modeNormal
			m.status = "Ошибка при перемещении заказа"
			return m, nil
		}
		if msg.needsConfirm {
			m.mode = modeConfirm
			return m, nil
		}
		m.mode = modeNormal
		m.status = ""
		return m, m.syncFromSnapshotCmd()

	case moveResolvedMsg:
		m.mode = modeNormal
		if msg.err != nil {
			m.status = "Ошибка при обновлении заказа"
			return m, nil
		}
		m.status = ""
		return m, m.syncFromSnapshotCmd()

	case toggleDoneMsg:
		if msg.err != nil {
			m.status = "Ошибка при обновлении статуса заказа"
			return m, nil
		}
		m.status = ""
		return m, m.syncFromSnapshotCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// syncFromSnapshotCmd re-renders from the service snapshot, which mutations
// have already replaced via their reload step.
func (m boardModel) syncFromSnapshotCmd() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		return ordersRefreshedMsg{orders: app.Board.Snapshot()}
	}
}

func (m boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	switch m.mode {
	case modeConfirm:
		switch {
		case key.Matches(msg, m.keys.Confirm):
			return m, m.resolveMoveCmd(true)
		case key.Matches(msg, m.keys.Cancel):
			// Declining still moves the order, without the delivery date.
			return m, m.resolveMoveCmd(false)
		}
		return m, nil

	case modePickTarget:
		switch {
		case key.Matches(msg, m.keys.PrevDay):
			if m.targetIdx > 0 {
				m.targetIdx--
			}
		case key.Matches(msg, m.keys.NextDay):
			if m.targetIdx < len(m.days)-1 {
				m.targetIdx++
			}
		case key.Matches(msg, m.keys.Move):
			target := dates.FormatKey(m.days[m.targetIdx])
			return m, m.requestMoveCmd(m.moveOrder, m.moveFrom, target)
		case key.Matches(msg, m.keys.Cancel):
			m.mode = modeNormal
		}
		m.vp.SetContent(m.renderDays())
		return m, nil
	}

	// modeNormal
	switch {
	case key.Matches(msg, m.keys.PrevDay):
		if m.dayIdx > 0 {
			m.dayIdx--
			m.orderIdx = 0
		}
	case key.Matches(msg, m.keys.NextDay):
		if m.dayIdx < len(m.days)-1 {
			m.dayIdx++
			m.orderIdx = 0
		}
	case key.Matches(msg, m.keys.PrevOrder):
		if m.orderIdx > 0 {
			m.orderIdx--
		}
	case key.Matches(msg, m.keys.NextOrder):
		if m.orderIdx < len(m.currentBucket())-1 {
			m.orderIdx++
		}
	case key.Matches(msg, m.keys.Move):
		if order, ok := m.selectedOrder(); ok && m.editable {
			m.mode = modePickTarget
			m.moveOrder = order
			m.moveFrom = m.currentDayKey()
			m.targetIdx = m.dayIdx
		}
	case key.Matches(msg, m.keys.Toggle):
		if order, ok := m.selectedOrder(); ok && m.editable {
			return m, m.toggleCmd(order)
		}
	case key.Matches(msg, m.keys.Refresh):
		return m, m.reloadCmd()
	}

	m.vp.SetContent(m.renderDays())
	return m, nil
}
