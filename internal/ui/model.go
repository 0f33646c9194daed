package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eskui/overlay-control/internal/amount"
	"github.com/eskui/overlay-control/internal/banking"
	"github.com/eskui/overlay-control/internal/dropdown"
	"github.com/eskui/overlay-control/internal/host"
	"github.com/eskui/overlay-control/internal/logging"
	"github.com/eskui/overlay-control/internal/menu"
	"github.com/eskui/overlay-control/internal/notify"
	"github.com/eskui/overlay-control/internal/panel"
	"github.com/eskui/overlay-control/internal/prefs"
	"github.com/eskui/overlay-control/internal/settings"
	"github.com/eskui/overlay-control/internal/shop"
	"github.com/eskui/overlay-control/internal/theme"
	"github.com/eskui/overlay-control/internal/ui/command"
)

type msgHandler func(tea.Msg) tea.Cmd

// shopZone is the focused region of the shop screen.
type shopZone int

const (
	zoneItems shopZone = iota
	zoneCart
)

// Model implements the Bubble Tea model for the overlay.
type Model struct {
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	styles *theme.Styles

	client   *host.Client
	listener *host.Listener
	bus      *command.Bus

	prefsStore *prefs.Store
	prefs      settings.Snapshot

	registry *panel.Registry
	stack    *menu.Stack

	amountPanel *amount.Panel
	// amountReturn is the panel to restore when the amount prompt was opened
	// on behalf of another panel (banking deposit/withdraw).
	amountReturn panel.ID

	drop    *dropdown.Panel
	session *settings.Session
	bank    *banking.State

	flow               *shop.Flow
	shopFocus          shopZone
	shopItemCursor     int
	shopCartCursor     int
	confirmClear       bool
	payCursor          int
	insufficientWarned bool

	pendingTransfer *banking.Transaction

	center        *notify.Center
	notifyTicking bool

	spinner  spinner.Model
	progress progress.Model

	dragging bool
	dragX    int
	dragY    int

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI around the host transport and stored prefs.
func NewModel(client *host.Client, listener *host.Listener, store *prefs.Store, saved settings.Snapshot, width, height int, showFooter, verbose bool) *Model {
	m := &Model{
		client:      client,
		listener:    listener,
		bus:         command.New(),
		prefsStore:  store,
		prefs:       saved,
		styles:      theme.ForDarkMode(saved.DarkMode),
		stack:       &menu.Stack{},
		amountPanel: amount.New(),
		drop:        dropdown.New(),
		bank:        &banking.State{},
		flow:        &shop.Flow{},
		center:      notify.NewCenter(),
		showFooter:  showFooter,
		verbose:     verbose,
	}
	m.registry = panel.NewRegistry(m.onVisibility)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	if m.styles.Loading != nil {
		sp.Style = *m.styles.Loading
	}
	m.spinner = sp
	m.progress = progress.New(progress.WithDefaultGradient())

	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}

	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.listener == nil {
		return nil
	}
	return waitForHostEvent(m.listener)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	// Unrouted messages (textinput blink, etc.) flow to the focused input.
	if cmd := m.updateFocusedInput(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(hostEventMsg{}):      m.handleHostEventMsg,
		reflect.TypeOf(hostDoneMsg{}):       m.handleHostDoneMsg,
		reflect.TypeOf(panel.TickMsg{}):     m.handlePanelTickMsg,
		reflect.TypeOf(balancesLoadedMsg{}): m.handleBalancesLoadedMsg,
		reflect.TypeOf(taxRatesLoadedMsg{}): m.handleTaxRatesLoadedMsg,
		reflect.TypeOf(checkoutResultMsg{}): m.handleCheckoutResultMsg,
		reflect.TypeOf(outcomeMsg{}):        m.handleOutcomeMsg,
		reflect.TypeOf(notify.ExpireMsg{}):  m.handleNotifyExpireMsg,
		reflect.TypeOf(notify.RemoveMsg{}):  m.handleNotifyRemoveMsg,
		reflect.TypeOf(notifyFrameMsg{}):    m.handleNotifyFrameMsg,
		reflect.TypeOf(dragSettleMsg{}):     m.handleDragSettleMsg,
		reflect.TypeOf(spinner.TickMsg{}):   m.handleSpinnerTickMsg,
		reflect.TypeOf(command.Result{}):    m.handleCommandResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// updateFocusedInput forwards non-key messages to whichever text input is
// live so cursor blinking keeps working.
func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	switch m.registry.Active() {
	case panel.Amount:
		return m.amountPanel.Update(msg)
	case panel.Transfer:
		return m.bank.Transfer.Update(msg)
	}
	return nil
}

// onVisibility is the registry's visible-edge hook. The host is told about
// the hidden edge via the close callback at the call sites that own it, so
// this only traces the transition.
func (m *Model) onVisibility(visible bool) tea.Cmd {
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	return nil
}

func (m *Model) handleHostDoneMsg(tea.Msg) tea.Cmd {
	return tea.Quit
}

func (m *Model) handleCommandResultMsg(msg tea.Msg) tea.Cmd {
	result := msg.(command.Result)
	if result.Err != nil {
		logging.Error(result.Err)
		return nil
	}
	if m.verbose {
		m.infoMsg = result.Endpoint
		m.infoExpire = time.Now().Add(2 * time.Second)
	}
	return nil
}

func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	if m.flow.Screen != shop.ScreenProcessing || m.registry.Active() != panel.Shop {
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}

func (m *Model) handleDragSettleMsg(tea.Msg) tea.Cmd {
	m.dragging = false
	m.registry.SetDragging(false)
	return nil
}

// ensureNotifyTicker keeps a coarse repaint ticker alive while toasts exist.
func (m *Model) ensureNotifyTicker() tea.Cmd {
	if m.notifyTicking || len(m.center.Active()) == 0 {
		return nil
	}
	m.notifyTicking = true
	return notifyFrame()
}

func (m *Model) handleNotifyFrameMsg(tea.Msg) tea.Cmd {
	if len(m.center.Active()) == 0 {
		m.notifyTicking = false
		return nil
	}
	return notifyFrame()
}

func (m *Model) handleNotifyExpireMsg(msg tea.Msg) tea.Cmd {
	return m.center.Close(msg.(notify.ExpireMsg).ID)
}

func (m *Model) handleNotifyRemoveMsg(msg tea.Msg) tea.Cmd {
	m.center.Remove(msg.(notify.RemoveMsg).ID)
	return nil
}

func (m *Model) handlePanelTickMsg(msg tea.Msg) tea.Cmd {
	return m.registry.Advance(msg.(panel.TickMsg))
}

// toast raises a local notification.
func (m *Model) toast(kind notify.Type, title, message string) tea.Cmd {
	_, cmd := m.center.Create(notify.Spec{Type: kind, Title: title, Message: message})
	return tea.Batch(cmd, m.ensureNotifyTicker())
}

// closeAndRelease hides the active panel and, once the close animation
// completes, tells the host to release input focus.
func (m *Model) closeAndRelease(after ...tea.Cmd) tea.Cmd {
	return m.registry.CloseCurrent(func() tea.Cmd {
		cmds := append([]tea.Cmd{}, after...)
		cmds = append(cmds, m.post("close", func(ctx context.Context) error {
			return m.client.Close(ctx)
		}))
		return tea.Batch(cmds...)
	})
}
