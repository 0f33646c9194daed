package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eskui/overlay-control/internal/logging/events"
	"github.com/eskui/overlay-control/internal/menu"
	"github.com/eskui/overlay-control/internal/notify"
	"github.com/eskui/overlay-control/internal/panel"
	"github.com/eskui/overlay-control/internal/shop"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key := msg.(tea.KeyMsg)
	if key.String() == "ctrl+c" {
		return tea.Quit
	}

	switch m.registry.Active() {
	case panel.Amount:
		return m.handleAmountKeys(key)
	case panel.List:
		return m.handleListKeys(key)
	case panel.Dropdown:
		return m.handleDropdownKeys(key)
	case panel.Settings:
		return m.handleSettingsKeys(key)
	case panel.Banking:
		return m.handleBankingKeys(key)
	case panel.Transfer:
		return m.handleTransferKeys(key)
	case panel.Statement:
		return m.handleStatementKeys(key)
	case panel.Shop:
		return m.handleShopKeys(key)
	}
	return nil
}

// --- amount -----------------------------------------------------------------

func (m *Model) handleAmountKeys(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "up":
		m.amountPanel.Adjust(1)
		return nil
	case "down":
		m.amountPanel.Adjust(-1)
		return nil
	case "pgup":
		m.amountPanel.Adjust(10)
		return nil
	case "pgdown":
		m.amountPanel.Adjust(-10)
		return nil
	case "enter":
		cmd, ok := m.amountPanel.Submit()
		if !ok {
			return m.toast(notify.Warning, "Invalid amount", "Enter a positive number")
		}
		m.amountPanel.Blur()
		return cmd
	case "esc":
		m.amountPanel.Blur()
		if ret := m.amountReturn; ret != "" {
			m.amountReturn = ""
			return m.registry.Show(ret)
		}
		return m.closeAndRelease()
	default:
		return m.amountPanel.Update(key)
	}
}

// --- list -------------------------------------------------------------------

func (m *Model) handleListKeys(key tea.KeyMsg) tea.Cmd {
	frame := m.stack.Current()
	if frame == nil {
		return nil
	}
	switch key.String() {
	case "up":
		if frame.MoveCursor(-1) {
			events.UI.MenuCursor(frame.Title, frame.Cursor)
		}
		return nil
	case "down":
		if frame.MoveCursor(1) {
			events.UI.MenuCursor(frame.Title, frame.Cursor)
		}
		return nil
	case "enter":
		return m.selectListItem(frame)
	case "esc":
		if frame.Filter != "" {
			frame.ClearFilter()
			events.Filter.Cleared(frame.Title)
			return nil
		}
		return m.listEscape(frame)
	case "ctrl+u":
		frame.ClearFilter()
		events.Filter.Cleared(frame.Title)
		return nil
	case "backspace":
		if frame.BackspaceFilter() {
			events.Filter.Backspace(frame.Title, frame.Filter)
		}
		return nil
	default:
		if key.Type == tea.KeyRunes {
			frame.AppendFilter(string(key.Runes))
			events.Filter.Append(frame.Title, frame.Filter)
		}
		return nil
	}
}

func (m *Model) selectListItem(frame *menu.Frame) tea.Cmd {
	entry, ok := frame.Current()
	if !ok || entry.Item.Disabled {
		return nil
	}
	index, item := entry.Index, entry.Item
	switch item.Kind {
	case menu.Back:
		return m.submenuBack()
	case menu.Submenu:
		events.UI.MenuEnter(frame.Title, item.Label, index)
		return m.post("submenuSelect", func(ctx context.Context) error {
			return m.client.SubmenuSelect(ctx, index, item)
		})
	default:
		events.UI.MenuEnter(frame.Title, item.Label, index)
		// The selection callback fires only after the close animation lands.
		return m.closeAndRelease(m.post("listSelect", func(ctx context.Context) error {
			return m.client.ListSelect(ctx, index, item)
		}))
	}
}

// listEscape mirrors the back item when one exists: escape inside a submenu
// behaves exactly like selecting it.
func (m *Model) listEscape(frame *menu.Frame) tea.Cmd {
	if m.stack.Depth() > 1 {
		return m.submenuBack()
	}
	if _, ok := frame.BackEntry(); ok {
		return m.submenuBack()
	}
	return m.closeAndRelease()
}

func (m *Model) submenuBack() tea.Cmd {
	if parent, popped := m.stack.Pop(); popped {
		events.UI.MenuBack(parent.Title, m.stack.Depth())
		return m.post("submenuBack", func(ctx context.Context) error {
			return m.client.SubmenuBack(ctx)
		})
	}
	return m.closeAndRelease()
}

// --- dropdown ---------------------------------------------------------------

func (m *Model) handleDropdownKeys(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "up":
		m.drop.MoveCursor(-1)
		return nil
	case "down":
		m.drop.MoveCursor(1)
		return nil
	case " ", "space":
		m.drop.Toggle()
		return nil
	case "enter":
		if m.drop.ListOpen {
			m.drop.Choose()
			return nil
		}
		if index, value, ok := m.drop.Value(); ok {
			return m.closeAndRelease(m.post("dropdownSelect", func(ctx context.Context) error {
				return m.client.DropdownSelect(ctx, index, value)
			}))
		}
		return m.closeAndRelease()
	case "esc":
		if m.drop.CloseList() {
			return nil
		}
		return m.closeAndRelease()
	}
	return nil
}

// --- settings ---------------------------------------------------------------

func (m *Model) handleSettingsKeys(key tea.KeyMsg) tea.Cmd {
	if m.session == nil {
		return nil
	}
	switch key.String() {
	case "up":
		m.session.MoveCursor(-1)
		return nil
	case "down":
		m.session.MoveCursor(1)
		return nil
	case "left":
		m.session.AdjustCurrent(-1)
		m.applyPrefs(m.session.Current())
		return nil
	case "right":
		m.session.AdjustCurrent(1)
		m.applyPrefs(m.session.Current())
		return nil
	case " ", "space":
		m.session.ToggleCurrent()
		m.applyPrefs(m.session.Current())
		return nil
	case "enter":
		return m.saveSettings()
	case "esc":
		return m.cancelSettings()
	}
	return nil
}

// --- banking ----------------------------------------------------------------

func (m *Model) handleBankingKeys(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "up":
		m.bank.MoveCursor(-1)
		return nil
	case "down":
		m.bank.MoveCursor(1)
		return nil
	case "enter":
		return m.runBankingAction(bankingAction(m.bank.Cursor))
	case "d":
		return m.runBankingAction(actionDeposit)
	case "w":
		return m.runBankingAction(actionWithdraw)
	case "t":
		return m.runBankingAction(actionTransfer)
	case "s":
		return m.runBankingAction(actionStatement)
	case "esc":
		return m.closeAndRelease()
	}
	return nil
}

func (m *Model) handleTransferKeys(key tea.KeyMsg) tea.Cmd {
	form := &m.bank.Transfer
	if form.Done {
		switch key.String() {
		case "enter", "esc":
			return m.finishTransfer()
		}
		return nil
	}
	switch key.String() {
	case "tab", "down":
		return form.CycleFocus(false)
	case "shift+tab", "up":
		return form.CycleFocus(true)
	case "enter":
		return m.submitTransfer()
	case "esc":
		form.Blur()
		return m.registry.Show(panel.Banking)
	default:
		return form.Update(key)
	}
}

func (m *Model) handleStatementKeys(key tea.KeyMsg) tea.Cmd {
	st := &m.bank.Statement
	switch key.String() {
	case "f":
		st.CycleFilter()
		return nil
	case "o":
		st.CycleSort()
		return nil
	case "up":
		st.Scroll(-1, len(st.Rows(m.bank.All())), statementPageSize)
		return nil
	case "down":
		st.Scroll(1, len(st.Rows(m.bank.All())), statementPageSize)
		return nil
	case "esc":
		return m.registry.Show(panel.Banking)
	}
	return nil
}

// --- shop -------------------------------------------------------------------

func (m *Model) handleShopKeys(key tea.KeyMsg) tea.Cmd {
	switch m.flow.Screen {
	case shop.ScreenShop:
		return m.handleShopScreenKeys(key)
	case shop.ScreenPayment:
		return m.handlePaymentKeys(key)
	case shop.ScreenProcessing:
		return nil
	case shop.ScreenSuccess:
		return m.handleSuccessKeys(key)
	case shop.ScreenFailure:
		return m.handleFailureKeys(key)
	}
	return nil
}

func (m *Model) handleShopScreenKeys(key tea.KeyMsg) tea.Cmd {
	items := m.flow.Catalog.ItemsFor(m.flow.Category)
	switch key.String() {
	case "tab":
		if m.shopFocus == zoneItems {
			m.shopFocus = zoneCart
		} else {
			m.shopFocus = zoneItems
		}
		m.confirmClear = false
		return nil
	case "left":
		m.switchCategory(-1)
		return nil
	case "right":
		m.switchCategory(1)
		return nil
	case "up":
		m.moveShopCursor(-1, len(items))
		return nil
	case "down":
		m.moveShopCursor(1, len(items))
		return nil
	case "enter":
		if m.shopFocus == zoneItems && m.shopItemCursor < len(items) {
			m.flow.Cart.Add(items[m.shopItemCursor])
			m.confirmClear = false
		}
		return nil
	case "+", "=":
		return m.adjustCartLine(1)
	case "-":
		return m.adjustCartLine(-1)
	case "x", "delete":
		if m.shopFocus == zoneCart {
			if line, ok := m.cartLineUnderCursor(); ok {
				m.flow.Cart.Remove(line.ID)
				m.clampCartCursor()
			}
		}
		return nil
	case "C":
		if m.flow.Cart.Empty() {
			return nil
		}
		if !m.confirmClear {
			m.confirmClear = true
			return nil
		}
		m.confirmClear = false
		m.flow.Cart.Clear()
		return nil
	case "c":
		return m.enterPayment()
	case "esc":
		if m.confirmClear {
			m.confirmClear = false
			return nil
		}
		return m.exitShopping()
	}
	return nil
}

func (m *Model) handlePaymentKeys(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "left", "up", "right", "down", "tab":
		m.payCursor = 1 - m.payCursor
		return nil
	case "enter":
		method := shop.MethodCash
		if m.payCursor == 1 {
			method = shop.MethodBank
		}
		return m.selectPaymentMethod(method)
	case "esc":
		m.flow.BackToShop()
		return nil
	}
	return nil
}

func (m *Model) handleSuccessKeys(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "enter":
		return m.continueShopping()
	case "esc", "e":
		return m.exitShopping()
	}
	return nil
}

func (m *Model) handleFailureKeys(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "t":
		generation, err := m.flow.TryAnotherMethod()
		if err != nil {
			return nil
		}
		m.insufficientWarned = false
		m.payCursor = 0
		return tea.Batch(
			fetchBalances(m.client, generation),
			fetchTaxRates(m.client, generation),
		)
	case "enter":
		return m.continueShopping()
	case "esc":
		return m.exitShopping()
	}
	return nil
}

func (m *Model) switchCategory(step int) {
	cats := m.flow.Catalog.Categories
	if len(cats) == 0 {
		return
	}
	idx := 0
	for i, c := range cats {
		if c.ID == m.flow.Category {
			idx = i
			break
		}
	}
	idx = (idx + step + len(cats)) % len(cats)
	m.flow.Category = cats[idx].ID
	m.shopItemCursor = 0
	m.shopFocus = zoneItems
}

func (m *Model) moveShopCursor(delta, itemCount int) {
	if m.shopFocus == zoneCart {
		m.shopCartCursor += delta
		m.clampCartCursor()
		return
	}
	m.shopItemCursor += delta
	if m.shopItemCursor < 0 {
		m.shopItemCursor = 0
	}
	if itemCount > 0 && m.shopItemCursor >= itemCount {
		m.shopItemCursor = itemCount - 1
	}
	if itemCount == 0 {
		m.shopItemCursor = 0
	}
}

func (m *Model) clampCartCursor() {
	if m.shopCartCursor < 0 {
		m.shopCartCursor = 0
	}
	if n := m.flow.Cart.Len(); n > 0 && m.shopCartCursor >= n {
		m.shopCartCursor = n - 1
	} else if n == 0 {
		m.shopCartCursor = 0
	}
}

func (m *Model) cartLineUnderCursor() (shop.Line, bool) {
	lines := m.flow.Cart.Lines()
	if m.shopCartCursor < 0 || m.shopCartCursor >= len(lines) {
		return shop.Line{}, false
	}
	return lines[m.shopCartCursor], true
}

func (m *Model) adjustCartLine(delta int) tea.Cmd {
	if m.shopFocus != zoneCart {
		return nil
	}
	if line, ok := m.cartLineUnderCursor(); ok {
		m.flow.Cart.AdjustQuantity(line.ID, delta)
		m.clampCartCursor()
	}
	return nil
}

// --- mouse ------------------------------------------------------------------

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	if !m.prefs.FreeDrag {
		return nil
	}
	mouse := msg.(tea.MouseMsg)
	switch mouse.Action {
	case tea.MouseActionPress:
		if mouse.Button != tea.MouseButtonLeft || !m.registry.Visible() {
			return nil
		}
		m.dragging = true
		m.registry.SetDragging(true)
		m.dragX, m.dragY = mouse.X, mouse.Y
		return nil
	case tea.MouseActionMotion:
		if m.dragging {
			m.dragX, m.dragY = mouse.X, mouse.Y
		}
		return nil
	case tea.MouseActionRelease:
		if !m.dragging {
			return nil
		}
		// The guard stays up for a beat so a hide racing the drop is still
		// rejected.
		return dragSettle()
	}
	return nil
}

const statementPageSize = 10
