package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eskui/overlay-control/internal/banking"
	"github.com/eskui/overlay-control/internal/notify"
	"github.com/eskui/overlay-control/internal/panel"
)

const (
	actionDeposit   = banking.ActionDeposit
	actionWithdraw  = banking.ActionWithdraw
	actionTransfer  = banking.ActionTransfer
	actionStatement = banking.ActionStatement
)

func bankingAction(cursor int) banking.Action {
	return banking.Action(cursor)
}

func (m *Model) runBankingAction(action banking.Action) tea.Cmd {
	switch action {
	case actionDeposit:
		return m.openBankAmount("Deposit Amount", "deposit")
	case actionWithdraw:
		return m.openBankAmount("Withdraw Amount", "withdraw")
	case actionTransfer:
		m.bank.Transfer.Reset()
		return tea.Batch(m.registry.Show(panel.Transfer), m.bank.Transfer.Focus())
	case actionStatement:
		m.bank.Statement = banking.Statement{}
		return m.registry.Show(panel.Statement)
	}
	return nil
}

// openBankAmount reuses the amount panel for deposits and withdrawals. The
// submit callback validates against the relevant balance and returns to the
// banking panel instead of closing the overlay.
func (m *Model) openBankAmount(title, action string) tea.Cmd {
	m.amountReturn = panel.Banking
	focus := m.amountPanel.Show(title, 1, func(value int) tea.Cmd {
		available := m.bank.Account.Cash
		if action == "withdraw" {
			available = m.bank.Account.Bank
		}
		if float64(value) > available {
			return m.toast(notify.Error, "Insufficient funds", "You do not have that much")
		}

		now := time.Now()
		if action == "deposit" {
			m.bank.RecordDeposit(value, now)
		} else {
			m.bank.RecordWithdraw(value, now)
		}
		m.amountReturn = ""
		m.amountPanel.Blur()
		return tea.Batch(
			m.registry.Show(panel.Banking),
			m.post("bankingAction", func(ctx context.Context) error {
				return m.client.BankingAction(ctx, action, value)
			}),
		)
	})
	return tea.Batch(m.registry.Show(panel.Amount), focus)
}

func (m *Model) submitTransfer() tea.Cmd {
	form := &m.bank.Transfer
	if err := form.Validate(m.bank.Account.Bank); err != nil {
		return m.toast(notify.Error, "Transfer failed", err.Error())
	}
	t := form.Build(time.Now())
	m.pendingTransfer = &t
	form.Blur()
	return nil
}

// finishTransfer leaves the success screen, landing the pending transaction
// at the top of the ledger.
func (m *Model) finishTransfer() tea.Cmd {
	if m.pendingTransfer != nil {
		m.bank.RecordTransfer(*m.pendingTransfer)
		m.pendingTransfer = nil
	}
	m.bank.Transfer.Reset()
	return m.registry.Show(panel.Banking)
}
