package banking

import (
	"time"

	"github.com/eskui/overlay-control/internal/host"
)

// Transaction is one ledger row shown in the recent list and statement.
type Transaction struct {
	Ref         string
	Type        string // deposit, withdraw, transfer
	Amount      float64
	When        time.Time
	Date        string // display form, as the host sent it
	Description string
	Category    string
}

// Account is the header block of the banking panel.
type Account struct {
	BankName string
	Holder   string
	Number   string
	Cash     float64
	Bank     float64
}

// Total returns cash plus bank.
func (a Account) Total() float64 {
	return a.Cash + a.Bank
}

// Action is a main-screen menu entry.
type Action int

const (
	ActionDeposit Action = iota
	ActionWithdraw
	ActionTransfer
	ActionStatement
	actionCount
)

// ActionCount is the number of main-screen actions.
const ActionCount = int(actionCount)

func (a Action) Label() string {
	switch a {
	case ActionDeposit:
		return "Deposit"
	case ActionWithdraw:
		return "Withdraw"
	case ActionTransfer:
		return "Transfer"
	case ActionStatement:
		return "Statement"
	default:
		return ""
	}
}

// State is the open banking session.
type State struct {
	Account      Account
	Transactions []Transaction
	Pending      []Transaction
	Cursor       int

	Transfer  Form
	Statement Statement
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006",
}

func parseWhen(raw string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Open resets the session around a host push. Missing transaction data falls
// back to an empty ledger.
func (s *State) Open(cmd host.ShowBanking) {
	s.Account = Account{
		BankName: cmd.BankName,
		Holder:   cmd.AccountHolder,
		Number:   cmd.AccountNumber,
		Cash:     cmd.Cash,
		Bank:     cmd.Bank,
	}
	s.Transactions = s.Transactions[:0]
	for _, t := range cmd.Transactions {
		s.Transactions = append(s.Transactions, Transaction{
			Type:        t.Type,
			Amount:      t.Amount,
			When:        parseWhen(t.Date),
			Date:        t.Date,
			Description: t.Description,
			Category:    t.Category,
		})
	}
	s.Pending = nil
	s.Cursor = 0
	s.Transfer.Reset()
	s.Statement = Statement{}
}

// All returns pending transactions followed by the host ledger, newest first
// within each group.
func (s *State) All() []Transaction {
	out := make([]Transaction, 0, len(s.Pending)+len(s.Transactions))
	out = append(out, s.Pending...)
	out = append(out, s.Transactions...)
	return out
}

// Recent returns up to n transactions for the main screen.
func (s *State) Recent(n int) []Transaction {
	all := s.All()
	if len(all) > n {
		all = all[:n]
	}
	return all
}

// MoveCursor shifts the main-screen action highlight.
func (s *State) MoveCursor(delta int) {
	next := s.Cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= ActionCount {
		next = ActionCount - 1
	}
	s.Cursor = next
}

// RecordDeposit mirrors a confirmed deposit locally: cash moves to bank and
// a pending transaction is prepended.
func (s *State) RecordDeposit(amount int, now time.Time) {
	v := float64(amount)
	s.Account.Cash -= v
	s.Account.Bank += v
	s.prepend(Transaction{
		Type:        "deposit",
		Amount:      v,
		When:        now,
		Date:        now.Format("2006-01-02 15:04"),
		Description: "Cash deposit",
		Category:    "banking",
	})
}

// RecordWithdraw mirrors a confirmed withdrawal locally.
func (s *State) RecordWithdraw(amount int, now time.Time) {
	v := float64(amount)
	s.Account.Bank -= v
	s.Account.Cash += v
	s.prepend(Transaction{
		Type:        "withdraw",
		Amount:      v,
		When:        now,
		Date:        now.Format("2006-01-02 15:04"),
		Description: "Cash withdrawal",
		Category:    "banking",
	})
}

// RecordTransfer mirrors a completed transfer and returns it.
func (s *State) RecordTransfer(t Transaction) {
	s.Account.Bank -= t.Amount
	s.prepend(t)
}

func (s *State) prepend(t Transaction) {
	s.Pending = append([]Transaction{t}, s.Pending...)
}
