package ui

import (
	"fmt"
	"strings"

	"github.com/eskui/overlay-control/internal/banking"
	"github.com/eskui/overlay-control/internal/format/money"
	"github.com/eskui/overlay-control/internal/format/table"
)

func (m *Model) viewBanking() string {
	var b strings.Builder

	account := m.bank.Account
	holder := account.Holder
	if account.Number != "" {
		holder += " · " + account.Number
	}
	if m.styles.Description != nil {
		holder = m.styles.Description.Render(holder)
	}
	b.WriteString(holder + "\n\n")

	rows := table.Format([][]string{
		{"Cash", money.FormatExact(account.Cash)},
		{"Bank", money.FormatExact(account.Bank)},
		{"Total", money.FormatExact(account.Total())},
	}, []table.Alignment{table.AlignLeft, table.AlignRight})
	for _, row := range rows {
		if m.styles.Item != nil {
			row = m.styles.Item.Render(row)
		}
		b.WriteString(row + "\n")
	}
	b.WriteString("\n")

	for i := 0; i < banking.ActionCount; i++ {
		label := banking.Action(i).Label()
		if i == m.bank.Cursor {
			if m.styles.SelectedItem != nil {
				label = m.styles.SelectedItem.Render(label)
			}
			b.WriteString("> " + label)
		} else {
			if m.styles.Item != nil {
				label = m.styles.Item.Render(label)
			}
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
	}

	if recent := m.bank.Recent(5); len(recent) > 0 {
		header := "Recent"
		if m.styles.Header != nil {
			header = m.styles.Header.Render(header)
		}
		b.WriteString("\n" + header + "\n")
		b.WriteString(m.renderTransactionRows(recent))
	}
	return b.String()
}

func (m *Model) renderTransactionRows(transactions []banking.Transaction) string {
	rows := make([][]string, 0, len(transactions))
	for _, t := range transactions {
		amount := t.Amount
		if t.Type != "deposit" {
			amount = -amount
		}
		rows = append(rows, []string{t.Date, t.Type, t.Description, money.FormatSigned(amount)})
	}
	formatted := table.Format(rows, []table.Alignment{
		table.AlignLeft, table.AlignLeft, table.AlignLeft, table.AlignRight,
	})
	var b strings.Builder
	for _, row := range formatted {
		if m.styles.Item != nil {
			row = m.styles.Item.Render(row)
		}
		b.WriteString(row + "\n")
	}
	return b.String()
}

func (m *Model) viewTransfer() string {
	form := &m.bank.Transfer
	var b strings.Builder

	if form.Done {
		head := "✓ Transfer sent"
		if m.styles.Success != nil {
			head = m.styles.Success.Render(head)
		}
		b.WriteString(head + "\n\n")
		ref := "ref " + form.LastRef
		if m.styles.Description != nil {
			ref = m.styles.Description.Render(ref)
		}
		b.WriteString(ref + "\n")
		if m.styles.Footer != nil {
			b.WriteString("\n" + m.styles.Footer.Render("enter back to banking"))
		}
		return b.String()
	}

	labels := []string{"To", "Amount", "Note"}
	for i, view := range form.FieldViews() {
		label := labels[i]
		if m.styles.Item != nil {
			label = m.styles.Item.Render(fmt.Sprintf("%-8s", label))
		}
		b.WriteString(label + view + "\n")
	}
	available := "available " + money.FormatExact(m.bank.Account.Bank)
	if m.styles.Description != nil {
		available = m.styles.Description.Render(available)
	}
	b.WriteString("\n" + available)
	if m.styles.Footer != nil {
		b.WriteString("\n" + m.styles.Footer.Render("tab next field · enter send · esc back"))
	}
	return b.String()
}

func (m *Model) viewStatement() string {
	st := &m.bank.Statement
	all := st.Rows(m.bank.All())

	var b strings.Builder
	filter := st.Filter()
	if filter == "" {
		filter = "all"
	}
	header := fmt.Sprintf("filter: %s · sort: %s", filter, st.Sort.Label())
	if m.styles.Header != nil {
		header = m.styles.Header.Render(header)
	}
	b.WriteString(header + "\n\n")

	if len(all) == 0 {
		if m.styles.Info != nil {
			b.WriteString(m.styles.Info.Render("no transactions"))
		}
		return b.String()
	}

	start := st.Offset
	if start > len(all) {
		start = len(all)
	}
	end := start + statementPageSize
	if end > len(all) {
		end = len(all)
	}
	b.WriteString(m.renderTransactionRows(all[start:end]))

	if len(all) > statementPageSize && m.styles.Footer != nil {
		b.WriteString(m.styles.Footer.Render(fmt.Sprintf("%d–%d of %d", start+1, end, len(all))))
	}
	if m.styles.Footer != nil {
		b.WriteString("\n" + m.styles.Footer.Render("f filter · o sort · esc back"))
	}
	return b.String()
}
