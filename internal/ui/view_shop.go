package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/eskui/overlay-control/internal/format/money"
	"github.com/eskui/overlay-control/internal/shop"
)

func formatPrice(v float64) string {
	return money.Format(v)
}

func (m *Model) viewShop() string {
	switch m.flow.Screen {
	case shop.ScreenPayment:
		return m.viewPaymentMethod()
	case shop.ScreenProcessing:
		return m.viewProcessing()
	case shop.ScreenSuccess:
		return m.viewSuccess()
	case shop.ScreenFailure:
		return m.viewFailure()
	default:
		return m.viewShopScreen()
	}
}

func (m *Model) viewShopScreen() string {
	var b strings.Builder

	// Category strip.
	var tabs []string
	for _, c := range m.flow.Catalog.Categories {
		label := c.Name
		if c.Icon != "" {
			label = c.Icon + " " + label
		}
		if c.ID == m.flow.Category && m.styles.SelectedItem != nil {
			label = m.styles.SelectedItem.Render(" " + label + " ")
		} else if m.styles.Item != nil {
			label = m.styles.Item.Render(" " + label + " ")
		}
		tabs = append(tabs, label)
	}
	if len(tabs) > 0 {
		b.WriteString(strings.Join(tabs, " "))
		b.WriteString("\n\n")
	}

	items := m.flow.Catalog.ItemsFor(m.flow.Category)
	left := m.renderShopItems(items)
	right := m.renderCart()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))

	if m.confirmClear && m.styles.Warning != nil {
		b.WriteString("\n" + m.styles.Warning.Render("Press C again to clear the cart"))
	}
	return b.String()
}

func (m *Model) renderShopItems(items []shop.Item) string {
	width := m.contentWidth()*3/5 - 2
	var b strings.Builder
	if len(items) == 0 {
		if m.styles.Info != nil {
			b.WriteString(m.styles.Info.Render("nothing in this category"))
		}
		return b.String()
	}
	for i, item := range items {
		label := item.Name
		if item.Icon != "" {
			label = item.Icon + " " + label
		}
		label += "  "
		price := formatPrice(item.Price)
		if m.styles.Price != nil {
			price = m.styles.Price.Render(price)
		}
		line := truncate.StringWithTail(label, uint(width), "…") + price

		if i == m.shopItemCursor && m.shopFocus == zoneItems {
			if m.styles.SelectedItem != nil {
				line = m.styles.SelectedItem.Render(truncate.StringWithTail(label, uint(width), "…")) + price
			}
			b.WriteString("> " + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderCart() string {
	var b strings.Builder
	header := fmt.Sprintf("Cart (%d)", m.flow.Cart.Count())
	if m.styles.Header != nil {
		header = m.styles.Header.Render(header)
	}
	b.WriteString(header + "\n")

	lines := m.flow.Cart.Lines()
	if len(lines) == 0 {
		if m.styles.Info != nil {
			b.WriteString(m.styles.Info.Render("empty") + "\n")
		}
	}
	for i, line := range lines {
		row := fmt.Sprintf("%dx %s %s", line.Quantity, line.Name, formatPrice(line.Price*float64(line.Quantity)))
		if i == m.shopCartCursor && m.shopFocus == zoneCart {
			if m.styles.SelectedItem != nil {
				row = m.styles.SelectedItem.Render(row)
			}
			b.WriteString("> " + row)
		} else {
			if m.styles.Item != nil {
				row = m.styles.Item.Render(row)
			}
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}

	total := "Total " + formatPrice(m.flow.Cart.Total())
	if m.styles.Price != nil {
		total = m.styles.Price.Render(total)
	}
	b.WriteString("\n" + total)
	return b.String()
}

func (m *Model) viewPaymentMethod() string {
	var b strings.Builder
	total := m.flow.Cart.Total()
	b.WriteString("Order total " + formatPrice(total) + "\n\n")

	if m.flow.Loading() {
		loading := m.spinner.View() + " loading balances…"
		if m.styles.Loading != nil {
			loading = m.styles.Loading.Render("loading balances…")
		}
		b.WriteString(m.renderPayButton("Cash", "…", false, m.payCursor == 0))
		b.WriteString("\n")
		b.WriteString(m.renderPayButton("Bank", "…", false, m.payCursor == 1))
		b.WriteString("\n\n" + loading)
		return b.String()
	}

	cash := fmt.Sprintf("%s (have %s, pay %s)",
		"Cash", money.Format(m.flow.Balances.Cash), formatPrice(m.flow.TaxedTotal(shop.MethodCash)))
	bank := fmt.Sprintf("%s (have %s, pay %s)",
		"Bank", money.Format(m.flow.Balances.Bank), formatPrice(m.flow.TaxedTotal(shop.MethodBank)))

	b.WriteString(m.renderPayButton(cash, "", m.flow.CanAfford(shop.MethodCash), m.payCursor == 0))
	b.WriteString("\n")
	b.WriteString(m.renderPayButton(bank, "", m.flow.CanAfford(shop.MethodBank), m.payCursor == 1))

	if tax := m.flow.Tax(methodFor(m.payCursor)); tax > 0 {
		b.WriteString("\n\n")
		note := "includes " + formatPrice(tax) + " tax"
		if m.styles.Description != nil {
			note = m.styles.Description.Render(note)
		}
		b.WriteString(note)
	}

	if m.styles.Footer != nil {
		b.WriteString("\n\n" + m.styles.Footer.Render("←/→ choose · enter pay · esc back"))
	}
	return b.String()
}

func methodFor(cursor int) shop.Method {
	if cursor == 1 {
		return shop.MethodBank
	}
	return shop.MethodCash
}

func (m *Model) renderPayButton(label, suffix string, affordable, focused bool) string {
	if suffix != "" {
		label += " " + suffix
	}
	switch {
	case !affordable && m.styles.ButtonDisabled != nil:
		return m.styles.ButtonDisabled.Render(label + " — insufficient")
	case focused && m.styles.ButtonActive != nil:
		return m.styles.ButtonActive.Render(label)
	case m.styles.Button != nil:
		return m.styles.Button.Render(label)
	default:
		return label
	}
}

func (m *Model) viewProcessing() string {
	line := m.spinner.View() + " Processing payment…"
	var b strings.Builder
	b.WriteString(line)
	if m.styles.Description != nil {
		b.WriteString("\n" + m.styles.Description.Render("please wait"))
	}
	return b.String()
}

func (m *Model) viewSuccess() string {
	var b strings.Builder
	head := "✓ Payment complete"
	if m.styles.Success != nil {
		head = m.styles.Success.Render(head)
	}
	b.WriteString(head + "\n\n")
	b.WriteString("Paid " + formatPrice(m.flow.TaxedTotal(m.flow.Method)) + " by " + string(m.flow.Method))
	if m.styles.Footer != nil {
		b.WriteString("\n\n" + m.styles.Footer.Render("enter keep shopping · esc leave"))
	}
	return b.String()
}

func (m *Model) viewFailure() string {
	var b strings.Builder
	head := "✗ Payment failed"
	if m.styles.Error != nil {
		head = m.styles.Error.Render(head)
	}
	b.WriteString(head + "\n")
	if m.flow.FailureReason != "" {
		reason := m.flow.FailureReason
		if m.styles.Description != nil {
			reason = m.styles.Description.Render(reason)
		}
		b.WriteString(reason + "\n")
	}
	if m.styles.Footer != nil {
		b.WriteString("\n" + m.styles.Footer.Render("t try another method · enter keep shopping · esc leave"))
	}
	return b.String()
}
