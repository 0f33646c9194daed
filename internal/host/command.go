package host

import (
	"encoding/json"
	"fmt"
)

// Kind identifies an inbound host command.
type Kind string

const (
	KindShowAmount       Kind = "showAmount"
	KindShowList         Kind = "showList"
	KindShowDropdown     Kind = "showDropdown"
	KindShowSettings     Kind = "showSettings"
	KindShowShop         Kind = "showShop"
	KindShowBanking      Kind = "showBanking"
	KindShowNotification Kind = "showNotification"
	KindToggleDarkMode   Kind = "toggleDarkMode"
	KindHide             Kind = "hide"
)

// Command is the decoded inbound envelope. Exactly one payload pointer is
// non-nil for kinds that carry one.
type Command struct {
	Kind Kind

	ShowAmount   *ShowAmount
	ShowList     *ShowList
	ShowDropdown *ShowDropdown
	ShowShop     *ShowShop
	ShowBanking  *ShowBanking
	Notification *ShowNotification
}

type ShowAmount struct {
	Title string `json:"title"`
}

// ShowList keeps Items raw so malformed payloads degrade into a placeholder
// item instead of a decode failure.
type ShowList struct {
	Title     string          `json:"title"`
	Items     json.RawMessage `json:"items"`
	IsSubmenu bool            `json:"isSubmenu"`
}

type ShowDropdown struct {
	Title         string   `json:"title"`
	Options       []string `json:"options"`
	SelectedIndex *int     `json:"selectedIndex"`
}

type ShopCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type ShopItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Icon          string  `json:"icon"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	InventoryName string  `json:"inventoryName"`
}

type ShowShop struct {
	Title      string         `json:"title"`
	Categories []ShopCategory `json:"categories"`
	Items      []ShopItem     `json:"items"`
}

type BankTransaction struct {
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

type ShowBanking struct {
	BankName      string            `json:"bankName"`
	AccountHolder string            `json:"accountHolder"`
	AccountNumber string            `json:"accountNumber"`
	Cash          float64           `json:"cash"`
	Bank          float64           `json:"bank"`
	Transactions  []BankTransaction `json:"transactions"`
}

type ShowNotification struct {
	NotificationType string `json:"notificationType"`
	Title            string `json:"title"`
	Message          string `json:"message"`
	Duration         *int   `json:"duration"`
	Closable         *bool  `json:"closable"`
	Icon             string `json:"icon"`
}

// ErrUnknownKind reports an envelope whose type field matched no command.
type ErrUnknownKind struct {
	Kind string
}

func (e ErrUnknownKind) Error() string {
	return fmt.Sprintf("unknown host command %q", e.Kind)
}

// Decode parses a raw envelope into a Command. Unknown kinds return
// ErrUnknownKind so callers can log and drop them.
func Decode(data []byte) (Command, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return Command{}, fmt.Errorf("decode envelope: %w", err)
	}

	cmd := Command{Kind: Kind(head.Type)}
	switch cmd.Kind {
	case KindShowAmount:
		cmd.ShowAmount = &ShowAmount{}
		return cmd, unmarshalPayload(data, cmd.ShowAmount)
	case KindShowList:
		cmd.ShowList = &ShowList{}
		return cmd, unmarshalPayload(data, cmd.ShowList)
	case KindShowDropdown:
		cmd.ShowDropdown = &ShowDropdown{}
		return cmd, unmarshalPayload(data, cmd.ShowDropdown)
	case KindShowShop:
		cmd.ShowShop = &ShowShop{}
		return cmd, unmarshalPayload(data, cmd.ShowShop)
	case KindShowBanking:
		cmd.ShowBanking = &ShowBanking{}
		return cmd, unmarshalPayload(data, cmd.ShowBanking)
	case KindShowNotification:
		cmd.Notification = &ShowNotification{}
		return cmd, unmarshalPayload(data, cmd.Notification)
	case KindShowSettings, KindToggleDarkMode, KindHide:
		return cmd, nil
	default:
		return Command{}, ErrUnknownKind{Kind: head.Type}
	}
}

func unmarshalPayload(data []byte, dst interface{}) error {
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}
