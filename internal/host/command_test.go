package host

import (
	"errors"
	"testing"
)

func TestDecodeShowAmount(t *testing.T) {
	cmd, err := Decode([]byte(`{"type":"showAmount","title":"Deposit"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cmd.Kind != KindShowAmount || cmd.ShowAmount == nil {
		t.Fatalf("unexpected command %#v", cmd)
	}
	if cmd.ShowAmount.Title != "Deposit" {
		t.Fatalf("unexpected title %q", cmd.ShowAmount.Title)
	}
}

func TestDecodeShowListKeepsItemsRaw(t *testing.T) {
	cmd, err := Decode([]byte(`{"type":"showList","title":"Menu","items":"garbage","isSubmenu":true}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cmd.ShowList == nil || !cmd.ShowList.IsSubmenu {
		t.Fatalf("unexpected command %#v", cmd)
	}
	if string(cmd.ShowList.Items) != `"garbage"` {
		t.Fatalf("expected raw items preserved, got %q", cmd.ShowList.Items)
	}
}

func TestDecodeDropdownPreselection(t *testing.T) {
	cmd, err := Decode([]byte(`{"type":"showDropdown","title":"Color","options":["a","b"],"selectedIndex":1}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cmd.ShowDropdown.SelectedIndex == nil || *cmd.ShowDropdown.SelectedIndex != 1 {
		t.Fatalf("expected selectedIndex 1, got %#v", cmd.ShowDropdown.SelectedIndex)
	}

	cmd, err = Decode([]byte(`{"type":"showDropdown","title":"Color","options":["a"]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cmd.ShowDropdown.SelectedIndex != nil {
		t.Fatalf("expected nil selectedIndex when omitted")
	}
}

func TestDecodeShowBankingHolderName(t *testing.T) {
	cmd, err := Decode([]byte(`{"type":"showBanking","bankName":"Fleeca","accountHolder":"Jo Mills","accountNumber":"1234","cash":250,"bank":1000}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := cmd.ShowBanking
	if b == nil {
		t.Fatalf("unexpected command %#v", cmd)
	}
	if b.AccountHolder != "Jo Mills" {
		t.Fatalf("expected account holder, got %q", b.AccountHolder)
	}
	if b.BankName != "Fleeca" || b.Cash != 250 || b.Bank != 1000 {
		t.Fatalf("unexpected payload %#v", b)
	}
}

func TestDecodeNotificationOptionalFields(t *testing.T) {
	cmd, err := Decode([]byte(`{"type":"showNotification","notificationType":"success","title":"Saved","duration":3000,"closable":false}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	n := cmd.Notification
	if n.Duration == nil || *n.Duration != 3000 {
		t.Fatalf("expected duration 3000, got %#v", n.Duration)
	}
	if n.Closable == nil || *n.Closable {
		t.Fatalf("expected closable false, got %#v", n.Closable)
	}

	cmd, err = Decode([]byte(`{"type":"showNotification","title":"Plain"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cmd.Notification.Duration != nil || cmd.Notification.Closable != nil {
		t.Fatalf("expected omitted optionals to stay nil")
	}
}

func TestDecodePayloadlessKinds(t *testing.T) {
	for _, kind := range []Kind{KindShowSettings, KindToggleDarkMode, KindHide} {
		cmd, err := Decode([]byte(`{"type":"` + string(kind) + `"}`))
		if err != nil {
			t.Fatalf("decode %s: %v", kind, err)
		}
		if cmd.Kind != kind {
			t.Fatalf("expected kind %q, got %q", kind, cmd.Kind)
		}
	}
}

func TestDecodeUnknownKind(t *testing.T) {
	_, err := Decode([]byte(`{"type":"launchMissiles"}`))
	var unknown ErrUnknownKind
	if !errors.As(err, &unknown) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if unknown.Kind != "launchMissiles" {
		t.Fatalf("unexpected kind %q", unknown.Kind)
	}
}

func TestDecodeMalformedEnvelope(t *testing.T) {
	if _, err := Decode([]byte(`{`)); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestTaxRatesUnmarshal(t *testing.T) {
	var rates TaxRates
	if err := rates.UnmarshalJSON([]byte(`{"cash":7.5,"bank":false}`)); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rates.Cash == nil || *rates.Cash != 7.5 {
		t.Fatalf("expected cash rate 7.5, got %#v", rates.Cash)
	}
	if rates.Bank != nil {
		t.Fatalf("expected bank disabled, got %#v", rates.Bank)
	}
	if rates.RateFor("bank") != 0 || rates.RateFor("cash") != 7.5 {
		t.Fatalf("unexpected RateFor results")
	}
	if rates.RateFor("crypto") != 0 {
		t.Fatalf("expected unknown method rate 0")
	}

	if err := rates.UnmarshalJSON([]byte(`{"cash":null}`)); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if rates.Cash != nil || rates.Bank != nil {
		t.Fatalf("expected nil rates for null/omitted")
	}
}
