package money

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// Format renders a currency amount with thousands separators, dropping the
// fractional part when it is zero ("$1,250" rather than "$1,250.00").
func Format(v float64) string {
	if v == math.Trunc(v) {
		return "$" + humanize.Comma(int64(v))
	}
	return "$" + humanize.CommafWithDigits(v, 2)
}

// FormatExact always renders two decimal places, the bank statement style.
func FormatExact(v float64) string {
	s := humanize.CommafWithDigits(v, 2)
	if i := strings.IndexByte(s, '.'); i < 0 {
		s += ".00"
	} else if len(s)-i == 2 {
		s += "0"
	}
	return "$" + s
}

// FormatSigned prefixes credits with + and debits with -, statement style.
func FormatSigned(v float64) string {
	if v < 0 {
		return "-" + FormatExact(-v)
	}
	return "+" + FormatExact(v)
}
