package utils

import (
	"math"
	"strconv"
	"strings"
)

const CurrencySuffix = "đ"

// ParsePrice reads a display price such as "250.000đ" by dropping every
// rune that is not an ASCII digit. A string without digits, or one too long
// for int64, parses as 0.
func ParsePrice(price string) int64 {
	var b strings.Builder

	for _, r := range price {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	if b.Len() == 0 {
		return 0
	}

	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}

	return n
}

// FormatVND renders an amount the way the vi-VN locale does, with "." as the
// thousands separator and the đồng suffix: 515000 -> "515.000đ".
func FormatVND(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)

	var b strings.Builder
	b.WriteString(sign)

	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])

	for i := lead; i < len(digits); i += 3 {
		b.WriteByte('.')
		b.WriteString(digits[i : i+3])
	}

	b.WriteString(CurrencySuffix)

	return b.String()
}

// LineAmount returns price × quantity, or false when either is negative or
// the product does not fit in int64.
func LineAmount(price int64, quantity int64) (int64, bool) {
	if price < 0 || quantity < 0 {
		return 0, false
	}

	if quantity != 0 && price > math.MaxInt64/quantity {
		return 0, false
	}

	return price * quantity, true
}

// AddAmounts returns a + b, or false on int64 overflow.
func AddAmounts(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}

	return a + b, true
}
