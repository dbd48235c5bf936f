package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatINR renders an amount with the Indian grouping style used on
// receipts: Rs 1,23,456.50.
func FormatINR(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	whole := int64(amount)
	frac := int64((amount-float64(whole))*100 + 0.5)
	if frac >= 100 {
		whole++
		frac -= 100
	}
	return fmt.Sprintf("%sRs %s.%02d", sign, groupIndian(whole), frac)
}

// groupIndian inserts separators after the last three digits, then every two:
// 1234567 -> 12,34,567.
func groupIndian(n int64) string {
	str := strconv.FormatInt(n, 10)
	if len(str) <= 3 {
		return str
	}
	head := str[:len(str)-3]
	tail := str[len(str)-3:]
	var out strings.Builder
	for i, c := range head {
		if i != 0 && (len(head)-i)%2 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String() + "," + tail
}
