package utils

import (
	"strconv"
	"strings"
	"time"
)

// FormatPhone renders a phone as +7 XXX XXX-XX-XX, tolerating partial input
func FormatPhone(phone string) string {
	if phone == "" {
		return ""
	}
	d := NormalizePhone(phone)
	switch {
	case len(d) < 2:
		return "+" + d
	case len(d) < 5:
		return "+" + d[:1] + " " + d[1:]
	case len(d) < 8:
		return "+" + d[:1] + " " + d[1:4] + " " + d[4:]
	case len(d) < 10:
		return "+" + d[:1] + " " + d[1:4] + " " + d[4:7] + "-" + d[7:]
	}
	return "+" + d[:1] + " " + d[1:4] + " " + d[4:7] + "-" + d[7:9] + "-" + d[9:]
}

// FormatMaskedPhone hides everything but the last four digits: +7 ••• •••-XX-XX
func FormatMaskedPhone(phone string) string {
	if !IsCanonicalPhone(phone) {
		return phone
	}
	return "+7 ••• •••-" + phone[7:9] + "-" + phone[9:11]
}

// FormatCurrency renders whole roubles with thin grouping, e.g. "1 250 ₽"
func FormatCurrency(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + " ₽"
}

// FormatDate renders a date as DD.MM.YYYY
func FormatDate(t time.Time) string {
	return t.UTC().Format("02.01.2006")
}
