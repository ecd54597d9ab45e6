package pkg

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Formatting helpers shared by the PDF renderer and the HTTP responses.
// Everything here is pt-BR: currency as "R$ 1.234,56", dates as dd/mm/aaaa.

const EmptyPlaceholder = "—"

// FormatCurrencyBR renders a monetary value with Brazilian grouping and the
// BRL symbol. NaN and infinities are treated as zero so the renderer never
// fails on a malformed record.
func FormatCurrencyBR(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}

	neg := v < 0
	cents := int64(math.Round(math.Abs(v) * 100))
	whole := strconv.FormatInt(cents/100, 10)

	var b strings.Builder
	lead := len(whole) % 3
	if lead > 0 {
		b.WriteString(whole[:lead])
	}
	for i := lead; i < len(whole); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(whole[i : i+3])
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("R$ %s%s,%02d", sign, b.String(), cents%100)
}

// FormatDateBR renders a calendar date as dd/mm/aaaa. The zero time renders
// as a placeholder dash so table columns keep their alignment.
func FormatDateBR(t time.Time) string {
	if t.IsZero() {
		return EmptyPlaceholder
	}
	return t.Format("02/01/2006")
}

// FormatPhoneBR applies the (xx) xxxxx-xxxx mask. Anything beyond 11 digits
// is cut, matching the behavior users see in the admin forms.
func FormatPhoneBR(phone string) string {
	if phone == "" {
		return ""
	}

	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()

	switch {
	case len(d) <= 2:
		return "(" + d
	case len(d) <= 6:
		return fmt.Sprintf("(%s) %s", d[:2], d[2:])
	case len(d) <= 10:
		return fmt.Sprintf("(%s) %s-%s", d[:2], d[2:6], d[6:])
	default:
		if len(d) > 11 {
			d = d[:11]
		}
		return fmt.Sprintf("(%s) %s-%s", d[:2], d[2:7], d[7:])
	}
}

// NormalizeCalendarDate unifies the three wedding-date representations that
// legacy records carry (unix-seconds number, ISO-8601 string, native time)
// into a bare calendar date at midnight UTC. It reports false when the value
// cannot be interpreted as a date.
func NormalizeCalendarDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if d.IsZero() {
			return time.Time{}, false
		}
		return truncateToDate(d.UTC()), true
	case float64:
		return truncateToDate(time.Unix(int64(d), 0).UTC()), true
	case int64:
		return truncateToDate(time.Unix(d, 0).UTC()), true
	case int:
		return truncateToDate(time.Unix(int64(d), 0).UTC()), true
	case string:
		s := strings.TrimSpace(d)
		if len(s) > 10 {
			s = s[:10]
		}
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, false
		}
		return t.UTC(), true
	case map[string]any:
		// Firestore-era export: {"seconds": <unix>, "nanoseconds": ...}.
		if sec, ok := d["seconds"]; ok {
			return NormalizeCalendarDate(sec)
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
