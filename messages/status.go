package messages

import (
	"fmt"
	"strings"
	"time"

	"tasepin/config"
	"tasepin/quotes"
)

const (
	arrowUp   = "▲"
	arrowDown = "▼"
	arrowFlat = "■"
)

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Build assemble the full html status message. Pure: identical inputs yield
// identical output, the timestamp line comes from the passed-in time.
func Build(indices []config.Index, results map[string]*quotes.IndexQuote, now time.Time) string {
	sb := new(strings.Builder)
	fmt.Fprintf(sb, "<b>TASE Indices - Daily Change</b> <i>(updated %s)</i>\n", now.Format("15:04"))

	fallback := false
	for _, index := range indices {
		quote, found := results[index.Symbol]
		if !found {
			quote = quotes.NewFallbackQuote(index.Symbol)
		}

		mark := ""
		if quote.Fallback {
			fallback = true
			mark = " *"
		}

		fmt.Fprintf(sb, "• %s: %s %+.2f%% (%s)%s\n",
			htmlEscaper.Replace(index.Name),
			Arrow(quote.ChangePercent),
			quote.ChangePercent,
			formatPrice(quote.Price),
			mark)
	}

	if fallback {
		sb.WriteString("<i>* no live data</i>\n")
	}

	sb.WriteString("<i>Data may be slightly delayed.</i>")

	return sb.String()
}

// Arrow directional indicator by sign of change percent, flat only on zero
func Arrow(changePercent float64) string {
	switch {
	case changePercent > 0:
		return arrowUp
	case changePercent < 0:
		return arrowDown
	default:
		return arrowFlat
	}
}

// formatPrice format price with thousands separators and two decimals
func formatPrice(price float64) string {
	text := fmt.Sprintf("%.2f", price)

	sign := ""
	if strings.HasPrefix(text, "-") {
		sign, text = "-", text[1:]
	}

	whole, frac := text[:len(text)-3], text[len(text)-3:]
	sb := new(strings.Builder)
	for index, digit := range whole {
		if index > 0 && (len(whole)-index)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(digit)
	}

	return sign + sb.String() + frac
}
