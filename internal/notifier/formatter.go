package notifier

import (
	"fmt"
	"strings"

	"GoldSentinel/internal/model"
)

func signalEmoji(s model.Signal) string {
	switch s {
	case model.SignalStrongBuy:
		return "🟢🟢"
	case model.SignalBuy:
		return "🟢"
	case model.SignalSell:
		return "🔴"
	case model.SignalStrongSell:
		return "🔴🔴"
	default:
		return "⏸"
	}
}

// FormatReport formats a SignalReport into a Telegram message.
func FormatReport(rep model.SignalReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s <b>XAU/USD %s</b> | %s\n\n",
		signalEmoji(rep.Signal), rep.Signal, rep.EvaluatedAt.UTC().Format("2006-01-02 15:04 UTC")))

	b.WriteString(fmt.Sprintf("Confidence: %.0f%%", rep.Confidence))
	if !rep.Actionable {
		b.WriteString(" (not actionable)")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Forecast: %s\n", rep.Forecast))
	b.WriteString(fmt.Sprintf("Trend: %s | Session: %s\n", rep.TrendDirection, rep.Session.Name))

	if rep.Lock.Engaged {
		b.WriteString(fmt.Sprintf("\n🔒 <b>LOCKED</b> (%s) — stand aside\n", rep.Lock.Reason))
	}
	if rep.Session.ReducedSize {
		b.WriteString("⚠️ Low-liquidity session: reduce position size\n")
	}

	if rep.StopLoss > 0 && rep.TakeProfit > 0 {
		b.WriteString(fmt.Sprintf("\nSL: %.2f | TP: %.2f\n", rep.StopLoss, rep.TakeProfit))
	}

	if len(rep.Factors) > 0 {
		b.WriteString("\n<b>Factors:</b>\n")
		for _, f := range rep.Factors {
			if f.Direction == 0 {
				continue
			}
			b.WriteString(fmt.Sprintf("  %s: %+.0f (%s)\n", f.Name, f.Weighted, f.Commentary))
		}
	}

	return b.String()
}

// FormatForecast is the short reply for the /forecast command.
func FormatForecast(rep model.SignalReport) string {
	return fmt.Sprintf("🔮 %s (confidence %.0f%%, %s)", rep.Forecast, rep.Confidence, rep.Session.Name)
}
