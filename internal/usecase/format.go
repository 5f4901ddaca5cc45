package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vitos/lp_wave/internal/domain"
)

// FormatFee renders the fee counter as currency with two decimals.
func FormatFee(fee float64) string {
	return fmt.Sprintf("$%.2f", fee)
}

// FormatAmount renders the coin amount slider value for a mode:
// SOL for bid, share of the maximum for ask, dollars otherwise.
func FormatAmount(mode domain.Mode, amount float64) string {
	switch mode {
	case domain.ModeBid:
		return fmt.Sprintf("%.1f SOL", amount/1000)
	case domain.ModeAsk:
		return fmt.Sprintf("%d%%", int(math.Round(amount/domain.MaxAmount*100)))
	default:
		return "$" + groupThousands(int64(math.Round(amount)))
	}
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
