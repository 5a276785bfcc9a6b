package analytics

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// DescribeChange phrases an absolute change, e.g. "Up $200.00 this month".
// format renders the magnitude of the change; the aggregator holds no formatting state.
func DescribeChange(absolute decimal.Decimal, period Period, format func(decimal.Decimal) string) string {
	return fmt.Sprintf("%s %s %s", direction(!absolute.IsNegative()), format(absolute.Abs()), spanPhrase(period))
}

// DescribePercentage phrases a percentage change, e.g. "Down 3.5% this year"
func DescribePercentage(percentage float64, period Period) string {
	return fmt.Sprintf("%s %.1f%% %s", direction(percentage >= 0), math.Abs(percentage), spanPhrase(period))
}

func direction(up bool) string {
	if up {
		return "Up"
	}
	return "Down"
}

// spanPhrase names the stretch of time a change covers
func spanPhrase(p Period) string {
	if p == AllTime {
		return "all time"
	}
	return "this " + strings.ToLower(p.String())
}
