package tipjar

import (
	"fmt"
	"strings"

	sdkmath "cosmossdk.io/math"

	tipjarsupabase "github.com/tipjarz/tipjarz/services/tipjar/supabase"
)

// Money is carried as decimal strings end to end and summed with
// fixed-point decimals. Parsing to binary floats would misclassify
// threshold boundaries (0.004 + 0.006 landing below 0.01).

// parseAmount parses a decimal money string.
func parseAmount(s string) (sdkmath.LegacyDec, error) {
	d, err := sdkmath.LegacyNewDecFromStr(strings.TrimSpace(s))
	if err != nil {
		return sdkmath.LegacyDec{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// sumTipAmounts sums the amounts of the given tips.
func sumTipAmounts(tips []tipjarsupabase.Tip) (sdkmath.LegacyDec, error) {
	sum := sdkmath.LegacyZeroDec()
	for _, t := range tips {
		d, err := parseAmount(t.Amount)
		if err != nil {
			return sdkmath.LegacyDec{}, fmt.Errorf("tip %s: %w", t.TipID, err)
		}
		sum = sum.Add(d)
	}
	return sum, nil
}

// formatAmount renders a decimal without insignificant trailing zeros,
// so wire values read "0.01" rather than "0.010000000000000000".
func formatAmount(d sdkmath.LegacyDec) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
