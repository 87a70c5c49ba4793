package normalize

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// currencyTokens are stripped before parsing. "â‚¹" is the rupee sign as it
// arrives from Windows-1252 exports.
var currencyTokens = []string{"â‚¹", "$", "₹", "€", "£", "¥", ","}

// SafeNumeric coerces a raw cell value to a float. Blank, malformed or
// non-finite values yield 0; it never fails.
func SafeNumeric(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		return finite(x)
	case float32:
		return finite(float64(x))
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case int32:
		return float64(x)
	case string:
		return parseAmount(x)
	case []byte:
		return parseAmount(string(x))
	case interface{ String() string }:
		// json.Number and friends
		return parseAmount(x.String())
	default:
		return 0
	}
}

func parseAmount(s string) float64 {
	for _, tok := range currencyTokens {
		s = strings.ReplaceAll(s, tok, "")
	}
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return finite(f)
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
