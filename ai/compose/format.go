package compose

import (
	"statica/entity"
	"strconv"
	"strings"
)

func bullets(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "• " + item
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0:0]
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}

// priceValue parses prices such as "₹3,499.00"; ok is false for sentinels.
func priceValue(price string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, price)
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func priceRange(products []entity.Product) string {
	var low, high string
	var lowV, highV float64
	for _, p := range products {
		v, ok := priceValue(p.Price)
		if !ok {
			continue
		}
		if low == "" || v < lowV {
			low, lowV = p.Price, v
		}
		if high == "" || v > highV {
			high, highV = p.Price, v
		}
	}
	switch {
	case low == "":
		return entity.PriceVaries
	case low == high:
		return low
	default:
		return low + " - " + high
	}
}
