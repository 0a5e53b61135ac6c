package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/recipeapp/internal/common"
)

// Price is a non-negative amount with two decimal places, held in cents.
type Price int64

// MaxPrice is the largest price a recipe may carry (999.99).
const MaxPrice Price = 99999

// ParsePrice parses "5", "5.5" or "5.50". Negative values, more than two
// decimal places and values above MaxPrice fail with common.ErrorInvalidPrice.
func ParsePrice(s string) (Price, error) {
	s = strings.TrimSpace(s)
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" || (hasFrac && (frac == "" || len(frac) > 2)) {
		return 0, fmt.Errorf("%w: %q", common.ErrorInvalidPrice, s)
	}

	units, err := parseDigits(whole)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", common.ErrorInvalidPrice, s)
	}

	var cents int64
	if hasFrac {
		if len(frac) == 1 {
			frac += "0"
		}
		cents, err = parseDigits(frac)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", common.ErrorInvalidPrice, s)
		}
	}

	p := Price(units*100 + cents)
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return p, nil
}

// parseDigits accepts only ASCII digits, so signs and exponents are rejected.
func parseDigits(s string) (int64, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.ParseInt(s, 10, 64)
}

// Validate checks the 0..MaxPrice range.
func (p Price) Validate() error {
	if p < 0 || p > MaxPrice {
		return fmt.Errorf("%w: %s", common.ErrorInvalidPrice, p)
	}
	return nil
}

func (p Price) String() string {
	sign := ""
	v := int64(p)
	if v < 0 {
		sign, v = "-", -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
