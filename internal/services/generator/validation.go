package generator

import (
	"math"
	"strconv"
	"strings"
)

const (
	MsgNameRequired   = "Customer name is required"
	MsgEmailRequired  = "Valid email is required"
	MsgAmountRequired = "Valid amount is required"
)

// MaxAmount is the largest value a numeric(12,2) amount column holds.
const MaxAmount = 9999999999.99

// Validate checks the form fields in order name, email, amount and returns
// the message of the first failure.
func Validate(s State) (string, bool) {
	if strings.TrimSpace(s.CustomerName) == "" {
		return MsgNameRequired, false
	}
	email := strings.TrimSpace(s.CustomerEmail)
	if email == "" || !strings.Contains(email, "@") {
		return MsgEmailRequired, false
	}
	if _, ok := ParseAmount(s.Amount); !ok {
		return MsgAmountRequired, false
	}
	return "", true
}

// ParseAmount parses a positive decimal amount with at most two fraction
// digits that fits the stored column.
func ParseAmount(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 || v > MaxAmount {
		return 0, false
	}
	// whole cents only; 12.345 and 0.001 would be rounded by the store
	if math.Round(v*100)/100 != v {
		return 0, false
	}
	return v, true
}
