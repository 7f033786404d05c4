// Package numbering implements the YYYY/MM/NNNN invoice number scheme:
// a 4-digit zero-padded sequence, unique and monotonically increasing
// within a calendar month.
package numbering

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Prefix returns the year/month prefix for t, e.g. "2024/07/".
func Prefix(t time.Time) string {
	return fmt.Sprintf("%04d/%02d/", t.Year(), int(t.Month()))
}

// Format builds a full invoice number for t and the given sequence.
func Format(t time.Time, seq int) string {
	return fmt.Sprintf("%s%04d", Prefix(t), seq)
}

// NextSequence returns the sequence that follows lastNumber's trailing
// segment. An empty lastNumber, a malformed number, or a non-numeric
// trailing segment all yield 1: a prior number we cannot parse is treated
// as if no prior invoice existed rather than blocking allocation.
func NextSequence(lastNumber string) int {
	if lastNumber == "" {
		return 1
	}
	parts := strings.Split(lastNumber, "/")
	if len(parts) < 3 {
		return 1
	}
	last, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || last < 0 {
		return 1
	}
	return last + 1
}
