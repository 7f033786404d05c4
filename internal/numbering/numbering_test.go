package numbering_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fakturo/internal/numbering"
)

func TestPrefix(t *testing.T) {
	assert.Equal(t, "2024/07/", numbering.Prefix(time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024/01/", numbering.Prefix(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024/12/", numbering.Prefix(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestFormat(t *testing.T) {
	jul := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024/07/0001", numbering.Format(jul, 1))
	assert.Equal(t, "2024/07/0042", numbering.Format(jul, 42))
	assert.Equal(t, "2024/07/9999", numbering.Format(jul, 9999))
	// Sequences past four digits widen rather than wrap.
	assert.Equal(t, "2024/07/10000", numbering.Format(jul, 10000))
}

func TestNextSequence(t *testing.T) {
	assert.Equal(t, 2, numbering.NextSequence("2024/07/0001"))
	assert.Equal(t, 100, numbering.NextSequence("2024/07/0099"))
	assert.Equal(t, 10000, numbering.NextSequence("2024/07/9999"))
}

func TestNextSequence_FailsOpen(t *testing.T) {
	// Anything unparsable restarts the sequence instead of blocking
	// allocation.
	assert.Equal(t, 1, numbering.NextSequence(""))
	assert.Equal(t, 1, numbering.NextSequence("FV-17"))
	assert.Equal(t, 1, numbering.NextSequence("2024/07/abcd"))
	assert.Equal(t, 1, numbering.NextSequence("2024/07/-5"))
}
