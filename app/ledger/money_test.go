package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 100.0, RoundHalfUp(100.4))
	assert.Equal(t, 101.0, RoundHalfUp(100.5))
	assert.Equal(t, 111.0, RoundHalfUp(1000.0/9))
}

func TestPercentGuardsZeroWhole(t *testing.T) {
	assert.Zero(t, Percent(100, 0))
	assert.Zero(t, Percent(0, 0))
	assert.Equal(t, 67, Percent(1000, 1500))
	assert.Equal(t, 50, Percent(1, 2))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "900", FormatAmount(900))
	assert.Equal(t, "1250.50", FormatAmount(1250.5))
}
