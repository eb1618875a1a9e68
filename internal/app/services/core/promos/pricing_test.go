package promos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinalPrice(t *testing.T) {
	t.Run("No Discount", func(t *testing.T) {
		assert.Equal(t, "119.88", FinalPrice(0))
	})

	t.Run("Ten Percent", func(t *testing.T) {
		// 119.88 * 0.9 = 107.892, rounds half-up to 107.89
		assert.Equal(t, "107.89", FinalPrice(10))
	})

	t.Run("Twenty Five Percent", func(t *testing.T) {
		// 119.88 * 0.75 = 89.91 exactly
		assert.Equal(t, "89.91", FinalPrice(25))
	})

	t.Run("Rounds Up Past Half Cent", func(t *testing.T) {
		// 119.88 * 0.85 = 101.898, rounds up to 101.90
		assert.Equal(t, "101.90", FinalPrice(15))
	})

	t.Run("Full Discount", func(t *testing.T) {
		assert.Equal(t, "0.00", FinalPrice(100))
	})

	t.Run("Always Two Decimals", func(t *testing.T) {
		for _, d := range []float64{0, 1, 5, 33.33, 50, 99, 100} {
			assert.Regexp(t, `^\d+\.\d{2}$`, FinalPrice(d))
		}
	})
}
