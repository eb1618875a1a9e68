package promos

import (
	"fmt"
	"math"

	"carepass-service/internal/pkg/constvars"
)

// FinalPrice applies a discount percentage to the annual membership price and
// renders the result as a 2-decimal currency string, rounding half-up.
// Discounts are expected in [0,100]; validating writes of promo records is the
// admin surface's concern.
func FinalPrice(discountPercentage float64) string {
	price := constvars.AnnualMembershipPriceUSD * (1 - discountPercentage/100)
	rounded := math.Floor(price*100+0.5) / 100
	return fmt.Sprintf("%.2f", rounded)
}
