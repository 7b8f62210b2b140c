package booking

// DefaultCommissionRate applies when no rate is configured.
const DefaultCommissionRate = 0.10

// Split computes the money fields for a booking created at the given offer
// price: the platform keeps price*rate, the workshop gets the rest, and the
// two parts always sum back to the total exactly.
func Split(price, rate float64) (totalAmount, commission, workshopAmount float64) {
	if rate <= 0 {
		rate = DefaultCommissionRate
	}
	commission = price * rate
	workshopAmount = price - commission
	return price, commission, workshopAmount
}
