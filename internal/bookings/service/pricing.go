package service

import "barkeep/pkg/model"

// drinkTotal sums the drink lines and applies the bar's discount
// percentage. The discount covers drinks only; table base prices are
// the bar's listed slot prices.
func drinkTotal(drinks []model.BookingDrink, discountPercent float64) float64 {
	var total float64
	for _, line := range drinks {
		total += line.UnitPrice * float64(line.Quantity)
	}

	if discountPercent > 0 {
		total *= 1 - discountPercent/100
	}
	return total
}

func tableTotal(tables []model.BookingTable) float64 {
	var total float64
	for _, line := range tables {
		total += line.BasePrice
	}
	return total
}

// TotalPrice is the booking's full price: tables plus discounted drinks
// plus any staff-applied additional fee.
func TotalPrice(tables []model.BookingTable, drinks []model.BookingDrink, discountPercent, additionalFee float64) float64 {
	return tableTotal(tables) + drinkTotal(drinks, discountPercent) + additionalFee
}
