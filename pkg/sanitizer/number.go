package sanitizer

const (
	MinDiscountPercent = 0

	MaxDiscountPercent = 100
)

func NormalizeDiscountPercent(discount int64) int64 {
	if discount < MinDiscountPercent {
		return MinDiscountPercent
	}
	if discount > MaxDiscountPercent {
		return MaxDiscountPercent
	}
	return discount
}
