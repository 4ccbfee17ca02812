package service

// ComputeLineTotal derives a line total from a unit amount snapshot and a
// quantity. Amounts are integer cents, so the product is exact.
func ComputeLineTotal(unitAmountCents int64, quantity int32) int64 {
	return unitAmountCents * int64(quantity)
}

// SumLineTotals aggregates a grand total over line totals. Пустой список — 0.
func SumLineTotals(totals []int64) int64 {
	var sum int64
	for _, t := range totals {
		sum += t
	}
	return sum
}
