package service_test

import (
	"testing"

	"shop-service/internal/service"
)

func TestComputeLineTotal(t *testing.T) {
	cases := []struct {
		name string
		unit int64
		qty  int32
		want int64
	}{
		{"single unit", 10000, 1, 10000},
		{"multiple units", 10000, 2, 20000},
		{"zero price", 0, 5, 0},
		{"large quantity", 199900, 100, 19990000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := service.ComputeLineTotal(tc.unit, tc.qty); got != tc.want {
				t.Fatalf("ComputeLineTotal(%d, %d) = %d, want %d", tc.unit, tc.qty, got, tc.want)
			}
		})
	}
}

func TestSumLineTotals(t *testing.T) {
	if got := service.SumLineTotals(nil); got != 0 {
		t.Fatalf("empty sum expected 0 got %d", got)
	}
	if got := service.SumLineTotals([]int64{20000, 5000}); got != 25000 {
		t.Fatalf("sum expected 25000 got %d", got)
	}
}
