package service

import (
	"github.com/shopspring/decimal"

	"github.com/adarsht2308/dellcube-lms-sub000/models"
)

// ComputeTotal derives the docket total from the additive charge fields:
// freightRs + freightCharges + aoc + hamali + ddCharges + stCharges +
// serviceCharge. Missing fields count as zero. ratePerKg is a rate basis and
// paid/toPay/tbb are payment allocations; none of them is ever summed.
// The result is rounded to two decimals.
func ComputeTotal(fc models.FreightChargeBreakdown) float64 {
	total := decimal.Zero
	for _, charge := range []*float64{
		fc.FreightRs,
		fc.FreightCharges,
		fc.AOC,
		fc.Hamali,
		fc.DDCharges,
		fc.STCharges,
		fc.ServiceCharge,
	} {
		if charge != nil {
			total = total.Add(decimal.NewFromFloat(*charge))
		}
	}
	out, _ := total.Round(2).Float64()
	return out
}
