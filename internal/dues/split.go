package dues

// Split is the outcome of distributing a lump dues payment across the two
// tiers. Shares cover whole months only; whatever is left over is a goodwill
// donation that always goes to the member's own (subordinate) group.
type Split struct {
	MonthsPaid       int
	SubordinateShare int64
	ParentShare      int64
	Donation         int64
}

// SubordinateTotal is the full amount credited to the member's own group:
// its per-month share plus the donation remainder.
func (s Split) SubordinateTotal() int64 {
	return s.SubordinateShare + s.Donation
}

// ComputeSplit distributes totalPaid over whole months at the combined
// monthly rate. When neither tier has an active rate, the entire payment is
// treated as a donation to the subordinate group.
func ComputeSplit(subordinateRate, parentRate, totalPaid int64) Split {
	monthlyTotal := subordinateRate + parentRate
	if monthlyTotal <= 0 {
		return Split{Donation: totalPaid}
	}

	months := totalPaid / monthlyTotal
	sub := subordinateRate * months
	parent := parentRate * months

	return Split{
		MonthsPaid:       int(months),
		SubordinateShare: sub,
		ParentShare:      parent,
		Donation:         totalPaid - sub - parent,
	}
}
