package dues_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prasetyo/kasrt/internal/dues"
)

func TestComputeSplit(t *testing.T) {
	type testCase struct {
		name            string
		subordinateRate int64
		parentRate      int64
		totalPaid       int64
		want            dues.Split
	}

	tests := []testCase{
		{
			name:            "ExactThreeMonths",
			subordinateRate: 20000,
			parentRate:      10000,
			totalPaid:       90000,
			want: dues.Split{
				MonthsPaid:       3,
				SubordinateShare: 60000,
				ParentShare:      30000,
				Donation:         0,
			},
		},
		{
			name:            "RemainderBecomesDonation",
			subordinateRate: 20000,
			parentRate:      10000,
			totalPaid:       100000,
			want: dues.Split{
				MonthsPaid:       3,
				SubordinateShare: 60000,
				ParentShare:      30000,
				Donation:         10000,
			},
		},
		{
			name:            "LessThanOneMonth",
			subordinateRate: 20000,
			parentRate:      10000,
			totalPaid:       25000,
			want: dues.Split{
				MonthsPaid:       0,
				SubordinateShare: 0,
				ParentShare:      0,
				Donation:         25000,
			},
		},
		{
			name:            "NoActiveRatesAllDonation",
			subordinateRate: 0,
			parentRate:      0,
			totalPaid:       50000,
			want: dues.Split{
				MonthsPaid:       0,
				SubordinateShare: 0,
				ParentShare:      0,
				Donation:         50000,
			},
		},
		{
			name:            "OnlyParentRate",
			subordinateRate: 0,
			parentRate:      15000,
			totalPaid:       40000,
			want: dues.Split{
				MonthsPaid:       2,
				SubordinateShare: 0,
				ParentShare:      30000,
				Donation:         10000,
			},
		},
		{
			name:            "OnlySubordinateRate",
			subordinateRate: 25000,
			parentRate:      0,
			totalPaid:       50000,
			want: dues.Split{
				MonthsPaid:       2,
				SubordinateShare: 50000,
				ParentShare:      0,
				Donation:         0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dues.ComputeSplit(tt.subordinateRate, tt.parentRate, tt.totalPaid)

			assert.Equal(t, tt.want, got)

			// No money is created or destroyed by the split.
			assert.Equal(t, tt.totalPaid, got.SubordinateShare+got.ParentShare+got.Donation)
		})
	}
}

func TestSplit_SubordinateTotal(t *testing.T) {
	s := dues.Split{SubordinateShare: 60000, Donation: 10000}
	assert.Equal(t, int64(70000), s.SubordinateTotal())
}
