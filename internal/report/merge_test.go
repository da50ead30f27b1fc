package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeDaily(t *testing.T) {
	records := BuildBase([]InventoryRow{
		{ProductID: "P1", SKU: "A-1"},
		{ProductID: "P2", SKU: "B-1"},
	})

	daily := map[Key][WindowDays]DailyBucket{
		{ProductID: "P1", SKU: "A-1"}: {
			2: {SalesQty: 5, SalesValue: 50},
		},
	}

	merged := MergeDaily(records, daily)
	require.Len(t, merged, 2)

	// Matched record: only day 3 populated, the sparse rest stays zero.
	assert.Equal(t, DailyBucket{SalesQty: 5, SalesValue: 50}, merged[0].Daily[2])
	for i, bucket := range merged[0].Daily {
		if i != 2 {
			assert.Zero(t, bucket)
		}
	}

	// Unmatched record still carries a full set of zero buckets.
	for _, bucket := range merged[1].Daily {
		assert.Zero(t, bucket)
	}
}

func TestMergeDaily_ExactKeyMatchOnly(t *testing.T) {
	records := BuildBase([]InventoryRow{{ProductID: "P1", SKU: "A-1"}})

	// Same product, different SKU: no fuzzy matching.
	daily := map[Key][WindowDays]DailyBucket{
		{ProductID: "P1", SKU: "A-2"}: {0: {SalesQty: 9, SalesValue: 90}},
	}

	merged := MergeDaily(records, daily)
	for _, bucket := range merged[0].Daily {
		assert.Zero(t, bucket)
	}
}

func TestMergeDaily_ResetsStaleBuckets(t *testing.T) {
	records := []Record{{
		PlatformSPU: "P1",
		SellerSKU:   "A-1",
		Daily:       [WindowDays]DailyBucket{0: {SalesQty: 99, SalesValue: 999}},
	}}

	merged := MergeDaily(records, nil)
	for _, bucket := range merged[0].Daily {
		assert.Zero(t, bucket, "buckets are zeroed before lookup")
	}
}
