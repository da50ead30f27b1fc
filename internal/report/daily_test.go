package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, 8, 29, 10, 30, 0, 0, time.Local)

func daysAgo(n int) time.Time {
	return today.AddDate(0, 0, -n)
}

func TestAggregateDaily_WindowBounds(t *testing.T) {
	events := []OrderEvent{
		{OrderDate: today, Status: StatusPaid, ProductID: "P1", SKU: "A-1", Quantity: 1, Value: 10},
		{OrderDate: daysAgo(1), Status: StatusPaid, ProductID: "P1", SKU: "A-1", Quantity: 2, Value: 20},
		{OrderDate: daysAgo(7), Status: StatusPaid, ProductID: "P1", SKU: "A-1", Quantity: 3, Value: 30},
		{OrderDate: daysAgo(8), Status: StatusPaid, ProductID: "P1", SKU: "A-1", Quantity: 4, Value: 40},
	}

	out := AggregateDaily(events, today, SumLineValue)
	require.Contains(t, out, Key{ProductID: "P1", SKU: "A-1"})
	days := out[Key{ProductID: "P1", SKU: "A-1"}]

	// Today and 8 days ago are both outside the window.
	assert.Equal(t, DailyBucket{SalesQty: 2, SalesValue: 20}, days[0])
	assert.Equal(t, DailyBucket{SalesQty: 3, SalesValue: 30}, days[6])
	total := 0
	for _, d := range days {
		total += d.SalesQty
	}
	assert.Equal(t, 5, total)
}

func TestAggregateDaily_FiltersUnpaid(t *testing.T) {
	events := []OrderEvent{
		{OrderDate: daysAgo(2), Status: "已取消", ProductID: "P1", SKU: "A-1", Quantity: 5, Value: 50},
		{OrderDate: daysAgo(2), Status: "待支付", ProductID: "P1", SKU: "A-1", Quantity: 5, Value: 50},
	}

	out := AggregateDaily(events, today, SumLineValue)
	assert.Empty(t, out, "keys with no paid orders must be absent entirely")
}

func TestAggregateDaily_SumLineValue(t *testing.T) {
	// Two paid orders on the same day 3 days ago: quantities 2+3, values
	// 20.00+30.00.
	events := []OrderEvent{
		{OrderDate: daysAgo(3), Status: StatusPaid, ProductID: "P1", SKU: "ABC-001", Quantity: 2, Value: 20},
		{OrderDate: daysAgo(3), Status: StatusPaid, ProductID: "P1", SKU: "ABC-001", Quantity: 3, Value: 30},
	}

	out := AggregateDaily(events, today, SumLineValue)
	days := out[Key{ProductID: "P1", SKU: "ABC-001"}]

	assert.Equal(t, DailyBucket{SalesQty: 5, SalesValue: 50}, days[2])
	for i, d := range days {
		if i != 2 {
			assert.Zero(t, d, "day %d should be empty", i+1)
		}
	}
}

func TestAggregateDaily_MeanUnitPrice(t *testing.T) {
	events := []OrderEvent{
		{OrderDate: daysAgo(3), Status: StatusPaid, ProductID: "P1", SKU: "ABC-001", Quantity: 2, Value: 20},
		{OrderDate: daysAgo(3), Status: StatusPaid, ProductID: "P1", SKU: "ABC-001", Quantity: 3, Value: 30},
	}

	out := AggregateDaily(events, today, MeanUnitPrice)
	days := out[Key{ProductID: "P1", SKU: "ABC-001"}]

	assert.Equal(t, 5, days[2].SalesQty)
	assert.InDelta(t, 25.0, days[2].SalesValue, 1e-9)
}

func TestAggregateDaily_GroupsPerKey(t *testing.T) {
	events := []OrderEvent{
		{OrderDate: daysAgo(1), Status: StatusPaid, ProductID: "P1", SKU: "A-1", Quantity: 1, Value: 10},
		{OrderDate: daysAgo(1), Status: StatusPaid, ProductID: "P1", SKU: "A-2", Quantity: 2, Value: 20},
		{OrderDate: daysAgo(5), Status: StatusPaid, ProductID: "P2", SKU: "A-1", Quantity: 3, Value: 30},
	}

	out := AggregateDaily(events, today, SumLineValue)
	require.Len(t, out, 3)
	assert.Equal(t, 1, out[Key{"P1", "A-1"}][0].SalesQty)
	assert.Equal(t, 2, out[Key{"P1", "A-2"}][0].SalesQty)
	assert.Equal(t, 3, out[Key{"P2", "A-1"}][4].SalesQty)
}

func TestAggregateDaily_DateOnlyComparison(t *testing.T) {
	// 23:59 three days ago and 00:01 three days ago land in the same bucket.
	d := daysAgo(3)
	late := time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 0, 0, time.Local)
	early := time.Date(d.Year(), d.Month(), d.Day(), 0, 1, 0, 0, time.Local)

	events := []OrderEvent{
		{OrderDate: late, Status: StatusPaid, ProductID: "P1", SKU: "A-1", Quantity: 1, Value: 10},
		{OrderDate: early, Status: StatusPaid, ProductID: "P1", SKU: "A-1", Quantity: 1, Value: 10},
	}

	out := AggregateDaily(events, today, SumLineValue)
	assert.Equal(t, DailyBucket{SalesQty: 2, SalesValue: 20}, out[Key{"P1", "A-1"}][2])
}
