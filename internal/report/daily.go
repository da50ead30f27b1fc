package report

import "time"

// AggregateDaily buckets paid orders by trailing calendar day. Bucket i
// covers (i+1) days before today; orders dated today or 8+ days back are
// ignored outright. The result is sparse: a key appears only if it had at
// least one paid order inside the window.
//
// today is the run's wall-clock date; comparison is date-only, time-of-day
// is discarded.
func AggregateDaily(events []OrderEvent, today time.Time, mode DailyAggregationMode) map[Key][WindowDays]DailyBucket {
	type accum struct {
		qty      int
		valueSum float64
		count    int
	}
	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	base := day(today)

	// (key, daysAgo-1) -> accumulator
	buckets := make(map[Key]*[WindowDays]accum)
	for _, ev := range events {
		if ev.Status != StatusPaid {
			continue
		}
		diff := int(base.Sub(day(ev.OrderDate)).Hours() / 24)
		if diff < 1 || diff > WindowDays {
			continue
		}
		key := Key{ProductID: ev.ProductID, SKU: ev.SKU}
		acc := buckets[key]
		if acc == nil {
			acc = &[WindowDays]accum{}
			buckets[key] = acc
		}
		acc[diff-1].qty += ev.Quantity
		acc[diff-1].valueSum += ev.Value
		acc[diff-1].count++
	}

	out := make(map[Key][WindowDays]DailyBucket, len(buckets))
	for key, acc := range buckets {
		var days [WindowDays]DailyBucket
		for i, a := range acc {
			if a.count == 0 {
				continue
			}
			days[i].SalesQty = a.qty
			if mode == MeanUnitPrice {
				days[i].SalesValue = a.valueSum / float64(a.count)
			} else {
				days[i].SalesValue = a.valueSum
			}
		}
		out[key] = days
	}
	return out
}
