package report

// MergeDaily fills every record's seven daily buckets from the aggregation
// result, matching on exact (platform SPU, seller SKU). Buckets are reset to
// zero first, so records without a matching ledger key come out with a full
// set of zero buckets rather than missing entries.
func MergeDaily(records []Record, daily map[Key][WindowDays]DailyBucket) []Record {
	out := make([]Record, len(records))
	for i, rec := range records {
		rec.Daily = [WindowDays]DailyBucket{}
		if days, ok := daily[Key{ProductID: rec.PlatformSPU, SKU: rec.SellerSKU}]; ok {
			rec.Daily = days
		}
		out[i] = rec
	}
	return out
}
