package report

import (
	"context"
	"time"

	"mkd-reporter/pkg/logger"
)

// Tables holds the three projected source row-sets for one run.
type Tables struct {
	Inventory []InventoryRow
	Profit    []ProfitRow
	Orders    []OrderEvent
}

// Source supplies the three source tables. A missing table aborts the run
// before any computation.
type Source interface {
	Load() (Tables, error)
}

// ArtifactWriter persists the report artifact and returns the path actually
// written (it may differ from the configured path on a locking conflict).
type ArtifactWriter interface {
	Write(rows []OutputRow, format ProfitFormat) (string, error)
}

// Sink is the full-replace persistence boundary. Clearing and inserting are
// two separate operations with no atomicity guarantee across them.
type Sink interface {
	EnsureSchema(ctx context.Context) error
	Replace(ctx context.Context, rows []OutputRow, batchDate time.Time) (cleared int64, err error)
}

// SinkStatus reports how the sink step of a run ended.
type SinkStatus int

const (
	SinkSynced SinkStatus = iota
	// SinkSkipped means no sink was available; the artifact is still written.
	SinkSkipped
	SinkFailed
)

func (s SinkStatus) String() string {
	switch s {
	case SinkSynced:
		return "synced"
	case SinkSkipped:
		return "skipped"
	default:
		return "failed"
	}
}

// RunResult carries the per-stage outcome of one pipeline run.
type RunResult struct {
	BatchDate      time.Time
	InventoryRows  int
	ProfitRows     int
	OrderRows      int
	AggregatedKeys int
	OutputRows     int
	ArtifactPath   string
	SinkStatus     SinkStatus
	SinkCleared    int64
	SinkErr        error
}

// Runner wires the pipeline stages to the external boundaries. The core is
// single-threaded: each stage completes before the next starts.
type Runner struct {
	source       Source
	artifact     ArtifactWriter
	sink         Sink // nil when the database is unavailable
	log          *logger.Logger
	aggMode      DailyAggregationMode
	profitFormat ProfitFormat
	now          func() time.Time
}

func NewRunner(source Source, artifact ArtifactWriter, sink Sink, log *logger.Logger, aggMode DailyAggregationMode, profitFormat ProfitFormat) *Runner {
	return &Runner{
		source:       source,
		artifact:     artifact,
		sink:         sink,
		log:          log,
		aggMode:      aggMode,
		profitFormat: profitFormat,
		now:          time.Now,
	}
}

// Run executes one batch. It returns an error only when the run produced no
// output at all (missing source, artifact write failure); a failed or
// unavailable sink is reported through the result instead, because the
// artifact alone is a complete run product.
func (r *Runner) Run(ctx context.Context) (*RunResult, error) {
	today := r.now()
	result := &RunResult{
		BatchDate:  time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local),
		SinkStatus: SinkSkipped,
	}

	tables, err := r.source.Load()
	if err != nil {
		return nil, err
	}
	result.InventoryRows = len(tables.Inventory)
	result.ProfitRows = len(tables.Profit)
	result.OrderRows = len(tables.Orders)
	r.log.Infof("sources loaded: inventory=%d profit=%d orders=%d",
		result.InventoryRows, result.ProfitRows, result.OrderRows)

	records := BuildBase(tables.Inventory)
	records = JoinProfit(records, tables.Profit)

	daily := AggregateDaily(tables.Orders, today, r.aggMode)
	result.AggregatedKeys = len(daily)
	r.log.Infof("daily aggregation (%s): %d keys with paid orders in window", r.aggMode, len(daily))

	records = MergeDaily(records, daily)

	rows := FormatOutput(records)
	result.OutputRows = len(rows)
	r.log.Infof("formatted output: %d rows after dedup", len(rows))

	path, err := r.artifact.Write(rows, r.profitFormat)
	if err != nil {
		return nil, err
	}
	result.ArtifactPath = path
	r.log.Infof("report artifact written: %s", path)

	r.syncToSink(ctx, rows, result)
	return result, nil
}

func (r *Runner) syncToSink(ctx context.Context, rows []OutputRow, result *RunResult) {
	if r.sink == nil {
		r.log.Warn("sink unavailable, skipping database sync")
		result.SinkStatus = SinkSkipped
		return
	}
	if err := r.sink.EnsureSchema(ctx); err != nil {
		r.log.WithError(err).Error("sink schema check failed")
		result.SinkStatus = SinkFailed
		result.SinkErr = err
		return
	}
	cleared, err := r.sink.Replace(ctx, rows, result.BatchDate)
	result.SinkCleared = cleared
	if err != nil {
		// No rollback: the batch may be cleared but not inserted.
		r.log.WithError(err).Error("sink write failed")
		result.SinkStatus = SinkFailed
		result.SinkErr = err
		return
	}
	result.SinkStatus = SinkSynced
	r.log.Infof("synced %d rows (cleared %d) for %s", len(rows), cleared, result.BatchDate.Format("2006-01-02"))
}
