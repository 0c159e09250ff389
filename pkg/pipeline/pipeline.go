// Package pipeline orchestrates one linear batch run: read the four CSV
// exports, clean them, join and deduplicate, group into per-customer
// documents, and write the JSON artifact. The run is fully synchronous and
// holds all intermediate tables in memory; inputs are bounded snapshots.
package pipeline

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"custpipe/pkg/config"
	"custpipe/pkg/engine"
	"custpipe/pkg/parser"
	"custpipe/pkg/report"
	"custpipe/pkg/schema"
)

// Summary reports what one run did.
type Summary struct {
	RunID          string
	CustomerRows   int
	TouchpointRows int
	ScheduleRows   int
	EmployeeRows   int
	WideRows       int
	DedupedRows    int
	Documents      int
	OutputPath     string
	Elapsed        time.Duration
}

// Run executes the whole pipeline under the given configuration. Structural
// failures (unreadable file, missing required column) abort with a wrapped
// error; per-cell problems degrade to Null values inside the stages and
// never surface here.
func Run(cfg config.Config, logger *zap.Logger) (*Summary, error) {
	start := time.Now()
	runID := uuid.NewString()
	logger = logger.With(zap.String("run_id", runID))

	customerTable, err := loadTable(logger, cfg.CustomerInfoPath(), schema.ReportMetadataLines)
	if err != nil {
		return nil, err
	}
	contacts, err := schema.CleanCustomerInfo(customerTable)
	if err != nil {
		return nil, err
	}

	touchpointTable, err := loadTable(logger, cfg.TouchpointsPath(), 0)
	if err != nil {
		return nil, err
	}
	touchpoints, err := schema.CleanTouchpoints(touchpointTable)
	if err != nil {
		return nil, err
	}

	scheduleTable, err := loadTable(logger, cfg.SchedulePath(), 0)
	if err != nil {
		return nil, err
	}
	shifts, err := schema.CleanSchedule(scheduleTable)
	if err != nil {
		return nil, err
	}

	employeeTable, err := loadTable(logger, cfg.EmployeeInfoPath(), schema.ReportMetadataLines)
	if err != nil {
		return nil, err
	}
	employees, err := schema.CleanEmployeeInfo(employeeTable)
	if err != nil {
		return nil, err
	}

	logger.Info("sources cleaned",
		zap.Int("contacts", len(contacts)),
		zap.Int("touchpoints", len(touchpoints)),
		zap.Int("shifts", len(shifts)),
		zap.Int("employees", len(employees)))

	assignments := engine.JoinScheduleEmployees(shifts, employees)
	wide := engine.BuildWideRows(touchpoints, contacts, assignments)
	deduped := engine.Dedup(wide)
	logger.Info("tables joined",
		zap.Int("wide_rows", len(wide)),
		zap.Int("deduped_rows", len(deduped)))

	docs := report.BuildDocuments(deduped)

	outPath := cfg.OutputPath()
	if err := report.WriteFile(outPath, docs); err != nil {
		return nil, err
	}

	summary := &Summary{
		RunID:          runID,
		CustomerRows:   len(contacts),
		TouchpointRows: len(touchpoints),
		ScheduleRows:   len(shifts),
		EmployeeRows:   len(employees),
		WideRows:       len(wide),
		DedupedRows:    len(deduped),
		Documents:      len(docs),
		OutputPath:     outPath,
		Elapsed:        time.Since(start),
	}
	logger.Info("pipeline complete",
		zap.Int("documents", len(docs)),
		zap.String("output", outPath),
		zap.Duration("elapsed", summary.Elapsed))
	return summary, nil
}

// loadTable reads and parses one CSV input. Parse warnings are logged, never
// fatal.
func loadTable(logger *zap.Logger, path string, skipLines int) (*parser.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read input %s", path)
	}
	table, err := parser.Parse(data, parser.Options{SkipLines: skipLines})
	if err != nil {
		return nil, eris.Wrapf(err, "parse %s", path)
	}
	logger.Info("source loaded",
		zap.String("path", path),
		zap.Int("rows", len(table.Records)),
		zap.Int("warnings", len(table.Warnings)))
	for _, w := range table.Warnings {
		logger.Warn("parse warning",
			zap.String("path", path),
			zap.Int("row", w.Row),
			zap.String("message", w.Message))
	}
	return table, nil
}
