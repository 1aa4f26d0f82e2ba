package usecase

import "context"

// ExportResult describes a completed export.
type ExportResult struct {
	Location string // where the artifact was published
	Users    int    // users included
	Rows     int    // data rows emitted (sum of max(1, ledger size))
}

// ExportUsecase produces the combined user+transaction report and hands it
// to the share target. The export is all-or-nothing: if any single ledger
// fetch fails the whole export aborts and no partial report is produced.
type ExportUsecase interface {
	Export(ctx context.Context) (*ExportResult, error)
}
