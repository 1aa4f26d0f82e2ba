package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"creditdesk/config"
	"creditdesk/internal/domain/entity"
	"creditdesk/internal/domain/repository"
	"creditdesk/internal/domain/service"
	"creditdesk/internal/usecase"
	"creditdesk/internal/util"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type exportService struct {
	directory repository.DirectoryRepository
	builder   service.ReportBuilder
	share     service.ShareTarget
	fileName  string
	logger    *slog.Logger
}

// NewExportService creates the export action controller.
func NewExportService(
	directory repository.DirectoryRepository,
	builder service.ReportBuilder,
	share service.ShareTarget,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ExportUsecase {
	return &exportService{
		directory: directory,
		builder:   builder,
		share:     share,
		fileName:  cfg.Export.FileName,
		logger:    logger,
	}
}

// Export fetches the directory, fans out one ledger fetch per user (all
// dispatched together, no concurrency limit), waits for all of them, then
// builds and publishes the workbook. The first ledger failure aborts the
// whole export; no partial report is ever produced.
func (s *exportService) Export(ctx context.Context) (*usecase.ExportResult, error) {
	start := time.Now()

	users, err := s.directory.ListUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch users for export")
	}

	ledgers := make(map[string][]entity.Transaction, len(users))
	var mu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	for _, user := range users {
		group.Go(func() error {
			transactions, err := s.directory.ListTransactions(groupCtx, user.UserID)
			if err != nil {
				return errors.Wrapf(err, "failed to fetch transactions for user %s", user.UserID)
			}

			mu.Lock()
			ledgers[user.UserID] = transactions
			mu.Unlock()

			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	document, err := s.builder.BuildReport(users, ledgers)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build report")
	}

	location, err := s.share.Publish(ctx, s.fileName, document)
	if err != nil {
		return nil, errors.Wrap(err, "failed to publish report")
	}

	rows := 0
	for _, user := range users {
		if n := len(ledgers[user.UserID]); n > 0 {
			rows += n
		} else {
			rows++
		}
	}

	s.logger.Info("export completed",
		slog.Int("users", len(users)),
		slog.Int("rows", rows),
		slog.String("duration", util.FormatDuration(time.Since(start))),
	)

	return &usecase.ExportResult{
		Location: location,
		Users:    len(users),
		Rows:     rows,
	}, nil
}
