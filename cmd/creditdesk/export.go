package main

import (
	"context"
	"fmt"
	"os"

	"creditdesk/internal/domain/faults"
	"creditdesk/internal/infra/report"
	"creditdesk/internal/infra/share"
	"creditdesk/internal/usecase/impl"

	"github.com/pkg/errors"
)

func runExport(ctx context.Context) error {
	deskApp, err := newApp()
	if err != nil {
		return err
	}

	if deskApp.cfg.Export.BucketURL == "" {
		return errors.New("export.bucketUrl must be configured for export")
	}

	exporter := impl.NewExportService(
		deskApp.directory,
		report.NewExcelBuilder(),
		share.NewBlobTarget(deskApp.cfg.Export.BucketURL, deskApp.logger),
		deskApp.cfg,
		deskApp.logger,
	)

	result, err := exporter.Export(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, faults.UserMessage(err))

		return err
	}

	fmt.Printf("Exported %d rows for %d users to %s\n", result.Rows, result.Users, result.Location)

	return nil
}
