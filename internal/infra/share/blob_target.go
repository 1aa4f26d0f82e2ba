// Package share implements the ShareTarget over a gocloud.dev blob bucket,
// so the export artifact can be handed to a local directory (file://) in
// development or an object store in production without code changes.
package share

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"

	"creditdesk/internal/domain/service"
	"creditdesk/internal/util"

	"github.com/pkg/errors"
	"gocloud.dev/blob"

	// Drivers registered for bucket URL schemes.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type blobTarget struct {
	bucketURL string
	logger    *slog.Logger
}

// NewBlobTarget creates a ShareTarget writing into the bucket at bucketURL.
func NewBlobTarget(bucketURL string, logger *slog.Logger) service.ShareTarget {
	return &blobTarget{
		bucketURL: bucketURL,
		logger:    logger,
	}
}

// Publish decodes the base64 document and writes it under fileName,
// returning the artifact location. The bucket is opened per call; export is
// a rare, user-triggered action.
func (t *blobTarget) Publish(ctx context.Context, fileName string, base64Doc string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(base64Doc)
	if err != nil {
		return "", errors.Wrap(err, "failed to decode report document")
	}

	bucket, err := blob.OpenBucket(ctx, t.bucketURL)
	if err != nil {
		return "", errors.Wrapf(err, "failed to open bucket %s", t.bucketURL)
	}
	defer bucket.Close()

	opts := &blob.WriterOptions{ContentType: xlsxContentType}
	if err := bucket.WriteAll(ctx, fileName, raw, opts); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", fileName)
	}

	location := strings.TrimRight(t.bucketURL, "/") + "/" + fileName
	t.logger.Info("report artifact published",
		slog.String("location", location),
		slog.String("size", util.FormatBytes(int64(len(raw)))),
	)

	return location, nil
}
