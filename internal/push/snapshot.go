package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"

	"bilifeed/internal/search"
)

// S3Snapshot archives the export JSON of each push run to object storage,
// one object per run under a date-stamped key.
type S3Snapshot struct {
	cli    *minio.Client
	bucket string
	prefix string
}

func NewS3Snapshot(cli *minio.Client, bucket, prefix string) *S3Snapshot {
	return &S3Snapshot{cli: cli, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

func (s *S3Snapshot) Upload(ctx context.Context, records []search.ExportRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	key := fmt.Sprintf("%s/%s.json", s.prefix, time.Now().Format("2006-01-02T150405"))
	_, err = s.cli.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("put snapshot to s3 failed: %w", err)
	}
	return nil
}
