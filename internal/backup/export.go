// Package backup uploads JSON snapshots of a user's items to S3-compatible
// object storage (AWS S3 or MinIO).
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	tc "github.com/dmitrijs2005/dailytracker/internal/config"
	"github.com/dmitrijs2005/dailytracker/internal/logging"
	"github.com/dmitrijs2005/dailytracker/internal/models"
	"github.com/google/uuid"
)

var ErrExportDisabled = errors.New("export is not configured")

// LinkValidity is how long the download link of an export stays usable.
const LinkValidity = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// Snapshot is the document written for one export.
type Snapshot struct {
	Username   string         `json:"username"`
	ExportedAt time.Time      `json:"exported_at"`
	Items      []SnapshotItem `json:"items"`
}

type SnapshotItem struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	DueDate   string    `json:"due_date"`
	Type      string    `json:"item_type"`
	Time      *string   `json:"item_time,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewSnapshot(username string, items []models.Item, at time.Time) Snapshot {
	s := Snapshot{Username: username, ExportedAt: at.UTC(), Items: make([]SnapshotItem, 0, len(items))}
	for _, it := range items {
		s.Items = append(s.Items, SnapshotItem{
			ID:        it.ID,
			Title:     it.Title,
			Category:  it.Category,
			Status:    string(it.Status),
			DueDate:   it.DueDate.Format(models.DateLayout),
			Type:      string(it.Type),
			Time:      it.Time,
			CreatedAt: it.CreatedAt,
		})
	}
	return s
}

// Result tells where an export went.
type Result struct {
	Bucket string
	Key    string
	URL    string // presigned download link, valid for LinkValidity
	Items  int
}

type Exporter struct {
	config *tc.Config
	log    logging.Logger
	now    func() time.Time
}

func NewExporter(cfg *tc.Config, log logging.Logger) *Exporter {
	return &Exporter{config: cfg, log: log.With("module", "backup"), now: time.Now}
}

// StorageKey builds exports/<username>/<YYYY>/<MM>/<DD>/<uuid>.json.
func StorageKey(username string, at time.Time) string {
	name := strings.NewReplacer("/", "_", "\\", "_").Replace(username)
	return fmt.Sprintf("exports/%s/%s/%s.json", name, at.UTC().Format("2006/01/02"), uuid.New())
}

func (e *Exporter) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(e.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			e.config.S3AccessKey,
			e.config.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if e.config.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(e.config.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// Export writes a snapshot of items to the configured bucket and returns a
// presigned link to it.
func (e *Exporter) Export(ctx context.Context, username string, items []models.Item) (*Result, error) {
	if !e.config.ExportEnabled() {
		return nil, ErrExportDisabled
	}

	now := e.now()
	body, err := json.MarshalIndent(NewSnapshot(username, items, now), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("snapshot encoding error: %w", err)
	}

	client, err := e.getClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("s3 client error: %w", err)
	}

	bucket := e.config.S3Bucket
	key := StorageKey(username, now)

	if _, err := putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	}); err != nil {
		return nil, fmt.Errorf("upload error: %w", err)
	}

	res := &Result{Bucket: bucket, Key: key, Items: len(items)}

	req, err := presignGetObject(newS3PresignClient(client), ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(LinkValidity))
	if err != nil {
		// the upload itself succeeded
		e.log.Warn(ctx, "could not presign export link", "key", key, "error", err)
		return res, nil
	}
	res.URL = req.URL

	e.log.Info(ctx, "export uploaded", "bucket", bucket, "key", key, "items", len(items))
	return res, nil
}
