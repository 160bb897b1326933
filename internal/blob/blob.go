// Package blob stores the raw scanned invoice document and hands back a URL
// the extraction service can fetch.
package blob

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// Uploader is the blob-store capability consumed by the scan path.
type Uploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}

// S3Uploader stores documents in an S3 bucket under a retailer-visible
// date-partitioned key.
type S3Uploader struct {
	bucket   string
	uploader *s3manager.Uploader
}

func NewS3Uploader(region, bucket string) (*S3Uploader, error) {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return nil, err
	}
	return &S3Uploader{
		bucket:   bucket,
		uploader: s3manager.NewUploader(sess),
	}, nil
}

func (u *S3Uploader) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	key := path.Join("backfill", time.Now().Format("2006/01/02"), fmt.Sprintf("%d-%s", time.Now().UnixNano(), path.Base(filename)))
	out, err := u.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		return "", err
	}
	return out.Location, nil
}
