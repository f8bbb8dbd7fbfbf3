// Package storage uploads contact-form attachments to S3-compatible blob
// storage and resolves their public URLs.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/kitchencraft/site-api/pkg/logging"
)

// S3API is the subset of the S3 client used by Uploader.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ErrNoPublicURL is returned when the object was stored but no public base URL
// is configured to resolve it.
var ErrNoPublicURL = errors.New("storage: upload succeeded but public URL is missing")

// File is one user-supplied attachment.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// Uploader writes attachments under a fixed prefix and returns public URLs.
type Uploader struct {
	bucket        string
	publicBaseURL string
	s3Client      S3API
	logger        *logging.Logger
}

// NewUploader creates an Uploader. publicBaseURL is the externally reachable
// root under which bucket objects are served.
func NewUploader(s3Client S3API, bucket, publicBaseURL string, logger *logging.Logger) *Uploader {
	if logger == nil {
		logger = logging.Default()
	}
	return &Uploader{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		s3Client:      s3Client,
		logger:        logger,
	}
}

// Enabled returns true if uploads are configured.
func (u *Uploader) Enabled() bool {
	return u != nil && u.bucket != "" && u.s3Client != nil
}

// Upload stores one attachment and returns its public URL. Keys are
// collision-resistant by construction (millisecond timestamp plus random
// suffix), so identically named files never clash.
func (u *Uploader) Upload(ctx context.Context, f File) (string, error) {
	if !u.Enabled() {
		return "", errors.New("storage: uploader not configured")
	}

	key := objectKey(f.Name)
	contentType := f.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := u.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(f.Data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("storage: s3 put %s: %w", key, err)
	}

	if u.publicBaseURL == "" {
		return "", ErrNoPublicURL
	}
	publicURL := fmt.Sprintf("%s/%s/%s", u.publicBaseURL, u.bucket, key)

	u.logger.Info("attachment uploaded",
		"key", key,
		"size", f.Size,
		"content_type", contentType,
	)
	return publicURL, nil
}

func objectKey(filename string) string {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	if ext == "" {
		ext = "bin"
	}
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("leads/%d-%s.%s", time.Now().UnixMilli(), suffix, ext)
}
