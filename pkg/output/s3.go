package output

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/df07/go-sphere-raytracer/pkg/config"
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// UploadTimeout bounds a single upload
const UploadTimeout = 30 * time.Second

// S3Uploader stores encoded renders in an S3 bucket
type S3Uploader struct {
	client s3iface.S3API
	bucket string
	prefix string
	logger core.Logger
}

// NewS3Uploader creates an uploader from cfg. Static credentials are used when
// both keys are set; otherwise the default AWS credential chain applies.
func NewS3Uploader(cfg config.S3Config, logger core.Logger) (*S3Uploader, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		// S3-compatible stores generally need path-style addressing
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return NewS3UploaderWithClient(s3.New(sess), cfg.Bucket, cfg.Prefix, logger), nil
}

// NewS3UploaderWithClient creates an uploader around an existing client
func NewS3UploaderWithClient(client s3iface.S3API, bucket, prefix string, logger core.Logger) *S3Uploader {
	return &S3Uploader{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

// ObjectKey returns the key a local file is stored under
func (u *S3Uploader) ObjectKey(localPath string) string {
	return path.Join(u.prefix, filepath.Base(localPath))
}

// Upload stores data under the key derived from localPath and returns that key
func (u *S3Uploader) Upload(ctx context.Context, localPath string, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	key := u.ObjectKey(localPath)
	size := int64(len(data))
	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(ContentType(localPath)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	if u.logger != nil {
		u.logger.Printf("Uploaded %s to s3://%s (%d bytes)\n", key, u.bucket, size)
	}
	return key, nil
}
