package s3

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"file-storage-api/config"
)

// Client is the blob store adapter over any S3-compatible endpoint.
type Client struct {
	logger *zap.Logger
	mc     *minio.Client
	region string
	bucket string
}

func New(
	ctx context.Context,
	logger *zap.Logger,
	cfg config.S3,
) (*Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("s3 client init: %w", err)
	}

	exists, err := mc.BucketExists(ctx, cfg.BucketFiles)
	if err != nil {
		return nil, fmt.Errorf("s3 bucket check: %w", err)
	}
	if !exists {
		if err = mc.MakeBucket(ctx, cfg.BucketFiles, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("s3 bucket create: %w", err)
		}
	}

	logger.Info("s3 connected successfully", zap.String("bucket", cfg.BucketFiles))

	return &Client{
		logger: logger,
		mc:     mc,
		region: cfg.Region,
		bucket: cfg.BucketFiles,
	}, nil
}

func (c *Client) PutObject(ctx context.Context, key string, r io.Reader, size int64) (string, error) {
	_, err := c.mc.PutObject(ctx, c.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return "", err
	}

	return c.GetPublicURL(key), nil
}

func (c *Client) GetObject(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := c.mc.GetObject(ctx, c.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	// GetObject is lazy; surface a missing key now, not on first read.
	if _, err = obj.Stat(); err != nil {
		_ = obj.Close()
		return nil, err
	}

	return obj, nil
}

func (c *Client) DeleteObject(ctx context.Context, key string) error {
	return c.mc.RemoveObject(ctx, c.bucket, key, minio.RemoveObjectOptions{})
}

func (c *Client) GetPublicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", c.mc.EndpointURL().String(), c.bucket, key)
}
