// internal/services/storage_service.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/dukan-admin/internal/config"
	"github.com/javajoker/dukan-admin/internal/form"
)

// StorageService puts form images into S3 and hands back their public URL.
type StorageService struct {
	s3Client s3iface.S3API
	config   *config.Config
	folder   string
}

// NewImageStore returns an S3 backed store when a bucket is configured and
// falls back to embedding images as data URLs otherwise.
func NewImageStore(cfg *config.Config, folder string) (form.ImageStore, error) {
	if cfg.AWS.S3Bucket == "" {
		return form.NewDataURLStore(cfg.Upload.MaxImageSize), nil
	}

	awsConfig := &aws.Config{
		Region: aws.String(cfg.AWS.Region),
	}
	if cfg.AWS.AccessKeyID != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(
			cfg.AWS.AccessKeyID,
			cfg.AWS.SecretAccessKey,
			"",
		)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return NewStorageService(s3.New(sess), cfg, folder), nil
}

func NewStorageService(client s3iface.S3API, cfg *config.Config, folder string) *StorageService {
	return &StorageService{
		s3Client: client,
		config:   cfg,
		folder:   folder,
	}
}

func (s *StorageService) Put(ctx context.Context, filename string, r io.Reader) (string, error) {
	img, err := form.ReadImage(filename, r, s.maxSize())
	if err != nil {
		return "", err
	}

	key := s.generateFileName(filename)
	_, err = s.s3Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.config.AWS.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(img.Data),
		ContentType:   aws.String(img.ContentType),
		ContentLength: aws.Int64(int64(len(img.Data))),
		ACL:           aws.String(s3.ObjectCannedACLPublicRead),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"key":          key,
		"size":         len(img.Data),
		"content_type": img.ContentType,
	}).Info("Image uploaded")

	return s.getS3URL(key), nil
}

func (s *StorageService) maxSize() int64 {
	if s.config.Upload.MaxImageSize > 0 {
		return s.config.Upload.MaxImageSize
	}
	return form.DefaultMaxImageSize
}

func (s *StorageService) generateFileName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	timestamp := time.Now().Format("20060102")
	filename := fmt.Sprintf("%s_%s%s", timestamp, uuid.New().String()[:8], ext)

	if s.folder != "" {
		return s.folder + "/" + filename
	}
	return filename
}

func (s *StorageService) getS3URL(key string) string {
	if s.config.AWS.CloudFrontURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(s.config.AWS.CloudFrontURL, "/"), key)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		s.config.AWS.S3Bucket, s.config.AWS.Region, key)
}
