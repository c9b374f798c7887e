package blobstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
	"github.com/osse101/FactoryPlanner_Go/internal/repository"
)

// S3Config configures the S3 compatible plan document store
type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// S3Store keeps plan documents as JSON objects in a bucket.
// The bucket is created on first use.
type S3Store struct {
	client     *minio.Client
	bucketName string
	region     string
	initOnce   sync.Once
	initErr    error
}

// NewS3Store creates a store for cfg without contacting the server
func NewS3Store(cfg S3Config) (*S3Store, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("%w: s3 endpoint is required", domain.ErrInvalidInput)
	}
	access := strings.TrimSpace(cfg.AccessKey)
	secret := strings.TrimSpace(cfg.SecretKey)
	if access == "" || secret == "" {
		return nil, fmt.Errorf("%w: s3 access key and secret key are required", domain.ErrInvalidInput)
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, fmt.Errorf("%w: s3 bucket is required", domain.ErrInvalidInput)
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = DefaultRegion
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}

	return &S3Store{
		client:     client,
		bucketName: bucket,
		region:     region,
	}, nil
}

func (s *S3Store) ensureBucket(ctx context.Context) error {
	s.initOnce.Do(func() {
		exists, err := s.client.BucketExists(ctx, s.bucketName)
		if err != nil {
			s.initErr = err
			return
		}
		if exists {
			return
		}
		s.initErr = s.client.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{Region: s.region})
	})
	return s.initErr
}

// PutDocument stores doc under id, replacing any previous version
func (s *S3Store) PutDocument(ctx context.Context, id string, doc *domain.PlanDocument) error {
	key, err := objectKey(id)
	if err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("%w: document is nil", domain.ErrInvalidPlan)
	}
	if err := s.ensureBucket(ctx); err != nil {
		return fmt.Errorf("ensure bucket: %w", err)
	}

	content, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode plan document: %w", err)
	}

	_, err = s.client.PutObject(ctx, s.bucketName, key, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: ContentTypeJSON,
	})
	if err != nil {
		return fmt.Errorf("put plan document %s: %w", id, err)
	}
	return nil
}

// GetDocument loads the document stored under id
func (s *S3Store) GetDocument(ctx context.Context, id string) (*domain.PlanDocument, error) {
	key, err := objectKey(id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("ensure bucket: %w", err)
	}

	obj, err := s.client.GetObject(ctx, s.bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, mapNotFound(id, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, mapNotFound(id, err)
	}
	return decodeDocument(id, data)
}

// DeleteDocument removes the document stored under id; missing documents are not an error
func (s *S3Store) DeleteDocument(ctx context.Context, id string) error {
	key, err := objectKey(id)
	if err != nil {
		return err
	}
	if err := s.ensureBucket(ctx); err != nil {
		return fmt.Errorf("ensure bucket: %w", err)
	}
	if err := s.client.RemoveObject(ctx, s.bucketName, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete plan document %s: %w", id, err)
	}
	return nil
}

// ListDocuments returns every plan document in the bucket
func (s *S3Store) ListDocuments(ctx context.Context) ([]repository.DocumentInfo, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("ensure bucket: %w", err)
	}

	var infos []repository.DocumentInfo
	for obj := range s.client.ListObjects(ctx, s.bucketName, minio.ListObjectsOptions{Prefix: KeyPrefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list plan documents: %w", obj.Err)
		}
		id, ok := documentID(obj.Key)
		if !ok {
			continue
		}
		infos = append(infos, repository.DocumentInfo{ID: id, ModifiedAt: obj.LastModified})
	}
	return infos, nil
}

func mapNotFound(id string, err error) error {
	errResp := minio.ToErrorResponse(err)
	if errResp.Code == "NoSuchKey" || errResp.Code == "NoSuchBucket" {
		return fmt.Errorf("%w: document '%s'", domain.ErrPlanNotFound, id)
	}
	return fmt.Errorf("get plan document %s: %w", id, err)
}

func decodeDocument(id string, data []byte) (*domain.PlanDocument, error) {
	var doc domain.PlanDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: document '%s' is corrupt: %v", domain.ErrInvalidPlan, id, err)
	}
	return &doc, nil
}

func objectKey(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.ContainsAny(id, "/\\") {
		return "", fmt.Errorf("%w: invalid plan id '%s'", domain.ErrInvalidInput, id)
	}
	return KeyPrefix + id + KeySuffix, nil
}

// documentID is the inverse of objectKey
func documentID(key string) (string, bool) {
	if !strings.HasPrefix(key, KeyPrefix) || !strings.HasSuffix(key, KeySuffix) {
		return "", false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(key, KeyPrefix), KeySuffix)
	if id == "" || strings.ContainsAny(id, "/\\") {
		return "", false
	}
	return id, true
}
