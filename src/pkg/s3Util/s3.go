package s3Util

import (
	"bytes"
	"context"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/model"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/util"
	"go.uber.org/zap"
	"os"
)

// S3Client handles object-store writes for the ConnectCard storage bucket.
type S3Client struct {
	client     *s3.Client
	bucketName string
	log        *zap.SugaredLogger
}

func NewS3Client(ctx context.Context, logger *zap.SugaredLogger) (*S3Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	bucketName := os.Getenv(util.StorageBucketNameEnvKey)
	if util.IsEmptyString(bucketName) {
		return nil, fmt.Errorf("%s is not configured", util.StorageBucketNameEnvKey)
	}

	return &S3Client{
		client:     s3.NewFromConfig(cfg),
		bucketName: bucketName,
		log:        logger,
	}, nil
}

// PutPublicJSON overwrites the object at key with a public-readable JSON
// body. The cache directive lets CDN/edge caches serve it for an hour after
// each publish.
func (s *S3Client) PutPublicJSON(ctx context.Context, key string, body []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucketName),
		Key:          aws.String(key),
		Body:         bytes.NewReader(body),
		ContentType:  aws.String("application/json"),
		CacheControl: aws.String(model.SnapshotCacheControl),
		ACL:          types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		s.log.Errorf("PutObject failed for key %s in bucket %s: %v", key, s.bucketName, err)
		return err
	}

	s.log.Infof("Published %d bytes to s3://%s/%s", len(body), s.bucketName, key)
	return nil
}
