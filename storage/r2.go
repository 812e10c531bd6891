package storage

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// R2Store removes media objects from a Cloudflare R2 bucket through the S3
// API.
type R2Store struct {
	Client *s3.Client
	Bucket string
}

func NewR2Store(client *s3.Client, bucket string) *R2Store {
	return &R2Store{Client: client, Bucket: bucket}
}

func (s *R2Store) Remove(ctx context.Context, key string) error {
	_, err := s.Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	_, err = s.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	})
	return err
}
