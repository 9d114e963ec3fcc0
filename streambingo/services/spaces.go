package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// SpacesService stores proof uploads in a DigitalOcean Spaces bucket via
// the S3 API.
type SpacesService struct {
	client    *s3.Client
	bucket    string
	region    string
	ProofRoot string
}

func NewSpacesService(spacesKey, spacesSecret, region, bucket, proofRoot string) *SpacesService {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(spacesKey, spacesSecret, "")),
		config.WithRegion(region),
	)
	if err != nil {
		panic(fmt.Sprintf("Unable to load Spaces config: %v", err))
	}

	return &SpacesService{
		client:    s3.NewFromConfig(cfg),
		bucket:    bucket,
		region:    region,
		ProofRoot: strings.TrimPrefix(proofRoot, "/"),
	}
}

// ProofKey builds a collision-resistant object key for a proof upload.
func (s *SpacesService) ProofKey(userID string, pokemonID int64, filename string) string {
	base := strings.ReplaceAll(path.Base(filename), " ", "_")
	return fmt.Sprintf("%s/%s/%d_%d_%s_%s",
		s.ProofRoot, userID, pokemonID, time.Now().Unix(), uuid.NewString()[:8], base)
}

// UploadProof writes one proof object and returns its public URL.
func (s *SpacesService) UploadProof(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           "public-read",
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload proof %s: %w", key, err)
	}

	return fmt.Sprintf("https://%s.%s.digitaloceanspaces.com/%s", s.bucket, s.region, key), nil
}
