package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/dmitrijs2005/draftkeeper/internal/client/identity"
	"github.com/dmitrijs2005/draftkeeper/internal/client/models"
	"github.com/dmitrijs2005/draftkeeper/internal/logging"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) s3API {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// s3API is the part of *s3.Client the store uses.
type s3API interface {
	s3.ListObjectsV2APIClient
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	DeleteObjects(ctx context.Context, in *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
}

// S3Options configures an S3-compatible bucket (AWS or MinIO).
type S3Options struct {
	Region       string
	BaseEndpoint string
	Bucket       string
	AccessKey    string
	SecretKey    string
}

// S3Store keeps one JSON object per project under
// users/<user id>/projects/<project id>.json. Ids without a user argument
// are resolved against the signed-in user.
type S3Store struct {
	client   s3API
	bucket   string
	identity identity.Provider
	logger   logging.Logger
}

func NewS3Store(ctx context.Context, o S3Options, id identity.Provider, logger logging.Logger) (*S3Store, error) {
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(o.Region)}
	// without static keys the SDK's default credential chain applies
	if o.AccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(o.AccessKey, o.SecretKey, "")))
	}

	cfg, err := loadDefaultAWSConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(so *s3.Options) {
		if o.BaseEndpoint != "" {
			so.BaseEndpoint = aws.String(o.BaseEndpoint)
			so.UsePathStyle = true
		}
	})

	return &S3Store{
		client:   client,
		bucket:   o.Bucket,
		identity: id,
		logger:   logger.With("module", "s3_store"),
	}, nil
}

func userPrefix(userID string) string {
	return path.Join("users", userID, "projects") + "/"
}

func objectKey(userID, id string) string {
	return userPrefix(userID) + id + ".json"
}

func (s *S3Store) currentUser(ctx context.Context) (string, error) {
	uid, ok := s.identity.CurrentUserID(ctx)
	if !ok {
		return "", ErrUnauthorized
	}
	return uid, nil
}

func (s *S3Store) SelectAll(ctx context.Context, userID string) ([]*models.CloudProject, error) {
	p := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(userPrefix(userID)),
	})

	var out []*models.CloudProject
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, mapS3Error("list", err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if !strings.HasSuffix(key, ".json") {
				continue
			}
			rec, err := s.get(ctx, key)
			if errors.Is(err, models.ErrSerialization) {
				s.logger.Warn(ctx, "skipping malformed remote object", "key", key, "error", err)
				continue
			}
			if err != nil {
				return nil, err
			}
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *S3Store) SelectByID(ctx context.Context, id string) (*models.CloudProject, error) {
	uid, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.get(ctx, objectKey(uid, id))
}

func (s *S3Store) get(ctx context.Context, key string) (*models.CloudProject, error) {
	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: aws.String(s.bucket), Key: aws.String(key)})
	if err != nil {
		return nil, mapS3Error("get "+key, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, ErrUnavailable)
	}

	var rec models.CloudProject
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("decode %s: %w: %v", key, models.ErrSerialization, err)
	}
	rec.Migrate()
	return &rec, nil
}

func (s *S3Store) Upsert(ctx context.Context, rec *models.CloudProject) error {
	if rec.UserID == "" {
		return fmt.Errorf("upsert %s: %w", rec.ID, ErrUnauthorized)
	}
	rec.Migrate()

	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s: %w: %v", rec.ID, models.ErrSerialization, err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey(rec.UserID, rec.ID)),
		Body:        bytes.NewReader(b),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return mapS3Error("put "+rec.ID, err)
	}
	return nil
}

func (s *S3Store) DeleteByID(ctx context.Context, id string) error {
	uid, err := s.currentUser(ctx)
	if err != nil {
		return err
	}
	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey(uid, id)),
	})
	if err != nil {
		return mapS3Error("delete "+id, err)
	}
	return nil
}

func (s *S3Store) DeleteAllUserData(ctx context.Context, userID string) error {
	p := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(path.Join("users", userID) + "/"),
	})

	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return mapS3Error("list", err)
		}
		if len(page.Contents) == 0 {
			continue
		}

		ids := make([]types.ObjectIdentifier, 0, len(page.Contents))
		for _, obj := range page.Contents {
			ids = append(ids, types.ObjectIdentifier{Key: obj.Key})
		}
		_, err = s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(s.bucket),
			Delete: &types.Delete{Objects: ids, Quiet: aws.Bool(true)},
		})
		if err != nil {
			return mapS3Error("delete objects", err)
		}
	}
	return nil
}

func mapS3Error(op string, err error) error {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch", "ExpiredToken":
			return fmt.Errorf("%s: %w: %s", op, ErrUnauthorized, apiErr.ErrorMessage())
		}
		return fmt.Errorf("%s: %w: %s", op, ErrRejected, apiErr.ErrorMessage())
	}

	return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
}
