package gamestore

import (
	"context"
	"fmt"

	"github.com/SOC-Training-Tool/SOC-Server/internal/aws/storage"
	"github.com/SOC-Training-Tool/SOC-Server/internal/sqlite"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// awsLoadOptions picks static keys when both are set, otherwise the
// named shared profile, otherwise the SDK default chain.
func awsLoadOptions(cfg Config) []func(*config.LoadOptions) error {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.AwsRegion),
	}
	switch {
	case cfg.AccessKeyId != "" && cfg.SecretAccessKey != "":
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyId, cfg.SecretAccessKey, ""),
		))
	case cfg.AwsProfile != "":
		opts = append(opts, config.WithSharedConfigProfile(cfg.AwsProfile))
	}
	return opts
}

// NewAWSClient builds a client backed by S3 and DynamoDB.
func NewAWSClient(ctx context.Context, cfg Config) (*Client, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx, awsLoadOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	storageClient := storage.NewClient(
		dynamodb.NewFromConfig(awsCfg),
		s3.NewFromConfig(awsCfg),
		storage.Config{
			PlayerIndexTableName: aws.String(cfg.PlayerIndexTableName),
		},
	)
	return NewClient(storageClient, storageClient, cfg), nil
}

// NewLocalClient builds a client backed by a SQLite file at path.
func NewLocalClient(path string, cfg Config) (*Client, error) {
	store, err := sqlite.Open(path)
	if err != nil {
		return nil, err
	}
	client := NewClient(store, store, cfg)
	client.closer = store
	return client, nil
}
