package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	ErrObjectNotFound    = fmt.Errorf("object not found")
	ErrObjectExists      = fmt.Errorf("object already exists")
	ErrPlayerIndexExists = fmt.Errorf("player index record already exists")
)

// DynamoAPI is the subset of *dynamodb.Client used by the index adapter.
type DynamoAPI interface {
	dynamodb.QueryAPIClient
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// S3API is the subset of *s3.Client used by the object adapter.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type Config struct {
	PlayerIndexTableName *string
}

type Client struct {
	dynamodb DynamoAPI
	s3       S3API
	cfg      Config
}

func NewClient(dynamoClient DynamoAPI, s3Client S3API, cfg Config) *Client {
	if aws.ToString(cfg.PlayerIndexTableName) == "" {
		cfg.PlayerIndexTableName = aws.String(DefaultPlayerIndexTableName)
	}
	return &Client{
		dynamodb: dynamoClient,
		s3:       s3Client,
		cfg:      cfg,
	}
}

const DefaultPlayerIndexTableName = "Player-MoveSet-Board"
