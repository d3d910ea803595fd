package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/SOC-Training-Tool/SOC-Server/internal/domains/entities"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// PutPlayerIndex inserts record. The table is append-only: a record with
// the same player and timestamp is rejected with ErrPlayerIndexExists.
func (client *Client) PutPlayerIndex(ctx context.Context, record entities.PlayerIndex) error {
	av, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("failed to marshal player index map: %w", err)
	}
	_, err = client.dynamodb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           client.cfg.PlayerIndexTableName,
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#player)"),
		ExpressionAttributeNames: map[string]string{
			"#player": entities.PlayerAttribute,
		},
	})
	if err != nil {
		var conditionErr *types.ConditionalCheckFailedException
		if errors.As(err, &conditionErr) {
			return fmt.Errorf("%w: %s@%d", ErrPlayerIndexExists, record.PlayerName, record.TimeStamp)
		}
		return fmt.Errorf("failed to put player index: %w", err)
	}
	return nil
}

// FetchPlayerIndexes returns every record for player. When attribute is
// non-empty only that attribute is projected. Order is whatever the
// table returns.
func (client *Client) FetchPlayerIndexes(
	ctx context.Context,
	player string,
	attribute string,
) (
	[]entities.PlayerIndex,
	error,
) {
	input := &dynamodb.QueryInput{
		TableName:              client.cfg.PlayerIndexTableName,
		KeyConditionExpression: aws.String("#player = :player"),
		ExpressionAttributeNames: map[string]string{
			"#player": entities.PlayerAttribute,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":player": &types.AttributeValueMemberS{Value: player},
		},
	}
	if attribute != "" {
		input.ProjectionExpression = aws.String("#attr")
		input.ExpressionAttributeNames["#attr"] = attribute
	}

	records := []entities.PlayerIndex{}
	paginator := dynamodb.NewQueryPaginator(client.dynamodb, input)
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query player index: %w", err)
		}
		var page []entities.PlayerIndex
		if err := attributevalue.UnmarshalListOfMaps(output.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player index: %w", err)
		}
		records = append(records, page...)
	}
	return records, nil
}
