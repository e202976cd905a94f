package dynamo

import (
	"context"
	"fmt"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/heartmarshall/reuse-backend/internal/domain"
)

// LikeRepo is the append-only like ledger. Partition key: targetItemId;
// sort key: sk (createdAt#id). Likes placed by a user come from liker-index.
type LikeRepo struct {
	api   API
	table string
}

// Append writes a like. Likes are never updated or deleted.
func (r *LikeRepo) Append(ctx context.Context, like *domain.Like) error {
	av, err := attributevalue.MarshalMap(toLikeRecord(like))
	if err != nil {
		return fmt.Errorf("marshal like: %w", err)
	}

	_, err = r.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.table),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#sk)"),
		ExpressionAttributeNames: map[string]string{"#sk": "sk"},
	})
	if isConditionFailed(err) {
		return fmt.Errorf("like %s: %w", like.ID, domain.ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("put like %s: %w", like.ID, err)
	}
	return nil
}

// ListByTarget returns likes targeting itemID, oldest first. It reads the
// base table with ConsistentRead, so a like whose Append has returned is
// always visible here.
func (r *LikeRepo) ListByTarget(ctx context.Context, itemID string) ([]*domain.Like, error) {
	return r.list(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		KeyConditionExpression:    aws.String("#t = :v"),
		ExpressionAttributeNames:  map[string]string{"#t": "targetItemId"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": str(itemID)},
		ConsistentRead:            aws.Bool(true),
		ScanIndexForward:          aws.Bool(true),
	})
}

// ListByUser returns likes placed by userID, oldest first.
func (r *LikeRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Like, error) {
	return r.list(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		IndexName:                 aws.String(likerIndex),
		KeyConditionExpression:    aws.String("#u = :v"),
		ExpressionAttributeNames:  map[string]string{"#u": "likingUserId"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": str(userID)},
		ScanIndexForward:          aws.Bool(true),
	})
}

func (r *LikeRepo) list(ctx context.Context, in *dynamodb.QueryInput) ([]*domain.Like, error) {
	raw, err := queryAll(ctx, r.api, in)
	if err != nil {
		return nil, err
	}

	likes, err := decodeAll[likeRecord, domain.Like](raw)
	if err != nil {
		return nil, err
	}
	// liker-index orders by createdAt only; ties fall back to the like ID.
	slices.SortStableFunc(likes, func(a, b *domain.Like) int {
		switch {
		case a.Before(b):
			return -1
		case b.Before(a):
			return 1
		default:
			return 0
		}
	})
	return likes, nil
}
