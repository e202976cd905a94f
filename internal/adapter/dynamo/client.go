// Package dynamo implements the item, like and match repositories on
// Amazon DynamoDB. Match uniqueness per item pair relies on the pair key
// being the table's partition key together with a conditional put.
//
// Consistency: every read the matching engine depends on is a strongly
// consistent base-table read. Likes targeting an item are a query on the
// likes table's own key, and a match is found by id through a pointer record
// written in the same transaction as the match. Secondary indexes are
// eventually consistent and only back listings (a user's items, likes and
// matches), where a just-written record may show up a moment later.
package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/heartmarshall/reuse-backend/internal/config"
)

// Secondary index names. The tables are provisioned outside the service.
const (
	ownerIndex = "owner-index"  // items:   ownerId, createdAt
	likerIndex = "liker-index"  // likes:   likingUserId, createdAt
	userAIndex = "user-a-index" // matches: userAId, createdAt
	userBIndex = "user-b-index" // matches: userBId, createdAt
)

// API is the subset of *dynamodb.Client the repositories use.
type API interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	BatchGetItem(ctx context.Context, in *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// NewClient builds a DynamoDB client from the default AWS credential chain.
// A non-empty cfg.Endpoint points the client at DynamoDB Local.
func NewClient(ctx context.Context, cfg config.DynamoDBConfig) (*dynamodb.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

// Store groups the three repositories over one client.
type Store struct {
	Items   *ItemRepo
	Likes   *LikeRepo
	Matches *MatchRepo
}

// NewStore creates the repositories for the tables named in cfg.
func NewStore(api API, cfg config.DynamoDBConfig) *Store {
	return &Store{
		Items:   &ItemRepo{api: api, table: cfg.ItemsTable},
		Likes:   &LikeRepo{api: api, table: cfg.LikesTable},
		Matches: &MatchRepo{api: api, table: cfg.MatchTable},
	}
}

// Ping checks that the items table is reachable with a point read on a key
// that never exists.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.Items.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Items.table),
		Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "__ping__"}},
	})
	if err != nil {
		return fmt.Errorf("ping %s: %w", s.Items.table, err)
	}
	return nil
}
