package dynamo

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/heartmarshall/reuse-backend/internal/domain"
)

// batchGetLimit is the DynamoDB maximum number of keys per BatchGetItem.
const batchGetLimit = 100

// ItemRepo stores catalog items. Partition key: id.
type ItemRepo struct {
	api   API
	table string
}

// Create inserts an item; an existing id yields domain.ErrAlreadyExists.
func (r *ItemRepo) Create(ctx context.Context, item *domain.Item) error {
	av, err := attributevalue.MarshalMap(toItemRecord(item))
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}

	_, err = r.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.table),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if isConditionFailed(err) {
		return fmt.Errorf("item %s: %w", item.ID, domain.ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("put item %s: %w", item.ID, err)
	}
	return nil
}

// GetByID returns an item or domain.ErrNotFound.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	out, err := r.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            map[string]types.AttributeValue{"id": str(id)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get item %s: %w", id, err)
	}
	if out.Item == nil {
		return nil, fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}

	var rec itemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal item %s: %w", id, err)
	}
	return rec.toDomain()
}

// GetByIDs resolves ids in batches. Missing items are omitted.
func (r *ItemRepo) GetByIDs(ctx context.Context, ids []string) ([]*domain.Item, error) {
	items := make([]*domain.Item, 0, len(ids))

	for chunk := range slices.Chunk(dedupe(ids), batchGetLimit) {
		keys := make([]map[string]types.AttributeValue, len(chunk))
		for i, id := range chunk {
			keys[i] = map[string]types.AttributeValue{"id": str(id)}
		}

		request := map[string]types.KeysAndAttributes{r.table: {Keys: keys}}
		for len(request) > 0 {
			out, err := r.api.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, fmt.Errorf("batch get items: %w", err)
			}
			got, err := decodeAll[itemRecord, domain.Item](out.Responses[r.table])
			if err != nil {
				return nil, err
			}
			items = append(items, got...)
			request = out.UnprocessedKeys
		}
	}

	return items, nil
}

// ListByOwner returns the owner's items, newest first.
func (r *ItemRepo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Item, error) {
	raw, err := queryAll(ctx, r.api, &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		IndexName:              aws.String(ownerIndex),
		KeyConditionExpression: aws.String("ownerId = :owner"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": str(ownerID),
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	items, err := decodeAll[itemRecord, domain.Item](raw)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(items, func(a, b *domain.Item) int { return -compareItems(a, b) })
	return items, nil
}

// ListExcludingOwner scans for items not owned by ownerID, oldest first. A
// non-empty categories keeps items sharing at least one of them.
func (r *ItemRepo) ListExcludingOwner(ctx context.Context, ownerID string, categories []string) ([]*domain.Item, error) {
	filter := []string{"ownerId <> :owner"}
	values := map[string]types.AttributeValue{":owner": str(ownerID)}

	if len(categories) > 0 {
		ors := make([]string, len(categories))
		for i, c := range categories {
			name := fmt.Sprintf(":c%d", i)
			ors[i] = fmt.Sprintf("contains(categories, %s)", name)
			values[name] = str(c)
		}
		filter = append(filter, "("+strings.Join(ors, " OR ")+")")
	}

	raw, err := scanAll(ctx, r.api, &dynamodb.ScanInput{
		TableName:                 aws.String(r.table),
		FilterExpression:          aws.String(strings.Join(filter, " AND ")),
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return nil, err
	}

	items, err := decodeAll[itemRecord, domain.Item](raw)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(items, compareItems)
	return items, nil
}

// Delete removes an item; a missing id yields domain.ErrNotFound.
func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	_, err := r.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                aws.String(r.table),
		Key:                      map[string]types.AttributeValue{"id": str(id)},
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if isConditionFailed(err) {
		return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete item %s: %w", id, err)
	}
	return nil
}

func compareItems(a, b *domain.Item) int {
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
