package dynamo

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/heartmarshall/reuse-backend/internal/domain"
)

// MatchRepo stores matches keyed by the canonical pair key, so a pair can hold
// at most one record. Each match has a pointer record keyed by its ID in the
// same table; both are written in one transaction.
type MatchRepo struct {
	api   API
	table string
}

// Create writes m unless its pair is already matched, in which case it
// returns domain.ErrDuplicateMatch.
func (r *MatchRepo) Create(ctx context.Context, m *domain.Match) error {
	av, err := attributevalue.MarshalMap(toMatchRecord(m))
	if err != nil {
		return fmt.Errorf("marshal match: %w", err)
	}
	ref, err := attributevalue.MarshalMap(matchRef{Key: matchRefKey(m.ID), MatchPairKey: m.PairKey})
	if err != nil {
		return fmt.Errorf("marshal match ref: %w", err)
	}

	_, err = r.api.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:           aws.String(r.table),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(pairKey)"),
			}},
			{Put: &types.Put{
				TableName:           aws.String(r.table),
				Item:                ref,
				ConditionExpression: aws.String("attribute_not_exists(pairKey)"),
			}},
		},
	})
	switch {
	case canceledByCondition(err, 0):
		return fmt.Errorf("match %s: %w", m.PairKey, domain.ErrDuplicateMatch)
	case canceledByCondition(err, 1):
		return fmt.Errorf("match id %s: %w", m.ID, domain.ErrAlreadyExists)
	case err != nil:
		return fmt.Errorf("put match %s: %w", m.PairKey, err)
	}
	return nil
}

// GetByPairKey returns the pair's match or domain.ErrNotFound.
func (r *MatchRepo) GetByPairKey(ctx context.Context, pairKey string) (*domain.Match, error) {
	out, err := r.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            map[string]types.AttributeValue{"pairKey": str(pairKey)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get match %s: %w", pairKey, err)
	}
	if out.Item == nil {
		return nil, fmt.Errorf("match %s: %w", pairKey, domain.ErrNotFound)
	}

	var rec matchRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal match %s: %w", pairKey, err)
	}
	return rec.toDomain()
}

// GetByID resolves the id pointer and then the match, both with
// ConsistentRead.
func (r *MatchRepo) GetByID(ctx context.Context, id string) (*domain.Match, error) {
	out, err := r.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            map[string]types.AttributeValue{"pairKey": str(matchRefKey(id))},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get match ref %s: %w", id, err)
	}
	if out.Item == nil {
		return nil, fmt.Errorf("match %s: %w", id, domain.ErrNotFound)
	}

	var ref matchRef
	if err := attributevalue.UnmarshalMap(out.Item, &ref); err != nil {
		return nil, fmt.Errorf("unmarshal match ref %s: %w", id, err)
	}

	m, err := r.GetByPairKey(ctx, ref.MatchPairKey)
	if err != nil {
		return nil, err
	}
	if m.ID != id {
		return nil, fmt.Errorf("match %s: %w", id, domain.ErrNotFound)
	}
	return m, nil
}

// ListByUser returns matches where userID is either participant, newest
// first.
func (r *MatchRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Match, error) {
	var all []*domain.Match
	for _, idx := range []struct{ index, attr string }{
		{userAIndex, "userAId"},
		{userBIndex, "userBId"},
	} {
		raw, err := queryAll(ctx, r.api, &dynamodb.QueryInput{
			TableName:                 aws.String(r.table),
			IndexName:                 aws.String(idx.index),
			KeyConditionExpression:    aws.String("#u = :u"),
			ExpressionAttributeNames:  map[string]string{"#u": idx.attr},
			ExpressionAttributeValues: map[string]types.AttributeValue{":u": str(userID)},
		})
		if err != nil {
			return nil, err
		}
		got, err := decodeAll[matchRecord, domain.Match](raw)
		if err != nil {
			return nil, err
		}
		all = append(all, got...)
	}

	slices.SortFunc(all, func(a, b *domain.Match) int {
		switch {
		case a.NewerThan(b):
			return -1
		case b.NewerThan(a):
			return 1
		default:
			return 0
		}
	})
	return all, nil
}

// UpdateStatus moves the match from one status to another. It returns
// domain.ErrConflict when the stored status is no longer from.
func (r *MatchRepo) UpdateStatus(ctx context.Context, id string, from, to domain.MatchStatus, at time.Time) (*domain.Match, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	out, err := r.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(r.table),
		Key:                      map[string]types.AttributeValue{"pairKey": str(current.PairKey)},
		UpdateExpression:         aws.String("SET #s = :to, updatedAt = :at"),
		ConditionExpression:      aws.String("#s = :from"),
		ExpressionAttributeNames: map[string]string{"#s": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":to":   str(string(to)),
			":from": str(string(from)),
			":at":   str(formatTime(at)),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if isConditionFailed(err) {
		return nil, fmt.Errorf("match %s not %s: %w", id, from, domain.ErrConflict)
	}
	if err != nil {
		return nil, fmt.Errorf("update match %s: %w", id, err)
	}

	var rec matchRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal match %s: %w", id, err)
	}
	if rec.ID == "" {
		return nil, errors.New("update match: no attributes returned")
	}
	return rec.toDomain()
}
