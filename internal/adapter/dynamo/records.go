package dynamo

import (
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/heartmarshall/reuse-backend/internal/domain"
)

// timeLayout is fixed width so sort keys order lexicographically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string { return t.UTC().Format(timeLayout) }

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	return t, nil
}

type itemRecord struct {
	ID          string   `dynamodbav:"id"`
	OwnerID     string   `dynamodbav:"ownerId"`
	Description string   `dynamodbav:"description"`
	Categories  []string `dynamodbav:"categories"`
	CreatedAt   string   `dynamodbav:"createdAt"`
}

func toItemRecord(i *domain.Item) itemRecord {
	return itemRecord{
		ID:          i.ID,
		OwnerID:     i.OwnerID,
		Description: i.Description,
		Categories:  i.Categories,
		CreatedAt:   formatTime(i.CreatedAt),
	}
}

func (r itemRecord) toDomain() (*domain.Item, error) {
	created, err := parseTime(r.CreatedAt)
	if err != nil {
		return nil, err
	}
	cats := r.Categories
	if cats == nil {
		cats = []string{}
	}
	return &domain.Item{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		Description: r.Description,
		Categories:  cats,
		CreatedAt:   created,
	}, nil
}

type likeRecord struct {
	TargetItemID string `dynamodbav:"targetItemId"`
	SortKey      string `dynamodbav:"sk"`
	ID           string `dynamodbav:"id"`
	LikingUserID string `dynamodbav:"likingUserId"`
	SourceItemID string `dynamodbav:"sourceItemId"`
	CreatedAt    string `dynamodbav:"createdAt"`
}

func toLikeRecord(l *domain.Like) likeRecord {
	created := formatTime(l.CreatedAt)
	return likeRecord{
		TargetItemID: l.TargetItemID,
		SortKey:      created + "#" + l.ID,
		ID:           l.ID,
		LikingUserID: l.LikingUserID,
		SourceItemID: l.SourceItemID,
		CreatedAt:    created,
	}
}

func (r likeRecord) toDomain() (*domain.Like, error) {
	created, err := parseTime(r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &domain.Like{
		ID:           r.ID,
		LikingUserID: r.LikingUserID,
		SourceItemID: r.SourceItemID,
		TargetItemID: r.TargetItemID,
		CreatedAt:    created,
	}, nil
}

type matchRecord struct {
	PairKey   string `dynamodbav:"pairKey"`
	ID        string `dynamodbav:"id"`
	UserAID   string `dynamodbav:"userAId"`
	ItemAID   string `dynamodbav:"itemAId"`
	UserBID   string `dynamodbav:"userBId"`
	ItemBID   string `dynamodbav:"itemBId"`
	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"createdAt"`
	UpdatedAt string `dynamodbav:"updatedAt"`
}

func toMatchRecord(m *domain.Match) matchRecord {
	return matchRecord{
		PairKey:   m.PairKey,
		ID:        m.ID,
		UserAID:   m.UserAID,
		ItemAID:   m.ItemAID,
		UserBID:   m.UserBID,
		ItemBID:   m.ItemBID,
		Status:    string(m.Status),
		CreatedAt: formatTime(m.CreatedAt),
		UpdatedAt: formatTime(m.UpdatedAt),
	}
}

func (r matchRecord) toDomain() (*domain.Match, error) {
	created, err := parseTime(r.CreatedAt)
	if err != nil {
		return nil, err
	}
	updated, err := parseTime(r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	status := domain.MatchStatus(r.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("match %s: unknown status %q", r.ID, r.Status)
	}
	return &domain.Match{
		ID:        r.ID,
		PairKey:   r.PairKey,
		UserAID:   r.UserAID,
		ItemAID:   r.ItemAID,
		UserBID:   r.UserBID,
		ItemBID:   r.ItemBID,
		Status:    status,
		CreatedAt: created,
		UpdatedAt: updated,
	}, nil
}

// matchRef points from a match ID to the match's pair key. It shares the
// matches table; its key carries no "|", so it never collides with a pair key.
type matchRef struct {
	Key          string `dynamodbav:"pairKey"`
	MatchPairKey string `dynamodbav:"matchPairKey"`
}

func matchRefKey(id string) string { return "match#" + id }

func isConditionFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

// canceledByCondition reports whether a TransactWriteItems call was canceled
// because the condition on the i-th write failed.
func canceledByCondition(err error, i int) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) || i >= len(tce.CancellationReasons) {
		return false
	}
	return aws.ToString(tce.CancellationReasons[i].Code) == "ConditionalCheckFailed"
}

func str(v string) types.AttributeValue { return &types.AttributeValueMemberS{Value: v} }
