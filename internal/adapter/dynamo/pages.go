package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// queryAll follows LastEvaluatedKey until the query is drained.
func queryAll(ctx context.Context, api API, in *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var out []map[string]types.AttributeValue
	p := dynamodb.NewQueryPaginator(api, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query %s: %w", tableName(in.TableName), err)
		}
		out = append(out, page.Items...)
	}
	return out, nil
}

func scanAll(ctx context.Context, api API, in *dynamodb.ScanInput) ([]map[string]types.AttributeValue, error) {
	var out []map[string]types.AttributeValue
	p := dynamodb.NewScanPaginator(api, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", tableName(in.TableName), err)
		}
		out = append(out, page.Items...)
	}
	return out, nil
}

// decodeAll unmarshals raw into records and converts each to its domain form.
func decodeAll[R interface{ toDomain() (*T, error) }, T any](raw []map[string]types.AttributeValue) ([]*T, error) {
	var recs []R
	if err := attributevalue.UnmarshalListOfMaps(raw, &recs); err != nil {
		return nil, fmt.Errorf("unmarshal records: %w", err)
	}
	out := make([]*T, 0, len(recs))
	for _, r := range recs {
		v, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func tableName(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
