package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"cotacao_ia/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultLeadMarkersTableName = "lead_markers"

type leadMarkerItem struct {
	ID         string `dynamodbav:"id"`
	RecordedAt string `dynamodbav:"recorded_at"`
	ExpiresAt  int64  `dynamodbav:"expires_at"`
}

// DynamoDBAPI is the subset of the DynamoDB client used by the repository.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// LeadMarkerDynamoRepository keeps "lead already recorded" markers in DynamoDB.
//
// Table requirements:
//   - PK: id (string), the conversation id
//   - optional TTL attribute: expires_at (epoch seconds)
//
// The claim is a conditional PutItem, so concurrent requests for the same
// conversation produce exactly one winner.
type LeadMarkerDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	ttl       time.Duration
	now       func() time.Time
}

var _ interfaces.ILeadMarkerRepository = (*LeadMarkerDynamoRepository)(nil)

func NewLeadMarkerDynamoRepository(ddb DynamoDBAPI, tableName string, ttl time.Duration) *LeadMarkerDynamoRepository {
	if tableName == "" {
		tableName = defaultLeadMarkersTableName
	}
	return &LeadMarkerDynamoRepository{ddb: ddb, tableName: tableName, ttl: ttl, now: time.Now}
}

func (r *LeadMarkerDynamoRepository) MarkRecorded(ctx context.Context, conversationID string) (bool, error) {
	now := r.now().UTC()
	it := leadMarkerItem{
		ID:         conversationID,
		RecordedAt: now.Format(time.RFC3339Nano),
		ExpiresAt:  now.Add(r.ttl).Unix(),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
		// An expired marker that DynamoDB has not swept yet may be reclaimed.
		ConditionExpression: aws.String("attribute_not_exists(#id) OR #exp < :now"),
		ExpressionAttributeNames: map[string]string{
			"#id":  "id",
			"#exp": "expires_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberN{Value: strconv.FormatInt(now.Unix(), 10)},
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
