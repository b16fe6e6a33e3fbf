package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
	"github.com/Irtizzasmartlog/AIFuneral/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultConversationStatesTableName = "conversation_states"

type conversationStateItem struct {
	CaseID          string  `dynamodbav:"case_id"`
	Mode            string  `dynamodbav:"mode"`
	Collected       string  `dynamodbav:"collected"`
	PendingFieldKey *string `dynamodbav:"pending_field_key,omitempty"`
	UpdatedAt       string  `dynamodbav:"updated_at"`
}

// ConversationStateDynamoRepository persists intake conversation state in
// DynamoDB.
//
// Table requirements:
//   - PK: case_id (string)
//
// One state per case; Put overwrites unconditionally (last write wins).

type ConversationStateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IConversationStateRepository = (*ConversationStateDynamoRepository)(nil)

func NewConversationStateDynamoRepository(ddb *dynamodb.Client) *ConversationStateDynamoRepository {
	return &ConversationStateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONVERSATION_STATES_TABLE", defaultConversationStatesTableName),
	}
}

func (r *ConversationStateDynamoRepository) Get(ctx context.Context, caseID string) (entities.ConversationState, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"case_id": &types.AttributeValueMemberS{Value: caseID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ConversationState{}, err
	}
	if len(out.Item) == 0 {
		return entities.ConversationState{}, nil
	}

	var it conversationStateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ConversationState{}, err
	}
	return fromConversationStateItem(it)
}

func (r *ConversationStateDynamoRepository) Put(ctx context.Context, state entities.ConversationState) error {
	it, err := toConversationStateItem(state)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toConversationStateItem(s entities.ConversationState) (conversationStateItem, error) {
	collected, err := json.Marshal(s.Collected)
	if err != nil {
		return conversationStateItem{}, err
	}
	var pending *string
	if s.PendingFieldKey != nil {
		v := string(*s.PendingFieldKey)
		pending = &v
	}
	return conversationStateItem{
		CaseID:          s.CaseID,
		Mode:            string(s.Mode),
		Collected:       string(collected),
		PendingFieldKey: pending,
		UpdatedAt:       s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromConversationStateItem(it conversationStateItem) (entities.ConversationState, error) {
	collected := entities.CollectedAnswers{}
	if it.Collected != "" {
		if err := json.Unmarshal([]byte(it.Collected), &collected); err != nil {
			return entities.ConversationState{}, err
		}
	}
	var pending *entities.FieldKey
	if it.PendingFieldKey != nil && *it.PendingFieldKey != "" {
		key := entities.FieldKey(*it.PendingFieldKey)
		pending = &key
	}
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ConversationState{
		CaseID:          it.CaseID,
		Mode:            entities.IntakeMode(it.Mode),
		Collected:       collected,
		PendingFieldKey: pending,
		UpdatedAt:       updatedAt,
	}, nil
}
