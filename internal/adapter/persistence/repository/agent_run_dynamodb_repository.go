package repository

import (
	"context"
	"time"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
	"github.com/Irtizzasmartlog/AIFuneral/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAgentRunsTableName = "agent_runs"
	agentRunsCaseIndex        = "case_id-index"
)

type agentRunItem struct {
	ID             string `dynamodbav:"id"`
	CaseID         string `dynamodbav:"case_id"`
	AgentName      string `dynamodbav:"agent_name"`
	InputSnapshot  string `dynamodbav:"input_snapshot,omitempty"`
	OutputSnapshot string `dynamodbav:"output_snapshot,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// AgentRunDynamoRepository persists agent audit records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI "case_id-index": PK case_id (string)

type AgentRunDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAgentRunRepository = (*AgentRunDynamoRepository)(nil)

func NewAgentRunDynamoRepository(ddb *dynamodb.Client) *AgentRunDynamoRepository {
	return &AgentRunDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AGENT_RUNS_TABLE", defaultAgentRunsTableName),
	}
}

func (r *AgentRunDynamoRepository) Create(ctx context.Context, run entities.AgentRun) (entities.AgentRun, error) {
	av, err := attributevalue.MarshalMap(agentRunItem{
		ID:             run.ID,
		CaseID:         run.CaseID,
		AgentName:      run.AgentName,
		InputSnapshot:  string(run.InputSnapshot),
		OutputSnapshot: string(run.OutputSnapshot),
		CreatedAt:      run.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.AgentRun{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.AgentRun{}, err
	}
	return run, nil
}

func (r *AgentRunDynamoRepository) ListByCaseID(ctx context.Context, caseID string) ([]entities.AgentRun, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(agentRunsCaseIndex),
		KeyConditionExpression: aws.String("#case_id = :case_id"),
		ExpressionAttributeNames: map[string]string{
			"#case_id": "case_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":case_id": &types.AttributeValueMemberS{Value: caseID},
		},
	})
	if err != nil {
		return nil, err
	}

	runs := make([]entities.AgentRun, 0, len(out.Items))
	for _, raw := range out.Items {
		var it agentRunItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
		runs = append(runs, entities.AgentRun{
			ID:             it.ID,
			CaseID:         it.CaseID,
			AgentName:      it.AgentName,
			InputSnapshot:  []byte(it.InputSnapshot),
			OutputSnapshot: []byte(it.OutputSnapshot),
			CreatedAt:      createdAt,
		})
	}
	return runs, nil
}
