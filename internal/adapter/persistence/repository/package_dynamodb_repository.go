package repository

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
	"github.com/Irtizzasmartlog/AIFuneral/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPackagesTableName = "packages"
	defaultTasksTableName    = "scheduling_tasks"
)

type packageItem struct {
	CaseID        string `dynamodbav:"case_id"`
	SortOrder     int    `dynamodbav:"sort_order"`
	ID            string `dynamodbav:"id"`
	Tier          string `dynamodbav:"tier"`
	Name          string `dynamodbav:"name"`
	Description   string `dynamodbav:"description"`
	TotalCents    int64  `dynamodbav:"total_cents"`
	Inclusions    string `dynamodbav:"inclusions"`
	Assumptions   string `dynamodbav:"assumptions"`
	LineItems     string `dynamodbav:"line_items"`
	IsRecommended bool   `dynamodbav:"is_recommended"`
}

type schedulingTaskItem struct {
	CaseID    string  `dynamodbav:"case_id"`
	TaskIndex int     `dynamodbav:"task_index"`
	Title     string  `dynamodbav:"title"`
	DueDate   *string `dynamodbav:"due_date,omitempty"`
	Category  string  `dynamodbav:"category"`
}

// PackageDynamoRepository persists generated packages and their companion
// scheduling tasks in DynamoDB.
//
// Table requirements:
//   - packages:          PK: case_id (string), SK: sort_order (number)
//   - scheduling_tasks:  PK: case_id (string), SK: task_index (number)
//
// ReplaceForCase deletes both prior sets and writes the new ones in a single
// TransactWriteItems call, so readers never see a half-replaced quote.

type PackageDynamoRepository struct {
	ddb           *dynamodb.Client
	packagesTable string
	tasksTable    string
}

var _ interfaces.IPackageRepository = (*PackageDynamoRepository)(nil)

func NewPackageDynamoRepository(ddb *dynamodb.Client) *PackageDynamoRepository {
	return &PackageDynamoRepository{
		ddb:           ddb,
		packagesTable: getenvDefault("PACKAGES_TABLE", defaultPackagesTableName),
		tasksTable:    getenvDefault("SCHEDULING_TASKS_TABLE", defaultTasksTableName),
	}
}

func (r *PackageDynamoRepository) ListByCaseID(ctx context.Context, caseID string) ([]entities.Package, error) {
	items, err := r.queryCase(ctx, r.packagesTable, caseID)
	if err != nil {
		return nil, err
	}

	packages := make([]entities.Package, 0, len(items))
	for _, raw := range items {
		var it packageItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		pkg, err := fromPackageItem(it)
		if err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
	}
	return packages, nil
}

func (r *PackageDynamoRepository) ListTasksByCaseID(ctx context.Context, caseID string) ([]entities.SchedulingTask, error) {
	items, err := r.queryCase(ctx, r.tasksTable, caseID)
	if err != nil {
		return nil, err
	}

	tasks := make([]entities.SchedulingTask, 0, len(items))
	for _, raw := range items {
		var it schedulingTaskItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		tasks = append(tasks, entities.SchedulingTask{
			Title:    it.Title,
			DueDate:  stringToTime(it.DueDate),
			Category: entities.TaskCategory(it.Category),
		})
	}
	return tasks, nil
}

func (r *PackageDynamoRepository) ReplaceForCase(ctx context.Context, caseID string, packages []entities.Package, tasks []entities.SchedulingTask) error {
	var writes []types.TransactWriteItem

	stalePackages, err := r.queryCase(ctx, r.packagesTable, caseID)
	if err != nil {
		return err
	}
	for _, raw := range stalePackages {
		writes = append(writes, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.packagesTable),
				Key: map[string]types.AttributeValue{
					"case_id":    raw["case_id"],
					"sort_order": raw["sort_order"],
				},
			},
		})
	}

	staleTasks, err := r.queryCase(ctx, r.tasksTable, caseID)
	if err != nil {
		return err
	}
	for _, raw := range staleTasks {
		writes = append(writes, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.tasksTable),
				Key: map[string]types.AttributeValue{
					"case_id":    raw["case_id"],
					"task_index": raw["task_index"],
				},
			},
		})
	}

	// A Put on a key scheduled for Delete in the same transaction is
	// rejected by DynamoDB, so drop deletes the new set overwrites anyway.
	writes = pruneOverwrittenDeletes(writes, r.packagesTable, "sort_order", packageSortKeys(packages))
	writes = pruneOverwrittenDeletes(writes, r.tasksTable, "task_index", taskSortKeys(tasks))

	for _, pkg := range packages {
		it, err := toPackageItem(pkg)
		if err != nil {
			return err
		}
		av, err := attributevalue.MarshalMap(it)
		if err != nil {
			return err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.packagesTable),
				Item:      av,
			},
		})
	}

	for i, task := range tasks {
		av, err := attributevalue.MarshalMap(schedulingTaskItem{
			CaseID:    caseID,
			TaskIndex: i,
			Title:     task.Title,
			DueDate:   timeToString(task.DueDate),
			Category:  string(task.Category),
		})
		if err != nil {
			return err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.tasksTable),
				Item:      av,
			},
		})
	}

	if len(writes) == 0 {
		return nil
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	return err
}

func (r *PackageDynamoRepository) queryCase(ctx context.Context, table, caseID string) ([]map[string]types.AttributeValue, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		KeyConditionExpression: aws.String("#case_id = :case_id"),
		ExpressionAttributeNames: map[string]string{
			"#case_id": "case_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":case_id": &types.AttributeValueMemberS{Value: caseID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return out.Items, nil
}

func pruneOverwrittenDeletes(writes []types.TransactWriteItem, table, sortAttr string, keep map[string]bool) []types.TransactWriteItem {
	out := writes[:0]
	for _, w := range writes {
		if w.Delete != nil && aws.ToString(w.Delete.TableName) == table {
			if n, ok := w.Delete.Key[sortAttr].(*types.AttributeValueMemberN); ok && keep[n.Value] {
				continue
			}
		}
		out = append(out, w)
	}
	return out
}

func packageSortKeys(packages []entities.Package) map[string]bool {
	keys := make(map[string]bool, len(packages))
	for _, p := range packages {
		keys[strconv.Itoa(p.SortOrder)] = true
	}
	return keys
}

func taskSortKeys(tasks []entities.SchedulingTask) map[string]bool {
	keys := make(map[string]bool, len(tasks))
	for i := range tasks {
		keys[strconv.Itoa(i)] = true
	}
	return keys
}

func toPackageItem(p entities.Package) (packageItem, error) {
	inclusions, err := json.Marshal(p.Inclusions)
	if err != nil {
		return packageItem{}, err
	}
	assumptions, err := json.Marshal(p.Assumptions)
	if err != nil {
		return packageItem{}, err
	}
	lineItems, err := json.Marshal(p.LineItems)
	if err != nil {
		return packageItem{}, err
	}
	return packageItem{
		CaseID:        p.CaseID,
		SortOrder:     p.SortOrder,
		ID:            p.ID,
		Tier:          string(p.Tier),
		Name:          p.Name,
		Description:   p.Description,
		TotalCents:    p.TotalCents,
		Inclusions:    string(inclusions),
		Assumptions:   string(assumptions),
		LineItems:     string(lineItems),
		IsRecommended: p.IsRecommended,
	}, nil
}

func fromPackageItem(it packageItem) (entities.Package, error) {
	var inclusions []string
	if it.Inclusions != "" {
		if err := json.Unmarshal([]byte(it.Inclusions), &inclusions); err != nil {
			return entities.Package{}, err
		}
	}
	var assumptions entities.PackageAssumptions
	if it.Assumptions != "" {
		if err := json.Unmarshal([]byte(it.Assumptions), &assumptions); err != nil {
			return entities.Package{}, err
		}
	}
	var lineItems []entities.LineItem
	if it.LineItems != "" {
		if err := json.Unmarshal([]byte(it.LineItems), &lineItems); err != nil {
			return entities.Package{}, err
		}
	}
	return entities.Package{
		ID:            it.ID,
		CaseID:        it.CaseID,
		Tier:          entities.Tier(it.Tier),
		Name:          it.Name,
		Description:   it.Description,
		TotalCents:    it.TotalCents,
		Inclusions:    inclusions,
		Assumptions:   assumptions,
		LineItems:     lineItems,
		IsRecommended: it.IsRecommended,
		SortOrder:     it.SortOrder,
	}, nil
}
