package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
	"github.com/Irtizzasmartlog/AIFuneral/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCasesTableName = "cases"

type caseItem struct {
	ID                        string  `dynamodbav:"id"`
	CaseNumber                string  `dynamodbav:"case_number"`
	Status                    string  `dynamodbav:"status"`
	DeceasedFullName          *string `dynamodbav:"deceased_full_name,omitempty"`
	DeceasedPreferredName     *string `dynamodbav:"deceased_preferred_name,omitempty"`
	DeceasedGender            *string `dynamodbav:"deceased_gender,omitempty"`
	DeceasedDOB               *string `dynamodbav:"deceased_dob,omitempty"`
	DeceasedDOD               *string `dynamodbav:"deceased_dod,omitempty"`
	NextOfKinName             *string `dynamodbav:"next_of_kin_name,omitempty"`
	NextOfKinRelationship     *string `dynamodbav:"next_of_kin_relationship,omitempty"`
	NextOfKinPhone            *string `dynamodbav:"next_of_kin_phone,omitempty"`
	NextOfKinEmail            *string `dynamodbav:"next_of_kin_email,omitempty"`
	ServiceType               *string `dynamodbav:"service_type,omitempty"`
	ServiceStyle              *string `dynamodbav:"service_style,omitempty"`
	VenuePreference           *string `dynamodbav:"venue_preference,omitempty"`
	ExpectedAttendeesMin      *int    `dynamodbav:"expected_attendees_min,omitempty"`
	ExpectedAttendeesMax      *int    `dynamodbav:"expected_attendees_max,omitempty"`
	BudgetMinCents            *int64  `dynamodbav:"budget_min_cents,omitempty"`
	BudgetMaxCents            *int64  `dynamodbav:"budget_max_cents,omitempty"`
	BudgetPreference          *string `dynamodbav:"budget_preference,omitempty"`
	Suburb                    *string `dynamodbav:"suburb,omitempty"`
	State                     *string `dynamodbav:"state,omitempty"`
	PreferredServiceDate      *string `dynamodbav:"preferred_service_date,omitempty"`
	DateFlexibility           *string `dynamodbav:"date_flexibility,omitempty"`
	CulturalFaithRequirements *string `dynamodbav:"cultural_faith_requirements,omitempty"`
	Notes                     *string `dynamodbav:"notes,omitempty"`
	InternalNotes             *string `dynamodbav:"internal_notes,omitempty"`
	Urgency                   *string `dynamodbav:"urgency,omitempty"`
	AddOns                    *string `dynamodbav:"add_ons,omitempty"`
	CreatedAt                 string  `dynamodbav:"created_at"`
	UpdatedAt                 string  `dynamodbav:"updated_at"`
}

// CaseDynamoRepository persists Case entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type CaseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICaseRepository = (*CaseDynamoRepository)(nil)

func NewCaseDynamoRepository(ddb *dynamodb.Client) *CaseDynamoRepository {
	return &CaseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CASES_TABLE", defaultCasesTableName),
	}
}

func (r *CaseDynamoRepository) Create(ctx context.Context, c entities.Case) (entities.Case, error) {
	av, err := attributevalue.MarshalMap(toCaseItem(c))
	if err != nil {
		return entities.Case{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Case{}, err
	}
	return c, nil
}

func (r *CaseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Case, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Case{}, err
	}
	if len(out.Item) == 0 {
		return entities.Case{}, nil
	}

	var it caseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Case{}, err
	}
	return fromCaseItem(it), nil
}

// Save overwrites the full case record. Intake applies merged attribute sets
// as whole-entity writes, so a field-level update expression buys nothing.
func (r *CaseDynamoRepository) Save(ctx context.Context, c entities.Case) (entities.Case, error) {
	c.UpdatedAt = time.Now().UTC()
	av, err := attributevalue.MarshalMap(toCaseItem(c))
	if err != nil {
		return entities.Case{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Case{}, nil
		}
		return entities.Case{}, err
	}
	return c, nil
}

func (r *CaseDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.CaseStatus) (entities.Case, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Case{}, nil
		}
		return entities.Case{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Case{}, nil
	}
	var it caseItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Case{}, err
	}
	return fromCaseItem(it), nil
}

func toCaseItem(c entities.Case) caseItem {
	return caseItem{
		ID:                        c.ID,
		CaseNumber:                c.CaseNumber,
		Status:                    string(c.Status),
		DeceasedFullName:          c.DeceasedFullName,
		DeceasedPreferredName:     c.DeceasedPreferredName,
		DeceasedGender:            c.DeceasedGender,
		DeceasedDOB:               timeToString(c.DeceasedDOB),
		DeceasedDOD:               timeToString(c.DeceasedDOD),
		NextOfKinName:             c.NextOfKinName,
		NextOfKinRelationship:     c.NextOfKinRelationship,
		NextOfKinPhone:            c.NextOfKinPhone,
		NextOfKinEmail:            c.NextOfKinEmail,
		ServiceType:               c.ServiceType,
		ServiceStyle:              c.ServiceStyle,
		VenuePreference:           c.VenuePreference,
		ExpectedAttendeesMin:      c.ExpectedAttendeesMin,
		ExpectedAttendeesMax:      c.ExpectedAttendeesMax,
		BudgetMinCents:            c.BudgetMinCents,
		BudgetMaxCents:            c.BudgetMaxCents,
		BudgetPreference:          c.BudgetPreference,
		Suburb:                    c.Suburb,
		State:                     c.State,
		PreferredServiceDate:      timeToString(c.PreferredServiceDate),
		DateFlexibility:           c.DateFlexibility,
		CulturalFaithRequirements: c.CulturalFaithRequirements,
		Notes:                     c.Notes,
		InternalNotes:             c.InternalNotes,
		Urgency:                   c.Urgency,
		AddOns:                    marshalJSONString(c.AddOns),
		CreatedAt:                 c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:                 c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCaseItem(it caseItem) entities.Case {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Case{
		ID:                        it.ID,
		CaseNumber:                it.CaseNumber,
		Status:                    entities.CaseStatus(it.Status),
		DeceasedFullName:          it.DeceasedFullName,
		DeceasedPreferredName:     it.DeceasedPreferredName,
		DeceasedGender:            it.DeceasedGender,
		DeceasedDOB:               stringToTime(it.DeceasedDOB),
		DeceasedDOD:               stringToTime(it.DeceasedDOD),
		NextOfKinName:             it.NextOfKinName,
		NextOfKinRelationship:     it.NextOfKinRelationship,
		NextOfKinPhone:            it.NextOfKinPhone,
		NextOfKinEmail:            it.NextOfKinEmail,
		ServiceType:               it.ServiceType,
		ServiceStyle:              it.ServiceStyle,
		VenuePreference:           it.VenuePreference,
		ExpectedAttendeesMin:      it.ExpectedAttendeesMin,
		ExpectedAttendeesMax:      it.ExpectedAttendeesMax,
		BudgetMinCents:            it.BudgetMinCents,
		BudgetMaxCents:            it.BudgetMaxCents,
		BudgetPreference:          it.BudgetPreference,
		Suburb:                    it.Suburb,
		State:                     it.State,
		PreferredServiceDate:      stringToTime(it.PreferredServiceDate),
		DateFlexibility:           it.DateFlexibility,
		CulturalFaithRequirements: it.CulturalFaithRequirements,
		Notes:                     it.Notes,
		InternalNotes:             it.InternalNotes,
		Urgency:                   it.Urgency,
		AddOns:                    unmarshalAddOns(it.AddOns),
		CreatedAt:                 createdAt,
		UpdatedAt:                 updatedAt,
	}
}
