package ddbDao

import (
	"context"
	"fmt"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/aws/aws-sdk-go/service/dynamodb/expression"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/exception"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/jsonUtil"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/model"
	"go.uber.org/zap"
)

type BusinessCardDao struct {
	client dynamodbiface.DynamoDBAPI
	log    *zap.SugaredLogger
}

func NewBusinessCardDao(client dynamodbiface.DynamoDBAPI, logger *zap.SugaredLogger) *BusinessCardDao {
	return &BusinessCardDao{
		client: client,
		log:    logger,
	}
}

// CreateBusinessCard creates a new BusinessCard with insert-if-absent
// semantics on the (pk, sk) pair.
func (d *BusinessCardDao) CreateBusinessCard(card model.BusinessCard) error {
	av, err := dynamodbattribute.MarshalMap(card)
	if err != nil {
		return err
	}

	_, err = d.client.PutItem(&dynamodb.PutItemInput{
		TableName:           aws.String(TableBusinessCard.Name()),
		Item:                av,
		ConditionExpression: aws.String(BusinessCardKeyNotExistsConditionExpression),
	})
	if err != nil {
		if awsErr, ok := err.(awserr.Error); ok {
			if awsErr.Code() == dynamodb.ErrCodeConditionalCheckFailedException {
				return exception.NewStorePersistException(fmt.Sprintf("BusinessCard %s already exists", card.Key()), err)
			}
		}
		d.log.Errorf("CreateBusinessCard PutItem failed for %s: %v", card.Key(), err)
		return exception.NewStorePersistException(fmt.Sprintf("CreateBusinessCard failed for '%s': ", card.Key()), err)
	}

	return nil
}

// GetBusinessCard fetches a card by primary key. Returns nil, nil when the
// card does not exist.
func (d *BusinessCardDao) GetBusinessCard(key model.BusinessKey) (*model.BusinessCard, error) {
	ddbKey, err := dynamodbattribute.MarshalMap(map[string]interface{}{
		"pk": key.Pk,
		"sk": key.Sk,
	})
	if err != nil {
		return nil, err
	}

	response, err := d.client.GetItem(&dynamodb.GetItemInput{
		TableName: aws.String(TableBusinessCard.Name()),
		Key:       ddbKey,
	})
	if err != nil {
		d.log.Errorf("Unable to get item with key '%s' in GetBusinessCard: %v", key, err)
		return nil, exception.NewUnknownDDBException(fmt.Sprintf("GetBusinessCard failed for key '%s': ", key), err)
	}

	if response.Item == nil {
		return nil, nil
	}

	var card model.BusinessCard
	err = dynamodbattribute.UnmarshalMap(response.Item, &card)
	if err != nil {
		d.log.Errorf("Unable to unmarshal DDB response '%s' to BusinessCard in GetBusinessCard: %v", jsonUtil.AnyToJson(response.Item), err)
		return nil, err
	}

	return &card, nil
}

// GetBusinessCardBySlug resolves a card through the slug index, the lookup
// path independent of (pk, sk). Slugs are globally unique, so at most one
// item matches.
func (d *BusinessCardDao) GetBusinessCardBySlug(slug string) (*model.BusinessCard, error) {
	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key("slug").Equal(expression.Value(slug))).Build()
	if err != nil {
		d.log.Errorf("Unable to build key condition expression for GetBusinessCardBySlug with slug %s: %v", slug, err)
		return nil, err
	}

	result, err := d.client.Query(&dynamodb.QueryInput{
		TableName:                 aws.String(TableBusinessCard.Name()),
		IndexName:                 aws.String(BusinessCardIndexSlugGsi.String()),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     aws.Int64(1),
	})
	if err != nil {
		d.log.Errorf("Unable to execute query in GetBusinessCardBySlug with slug %s: %v", slug, err)
		return nil, exception.NewUnknownDDBException(fmt.Sprintf("GetBusinessCardBySlug failed for slug '%s': ", slug), err)
	}

	if len(result.Items) == 0 {
		return nil, nil
	}

	var card model.BusinessCard
	err = dynamodbattribute.UnmarshalMap(result.Items[0], &card)
	if err != nil {
		d.log.Errorf("Unable to unmarshal query result in GetBusinessCardBySlug with response %s: %v", jsonUtil.AnyToJson(result.Items[0]), err)
		return nil, err
	}

	return &card, nil
}

// IncrementCounter atomically bumps one of the engagement counters. The ADD
// update runs store-side so concurrent viewers never lose increments.
func (d *BusinessCardDao) IncrementCounter(key model.BusinessKey, counterName string) error {
	if err := model.ValidateCounterName(counterName); err != nil {
		return err
	}

	update := expression.Add(expression.Name(counterName), expression.Value(1))
	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		d.log.Errorf("Unable to build expression for UpdateItem in IncrementCounter: %v", err)
		return err
	}

	ddbKey, err := dynamodbattribute.MarshalMap(map[string]interface{}{
		"pk": key.Pk,
		"sk": key.Sk,
	})
	if err != nil {
		return err
	}

	_, err = d.client.UpdateItem(&dynamodb.UpdateItemInput{
		TableName:                 aws.String(TableBusinessCard.Name()),
		Key:                       ddbKey,
		ConditionExpression:       aws.String("attribute_exists(pk)"),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		if awsErr, ok := err.(awserr.Error); ok {
			if awsErr.Code() == dynamodb.ErrCodeConditionalCheckFailedException {
				return exception.NewBusinessCardDoesNotExistException(fmt.Sprintf("BusinessCard with key '%s' not found", key))
			}
		}
		d.log.Errorf("UpdateItem failed in IncrementCounter for key '%s' counter '%s': %v", key, counterName, err)
		return exception.NewUnknownDDBException(fmt.Sprintf("IncrementCounter failed for key '%s': ", key), err)
	}

	return nil
}

// snapshot projection attributes, matching the public snapshot contract
var snapshotProjectionNames = []string{
	"slug", "businessName", "category", "phone", "city",
	"location", "logoUrl", "tier", "country", "currency", "hours",
}

// ScanPublicProjection traverses the whole table, fetching only the snapshot
// field set. The filter fences the scan to BIZ# sort keys: bookings, offers
// and saved entities live in the same table and a Scan returns every item
// regardless of projection. Pagination follows LastEvaluatedKey so the
// traversal holds up beyond a single 1MB scan page.
func (d *BusinessCardDao) ScanPublicProjection(ctx context.Context) ([]model.BusinessCardSnapshot, error) {
	input, err := d.buildSnapshotScanInput()
	if err != nil {
		d.log.Errorf("Unable to build scan expression for ScanPublicProjection: %v", err)
		return nil, err
	}

	cards := []model.BusinessCardSnapshot{}
	var pageErr error
	err = d.client.ScanPagesWithContext(ctx, input, func(page *dynamodb.ScanOutput, lastPage bool) bool {
		var pageCards []model.BusinessCardSnapshot
		if pageErr = dynamodbattribute.UnmarshalListOfMaps(page.Items, &pageCards); pageErr != nil {
			d.log.Errorf("Unable to unmarshal scan page in ScanPublicProjection: %v", pageErr)
			return false
		}
		cards = append(cards, pageCards...)
		return true
	})
	if err == nil {
		err = pageErr
	}
	if err != nil {
		d.log.Errorf("Scan failed in ScanPublicProjection: %v", err)
		return nil, exception.NewStoreTraversalException("ScanPublicProjection failed: ", err)
	}

	return cards, nil
}

func (d *BusinessCardDao) buildSnapshotScanInput() (*dynamodb.ScanInput, error) {
	projection := expression.NamesList(expression.Name(snapshotProjectionNames[0]))
	for _, name := range snapshotProjectionNames[1:] {
		projection = projection.AddNames(expression.Name(name))
	}
	expr, err := expression.NewBuilder().
		WithProjection(projection).
		WithFilter(expression.BeginsWith(expression.Name("sk"), model.BusinessCardSkPrefix)).
		Build()
	if err != nil {
		return nil, err
	}

	return &dynamodb.ScanInput{
		TableName:                 aws.String(TableBusinessCard.Name()),
		ProjectionExpression:      expr.Projection(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}, nil
}
