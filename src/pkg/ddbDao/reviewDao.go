package ddbDao

import (
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
	"time"
)

type ReviewDao struct {
	client dynamodbiface.DynamoDBAPI
	log    *zap.SugaredLogger
}

func NewReviewDao(client dynamodbiface.DynamoDBAPI, logger *zap.SugaredLogger) *ReviewDao {
	return &ReviewDao{
		client: client,
		log:    logger,
	}
}

// GetReviewByExternalId looks up a previously imported review through the
// externalId index. Returns nil, nil when no review carries the id.
func (d *ReviewDao) GetReviewByExternalId(externalId string) (*model.Review, error) {
	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key("externalId").Equal(expression.Value(externalId))).Build()
	if err != nil {
		d.log.Errorf("Unable to build key condition expression for GetReviewByExternalId with externalId %s: %v", externalId, err)
		return nil, err
	}

	result, err := d.client.Query(&dynamodb.QueryInput{
		TableName:                 aws.String(TableReview.Name()),
		IndexName:                 aws.String(ReviewIndexExternalIdGsi.String()),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     aws.Int64(1),
	})
	if err != nil {
		d.log.Errorf("Unable to execute query in GetReviewByExternalId with externalId %s: %v", externalId, err)
		return nil, exception.NewUnknownDDBException(fmt.Sprintf("GetReviewByExternalId failed for externalId '%s': ", externalId), err)
	}

	if len(result.Items) == 0 {
		return nil, nil
	}

	var review model.Review
	err = dynamodbattribute.UnmarshalMap(result.Items[0], &review)
	if err != nil {
		d.log.Errorf("Unable to unmarshal query result in GetReviewByExternalId with response %s: %v", jsonUtil.AnyToJson(result.Items[0]), err)
		return nil, err
	}

	return &review, nil
}

// CreateImportedReview persists a new imported review with insert-if-absent
// semantics. A concurrent import of the same externalId loses the conditional
// put and surfaces as ReviewAlreadyExistException.
func (d *ReviewDao) CreateImportedReview(review model.Review) error {
	err := model.ValidateReview(&review)
	if err != nil {
		d.log.Error("CreateImportedReview failed due to invalid review: ", jsonUtil.AnyToJson(review))
		return err
	}

	av, err := dynamodbattribute.MarshalMap(review)
	if err != nil {
		return err
	}

	_, err = d.client.PutItem(&dynamodb.PutItemInput{
		TableName:           aws.String(TableReview.Name()),
		Item:                av,
		ConditionExpression: aws.String(ReviewKeyNotExistsConditionExpression),
	})
	if err != nil {
		if awsErr, ok := err.(awserr.Error); ok {
			if awsErr.Code() == dynamodb.ErrCodeConditionalCheckFailedException {
				return exception.NewReviewAlreadyExistException(fmt.Sprintf("Review with externalId %s already exists", review.ExternalId), err)
			}
		}
		d.log.Errorf("CreateImportedReview PutItem failed for externalId %s: %v", review.ExternalId, err)
		return exception.NewStorePersistException(fmt.Sprintf("CreateImportedReview failed for externalId '%s': ", review.ExternalId), err)
	}

	return nil
}

// TouchLastSyncedAt refreshes lastSyncedAt on an existing review. This is the
// only mutation re-import performs; all other attributes stay as imported.
func (d *ReviewDao) TouchLastSyncedAt(reviewId string, syncedAt time.Time) error {
	var syncedAtAv dynamodb.AttributeValue
	err := dynamodbattribute.UnixTime(syncedAt).MarshalDynamoDBAttributeValue(&syncedAtAv)
	if err != nil {
		d.log.Error("Unable to marshal syncedAt in TouchLastSyncedAt: ", err)
		return err
	}

	update := expression.Set(
		expression.Name("lastSyncedAt"),
		expression.Value(syncedAtAv),
	)
	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		d.log.Errorf("Unable to build expression for UpdateItem in TouchLastSyncedAt: %v", err)
		return err
	}

	key, err := dynamodbattribute.MarshalMap(map[string]interface{}{
		"id": reviewId,
	})
	if err != nil {
		return err
	}

	_, err = d.client.UpdateItem(&dynamodb.UpdateItemInput{
		TableName:                 aws.String(TableReview.Name()),
		Key:                       key,
		ConditionExpression:       aws.String("attribute_exists(id)"),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		d.log.Errorf("UpdateItem failed in TouchLastSyncedAt for review %s: %v", reviewId, err)
		return err
	}

	return nil
}

// QueryReviewsByBusiness returns reviews for one business with rating at or
// above minRating, best-rated first.
func (d *ReviewDao) QueryReviewsByBusiness(businessKey model.BusinessKey, minRating int) ([]model.Review, error) {
	keyCondition := expression.Key("businessKey").Equal(expression.Value(businessKey.String())).
		And(expression.Key("rating").GreaterThanEqual(expression.Value(minRating)))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCondition).Build()
	if err != nil {
		d.log.Errorf("Unable to build key condition expression for QueryReviewsByBusiness with businessKey %s: %v", businessKey, err)
		return nil, err
	}

	var reviews []model.Review
	var pageErr error
	err = d.client.QueryPages(&dynamodb.QueryInput{
		TableName:                 aws.String(TableReview.Name()),
		IndexName:                 aws.String(ReviewIndexBusinessRatingGsi.String()),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ScanIndexForward:          aws.Bool(false), // best-rated first
	}, func(page *dynamodb.QueryOutput, lastPage bool) bool {
		var pageReviews []model.Review
		if pageErr = dynamodbattribute.UnmarshalListOfMaps(page.Items, &pageReviews); pageErr != nil {
			d.log.Errorf("Unable to unmarshal query page in QueryReviewsByBusiness: %v", pageErr)
			return false
		}
		reviews = append(reviews, pageReviews...)
		return true
	})
	if err == nil {
		err = pageErr
	}
	if err != nil {
		return nil, exception.NewUnknownDDBException(fmt.Sprintf("QueryReviewsByBusiness failed for businessKey '%s': ", businessKey), err)
	}

	return reviews, nil
}
