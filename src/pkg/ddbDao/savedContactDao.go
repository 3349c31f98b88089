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
)

type SavedContactDao struct {
	client dynamodbiface.DynamoDBAPI
	log    *zap.SugaredLogger
}

func NewSavedContactDao(client dynamodbiface.DynamoDBAPI, logger *zap.SugaredLogger) *SavedContactDao {
	return &SavedContactDao{
		client: client,
		log:    logger,
	}
}

// SaveContact records a user's address-book entry for a business. A repeat
// save refreshes lastSyncedAt only, so custom names, tags and notes the user
// added since survive.
func (d *SavedContactDao) SaveContact(contact model.SavedContact) error {
	av, err := dynamodbattribute.MarshalMap(contact)
	if err != nil {
		return err
	}

	_, err = d.client.PutItem(&dynamodb.PutItemInput{
		TableName:           aws.String(TableSavedContact.Name()),
		Item:                av,
		ConditionExpression: aws.String(SavedContactKeyNotExistsConditionExpression),
	})
	if err == nil {
		return nil
	}

	if awsErr, ok := err.(awserr.Error); ok && awsErr.Code() == dynamodb.ErrCodeConditionalCheckFailedException {
		return d.touchSavedContact(contact)
	}

	d.log.Errorf("Unable to put saved contact %s: %v", jsonUtil.AnyToJson(contact), err)
	return exception.NewStorePersistException(
		fmt.Sprintf("SaveContact failed for user '%s' business '%s': ", contact.UserId, contact.BusinessId), err)
}

func (d *SavedContactDao) touchSavedContact(contact model.SavedContact) error {
	expr, err := expression.NewBuilder().
		WithUpdate(expression.Set(expression.Name("lastSyncedAt"), expression.Value(contact.LastSyncedAt.Unix()))).Build()
	if err != nil {
		return err
	}

	_, err = d.client.UpdateItem(&dynamodb.UpdateItemInput{
		TableName: aws.String(TableSavedContact.Name()),
		Key: map[string]*dynamodb.AttributeValue{
			"userId":     {S: aws.String(contact.UserId)},
			"businessId": {S: aws.String(contact.BusinessId)},
		},
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		d.log.Errorf("Unable to refresh saved contact for user %s business %s: %v", contact.UserId, contact.BusinessId, err)
		return exception.NewStorePersistException(
			fmt.Sprintf("SaveContact refresh failed for user '%s' business '%s': ", contact.UserId, contact.BusinessId), err)
	}

	return nil
}

// GetSavedContact returns nil, nil when the user has not saved the business.
func (d *SavedContactDao) GetSavedContact(userId string, businessId string) (*model.SavedContact, error) {
	result, err := d.client.GetItem(&dynamodb.GetItemInput{
		TableName: aws.String(TableSavedContact.Name()),
		Key: map[string]*dynamodb.AttributeValue{
			"userId":     {S: aws.String(userId)},
			"businessId": {S: aws.String(businessId)},
		},
	})
	if err != nil {
		d.log.Errorf("Unable to get saved contact for user %s business %s: %v", userId, businessId, err)
		return nil, exception.NewUnknownDDBException(
			fmt.Sprintf("GetSavedContact failed for user '%s' business '%s': ", userId, businessId), err)
	}

	if result.Item == nil {
		return nil, nil
	}

	var contact model.SavedContact
	err = dynamodbattribute.UnmarshalMap(result.Item, &contact)
	if err != nil {
		d.log.Errorf("Unable to unmarshal saved contact with response %s: %v", jsonUtil.AnyToJson(result.Item), err)
		return nil, err
	}

	return &contact, nil
}
