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
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/model"
	"go.uber.org/zap"
	"time"
)

// BookingDao reads and writes bookings in the directory table. Bookings
// share the business partition, so no extra table or index is involved.
type BookingDao struct {
	client dynamodbiface.DynamoDBAPI
	log    *zap.SugaredLogger
}

func NewBookingDao(client dynamodbiface.DynamoDBAPI, logger *zap.SugaredLogger) *BookingDao {
	return &BookingDao{
		client: client,
		log:    logger,
	}
}

// CreateBooking persists a new booking with insert-if-absent semantics on
// the (pk, sk) pair.
func (d *BookingDao) CreateBooking(booking model.Booking) error {
	av, err := dynamodbattribute.MarshalMap(booking)
	if err != nil {
		return err
	}

	_, err = d.client.PutItem(&dynamodb.PutItemInput{
		TableName:           aws.String(TableBusinessCard.Name()),
		Item:                av,
		ConditionExpression: aws.String(BusinessCardKeyNotExistsConditionExpression),
	})
	if err != nil {
		if awsErr, ok := err.(awserr.Error); ok && awsErr.Code() == dynamodb.ErrCodeConditionalCheckFailedException {
			return exception.NewStorePersistException(fmt.Sprintf("Booking %s/%s already exists", booking.Pk, booking.Sk), err)
		}
		d.log.Errorf("CreateBooking PutItem failed for %s/%s: %v", booking.Pk, booking.Sk, err)
		return exception.NewStorePersistException(fmt.Sprintf("CreateBooking failed for '%s/%s': ", booking.Pk, booking.Sk), err)
	}

	return nil
}

// QueryBookingsByBusiness returns bookings for a business partition at or
// after from, in chronological order. The sort key embeds the ISO booking
// date, so the range condition is the date filter.
func (d *BookingDao) QueryBookingsByBusiness(businessPk string, from time.Time) ([]model.Booking, error) {
	// Between keeps the range inside the BOOKING# namespace; a bare >= would
	// sweep in sort keys from prefixes that sort after it.
	keyCondition := expression.Key("pk").Equal(expression.Value(businessPk)).
		And(expression.Key("sk").Between(
			expression.Value(model.BookingSkFrom(from)),
			expression.Value(model.BookingSkUpperBound)))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCondition).Build()
	if err != nil {
		d.log.Errorf("Unable to build key condition expression for QueryBookingsByBusiness with pk %s: %v", businessPk, err)
		return nil, err
	}

	var bookings []model.Booking
	var pageErr error
	err = d.client.QueryPages(&dynamodb.QueryInput{
		TableName:                 aws.String(TableBusinessCard.Name()),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}, func(page *dynamodb.QueryOutput, lastPage bool) bool {
		var pageBookings []model.Booking
		if pageErr = dynamodbattribute.UnmarshalListOfMaps(page.Items, &pageBookings); pageErr != nil {
			d.log.Errorf("Unable to unmarshal query page in QueryBookingsByBusiness: %v", pageErr)
			return false
		}
		bookings = append(bookings, pageBookings...)
		return true
	})
	if err == nil {
		err = pageErr
	}
	if err != nil {
		return nil, exception.NewUnknownDDBException(fmt.Sprintf("QueryBookingsByBusiness failed for pk '%s': ", businessPk), err)
	}

	return bookings, nil
}
