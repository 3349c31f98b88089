package ddbDao

import (
	"fmt"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/aws/aws-sdk-go/service/dynamodb/expression"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/exception"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/model"
	"go.uber.org/zap"
	"time"
)

// OfferDao reads and writes promotions in the directory table, sharing the
// business partition like bookings do.
type OfferDao struct {
	client dynamodbiface.DynamoDBAPI
	log    *zap.SugaredLogger
}

func NewOfferDao(client dynamodbiface.DynamoDBAPI, logger *zap.SugaredLogger) *OfferDao {
	return &OfferDao{
		client: client,
		log:    logger,
	}
}

func (d *OfferDao) PutOffer(offer model.Offer) error {
	av, err := dynamodbattribute.MarshalMap(offer)
	if err != nil {
		return err
	}

	_, err = d.client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(TableBusinessCard.Name()),
		Item:      av,
	})
	if err != nil {
		d.log.Errorf("PutOffer failed for %s/%s: %v", offer.Pk, offer.Sk, err)
		return exception.NewStorePersistException(fmt.Sprintf("PutOffer failed for '%s/%s': ", offer.Pk, offer.Sk), err)
	}

	return nil
}

// QueryLiveOffers returns the offers of a business that are live at the
// given instant. Prefix query narrows to the OFFER# namespace; the time
// window check runs client-side because validFrom/validUntil are optional.
func (d *OfferDao) QueryLiveOffers(businessPk string, now time.Time) ([]model.Offer, error) {
	keyCondition := expression.Key("pk").Equal(expression.Value(businessPk)).
		And(expression.Key("sk").BeginsWith(model.OfferSkPrefix))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCondition).Build()
	if err != nil {
		d.log.Errorf("Unable to build key condition expression for QueryLiveOffers with pk %s: %v", businessPk, err)
		return nil, err
	}

	var offers []model.Offer
	var pageErr error
	err = d.client.QueryPages(&dynamodb.QueryInput{
		TableName:                 aws.String(TableBusinessCard.Name()),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}, func(page *dynamodb.QueryOutput, lastPage bool) bool {
		var pageOffers []model.Offer
		if pageErr = dynamodbattribute.UnmarshalListOfMaps(page.Items, &pageOffers); pageErr != nil {
			d.log.Errorf("Unable to unmarshal query page in QueryLiveOffers: %v", pageErr)
			return false
		}
		offers = append(offers, pageOffers...)
		return true
	})
	if err == nil {
		err = pageErr
	}
	if err != nil {
		return nil, exception.NewUnknownDDBException(fmt.Sprintf("QueryLiveOffers failed for pk '%s': ", businessPk), err)
	}

	live := make([]model.Offer, 0, len(offers))
	for _, offer := range offers {
		if offer.IsLive(now) {
			live = append(live, offer)
		}
	}
	return live, nil
}
