package main

import (
	"context"
	"encoding/json"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/ddbDao"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/logger"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/middleware"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/model"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/model/enum"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/util"
	"time"
)

type engagementRequest struct {
	Slug   string `json:"slug"`
	Metric string `json:"metric"`           // viewCount, saveCount or catalogueViewCount
	UserId string `json:"userId,omitempty"` // saves from signed-in users also land in their address book
}

func main() {
	lambda.Start(middleware.MetricMiddleware(enum.HandlerNameEngagementHandler, handleRequest))
}

// Records one engagement event against a BusinessCard. The increment runs as
// an atomic ADD in the store, so concurrent viewers never lose counts.
func handleRequest(ctx context.Context, request events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	log := logger.NewLogger()

	var engagement engagementRequest
	err := json.Unmarshal([]byte(request.Body), &engagement)
	if err != nil {
		log.Error("Error parsing request body: ", err)
		return events.LambdaFunctionURLResponse{Body: `{"message": "Error parsing request body"}`, StatusCode: 400}, nil
	}
	if util.IsEmptyString(engagement.Slug) {
		return events.LambdaFunctionURLResponse{Body: `{"message": "Missing slug"}`, StatusCode: 400}, nil
	}
	if err := model.ValidateCounterName(engagement.Metric); err != nil {
		log.Error("Invalid engagement metric: ", err)
		return events.LambdaFunctionURLResponse{Body: `{"message": "Invalid engagement metric"}`, StatusCode: 400}, nil
	}

	mySession := session.Must(session.NewSession())
	businessCardDao := ddbDao.NewBusinessCardDao(dynamodb.New(mySession), log)

	card, err := businessCardDao.GetBusinessCardBySlug(engagement.Slug)
	if err != nil {
		log.Error("Error resolving business card by slug: ", err)
		return events.LambdaFunctionURLResponse{Body: `{"message": "Error resolving business card"}`, StatusCode: 500}, nil
	}
	if card == nil {
		return events.LambdaFunctionURLResponse{Body: `{"message": "Business card not found"}`, StatusCode: 404}, nil
	}

	err = businessCardDao.IncrementCounter(card.Key(), engagement.Metric)
	if err != nil {
		log.Errorf("Error incrementing %s for business %s: %v", engagement.Metric, card.Key(), err)
		return events.LambdaFunctionURLResponse{Body: `{"message": "Error recording engagement"}`, StatusCode: 500}, nil
	}

	if engagement.Metric == "saveCount" && !util.IsEmptyString(engagement.UserId) {
		savedContactDao := ddbDao.NewSavedContactDao(dynamodb.New(mySession), log)
		contact := model.SavedContact{
			UserId:       engagement.UserId,
			BusinessId:   card.Key().String(),
			LastSyncedAt: time.Now().UTC(),
		}
		if err := savedContactDao.SaveContact(contact); err != nil {
			// counter is already recorded; the client retries the save itself
			log.Errorf("Error saving contact for user %s business %s: %v", engagement.UserId, card.Key(), err)
		}
	}

	return events.LambdaFunctionURLResponse{Body: `{"message": "Recorded"}`, StatusCode: 200}, nil
}
