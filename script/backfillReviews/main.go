package main

import (
	"context"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/ddbDao"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/googleUtil"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/jsonUtil"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/logger"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/reviewImporter"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/secret"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/yelpUtil"
)

// One-off backfill: re-runs the review import for businesses that onboarded
// before imports were scheduled. Deploy, invoke once, tear down.

func main() {
	lambda.Start(handleRequest)
}

func handleRequest(ctx context.Context, request events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	log := logger.NewLogger()

	// --------------------
	// script parameters
	// --------------------
	inputs := []reviewImporter.ImportInput{
		{
			BusinessPk:    "IN#KA#BLR",
			BusinessSk:    "BIZ#rk-plumbing",
			GooglePlaceId: "ChIJN1t_tDeuEmsRUsoyG83frY4",
		},
		{
			BusinessPk:     "IN#KA#BLR",
			BusinessSk:     "BIZ#maya-bakes",
			GooglePlaceId:  "ChIJLU7jZClu5kcR4PcOOO6p3I0",
			YelpBusinessId: "maya-bakes-bengaluru",
		},
	}

	// --------------------
	// initialize resources
	// --------------------
	secrets := secret.GetSecrets()
	mySession := session.Must(session.NewSession())
	reviewDao := ddbDao.NewReviewDao(dynamodb.New(mySession), log)

	importer := reviewImporter.NewImporter(
		reviewDao,
		googleUtil.NewGoogle(log, secrets.GooglePlacesApiKey),
		yelpUtil.NewYelp(log, secrets.YelpApiKey),
		log,
	)

	// --------------------
	// backfill
	// --------------------
	for _, input := range inputs {
		summary := importer.Import(ctx, input)
		log.Infof("Backfill for %s: %s", input.Target(), jsonUtil.AnyToJson(summary))
	}

	return events.LambdaFunctionURLResponse{Body: `{"message": "Backfill complete"}`, StatusCode: 200}, nil
}
