package main

import (
	"context"
	"errors"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/googleUtil"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/jsonUtil"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/logger"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/model"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/secret"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/util"
	"os"
)

type ImportPlaceEvent struct {
	PlaceId string `json:"placeId"`
}

func main() {
	lambda.Start(handleRequest)
}

// Fetches Google place details and reshapes them into a BusinessCard prefill
// for the owner-onboarding flow. No card is written; the owner confirms the
// seed first.
func handleRequest(ctx context.Context, event ImportPlaceEvent) (model.BusinessCardSeed, error) {
	log := logger.NewLogger()
	log.Info("Received place import request: ", jsonUtil.AnyToJson(event))

	if util.IsEmptyString(event.PlaceId) {
		return model.BusinessCardSeed{}, errors.New("missing placeId")
	}

	apiKey := os.Getenv(util.GooglePlacesApiKeyEnvKey)
	if util.IsEmptyString(apiKey) {
		apiKey = secret.GetSecrets().GooglePlacesApiKey
	}

	googleClient := googleUtil.NewGoogle(log, apiKey)
	details, err := googleClient.FetchPlaceDetails(ctx, event.PlaceId)
	if err != nil {
		log.Errorf("Unable to fetch place details for placeId %s: %v", event.PlaceId, err)
		return model.BusinessCardSeed{}, err
	}

	seed := googleClient.ToBusinessCardSeed(event.PlaceId, details)
	log.Info("Built business card seed: ", jsonUtil.AnyToJson(seed))
	return seed, nil
}
