package main

import (
	"context"
	"encoding/json"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/aiUtil"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/jsonUtil"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/logger"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/middleware"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/model/enum"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/secret"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/util"
)

type searchRequest struct {
	Prompt string `json:"prompt"`
}

func main() {
	lambda.Start(middleware.MetricMiddleware(enum.HandlerNameSearchAssistantHandler, handleRequest))
}

func handleRequest(ctx context.Context, request events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	log := logger.NewLogger()

	var search searchRequest
	err := json.Unmarshal([]byte(request.Body), &search)
	if err != nil {
		log.Error("Error parsing request body: ", err)
		return events.LambdaFunctionURLResponse{Body: `{"message": "Error parsing request body"}`, StatusCode: 400}, nil
	}
	if util.IsEmptyString(search.Prompt) {
		return events.LambdaFunctionURLResponse{Body: `{"message": "No search prompt provided"}`, StatusCode: 400}, nil
	}

	ai := aiUtil.NewAi(log, secret.GetSecrets().GptApiKey)
	intent, err := ai.ExtractSearchIntent(search.Prompt)
	if err != nil {
		// degrade to a plain keyword search instead of failing the request
		log.Warn("Search intent extraction failed, falling back to keyword search: ", err)
		intent = aiUtil.SearchIntent{
			Filters: aiUtil.SearchFilters{SearchInfo: search.Prompt},
			Message: "I'm having trouble connecting to my brain, so I'll just search for keywords.",
		}
	}

	return events.LambdaFunctionURLResponse{Body: jsonUtil.AnyToJson(intent), StatusCode: 200}, nil
}
