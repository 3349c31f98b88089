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

type parseCardRequest struct {
	RawText string `json:"rawText"`
}

func main() {
	lambda.Start(middleware.MetricMiddleware(enum.HandlerNameCardParserHandler, handleRequest))
}

func handleRequest(ctx context.Context, request events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	log := logger.NewLogger()

	var parseRequest parseCardRequest
	err := json.Unmarshal([]byte(request.Body), &parseRequest)
	if err != nil {
		log.Error("Error parsing request body: ", err)
		return events.LambdaFunctionURLResponse{Body: `{"message": "Error parsing request body"}`, StatusCode: 400}, nil
	}
	if util.IsEmptyString(parseRequest.RawText) {
		return events.LambdaFunctionURLResponse{Body: `{"message": "No text provided for parsing"}`, StatusCode: 400}, nil
	}

	ai := aiUtil.NewAi(log, secret.GetSecrets().GptApiKey)
	parsedCard, err := ai.ParseCardText(parseRequest.RawText)
	if err != nil {
		log.Error("Error parsing card text: ", err)
		return events.LambdaFunctionURLResponse{Body: `{"message": "Card parsing failed"}`, StatusCode: 500}, nil
	}

	return events.LambdaFunctionURLResponse{Body: jsonUtil.AnyToJson(parsedCard), StatusCode: 200}, nil
}
