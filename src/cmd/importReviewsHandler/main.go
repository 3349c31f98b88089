package main

import (
	"context"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/go-playground/validator/v10"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/ddbDao"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/googleUtil"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/jsonUtil"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/logger"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/metric"
	metricEnum "github.com/muthu-pencilcard/connectcard-backend/src/pkg/metric/enum"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/model/enum"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/reviewImporter"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/secret"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/secret/secretModel"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/slackUtil"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/util"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/yelpUtil"
	"os"
)

func main() {
	lambda.Start(handleRequest)
}

func handleRequest(ctx context.Context, input reviewImporter.ImportInput) (reviewImporter.ImportSummary, error) {
	log := logger.NewLogger()
	stage := enum.ToStage(os.Getenv(util.StageEnvKey))
	log.Infof("Received import request in %s: %s", stage, jsonUtil.AnyToJson(input))

	err := validator.New().Struct(input)
	if err != nil {
		log.Error("Validation error when parsing import request: ", err)
		return reviewImporter.ImportSummary{}, err
	}

	// --------------------
	// initialize resources
	// --------------------
	googleApiKey, yelpApiKey, secrets, secretsLoaded := resolveCredentials(
		os.Getenv(util.GooglePlacesApiKeyEnvKey),
		os.Getenv(util.YelpApiKeyEnvKey),
		secret.GetSecrets,
	)

	mySession := session.Must(session.NewSession())
	reviewDao := ddbDao.NewReviewDao(dynamodb.New(mySession), log)

	importer := reviewImporter.NewImporter(
		reviewDao,
		googleUtil.NewGoogle(log, googleApiKey),
		yelpUtil.NewYelp(log, yelpApiKey),
		log,
	)

	// --------------------
	// import
	// --------------------
	summary := importer.Import(ctx, input)

	metric.EmitLambdaMetric(metricEnum.MetricImportedGoogleReviews, enum.HandlerNameImportReviewsHandler, float64(summary.GoogleReviews))
	metric.EmitLambdaMetric(metricEnum.MetricImportedYelpReviews, enum.HandlerNameImportReviewsHandler, float64(summary.YelpReviews))
	metric.EmitLambdaMetric(metricEnum.MetricImportErrors, enum.HandlerNameImportReviewsHandler, float64(len(summary.Errors)))

	// --------------------
	// surface errors to operator
	// --------------------
	if len(summary.Errors) > 0 && secretsLoaded && !util.IsEmptyString(secrets.SlackToken) {
		slackClient := slackUtil.NewSlack(log, stage, secrets.SlackToken, secrets.ImportAlertSlackChannelId)
		if slackErr := slackClient.SendImportAlertMessage(input.Target(), summary.RunId, summary.Errors); slackErr != nil {
			log.Warn("Unable to post import alert to Slack: ", slackErr)
		}
	}

	if summary.GoogleReviews+summary.YelpReviews > 0 {
		reviews, queryErr := reviewDao.QueryReviewsByBusiness(input.Target(), 1)
		if queryErr != nil {
			log.Warn("Unable to count stored reviews after import: ", queryErr)
		} else {
			log.Infof("Business %s now has %d stored reviews", input.Target(), len(reviews))
		}
	}

	return summary, nil
}

// resolveCredentials prefers environment overrides and loads Secrets Manager
// only when a key is missing from the environment. Secrets Manager fatals the
// process when unreachable, so local runs with both keys set must not touch it.
func resolveCredentials(googleEnvKey string, yelpEnvKey string, loadSecrets func() secretModel.Secrets) (string, string, secretModel.Secrets, bool) {
	googleApiKey := googleEnvKey
	yelpApiKey := yelpEnvKey
	var secrets secretModel.Secrets
	secretsLoaded := false
	if util.IsEmptyString(googleApiKey) || util.IsEmptyString(yelpApiKey) {
		secrets = loadSecrets()
		secretsLoaded = true
		if util.IsEmptyString(googleApiKey) {
			googleApiKey = secrets.GooglePlacesApiKey
		}
		if util.IsEmptyString(yelpApiKey) {
			yelpApiKey = secrets.YelpApiKey
		}
	}
	return googleApiKey, yelpApiKey, secrets, secretsLoaded
}
