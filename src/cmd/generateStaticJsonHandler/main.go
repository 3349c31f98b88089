package main

import (
	"context"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/ddbDao"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/logger"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/metric"
	metricEnum "github.com/muthu-pencilcard/connectcard-backend/src/pkg/metric/enum"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/model/enum"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/s3Util"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/snapshotExporter"
)

func main() {
	lambda.Start(handleRequest)
}

// Invoked hourly by an EventBridge schedule. A failed run publishes nothing;
// clients keep serving the previous snapshot until the next run succeeds.
func handleRequest(ctx context.Context, event events.CloudWatchEvent) (snapshotExporter.ExportSummary, error) {
	log := logger.NewLogger()
	log.Infof("Starting static JSON generation, triggered by %s", event.Source)

	mySession := session.Must(session.NewSession())
	businessCardDao := ddbDao.NewBusinessCardDao(dynamodb.New(mySession), log)

	s3Client, err := s3Util.NewS3Client(ctx, log)
	if err != nil {
		log.Error("Unable to initialize S3 client: ", err)
		return snapshotExporter.ExportSummary{}, err
	}

	exporter := snapshotExporter.NewExporter(businessCardDao, s3Client, log)
	summary, err := exporter.Run(ctx)
	if err != nil {
		log.Error("Snapshot run failed: ", err)
		return snapshotExporter.ExportSummary{}, err
	}

	metric.EmitLambdaMetric(metricEnum.MetricSnapshotPublished, enum.HandlerNameGenerateStaticJsonHandler, 1.0)
	metric.EmitLambdaMetric(metricEnum.MetricSnapshotRecordCount, enum.HandlerNameGenerateStaticJsonHandler, float64(summary.Count))

	log.Infof("Successfully published %s with %d businesses", summary.ObjectKey, summary.Count)
	return summary, nil
}
