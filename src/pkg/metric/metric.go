package metric

import (
	"context"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/logger"
	enum2 "github.com/muthu-pencilcard/connectcard-backend/src/pkg/metric/enum"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/model/enum"
)

var (
	_log = logger.NewLogger()
)

const metricNamespace = "ConnectCard/Metrics"

// EmitLambdaMetric publishes one datapoint dimensioned by handler. Emission
// failures are logged and swallowed; metrics never fail the business path.
func EmitLambdaMetric(metric enum2.Metric, lambdaHandler enum.HandlerName, value float64) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		_log.Error("Error loading AWS config: ", err)
		return
	}
	svc := cloudwatch.NewFromConfig(cfg)
	_, err = svc.PutMetricData(context.TODO(), &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(metricNamespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String(metric.String()),
				Dimensions: []types.Dimension{
					{
						Name:  aws.String("FunctionName"),
						Value: aws.String(lambdaHandler.String()),
					},
				},
				Unit:  types.StandardUnitCount,
				Value: aws.Float64(value),
			},
		},
	})
	if err != nil {
		_log.Error("Error emitting metric: ", err)
	}
}
