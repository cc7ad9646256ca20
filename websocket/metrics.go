// file: websocket/metrics.go
package websocket

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"

	"campus-teams/logger"
)

// Namespace for all campus-teams metrics.
var metricsNamespace = "CampusTeams"

// Publishing is off unless enabled from config; the client is built
// lazily so local runs never touch AWS.
var (
	metricsEnabled bool
	cwClient       *cloudwatch.CloudWatch
)

// EnableMetrics turns CloudWatch publishing on.
func EnableMetrics() {
	metricsEnabled = true
	cwClient = cloudwatch.New(session.Must(session.NewSession()))
}

// PublishFeedConnections pushes the current feed connection count.
func PublishFeedConnections(count int) {
	putMetric("FeedConnections", float64(count), "Count", "feed")
}

// PublishFanout pushes the size of one notification fan-out.
func PublishFanout(sourceType string, count int) {
	putMetric("NotificationFanout", float64(count), "Count", sourceType)
}

// -----------------------------------------------------------
// internal helper function to package up CloudWatch calls
// -----------------------------------------------------------
func putMetric(metricName string, value float64, unit string, source string) {
	if !metricsEnabled {
		return
	}

	_, err := cwClient.PutMetricData(&cloudwatch.PutMetricDataInput{
		Namespace: aws.String(metricsNamespace),
		MetricData: []*cloudwatch.MetricDatum{
			{
				MetricName: aws.String(metricName),
				Dimensions: []*cloudwatch.Dimension{
					{
						Name:  aws.String("Source"),
						Value: aws.String(source),
					},
				},
				Timestamp: aws.Time(time.Now()),
				Value:     aws.Float64(value),
				Unit:      aws.String(unit),
			},
		},
	})
	if err != nil {
		logger.Error.Printf("[putMetric] CloudWatch metric failed (%s): %v", metricName, err)
	}
}
