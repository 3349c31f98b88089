package slackUtil

import (
	"fmt"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/model"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/model/enum"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
	"strings"
)

type Slack struct {
	client    *slack.Client
	log       *zap.SugaredLogger
	stage     enum.Stage
	channelId string
}

func NewSlack(logger *zap.SugaredLogger, stage enum.Stage, slackToken string, importAlertChannelId string) *Slack {
	client := slack.New(slackToken)

	return &Slack{
		client:    client,
		log:       logger,
		stage:     stage,
		channelId: importAlertChannelId,
	}
}

// SendImportAlertMessage surfaces a review-import run that finished with
// errors to the operator channel.
func (s *Slack) SendImportAlertMessage(target model.BusinessKey, runId string, importErrors []string) error {
	msg := ""
	if s.stage != enum.StageProd {
		msg += "*[" + s.stage.String() + "]* "
	}
	msg += fmt.Sprintf("Review import run %s for business %s finished with %d error(s):\n• %s",
		runId, target, len(importErrors), strings.Join(importErrors, "\n• "))

	_, _, err := s.client.PostMessage(
		s.channelId,
		slack.MsgOptionText(msg, false),
	)
	if err != nil {
		s.log.Error("Unable to send message to Slack in SendImportAlertMessage: ", err)
		return err
	}

	return nil
}
