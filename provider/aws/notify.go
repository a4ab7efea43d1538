package aws

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sns"
	"github.com/convox/subnetwatch/pkg/structs"
	"github.com/pkg/errors"
)

// NotifySend publishes a report to an SNS topic.
//
// A single message is published per report whether or not any subnet is low,
// so subscribers can tell a healthy scan from a scan that never ran.
func (p *Provider) NotifySend(ctx context.Context, topic string, r *structs.Report) (string, error) {
	log := Logger.At("NotifySend").Namespace("topic=%q low=%d", topic, len(r.Low)).Start()

	if topic == "" {
		return "", log.Error(errors.New("topic required"))
	}

	res, err := p.SNS.PublishWithContext(ctx, &sns.PublishInput{
		Message:  aws.String(r.Message()),
		Subject:  aws.String(NotifySubject),
		TopicArn: aws.String(topic),
	})
	if err != nil {
		return "", errors.WithStack(log.Error(err))
	}

	id := aws.StringValue(res.MessageId)

	log.Successf("message-id=%q", id)

	return id, nil
}
