package helpers

import (
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/pkg/errors"
)

func AwsErrorCode(err error) string {
	if ae, ok := errors.Cause(err).(awserr.Error); ok {
		return ae.Code()
	}

	return ""
}

// AwsErrorClient returns true if err came back from an AWS API call
func AwsErrorClient(err error) bool {
	_, ok := errors.Cause(err).(awserr.Error)
	return ok
}
