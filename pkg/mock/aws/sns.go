package mockaws

import (
	aws "github.com/aws/aws-sdk-go/aws"
	request "github.com/aws/aws-sdk-go/aws/request"
	sns "github.com/aws/aws-sdk-go/service/sns"
	snsiface "github.com/aws/aws-sdk-go/service/sns/snsiface"
	mock "github.com/stretchr/testify/mock"
)

// SNSAPI is a mock type for the SNSAPI type
type SNSAPI struct {
	snsiface.SNSAPI
	mock.Mock
}

// PublishWithContext provides a mock function with given fields: _a0, _a1, _a2
func (_m *SNSAPI) PublishWithContext(_a0 aws.Context, _a1 *sns.PublishInput, _a2 ...request.Option) (*sns.PublishOutput, error) {
	ret := _m.Called(_a1)

	var r0 *sns.PublishOutput
	if rf, ok := ret.Get(0).(func(*sns.PublishInput) *sns.PublishOutput); ok {
		r0 = rf(_a1)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*sns.PublishOutput)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(*sns.PublishInput) error); ok {
		r1 = rf(_a1)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
