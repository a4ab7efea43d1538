package mockaws

import (
	aws "github.com/aws/aws-sdk-go/aws"
	request "github.com/aws/aws-sdk-go/aws/request"
	ec2 "github.com/aws/aws-sdk-go/service/ec2"
	ec2iface "github.com/aws/aws-sdk-go/service/ec2/ec2iface"
	mock "github.com/stretchr/testify/mock"
)

// EC2API is a mock type for the EC2API type
type EC2API struct {
	ec2iface.EC2API
	mock.Mock
}

// DescribeRegionsWithContext provides a mock function with given fields: _a0, _a1, _a2
func (_m *EC2API) DescribeRegionsWithContext(_a0 aws.Context, _a1 *ec2.DescribeRegionsInput, _a2 ...request.Option) (*ec2.DescribeRegionsOutput, error) {
	ret := _m.Called(_a1)

	var r0 *ec2.DescribeRegionsOutput
	if rf, ok := ret.Get(0).(func(*ec2.DescribeRegionsInput) *ec2.DescribeRegionsOutput); ok {
		r0 = rf(_a1)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*ec2.DescribeRegionsOutput)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(*ec2.DescribeRegionsInput) error); ok {
		r1 = rf(_a1)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DescribeSubnetsWithContext provides a mock function with given fields: _a0, _a1, _a2
func (_m *EC2API) DescribeSubnetsWithContext(_a0 aws.Context, _a1 *ec2.DescribeSubnetsInput, _a2 ...request.Option) (*ec2.DescribeSubnetsOutput, error) {
	ret := _m.Called(_a1)

	var r0 *ec2.DescribeSubnetsOutput
	if rf, ok := ret.Get(0).(func(*ec2.DescribeSubnetsInput) *ec2.DescribeSubnetsOutput); ok {
		r0 = rf(_a1)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*ec2.DescribeSubnetsOutput)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(*ec2.DescribeSubnetsInput) error); ok {
		r1 = rf(_a1)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
