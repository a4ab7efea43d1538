package structs_test

import (
	"encoding/json"
	"testing"

	"github.com/convox/subnetwatch/pkg/structs"
	"github.com/stretchr/testify/require"
)

func TestReportMessage(t *testing.T) {
	r := &structs.Report{
		Limit: 20,
		Low: structs.Subnets{
			{Id: "subnet-1", Region: "us-east-1", VpcId: "vpc-1", AvailabilityZone: "us-east-1a", CidrBlock: "10.0.0.0/27", AvailableIps: 5},
			{Id: "subnet-2", Region: "us-east-2", VpcId: "vpc-2", AvailabilityZone: "us-east-2a", CidrBlock: "10.0.1.0/27", AvailableIps: 19},
		},
	}

	require.Equal(t, "us-east-1 subnet-1 vpc=vpc-1 az=us-east-1a cidr=10.0.0.0/27 available=5\nus-east-2 subnet-2 vpc=vpc-2 az=us-east-2a cidr=10.0.1.0/27 available=19", r.Message())
}

func TestReportMessageEmpty(t *testing.T) {
	r := &structs.Report{Limit: 20}

	require.Equal(t, "no subnets below 20 available addresses", r.Message())
}

func TestResponseJSON(t *testing.T) {
	data, err := json.Marshal(structs.Response{StatusCode: 200, Body: "ok"})
	require.NoError(t, err)
	require.JSONEq(t, `{"statusCode":200,"body":"ok"}`, string(data))
}

func TestRegionsNames(t *testing.T) {
	rs := structs.Regions{{Name: "ap-south-1"}, {Name: "eu-north-1"}}

	require.Equal(t, []string{"ap-south-1", "eu-north-1"}, rs.Names())
}
