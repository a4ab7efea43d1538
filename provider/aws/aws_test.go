package aws_test

import (
	"io/ioutil"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
	"github.com/convox/logger"
	mockaws "github.com/convox/subnetwatch/pkg/mock/aws"
	"github.com/convox/subnetwatch/pkg/structs"
	"github.com/convox/subnetwatch/pkg/test/awsutil"
	"github.com/convox/subnetwatch/provider/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.Output = ioutil.Discard
}

type AwsStub struct {
	*aws.Provider
	handler *awsutil.Handler
	server  *httptest.Server
}

func (a *AwsStub) Close() {
	a.server.Close()
}

// StubAwsProvider creates an httptest server with canned Request / Response
// cycles, and returns a provider that uses the test server as the endpoint
func StubAwsProvider(t *testing.T, cycles ...awsutil.Cycle) *AwsStub {
	h := awsutil.NewHandler(t, cycles)
	s := httptest.NewServer(h)

	p := aws.NewProvider("us-test-1", s.URL, "test-access", "test-secret", "")

	require.NoError(t, p.Initialize(structs.ProviderOptions{}))

	return &AwsStub{Provider: p, handler: h, server: s}
}

type mocks struct {
	EC2 map[string]*mockaws.EC2API
	SNS *mockaws.SNSAPI
}

// testProvider builds a provider backed by one EC2 mock per region named and an SNS mock
func testProvider(t *testing.T, regions []string, fn func(p *aws.Provider, m mocks)) {
	m := mocks{
		EC2: map[string]*mockaws.EC2API{},
		SNS: &mockaws.SNSAPI{},
	}

	for _, r := range append([]string{"us-test-1"}, regions...) {
		m.EC2[r] = &mockaws.EC2API{}
	}

	p := &aws.Provider{
		Region: "us-test-1",
		EC2: func(region string) ec2iface.EC2API {
			e, ok := m.EC2[region]
			assert.True(t, ok, "unexpected region: %s", region)
			return e
		},
		SNS: m.SNS,
	}

	require.NoError(t, p.Initialize(structs.ProviderOptions{}))

	fn(p, m)

	for _, e := range m.EC2 {
		e.AssertExpectations(t)
	}

	m.SNS.AssertExpectations(t)
}
