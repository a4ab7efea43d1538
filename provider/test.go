package provider

import (
	"context"

	"github.com/convox/subnetwatch/pkg/structs"
	"github.com/stretchr/testify/mock"
)

// TestProvider is a test provider
type TestProvider struct {
	mock.Mock
}

// Initialize initializes the provider
func (p *TestProvider) Initialize(opts structs.ProviderOptions) error {
	return p.Called(opts).Error(0)
}

// NotifySend publishes a report
func (p *TestProvider) NotifySend(ctx context.Context, topic string, r *structs.Report) (string, error) {
	args := p.Called(topic, r)
	return args.String(0), args.Error(1)
}

// RegionList lists regions
func (p *TestProvider) RegionList(ctx context.Context, opts structs.RegionListOptions) (structs.Regions, error) {
	args := p.Called(opts)

	if rs, ok := args.Get(0).(structs.Regions); ok {
		return rs, args.Error(1)
	}

	return nil, args.Error(1)
}

// SubnetList lists the subnets in a region
func (p *TestProvider) SubnetList(ctx context.Context, region string) (structs.Subnets, error) {
	args := p.Called(region)

	if ss, ok := args.Get(0).(structs.Subnets); ok {
		return ss, args.Error(1)
	}

	return nil, args.Error(1)
}

// SubnetScan scans every region for low subnets
func (p *TestProvider) SubnetScan(ctx context.Context, opts structs.ScanOptions) (*structs.Report, error) {
	args := p.Called(opts)

	if r, ok := args.Get(0).(*structs.Report); ok {
		return r, args.Error(1)
	}

	return nil, args.Error(1)
}
