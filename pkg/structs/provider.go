package structs

import (
	"context"
	"io"
)

type Provider interface {
	Initialize(opts ProviderOptions) error

	NotifySend(ctx context.Context, topic string, r *Report) (string, error)

	RegionList(ctx context.Context, opts RegionListOptions) (Regions, error)

	SubnetList(ctx context.Context, region string) (Subnets, error)
	SubnetScan(ctx context.Context, opts ScanOptions) (*Report, error)
}

type ProviderOptions struct {
	Logs io.Writer
}
