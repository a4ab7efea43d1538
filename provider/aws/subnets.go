package aws

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/convox/subnetwatch/pkg/helpers"
	"github.com/convox/subnetwatch/pkg/structs"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var (
	ThrottleRetries = 3
	ThrottleDelay   = 2 * time.Second
)

// SubnetList returns every subnet visible in a region
func (p *Provider) SubnetList(ctx context.Context, region string) (structs.Subnets, error) {
	log := Logger.At("SubnetList").Namespace("region=%s", region).Start()

	ss := structs.Subnets{}

	client := p.EC2(region)

	req := &ec2.DescribeSubnetsInput{}

	for {
		var res *ec2.DescribeSubnetsOutput

		err := helpers.Retry(ctx, ThrottleRetries, ThrottleDelay, helpers.AwsErrorThrottled, func() error {
			out, err := client.DescribeSubnetsWithContext(ctx, req)
			res = out
			return err
		})
		if err != nil {
			return nil, errors.Wrapf(log.Error(err), "describe subnets in %s", region)
		}

		for _, s := range res.Subnets {
			ss = append(ss, subnetFromEC2(region, s))
		}

		if res.NextToken == nil || *res.NextToken == "" {
			break
		}

		req.NextToken = res.NextToken
	}

	log.Successf("subnets=%d", len(ss))

	return ss, nil
}

// SubnetScan lists the subnets of every region and reports the ones with
// fewer than opts.Limit available addresses. Any region failing fails the scan.
func (p *Provider) SubnetScan(ctx context.Context, opts structs.ScanOptions) (*structs.Report, error) {
	workers := helpers.DefaultInt(opts.Concurrency, 1)

	if workers < 1 {
		workers = 1
	}

	log := Logger.At("SubnetScan").Namespace("limit=%d concurrency=%d", opts.Limit, workers).Start()

	rs, err := p.RegionList(ctx, structs.RegionListOptions{Only: opts.Regions})
	if err != nil {
		return nil, err
	}

	// indexed by region so the report keeps region order however the lookups finish
	found := make([]structs.Subnets, len(rs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range rs {
		i := i

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			ss, err := p.SubnetList(gctx, rs[i].Name)
			if err != nil {
				return err
			}

			found[i] = ss

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &structs.Report{
		Limit:   opts.Limit,
		Regions: len(rs),
		Low:     structs.Subnets{},
	}

	for _, ss := range found {
		report.Scanned += len(ss)
		report.Low = append(report.Low, ss.Below(opts.Limit)...)
	}

	log.Successf("regions=%d scanned=%d low=%d", report.Regions, report.Scanned, len(report.Low))

	return report, nil
}

func subnetFromEC2(region string, s *ec2.Subnet) structs.Subnet {
	sn := structs.Subnet{
		Id:               aws.StringValue(s.SubnetId),
		Region:           region,
		VpcId:            aws.StringValue(s.VpcId),
		AvailabilityZone: aws.StringValue(s.AvailabilityZone),
		CidrBlock:        aws.StringValue(s.CidrBlock),
		AvailableIps:     aws.Int64Value(s.AvailableIpAddressCount),
	}

	for _, t := range s.Tags {
		if aws.StringValue(t.Key) == "Name" {
			sn.Name = aws.StringValue(t.Value)
		}
	}

	return sn
}
