package aws

import (
	"context"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/convox/subnetwatch/pkg/structs"
	"github.com/pkg/errors"
)

// RegionList returns the regions enabled for the account, sorted by name.
// When opts.Only is set the list is restricted to those regions.
func (p *Provider) RegionList(ctx context.Context, opts structs.RegionListOptions) (structs.Regions, error) {
	log := Logger.At("RegionList").Namespace("only=%q", strings.Join(opts.Only, ",")).Start()

	res, err := p.EC2(p.Region).DescribeRegionsWithContext(ctx, &ec2.DescribeRegionsInput{
		AllRegions: aws.Bool(false),
	})
	if err != nil {
		return nil, errors.WithStack(log.Error(err))
	}

	rs := structs.Regions{}

	for _, r := range res.Regions {
		rs = append(rs, structs.Region{
			Name:     aws.StringValue(r.RegionName),
			Endpoint: aws.StringValue(r.Endpoint),
		})
	}

	sort.Slice(rs, func(i, j int) bool { return rs[i].Name < rs[j].Name })

	if len(opts.Only) > 0 {
		known := map[string]structs.Region{}

		for _, r := range rs {
			known[r.Name] = r
		}

		only := structs.Regions{}
		seen := map[string]bool{}

		for _, name := range opts.Only {
			if seen[name] {
				continue
			}

			seen[name] = true

			r, ok := known[name]
			if !ok {
				return nil, log.Error(errorNoSuchRegion(name))
			}

			only = append(only, r)
		}

		sort.Slice(only, func(i, j int) bool { return only[i].Name < only[j].Name })

		rs = only
	}

	log.Successf("regions=%d", len(rs))

	return rs, nil
}
