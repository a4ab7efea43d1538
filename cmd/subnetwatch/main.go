package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/convox/subnetwatch/pkg/helpers"
	"github.com/convox/subnetwatch/pkg/structs"
	"github.com/convox/subnetwatch/provider"
	humanize "github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

var (
	flagConcurrency int
	flagLimit       int64
	flagPublish     bool
	flagRegions     string
	flagTopic       string

	low     = color.New(color.FgRed).SprintFunc()
	empty   = color.New(color.FgRed).Add(color.Bold).SprintFunc()
	healthy = color.New(color.FgGreen).SprintFunc()
)

func main() {
	if err := execute(context.Background(), os.Args[1:], os.Stdout); err != nil {
		if provider.ErrorNotFound(err) {
			fmt.Fprintf(os.Stderr, "ERROR: %s (check -regions)\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		}
		os.Exit(1)
	}
}

func execute(ctx context.Context, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("subnetwatch", flag.ContinueOnError)

	fs.IntVar(&flagConcurrency, "concurrency", 4, "regions scanned at once")
	fs.Int64Var(&flagLimit, "limit", 0, "alert on subnets with fewer available addresses than this")
	fs.BoolVar(&flagPublish, "publish", false, "publish the report to -topic")
	fs.StringVar(&flagRegions, "regions", "", "comma separated regions to scan (default all enabled)")
	fs.StringVar(&flagTopic, "topic", "", "sns topic arn")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if v := os.Getenv("IP_limit"); v != "" && flagLimit == 0 {
		limit, err := helpers.EnvInt("IP_limit", 0)
		if err != nil {
			return err
		}
		flagLimit = limit
	}

	flagTopic = helpers.CoalesceString(flagTopic, os.Getenv("SNStopic"))

	if flagLimit <= 0 {
		return fmt.Errorf("-limit must be greater than zero")
	}

	if flagConcurrency < 0 {
		return fmt.Errorf("-concurrency must not be negative")
	}

	if flagPublish && flagTopic == "" {
		return fmt.Errorf("-topic required to publish")
	}

	p, err := provider.FromEnv()
	if err != nil {
		return err
	}

	r, err := p.SubnetScan(ctx, structs.ScanOptions{
		Limit:       flagLimit,
		Regions:     helpers.SplitList(flagRegions),
		Concurrency: &flagConcurrency,
	})
	if err != nil {
		return err
	}

	render(w, r)

	if !flagPublish {
		return nil
	}

	id, err := p.NotifySend(ctx, flagTopic, r)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "published %s\n", id)

	return nil
}

func render(w io.Writer, r *structs.Report) {
	for _, s := range r.Low {
		count := low(humanize.Comma(s.AvailableIps))

		if s.AvailableIps == 0 {
			count = empty("0")
		}

		fmt.Fprintf(w, "%-16s %-26s %-18s %-20s %s\n", s.Region, s.Id, s.CidrBlock, helpers.CoalesceString(s.Name, "-"), count)
	}

	summary := fmt.Sprintf("%s subnets in %d regions, %d below %s available addresses",
		humanize.Comma(int64(r.Scanned)), r.Regions, len(r.Low), humanize.Comma(r.Limit))

	if len(r.Low) == 0 {
		summary = healthy(summary)
	}

	fmt.Fprintln(w, summary)
}
