package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/convox/logger"
	"github.com/convox/subnetwatch/pkg/helpers"
	"github.com/convox/subnetwatch/pkg/structs"
	"github.com/convox/subnetwatch/provider"
	"github.com/pkg/errors"
)

var (
	Logger   = logger.New("ns=lambda.subnetwatch")
	Provider structs.Provider
)

type Config struct {
	Limit       int64
	Topic       string
	Regions     []string
	Concurrency int
}

// Handler scans every region for subnets running out of addresses and
// publishes the result to the configured topic.
//
// A rejected publish is logged and answered with no response, the same way
// the function has always reported an SNS failure.
func Handler(ctx context.Context, e events.CloudWatchEvent) (*structs.Response, error) {
	log := Logger.At("Handler").Namespace("id=%s source=%s", e.ID, e.Source).Start()

	c, err := loadConfig()
	if err != nil {
		helpers.Error(log, err)
		return nil, err
	}

	if Provider == nil {
		p, err := provider.FromEnv()
		if err != nil {
			helpers.Error(log, err)
			return nil, err
		}

		Provider = p
	}

	r, err := Provider.SubnetScan(ctx, structs.ScanOptions{
		Limit:       c.Limit,
		Regions:     c.Regions,
		Concurrency: &c.Concurrency,
	})
	if err != nil {
		helpers.Error(log, err)
		return nil, err
	}

	id, err := Provider.NotifySend(ctx, c.Topic, r)
	if err != nil {
		if helpers.AwsErrorClient(err) {
			helpers.Error(log.Step("notify"), err)
			return nil, nil
		}

		helpers.Error(log, err)
		return nil, err
	}

	body := fmt.Sprintf("published %d subnet(s) below %d to %s message=%s", len(r.Low), c.Limit, c.Topic, id)

	log.Successf("regions=%d scanned=%d low=%d message-id=%q", r.Regions, r.Scanned, len(r.Low), id)

	return &structs.Response{StatusCode: 200, Body: body}, nil
}

func loadConfig() (*Config, error) {
	c := &Config{
		Topic:   strings.TrimSpace(os.Getenv("SNStopic")),
		Regions: helpers.EnvList("REGIONS"),
	}

	if strings.TrimSpace(os.Getenv("IP_limit")) == "" {
		return nil, errors.New("IP_limit required")
	}

	limit, err := helpers.EnvInt("IP_limit", 0)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		return nil, errors.Errorf("IP_limit must be greater than zero: %d", limit)
	}

	c.Limit = limit

	if c.Topic == "" {
		return nil, errors.New("SNStopic required")
	}

	concurrency, err := helpers.EnvInt("CONCURRENCY", 1)
	if err != nil {
		return nil, err
	}

	if concurrency < 0 {
		return nil, errors.Errorf("CONCURRENCY must not be negative: %d", concurrency)
	}

	c.Concurrency = int(concurrency)

	return c, nil
}

func main() {
	lambda.Start(Handler)
}
