package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"github.com/convox/subnetwatch/pkg/helpers"
	"github.com/convox/subnetwatch/pkg/stack"
)

var (
	flagConfig string
)

func main() {
	defer jsii.Close()

	if err := execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
}

func execute() error {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	fs.StringVar(&flagConfig, "config", "stack.yml", "path to stack config")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if v := os.Getenv("STACK_CONFIG"); v != "" {
		flagConfig = v
	}

	c, err := stack.LoadConfigFile(flagConfig)
	if err != nil {
		return err
	}

	app := awscdk.NewApp(nil)

	env := &awscdk.Environment{}

	if v := helpers.CoalesceString(c.Account, os.Getenv("CDK_DEFAULT_ACCOUNT")); v != "" {
		env.Account = jsii.String(v)
	}

	if v := helpers.CoalesceString(c.Region, os.Getenv("CDK_DEFAULT_REGION")); v != "" {
		env.Region = jsii.String(v)
	}

	if _, err := stack.NewStack(app, c.Name, &stack.StackProps{
		StackProps: awscdk.StackProps{Env: env},
		Config:     c,
	}); err != nil {
		return err
	}

	app.Synth(nil)

	return nil
}
