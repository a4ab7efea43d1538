package stack

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsevents"
	"github.com/aws/aws-cdk-go/awscdk/v2/awseventstargets"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssns"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssnssubscriptions"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

var (
	weekdayNumber = regexp.MustCompile(`\d+`)
	weekdayNames  = []string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}
)

type StackProps struct {
	awscdk.StackProps
	Config *Config
}

// NewStack defines the alert topic, the scanning function and the rule that
// runs it on the configured schedule
func NewStack(scope constructs.Construct, id string, props *StackProps) (awscdk.Stack, error) {
	c := props.Config

	cron, err := c.Cron()
	if err != nil {
		return nil, err
	}

	stack := awscdk.NewStack(scope, &id, &props.StackProps)

	topic := awssns.NewTopic(stack, jsii.String("AlertTopic"), &awssns.TopicProps{
		DisplayName: jsii.String("Subnet capacity alerts"),
	})

	if c.Email != "" {
		topic.AddSubscription(awssnssubscriptions.NewEmailSubscription(jsii.String(c.Email), nil))
	}

	env := map[string]*string{
		"IP_limit":    jsii.String(strconv.FormatInt(c.Limit, 10)),
		"SNStopic":    topic.TopicArn(),
		"CONCURRENCY": jsii.String(strconv.Itoa(c.Concurrency)),
	}

	if len(c.Regions) > 0 {
		env["REGIONS"] = jsii.String(strings.Join(c.Regions, ","))
	}

	fn := awslambda.NewFunction(stack, jsii.String("Function"), &awslambda.FunctionProps{
		Code:         awslambda.Code_FromAsset(jsii.String(c.Code), nil),
		Runtime:      awslambda.Runtime_PROVIDED_AL2023(),
		Architecture: awslambda.Architecture_ARM_64(),
		Handler:      jsii.String("bootstrap"), // provided runtimes execute bootstrap
		MemorySize:   jsii.Number(256),
		Timeout:      awscdk.Duration_Minutes(jsii.Number(5)),
		Environment:  &env,
	})

	fn.AddToRolePolicy(awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
		Actions:   jsii.Strings("ec2:DescribeRegions", "ec2:DescribeSubnets"),
		Effect:    awsiam.Effect_ALLOW,
		Resources: jsii.Strings("*"),
	}))

	topic.GrantPublish(fn)

	rule := awsevents.NewRule(stack, jsii.String("Schedule"), &awsevents.RuleProps{
		Description: jsii.String("Scan VPC subnets for free addresses"),
		Schedule:    awsevents.Schedule_Cron(cronOptions(cron)),
	})

	rule.AddTarget(awseventstargets.NewLambdaFunction(fn, nil))

	awscdk.NewCfnOutput(stack, jsii.String("TopicArn"), &awscdk.CfnOutputProps{
		Value: topic.TopicArn(),
	})

	awscdk.NewCfnOutput(stack, jsii.String("FunctionName"), &awscdk.CfnOutputProps{
		Value: fn.FunctionName(),
	})

	return stack, nil
}

func cronOptions(c *Cron) *awsevents.CronOptions {
	opts := &awsevents.CronOptions{
		Minute: jsii.String(c.Minute),
		Hour:   jsii.String(c.Hour),
		Month:  jsii.String(c.Month),
	}

	if c.Day != "*" {
		opts.Day = jsii.String(c.Day)
	}

	if c.WeekDay != "*" {
		opts.WeekDay = jsii.String(eventsWeekDay(c.WeekDay))
	}

	return opts
}

// eventsWeekDay converts a cron day of week field to eventbridge syntax.
// Plain days and ranges are passed by name; the day before L or # is
// renumbered from 1 (SUN) and the occurrence after # is kept.
func eventsWeekDay(field string) string {
	parts := strings.Split(field, ",")

	for i, part := range parts {
		switch {
		case strings.Contains(part, "#"):
			day, nth, _ := strings.Cut(part, "#")
			parts[i] = eventsDayNumber(day) + "#" + nth
		case strings.HasSuffix(part, "L"):
			parts[i] = eventsDayNumber(strings.TrimSuffix(part, "L")) + "L"
		default:
			parts[i] = weekdayNumber.ReplaceAllStringFunc(part, func(n string) string {
				d, _ := strconv.Atoi(n)
				return weekdayNames[d%7]
			})
		}
	}

	return strings.Join(parts, ",")
}

func eventsDayNumber(day string) string {
	d, err := strconv.Atoi(day)
	if err != nil {
		return day
	}

	return strconv.Itoa(d%7 + 1)
}
