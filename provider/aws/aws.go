package aws

import (
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
	"github.com/aws/aws-sdk-go/service/sns"
	"github.com/aws/aws-sdk-go/service/sns/snsiface"
	"github.com/convox/logger"
	"github.com/convox/subnetwatch/pkg/helpers"
	"github.com/convox/subnetwatch/pkg/structs"
)

var (
	DefaultRegion = "us-east-1"
	Logger        = logger.New("ns=aws")
	NotifySubject = "Subnet capacity alert"
)

type Provider struct {
	Region   string
	Endpoint string
	Access   string
	Secret   string
	Token    string

	// EC2 returns a client for the given region
	EC2 func(region string) ec2iface.EC2API
	SNS snsiface.SNSAPI
}

// NewProvider returns the AWS provider
func NewProvider(region, endpoint, access, secret, token string) *Provider {
	return &Provider{
		Region:   region,
		Endpoint: endpoint,
		Access:   access,
		Secret:   secret,
		Token:    token,
	}
}

// FromEnv returns an initialized AWS provider configured from the environment
func FromEnv() (*Provider, error) {
	p := NewProvider(
		helpers.CoalesceString(os.Getenv("AWS_REGION"), os.Getenv("AWS_DEFAULT_REGION")),
		os.Getenv("AWS_ENDPOINT"),
		os.Getenv("AWS_ACCESS_KEY_ID"),
		os.Getenv("AWS_SECRET_ACCESS_KEY"),
		os.Getenv("AWS_SESSION_TOKEN"),
	)

	if err := p.Initialize(structs.ProviderOptions{}); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Provider) Initialize(opts structs.ProviderOptions) error {
	if opts.Logs != nil {
		Logger = logger.NewWriter("ns=aws", opts.Logs)
	}

	if p.Region == "" {
		p.Region = DefaultRegion
	}

	if p.EC2 == nil {
		p.EC2 = p.ec2
	}

	if p.SNS == nil {
		p.SNS = p.sns()
	}

	return nil
}

/** services ****************************************************************************************/

func (p *Provider) config(region string) *aws.Config {
	config := &aws.Config{
		Region: aws.String(helpers.CoalesceString(region, p.Region, DefaultRegion)),
	}

	if p.Access != "" {
		config.Credentials = credentials.NewStaticCredentials(p.Access, p.Secret, p.Token)
	}

	if p.Endpoint != "" {
		config.Endpoint = aws.String(p.Endpoint)
	}

	if os.Getenv("DEBUG") != "" {
		config.WithLogLevel(aws.LogDebugWithHTTPBody)
	}

	return config
}

func (p *Provider) ec2(region string) ec2iface.EC2API {
	return ec2.New(session.New(), p.config(region))
}

func (p *Provider) sns() snsiface.SNSAPI {
	return sns.New(session.New(), p.config(p.Region))
}
