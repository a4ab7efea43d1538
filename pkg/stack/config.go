package stack

import (
	"io/ioutil"
	"strings"

	"github.com/adhocore/gronx"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

var DefaultSchedule = "0 */6 * * *"

// Config is the deployment description read from stack.yml
type Config struct {
	Name        string   `yaml:"name"`
	Account     string   `yaml:"account"`
	Region      string   `yaml:"region"`
	Code        string   `yaml:"code"`
	Limit       int64    `yaml:"limit"`
	Schedule    string   `yaml:"schedule"`
	Email       string   `yaml:"email"`
	Regions     []string `yaml:"regions"`
	Concurrency int      `yaml:"concurrency"`
}

// Cron is a five field cron schedule split into its fields
type Cron struct {
	Minute  string
	Hour    string
	Day     string
	Month   string
	WeekDay string
}

func LoadConfigFile(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return LoadConfig(data)
}

func LoadConfig(data []byte) (*Config, error) {
	c := &Config{}

	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, errors.Wrap(err, "invalid stack config")
	}

	if c.Name == "" {
		c.Name = "subnetwatch"
	}

	if c.Code == "" {
		c.Code = "dist/subnetwatch"
	}

	if c.Schedule == "" {
		c.Schedule = DefaultSchedule
	}

	if c.Concurrency == 0 {
		c.Concurrency = 1
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) Validate() error {
	if c.Limit <= 0 {
		return errors.Errorf("limit must be greater than zero")
	}

	if c.Concurrency < 0 {
		return errors.Errorf("concurrency must not be negative")
	}

	if _, err := c.Cron(); err != nil {
		return err
	}

	return nil
}

// Cron validates the schedule and splits it into fields. EventBridge does not
// accept both a day of month and a day of week so at most one may be set.
func (c *Config) Cron() (*Cron, error) {
	gron := gronx.New()

	if !gron.IsValid(c.Schedule) {
		return nil, errors.Errorf("invalid schedule: %q", c.Schedule)
	}

	fields := strings.Fields(c.Schedule)

	if len(fields) != 5 {
		return nil, errors.Errorf("schedule must have five fields: %q", c.Schedule)
	}

	cron := &Cron{
		Minute:  fields[0],
		Hour:    fields[1],
		Day:     fields[2],
		Month:   fields[3],
		WeekDay: fields[4],
	}

	if strings.Contains(cron.WeekDay, "/") {
		return nil, errors.Errorf("schedule may not step days of the week: %q", c.Schedule)
	}

	if cron.Day != "*" && cron.WeekDay != "*" {
		return nil, errors.Errorf("schedule may not restrict both day of month and day of week: %q", c.Schedule)
	}

	return cron, nil
}
