package stack_test

import (
	"testing"

	"github.com/convox/subnetwatch/pkg/stack"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	c, err := stack.LoadConfig([]byte(`
name: ipwatch
account: "123456789012"
region: eu-west-1
limit: 64
schedule: "30 8 * * 1-5"
email: ops@example.org
regions:
  - eu-west-1
  - us-east-1
concurrency: 2
`))
	require.NoError(t, err)
	require.Equal(t, &stack.Config{
		Name:        "ipwatch",
		Account:     "123456789012",
		Region:      "eu-west-1",
		Code:        "dist/subnetwatch",
		Limit:       64,
		Schedule:    "30 8 * * 1-5",
		Email:       "ops@example.org",
		Regions:     []string{"eu-west-1", "us-east-1"},
		Concurrency: 2,
	}, c)

	cron, err := c.Cron()
	require.NoError(t, err)
	require.Equal(t, &stack.Cron{Minute: "30", Hour: "8", Day: "*", Month: "*", WeekDay: "1-5"}, cron)
}

func TestLoadConfigDefaults(t *testing.T) {
	c, err := stack.LoadConfig([]byte("limit: 10\n"))
	require.NoError(t, err)
	require.Equal(t, "subnetwatch", c.Name)
	require.Equal(t, stack.DefaultSchedule, c.Schedule)
	require.Equal(t, 1, c.Concurrency)
}

func TestLoadConfigErrors(t *testing.T) {
	testData := []struct {
		data string
		err  string
	}{
		{
			data: "schedule: \"0 * * * *\"\n",
			err:  "limit must be greater than zero",
		},
		{
			data: "limit: 0\n",
			err:  "limit must be greater than zero",
		},
		{
			data: "limit: -3\n",
			err:  "limit must be greater than zero",
		},
		{
			data: "limit: 10\nschedule: \"every day\"\n",
			err:  `invalid schedule: "every day"`,
		},
		{
			data: "limit: 10\nschedule: \"0 0 1 * 1\"\n",
			err:  `schedule may not restrict both day of month and day of week: "0 0 1 * 1"`,
		},
		{
			data: "limit: 10\nconcurrency: -2\n",
			err:  "concurrency must not be negative",
		},
	}

	for _, td := range testData {
		_, err := stack.LoadConfig([]byte(td.data))
		require.EqualError(t, err, td.err, td.data)
	}

	_, err := stack.LoadConfig([]byte("limit: 10\nthreshold: 4\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid stack config")
}
