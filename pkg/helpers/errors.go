package helpers

import (
	"os"

	"github.com/convox/logger"
	"github.com/stvp/rollbar"
)

func init() {
	rollbar.Token = os.Getenv("ROLLBAR_TOKEN")
	rollbar.Environment = CoalesceString(os.Getenv("ROLLBAR_ENVIRONMENT"), "production")
}

// Error logs err and reports it to rollbar when a token is configured
func Error(log *logger.Logger, err error) {
	log.Error(err)

	if rollbar.Token != "" {
		rollbar.Error(rollbar.ERR, err)
		rollbar.Wait()
	}
}
