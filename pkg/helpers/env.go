package helpers

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// EnvInt reads an integer from the environment, returning def when unset
func EnvInt(name string, def int64) (int64, error) {
	v := strings.TrimSpace(os.Getenv(name))

	if v == "" {
		return def, nil
	}

	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, errors.Errorf("%s must be an integer: %q", name, v)
	}

	return i, nil
}

// EnvList splits a comma separated environment variable, dropping blanks
func EnvList(name string) []string {
	return SplitList(os.Getenv(name))
}

func SplitList(s string) []string {
	items := []string{}

	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}
