package provider_test

import (
	"fmt"
	"testing"

	"github.com/convox/subnetwatch/provider"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type errorNotFound string

func (e errorNotFound) Error() string {
	return string(e)
}

func (e errorNotFound) NotFound() bool {
	return true
}

func TestErrorNotFound(t *testing.T) {
	require.True(t, provider.ErrorNotFound(errorNotFound("no such region: xx-test-1")))
	require.True(t, provider.ErrorNotFound(errors.Wrap(errorNotFound("no such region: xx-test-1"), "scan")))
	require.False(t, provider.ErrorNotFound(fmt.Errorf("no such region: xx-test-1")))
	require.False(t, provider.ErrorNotFound(nil))
}
