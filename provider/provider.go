package provider

import (
	"github.com/convox/subnetwatch/pkg/structs"
	"github.com/convox/subnetwatch/provider/aws"
)

// FromEnv returns the AWS provider configured from the environment
func FromEnv() (structs.Provider, error) {
	p, err := aws.FromEnv()
	if err != nil {
		return nil, err
	}

	return p, nil
}
