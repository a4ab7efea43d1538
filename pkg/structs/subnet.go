package structs

import (
	"fmt"
	"strings"
)

type Subnet struct {
	Id               string `json:"id"`
	Name             string `json:"name,omitempty"`
	Region           string `json:"region"`
	VpcId            string `json:"vpc"`
	AvailabilityZone string `json:"availability-zone"`
	CidrBlock        string `json:"cidr"`
	AvailableIps     int64  `json:"available-ips"`
}

type Subnets []Subnet

// Line renders the subnet as a single line of an alert message
func (s Subnet) Line() string {
	parts := []string{s.Region, s.Id}

	if s.Name != "" {
		parts = append(parts, fmt.Sprintf("(%s)", s.Name))
	}

	parts = append(parts,
		fmt.Sprintf("vpc=%s", s.VpcId),
		fmt.Sprintf("az=%s", s.AvailabilityZone),
		fmt.Sprintf("cidr=%s", s.CidrBlock),
		fmt.Sprintf("available=%d", s.AvailableIps),
	)

	return strings.Join(parts, " ")
}

// Below returns the subnets with fewer than limit available addresses, keeping their order
func (ss Subnets) Below(limit int64) Subnets {
	low := Subnets{}

	for _, s := range ss {
		if s.AvailableIps < limit {
			low = append(low, s)
		}
	}

	return low
}
