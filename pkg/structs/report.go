package structs

import (
	"fmt"
	"strings"
)

type Report struct {
	Limit   int64   `json:"limit"`
	Regions int     `json:"regions"`
	Scanned int     `json:"scanned"`
	Low     Subnets `json:"low"`
}

type ScanOptions struct {
	Limit       int64
	Regions     []string
	Concurrency *int
}

// Message is the body published for a report, one low subnet per line.
// SNS refuses empty messages so a report without low subnets says so instead.
func (r *Report) Message() string {
	if len(r.Low) == 0 {
		return fmt.Sprintf("no subnets below %d available addresses", r.Limit)
	}

	lines := make([]string, len(r.Low))

	for i, s := range r.Low {
		lines[i] = s.Line()
	}

	return strings.Join(lines, "\n")
}

// Response is the value returned to the Lambda runtime
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}
