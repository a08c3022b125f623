package benchmark

import "strings"

// Name is the structured form of a benchmark name.
type Name struct {
	GraphType string
	Algorithm string
}

// ParseName splits a harness name such as
// "BMSSP_RandomGraph/BMSSP/1000/5000/min_warmup_time:0.500".
// The fixture segment before the first '/' is split on '_' and its second
// token is the graph type. The segment after the first '/' is the algorithm.
func ParseName(name string) (Name, error) {
	fixture, rest, ok := strings.Cut(name, "/")
	if !ok {
		return Name{}, &NameError{Name: name, Reason: "no '/' separator"}
	}

	tokens := strings.Split(fixture, "_")
	if len(tokens) < 2 {
		return Name{}, &NameError{Name: name, Reason: "fixture has no '_' separator"}
	}
	graphType := tokens[1]
	if graphType == "" {
		return Name{}, &NameError{Name: name, Reason: "empty graph type"}
	}

	algo, _, _ := strings.Cut(rest, "/")
	if algo == "" {
		return Name{}, &NameError{Name: name, Reason: "empty algorithm"}
	}

	return Name{GraphType: graphType, Algorithm: algo}, nil
}
