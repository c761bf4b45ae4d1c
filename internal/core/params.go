package core

import (
	"fmt"
	"strings"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeString denotes free-form values such as paths.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single value that shaped a run.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the parameters of a run for display.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup returns the parameter stored under key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// Lines formats the snapshot as "Group: key=value ..." lines, one per group.
func (s ParameterSnapshot) Lines() []string {
	lines := make([]string, 0, len(s.Groups))
	for _, g := range s.Groups {
		var b strings.Builder
		b.WriteString(g.Name)
		b.WriteString(":")
		for _, p := range g.Params {
			fmt.Fprintf(&b, " %s=%s", p.Key, p.Value)
		}
		lines = append(lines, b.String())
	}
	return lines
}
