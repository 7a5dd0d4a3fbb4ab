package domain

import (
	"fmt"
	"slices"
)

// Messages accumulates validation outcomes for one calculation.
// Errors block the calculation; warnings only annotate it.
type Messages struct {
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

func (m *Messages) Errorf(format string, args ...any) {
	m.Errors = append(m.Errors, fmt.Sprintf(format, args...))
}

func (m *Messages) Warnf(format string, args ...any) {
	m.Warnings = append(m.Warnings, fmt.Sprintf(format, args...))
}

// Merge appends other's messages to m.
func (m *Messages) Merge(other Messages) {
	m.Errors = append(m.Errors, other.Errors...)
	m.Warnings = append(m.Warnings, other.Warnings...)
}

func (m Messages) HasErrors() bool { return len(m.Errors) > 0 }

// Clone returns a copy that shares no backing arrays with m.
func (m Messages) Clone() Messages {
	return Messages{Errors: slices.Clone(m.Errors), Warnings: slices.Clone(m.Warnings)}
}
