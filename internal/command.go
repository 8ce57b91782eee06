package internal

import (
	"fmt"
)

// Commands are what the host calls into. Each has a static identity (ID,
// label, icon, description), a parameter schema, a poll predicate deciding
// whether it is enabled, and an execute step that runs to completion.

type Status int

const (
	Finished Status = iota
	Cancelled
)

func (s Status) String() string {
	if s == Finished {
		return "FINISHED"
	}
	return "CANCELLED"
}

type Level int

const (
	Info Level = iota
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	}
	return "?"
}

type Report struct {
	Level   Level
	Message string
}

type Result struct {
	Status  Status
	Reports []Report
}

func (r *Result) report(level Level, format string, args ...interface{}) {
	r.Reports = append(r.Reports, Report{level, fmt.Sprintf(format, args...)})
}

func (r *Result) cancel(format string, args ...interface{}) Result {
	r.report(Error, format, args...)
	r.Status = Cancelled
	return *r
}

type ParamKind int

const (
	EnumParam ParamKind = iota
	BoolParam
)

// Describes one user-facing parameter of a command, enough for a host to build
// its property panel.
type ParamSpec struct {
	Name        string
	Description string
	Kind        ParamKind
	Items       []string // Enum values, in display order
	Default     string
}

type Command interface {
	ID() string
	Label() string
	Icon() string
	Description() string
	Params() []ParamSpec
	Poll(ctx *Context) bool
	Execute(ctx *Context) Result
}
