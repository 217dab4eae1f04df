package constraints

import (
	"fmt"
	"slices"
	"strings"
)

// Code identifies the kind of a validation issue.
type Code string

// Issue codes.
const (
	CodeInvalidGeometry     Code = "invalid_geometry"
	CodeWidthExceeded       Code = "width_exceeded"
	CodeHeightExceeded      Code = "height_exceeded"
	CodeTooSmall            Code = "too_small"
	CodeTooLarge            Code = "too_large"
	CodeTooThin             Code = "too_thin"
	CodeFragile             Code = "fragile"
	CodeSmallSurface        Code = "small_surface"
	CodeHoleOutside         Code = "hole_outside"
	CodeHoleNearEdge        Code = "hole_near_edge"
	CodeTextTooSmall        Code = "text_too_small"
	CodeTextSmall           Code = "text_small"
	CodeUnsupportedMaterial Code = "unsupported_material"
	CodeMotifInMargin       Code = "motif_in_margin"
	CodeMotifTooSmall       Code = "motif_too_small"
	CodeMotifFailed         Code = "motif_failed"
)

// Issue is one finding of a check.
type Issue struct {
	Code    Code   `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s", i.Code, i.Message)
}

// Result collects the findings of one or more checks. Errors block
// production; warnings are advisory. Valid is true exactly when Errors is
// empty.
type Result struct {
	Valid    bool    `json:"valid" yaml:"valid"`
	Errors   []Issue `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Merge returns the concatenation of r and other, errors and warnings in
// order.
func (r Result) Merge(other Result) Result {
	var b Builder
	b.Merge(r)
	b.Merge(other)
	return b.Result()
}

// HasCode reports whether any error or warning carries code.
func (r Result) HasCode(code Code) bool {
	match := func(i Issue) bool { return i.Code == code }
	return slices.ContainsFunc(r.Errors, match) || slices.ContainsFunc(r.Warnings, match)
}

// String renders the result as a short report, one issue per line.
func (r Result) String() string {
	var sb strings.Builder
	if r.Valid {
		sb.WriteString("valid")
	} else {
		sb.WriteString("invalid")
	}
	section := func(title string, issues []Issue) {
		if len(issues) == 0 {
			return
		}
		sb.WriteString("\n" + title + ":")
		for _, i := range issues {
			sb.WriteString("\n  - " + i.String())
		}
	}
	section("errors", r.Errors)
	section("warnings", r.Warnings)
	return sb.String()
}

// Builder accumulates issues across several checks. The zero value is
// ready to use.
type Builder struct {
	errors   []Issue
	warnings []Issue
}

// Error records a blocking issue.
func (b *Builder) Error(code Code, format string, args ...any) {
	b.errors = append(b.errors, Issue{Code: code, Message: fmt.Sprintf(format, args...)})
}

// Warn records an advisory issue.
func (b *Builder) Warn(code Code, format string, args ...any) {
	b.warnings = append(b.warnings, Issue{Code: code, Message: fmt.Sprintf(format, args...)})
}

// Merge appends the issues of r.
func (b *Builder) Merge(r Result) {
	b.errors = append(b.errors, r.Errors...)
	b.warnings = append(b.warnings, r.Warnings...)
}

// Result returns a snapshot of everything recorded so far. Later calls on
// b do not affect it.
func (b *Builder) Result() Result {
	return Result{
		Valid:    len(b.errors) == 0,
		Errors:   slices.Clone(b.errors),
		Warnings: slices.Clone(b.warnings),
	}
}
