package scheme

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jmylchreest/wallhue/internal/colour"
)

// Expression errors. Resolve wraps them in an *EvalError.
var (
	ErrEmptyExpression   = errors.New("empty expression")
	ErrUnknownBase       = errors.New("unknown colour name")
	ErrInvalidIndex      = errors.New("colour index must be an integer in [0,15]")
	ErrInvalidFormat     = errors.New("unknown format")
	ErrMalformedModifier = errors.New("malformed modifier, expected name(argument)")
	ErrInvalidArgument   = errors.New("modifier argument is not a number")
	ErrUnknownModifier   = errors.New("unknown modifier")
)

// EvalError describes why an expression failed to resolve.
type EvalError struct {
	Expr    string // full expression
	Segment string // offending segment
	Err     error
}

func (e *EvalError) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("expression %q: %v", e.Expr, e.Err)
	}
	return fmt.Sprintf("expression %q: %v: %q", e.Expr, e.Err, e.Segment)
}

func (e *EvalError) Unwrap() error { return e.Err }

const indexPrefix = "COLOR"

// Resolve evaluates an expression of the form Base('.'Segment)* against the scheme.
//
// Base is a role name (BACKGROUND, FOREGROUND, ACCENT, GOOD, WARNING, ERROR, INFO)
// or COLOR0..COLOR15. Each segment is either a format token (see colour.ParseFormat)
// or one of the modifiers lighten(x), darken(x) and alpha(x), applied left to right.
// lighten and darken flip direction on light themes so "lighten" always moves away
// from the background.
func (s *Scheme) Resolve(expr string) (colour.Color, error) {
	if expr == "" {
		return colour.Color{}, &EvalError{Expr: expr, Err: ErrEmptyExpression}
	}

	segments := strings.Split(expr, ".")
	c, err := s.base(segments[0])
	if err != nil {
		return colour.Color{}, &EvalError{Expr: expr, Segment: segments[0], Err: err}
	}

	for _, segment := range segments[1:] {
		c, err = s.apply(c, segment)
		if err != nil {
			return colour.Color{}, &EvalError{Expr: expr, Segment: segment, Err: err}
		}
	}
	return c, nil
}

// ResolveText resolves expr and renders it in its selected format (hex by default).
func (s *Scheme) ResolveText(expr string) (string, error) {
	c, err := s.Resolve(expr)
	if err != nil {
		return "", err
	}
	s.logger.Trace("resolved expression", "expr", expr, "format", c.Format().String())
	return c.String(), nil
}

func (s *Scheme) base(name string) (colour.Color, error) {
	switch role := Role(name); role {
	case RoleBackground, RoleForeground, RoleAccent, RoleGood, RoleWarning, RoleError, RoleInfo:
		return s.roles[role], nil
	}

	digits, ok := strings.CutPrefix(name, indexPrefix)
	if !ok || digits == "" {
		return colour.Color{}, ErrUnknownBase
	}
	idx, err := strconv.Atoi(digits)
	if err != nil || idx < 0 || idx >= Size {
		return colour.Color{}, ErrInvalidIndex
	}
	return s.colors[idx], nil
}

func (s *Scheme) apply(c colour.Color, segment string) (colour.Color, error) {
	open := strings.IndexByte(segment, '(')
	if open < 0 {
		f, ok := colour.ParseFormat(segment)
		if !ok {
			return c, ErrInvalidFormat
		}
		return c.WithFormat(f), nil
	}

	if len(segment) < open+3 || !strings.HasSuffix(segment, ")") {
		return c, ErrMalformedModifier
	}
	name, arg := segment[:open], segment[open+1:len(segment)-1]

	amount, err := strconv.ParseFloat(arg, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return c, ErrInvalidArgument
	}

	direction := 1.0
	if s.lightTheme {
		direction = -1.0
	}

	switch name {
	case "lighten":
		return c.AdjustLuminance(amount * direction), nil
	case "darken":
		return c.AdjustLuminance(-amount * direction), nil
	case "alpha":
		return c.AdjustAlpha(amount / 100), nil
	default:
		return c, ErrUnknownModifier
	}
}
