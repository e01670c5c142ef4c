// Package calc evaluates the arithmetic accepted by the calc command.
package calc

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/grafana/sobek"
)

const defaultTimeout = 250 * time.Millisecond

var (
	// ErrEmptyExpression is returned when nothing evaluable remains.
	ErrEmptyExpression = errors.New("calc: empty expression")
	// ErrNotFinite is returned for NaN, infinite and non-numeric results.
	ErrNotFinite = errors.New("calc: result is not a finite number")

	disallowed    = regexp.MustCompile(`[^0-9+\-*/().%\s]`)
	trailingZeros = regexp.MustCompile(`\.?0+$`)
)

// Evaluator runs sanitized expressions in a throwaway JavaScript runtime so
// operator semantics (remainder, division by zero, precedence) match what a
// browser would produce.
type Evaluator struct {
	Timeout time.Duration
}

// New returns an evaluator with the default interrupt deadline.
func New() *Evaluator {
	return &Evaluator{Timeout: defaultTimeout}
}

// Sanitize removes every character that is not a digit, an arithmetic
// operator, a parenthesis, a dot, a percent sign or whitespace.
func Sanitize(expr string) string {
	return disallowed.ReplaceAllString(expr, "")
}

// Evaluate sanitizes expr and returns its numeric value.
func (e *Evaluator) Evaluate(expr string) (float64, error) {
	clean := strings.TrimSpace(Sanitize(expr))
	if clean == "" {
		return 0, ErrEmptyExpression
	}
	vm := sobek.New()
	timeout := defaultTimeout
	if e != nil && e.Timeout > 0 {
		timeout = e.Timeout
	}
	timer := time.AfterFunc(timeout, func() {
		vm.Interrupt("timeout")
	})
	defer timer.Stop()

	value, err := vm.RunString(clean)
	if err != nil {
		return 0, fmt.Errorf("evaluate %q: %w", clean, err)
	}
	if value == nil || sobek.IsUndefined(value) || sobek.IsNull(value) {
		return 0, ErrNotFinite
	}
	result := value.ToFloat()
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, ErrNotFinite
	}
	return result, nil
}

// Format prints integers as-is and other values with at most four decimals.
func Format(v float64) string {
	if v == math.Trunc(v) {
		if math.Abs(v) < 1e21 {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return trailingZeros.ReplaceAllString(strconv.FormatFloat(v, 'f', 4, 64), "")
}
