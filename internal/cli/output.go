package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/fwdiff/internal/catalog"
	"github.com/katalvlaran/fwdiff/jacobian"
)

const (
	defaultPrecision = 6
	maxPrecision     = 17
)

func validPrecision(p int) bool { return p >= 0 && p <= maxPrecision }

// Error codes in JSON error responses.
const (
	CodeInternal        = "E000" // anything not classified below
	CodeUnknownFunction = "E001" // name not in the catalog
	CodeInvalidInput    = "E002" // bad point, job file, precision or arity
	CodeNonFinite       = "E003" // NaN/Inf rejected by --validate-finite
)

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`    // "E001", "E002", etc.
	Message string `json:"message"` // human-readable message
}

// Float is a float64 that survives JSON. Finite values encode as numbers,
// NaN and ±Inf as the strings "NaN", "+Inf" and "-Inf".
type Float float64

// MarshalJSON implements json.Marshaler.
func (f Float) MarshalJSON() ([]byte, error) {
	x := float64(f)
	switch {
	case math.IsNaN(x):
		return []byte(`"NaN"`), nil
	case math.IsInf(x, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(x, -1):
		return []byte(`"-Inf"`), nil
	}

	return json.Marshal(x)
}

// UnmarshalJSON implements json.Unmarshaler, accepting both encodings.
func (f *Float) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid float %q: %w", s, err)
		}
		*f = Float(x)
		return nil
	}

	var x float64
	if err := json.Unmarshal(b, &x); err != nil {
		return err
	}
	*f = Float(x)

	return nil
}

func floats(xs []float64) []Float {
	out := make([]Float, len(xs))
	for i, x := range xs {
		out[i] = Float(x)
	}

	return out
}

// GradientReport is the payload of grad.
type GradientReport struct {
	Function string  `json:"function"`
	Point    []Float `json:"point"`
	Value    Float   `json:"value"`
	Gradient []Float `json:"gradient"`
}

// JacobianReport is the payload of jac.
type JacobianReport struct {
	Function string    `json:"function"`
	Point    []Float   `json:"point"`
	Values   []Float   `json:"values"`
	Jacobian [][]Float `json:"jacobian"`
}

// writeJSON encodes data as an ok response.
func writeJSON(w io.Writer, data interface{}) error {
	return json.NewEncoder(w).Encode(CLIResponse{Status: "ok", Data: data})
}

// writeJSONError encodes err as an error response.
func writeJSONError(w io.Writer, err error) error {
	return json.NewEncoder(w).Encode(CLIResponse{
		Status: "error",
		Error:  &CLIError{Code: errorCode(err), Message: err.Error()},
	})
}

// errorCode classifies err by the sentinel it wraps.
func errorCode(err error) string {
	switch {
	case errors.Is(err, catalog.ErrUnknownFunction):
		return CodeUnknownFunction
	case errors.Is(err, jacobian.ErrNaNInf):
		return CodeNonFinite
	case errors.Is(err, jacobian.ErrDimensionMismatch),
		errors.Is(err, jacobian.ErrEmptyPoint),
		errors.Is(err, ErrNoFunction),
		errors.Is(err, ErrNotScalar),
		errors.Is(err, ErrInvalidJob),
		errors.Is(err, ErrInvalidPrecision):
		return CodeInvalidInput
	default:
		return CodeInternal
	}
}

// formatFloat renders x with a fixed number of decimals; NaN and ±Inf keep
// their strconv spelling.
func formatFloat(x Float, precision int) string {
	return strconv.FormatFloat(float64(x), 'f', precision, 64)
}

// formatPoint renders coordinates in their shortest exact form.
func formatPoint(point []Float) string {
	parts := make([]string, len(point))
	for i, p := range point {
		parts[i] = strconv.FormatFloat(float64(p), 'g', -1, 64)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// formatVector renders xs with a fixed number of decimals.
func formatVector(xs []Float, precision int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = formatFloat(x, precision)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func writeGradientText(w io.Writer, r GradientReport, precision int) error {
	_, err := fmt.Fprintf(w, "%s at %s\nvalue    : %s\ngradient : %s\n",
		r.Function, formatPoint(r.Point),
		formatFloat(r.Value, precision),
		formatVector(r.Gradient, precision))

	return err
}

func writeJacobianText(w io.Writer, r JacobianReport, jac string, precision int) error {
	_, err := fmt.Fprintf(w, "%s at %s\nvalues   : %s\njacobian :\n%s",
		r.Function, formatPoint(r.Point), formatVector(r.Values, precision), jac)

	return err
}
