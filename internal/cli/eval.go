package cli

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fwdiff/internal/catalog"
	"github.com/katalvlaran/fwdiff/jacobian"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// ErrNoFunction is returned when neither an argument nor a job names a function.
	ErrNoFunction = errors.New("no function given")
	// ErrNotScalar is returned by grad for functions with more than one output.
	ErrNotScalar = errors.New("function is not scalar-valued")
	// ErrInvalidPrecision is returned for a precision outside [0, maxPrecision].
	ErrInvalidPrecision = errors.New("invalid precision")
)

// EvalOptions holds flags shared by grad and jac.
type EvalOptions struct {
	*RootOptions
	At             []float64
	Config         string
	Precision      int
	ValidateFinite bool
}

// request is a fully resolved evaluation.
type request struct {
	entry     catalog.Entry
	point     []float64
	precision int
	opts      []jacobian.Option
}

// NewGradCommand creates the grad command.
func NewGradCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "grad [function]",
		Short: "Print the value and gradient of a scalar function",
		Long: `Print the value and gradient of a scalar function at a point.

The point defaults to the function's registered default and can be given
with --at or through a YAML job file (--config). Flags override the job.

Example:
  fwdiff grad rosenbrock --at 1.5,2`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.fail(cmd, runGrad(opts, args, cmd))
		},
	}
	addEvalFlags(cmd, opts)

	return cmd
}

// NewJacCommand creates the jac command.
func NewJacCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "jac [function]",
		Short: "Print the output values and Jacobian matrix of a function",
		Long: `Print the output values and the M×N Jacobian of a function at a point.

Rows are outputs, columns are input variables.

Example:
  fwdiff jac ratio --at 3,2`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.fail(cmd, runJac(opts, args, cmd))
		},
	}
	addEvalFlags(cmd, opts)

	return cmd
}

func addEvalFlags(cmd *cobra.Command, opts *EvalOptions) {
	cmd.Flags().Float64SliceVar(&opts.At, "at", nil, "evaluation point (comma separated)")
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "YAML job file")
	cmd.Flags().IntVarP(&opts.Precision, "precision", "p", defaultPrecision, "decimal places in text output")
	cmd.Flags().BoolVar(&opts.ValidateFinite, "validate-finite", false, "fail on NaN or Inf results")
}

// resolve merges the job file, flags and arguments into a request.
func resolve(opts *EvalOptions, args []string, cmd *cobra.Command) (request, error) {
	var job Job
	if opts.Config != "" {
		var err error
		if job, err = LoadJob(opts.Config); err != nil {
			return request{}, err
		}
	}

	name := job.Function
	if len(args) == 1 {
		name = args[0]
	}
	if name == "" {
		return request{}, ErrNoFunction
	}
	entry, err := catalog.Lookup(name)
	if err != nil {
		return request{}, err
	}

	point := entry.Default
	if job.Point != nil {
		point = job.Point
	}
	if cmd.Flags().Changed("at") {
		point = opts.At
	}

	precision := defaultPrecision
	if job.Precision != nil {
		precision = *job.Precision
	}
	if cmd.Flags().Changed("precision") {
		precision = opts.Precision
	}
	if !validPrecision(precision) {
		return request{}, fmt.Errorf("%w %d: must be in [0, %d]", ErrInvalidPrecision, precision, maxPrecision)
	}

	validate := job.ValidateFinite
	if cmd.Flags().Changed("validate-finite") {
		validate = opts.ValidateFinite
	}
	jopts := []jacobian.Option{jacobian.WithNoValidateFinite()}
	if validate {
		jopts = []jacobian.Option{jacobian.WithValidateFinite()}
	}

	opts.log().Debug("Resolved evaluation",
		zap.String("function", entry.Name),
		zap.String("path", entry.Path),
		zap.Float64s("point", point),
		zap.Bool("validate_finite", validate))

	return request{entry: entry, point: point, precision: precision, opts: jopts}, nil
}

func evaluate(opts *EvalOptions, req request) (catalog.Result, error) {
	res, err := req.entry.Evaluate(req.point, req.opts...)
	if err != nil {
		opts.log().Debug("Evaluation failed", zap.String("function", req.entry.Name), zap.Error(err))
		return catalog.Result{}, err
	}
	opts.log().Debug("Evaluated",
		zap.String("function", req.entry.Name),
		zap.Int("inputs", req.entry.Inputs),
		zap.Int("outputs", req.entry.Outputs))

	return res, nil
}

func runGrad(opts *EvalOptions, args []string, cmd *cobra.Command) error {
	req, err := resolve(opts, args, cmd)
	if err != nil {
		return err
	}
	if req.entry.Outputs != 1 {
		return fmt.Errorf("%s has %d outputs, use jac: %w", req.entry.Name, req.entry.Outputs, ErrNotScalar)
	}

	res, err := evaluate(opts, req)
	if err != nil {
		return err
	}
	grad, err := res.Jacobian.Row(0)
	if err != nil {
		return err
	}

	report := GradientReport{
		Function: req.entry.Name,
		Point:    floats(req.point),
		Value:    Float(res.Values[0]),
		Gradient: floats(grad),
	}
	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), report)
	}

	return writeGradientText(cmd.OutOrStdout(), report, req.precision)
}

func runJac(opts *EvalOptions, args []string, cmd *cobra.Command) error {
	req, err := resolve(opts, args, cmd)
	if err != nil {
		return err
	}

	res, err := evaluate(opts, req)
	if err != nil {
		return err
	}

	report := JacobianReport{
		Function: req.entry.Name,
		Point:    floats(req.point),
		Values:   floats(res.Values),
	}
	for _, row := range res.Jacobian.Values() {
		report.Jacobian = append(report.Jacobian, floats(row))
	}
	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), report)
	}

	return writeJacobianText(cmd.OutOrStdout(), report, res.Jacobian.Format(req.precision), req.precision)
}
