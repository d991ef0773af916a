package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidJob is returned when a job file is malformed.
var ErrInvalidJob = errors.New("invalid job")

// Job is a YAML evaluation request for grad and jac.
//
//	function: rosenbrock
//	point: [1.5, 2.0]
//	precision: 6
//	validate_finite: true
type Job struct {
	Function       string    `yaml:"function"`
	Point          []float64 `yaml:"point"`
	Precision      *int      `yaml:"precision"`
	ValidateFinite bool      `yaml:"validate_finite"`
}

// LoadJob reads and strictly decodes the job file at path.
func LoadJob(path string) (Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return Job{}, fmt.Errorf("open job %s: %w", path, err)
	}
	defer f.Close()

	job, err := DecodeJob(f)
	if err != nil {
		return Job{}, fmt.Errorf("%s: %w", path, err)
	}

	return job, nil
}

// DecodeJob decodes a single job document, rejecting unknown keys.
func DecodeJob(r io.Reader) (Job, error) {
	var job Job
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&job); err != nil {
		if errors.Is(err, io.EOF) {
			return Job{}, fmt.Errorf("%w: empty document", ErrInvalidJob)
		}
		return Job{}, fmt.Errorf("%w: %v", ErrInvalidJob, err)
	}
	if job.Precision != nil && !validPrecision(*job.Precision) {
		return Job{}, fmt.Errorf("%w: precision %d out of range [0, %d]", ErrInvalidJob, *job.Precision, maxPrecision)
	}

	return job, nil
}
