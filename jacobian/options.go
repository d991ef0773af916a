// SPDX-License-Identifier: MIT

// Package jacobian: functional configuration for the drivers.
//
// Numeric policy is explicit: by default NaN and ±Inf flow through exactly as
// the dual arithmetic produces them. WithValidateFinite turns them into
// ErrNaNInf at the driver boundary.
package jacobian

// DefaultValidateFinite keeps IEEE propagation unless overridden.
const DefaultValidateFinite = false

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateFinite bool // DefaultValidateFinite
}

// WithValidateFinite rejects non-finite values and derivatives with ErrNaNInf.
func WithValidateFinite() Option {
	return func(o *Options) { o.validateFinite = true }
}

// WithNoValidateFinite restores IEEE propagation (the default).
func WithNoValidateFinite() Option {
	return func(o *Options) { o.validateFinite = false }
}

// gatherOptions applies opts over the defaults, skipping nil entries.
func gatherOptions(opts ...Option) Options {
	o := Options{validateFinite: DefaultValidateFinite}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
