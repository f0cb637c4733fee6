package observe

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrInvalidConfig is returned by constructors for configurations that would
// make an estimator diverge or divide by zero.
var ErrInvalidConfig = errors.New("observe: invalid config")

// KalmanConfig holds the coefficients of the scalar Kalman model
//
//	x[k] = a*x[k-1] + b*u[k] + process noise   (variance r)
//	z[k] = c*x[k]            + measurement noise (variance q)
//
// where u is an optional control input.
type KalmanConfig[T constraints.Float] struct {
	// ProcessVariance is the variance r of the process noise.
	ProcessVariance T
	// MeasurementVariance is the variance q of the measurement noise.
	MeasurementVariance T
	// StateTransition is the coefficient a.
	StateTransition T
	// ControlGain is the coefficient b.
	ControlGain T
	// MeasurementGain is the coefficient c. Must be non-zero.
	MeasurementGain T
}

// DefaultKalmanConfig returns the identity model: a=1, b=0, c=1, unit noise
// variances.
func DefaultKalmanConfig[T constraints.Float]() KalmanConfig[T] {
	return KalmanConfig[T]{
		ProcessVariance:     1,
		MeasurementVariance: 1,
		StateTransition:     1,
		ControlGain:         0,
		MeasurementGain:     1,
	}
}

// Kalman is a one-dimensional Kalman filter. It stays unseeded until the
// first measurement, which initializes the estimate directly.
type Kalman[T constraints.Float] struct {
	cfg      KalmanConfig[T]
	estimate T
	variance T
	seeded   bool
}

// NewKalman creates a Kalman filter from cfg. Negative noise variances or a
// zero measurement gain yield ErrInvalidConfig.
func NewKalman[T constraints.Float](cfg KalmanConfig[T]) (*Kalman[T], error) {
	if cfg.ProcessVariance < 0 || cfg.MeasurementVariance < 0 {
		return nil, ErrInvalidConfig
	}
	if cfg.MeasurementGain == 0 {
		return nil, ErrInvalidConfig
	}

	return &Kalman[T]{cfg: cfg}, nil
}

// NewKalmanWithState creates a Kalman filter pre-seeded with an initial
// estimate and its variance, skipping the seed-from-first-measurement step.
func NewKalmanWithState[T constraints.Float](cfg KalmanConfig[T], estimate, variance T) (*Kalman[T], error) {
	k, err := NewKalman(cfg)
	if err != nil {
		return nil, err
	}
	if variance < 0 {
		return nil, ErrInvalidConfig
	}

	k.estimate = estimate
	k.variance = variance
	k.seeded = true

	return k, nil
}

// Predict advances the estimate one step through the state model without a
// control input, growing the uncertainty by the process variance.
func (k *Kalman[T]) Predict() {
	k.PredictWithControl(0)
}

// PredictWithControl advances the estimate one step with control input u.
func (k *Kalman[T]) PredictWithControl(u T) {
	if !k.seeded {
		return
	}

	a := k.cfg.StateTransition
	k.estimate = a*k.estimate + k.cfg.ControlGain*u
	k.variance = a*k.variance*a + k.cfg.ProcessVariance
}

// Update corrects the estimate with measurement z. The first measurement
// seeds the filter; every later one shrinks the uncertainty, with the Kalman
// gain weighting measurement against prediction.
func (k *Kalman[T]) Update(z T) {
	c := k.cfg.MeasurementGain

	if !k.seeded {
		k.estimate = z / c
		k.variance = k.cfg.MeasurementVariance / (c * c)
		k.seeded = true

		return
	}

	gain := k.variance * c / (k.variance*c*c + k.cfg.MeasurementVariance)
	k.estimate += gain * (z - c*k.estimate)
	k.variance -= gain * c * k.variance
}

// Filter runs one predict-update cycle on measurement z and returns the new
// estimate. It always emits.
func (k *Kalman[T]) Filter(z T) (T, bool) {
	k.Predict()
	k.Update(z)

	return k.estimate, true
}

// FilterWithControl runs one predict-update cycle with control input u.
func (k *Kalman[T]) FilterWithControl(z, u T) (T, bool) {
	k.PredictWithControl(u)
	k.Update(z)

	return k.estimate, true
}

// Estimate returns the current state estimate; false before the first
// measurement.
func (k *Kalman[T]) Estimate() (T, bool) {
	return k.estimate, k.seeded
}

// Variance returns the current estimate uncertainty. It is never negative.
func (k *Kalman[T]) Variance() T {
	return k.variance
}

// Reset discards all state, keeping the configuration.
func (k *Kalman[T]) Reset() {
	k.estimate = 0
	k.variance = 0
	k.seeded = false
}
