package convolve

import (
	"errors"
)

// ErrUnsupportedWidth is returned by SavitzkyGolay for widths outside the
// precomputed table.
var ErrUnsupportedWidth = errors.New("convolve: unsupported savitzky-golay width")

// Least-squares smoothing coefficients for first-degree fits, newest sample
// first. Source:
// https://gregstanleyandassociates.com/whitepapers/FaultDiagnosis/Filtering/LeastSquares-Filter/leastsquares-filter.htm
var savitzkyGolayKernels = [][]float64{
	{1.0},
	{1.0, 0.0},
	{0.83333, 0.33333, -0.16667},
	{0.7, 0.4, 0.1, -0.2},
	{0.6, 0.4, 0.2, 0.0, -0.2},
	{0.52381, 0.38095, 0.2381, 0.09524, -0.04762, -0.19048},
	{0.46429, 0.35714, 0.25, 0.14286, 0.03571, -0.07143, -0.17857},
	{0.41667, 0.33333, 0.25, 0.16667, 0.08333, 0.0, -0.08333, -0.16667},
	{0.37778, 0.31111, 0.24444, 0.17778, 0.11111, 0.04444, -0.02222, -0.08889, -0.15556},
	{0.34545, 0.29091, 0.23636, 0.18182, 0.12727, 0.07273, 0.01818, -0.03636, -0.09091, -0.14545},
	{0.31818, 0.27273, 0.22727, 0.18182, 0.13636, 0.09091, 0.04545, 0.0, -0.04545, -0.09091, -0.13636},
	{0.29487, 0.25641, 0.21795, 0.17949, 0.14103, 0.10256, 0.06410, 0.02564, -0.01282, -0.05128, -0.08974, -0.12821},
	{0.27473, 0.24176, 0.20879, 0.17582, 0.14286, 0.10989, 0.07692, 0.04396, 0.01099, -0.02198, -0.05495, -0.08791, -0.12088},
}

// SavitzkyGolay creates a convolution filter preloaded with Savitzky-Golay
// smoothing coefficients for the given window width, 1 through 13.
func SavitzkyGolay(width int) (*Convolve, error) {
	if width < 1 || width > len(savitzkyGolayKernels) {
		return nil, ErrUnsupportedWidth
	}

	return NewConvolve(savitzkyGolayKernels[width-1])
}
