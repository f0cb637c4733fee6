// Package classify provides filters that map a numeric stream onto discrete
// classes: threshold and Schmitt-trigger binarization, debouncing, and
// slope/peak detection. Each filter is configured with the caller's own
// output values, so classes can be booleans, enums, or anything else.
package classify
