// Package observe provides scalar state estimators: a one-dimensional Kalman
// filter and a fixed-gain alpha-beta tracker. Both seed themselves from the
// first measurement and then blend predictions with incoming measurements,
// trading responsiveness against noise rejection.
package observe
