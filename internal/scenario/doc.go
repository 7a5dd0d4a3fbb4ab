// Package scenario holds the arithmetic relief cases: blocked outlet,
// cooling or reflux failure, and liquid overfill. Each is a credit
// subtraction floored at zero.
package scenario
