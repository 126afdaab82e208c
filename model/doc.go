// Package model defines the serialized form of an amplitude model document:
// component specs for functions and distributions, parameter points and the
// reference checksums used for regression validation.
package model
