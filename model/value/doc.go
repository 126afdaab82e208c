// Package value implements the numeric scalar used throughout the amplitude
// model: a complex128-backed type that decodes from a JSON/YAML number or
// from the textual complex convention used by serialized model files.
package value
