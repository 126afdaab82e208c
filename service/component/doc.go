// Package component implements the built-in component kinds a serialized
// amplitude model can reference: constants and parameter references, the
// arithmetic combinators gluing amplitudes together, and minimal lineshape
// and form-factor kinds. Each kind contributes an extension.Kind pairing
// its configuration record with a factory; Register installs the whole set
// into a registry.
package component
