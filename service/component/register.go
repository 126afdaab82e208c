package component

import "github.com/viant/ampmodel/extension"

// Kinds returns the built-in component kinds
func Kinds() []*extension.Kind {
	var result []*extension.Kind
	result = append(result, constKinds()...)
	result = append(result, arithmeticKinds()...)
	result = append(result, amplitudeKinds()...)
	result = append(result, lineshapeKinds()...)
	return result
}

// Register installs the built-in component kinds into the registry
func Register(registry *extension.Types) {
	for _, kind := range Kinds() {
		registry.Register(kind)
	}
}
