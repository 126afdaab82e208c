package value

import (
	"encoding/json"
	"fmt"
	"math"
	"math/cmplx"
	"strconv"

	"github.com/viant/toolbox"
	"gopkg.in/yaml.v3"
)

// Scalar is a numeric value produced or consumed by the model: a plain real
// number or a complex one. On the wire a real scalar is a JSON number while a
// complex scalar uses the textual convention parsed by Parse (e.g. "1.2+3.4i").
type Scalar complex128

// New creates a scalar from real and imaginary parts
func New(re, im float64) Scalar {
	return Scalar(complex(re, im))
}

// Real creates a purely real scalar
func Real(v float64) Scalar {
	return Scalar(complex(v, 0))
}

// Complex returns the underlying complex value
func (s Scalar) Complex() complex128 {
	return complex128(s)
}

// Real returns the real part
func (s Scalar) Real() float64 {
	return real(s)
}

// Imag returns the imaginary part
func (s Scalar) Imag() float64 {
	return imag(s)
}

// Abs returns the complex modulus
func (s Scalar) Abs() float64 {
	return cmplx.Abs(complex128(s))
}

// IsReal reports whether the imaginary part is zero
func (s Scalar) IsReal() bool {
	return imag(s) == 0
}

// Format renders the scalar in the textual convention accepted by Parse;
// purely real scalars render as a plain number without the imaginary term.
func (s Scalar) Format() string {
	re, im := real(s), imag(s)
	if im == 0 {
		return strconv.FormatFloat(re, 'g', -1, 64)
	}
	imText := strconv.FormatFloat(math.Abs(im), 'g', -1, 64)
	sign := "+"
	if im < 0 {
		sign = "-"
	}
	if re == 0 {
		if im < 0 {
			return "-" + imText + "i"
		}
		return imText + "i"
	}
	return strconv.FormatFloat(re, 'g', -1, 64) + sign + imText + "i"
}

// String implements fmt.Stringer
func (s Scalar) String() string {
	return s.Format()
}

// MarshalJSON encodes a real scalar as a JSON number and a complex one as a
// string in the textual convention.
func (s Scalar) MarshalJSON() ([]byte, error) {
	if s.IsReal() {
		return []byte(strconv.FormatFloat(real(s), 'g', -1, 64)), nil
	}
	return json.Marshal(s.Format())
}

// UnmarshalJSON decodes a JSON number or a textual complex literal
func (s *Scalar) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		parsed, err := Parse(text)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = Real(v)
	return nil
}

// MarshalYAML mirrors the JSON encoding
func (s Scalar) MarshalYAML() (interface{}, error) {
	if s.IsReal() {
		return real(s), nil
	}
	return s.Format(), nil
}

// UnmarshalYAML decodes a YAML number or a textual complex literal
func (s *Scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!str" {
		parsed, err := Parse(node.Value)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}
	var v float64
	if err := node.Decode(&v); err != nil {
		return err
	}
	*s = Real(v)
	return nil
}

// Coerce converts a loosely typed value (as produced by a generic JSON or
// YAML decode) into a Scalar. Numeric kinds are converted via toolbox,
// strings go through Parse.
func Coerce(v interface{}) (Scalar, error) {
	switch actual := v.(type) {
	case nil:
		return 0, fmt.Errorf("unable to coerce nil to scalar")
	case Scalar:
		return actual, nil
	case complex128:
		return Scalar(actual), nil
	case complex64:
		return Scalar(complex128(actual)), nil
	case string:
		return Parse(actual)
	case json.Number:
		f, err := actual.Float64()
		if err != nil {
			return 0, err
		}
		return Real(f), nil
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		f, err := toolbox.ToFloat(actual)
		if err != nil {
			return 0, err
		}
		return Real(f), nil
	default:
		return 0, fmt.Errorf("unable to coerce %T to scalar", v)
	}
}
