package xssescape

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// ToString converts v to the text that the escaping functions operate on.
//
// Accepted values are strings, byte slices, integers, floats, nil (which
// becomes the empty string), values implementing fmt.Stringer or
// encoding.TextMarshaler, and pointers to any of these. A nil pointer is
// treated like nil. Anything else, booleans included, returns an error
// wrapping ErrInputType.
func ToString(v any) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", nil
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "", nil
	}

	switch s := v.(type) {
	case fmt.Stringer:
		return s.String(), nil
	case encoding.TextMarshaler:
		b, err := s.MarshalText()
		if err != nil {
			return "", fmt.Errorf("%w: %T: %v", ErrInputType, v, err)
		}
		return string(b), nil
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return formatFloat(rv.Float(), 32), nil
	case reflect.Float64:
		return formatFloat(rv.Float(), 64), nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes()), nil
		}
	case reflect.Pointer:
		return ToString(rv.Elem().Interface())
	}

	return "", fmt.Errorf("%w: got %T", ErrInputType, v)
}

// formatFloat writes f the way JSON encoders do: the fewest digits that
// round-trip, plain decimal notation for magnitudes in [1e-6, 1e21) and
// exponent notation (1e+21, 1e-7) outside it. ToString and JSONInHTML
// therefore agree on every finite float.
func formatFloat(f float64, bitSize int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, bitSize)
	}
	fmtByte := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		fmtByte = 'e'
	}
	b := strconv.AppendFloat(nil, f, fmtByte, -1, bitSize)
	if fmtByte == 'e' {
		// e-07 becomes e-7
		n := len(b)
		if n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}
	return string(b)
}
