package httpclient

import (
	"fmt"
	"net/url"
	"reflect"
)

// Params maps query parameter names to optional scalar values. Nil values,
// including typed nil pointers, are left out of the encoded query.
type Params map[string]any

func (p Params) Values() url.Values {
	values := url.Values{}

	for key, value := range p {
		s, ok := scalarString(value)
		if !ok {
			continue
		}

		values.Set(key, s)
	}

	return values
}

// Encode returns the form-encoded query sorted by key, or "" when every value
// is absent.
func (p Params) Encode() string {
	return p.Values().Encode()
}

func scalarString(value any) (string, bool) {
	if value == nil {
		return "", false
	}

	switch v := value.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "", false
		}

		return v.String(), true
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}

		rv = rv.Elem()
	}

	return fmt.Sprint(rv.Interface()), true
}
