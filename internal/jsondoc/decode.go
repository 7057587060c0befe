// Package jsondoc decodes plain, untyped JSON document bodies (such as test
// fixtures) into the fields.Value model. It is not a decoder for
// Firestore's typed-wrapper wire format.
package jsondoc

import (
	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"

	"github.com/chaisql/firevalue/internal/fields"
)

// DecodeDocument decodes a JSON object into an Object field value. Each
// top-level member is decoded with DecodeValue.
func DecodeDocument(data []byte) (fields.ObjectValue, error) {
	v, err := DecodeValue(jsonparser.Object, data)
	if err != nil {
		return fields.ObjectValue{}, err
	}
	obj, ok := v.(fields.ObjectValue)
	if !ok {
		return fields.ObjectValue{}, errors.Newf("jsondoc: top-level JSON value is not an object")
	}
	return obj, nil
}

// DecodeValue decodes a single JSON scalar, array, or object into the
// matching field value variant. Ambiguous cases inherent to plain JSON
// (Integer vs Double, Timestamp vs String, Blob vs String, Ref vs String)
// resolve to the nearest structural type: a JSON number with no fractional
// part or exponent that fits in an int64 decodes as Integer, any other
// number as Double, and any JSON string decodes as String.
func DecodeValue(dataType jsonparser.ValueType, data []byte) (fields.Value, error) {
	switch dataType {
	case jsonparser.Null:
		return fields.Null, nil

	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return nil, errors.Wrap(err, "jsondoc: decoding boolean")
		}
		return fields.NewBoolean(b), nil

	case jsonparser.Number:
		if i, err := jsonparser.ParseInt(data); err == nil {
			return fields.NewInteger(i), nil
		}
		f, err := jsonparser.ParseFloat(data)
		if err != nil {
			return nil, errors.Wrap(err, "jsondoc: decoding number")
		}
		return fields.NewDouble(f), nil

	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, errors.Wrap(err, "jsondoc: decoding string")
		}
		return fields.NewString(s), nil

	case jsonparser.Array:
		var items []fields.Value
		var elemErr error
		_, err := jsonparser.ArrayEach(data, func(value []byte, dt jsonparser.ValueType, offset int, err error) {
			if elemErr != nil {
				return
			}
			v, derr := DecodeValue(dt, value)
			if derr != nil {
				elemErr = derr
				return
			}
			items = append(items, v)
		})
		if err != nil {
			return nil, errors.Wrap(err, "jsondoc: decoding array")
		}
		if elemErr != nil {
			return nil, elemErr
		}
		return fields.NewArray(items...), nil

	case jsonparser.Object:
		obj := fields.EmptyObject
		var fieldErr error
		err := jsonparser.ObjectEach(data, func(key, value []byte, dt jsonparser.ValueType, offset int) error {
			v, derr := DecodeValue(dt, value)
			if derr != nil {
				fieldErr = derr
				return derr
			}
			obj = obj.Set([]string{string(key)}, v)
			return nil
		})
		if err != nil {
			return nil, errors.Wrap(err, "jsondoc: decoding object")
		}
		if fieldErr != nil {
			return nil, fieldErr
		}
		return obj, nil

	default:
		return nil, errors.Newf("jsondoc: unsupported JSON value type %v", dataType)
	}
}
