package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/napalu/optparse/types"
)

// ConversionError reports a value which could not be converted to the bound type
type ConversionError struct {
	Kind  string
	Value string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("invalid %s value: %q", e.Kind, e.Value)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// ConvertString converts value and stores it in data, which must be a pointer to one of the
// supported types. List types are split with delimiterFunc before each element is converted.
func ConvertString(value string, data any, delimiterFunc types.ListDelimiterFunc) error {
	switch t := data.(type) {
	case *string:
		*t = value
	case *[]string:
		*t = strings.FieldsFunc(value, delimiterFunc)
	case *bool:
		return convert(value, t, "boolean", strconv.ParseBool)
	case *int:
		return convert(value, t, "integer", signed[int](strconv.IntSize))
	case *int8:
		return convert(value, t, "int8", signed[int8](8))
	case *int16:
		return convert(value, t, "int16", signed[int16](16))
	case *int32:
		return convert(value, t, "int32", signed[int32](32))
	case *int64:
		return convert(value, t, "int64", signed[int64](64))
	case *uint:
		return convert(value, t, "unsigned integer", unsigned[uint](strconv.IntSize))
	case *uint8:
		return convert(value, t, "uint8", unsigned[uint8](8))
	case *uint16:
		return convert(value, t, "uint16", unsigned[uint16](16))
	case *uint32:
		return convert(value, t, "uint32", unsigned[uint32](32))
	case *uint64:
		return convert(value, t, "uint64", unsigned[uint64](64))
	case *float32:
		return convert(value, t, "float32", func(s string) (float32, error) {
			f, err := strconv.ParseFloat(s, 32)
			return float32(f), err
		})
	case *float64:
		return convert(value, t, "float64", func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		})
	case *time.Duration:
		return convert(value, t, "duration", time.ParseDuration)
	case *time.Time:
		return convert(value, t, "date", parseDate)
	case *[]int:
		return convertList(value, t, delimiterFunc, "integer", signed[int](strconv.IntSize))
	case *[]int64:
		return convertList(value, t, delimiterFunc, "int64", signed[int64](64))
	case *[]uint:
		return convertList(value, t, delimiterFunc, "unsigned integer", unsigned[uint](strconv.IntSize))
	case *[]float64:
		return convertList(value, t, delimiterFunc, "float64", func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		})
	case *[]bool:
		return convertList(value, t, delimiterFunc, "boolean", strconv.ParseBool)
	case *[]time.Duration:
		return convertList(value, t, delimiterFunc, "duration", time.ParseDuration)
	case *[]time.Time:
		return convertList(value, t, delimiterFunc, "date", parseDate)
	default:
		return fmt.Errorf("%w: %T", types.ErrUnsupportedTypeConversion, data)
	}

	return nil
}

func convert[T any](value string, target *T, kind string, parse func(string) (T, error)) error {
	v, err := parse(value)
	if err != nil {
		return &ConversionError{Kind: kind, Value: value, Err: err}
	}
	*target = v

	return nil
}

func convertList[T any](value string, target *[]T, delimiterFunc types.ListDelimiterFunc, kind string, parse func(string) (T, error)) error {
	values := strings.FieldsFunc(value, delimiterFunc)
	temp := make([]T, len(values))
	for i, v := range values {
		if err := convert(v, &temp[i], kind, parse); err != nil {
			return err
		}
	}
	*target = temp

	return nil
}

// parseDate accepts any layout dateparse recognizes, in the local time zone
func parseDate(s string) (time.Time, error) {
	return dateparse.ParseLocal(s)
}

func signed[T ~int | ~int8 | ~int16 | ~int32 | ~int64](bitSize int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseInt(s, 0, bitSize)
		return T(v), err
	}
}

func unsigned[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](bitSize int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseUint(s, 0, bitSize)
		return T(v), err
	}
}

// CanConvert reports whether ConvertString accepts data
func CanConvert(data any) bool {
	switch data.(type) {
	case *string, *[]string, *bool, *int, *int8, *int16, *int32, *int64,
		*uint, *uint8, *uint16, *uint32, *uint64, *float32, *float64,
		*time.Duration, *time.Time, *[]int, *[]int64, *[]uint, *[]float64,
		*[]bool, *[]time.Duration, *[]time.Time:
		return true
	}

	return false
}
