package datatable

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

var (
	_ Formatter = FormatterFunc(nil)
	_ Formatter = SprintFormatter{}
	_ Formatter = UnsupportedFormatter{}
	_ Formatter = PrintfFormatter("")
	_ Formatter = LayoutFormatter("")
	_ Formatter = StringerFormatter{}
	_ Formatter = PrecisionFormatter(0)
)

// Formatter is a reflection-based value formatter that converts a reflect.Value
// to the display text of a cell.
//
// Formatter implementations are chained by TypeFormatter and signal
// that they don't support a value by returning errors.ErrUnsupported.
//
// Example usage:
//
//	formatter := FormatterFunc(func(v reflect.Value) (string, error) {
//	    if v.Kind() == reflect.Int {
//	        return fmt.Sprintf("#%d", v.Int()), nil
//	    }
//	    return "", errors.ErrUnsupported
//	})
//	str, err := formatter.Format(reflect.ValueOf(42))
//	// str == "#42"
type Formatter interface {
	// Format converts a reflect.Value to its string representation.
	// Returns errors.ErrUnsupported if the formatter doesn't support the value's type.
	Format(reflect.Value) (string, error)
}

// FormatterFunc is a function type that implements the Formatter interface,
// allowing plain functions to be used as Formatters.
type FormatterFunc func(reflect.Value) (string, error)

// Format implements the Formatter interface by calling the function itself.
func (f FormatterFunc) Format(v reflect.Value) (string, error) {
	return f(v)
}

// SprintFormatter is a universal Formatter that uses fmt.Sprint to format any value.
// This formatter never returns an error and accepts all value types.
type SprintFormatter struct{}

// Format implements Formatter by using fmt.Sprint on the underlying Go value.
func (SprintFormatter) Format(v reflect.Value) (string, error) {
	return fmt.Sprint(v.Interface()), nil
}

// UnsupportedFormatter is a Formatter that always returns errors.ErrUnsupported.
// Useful to explicitly mark types as unsupported in a formatting chain
// and force the fallback of the chain.
type UnsupportedFormatter struct{}

// Format implements Formatter by always returning errors.ErrUnsupported.
func (UnsupportedFormatter) Format(v reflect.Value) (string, error) {
	return "", errors.ErrUnsupported
}

// PrintfFormatter implements Formatter by calling
// fmt.Sprintf with this type's string value as format.
type PrintfFormatter string

func (format PrintfFormatter) Format(v reflect.Value) (string, error) {
	return fmt.Sprintf(string(format), v.Interface()), nil
}

// PrecisionFormatter formats float kinds with
// the number of decimal places of the underlying int value.
type PrecisionFormatter int

func (prec PrecisionFormatter) Format(v reflect.Value) (string, error) {
	switch v.Kind() {
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', int(prec), 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', int(prec), 64), nil
	}
	return "", errors.ErrUnsupported
}

// StringerFormatter formats values implementing fmt.Stringer
// with their String method.
type StringerFormatter struct{}

func (StringerFormatter) Format(v reflect.Value) (string, error) {
	s, ok := v.Interface().(fmt.Stringer)
	if !ok {
		return "", errors.ErrUnsupported
	}
	return s.String(), nil
}

// LayoutFormatter formats time.Time values and strings holding
// an ISO 8601 date or RFC 3339 timestamp using
// the underlying string as time layout.
// Zero times and empty strings are formatted as Placeholder.
//
// String kinds cover github.com/domonda/go-types/date.Date
// and timestamps as they are returned by JSON APIs.
type LayoutFormatter string

func (layout LayoutFormatter) Format(v reflect.Value) (string, error) {
	if t, ok := v.Interface().(time.Time); ok {
		if t.IsZero() {
			return Placeholder, nil
		}
		return t.Format(string(layout)), nil
	}
	if v.Kind() != reflect.String {
		return "", errors.ErrUnsupported
	}
	str := v.String()
	if str == "" {
		return Placeholder, nil
	}
	for _, parseLayout := range []string{time.DateOnly, time.RFC3339Nano} {
		if t, err := time.Parse(parseLayout, str); err == nil {
			return t.Format(string(layout)), nil
		}
	}
	return "", fmt.Errorf("can't parse %q as date or time", str)
}
