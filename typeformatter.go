package datatable

import (
	"errors"
	"reflect"
)

// Ensure that TypeFormatter implements Formatter
var _ Formatter = new(TypeFormatter)

// TypeFormatter selects a Formatter based on the reflected type,
// interface, or kind of a cell value.
//
// Matching order:
//  1. Exact type match (Types map)
//  2. Interface type match (InterfaceTypes map)
//  3. Kind match (Kinds map)
//  4. If the value is a non nil pointer, steps 1-3 for the dereferenced value
//  5. Default formatter
//
// At each step a formatter returning errors.ErrUnsupported
// continues the matching, any other error is returned immediately.
// Without a match and Default formatter errors.ErrUnsupported is returned.
//
// All With* methods return a modified copy,
// a TypeFormatter is never changed after construction
// and can be shared between goroutines.
//
// A nil *TypeFormatter is valid and returns errors.ErrUnsupported.
//
// Example usage:
//
//	formatter := NewTypeFormatter().
//	    WithTypeFormatter(reflect.TypeOf(time.Time{}), LayoutFormatter("2006-01-02")).
//	    WithKindFormatter(reflect.Float64, PrintfFormatter("%.2f"))
type TypeFormatter struct {
	// Types maps exact reflect.Type to their Formatter.
	Types map[reflect.Type]Formatter

	// InterfaceTypes maps interface types to their Formatter.
	// Value types are checked if they implement these interfaces.
	InterfaceTypes map[reflect.Type]Formatter

	// Kinds maps reflect.Kind to their Formatter.
	Kinds map[reflect.Kind]Formatter

	// Default is the fallback used when nothing else matches.
	Default Formatter
}

// NewTypeFormatter creates a new empty TypeFormatter.
func NewTypeFormatter() *TypeFormatter {
	return new(TypeFormatter)
}

// Format implements Formatter by routing to the
// formatter registered for the type of the value.
func (f *TypeFormatter) Format(val reflect.Value) (string, error) {
	if f == nil || !val.IsValid() {
		return "", errors.ErrUnsupported
	}
	str, err := f.formatMatching(val)
	if !errors.Is(err, errors.ErrUnsupported) {
		return str, err
	}
	// If pointer type had no direct formatter
	// check if dereferenced value type has a formatter
	if val.Kind() == reflect.Pointer && !val.IsNil() {
		str, err := f.formatMatching(val.Elem())
		if !errors.Is(err, errors.ErrUnsupported) {
			return str, err
		}
	}
	if f.Default != nil {
		return f.Default.Format(val)
	}
	return "", errors.ErrUnsupported
}

func (f *TypeFormatter) formatMatching(val reflect.Value) (string, error) {
	valType := val.Type()
	if typeFmt, ok := f.Types[valType]; ok {
		str, err := typeFmt.Format(val)
		if !errors.Is(err, errors.ErrUnsupported) {
			return str, err
		}
		// Continue after errors.ErrUnsupported
	}
	for interfaceType, interfaceFmt := range f.InterfaceTypes {
		if valType.Implements(interfaceType) {
			str, err := interfaceFmt.Format(val)
			if !errors.Is(err, errors.ErrUnsupported) {
				return str, err
			}
			// Continue after errors.ErrUnsupported
		}
	}
	if kindFmt, ok := f.Kinds[valType.Kind()]; ok {
		str, err := kindFmt.Format(val)
		if !errors.Is(err, errors.ErrUnsupported) {
			return str, err
		}
	}
	return "", errors.ErrUnsupported
}

// WithTypeFormatter returns a new TypeFormatter with an exact type formatter added.
func (f *TypeFormatter) WithTypeFormatter(typ reflect.Type, fmt Formatter) *TypeFormatter {
	mod := f.cloneOrNew()
	if mod.Types == nil {
		mod.Types = make(map[reflect.Type]Formatter)
	}
	mod.Types[typ] = fmt
	return mod
}

// WithInterfaceTypeFormatter returns a new TypeFormatter with
// a formatter for all types implementing the interface type typ.
// Use reflect.TypeFor[InterfaceName]() to get the interface type.
func (f *TypeFormatter) WithInterfaceTypeFormatter(typ reflect.Type, fmt Formatter) *TypeFormatter {
	mod := f.cloneOrNew()
	if mod.InterfaceTypes == nil {
		mod.InterfaceTypes = make(map[reflect.Type]Formatter)
	}
	mod.InterfaceTypes[typ] = fmt
	return mod
}

// WithKindFormatter returns a new TypeFormatter with a kind formatter added.
func (f *TypeFormatter) WithKindFormatter(kind reflect.Kind, fmt Formatter) *TypeFormatter {
	mod := f.cloneOrNew()
	if mod.Kinds == nil {
		mod.Kinds = make(map[reflect.Kind]Formatter)
	}
	mod.Kinds[kind] = fmt
	return mod
}

// WithDefaultFormatter returns a new TypeFormatter with a default formatter set.
func (f *TypeFormatter) WithDefaultFormatter(fmt Formatter) *TypeFormatter {
	mod := f.cloneOrNew()
	mod.Default = fmt
	return mod
}

func (f *TypeFormatter) cloneOrNew() *TypeFormatter {
	if f == nil {
		return new(TypeFormatter)
	}
	c := &TypeFormatter{Default: f.Default}
	if len(f.Types) > 0 {
		c.Types = make(map[reflect.Type]Formatter, len(f.Types))
		for key, val := range f.Types {
			c.Types[key] = val
		}
	}
	if len(f.InterfaceTypes) > 0 {
		c.InterfaceTypes = make(map[reflect.Type]Formatter, len(f.InterfaceTypes))
		for key, val := range f.InterfaceTypes {
			c.InterfaceTypes[key] = val
		}
	}
	if len(f.Kinds) > 0 {
		c.Kinds = make(map[reflect.Kind]Formatter, len(f.Kinds))
		for key, val := range f.Kinds {
			c.Kinds[key] = val
		}
	}
	return c
}
