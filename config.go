package datatable

import (
	"fmt"
	"reflect"
	"time"

	"github.com/domonda/go-types/date"
	"github.com/domonda/go-types/money"
)

var (
	// Placeholder is the cell text for missing and null-like values.
	Placeholder = "-"

	// DefaultEmptyMessage is the empty state message
	// used when no message was passed for a table without rows.
	DefaultEmptyMessage = "No data found"

	// DisplayDateLayout is the layout used by DefaultTypeFormatter
	// for time.Time and date.Date values.
	DisplayDateLayout = "Jan 2, 2006"

	// DefaultStructFieldNaming provides the default StructFieldNaming
	// using "col" as header tag, ignores "-" titled fields,
	// and uses SpacePascalCase for untagged fields.
	DefaultStructFieldNaming = StructFieldNaming{
		Tag:      "col",
		Ignore:   "-",
		Untagged: SpacePascalCase,
	}

	// DefaultTypeFormatter is used by a Renderer
	// that has no TypeFormatter configured.
	DefaultTypeFormatter = NewTypeFormatter().
				WithTypeFormatter(typeOfTime, LayoutFormatter(DisplayDateLayout)).
				WithTypeFormatter(typeOfDate, LayoutFormatter(DisplayDateLayout)).
				WithTypeFormatter(typeOfAmount, PrecisionFormatter(2)).
				WithInterfaceTypeFormatter(typeOfStringer, StringerFormatter{})
)

var (
	typeOfTime     = reflect.TypeFor[time.Time]()
	typeOfDate     = reflect.TypeFor[date.Date]()
	typeOfAmount   = reflect.TypeFor[money.Amount]()
	typeOfStringer = reflect.TypeFor[fmt.Stringer]()
)
