package datatable

import "strings"

type Option int

const (
	// OptionHeaderOnEmpty emits the header row
	// also for tables without rows.
	OptionHeaderOnEmpty Option = 1 << iota
	// OptionStripedRows marks every second row as striped.
	OptionStripedRows
)

func (o Option) Has(option Option) bool {
	return o&option != 0
}

func (o Option) String() string {
	var b strings.Builder
	if o.Has(OptionHeaderOnEmpty) {
		b.WriteString("HeaderOnEmpty")
	}
	if o.Has(OptionStripedRows) {
		if b.Len() > 0 {
			b.WriteString("|")
		}
		b.WriteString("StripedRows")
	}
	if b.Len() == 0 {
		return "no Option"
	}
	return b.String()
}
