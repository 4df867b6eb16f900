package datatable

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStructFieldNaming_Columns(t *testing.T) {
	type Timestamps struct {
		CreatedAt string
		UpdatedAt string `col:"Last Change"`
	}
	type Contact struct {
		Email string
	}
	type order struct {
		ID string `col:"-"`
		*Timestamps
		CustomerName string
		TotalItems   int `col:"Items"`
		vendorID     string
		Contact      Contact
	}

	tests := []struct {
		name   string
		naming *StructFieldNaming
		strct  any
		want   []string
	}{
		{name: "no fields", naming: nil, strct: struct{}{}, want: []string{}},
		{name: "only unexported fields", naming: &DefaultStructFieldNaming, strct: struct{ id string }{}, want: []string{}},
		{
			name:   "nil naming uses field names",
			naming: nil,
			strct:  order{},
			want:   []string{"ID", "CreatedAt", "UpdatedAt", "CustomerName", "TotalItems", "Contact"},
		},
		{
			name:   "default naming",
			naming: &DefaultStructFieldNaming,
			strct:  &order{},
			want:   []string{"Created At", "Last Change", "Customer Name", "Items", "Contact"},
		},
		{
			name:   "untagged func without tag",
			naming: &StructFieldNaming{Untagged: strings.ToUpper},
			strct:  order{},
			want:   []string{"ID", "CREATEDAT", "UPDATEDAT", "CUSTOMERNAME", "TOTALITEMS", "CONTACT"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.naming.Columns(tt.strct))
		})
	}
}

func TestStructFieldNaming_FieldByKey(t *testing.T) {
	type Audit struct {
		CreatedBy string `json:"createdBy"`
	}
	type Vendor struct {
		Audit
		ID           string `json:"id"`
		CompanyName  string `col:"company"`
		ContactEmail string
	}
	vendor := Vendor{
		Audit:        Audit{CreatedBy: "admin"},
		ID:           "v-1",
		CompanyName:  "ABC Supplies Co.",
		ContactEmail: "contact@abcsupplies.com",
	}
	naming := &DefaultStructFieldNaming

	tests := []struct {
		name    string
		strct   any
		key     string
		want    any
		wantErr bool
	}{
		{name: "json tag", strct: vendor, key: "id", want: "v-1"},
		{name: "col tag", strct: vendor, key: "company", want: "ABC Supplies Co."},
		{name: "field name any case", strct: vendor, key: "contactEmail", want: "contact@abcsupplies.com"},
		{name: "embedded json tag", strct: vendor, key: "createdBy", want: "admin"},
		{name: "pointer", strct: &vendor, key: "id", want: "v-1"},
		{name: "missing key", strct: vendor, key: "phone", wantErr: true},
		{name: "json key before header tag", strct: struct {
			Label string `col:"name"`
			Title string `json:"name"`
		}{Label: "label", Title: "title"}, key: "name", want: "title"},
		{name: "field name before header tag", strct: struct {
			Display string `col:"code"`
			Code    string
		}{Display: "display", Code: "C-1"}, key: "code", want: "C-1"},
		{name: "nil pointer", strct: (*Vendor)(nil), key: "id", wantErr: true},
		{name: "not a struct", strct: 42, key: "id", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := naming.FieldByKey(reflect.ValueOf(tt.strct), tt.key)
			if tt.wantErr {
				require.False(t, ok)
				return
			}
			require.True(t, ok)
			require.Equal(t, tt.want, got.Interface())
		})
	}
}
