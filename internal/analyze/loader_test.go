package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storePkg = "typerep/store"

func loadStore(t *testing.T) *TypeGraph {
	t.Helper()

	graph, err := NewAnalyzer().LoadPackages(storePkg)
	require.NoError(t, err)
	require.NotNil(t, graph)

	return graph
}

func field(t *testing.T, info *TypeInfo, name string) *FieldInfo {
	t.Helper()

	for i := range info.Fields {
		if info.Fields[i].Name == name {
			return &info.Fields[i]
		}
	}

	require.Failf(t, "missing field", "%s has no field %s", info.ID, name)

	return nil
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	graph := loadStore(t)

	assert.Contains(t, graph.Packages, storePkg)
	assert.Equal(t, "store", graph.Packages[storePkg].Name)

	for _, name := range []string{"Money", "Audit", "Product", "Category", "Customer", "Order", "OrderItem", "OrderStatus"} {
		assert.Contains(t, graph.Types, TypeID{PkgPath: storePkg, Name: name})
	}

	assert.Len(t, graph.Packages[storePkg].Types, len(graph.Types))
}

func TestAnalyzer_LoadPackages_Missing(t *testing.T) {
	_, err := NewAnalyzer().LoadPackages("typerep/no/such/package")
	require.ErrorIs(t, err, ErrLoad)
}

func TestAnalyzer_OrderFields(t *testing.T) {
	graph := loadStore(t)

	order := graph.GetType(TypeID{PkgPath: storePkg, Name: "Order"})
	require.NotNil(t, order)
	assert.Equal(t, TypeKindStruct, order.Kind)

	audit := field(t, order, "Audit")
	assert.True(t, audit.Embedded)
	assert.Equal(t, TypeKindStruct, audit.Type.Kind)

	items := field(t, order, "Items")
	assert.Equal(t, TypeKindSlice, items.Type.Kind)
	assert.Equal(t, TypeKindStruct, items.Type.ElemType.Kind)

	location := field(t, order, "Location")
	assert.Equal(t, TypeKindArray, location.Type.Kind)
	assert.EqualValues(t, 2, location.Type.Len)

	status := field(t, order, "Status")
	assert.Equal(t, TypeKindAlias, status.Type.Kind)
	assert.Equal(t, TypeKindBasic, status.Type.Underlying.Kind)

	audited := graph.GetType(TypeID{PkgPath: storePkg, Name: "Audit"})
	created := field(t, audited, "CreatedAt")
	assert.Equal(t, TypeKindExternal, created.Type.Kind)
	assert.Equal(t, "time.Time", created.Type.ID.String())
}

func TestAnalyzer_MapAndPointer(t *testing.T) {
	graph := loadStore(t)

	product := graph.GetType(TypeID{PkgPath: storePkg, Name: "Product"})
	attrs := field(t, product, "Attributes")
	assert.Equal(t, TypeKindMap, attrs.Type.Kind)
	assert.Equal(t, TypeKindBasic, attrs.Type.KeyType.Kind)

	customer := graph.GetType(TypeID{PkgPath: storePkg, Name: "Customer"})
	address := field(t, customer, "Address")
	assert.Equal(t, TypeKindPointer, address.Type.Kind)
	assert.Equal(t, TypeKindBasic, address.Type.ElemType.Kind)
}

func TestAnalyzer_RecursiveType(t *testing.T) {
	graph := loadStore(t)

	category := graph.GetType(TypeID{PkgPath: storePkg, Name: "Category"})
	children := field(t, category, "Children")
	assert.Same(t, category, children.Type.ElemType)
}

func TestTypeGraph_IDs(t *testing.T) {
	graph := loadStore(t)

	ids := graph.IDs()
	require.NotEmpty(t, ids)
	assert.Equal(t, "Audit", ids[0].Name)

	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1].String(), ids[i].String())
	}
}

func TestTypeID_String(t *testing.T) {
	id := TypeID{PkgPath: storePkg, Name: "Order"}
	assert.Equal(t, "typerep/store.Order", id.String())

	// Empty package path
	idNoPkg := TypeID{Name: "int"}
	assert.Equal(t, "int", idNoPkg.String())
}

func TestTypeKind_String(t *testing.T) {
	assert.Equal(t, "basic", TypeKindBasic.String())
	assert.Equal(t, "struct", TypeKindStruct.String())
	assert.Equal(t, "pointer", TypeKindPointer.String())
	assert.Equal(t, "slice", TypeKindSlice.String())
	assert.Equal(t, "array", TypeKindArray.String())
	assert.Equal(t, "map", TypeKindMap.String())
	assert.Equal(t, "interface", TypeKindInterface.String())
	assert.Equal(t, "alias", TypeKindAlias.String())
	assert.Equal(t, "external", TypeKindExternal.String())
	assert.Equal(t, "unknown", TypeKindUnknown.String())
}

func TestFieldInfo_JSONName(t *testing.T) {
	tests := []struct {
		field FieldInfo
		name  string
		ok    bool
	}{
		{FieldInfo{Name: "MyField", Exported: true, Tag: `json:"my_field"`}, "my_field", true},
		{FieldInfo{Name: "MyField", Exported: true, Tag: `json:"my_field,omitempty"`}, "my_field", true},
		{FieldInfo{Name: "MyField", Exported: true, Tag: `json:",string"`}, "MyField", true},
		{FieldInfo{Name: "MyField", Exported: true}, "MyField", true},
		{FieldInfo{Name: "MyField", Exported: true, Tag: `json:"-"`}, "", false},
		{FieldInfo{Name: "myField", Tag: `json:"named"`}, "", false},
	}

	for _, tt := range tests {
		name, ok := tt.field.JSONName()
		assert.Equal(t, tt.name, name, string(tt.field.Tag))
		assert.Equal(t, tt.ok, ok, string(tt.field.Tag))
	}

	f := FieldInfo{Tag: `json:"n,string,omitempty"`}
	assert.True(t, f.HasOption("string"))
	assert.True(t, f.HasOption("omitempty"))
	assert.False(t, f.HasOption("n"))
	assert.False(t, (&FieldInfo{Tag: `json:"n"`}).HasOption(""))
}
