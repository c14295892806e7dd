package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typerep/annot"
	"typerep/derive"
	"typerep/repr"
	"typerep/store"
)

func TestTypeGraph_Table(t *testing.T) {
	graph := loadStore(t)
	table := graph.Table()

	assert.Len(t, table, len(graph.Types))

	order := table["typerep/store.Order"]
	require.NotNil(t, order)
	assert.Equal(t,
		"{ created_at: string, updated_at: string | null | undefined, id: number, customer_id: number, "+
			"status: typerep/store.OrderStatus, total: typerep/store.Money, items: Array<typerep/store.OrderItem>, "+
			"location: [number, number] | undefined }",
		repr.Format(order))

	assert.True(t, repr.Equal(repr.String, table["typerep/store.OrderStatus"]))

	product, ok := table["typerep/store.Product"].(*repr.RecordRepr)
	require.True(t, ok)
	inventory, _ := product.Field("inventory_count")
	assert.True(t, repr.Equal(repr.String, inventory))
	attrs, _ := product.Field("attributes")
	assert.True(t, repr.Equal(annot.Optional(repr.Dict(repr.String)), attrs))

	for name, d := range table {
		assert.NoError(t, annot.Check(d), name)
	}
}

// Without Shape, the static view agrees with the reflective one.
func TestTypeGraph_MatchesDerive(t *testing.T) {
	graph := loadStore(t)
	table := graph.Table()

	assert.True(t, repr.Equal(derive.MustFor[store.Money](), table["typerep/store.Money"]))
	assert.True(t, repr.Equal(derive.MustFor[store.Customer](), table["typerep/store.Customer"]))
	assert.True(t, repr.Equal(derive.MustFor[store.Audit](), table["typerep/store.Audit"]))
}

func TestTypeGraph_Describe(t *testing.T) {
	graph := loadStore(t)

	d, err := graph.Describe(TypeID{PkgPath: storePkg, Name: "Category"})
	require.NoError(t, err)

	rec, ok := d.(*repr.RecordRepr)
	require.True(t, ok)
	assert.Equal(t, []string{"name", "products", "children"}, rec.Keys())

	children, _ := rec.Field("children")
	elem, err := repr.Resolve(children.(*repr.ArrayRepr).Elem())
	require.NoError(t, err)
	assert.True(t, repr.Equal(d, elem))

	_, err = graph.Describe(TypeID{PkgPath: storePkg, Name: "Ordr"})
	require.ErrorIs(t, err, ErrTypeNotFound)
	assert.Contains(t, err.Error(), "did you mean typerep/store.Order?")
}
