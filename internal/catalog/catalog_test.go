package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typerep/check"
	"typerep/options"
	"typerep/repr"
)

func format(t *testing.T, c *Catalog, name string) string {
	t.Helper()

	e, err := c.Lookup(name)
	require.NoError(t, err)

	return repr.Format(e.Desc)
}

func TestBuiltin(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	assert.Equal(t, len(handBuilt())+6+12, c.Len())
	assert.Equal(t, "person", c.Names()[0])

	origins := map[OriginEnum]int{}
	for _, e := range c.Entries() {
		origins[e.Origin]++
	}
	assert.Equal(t, map[OriginEnum]int{OriginBuiltin: 12, OriginDerived: 6, OriginFile: 12}, origins)

	tests := []struct {
		name string
		want string
	}{
		{"person.extended", "{ name: string, age: string, active: boolean }"},
		{"person.partial", "Partial<{ name: string, age: number }>"},
		{"abc.omit_b", "{ a: 1, c: 3 }"},
		{"abc.pick_ca", "{ c: 3, a: 1 }"},
		{"matrix", "Array<Array<number>>"},
		{"never", "never"},
		{"unit", "[]"},
		{"store.money", "{ cents: number, currency: string }"},
		{"store.order_status", `"PENDING" | "PAID" | "SHIPPED" | "CANCELLED"`},
		{"Point", "[number, number]"},
		{"Clock", "new (number, string | undefined)"},
		{"CustomerCard", "{ name: string, email: string | null }"},
		{"PublicCustomer", "{ id: Id, name: string, addresses: Array<Address> }"},
		{
			"VipCustomer",
			`{ id: Id, name: string, email: string | null, addresses: Array<Address>, flags: Record<string, boolean>, tier: "gold" | "platinum" }`,
		},
		{"Json", "null | boolean | number | string | Array<Json> | Record<string, Json>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, format(t, c, tt.name))
		})
	}
}

func TestBuiltin_WellFormed(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	cfg := options.Default()
	cfg.Strict = options.StrictAll

	for _, e := range c.Entries() {
		ds, err := check.Check(e.Desc, cfg)
		require.NoError(t, err)
		assert.False(t, ds.HasErrors(), "%s: %s", e.Name, ds)

		if e.Name != "never" {
			assert.Empty(t, ds, e.Name)
		}
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	e, err := c.Lookup("store.order")
	require.NoError(t, err)
	assert.Equal(t, OriginDerived, e.Origin)
	assert.Equal(t, repr.KindRecord, e.Desc.Kind())

	_, err = c.Lookup("persn")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "did you mean person?")

	_, err = c.Lookup("zzzzzz")
	require.ErrorIs(t, err, ErrNotFound)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestCatalog_Add(t *testing.T) {
	c := New()

	require.NoError(t, c.Add("a", OriginBuiltin, repr.String))
	require.ErrorIs(t, c.Add("a", OriginFile, repr.Number), ErrDuplicateEntry)
	require.Error(t, c.Add("b", OriginBuiltin, nil))

	e, err := c.Lookup("a")
	require.NoError(t, err)
	assert.Equal(t, OriginBuiltin, e.Origin)
	assert.Equal(t, 1, c.Len())
}

func TestCatalog_LoadPackages(t *testing.T) {
	c := New()
	require.NoError(t, c.LoadPackages("typerep/store"))

	e, err := c.Lookup("typerep/store.Money")
	require.NoError(t, err)
	assert.Equal(t, OriginPackage, e.Origin)
	assert.Equal(t, "{ cents: number, currency: string }", repr.Format(e.Desc))

	assert.Equal(t, "typerep/store.Audit", c.Names()[0])
	require.ErrorIs(t, c.LoadPackages("typerep/store"), ErrDuplicateEntry)
}

func TestOriginEnum_String(t *testing.T) {
	assert.Equal(t, "builtin", OriginBuiltin.String())
	assert.Equal(t, "package", OriginPackage.String())
	assert.Equal(t, "OriginEnum(0)", OriginEnum(0).String())
	assert.Equal(t, 5, OriginTotal)
}
