package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(fields []*Field) []string {
	res := make([]string, len(fields))
	for i, f := range fields {
		res[i] = f.Name()
	}

	return res
}

func loadFixtures(t *testing.T) *TypeGraph {
	t.Helper()

	graph, err := NewLoader().Load("property-mapper/store", "property-mapper/warehouse")
	require.NoError(t, err)
	require.NotNil(t, graph)

	return graph
}

func TestLoader_Load(t *testing.T) {
	graph := loadFixtures(t)

	assert.Contains(t, graph.Packages, "property-mapper/store")
	assert.Contains(t, graph.Packages, "property-mapper/warehouse")

	assert.Contains(t, graph.Types, TypeID{PkgPath: "property-mapper/store", Name: "Order"})
	assert.Contains(t, graph.Types, TypeID{PkgPath: "property-mapper/warehouse", Name: "OrderView"})

	// OrderStatus is not a struct.
	assert.NotContains(t, graph.Types, TypeID{PkgPath: "property-mapper/store", Name: "OrderStatus"})

	assert.Equal(t, []string{
		"store.Address", "store.Customer", "store.Order", "store.OrderItem",
		"warehouse.CustomerView", "warehouse.OrderView",
	}, graph.ShortNames())
}

func TestLoader_OrderProperties(t *testing.T) {
	graph := loadFixtures(t)

	order := graph.GetType(TypeID{PkgPath: "property-mapper/store", Name: "Order"})
	require.NotNil(t, order)

	assert.Equal(t,
		[]string{"ID", "Customer", "Status", "TotalCents", "Items", "OrderedAt", "DiscountCents", "ItemCount"},
		names(order.Readable))
	assert.Equal(t,
		[]string{"ID", "Customer", "Status", "TotalCents", "Items", "OrderedAt", "DiscountCents"},
		names(order.Writable))

	status := order.Readable[2]
	assert.Equal(t, "property-mapper/store.OrderStatus", status.Type())
	assert.Equal(t, FieldKindStruct, status.Kind())

	discount := order.Readable[6]
	assert.Equal(t, "int64", discount.Type())
	assert.Equal(t, FieldKindMethod, discount.Kind())
	assert.True(t, discount.CanWrite())

	assert.False(t, order.Readable[7].CanWrite())

	// Validate() error is a method, not a property.
	assert.NotContains(t, names(order.Readable), "Validate")
}

func TestTypeGraph_Members(t *testing.T) {
	graph := loadFixtures(t)

	assert.Equal(t,
		[]string{"ID", "Email", "FullName", "Address", "IsActive"},
		names(graph.Members("*property-mapper/store.Customer")))
	assert.Equal(t,
		[]string{"Street", "City", "PostalCode", "Country"},
		names(graph.Members("property-mapper/store.Address")))
	assert.Nil(t, graph.Members("int64"))
}

func TestTypeGraph_Resolve(t *testing.T) {
	graph := loadFixtures(t)

	tests := []struct {
		id   string
		want string
	}{
		{"Order", "property-mapper/store.Order"},
		{"store.Order", "property-mapper/store.Order"},
		{"property-mapper/warehouse.OrderView", "property-mapper/warehouse.OrderView"},
		{"warehouse.Order", ""},
		{"other.Order", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got := graph.Resolve(tt.id)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.ID.String())
		})
	}
}

func TestTypeID(t *testing.T) {
	id := TypeID{PkgPath: "property-mapper/store", Name: "Order"}
	assert.Equal(t, "property-mapper/store.Order", id.String())
	assert.Equal(t, "store.Order", id.Short())

	local := TypeID{Name: "Order"}
	assert.Equal(t, "Order", local.String())
	assert.Equal(t, "Order", local.Short())
}
