// Package mapper copies field values from a source struct into a destination
// struct, matching fields by name and type.
//
// For every writable destination property the mapper tries, in order:
//  1. a readable source property with the same name and type;
//  2. a flattening match: "CustomerName" reads source field Customer, then
//     its Name, when the types line up.
//
// Fields without a match keep their value. Fields named in the configuration
// are never touched:
//
//	err := mapper.MapWith(order, &view, func(c *mapper.Config[store.Order, warehouse.OrderView]) {
//		c.Ignore("Currency")
//		c.IgnoreField(func(o *warehouse.OrderView) any { return &o.PickerNote })
//	})
//
// Configuration errors are reported before anything is copied. Accessor
// failures abort the call and leave already copied fields in place.
package mapper
