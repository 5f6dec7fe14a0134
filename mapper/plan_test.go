package mapper

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplain(t *testing.T) {
	plan, err := Explain(nil, func(c *Config[FooWithBoth, PersonView]) {
		c.Ignore("Age")
	})
	require.NoError(t, err)

	assert.Equal(t, reflect.TypeFor[FooWithBoth](), plan.Source)
	assert.Equal(t, reflect.TypeFor[PersonView](), plan.Destination)
	assert.Equal(t, "mapper.FooWithBoth->mapper.PersonView", plan.TypePair())

	require.Len(t, plan.Entries, 3, spew.Sdump(plan.Entries))
	assert.Equal(t, 2, plan.Count(Unmapped))
	assert.Equal(t, 1, plan.Count(Ignored))

	entry, ok := plan.Lookup("Age")
	require.True(t, ok)
	assert.Equal(t, Ignored, entry.Resolution)
	assert.Equal(t, reflect.TypeFor[int](), entry.Type)

	_, ok = plan.Lookup("Missing")
	assert.False(t, ok)
}

func TestExplain_Resolutions(t *testing.T) {
	plan, err := Explain[*Foo, Flattened](nil, nil)
	require.NoError(t, err)

	entry, ok := plan.Lookup("BarName")
	require.True(t, ok, spew.Sdump(plan))
	assert.Equal(t, Association, entry.Resolution)
	assert.Equal(t, "Bar.Name", entry.Source)

	plan, err = Explain[FooWithBoth, Flattened](nil, nil)
	require.NoError(t, err)

	entry, _ = plan.Lookup("BarName")
	assert.Equal(t, Direct, entry.Resolution)
	assert.Equal(t, "BarName", entry.Source)
}

func TestExplain_InvalidTypes(t *testing.T) {
	_, err := Explain[string, PersonView](nil, nil)
	require.ErrorIs(t, err, ErrInvalidSource)

	_, err = Explain[Person, *PersonView](nil, nil)
	require.ErrorIs(t, err, ErrInvalidDestination)

	_, err = Explain(nil, func(c *Config[Person, PersonView]) { c.Ignore("Nope") })
	require.ErrorIs(t, err, ErrUnknownField)
}

func TestPlan_String(t *testing.T) {
	plan, err := Explain(nil, func(c *Config[Person, PersonView]) {
		c.Ignore("LastName")
	})
	require.NoError(t, err)

	expected := "mapper.Person->mapper.PersonView\n" +
		"  FirstName <- FirstName (Direct)\n" +
		"  LastName     (Ignored)\n" +
		"  Age       <- Age (Direct)\n"
	assert.Equal(t, expected, plan.String())
}

func TestPlan_Diagnostics(t *testing.T) {
	plan, err := Explain[Flattened, FooWithBoth](nil, nil)
	require.NoError(t, err)

	diags := plan.Diagnostics()
	assert.True(t, diags.IsValid())

	require.Len(t, diags.Infos, 1, spew.Sdump(diags))
	assert.Equal(t, "direct_match", diags.Infos[0].Code)
	assert.Equal(t, "BarName", diags.Infos[0].FieldPath)

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "unmapped_field", diags.Warnings[0].Code)
	assert.Equal(t, "Bar", diags.Warnings[0].FieldPath)
	assert.Equal(t, "mapper.Flattened->mapper.FooWithBoth", diags.Warnings[0].TypePair)
}

func TestMapper_Plan(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	plan, err := m.Plan(reflect.TypeFor[*FooRef](), reflect.TypeFor[Flattened]())
	require.NoError(t, err)

	entry, ok := plan.Lookup("BarName")
	require.True(t, ok)
	assert.Equal(t, Association, entry.Resolution)

	_, err = m.Plan(reflect.TypeFor[int](), reflect.TypeFor[Flattened]())
	require.ErrorIs(t, err, ErrInvalidSource)

	_, err = m.Plan(reflect.TypeFor[FooRef](), nil)
	require.ErrorIs(t, err, ErrInvalidDestination)
}

func TestResolution_String(t *testing.T) {
	assert.Equal(t, "Unmapped", Unmapped.String())
	assert.Equal(t, "Association", Association.String())
	assert.Equal(t, "Skipped", Skipped.String())
	assert.Equal(t, "Resolution(9)", Resolution(9).String())
}
