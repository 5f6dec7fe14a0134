package mapper

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-mapper/property"
)

type Person struct {
	FirstName string
	LastName  string
	Age       int
}

type PersonView struct {
	FirstName string
	LastName  string
	Age       int
}

type Bar struct {
	Name string
}

type Foo struct {
	Bar Bar
}

type FooRef struct {
	Bar *Bar
}

type Flattened struct {
	BarName string
}

type FooWithBoth struct {
	Bar     Bar
	BarName string
}

// PersonWithPrivateSetter exposes LastName through a getter only.
type PersonWithPrivateSetter struct {
	FirstName string
	lastName  string
}

func (p *PersonWithPrivateSetter) LastName() string { return p.lastName }

var errRejected = errors.New("rejected")

type Strict struct {
	Name  string
	value int
}

func (s *Strict) Value() int { return s.value }

func (s *Strict) SetValue(v int) error {
	if v < 0 {
		return errRejected
	}

	s.value = v

	return nil
}

type Inner struct {
	label string
}

func (i Inner) Label() string { return i.label }

type Wrapped struct {
	*Inner
	Other string
}

type LabelView struct {
	Label string
	Other string
}

type Base struct {
	ID int
}

// Record shadows the promoted Base.ID with its own ID.
type Record struct {
	*Base
	ID int
}

type RecordView struct {
	*Base
	Name string
}

type StrictSource struct {
	Name  string
	Value int
}

func TestMap_Direct(t *testing.T) {
	src := Person{FirstName: "foo", LastName: "bar", Age: 1}

	var dst PersonView
	require.NoError(t, Map(src, &dst))

	assert.Equal(t, PersonView{FirstName: "foo", LastName: "bar", Age: 1}, dst)
}

func TestMap_Idempotent(t *testing.T) {
	src := &Person{FirstName: "foo", LastName: "bar", Age: 1}

	var once, twice PersonView
	require.NoError(t, Map(src, &once))
	require.NoError(t, Map(src, &twice))
	require.NoError(t, Map(src, &twice))

	assert.Equal(t, once, twice)
}

func TestMap_DoesNotMutateSource(t *testing.T) {
	src := &Foo{Bar: Bar{Name: "dummy name"}}
	before := *src

	var dst Flattened
	require.NoError(t, Map(src, &dst))

	assert.Equal(t, before, *src)
}

func TestMap_DoesNotMutateSourceThroughEmbeddedPointer(t *testing.T) {
	src := Record{Base: &Base{ID: 1}, ID: 2}

	var dst RecordView
	require.NoError(t, Map(src, &dst))

	assert.Equal(t, 1, src.Base.ID)
	require.NotNil(t, dst.Base)
	assert.NotSame(t, src.Base, dst.Base)
	assert.Equal(t, 2, dst.ID)
}

func TestMap_PromotedGetterThroughNilEmbeddedPointer(t *testing.T) {
	var dst LabelView

	err := Map(Wrapped{Other: "x"}, &dst)
	require.ErrorIs(t, err, property.ErrNilEmbedded)

	var accErr *AccessorError
	require.ErrorAs(t, err, &accErr)
	assert.Equal(t, "Label", accErr.Field)
	assert.Equal(t, OpGet, accErr.Op)

	require.NoError(t, Map(Wrapped{Inner: &Inner{label: "l"}, Other: "x"}, &dst))
	assert.Equal(t, LabelView{Label: "l", Other: "x"}, dst)
}

func TestMapWith_Ignore(t *testing.T) {
	src := Person{FirstName: "foo", LastName: "bar", Age: 1}
	dst := PersonView{}

	err := MapWith(src, &dst, func(c *Config[Person, PersonView]) {
		c.Ignore("LastName")
	})
	require.NoError(t, err)

	assert.Equal(t, PersonView{FirstName: "foo", LastName: "", Age: 1}, dst)
}

func TestMapWith_IgnoreKeepsPreviousValue(t *testing.T) {
	src := Person{FirstName: "foo", LastName: "bar", Age: 1}
	dst := PersonView{LastName: "keep", Age: 99}

	err := MapWith(src, &dst, func(c *Config[Person, PersonView]) {
		c.Ignore("LastName", "Age")
	})
	require.NoError(t, err)

	assert.Equal(t, PersonView{FirstName: "foo", LastName: "keep", Age: 99}, dst)
}

func TestMapWith_IgnoreField(t *testing.T) {
	src := Person{FirstName: "foo", LastName: "bar", Age: 1}
	dst := PersonView{FirstName: "keep"}

	err := MapWith(src, &dst, func(c *Config[Person, PersonView]) {
		c.IgnoreField(func(d *PersonView) any { return &d.FirstName })
		c.IgnoreField(func(d *PersonView) any { return &d.Age })
	})
	require.NoError(t, err)

	assert.Equal(t, PersonView{FirstName: "keep", LastName: "bar"}, dst)
}

func TestMapWith_IgnoreUnknownField(t *testing.T) {
	src := Person{FirstName: "foo", LastName: "bar", Age: 1}
	dst := PersonView{}

	err := MapWith(src, &dst, func(c *Config[Person, PersonView]) {
		c.Ignore("LastNme", "Nickname")
	})
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "mapper.Person->mapper.PersonView", cfgErr.TypePair)
	require.Len(t, cfgErr.Errs, 2)
	require.ErrorIs(t, err, ErrUnknownField)

	var selErr *SelectorError
	require.ErrorAs(t, cfgErr.Errs[0], &selErr)
	assert.Equal(t, `"LastNme"`, selErr.Selector)
	assert.Equal(t, []string{"LastName", "FirstName"}, selErr.Suggestions)
	assert.Contains(t, err.Error(), `ignore "LastNme": no writable destination field (did you mean LastName, FirstName?)`)

	// Nothing is copied when the configuration is invalid
	assert.Equal(t, PersonView{}, dst)
}

func TestMapWith_InvalidSelector(t *testing.T) {
	tests := []struct {
		name     string
		selector func(d *PersonView) any
	}{
		{"nil selector", nil},
		{"not a pointer", func(d *PersonView) any { return d.FirstName }},
		{"nil pointer", func(d *PersonView) any { return (*string)(nil) }},
		{"whole struct", func(d *PersonView) any { return d }},
		{"foreign pointer", func(d *PersonView) any { return new(string) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := PersonView{}

			err := MapWith(Person{FirstName: "foo"}, &dst, func(c *Config[Person, PersonView]) {
				c.IgnoreField(tt.selector)
			})
			require.ErrorIs(t, err, ErrInvalidSelector)
			assert.Equal(t, PersonView{}, dst)
		})
	}
}

func TestMap_Flattening(t *testing.T) {
	src := Foo{Bar: Bar{Name: "dummy name"}}

	var dst Flattened
	require.NoError(t, Map(src, &dst))

	assert.Equal(t, "dummy name", dst.BarName)
}

func TestMap_FlatteningThroughPointer(t *testing.T) {
	t.Run("set pointer", func(t *testing.T) {
		var dst Flattened
		require.NoError(t, Map(FooRef{Bar: &Bar{Name: "dummy name"}}, &dst))
		assert.Equal(t, "dummy name", dst.BarName)
	})

	t.Run("nil pointer fails by default", func(t *testing.T) {
		dst := Flattened{BarName: "keep"}

		err := Map(FooRef{}, &dst)
		require.ErrorIs(t, err, ErrNilAssociation)

		var accErr *AccessorError
		require.ErrorAs(t, err, &accErr)
		assert.Equal(t, "BarName", accErr.Field)
		assert.Equal(t, "Bar", accErr.Path)
		assert.Equal(t, OpGet, accErr.Op)
		assert.Equal(t, "keep", dst.BarName)
	})

	t.Run("nil pointer skipped on request", func(t *testing.T) {
		m, err := New(WithNilAssociations(SkipNilAssociations))
		require.NoError(t, err)

		dst := Flattened{BarName: "keep"}
		require.NoError(t, MapContext[FooRef, Flattened](context.Background(), m, FooRef{}, &dst, nil))
		assert.Equal(t, "keep", dst.BarName)
	})
}

func TestMap_DirectBeatsAssociation(t *testing.T) {
	src := FooWithBoth{Bar: Bar{Name: "through association"}, BarName: "direct"}

	var dst Flattened
	require.NoError(t, Map(src, &dst))

	assert.Equal(t, "direct", dst.BarName)
}

func TestMap_UnmatchedFieldsKeepValue(t *testing.T) {
	dst := Flattened{BarName: "untouched"}
	require.NoError(t, Map(Person{FirstName: "foo"}, &dst))

	assert.Equal(t, "untouched", dst.BarName)
}

func TestMap_ReadOnlyProperties(t *testing.T) {
	t.Run("getter without setter is a valid source", func(t *testing.T) {
		src := PersonWithPrivateSetter{FirstName: "foo", lastName: "bar"}

		var dst PersonView
		require.NoError(t, Map(src, &dst))
		assert.Equal(t, PersonView{FirstName: "foo", LastName: "bar"}, dst)
	})

	t.Run("getter without setter is never written", func(t *testing.T) {
		dst := PersonWithPrivateSetter{lastName: "123"}
		require.NoError(t, Map(Person{FirstName: "foo", LastName: "bar"}, &dst))

		assert.Equal(t, "foo", dst.FirstName)
		assert.Equal(t, "123", dst.LastName())
	})
}

func TestMap_AccessorFailureAborts(t *testing.T) {
	dst := Strict{}

	err := Map(StrictSource{Name: "copied first", Value: -1}, &dst)
	require.ErrorIs(t, err, errRejected)

	var accErr *AccessorError
	require.ErrorAs(t, err, &accErr)
	assert.Equal(t, "Value", accErr.Field)
	assert.Equal(t, OpSet, accErr.Op)

	// Fields before the failure stay copied
	assert.Equal(t, "copied first", dst.Name)
	assert.Equal(t, 0, dst.Value())

	// Re-running after fixing the source starts over
	require.NoError(t, Map(StrictSource{Name: "again", Value: 3}, &dst))
	assert.Equal(t, "again", dst.Name)
	assert.Equal(t, 3, dst.Value())
}

func TestMap_InvalidArguments(t *testing.T) {
	var nilPerson *Person

	var nilView *PersonView

	tests := []struct {
		name    string
		run     func() error
		wantErr error
	}{
		{"nil destination", func() error { return Map(Person{}, nilView) }, ErrInvalidDestination},
		{"non-struct destination", func() error { return Map(Person{}, new(int)) }, ErrInvalidDestination},
		{"nil source pointer", func() error { return Map(nilPerson, &PersonView{}) }, ErrInvalidSource},
		{"non-struct source", func() error { return Map("foo", &PersonView{}) }, ErrInvalidSource},
		{"nil interface source", func() error { return Map[any](nil, &PersonView{}) }, ErrInvalidSource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.run(), tt.wantErr)
		})
	}
}

func TestMapper_Map(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	var dst PersonView
	require.NoError(t, m.Map(context.Background(), &Person{FirstName: "foo", Age: 3}, &dst))
	assert.Equal(t, PersonView{FirstName: "foo", Age: 3}, dst)

	require.ErrorIs(t, m.Map(context.Background(), Person{}, dst), ErrInvalidDestination)
}

func TestMap_Concurrent(t *testing.T) {
	const workers = 16

	results := make([]PersonView, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			src := Person{FirstName: "foo", Age: i}
			assert.NoError(t, Map(src, &results[i]))
		}()
	}

	wg.Wait()

	for i, r := range results {
		assert.Equal(t, PersonView{FirstName: "foo", Age: i}, r)
	}
}
