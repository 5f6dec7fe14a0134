package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)


func TestValidate(t *testing.T) {
	t.Run("valid profile", func(t *testing.T) {
		f := &File{
			Version: "1",
			Mappings: []Mapping{
				{Source: "store.Order", Target: "warehouse.Order", Ignore: StringOrArray{"Currency"}},
			},
		}

		res := Validate(f)
		assert.True(t, res.IsValid())
		assert.Empty(t, res.Warnings)
		assert.NoError(t, res.Error())
	})

	t.Run("nil profile", func(t *testing.T) {
		res := Validate(nil)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "profile_is_nil", res.Errors[0].Code)
	})

	t.Run("structural errors", func(t *testing.T) {
		f := &File{
			Version: "2",
			Mappings: []Mapping{
				{Source: "", Target: "warehouse.Order"},
				{Source: "store.Order", Target: ""},
				{Source: "store.Order", Target: "warehouse.Order", Ignore: StringOrArray{""}},
			},
		}

		res := Validate(f)
		require.False(t, res.IsValid())

		var got []string
		for _, d := range res.Errors {
			got = append(got, d.Code)
		}

		assert.Equal(t, []string{"unsupported_version", "missing_source", "missing_target", "empty_ignore"}, got)
		assert.Contains(t, res.Error().Error(), "[store.Order->warehouse.Order]")
	})

	t.Run("duplicates are warnings", func(t *testing.T) {
		f := &File{
			Version: "1",
			Mappings: []Mapping{
				{Source: "store.Order", Target: "warehouse.Order", Ignore: StringOrArray{"Currency", "Currency"}},
				{Source: "store.Order", Target: "warehouse.Order"},
			},
		}

		res := Validate(f)
		assert.True(t, res.IsValid())
		require.Len(t, res.Warnings, 2)
		assert.Equal(t, "duplicate_ignore", res.Warnings[0].Code)
		assert.Equal(t, "Currency", res.Warnings[0].FieldPath)
		assert.Equal(t, "duplicate_mapping", res.Warnings[1].Code)
	})
}
