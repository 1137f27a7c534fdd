package mapreg_test

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/dklassen/mapreg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTypedEntry(t *testing.T) {
	entry, err := mapreg.NewTypedEntry("String", "Int", strconv.Atoi)
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   any
		want    any
		wantErr string
	}{
		{
			name:  "should convert matching input",
			input: "42",
			want:  42,
		},
		{
			name:    "should fail on wrong input type",
			input:   42,
			wantErr: "mapping failed from String to Int: invalid source type: expected string, got int",
		},
		{
			name:    "should surface the function's error",
			input:   "forty-two",
			wantErr: `mapping failed from String to Int: strconv.Atoi: parsing "forty-two": invalid syntax`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := entry.Apply(tt.input)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.ErrorIs(t, err, mapreg.ErrMappingExecution)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTypedMismatchNamesInterfaceTypes(t *testing.T) {
	entry, err := mapreg.NewTypedEntry("Stringer", "Text", func(s fmt.Stringer) (string, error) {
		return s.String(), nil
	})
	require.NoError(t, err)

	_, err = entry.Apply(42)
	assert.EqualError(t, err, "mapping failed from Stringer to Text: invalid source type: expected fmt.Stringer, got int")

	reg := mapreg.NewRegistry()
	require.NoError(t, reg.Register(mapreg.MustEntry("Int", "Any", func(v any) (any, error) { return v, nil })))
	_, err = mapreg.MapAs[fmt.Stringer](reg, 1, "Int", "Any")
	assert.EqualError(t, err, "final type mismatch: expected fmt.Stringer, got int")
}

func TestNewTypedEntryNilFunc(t *testing.T) {
	_, err := mapreg.NewTypedEntry[string, int]("String", "Int", nil)
	assert.ErrorIs(t, err, mapreg.ErrTransformRequired)
}

func TestMapAs(t *testing.T) {
	reg := mapreg.NewRegistry()
	entry, err := mapreg.NewTypedEntry("String", "Int", strconv.Atoi)
	require.NoError(t, err)
	require.NoError(t, reg.Register(entry))

	got, err := mapreg.MapAs[int](reg, "7", "String", "Int")
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	_, err = mapreg.MapAs[string](reg, "7", "String", "Int")
	assert.EqualError(t, err, "final type mismatch: expected string, got int")

	_, err = mapreg.MapAs[int](reg, "7", "Int", "String")
	assert.True(t, errors.Is(err, mapreg.ErrMappingNotFound))

	_, err = mapreg.MapAs[int](nil, "7", "String", "Int")
	assert.ErrorIs(t, err, mapreg.ErrRegistryNil)
}

func TestMapAsWithMapperFunc(t *testing.T) {
	calls := 0
	mapper := mapreg.MapperFunc(func(data any, source, target mapreg.TypeID) (any, error) {
		calls++
		return string(source) + ":" + string(target) + ":" + data.(string), nil
	})

	got, err := mapreg.MapAs[string](mapper, "x", "A", "B")
	require.NoError(t, err)
	assert.Equal(t, "A:B:x", got)
	assert.Equal(t, 1, calls)
}
