package enumtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefinitionValidation(t *testing.T) {
	tests := []struct {
		name    string
		typName string
		kind    Kind
		entries []Entry
		wantErr string
	}{
		{
			name:    "empty_name",
			typName: "",
			kind:    KindIntegral,
			entries: []Entry{{Key: "A", Value: IntegralRaw(1)}},
			wantErr: "name must not be empty",
		},
		{
			name:    "no_entries",
			typName: "test.Empty",
			kind:    KindIntegral,
			entries: nil,
			wantErr: "at least one entry",
		},
		{
			name:    "empty_key",
			typName: "test.BadKey",
			kind:    KindIntegral,
			entries: []Entry{{Key: "", Value: IntegralRaw(1)}},
			wantErr: "empty key",
		},
		{
			name:    "kind_mismatch",
			typName: "test.Mismatch",
			kind:    KindIntegral,
			entries: []Entry{{Key: "A", Value: TextualRaw("a")}},
			wantErr: "textual value in integral enum",
		},
		{
			name:    "case_colliding_keys",
			typName: "test.Collide",
			kind:    KindIntegral,
			entries: []Entry{
				{Key: "HAPPY", Value: IntegralRaw(0)},
				{Key: "happy", Value: IntegralRaw(1)},
			},
			wantErr: "collide case-insensitively",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDefinition(tt.typName, tt.kind, tt.entries)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefinitionDuplicateValuesAllowed(t *testing.T) {
	def, err := NewDefinition("test.Dup", KindIntegral, []Entry{
		{Key: "FIRST", Value: IntegralRaw(7)},
		{Key: "SECOND", Value: IntegralRaw(7)},
	})
	require.NoError(t, err)

	// Definition order breaks the tie.
	e, ok := def.EntryForValue(IntegralRaw(7))
	require.True(t, ok)
	assert.Equal(t, "FIRST", e.Key)
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	mood := moodDef()
	for _, key := range []string{"curious", "CURIOUS", "Curious", "cUrIoUs"} {
		e, ok := mood.Lookup(key)
		require.True(t, ok, "key %q should resolve", key)
		assert.Equal(t, int64(-2), e.Value.Int64())
	}

	_, ok := mood.Lookup("HELLO")
	assert.False(t, ok)
}

func TestLookupNonASCIIKey(t *testing.T) {
	country := countryDef()
	e, ok := country.Lookup("भारत")
	require.True(t, ok)
	assert.Equal(t, "India", e.Value.Text())
}

func TestDefinitionValueUnknownKeyMessage(t *testing.T) {
	mood := moodDef()
	_, err := mood.Value("hello")
	require.Error(t, err)
	assert.EqualError(t, err, "No key 'HELLO' in enum 'test.enum.Mood'")
	assert.True(t, IsUnknownKey(err))
}

func TestValueForRawUnknownValueMessage(t *testing.T) {
	mood := moodDef()
	_, err := mood.ValueForRaw(IntegralRaw(7))
	require.Error(t, err)
	assert.EqualError(t, err, "No value '7' in enum 'test.enum.Mood'")
	assert.True(t, IsUnknownValue(err))
}

func TestTextualValuesPreservedExactly(t *testing.T) {
	q := quotedDef()

	tests := []struct {
		key   string
		value string
	}{
		{"TEST", `"}"`},
		{"TEST2", ""},
		{"TEST3", " "},
		{"TEST4", `)))""`},
	}
	for _, tt := range tests {
		e, ok := q.Lookup(tt.key)
		require.True(t, ok)
		assert.Equal(t, tt.value, e.Value.Text())
	}
}
