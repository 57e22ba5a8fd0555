package operator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/enumeral/enumeral/internal/enumtype"
)

const bigValue = int64(2147483657)

func moodDef() *enumtype.Definition {
	return enumtype.MustDefinition("test.enum.Mood", enumtype.KindIntegral, []enumtype.Entry{
		{Key: "HAPPY", Value: enumtype.IntegralRaw(0)},
		{Key: "SAD", Value: enumtype.IntegralRaw(1)},
		{Key: "MELLOW", Value: enumtype.IntegralRaw(bigValue)},
		{Key: "curious", Value: enumtype.IntegralRaw(-2)},
	})
}

func countryDef() *enumtype.Definition {
	return enumtype.MustDefinition("test.enum.Country", enumtype.KindTextual, []enumtype.Entry{
		{Key: "US", Value: enumtype.TextualRaw("United States")},
		{Key: "BAHAMAS", Value: enumtype.TextualRaw("The Bahamas")},
		{Key: "FRANCE", Value: enumtype.TextualRaw("France")},
		{Key: "CHINA", Value: enumtype.TextualRaw("中国")},
		{Key: "भारत", Value: enumtype.TextualRaw("India")},
	})
}

func val(t *testing.T, def *enumtype.Definition, key string) enumtype.Value {
	t.Helper()
	v, err := def.Value(key)
	require.NoError(t, err)
	return v
}
