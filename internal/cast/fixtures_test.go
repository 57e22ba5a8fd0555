package cast

import "github.com/enumeral/enumeral/internal/enumtype"

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
	})
}

func quotedDef() *enumtype.Definition {
	return enumtype.MustDefinition("TestEnum", enumtype.KindTextual, []enumtype.Entry{
		{Key: "TEST", Value: enumtype.TextualRaw(`"}"`)},
		{Key: "TEST2", Value: enumtype.TextualRaw("")},
		{Key: "TEST3", Value: enumtype.TextualRaw(" ")},
	})
}

func longDef() *enumtype.Definition {
	return enumtype.MustDefinition("TestLongEnum", enumtype.KindIntegral, []enumtype.Entry{
		{Key: "TEST", Value: enumtype.IntegralRaw(6)},
		{Key: "TEST2", Value: enumtype.IntegralRaw(8)},
	})
}
