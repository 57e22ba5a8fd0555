package enumtype

// Shared fixtures for this package's tests. The entry sets deliberately
// exercise values beyond 32-bit range, negative values, non-ASCII keys
// and values, and textual values that are empty, whitespace-only, or
// full of quote characters.

const bigValue = int64(2147483657) // Integer.MAX_VALUE + 10

func moodDef() *Definition {
	return MustDefinition("test.enum.Mood", KindIntegral, []Entry{
		{Key: "HAPPY", Value: IntegralRaw(0)},
		{Key: "SAD", Value: IntegralRaw(1)},
		{Key: "MELLOW", Value: IntegralRaw(bigValue)},
		{Key: "curious", Value: IntegralRaw(-2)},
	})
}

func countryDef() *Definition {
	return MustDefinition("test.enum.Country", KindTextual, []Entry{
		{Key: "US", Value: TextualRaw("United States")},
		{Key: "BAHAMAS", Value: TextualRaw("The Bahamas")},
		{Key: "FRANCE", Value: TextualRaw("France")},
		{Key: "CHINA", Value: TextualRaw("中国")},
		{Key: "भारत", Value: TextualRaw("India")},
	})
}

func quotedDef() *Definition {
	return MustDefinition("TestEnum", KindTextual, []Entry{
		{Key: "TEST", Value: TextualRaw(`"}"`)},
		{Key: "TEST2", Value: TextualRaw("")},
		{Key: "TEST3", Value: TextualRaw(" ")},
		{Key: "TEST4", Value: TextualRaw(`)))""`)},
	})
}

func longDef() *Definition {
	return MustDefinition("TestLongEnum", KindIntegral, []Entry{
		{Key: "TEST", Value: IntegralRaw(6)},
		{Key: "TEST2", Value: IntegralRaw(8)},
	})
}
