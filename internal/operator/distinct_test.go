package operator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enumeral/enumeral/internal/enumtype"
)

func TestDistinctPreservesFirstOccurrenceOrder(t *testing.T) {
	country := countryDef()

	// ARRAY_AGG(DISTINCT b) over [us, china, CHINA]: dedupe by
	// underlying value, keep first-occurrence order, never sort.
	in := []enumtype.Value{
		val(t, country, "us"),
		val(t, country, "china"),
		val(t, country, "CHINA"),
	}
	out, err := Distinct(in)
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, "United States", out[0].Raw().Text())
	assert.Equal(t, "中国", out[1].Raw().Text())
}

func TestDistinctIntegral(t *testing.T) {
	mood := moodDef()

	in := []enumtype.Value{
		val(t, mood, "happy"),
		val(t, mood, "sad"),
		val(t, mood, "sad"),
		val(t, mood, "happy"),
	}
	out, err := Distinct(in)
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, int64(0), out[0].Raw().Int64())
	assert.Equal(t, int64(1), out[1].Raw().Int64())
}

func TestDistinctDuplicateValuesUnderDifferentKeys(t *testing.T) {
	dup := enumtype.MustDefinition("test.Dup", enumtype.KindIntegral, []enumtype.Entry{
		{Key: "FIRST", Value: enumtype.IntegralRaw(7)},
		{Key: "SECOND", Value: enumtype.IntegralRaw(7)},
	})

	first, err := dup.Value("FIRST")
	require.NoError(t, err)
	second, err := dup.Value("SECOND")
	require.NoError(t, err)

	out, err := Distinct([]enumtype.Value{first, second})
	require.NoError(t, err)
	assert.Len(t, out, 1, "distinctness depends on raw, not the producing key")
}

func TestDistinctEmpty(t *testing.T) {
	out, err := Distinct(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDistinctRejectsMixedTypes(t *testing.T) {
	_, err := Distinct([]enumtype.Value{
		val(t, moodDef(), "HAPPY"),
		val(t, countryDef(), "US"),
	})
	require.Error(t, err)
	assert.True(t, IsOperandTypeError(err))
}

func TestArgSortStable(t *testing.T) {
	mood := moodDef()

	// (happy,1) (happy,3) (sad,5): ordering by the enum keeps the two
	// happy rows in input order.
	vals := []enumtype.Value{
		val(t, mood, "sad"),
		val(t, mood, "happy"),
		val(t, mood, "happy"),
	}
	perm, err := ArgSortStable(vals)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, perm)
}

func TestArgSortStableTextual(t *testing.T) {
	country := countryDef()

	vals := []enumtype.Value{
		val(t, country, "CHINA"),   // 中国
		val(t, country, "US"),      // United States
		val(t, country, "BAHAMAS"), // The Bahamas
	}
	perm, err := ArgSortStable(vals)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, perm)
}

func TestArgSortStableRejectsMixedTypes(t *testing.T) {
	_, err := ArgSortStable([]enumtype.Value{
		val(t, moodDef(), "HAPPY"),
		val(t, countryDef(), "US"),
	})
	require.Error(t, err)
	assert.True(t, IsOperandTypeError(err))
}
