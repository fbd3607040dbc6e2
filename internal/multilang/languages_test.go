package multilang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierFor(t *testing.T) {
	tests := map[int]CoverageTier{
		100: CoverageHigh,
		90:  CoverageHigh,
		89:  CoverageMedium,
		75:  CoverageMedium,
		74:  CoverageLow,
		0:   CoverageLow,
	}
	for coverage, want := range tests {
		assert.Equal(t, want, TierFor(coverage), "coverage %d", coverage)
	}
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	require.Len(t, langs, 8)

	codes := make([]string, 0, len(langs))
	for _, l := range langs {
		codes = append(codes, l.Code)
		assert.Equal(t, TierFor(l.Coverage), l.Tier)
		assert.NotEmpty(t, l.Countries)
	}
	assert.Equal(t, []string{"en", "ar", "fr", "de", "zh", "ja", "hi", "ru"}, codes)

	// callers get their own copy
	langs[0].Countries[0] = "XX"
	assert.Equal(t, "US", Languages()[0].Countries[0])
}

func TestLookup(t *testing.T) {
	l, err := Lookup("ja")
	require.NoError(t, err)
	assert.Equal(t, "日本語", l.NativeName)
	assert.Equal(t, CoverageMedium, l.Tier)
	assert.Equal(t, 3200, l.LegalDocs)

	_, err = Lookup("xx")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestSampleFor(t *testing.T) {
	assert.Equal(t, "Avis d'infraction routière", SampleFor("fr").Title)
	assert.Equal(t, "ar", SampleFor("ar").Language)

	fallback := SampleFor("de")
	assert.Equal(t, "en", fallback.Language)
	assert.Equal(t, "Traffic Violation Notice", fallback.Title)
	assert.Equal(t, fallback, SampleFor(""))
}
