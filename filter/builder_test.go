package filter

import (
	"testing"

	"github.com/poiesic/sbasearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float(v float64) *float64 { return &v }

func TestBuildDefaults(t *testing.T) {
	filters, err := Build(&core.RunInput{})
	require.NoError(t, err)

	assert.Empty(t, filters.SearchProfiles.SearchTerm)
	assert.Equal(t, []core.Option{}, filters.Location.States)
	assert.Equal(t, []core.Option{}, filters.NAICS.Codes)
	assert.Equal(t, core.OperatorOr, filters.SBACertifications.OperatorType)
	assert.Equal(t, core.OperatorOr, filters.NAICS.OperatorType)
	assert.Equal(t, core.Option{Value: core.LastUpdatedAnytime, Label: "Anytime"}, filters.LastUpdated.Date)
	assert.False(t, filters.SAMStatus.IsActiveSAM)
	assert.Equal(t, core.RelationAtLeast, filters.BusinessSize.RelationOperator)
	assert.Equal(t, core.RelationAtLeast, filters.AnnualRevenue.RelationOperator)
	assert.Equal(t, 0, CountActive(filters))
}

func TestBuildStates(t *testing.T) {
	want := core.Option{Value: "CA - California", Label: "California (CA)"}

	t.Run("all spellings resolve to one canonical option", func(t *testing.T) {
		for _, spelling := range []string{"CA", "ca", "California", "california", "CA - California"} {
			filters, err := Build(&core.RunInput{
				States: []core.OptionInput{{Value: spelling}},
			})
			require.NoError(t, err, "spelling %q", spelling)
			require.Len(t, filters.Location.States, 1)
			assert.Equal(t, want, filters.Location.States[0], "spelling %q", spelling)
		}
	})

	t.Run("structured input resolves too", func(t *testing.T) {
		filters, err := Build(&core.RunInput{
			States: []core.OptionInput{{Value: "CA - California", Label: "California (CA)", FromObject: true}},
		})
		require.NoError(t, err)
		assert.Equal(t, []core.Option{want}, filters.Location.States)
	})

	t.Run("mixed spellings dedupe to one entry", func(t *testing.T) {
		filters, err := Build(&core.RunInput{
			States: []core.OptionInput{{Value: "CA"}, {Value: "California"}, {Value: "TX"}, {Value: "CA - California"}},
		})
		require.NoError(t, err)
		require.Len(t, filters.Location.States, 2)
		assert.Equal(t, "CA - California", filters.Location.States[0].Value)
		assert.Equal(t, "TX - Texas", filters.Location.States[1].Value)
	})

	t.Run("unknown state names the term", func(t *testing.T) {
		_, err := Build(&core.RunInput{States: []core.OptionInput{{Value: "ZZ"}}})
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrValidation)
		assert.ErrorIs(t, err, ErrUnknownState)
		assert.Contains(t, err.Error(), `"ZZ"`)
	})
}

func TestBuildSBACertifications(t *testing.T) {
	t.Run("value and label forms resolve alike", func(t *testing.T) {
		byValue, err := Build(&core.RunInput{
			SBACertifications: []core.OptionInput{{Value: "1,4"}},
		})
		require.NoError(t, err)

		byLabel, err := Build(&core.RunInput{
			SBACertifications: []core.OptionInput{{Value: "8(a) or 8(a) Joint Venture"}},
		})
		require.NoError(t, err)

		assert.Equal(t, byValue.SBACertifications.ActiveCerts, byLabel.SBACertifications.ActiveCerts)
	})

	t.Run("unknown certification fails in both shapes", func(t *testing.T) {
		_, err := Build(&core.RunInput{
			SBACertifications: []core.OptionInput{{Value: "Platinum"}},
		})
		assert.ErrorIs(t, err, ErrUnknownSBACertification)

		_, err = Build(&core.RunInput{
			SBACertifications: []core.OptionInput{{Value: "Platinum", Label: "Platinum", FromObject: true}},
		})
		assert.ErrorIs(t, err, ErrUnknownSBACertification)
	})

	t.Run("operator and previous-cert flags", func(t *testing.T) {
		prev := true
		filters, err := Build(&core.RunInput{
			SBACertifications:                []core.OptionInput{{Value: "3"}},
			SBACertificationsOperator:        core.OperatorAnd,
			SBACertificationsIncludePrevious: &prev,
		})
		require.NoError(t, err)
		assert.Equal(t, core.OperatorAnd, filters.SBACertifications.OperatorType)
		assert.True(t, filters.SBACertifications.IsPreviousCert)
	})
}

func TestBuildSelfCertifications(t *testing.T) {
	t.Run("cataloged entries canonicalize", func(t *testing.T) {
		filters, err := Build(&core.RunInput{
			SelfCertifications: []core.OptionInput{{Value: "Tribally Owned Firm"}},
		})
		require.NoError(t, err)
		require.Len(t, filters.SelfCertifications.Certifications, 1)
		assert.Equal(t, "Tribally Owned Small Business", filters.SelfCertifications.Certifications[0].Label)
	})

	t.Run("unknown entries pass through", func(t *testing.T) {
		filters, err := Build(&core.RunInput{
			SelfCertifications: []core.OptionInput{{Value: "Local Co-op"}},
		})
		require.NoError(t, err)
		assert.Equal(t, []core.Option{{Value: "Local Co-op", Label: "Local Co-op"}},
			filters.SelfCertifications.Certifications)
	})

	t.Run("structured unknown keeps its label", func(t *testing.T) {
		filters, err := Build(&core.RunInput{
			SelfCertifications: []core.OptionInput{{Value: "coop", Label: "Local Co-op", FromObject: true}},
		})
		require.NoError(t, err)
		assert.Equal(t, []core.Option{{Value: "coop", Label: "Local Co-op"}},
			filters.SelfCertifications.Certifications)
	})
}

func TestBuildNAICS(t *testing.T) {
	t.Run("code under either key", func(t *testing.T) {
		filters, err := Build(&core.RunInput{
			NAICSCodes: []core.OptionInput{
				{Value: "541511"},
				{Code: "236220", Label: "Commercial Building Construction", FromObject: true},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, []core.Option{
			{Value: "541511", Label: "541511"},
			{Value: "236220", Label: "Commercial Building Construction"},
		}, filters.NAICS.Codes)
	})

	t.Run("missing code", func(t *testing.T) {
		_, err := Build(&core.RunInput{
			NAICSCodes: []core.OptionInput{{Label: "nameless", FromObject: true}},
		})
		assert.ErrorIs(t, err, ErrMissingNAICSCode)
	})

	t.Run("duplicates collapse keeping first label", func(t *testing.T) {
		filters, err := Build(&core.RunInput{
			NAICSCodes: []core.OptionInput{
				{Code: "541511", Label: "Custom Computer Programming", FromObject: true},
				{Value: "541511"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, []core.Option{{Value: "541511", Label: "Custom Computer Programming"}},
			filters.NAICS.Codes)
	})
}

func TestBuildKeywords(t *testing.T) {
	filters, err := Build(&core.RunInput{
		Keywords:        []string{"solar", " solar ", "roofing"},
		KeywordOperator: core.OperatorAnd,
	})
	require.NoError(t, err)
	assert.Equal(t, []core.Option{
		{Value: "solar", Label: "solar"},
		{Value: "roofing", Label: "roofing"},
	}, filters.Keywords.List)
	assert.Equal(t, core.OperatorAnd, filters.Keywords.OperatorType)

	_, err = Build(&core.RunInput{Keywords: []string{"  "}})
	assert.ErrorIs(t, err, ErrEmptyKeyword)
}

func TestBuildLastUpdated(t *testing.T) {
	t.Run("preset", func(t *testing.T) {
		filters, err := Build(&core.RunInput{LastUpdated: core.LastUpdatedPast6Months})
		require.NoError(t, err)
		assert.Equal(t, core.Option{Value: "past-6-months", Label: "Within the past 6 months"},
			filters.LastUpdated.Date)
	})

	t.Run("unknown preset", func(t *testing.T) {
		_, err := Build(&core.RunInput{LastUpdated: "last-week"})
		assert.ErrorIs(t, err, ErrUnknownLastUpdated)
	})

	t.Run("custom range encodes both bounds", func(t *testing.T) {
		filters, err := Build(&core.RunInput{
			LastUpdated:     core.LastUpdatedCustom,
			CustomDateRange: &core.DateRange{From: "2024-01-01", To: "2024-06-30"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Custom", filters.LastUpdated.Date.Label)
		assert.Equal(t, "2024-01-01T00:00:00.000Z-2024-06-30T00:00:00.000Z",
			filters.LastUpdated.Date.Value)
	})

	t.Run("custom without range fails", func(t *testing.T) {
		_, err := Build(&core.RunInput{LastUpdated: core.LastUpdatedCustom})
		assert.ErrorIs(t, err, ErrCustomRangeRequired)
	})

	t.Run("reversed bounds fail", func(t *testing.T) {
		_, err := Build(&core.RunInput{
			LastUpdated:     core.LastUpdatedCustom,
			CustomDateRange: &core.DateRange{From: "2024-06-30", To: "2024-01-01"},
		})
		assert.ErrorIs(t, err, ErrCustomRangeOrder)
	})

	t.Run("equal bounds succeed", func(t *testing.T) {
		_, err := Build(&core.RunInput{
			LastUpdated:     core.LastUpdatedCustom,
			CustomDateRange: &core.DateRange{From: "2024-01-01", To: "2024-01-01"},
		})
		assert.NoError(t, err)
	})

	t.Run("unparseable bound fails", func(t *testing.T) {
		_, err := Build(&core.RunInput{
			LastUpdated:     core.LastUpdatedCustom,
			CustomDateRange: &core.DateRange{From: "soon", To: "2024-01-01"},
		})
		assert.ErrorIs(t, err, ErrInvalidCustomRange)
	})
}

func TestBuildNumericFacets(t *testing.T) {
	filters, err := Build(&core.RunInput{
		BondingLevels: &core.BondingInput{
			ConstructionIndividual: float(500000),
			ServiceAggregate:       float(1250000.5),
		},
		BusinessSize: &core.BusinessSizeInput{
			Relation:          core.RelationNoMore,
			NumberOfEmployees: float(50),
		},
		AnnualRevenue: &core.RevenueInput{
			AnnualGrossRevenue: float(2000000),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "500000", filters.BondingLevels.ConstructionIndividual)
	assert.Equal(t, "1250000.5", filters.BondingLevels.ServiceAggregate)
	assert.Empty(t, filters.BondingLevels.ConstructionAggregate)
	assert.Equal(t, core.RelationNoMore, filters.BusinessSize.RelationOperator)
	assert.Equal(t, "50", filters.BusinessSize.NumberOfEmployees)
	assert.Equal(t, core.RelationAtLeast, filters.AnnualRevenue.RelationOperator)
	assert.Equal(t, "2000000", filters.AnnualRevenue.AnnualGrossRevenue)
}

func TestBuildIdempotent(t *testing.T) {
	in := &core.RunInput{
		SearchTerm: "roofing",
		States:     []core.OptionInput{{Value: "CA"}, {Value: "California"}},
		ZipCodes:   []core.OptionInput{{Value: "90210"}},
	}

	first, err := Build(in)
	require.NoError(t, err)
	second, err := Build(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, first.Location.States, 1)
	assert.Equal(t, []core.Option{{Value: "90210", Label: "90210"}}, first.Location.ZipCodes)
}
