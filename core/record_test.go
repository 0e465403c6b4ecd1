package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransform(t *testing.T) {
	t.Run("maps raw fields", func(t *testing.T) {
		result := RawResult{
			"entity_detail_id":    float64(42),
			"uei":                 "ABC123DEF456",
			"cage_code":           "1AB23",
			"legal_business_name": "Acme Roofing LLC",
			"contact_person":      "Jane Doe",
			"display_phone":       "555-0100",
			"city":                "Austin",
			"state":               "TX",
			"naics_all_codes":     []any{"236220", "541511"},
			"certs":               []any{"8(a)"},
			"last_update_date":    float64(1700000000),
			"_rankingScore":       0.93,
		}

		rec := Transform(result, nil)

		assert.Equal(t, float64(42), rec.EntityDetailID)
		assert.Equal(t, "ABC123DEF456", rec.UEI)
		assert.Equal(t, "1AB23", rec.CageCode)
		assert.Equal(t, "Acme Roofing LLC", rec.BusinessName)
		assert.Equal(t, "Jane Doe", rec.Contact.Name)
		assert.Equal(t, "555-0100", rec.Contact.Phone)
		assert.Equal(t, "Austin", rec.Location.City)
		assert.Equal(t, []any{"236220", "541511"}, rec.NAICSAllCodes)
		assert.Equal(t, []any{"8(a)"}, rec.SBACertifications)
		assert.Equal(t, float64(1700000000), rec.LastUpdateDateUnix)
		require.NotNil(t, rec.LastUpdateDateISO)
		assert.Equal(t, "2023-11-14T22:13:20.000Z", *rec.LastUpdateDateISO)
		assert.Equal(t, 0.93, rec.RankingScore)
		assert.Equal(t, result, rec.Raw)
	})

	t.Run("display fields take precedence over bare ones", func(t *testing.T) {
		rec := Transform(RawResult{
			"display_email": "sales@acme.example",
			"email":         "old@acme.example",
		}, nil)
		assert.Equal(t, "sales@acme.example", rec.Contact.Email)

		rec = Transform(RawResult{"email": "old@acme.example"}, nil)
		assert.Equal(t, "old@acme.example", rec.Contact.Email)
	})

	t.Run("missing fields degrade to nil and empty lists", func(t *testing.T) {
		rec := Transform(RawResult{}, nil)

		assert.Nil(t, rec.UEI)
		assert.Nil(t, rec.BusinessName)
		assert.Nil(t, rec.LastUpdateDateISO)
		assert.Equal(t, []any{}, rec.NAICSAllCodes)
		assert.Equal(t, []any{}, rec.SBACertifications)
		assert.Equal(t, []any{}, rec.QualityAssuranceStandards)
	})

	t.Run("non-array list field degrades to empty list", func(t *testing.T) {
		rec := Transform(RawResult{"certs": "8(a)"}, nil)
		assert.Equal(t, []any{}, rec.SBACertifications)
	})

	t.Run("explicit nulls are treated as absent", func(t *testing.T) {
		rec := Transform(RawResult{"uei": nil, "display_phone": nil, "phone": "555-0100"}, nil)
		assert.Nil(t, rec.UEI)
		assert.Equal(t, "555-0100", rec.Contact.Phone)
	})

	t.Run("attaches a fetched profile", func(t *testing.T) {
		detail := ProfileOf(map[string]any{"naics": []any{"541511"}})
		rec := Transform(RawResult{"uei": "U1"}, &detail)

		assert.Equal(t, map[string]any{"naics": []any{"541511"}}, rec.Profile)
		assert.Nil(t, rec.ProfileError)
	})

	t.Run("attaches a profile failure", func(t *testing.T) {
		detail := ProfileFailure("Missing UEI or CAGE code")
		rec := Transform(RawResult{}, &detail)

		assert.Nil(t, rec.Profile)
		require.NotNil(t, rec.ProfileError)
		assert.Equal(t, "Missing UEI or CAGE code", *rec.ProfileError)
	})

	t.Run("without enrichment both profile fields stay nil", func(t *testing.T) {
		rec := Transform(RawResult{"uei": "U1"}, nil)
		assert.Nil(t, rec.Profile)
		assert.Nil(t, rec.ProfileError)
	})
}

func TestTransformJSONShape(t *testing.T) {
	rec := Transform(RawResult{"uei": "U1"}, nil)
	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{
		"entityDetailId", "uei", "cageCode", "businessName", "contact",
		"location", "naicsAllCodes", "sbaCertifications", "bondingLevels",
		"exporter", "lastUpdateDateUnix", "lastUpdateDateIso", "rankingScore",
		"profile", "profileError", "raw",
	} {
		_, ok := decoded[key]
		assert.True(t, ok, "missing key %s", key)
	}
	// Absent lists serialize as empty arrays, not null.
	assert.Equal(t, []any{}, decoded["naicsAllCodes"])
}

func TestEpochToISO(t *testing.T) {
	t.Run("seconds to millisecond precision", func(t *testing.T) {
		iso := EpochToISO(float64(1700000000))
		require.NotNil(t, iso)
		assert.Equal(t, "2023-11-14T22:13:20.000Z", *iso)
	})

	t.Run("fractional seconds", func(t *testing.T) {
		iso := EpochToISO(1700000000.5)
		require.NotNil(t, iso)
		assert.Equal(t, "2023-11-14T22:13:20.500Z", *iso)
	})

	t.Run("numeric string", func(t *testing.T) {
		iso := EpochToISO("1700000000")
		require.NotNil(t, iso)
		assert.Equal(t, "2023-11-14T22:13:20.000Z", *iso)
	})

	t.Run("json number", func(t *testing.T) {
		iso := EpochToISO(json.Number("1700000000"))
		require.NotNil(t, iso)
	})

	t.Run("unparseable values map to nil", func(t *testing.T) {
		assert.Nil(t, EpochToISO(nil))
		assert.Nil(t, EpochToISO("not-a-number"))
		assert.Nil(t, EpochToISO(float64(0)))
		assert.Nil(t, EpochToISO(float64(-1)))
		assert.Nil(t, EpochToISO([]any{}))
	})
}

func TestIdentifiers(t *testing.T) {
	uei, cage := RawResult{"uei": "U1", "cage_code": "C1"}.Identifiers()
	assert.Equal(t, "U1", uei)
	assert.Equal(t, "C1", cage)

	uei, cage = RawResult{"uei": float64(5)}.Identifiers()
	assert.Empty(t, uei)
	assert.Empty(t, cage)
}
