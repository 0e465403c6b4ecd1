package core

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

const isoMillis = "2006-01-02T15:04:05.000Z"

// Contact is the flattened contact sub-record of an output record.
type Contact struct {
	Name  any `json:"name"`
	Phone any `json:"phone"`
	Email any `json:"email"`
	Fax   any `json:"fax"`
}

// Address is the flattened location sub-record of an output record.
type Address struct {
	Address1              any `json:"address1"`
	Address2              any `json:"address2"`
	City                  any `json:"city"`
	State                 any `json:"state"`
	Zipcode               any `json:"zipcode"`
	County                any `json:"county"`
	CountyCode            any `json:"countyCode"`
	FIPSCode              any `json:"fipsCode"`
	CongressionalDistrict any `json:"congressionalDistrict"`
	MSA                   any `json:"msa"`
}

// Bonding is the flattened bonding-level sub-record of an output record.
type Bonding struct {
	ConstructionPerContract any `json:"constructionPerContract"`
	ConstructionAggregate   any `json:"constructionAggregate"`
	ServicePerContract      any `json:"servicePerContract"`
	ServiceAggregate        any `json:"serviceAggregate"`
}

// Exporter is the flattened exporter-status sub-record of an output record.
type Exporter struct {
	Status               any `json:"status"`
	Activities           any `json:"activities"`
	ExportTo             any `json:"exportTo"`
	DesiredRelationships any `json:"desiredRelationships"`
	Objective            any `json:"objective"`
}

// OutputRecord is the canonical flattened representation of one search hit
// plus its optional enrichment profile.
type OutputRecord struct {
	EntityDetailID            any       `json:"entityDetailId"`
	UEI                       any       `json:"uei"`
	CageCode                  any       `json:"cageCode"`
	BusinessName              any       `json:"businessName"`
	DBAName                   any       `json:"dbaName"`
	SAMExtractCode            any       `json:"samExtractCode"`
	Contact                   Contact   `json:"contact"`
	Location                  Address   `json:"location"`
	Website                   any       `json:"website"`
	AdditionalWebsite         any       `json:"additionalWebsite"`
	CapabilitiesNarrative     any       `json:"capabilitiesNarrative"`
	CapabilitiesLink          any       `json:"capabilitiesLink"`
	NAICSPrimary              any       `json:"naicsPrimary"`
	NAICSAllCodes             []any     `json:"naicsAllCodes"`
	NAICSSmallCodes           []any     `json:"naicsSmallCodes"`
	NAICSExceptionCodes       []any     `json:"naicsExceptionCodes"`
	SBACertifications         []any     `json:"sbaCertifications"`
	SelfCertifications        []any     `json:"selfCertifications"`
	QualityAssuranceStandards []any     `json:"qualityAssuranceStandards"`
	BondingLevels             Bonding   `json:"bondingLevels"`
	Exporter                  Exporter  `json:"exporter"`
	BusinessSize              any       `json:"businessSize"`
	AnnualRevenue             any       `json:"annualRevenue"`
	YearEstablished           any       `json:"yearEstablished"`
	LastUpdateDateUnix        any       `json:"lastUpdateDateUnix"`
	LastUpdateDateISO         *string   `json:"lastUpdateDateIso"`
	RankingScore              any       `json:"rankingScore"`
	Profile                   any       `json:"profile"`
	ProfileError              *string   `json:"profileError"`
	Raw                       RawResult `json:"raw"`
}

// Transform maps one raw search hit and its optional profile detail into the
// canonical output record. It is total: absent or malformed fields degrade to
// nil (or an empty list) rather than failing.
func Transform(result RawResult, detail *ProfileDetail) *OutputRecord {
	rec := &OutputRecord{
		EntityDetailID: fieldOf(result, "entity_detail_id"),
		UEI:            fieldOf(result, "uei"),
		CageCode:       fieldOf(result, "cage_code"),
		BusinessName:   fieldOf(result, "legal_business_name"),
		DBAName:        fieldOf(result, "dba_name"),
		SAMExtractCode: fieldOf(result, "sam_extract_code"),
		Contact: Contact{
			Name:  fieldOf(result, "contact_person"),
			Phone: fieldOf(result, "display_phone", "phone"),
			Email: fieldOf(result, "display_email", "email"),
			Fax:   fieldOf(result, "display_fax", "fax"),
		},
		Location: Address{
			Address1:              fieldOf(result, "address_1"),
			Address2:              fieldOf(result, "address_2"),
			City:                  fieldOf(result, "city"),
			State:                 fieldOf(result, "state"),
			Zipcode:               fieldOf(result, "zipcode"),
			County:                fieldOf(result, "county"),
			CountyCode:            fieldOf(result, "county_code"),
			FIPSCode:              fieldOf(result, "fips_code"),
			CongressionalDistrict: fieldOf(result, "congressional_district"),
			MSA:                   fieldOf(result, "msa"),
		},
		Website:                   fieldOf(result, "website"),
		AdditionalWebsite:         fieldOf(result, "additional_website"),
		CapabilitiesNarrative:     fieldOf(result, "capabilities_narrative"),
		CapabilitiesLink:          fieldOf(result, "capabilities_link"),
		NAICSPrimary:              fieldOf(result, "naics_primary"),
		NAICSAllCodes:             listOf(result, "naics_all_codes"),
		NAICSSmallCodes:           listOf(result, "naics_small_codes"),
		NAICSExceptionCodes:       listOf(result, "naics_exception_codes"),
		SBACertifications:         listOf(result, "certs"),
		SelfCertifications:        listOf(result, "meili_self_certifications"),
		QualityAssuranceStandards: listOf(result, "qas_standards"),
		BondingLevels: Bonding{
			ConstructionPerContract: fieldOf(result, "construction_bonding_per_contract"),
			ConstructionAggregate:   fieldOf(result, "construction_bonding_aggregate"),
			ServicePerContract:      fieldOf(result, "service_bonding_contract"),
			ServiceAggregate:        fieldOf(result, "service_bonding_aggregate"),
		},
		Exporter: Exporter{
			Status:               fieldOf(result, "exporter_status"),
			Activities:           fieldOf(result, "export_business_activities"),
			ExportTo:             fieldOf(result, "export_to"),
			DesiredRelationships: fieldOf(result, "desired_export_relationships"),
			Objective:            fieldOf(result, "export_objective"),
		},
		BusinessSize:       fieldOf(result, "business_size"),
		AnnualRevenue:      fieldOf(result, "annual_revenue"),
		YearEstablished:    fieldOf(result, "year_established"),
		LastUpdateDateUnix: fieldOf(result, "last_update_date"),
		LastUpdateDateISO:  EpochToISO(fieldOf(result, "last_update_date")),
		RankingScore:       fieldOf(result, "_rankingScore"),
		Raw:                result,
	}

	if detail != nil {
		rec.Profile = detail.Profile
		rec.ProfileError = detail.Error
	}
	return rec
}

// fieldOf returns the first present, non-nil value among keys.
func fieldOf(result RawResult, keys ...string) any {
	for _, key := range keys {
		if v, ok := result[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

// listOf returns the array stored under key, or an empty list when the key
// is absent or holds a non-array value.
func listOf(result RawResult, key string) []any {
	if v, ok := result[key]; ok {
		if arr, ok := v.([]any); ok {
			return arr
		}
	}
	return []any{}
}

// EpochToISO converts an epoch-seconds value into an RFC 3339 UTC string with
// millisecond precision. Missing, unparseable, non-finite or non-positive
// values map to nil.
func EpochToISO(v any) *string {
	var num float64
	switch t := v.(type) {
	case nil:
		return nil
	case float64:
		num = t
	case float32:
		num = float64(t)
	case int:
		num = float64(t)
	case int64:
		num = float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil
		}
		num = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil
		}
		num = f
	default:
		return nil
	}

	if math.IsNaN(num) || math.IsInf(num, 0) || num <= 0 {
		return nil
	}

	iso := time.UnixMilli(int64(math.Round(num * 1000))).UTC().Format(isoMillis)
	return &iso
}
