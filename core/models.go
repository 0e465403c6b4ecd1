package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a 64-bit identifier derived from record content.
type ID uint64

// IDFromContent generates a deterministic ID by hashing the given text.
// Used for fingerprinting exported records by their entity identifiers.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Option is a canonical {value,label} filter entry as the search API expects it.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Operator combines multiple entries of one filter facet.
type Operator string

const (
	OperatorOr  Operator = "Or"
	OperatorAnd Operator = "And"
)

// Relation compares a numeric facet against its threshold.
type Relation string

const (
	RelationAtLeast Relation = "at-least"
	RelationNoMore  Relation = "no-more"
)

// Last-updated preset names accepted by the search API.
const (
	LastUpdatedAnytime     = "anytime"
	LastUpdatedPast3Months = "past-3-months"
	LastUpdatedPast6Months = "past-6-months"
	LastUpdatedPastYear    = "past-year"
	LastUpdatedCustom      = "custom"
)

// Filters is the canonical filter tree sent verbatim as the search request
// body. Every category is always present; absent input leaves a category at
// its neutral default (see BaseFilters).
type Filters struct {
	SearchProfiles            SearchProfiles            `json:"searchProfiles"`
	Location                  Location                  `json:"location"`
	SBACertifications         SBACertifications         `json:"sbaCertifications"`
	NAICS                     NAICS                     `json:"naics"`
	SelfCertifications        SelfCertifications        `json:"selfCertifications"`
	Keywords                  Keywords                  `json:"keywords"`
	LastUpdated               LastUpdated               `json:"lastUpdated"`
	SAMStatus                 SAMStatus                 `json:"samStatus"`
	QualityAssuranceStandards QualityAssuranceStandards `json:"qualityAssuranceStandards"`
	BondingLevels             BondingLevels             `json:"bondingLevels"`
	BusinessSize              BusinessSize              `json:"businessSize"`
	AnnualRevenue             AnnualRevenue             `json:"annualRevenue"`
	EntityDetailID            string                    `json:"entityDetailId"`
}

type SearchProfiles struct {
	SearchTerm string `json:"searchTerm"`
}

type Location struct {
	States    []Option `json:"states"`
	ZipCodes  []Option `json:"zipCodes"`
	Counties  []Option `json:"counties"`
	Districts []Option `json:"districts"`
	MSAs      []Option `json:"msas"`
}

type SBACertifications struct {
	ActiveCerts    []Option `json:"activeCerts"`
	IsPreviousCert bool     `json:"isPreviousCert"`
	OperatorType   Operator `json:"operatorType"`
}

type NAICS struct {
	Codes        []Option `json:"codes"`
	IsPrimary    bool     `json:"isPrimary"`
	OperatorType Operator `json:"operatorType"`
}

type SelfCertifications struct {
	Certifications []Option `json:"certifications"`
	OperatorType   Operator `json:"operatorType"`
}

type Keywords struct {
	List         []Option `json:"list"`
	OperatorType Operator `json:"operatorType"`
}

type LastUpdated struct {
	Date Option `json:"date"`
}

type SAMStatus struct {
	IsActiveSAM bool `json:"isActiveSAM"`
}

type QualityAssuranceStandards struct {
	QAS []Option `json:"qas"`
}

type BondingLevels struct {
	ConstructionIndividual string `json:"constructionIndividual"`
	ConstructionAggregate  string `json:"constructionAggregate"`
	ServiceIndividual      string `json:"serviceIndividual"`
	ServiceAggregate       string `json:"serviceAggregate"`
}

type BusinessSize struct {
	RelationOperator  Relation `json:"relationOperator"`
	NumberOfEmployees string   `json:"numberOfEmployees"`
}

type AnnualRevenue struct {
	RelationOperator   Relation `json:"relationOperator"`
	AnnualGrossRevenue string   `json:"annualGrossRevenue"`
}

// BaseFilters returns a canonical filter tree with every category at its
// neutral default. Leaf lists are non-nil so the tree serializes with empty
// arrays rather than nulls.
func BaseFilters() *Filters {
	return &Filters{
		SearchProfiles: SearchProfiles{SearchTerm: ""},
		Location: Location{
			States:    []Option{},
			ZipCodes:  []Option{},
			Counties:  []Option{},
			Districts: []Option{},
			MSAs:      []Option{},
		},
		SBACertifications: SBACertifications{
			ActiveCerts:    []Option{},
			IsPreviousCert: false,
			OperatorType:   OperatorOr,
		},
		NAICS: NAICS{
			Codes:        []Option{},
			IsPrimary:    false,
			OperatorType: OperatorOr,
		},
		SelfCertifications: SelfCertifications{
			Certifications: []Option{},
			OperatorType:   OperatorOr,
		},
		Keywords: Keywords{
			List:         []Option{},
			OperatorType: OperatorOr,
		},
		LastUpdated: LastUpdated{
			Date: Option{Value: LastUpdatedAnytime, Label: "Anytime"},
		},
		SAMStatus:                 SAMStatus{IsActiveSAM: false},
		QualityAssuranceStandards: QualityAssuranceStandards{QAS: []Option{}},
		BondingLevels:             BondingLevels{},
		BusinessSize:              BusinessSize{RelationOperator: RelationAtLeast},
		AnnualRevenue:             AnnualRevenue{RelationOperator: RelationAtLeast},
		EntityDetailID:            "",
	}
}

// RawResult is one search hit exactly as the API returned it.
type RawResult map[string]any

// StringField returns the string value stored under key, or "" when the key
// is absent or holds a non-string value.
func (r RawResult) StringField(key string) string {
	if v, ok := r[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Identifiers returns the UEI and CAGE code pair used for profile lookups.
func (r RawResult) Identifiers() (uei, cageCode string) {
	return r.StringField("uei"), r.StringField("cage_code")
}

// SearchResponse is the body of the search call. A non-empty Error field is a
// domain-level failure and aborts the run.
type SearchResponse struct {
	Results     []RawResult `json:"results"`
	Error       string      `json:"error,omitempty"`
	MeiliFilter any         `json:"meili_filter,omitempty"`
}

// ProfileDetail is the outcome of one enrichment fetch. Exactly one of
// Profile and Error is non-nil.
type ProfileDetail struct {
	Profile any     `json:"profile"`
	Error   *string `json:"error"`
}

// ProfileOf wraps a successfully fetched profile body.
func ProfileOf(profile any) ProfileDetail {
	return ProfileDetail{Profile: profile}
}

// ProfileFailure records a per-item enrichment failure as data.
func ProfileFailure(msg string) ProfileDetail {
	return ProfileDetail{Error: &msg}
}

// RunSummary describes one completed pipeline run.
type RunSummary struct {
	RunID        uint64   `json:"runId,omitempty"`
	TotalResults int      `json:"totalResults"`
	Exported     int      `json:"exported"`
	Filters      *Filters `json:"filtersApplied"`
	MeiliFilter  any      `json:"meiliFilter"`
}
