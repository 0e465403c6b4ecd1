package core

import (
	"bytes"
	"encoding/json"
	"strings"
)

// RunInput is the loosely-specified query as supplied by the caller, before
// normalization into a Filters tree. Field names follow the JSON input
// contract of the search tool.
type RunInput struct {
	SearchTerm                       string             `json:"searchTerm"`
	States                           []OptionInput      `json:"states"`
	ZipCodes                         []OptionInput      `json:"zipCodes"`
	SBACertifications                []OptionInput      `json:"sbaCertifications"`
	SBACertificationsOperator        Operator           `json:"sbaCertificationsOperator"`
	SBACertificationsIncludePrevious *bool              `json:"sbaCertificationsIncludePrevious"`
	NAICSCodes                       []OptionInput      `json:"naicsCodes"`
	NAICSIsPrimary                   *bool              `json:"naicsIsPrimary"`
	NAICSOperator                    Operator           `json:"naicsOperator"`
	SelfCertifications               []OptionInput      `json:"selfCertifications"`
	Keywords                         []string           `json:"keywords"`
	KeywordOperator                  Operator           `json:"keywordOperator"`
	LastUpdated                      string             `json:"lastUpdated"`
	CustomDateRange                  *DateRange         `json:"customDateRange"`
	SAMActive                        *bool              `json:"samActive"`
	QualityStandards                 []OptionInput      `json:"qualityStandards"`
	BondingLevels                    *BondingInput      `json:"bondingLevels"`
	BusinessSize                     *BusinessSizeInput `json:"businessSize"`
	AnnualRevenue                    *RevenueInput      `json:"annualRevenue"`
	EntityDetailID                   FlexString         `json:"entityDetailId"`
	IncludeProfiles                  bool               `json:"includeProfiles"`
	ProfileConcurrency               int                `json:"profileConcurrency"`
	MaxItems                         int                `json:"maxItems"`
	RequestTimeoutSecs               float64            `json:"requestTimeoutSecs"`
}

// OptionInput is one polymorphic filter entry. It arrives either as a plain
// string or as a structured object carrying value/label (and, for NAICS,
// code). FromObject records which shape was supplied, since structured input
// follows stricter resolution rules for some categories.
type OptionInput struct {
	Value      string
	Label      string
	Code       string
	FromObject bool
}

func (o *OptionInput) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var obj struct {
			Value string `json:"value"`
			Label string `json:"label"`
			Code  string `json:"code"`
		}
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return err
		}
		*o = OptionInput{
			Value:      strings.TrimSpace(obj.Value),
			Label:      strings.TrimSpace(obj.Label),
			Code:       strings.TrimSpace(obj.Code),
			FromObject: true,
		}
		return nil
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		// NAICS codes are sometimes supplied as bare numbers.
		var n json.Number
		if nerr := json.Unmarshal(trimmed, &n); nerr != nil {
			return err
		}
		s = n.String()
	}
	*o = OptionInput{Value: strings.TrimSpace(s)}
	return nil
}

// Term returns the raw term for error messages: whatever the caller supplied
// to identify the entry.
func (o OptionInput) Term() string {
	if o.Value != "" {
		return o.Value
	}
	return o.Code
}

// FlexString accepts either a JSON string or a JSON number, keeping the
// literal text of numbers.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		var n json.Number
		if nerr := json.Unmarshal(trimmed, &n); nerr != nil {
			return err
		}
		s = n.String()
	}
	*f = FlexString(strings.TrimSpace(s))
	return nil
}

// DateRange bounds a custom last-updated window.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// BondingInput carries optional bonding thresholds in dollars.
type BondingInput struct {
	ConstructionIndividual *float64 `json:"constructionIndividual"`
	ConstructionAggregate  *float64 `json:"constructionAggregate"`
	ServiceIndividual      *float64 `json:"serviceIndividual"`
	ServiceAggregate       *float64 `json:"serviceAggregate"`
}

// BusinessSizeInput carries an optional employee-count threshold.
type BusinessSizeInput struct {
	Relation          Relation `json:"relation"`
	NumberOfEmployees *float64 `json:"numberOfEmployees"`
}

// RevenueInput carries an optional annual gross revenue threshold.
type RevenueInput struct {
	Relation           Relation `json:"relation"`
	AnnualGrossRevenue *float64 `json:"annualGrossRevenue"`
}
