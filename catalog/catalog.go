package catalog

import (
	"strings"

	"github.com/poiesic/sbasearch/core"
)

// sbaCertifications are the SBA certification families. Values are the comma
// separated program ids the API filters on.
var sbaCertifications = []core.Option{
	{Value: "1,4", Label: "8(a) or 8(a) Joint Venture"},
	{Value: "3", Label: "HUBZone"},
	{Value: "5", Label: "Women-Owned Small Business (WOSB)"},
	{Value: "6", Label: "Economically-Disadvantaged Women-Owned Small Business (EDWOSB)"},
	{Value: "7,8", Label: "Veteran-Owned Small Business (VOSB)"},
	{Value: "9,10", Label: "Service-Disabled Veteran-Owned Small Business (SDVOSB)"},
}

var selfCertifications = []core.Option{
	{Value: "Self-Certified Small Disadvantaged Business", Label: "Self-Certified Small Disadvantaged Business"},
	{Value: "HUBZone Joint Venture", Label: "Self-Certified HUBZone Joint Venture"},
	{Value: "Veteran Owned Business", Label: "Self-Certified Veteran-Owned Small Business"},
	{Value: "Women-Owned Small Business", Label: "Self-Certified Woman-Owned Small Business"},
	{Value: "Women-Owned Small Business Joint Venture", Label: "Self-Certified Woman-Owned Small Business Joint Venture"},
	{Value: "Community Development Corporation Owned Firm", Label: "Community Development Corporation (CDC) Owned Small Business"},
	{Value: "Native American Owned", Label: "Native American Owned"},
	{Value: "Tribally Owned Firm", Label: "Tribally Owned Small Business"},
	{Value: "American Indian Owned", Label: "American Indian Owned Small Business"},
	{Value: "Alaskan Native Corporation Owned Firm", Label: "Alaskan Native Corp (ANC) Owned Small Business"},
	{Value: "Native Hawaiian Organization Owned Firm", Label: "Native Hawaiian Org (NHO) Owned Small Business"},
}

var qualityStandards = []core.Option{
	{Value: "ANSI/ASQC Z1.4", Label: "ANSI/ASQC Z1.4"},
	{Value: "ISO-9000 Series", Label: "ISO 9000 Series"},
	{Value: "ISO 10012-1", Label: "ISO 10012-1"},
	{Value: "MIL-Q-9858", Label: "MIL-Q-9858"},
	{Value: "MIL-STD-45662A", Label: "MIL-STD-45662A"},
}

var lastUpdatedPresets = map[string]core.Option{
	core.LastUpdatedAnytime:     {Value: core.LastUpdatedAnytime, Label: "Anytime"},
	core.LastUpdatedPast3Months: {Value: core.LastUpdatedPast3Months, Label: "Within the past 3 months"},
	core.LastUpdatedPast6Months: {Value: core.LastUpdatedPast6Months, Label: "Within the past 6 months"},
	core.LastUpdatedPastYear:    {Value: core.LastUpdatedPastYear, Label: "Within the past year"},
	core.LastUpdatedCustom:      {Value: core.LastUpdatedCustom, Label: "Custom"},
}

var (
	sbaCertByValue  map[string]core.Option
	sbaCertByLabel  map[string]core.Option
	selfCertByValue map[string]core.Option
	selfCertByLabel map[string]core.Option
	qualityByValue  map[string]core.Option
	qualityByLabel  map[string]core.Option
)

func init() {
	sbaCertByValue, sbaCertByLabel = index(sbaCertifications)
	selfCertByValue, selfCertByLabel = index(selfCertifications)
	qualityByValue, qualityByLabel = index(qualityStandards)
}

func index(options []core.Option) (byValue, byLabel map[string]core.Option) {
	byValue = make(map[string]core.Option, len(options))
	byLabel = make(map[string]core.Option, len(options))
	for _, opt := range options {
		byValue[opt.Value] = opt
		byLabel[strings.ToLower(opt.Label)] = opt
	}
	return byValue, byLabel
}

// SBACertByValue looks up an SBA certification by its canonical value.
func SBACertByValue(value string) (core.Option, bool) {
	opt, ok := sbaCertByValue[value]
	return opt, ok
}

// SBACertByLabel looks up an SBA certification by label, case-insensitively.
func SBACertByLabel(label string) (core.Option, bool) {
	opt, ok := sbaCertByLabel[strings.ToLower(label)]
	return opt, ok
}

// SelfCertByValue looks up a self-certification by its canonical value.
func SelfCertByValue(value string) (core.Option, bool) {
	opt, ok := selfCertByValue[value]
	return opt, ok
}

// SelfCertByLabel looks up a self-certification by label, case-insensitively.
func SelfCertByLabel(label string) (core.Option, bool) {
	opt, ok := selfCertByLabel[strings.ToLower(label)]
	return opt, ok
}

// QualityStandardByValue looks up a quality-assurance standard by value.
func QualityStandardByValue(value string) (core.Option, bool) {
	opt, ok := qualityByValue[value]
	return opt, ok
}

// QualityStandardByLabel looks up a quality-assurance standard by label,
// case-insensitively.
func QualityStandardByLabel(label string) (core.Option, bool) {
	opt, ok := qualityByLabel[strings.ToLower(label)]
	return opt, ok
}

// LastUpdatedPreset looks up a last-updated preset by name.
func LastUpdatedPreset(name string) (core.Option, bool) {
	opt, ok := lastUpdatedPresets[name]
	return opt, ok
}
