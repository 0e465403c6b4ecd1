package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/poiesic/sbasearch/catalog"
	"github.com/poiesic/sbasearch/core"
)

const isoMillis = "2006-01-02T15:04:05.000Z"

// dateLayouts are the accepted spellings of a custom range bound.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// lookupTable bundles one catalog's lookups with its resolution policy.
// passThrough tolerates unknown terms by synthesizing an option from the raw
// input; without it an unknown term is a validation failure naming the term.
type lookupTable struct {
	kind        string
	byValue     func(string) (core.Option, bool)
	byCode      func(string) (core.Option, bool)
	byLabel     func(string) (core.Option, bool)
	passThrough bool
	unknownErr  error
}

var (
	stateTable = lookupTable{
		kind:       "state",
		byValue:    catalog.StateByValue,
		byCode:     catalog.StateByCode,
		byLabel:    catalog.StateByName,
		unknownErr: ErrUnknownState,
	}
	sbaCertTable = lookupTable{
		kind:       "SBA certification",
		byValue:    catalog.SBACertByValue,
		byLabel:    catalog.SBACertByLabel,
		unknownErr: ErrUnknownSBACertification,
	}
	selfCertTable = lookupTable{
		kind:        "self certification",
		byValue:     catalog.SelfCertByValue,
		byLabel:     catalog.SelfCertByLabel,
		passThrough: true,
	}
	qualityTable = lookupTable{
		kind:        "quality assurance standard",
		byValue:     catalog.QualityStandardByValue,
		byLabel:     catalog.QualityStandardByLabel,
		passThrough: true,
	}
)

// resolveCataloged resolves one entry against a catalog: exact value first,
// then two-letter code where the catalog has codes, then case-insensitive
// label.
func resolveCataloged(in core.OptionInput, table lookupTable) (core.Option, error) {
	term := strings.TrimSpace(in.Term())
	if term == "" {
		return core.Option{}, fmt.Errorf("%w: %s: %w", core.ErrValidation, table.kind, ErrEmptyValue)
	}

	if opt, ok := table.byValue(term); ok {
		return opt, nil
	}
	if table.byCode != nil {
		if opt, ok := table.byCode(term); ok {
			return opt, nil
		}
	}
	if opt, ok := table.byLabel(term); ok {
		return opt, nil
	}

	if table.passThrough {
		label := in.Label
		if label == "" {
			label = term
		}
		return core.Option{Value: term, Label: label}, nil
	}
	return core.Option{}, fmt.Errorf("%w: %w: %q", core.ErrValidation, table.unknownErr, term)
}

// resolveOption resolves a free-form entry (zip codes and similar): any
// non-empty value is accepted, label defaults to the value.
func resolveOption(in core.OptionInput) (core.Option, error) {
	value := strings.TrimSpace(in.Value)
	if value == "" {
		return core.Option{}, fmt.Errorf("%w: %w", core.ErrValidation, ErrEmptyValue)
	}
	label := in.Label
	if !in.FromObject || strings.TrimSpace(label) == "" {
		label = value
	}
	return core.Option{Value: value, Label: label}, nil
}

// resolveNAICS resolves a NAICS entry, accepting the code under either the
// code or the value key. Label defaults to the code.
func resolveNAICS(in core.OptionInput) (core.Option, error) {
	code := strings.TrimSpace(in.Code)
	if code == "" {
		code = strings.TrimSpace(in.Value)
	}
	if code == "" {
		return core.Option{}, fmt.Errorf("%w: %w", core.ErrValidation, ErrMissingNAICSCode)
	}
	label := strings.TrimSpace(in.Label)
	if label == "" {
		label = code
	}
	return core.Option{Value: code, Label: label}, nil
}

// resolveKeyword wraps a non-empty keyword into an option.
func resolveKeyword(keyword string) (core.Option, error) {
	value := strings.TrimSpace(keyword)
	if value == "" {
		return core.Option{}, fmt.Errorf("%w: %w", core.ErrValidation, ErrEmptyKeyword)
	}
	return core.Option{Value: value, Label: value}, nil
}

// resolveLastUpdated resolves the last-updated selector. An empty name means
// the anytime preset. The custom selector encodes both bounds as
// "<fromISO>-<toISO>" and requires from <= to.
func resolveLastUpdated(name string, custom *core.DateRange) (core.Option, error) {
	if name == "" {
		name = core.LastUpdatedAnytime
	}
	if name == core.LastUpdatedCustom {
		if custom == nil {
			return core.Option{}, fmt.Errorf("%w: %w", core.ErrValidation, ErrCustomRangeRequired)
		}
		from, okFrom := parseDate(custom.From)
		to, okTo := parseDate(custom.To)
		if !okFrom || !okTo {
			return core.Option{}, fmt.Errorf("%w: %w", core.ErrValidation, ErrInvalidCustomRange)
		}
		if from.After(to) {
			return core.Option{}, fmt.Errorf("%w: %w", core.ErrValidation, ErrCustomRangeOrder)
		}
		return core.Option{
			Label: "Custom",
			Value: from.UTC().Format(isoMillis) + "-" + to.UTC().Format(isoMillis),
		}, nil
	}

	preset, ok := catalog.LastUpdatedPreset(name)
	if !ok {
		return core.Option{}, fmt.Errorf("%w: %w: %q", core.ErrValidation, ErrUnknownLastUpdated, name)
	}
	return preset, nil
}

func parseDate(input string) (time.Time, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dedupeByValue drops repeated canonical values, keeping first-seen order.
func dedupeByValue(items []core.Option) []core.Option {
	seen := make(map[string]struct{}, len(items))
	out := make([]core.Option, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.Value]; ok {
			continue
		}
		seen[item.Value] = struct{}{}
		out = append(out, item)
	}
	return out
}
