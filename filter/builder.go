package filter

import (
	"strconv"
	"strings"

	"github.com/poiesic/sbasearch/core"
)

// Build normalizes the raw run input into a canonical filter tree. Any
// category that fails to resolve aborts the build; no partial tree is
// returned.
func Build(in *core.RunInput) (*core.Filters, error) {
	filters := core.BaseFilters()

	if term := strings.TrimSpace(in.SearchTerm); term != "" {
		filters.SearchProfiles.SearchTerm = term
	}

	states, err := resolveAll(in.States, func(entry core.OptionInput) (core.Option, error) {
		return resolveCataloged(entry, stateTable)
	})
	if err != nil {
		return nil, err
	}
	filters.Location.States = states

	zips, err := resolveAll(in.ZipCodes, resolveOption)
	if err != nil {
		return nil, err
	}
	filters.Location.ZipCodes = zips

	certs, err := resolveAll(in.SBACertifications, func(entry core.OptionInput) (core.Option, error) {
		return resolveCataloged(entry, sbaCertTable)
	})
	if err != nil {
		return nil, err
	}
	filters.SBACertifications.ActiveCerts = certs
	if in.SBACertificationsIncludePrevious != nil {
		filters.SBACertifications.IsPreviousCert = *in.SBACertificationsIncludePrevious
	}
	if in.SBACertificationsOperator != "" {
		filters.SBACertifications.OperatorType = in.SBACertificationsOperator
	}

	naics, err := resolveAll(in.NAICSCodes, resolveNAICS)
	if err != nil {
		return nil, err
	}
	filters.NAICS.Codes = naics
	if in.NAICSIsPrimary != nil {
		filters.NAICS.IsPrimary = *in.NAICSIsPrimary
	}
	if in.NAICSOperator != "" {
		filters.NAICS.OperatorType = in.NAICSOperator
	}

	selfCerts, err := resolveAll(in.SelfCertifications, func(entry core.OptionInput) (core.Option, error) {
		return resolveCataloged(entry, selfCertTable)
	})
	if err != nil {
		return nil, err
	}
	filters.SelfCertifications.Certifications = selfCerts

	keywords := make([]core.Option, 0, len(in.Keywords))
	for _, keyword := range in.Keywords {
		opt, err := resolveKeyword(keyword)
		if err != nil {
			return nil, err
		}
		keywords = append(keywords, opt)
	}
	filters.Keywords.List = dedupeByValue(keywords)
	if in.KeywordOperator != "" {
		filters.Keywords.OperatorType = in.KeywordOperator
	}

	lastUpdated, err := resolveLastUpdated(in.LastUpdated, in.CustomDateRange)
	if err != nil {
		return nil, err
	}
	filters.LastUpdated.Date = lastUpdated

	if in.SAMActive != nil {
		filters.SAMStatus.IsActiveSAM = *in.SAMActive
	}

	qas, err := resolveAll(in.QualityStandards, func(entry core.OptionInput) (core.Option, error) {
		return resolveCataloged(entry, qualityTable)
	})
	if err != nil {
		return nil, err
	}
	filters.QualityAssuranceStandards.QAS = qas

	if in.BondingLevels != nil {
		filters.BondingLevels.ConstructionIndividual = numberString(in.BondingLevels.ConstructionIndividual)
		filters.BondingLevels.ConstructionAggregate = numberString(in.BondingLevels.ConstructionAggregate)
		filters.BondingLevels.ServiceIndividual = numberString(in.BondingLevels.ServiceIndividual)
		filters.BondingLevels.ServiceAggregate = numberString(in.BondingLevels.ServiceAggregate)
	}

	if in.BusinessSize != nil {
		if in.BusinessSize.Relation != "" {
			filters.BusinessSize.RelationOperator = in.BusinessSize.Relation
		}
		filters.BusinessSize.NumberOfEmployees = numberString(in.BusinessSize.NumberOfEmployees)
	}

	if in.AnnualRevenue != nil {
		if in.AnnualRevenue.Relation != "" {
			filters.AnnualRevenue.RelationOperator = in.AnnualRevenue.Relation
		}
		filters.AnnualRevenue.AnnualGrossRevenue = numberString(in.AnnualRevenue.AnnualGrossRevenue)
	}

	filters.EntityDetailID = strings.TrimSpace(string(in.EntityDetailID))

	return filters, nil
}

func resolveAll(entries []core.OptionInput, resolve func(core.OptionInput) (core.Option, error)) ([]core.Option, error) {
	out := make([]core.Option, 0, len(entries))
	for _, entry := range entries {
		opt, err := resolve(entry)
		if err != nil {
			return nil, err
		}
		out = append(out, opt)
	}
	return dedupeByValue(out), nil
}

// numberString renders a threshold the way the wire contract stores it: the
// shortest decimal form of the number, or "" when unset.
func numberString(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
