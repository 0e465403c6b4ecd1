package filter

import (
	"strings"

	"github.com/poiesic/sbasearch/core"
)

// CountActive reports how many filter facets of the canonical tree are
// engaged. Zero means every category is at its neutral default, in which case
// the search must not be executed.
func CountActive(filters *core.Filters) int {
	total := 0

	loc := filters.Location
	total += len(loc.States) + len(loc.ZipCodes) + len(loc.Counties) + len(loc.Districts) + len(loc.MSAs)

	if strings.TrimSpace(filters.SearchProfiles.SearchTerm) != "" {
		total++
	}
	total += len(filters.SBACertifications.ActiveCerts)
	total += len(filters.NAICS.Codes)
	total += len(filters.SelfCertifications.Certifications)
	total += len(filters.Keywords.List)

	date := filters.LastUpdated.Date
	if date.Value != core.LastUpdatedAnytime {
		if date.Label == "Custom" {
			if customRangeValid(date.Value) {
				total++
			}
		} else {
			total++
		}
	}

	if filters.SAMStatus.IsActiveSAM {
		total++
	}
	total += len(filters.QualityAssuranceStandards.QAS)

	for _, level := range []string{
		filters.BondingLevels.ConstructionIndividual,
		filters.BondingLevels.ConstructionAggregate,
		filters.BondingLevels.ServiceIndividual,
		filters.BondingLevels.ServiceAggregate,
	} {
		if level != "" {
			total++
		}
	}

	if filters.BusinessSize.NumberOfEmployees != "" {
		total++
	}
	if filters.AnnualRevenue.AnnualGrossRevenue != "" {
		total++
	}
	if filters.EntityDetailID != "" {
		total++
	}

	return total
}

// customRangeValid reports whether a custom selector value round-trips to two
// parseable dates. The stored form is "<fromISO>-<toISO>", so the split point
// is the separator following the first bound's zone designator.
func customRangeValid(value string) bool {
	idx := strings.Index(value, "Z-")
	if idx < 0 {
		return false
	}
	_, fromOK := parseDate(value[:idx+1])
	_, toOK := parseDate(value[idx+2:])
	return fromOK && toOK
}
