package catalog

import (
	"strings"

	"github.com/poiesic/sbasearch/core"
)

// stateData pairs two-letter codes with full state and territory names.
var stateData = [][2]string{
	{"AL", "Alabama"},
	{"AK", "Alaska"},
	{"AS", "American Samoa"},
	{"AZ", "Arizona"},
	{"AR", "Arkansas"},
	{"CA", "California"},
	{"CO", "Colorado"},
	{"CT", "Connecticut"},
	{"DE", "Delaware"},
	{"DC", "District of Columbia"},
	{"FM", "Federated States of Micronesia"},
	{"FL", "Florida"},
	{"GA", "Georgia"},
	{"GU", "Guam"},
	{"HI", "Hawaii"},
	{"ID", "Idaho"},
	{"IL", "Illinois"},
	{"IN", "Indiana"},
	{"IA", "Iowa"},
	{"KS", "Kansas"},
	{"KY", "Kentucky"},
	{"LA", "Louisiana"},
	{"ME", "Maine"},
	{"MH", "Marshall Islands"},
	{"MD", "Maryland"},
	{"MA", "Massachusetts"},
	{"MI", "Michigan"},
	{"MN", "Minnesota"},
	{"MS", "Mississippi"},
	{"MO", "Missouri"},
	{"MT", "Montana"},
	{"NE", "Nebraska"},
	{"NV", "Nevada"},
	{"NH", "New Hampshire"},
	{"NJ", "New Jersey"},
	{"NM", "New Mexico"},
	{"NY", "New York"},
	{"NC", "North Carolina"},
	{"ND", "North Dakota"},
	{"MP", "Northern Mariana Islands"},
	{"OH", "Ohio"},
	{"OK", "Oklahoma"},
	{"OR", "Oregon"},
	{"PW", "Palau"},
	{"PA", "Pennsylvania"},
	{"PR", "Puerto Rico"},
	{"RI", "Rhode Island"},
	{"SC", "South Carolina"},
	{"SD", "South Dakota"},
	{"TN", "Tennessee"},
	{"TX", "Texas"},
	{"UT", "Utah"},
	{"VT", "Vermont"},
	{"VA", "Virginia"},
	{"VI", "U.S. Virgin Islands"},
	{"WA", "Washington"},
	{"WV", "West Virginia"},
	{"WI", "Wisconsin"},
	{"WY", "Wyoming"},
}

var (
	stateByCode  = make(map[string]core.Option, len(stateData))
	stateByValue = make(map[string]core.Option, len(stateData))
	stateByName  = make(map[string]core.Option, len(stateData))
)

func init() {
	for _, entry := range stateData {
		code, name := entry[0], entry[1]
		opt := core.Option{
			Value: code + " - " + name,
			Label: name + " (" + code + ")",
		}
		stateByCode[code] = opt
		stateByValue[opt.Value] = opt
		stateByName[strings.ToLower(name)] = opt
	}
}

// StateByCode looks up a state by its two-letter code, case-insensitively.
func StateByCode(code string) (core.Option, bool) {
	opt, ok := stateByCode[strings.ToUpper(strings.TrimSpace(code))]
	return opt, ok
}

// StateByValue looks up a state by its canonical "CODE - Name" value.
func StateByValue(value string) (core.Option, bool) {
	opt, ok := stateByValue[value]
	return opt, ok
}

// StateByName looks up a state by its full name, case-insensitively.
func StateByName(name string) (core.Option, bool) {
	opt, ok := stateByName[strings.ToLower(strings.TrimSpace(name))]
	return opt, ok
}
