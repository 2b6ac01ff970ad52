package consts

import (
	"fmt"
)

var USStateAbbreviation map[string]string

func init() {
	USStateAbbreviation = make(map[string]string)

	USStateAbbreviation["Alabama"] = "AL"
	USStateAbbreviation["Alaska"] = "AK"
	USStateAbbreviation["Arizona"] = "AZ"
	USStateAbbreviation["Arkansas"] = "AR"
	USStateAbbreviation["California"] = "CA"
	USStateAbbreviation["Colorado"] = "CO"
	USStateAbbreviation["Connecticut"] = "CT"
	USStateAbbreviation["Delaware"] = "DE"
	USStateAbbreviation["District of Columbia"] = "DC"
	USStateAbbreviation["Florida"] = "FL"
	USStateAbbreviation["Georgia"] = "GA"
	USStateAbbreviation["Hawaii"] = "HI"
	USStateAbbreviation["Idaho"] = "ID"
	USStateAbbreviation["Illinois"] = "IL"
	USStateAbbreviation["Indiana"] = "IN"
	USStateAbbreviation["Iowa"] = "IA"
	USStateAbbreviation["Kansas"] = "KS"
	USStateAbbreviation["Kentucky"] = "KY"
	USStateAbbreviation["Louisiana"] = "LA"
	USStateAbbreviation["Maine"] = "ME"
	USStateAbbreviation["Maryland"] = "MD"
	USStateAbbreviation["Massachusetts"] = "MA"
	USStateAbbreviation["Michigan"] = "MI"
	USStateAbbreviation["Minnesota"] = "MN"
	USStateAbbreviation["Mississippi"] = "MS"
	USStateAbbreviation["Missouri"] = "MO"
	USStateAbbreviation["Montana"] = "MT"
	USStateAbbreviation["Nebraska"] = "NE"
	USStateAbbreviation["Nevada"] = "NV"
	USStateAbbreviation["New Hampshire"] = "NH"
	USStateAbbreviation["New Jersey"] = "NJ"
	USStateAbbreviation["New Mexico"] = "NM"
	USStateAbbreviation["New York"] = "NY"
	USStateAbbreviation["North Carolina"] = "NC"
	USStateAbbreviation["North Dakota"] = "ND"
	USStateAbbreviation["Ohio"] = "OH"
	USStateAbbreviation["Oklahoma"] = "OK"
	USStateAbbreviation["Oregon"] = "OR"
	USStateAbbreviation["Pennsylvania"] = "PA"
	USStateAbbreviation["Rhode Island"] = "RI"
	USStateAbbreviation["South Carolina"] = "SC"
	USStateAbbreviation["South Dakota"] = "SD"
	USStateAbbreviation["Tennessee"] = "TN"
	USStateAbbreviation["Texas"] = "TX"
	USStateAbbreviation["Utah"] = "UT"
	USStateAbbreviation["Vermont"] = "VT"
	USStateAbbreviation["Virginia"] = "VA"
	USStateAbbreviation["Washington"] = "WA"
	USStateAbbreviation["West Virginia"] = "WV"
	USStateAbbreviation["Wisconsin"] = "WI"
	USStateAbbreviation["Wyoming"] = "WY"
}

// StateAbbr - convert a full US state name into its USPS abbreviation.
// Territories and other feed rows without a mapping return an error so a
// blank abbreviation never reaches the county table.
func StateAbbr(state string) (string, error) {
	abbr, ok := USStateAbbreviation[state]
	if !ok {
		return "", fmt.Errorf("%s not exist", state)
	}
	return abbr, nil
}
