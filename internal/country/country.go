// Package country maps ISO 3166-1 alpha-2 country codes to alpha-3 codes
// and English names for map-based projections.
package country

import "strings"

// Country is one ISO 3166-1 entry.
type Country struct {
	Alpha2 string `json:"alpha2"`
	Alpha3 string `json:"alpha3"`
	Name   string `json:"name"`
}

var byAlpha2 = map[string]Country{
	"AE": {"AE", "ARE", "United Arab Emirates"},
	"AR": {"AR", "ARG", "Argentina"},
	"AT": {"AT", "AUT", "Austria"},
	"AU": {"AU", "AUS", "Australia"},
	"BE": {"BE", "BEL", "Belgium"},
	"BH": {"BH", "BHR", "Bahrain"},
	"BR": {"BR", "BRA", "Brazil"},
	"CA": {"CA", "CAN", "Canada"},
	"CH": {"CH", "CHE", "Switzerland"},
	"CL": {"CL", "CHL", "Chile"},
	"CN": {"CN", "CHN", "China"},
	"CO": {"CO", "COL", "Colombia"},
	"CZ": {"CZ", "CZE", "Czechia"},
	"DE": {"DE", "DEU", "Germany"},
	"DK": {"DK", "DNK", "Denmark"},
	"DZ": {"DZ", "DZA", "Algeria"},
	"EG": {"EG", "EGY", "Egypt"},
	"ES": {"ES", "ESP", "Spain"},
	"FI": {"FI", "FIN", "Finland"},
	"FR": {"FR", "FRA", "France"},
	"GB": {"GB", "GBR", "United Kingdom"},
	"GR": {"GR", "GRC", "Greece"},
	"HU": {"HU", "HUN", "Hungary"},
	"ID": {"ID", "IDN", "Indonesia"},
	"IE": {"IE", "IRL", "Ireland"},
	"IL": {"IL", "ISR", "Israel"},
	"IN": {"IN", "IND", "India"},
	"IQ": {"IQ", "IRQ", "Iraq"},
	"IR": {"IR", "IRN", "Iran"},
	"IT": {"IT", "ITA", "Italy"},
	"JO": {"JO", "JOR", "Jordan"},
	"JP": {"JP", "JPN", "Japan"},
	"KE": {"KE", "KEN", "Kenya"},
	"KR": {"KR", "KOR", "South Korea"},
	"KW": {"KW", "KWT", "Kuwait"},
	"LB": {"LB", "LBN", "Lebanon"},
	"LY": {"LY", "LBY", "Libya"},
	"MA": {"MA", "MAR", "Morocco"},
	"MX": {"MX", "MEX", "Mexico"},
	"MY": {"MY", "MYS", "Malaysia"},
	"NG": {"NG", "NGA", "Nigeria"},
	"NL": {"NL", "NLD", "Netherlands"},
	"NO": {"NO", "NOR", "Norway"},
	"NZ": {"NZ", "NZL", "New Zealand"},
	"OM": {"OM", "OMN", "Oman"},
	"PK": {"PK", "PAK", "Pakistan"},
	"PL": {"PL", "POL", "Poland"},
	"PS": {"PS", "PSE", "Palestine"},
	"PT": {"PT", "PRT", "Portugal"},
	"QA": {"QA", "QAT", "Qatar"},
	"RO": {"RO", "ROU", "Romania"},
	"RU": {"RU", "RUS", "Russia"},
	"SA": {"SA", "SAU", "Saudi Arabia"},
	"SD": {"SD", "SDN", "Sudan"},
	"SE": {"SE", "SWE", "Sweden"},
	"SG": {"SG", "SGP", "Singapore"},
	"SY": {"SY", "SYR", "Syria"},
	"TH": {"TH", "THA", "Thailand"},
	"TN": {"TN", "TUN", "Tunisia"},
	"TR": {"TR", "TUR", "Turkey"},
	"TW": {"TW", "TWN", "Taiwan"},
	"UA": {"UA", "UKR", "Ukraine"},
	"US": {"US", "USA", "United States"},
	"VN": {"VN", "VNM", "Vietnam"},
	"YE": {"YE", "YEM", "Yemen"},
	"ZA": {"ZA", "ZAF", "South Africa"},
}

// Lookup resolves an alpha-2 code, case-insensitively. The second return
// value is false for codes without a mapping; callers drop such codes from
// map projections but keep them in plain frequency output.
func Lookup(alpha2 string) (Country, bool) {
	c, ok := byAlpha2[strings.ToUpper(strings.TrimSpace(alpha2))]
	return c, ok
}

// Name returns the English name for an alpha-2 code, or the code itself
// when no mapping exists.
func Name(alpha2 string) string {
	if c, ok := Lookup(alpha2); ok {
		return c.Name
	}
	return alpha2
}
