package affiliation

import "strings"

// Department-indicator phrases, checked in order; the first phrase found in a
// raw affiliation string wins for that string.
var indicatorPhrases = []string{
	"Departments of",
	"Department of",
	"Divisions of",
	"Division of",
	"Sections of",
	"Section of",
}

// canonicalDepartments merges near-duplicate department names into one label.
// Values must never appear as keys, so canonicalization is idempotent.
var canonicalDepartments = map[string]string{
	"Department of Medical Oncology":              "Department of Internal Medicine",
	"Department of Hematology and Oncology":       "Department of Internal Medicine",
	"Department of Radiology":                     "Department of Diagnostic Radiology",
	"Department of Radiology and Medical Imaging": "Department of Diagnostic Radiology",
	"Department of Paediatrics":                   "Department of Pediatrics",
	"Department of Pediatric Oncology":            "Department of Pediatrics",
	"Division of Hematology":                      "Department of Internal Medicine",
}

// CanonicalDepartment maps a department label to its canonical form.
// Labels without a synonym entry pass through unchanged.
func CanonicalDepartment(label string) string {
	if canonical, ok := canonicalDepartments[label]; ok {
		return canonical
	}
	return label
}

// ExtractDepartment scans one raw affiliation string for a department phrase.
// The extracted label runs from the indicator phrase to the first comma or to
// the home institution name, whichever comes first. A string with no
// indicator phrase contributes no department.
func ExtractDepartment(raw, homeName string) (string, bool) {
	for _, phrase := range indicatorPhrases {
		start := strings.Index(raw, phrase)
		if start < 0 {
			continue
		}

		rest := raw[start:]
		end := len(rest)
		if i := strings.Index(rest, ","); i >= 0 {
			end = i
		}
		if homeName != "" {
			if i := strings.Index(rest, homeName); i >= 0 && i < end {
				end = i
			}
		}

		label := strings.TrimSpace(rest[:end])
		if label == phrase {
			// Phrase with nothing after it carries no department.
			return "", false
		}
		return CanonicalDepartment(label), true
	}
	return "", false
}

// Departments returns the canonical department labels for one home
// authorship, de-duplicated in first-seen order.
func Departments(a Authorship, homeName string) []string {
	seen := make(map[string]bool)
	var depts []string
	for _, raw := range a.RawAffiliations {
		label, ok := ExtractDepartment(raw, homeName)
		if !ok || seen[label] {
			continue
		}
		seen[label] = true
		depts = append(depts, label)
	}
	return depts
}
