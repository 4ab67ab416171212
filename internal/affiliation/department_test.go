package affiliation

import "testing"

func TestExtractDepartment(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  string
		found bool
	}{
		{
			name:  "department trimmed at first comma",
			raw:   "Department of Internal Medicine, King Hussein Cancer Center, Amman, Jordan",
			want:  "Department of Internal Medicine",
			found: true,
		},
		{
			name:  "department trimmed at home institution name",
			raw:   "Department of Surgery King Hussein Cancer Center Amman Jordan",
			want:  "Department of Surgery",
			found: true,
		},
		{
			name:  "division phrase",
			raw:   "Division of Pediatric Hematology, King Hussein Cancer Center",
			want:  "Division of Pediatric Hematology",
			found: true,
		},
		{
			name:  "section phrase",
			raw:   "Section of Palliative Care, King Hussein Cancer Center",
			want:  "Section of Palliative Care",
			found: true,
		},
		{
			name:  "plural form",
			raw:   "Departments of Nursing, King Hussein Cancer Center",
			want:  "Departments of Nursing",
			found: true,
		},
		{
			name:  "phrase mid-string",
			raw:   "Cancer Control Office and Department of Biostatistics, Amman, Jordan",
			want:  "Department of Biostatistics",
			found: true,
		},
		{
			name:  "no indicator phrase yields no department",
			raw:   "King Hussein Cancer Center, Amman, Jordan",
			found: false,
		},
		{
			name:  "empty string yields no department",
			raw:   "",
			found: false,
		},
		{
			name:  "bare phrase with nothing after it",
			raw:   "Department of",
			found: false,
		},
		{
			name:  "synonym is canonicalized",
			raw:   "Department of Medical Oncology, King Hussein Cancer Center, Amman, Jordan",
			want:  "Department of Internal Medicine",
			found: true,
		},
		{
			name:  "radiology variant merges",
			raw:   "Department of Radiology, King Hussein Cancer Center",
			want:  "Department of Diagnostic Radiology",
			found: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractDepartment(tt.raw, homeName)
			if found != tt.found {
				t.Fatalf("found = %v, want %v", found, tt.found)
			}
			if found && got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCanonicalDepartmentIdempotent(t *testing.T) {
	labels := []string{
		"Department of Medical Oncology",
		"Department of Radiology",
		"Division of Hematology",
		"Department of Surgery", // no synonym entry
	}

	for _, label := range labels {
		once := CanonicalDepartment(label)
		twice := CanonicalDepartment(once)
		if once != twice {
			t.Errorf("canonicalization not idempotent for %q: %q != %q", label, once, twice)
		}
	}
}

func TestDepartmentsDeduplicates(t *testing.T) {
	a := Authorship{RawAffiliations: []string{
		"Department of Medical Oncology, King Hussein Cancer Center, Amman, Jordan",
		"Department of Internal Medicine, King Hussein Cancer Center, Amman, Jordan",
		"King Hussein Cancer Center, Amman, Jordan",
	}}

	got := Departments(a, homeName)
	if len(got) != 1 || got[0] != "Department of Internal Medicine" {
		t.Errorf("got %v, want exactly [Department of Internal Medicine]", got)
	}
}
