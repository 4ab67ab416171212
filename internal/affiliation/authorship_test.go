package affiliation

import (
	"testing"
)

const (
	homeID   = "https://openalex.org/I2799468983"
	homeName = "King Hussein Cancer Center"
)

var home = Home{ID: homeID, Name: homeName}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantCount int
		wantErr   bool
	}{
		{
			name:      "empty string yields no data",
			raw:       "",
			wantCount: 0,
		},
		{
			name:      "whitespace yields no data",
			raw:       "   ",
			wantCount: 0,
		},
		{
			name:    "malformed JSON fails closed",
			raw:     `[{"author": {`,
			wantErr: true,
		},
		{
			name:    "shape mismatch fails closed",
			raw:     `{"author": "not a list"}`,
			wantErr: true,
		},
		{
			name: "two authorships decode",
			raw: `[
				{"author":{"display_name":"A"},"institutions":[{"id":"` + homeID + `"}]},
				{"author":{"display_name":"B"},"institutions":[{"id":"X","display_name":"Foreign U","country_code":"US"}]}
			]`,
			wantCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if got != nil {
					t.Errorf("want nil authorships on error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if len(got) != tt.wantCount {
				t.Errorf("got %d authorships, want %d", len(got), tt.wantCount)
			}
		})
	}
}

func TestSplitAuthorships(t *testing.T) {
	auths, err := Parse(`[
		{"author":{"display_name":"A"},"institutions":[{"id":"` + homeID + `"}]},
		{"author":{"display_name":"B"},"institutions":[{"id":"X","display_name":"Foreign U","country_code":"US"}]}
	]`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	split := SplitAuthorships(auths, home)

	if len(split.Home) != 1 || split.Home[0].Author.DisplayName != "A" {
		t.Errorf("home authors = %v, want exactly A", split.Home)
	}
	if len(split.External) != 1 || split.External[0].Author.DisplayName != "B" {
		t.Errorf("external authors = %v, want exactly B", split.External)
	}

	insts := ExternalInstitutions(split.External[0], home)
	if len(insts) != 1 || insts[0] != "Foreign U" {
		t.Errorf("external institutions = %v, want [Foreign U]", insts)
	}
	countries := ExternalCountries(split.External[0])
	if len(countries) != 1 || countries[0] != "US" {
		t.Errorf("external countries = %v, want [US]", countries)
	}
}

func TestIsHome(t *testing.T) {
	tests := []struct {
		name string
		a    Authorship
		want bool
	}{
		{
			name: "identifier match",
			a:    Authorship{Institutions: []Institution{{ID: homeID}}},
			want: true,
		},
		{
			name: "name match only used without identifier",
			a:    Authorship{Institutions: []Institution{{DisplayName: homeName}}},
			want: true,
		},
		{
			name: "same name under a different identifier is not home",
			a:    Authorship{Institutions: []Institution{{ID: "https://openalex.org/I999", DisplayName: homeName}}},
			want: false,
		},
		{
			name: "any-match: one home affiliation among several",
			a: Authorship{Institutions: []Institution{
				{ID: "https://openalex.org/I123", DisplayName: "Foreign U", CountryCode: "US"},
				{ID: homeID, DisplayName: homeName},
			}},
			want: true,
		},
		{
			name: "zero institutions is external",
			a:    Authorship{Author: Author{DisplayName: "Nobody"}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := home.IsHome(tt.a); got != tt.want {
				t.Errorf("IsHome = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExternalInstitutionsExcludesHomeName(t *testing.T) {
	a := Authorship{Institutions: []Institution{
		{DisplayName: homeName},
		{DisplayName: "Mayo Clinic", CountryCode: "US"},
	}}

	insts := ExternalInstitutions(a, home)
	if len(insts) != 1 || insts[0] != "Mayo Clinic" {
		t.Errorf("got %v, want [Mayo Clinic]", insts)
	}
}
