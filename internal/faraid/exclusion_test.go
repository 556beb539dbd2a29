package faraid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// rosterOf builds a normalized roster straight from relationship labels,
// using the label as the heir's name.
func rosterOf(labels ...string) []normalized {
	heirs := make([]Heir, 0, len(labels))
	for i, label := range labels {
		heirs = append(heirs, Heir{ID: label + "-" + string(rune('a'+i)), Name: label, Relationship: label})
	}
	return normalizeRoster(heirs)
}

func excludedNames(roster []normalized, excluded map[int]string) []string {
	var names []string
	for i := range roster {
		if _, ok := excluded[i]; ok {
			names = append(names, roster[i].Heir.Name)
		}
	}
	return names
}

func TestResolveExclusions(t *testing.T) {
	cases := []struct {
		name     string
		roster   []string
		excluded []string
	}{
		{
			name:     "son blocks grandchildren",
			roster:   []string{"Son", "Grandson", "Granddaughter"},
			excluded: []string{"Grandson", "Granddaughter"},
		},
		{
			name:     "two daughters block granddaughter without grandson",
			roster:   []string{"Daughter", "Daughter", "Granddaughter"},
			excluded: []string{"Granddaughter"},
		},
		{
			name:     "grandson keeps granddaughter in despite two daughters",
			roster:   []string{"Daughter", "Daughter", "Grandson", "Granddaughter"},
			excluded: nil,
		},
		{
			name:     "father blocks grandfather and all siblings",
			roster:   []string{"Father", "Grandfather", "Brother", "Sister", "Half Brother", "Uterine Sister"},
			excluded: []string{"Grandfather", "Brother", "Sister", "Half Brother", "Uterine Sister"},
		},
		{
			name:     "mother blocks grandmother",
			roster:   []string{"Mother", "Grandmother"},
			excluded: []string{"Grandmother"},
		},
		{
			name:     "male descendant blocks every sibling",
			roster:   []string{"Son", "Brother", "Half Sister", "Uterine Brother"},
			excluded: []string{"Brother", "Half Sister", "Uterine Brother"},
		},
		{
			name:     "full brother blocks consanguine siblings and nephew",
			roster:   []string{"Brother", "Half Brother", "Half Sister", "Nephew"},
			excluded: []string{"Half Brother", "Half Sister", "Nephew"},
		},
		{
			name:     "daughter blocks uterine siblings only",
			roster:   []string{"Daughter", "Brother", "Uterine Brother", "Uterine Sister"},
			excluded: []string{"Uterine Brother", "Uterine Sister"},
		},
		{
			name:     "grandfather blocks uterine siblings and nephew",
			roster:   []string{"Grandfather", "Uterine Brother", "Nephew", "Brother"},
			excluded: []string{"Uterine Brother", "Nephew"},
		},
		{
			name:     "barred categories always excluded",
			roster:   []string{"Son", "Stepmother", "Adopted Child"},
			excluded: []string{"Stepmother", "Adopted Child"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			roster := rosterOf(tc.roster...)
			excluded, notes := resolveExclusions(roster, factsOf(roster))

			assert.ElementsMatch(t, tc.excluded, excludedNames(roster, excluded))
			assert.Len(t, notes, len(tc.excluded), "one note per exclusion")
		})
	}
}

func TestResolveExclusionNotesNameTheBlocker(t *testing.T) {
	roster := rosterOf("Son", "Grandson")
	_, notes := resolveExclusions(roster, factsOf(roster))

	assert.Equal(t, []string{"Grandson (grandson) excluded: blocked by Son"}, notes)
}
