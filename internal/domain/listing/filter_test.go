package listing

import (
	"net/url"
	"testing"

	"barangay-animal-tracking/internal/domain/animals"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func fixtures() []animals.Animal {
	return []animals.Animal{
		{ID: "1", TagID: "CAT-152980", Name: "CAT-01", Species: animals.SpeciesCat, HealthStatus: animals.HealthHealthy},
		{ID: "2", TagID: "DOG-329140", Name: "Bantay", Species: animals.SpeciesDog, HealthStatus: animals.HealthCritical, Vaccinated: true},
		{ID: "3", TagID: "CAT-990812", Name: "Mingming", Species: animals.SpeciesCat, HealthStatus: animals.HealthInjured},
		{ID: "4", TagID: "DOG-284975", Name: "Brownie", Species: animals.SpeciesDog, HealthStatus: animals.HealthHealthy, Vaccinated: true},
		{ID: "5", TagID: "DOG-111222", Name: "Blackie", Species: animals.SpeciesDog, HealthStatus: animals.HealthCritical},
	}
}

func ids(items []animals.Animal) []string {
	out := make([]string, 0, len(items))
	for _, a := range items {
		out = append(out, a.ID)
	}
	return out
}

func isSubsequence(sub, full []string) bool {
	i := 0
	for _, v := range full {
		if i < len(sub) && sub[i] == v {
			i++
		}
	}
	return i == len(sub)
}

func TestApply_IdentityFilter(t *testing.T) {
	for _, a := range fixtures() {
		got := Apply([]animals.Animal{a}, DefaultFilter())
		if diff := cmp.Diff([]animals.Animal{a}, got); diff != "" {
			t.Fatalf("identity filter changed input (-want +got):\n%s", diff)
		}
	}
}

func TestApply_Conjunctive(t *testing.T) {
	cases := []struct {
		name string
		f    Filter
		want []string
	}{
		{"all", DefaultFilter(), []string{"1", "2", "3", "4", "5"}},
		{"empty values are unrestricted", Filter{}, []string{"1", "2", "3", "4", "5"}},
		{"species", Filter{Species: "dog", HealthStatus: All}, []string{"2", "4", "5"}},
		{"health", Filter{Species: All, HealthStatus: "critical"}, []string{"2", "5"}},
		{"species and health", Filter{Species: "cat", HealthStatus: "critical"}, []string{}},
		{"dog critical", Filter{Species: "dog", HealthStatus: "critical"}, []string{"2", "5"}},
		{"search name case-insensitive", Filter{Species: All, HealthStatus: All, Search: "BL"}, []string{"5"}},
		{"search tag", Filter{Species: All, HealthStatus: All, Search: "cat-99"}, []string{"3"}},
		{"search and species", Filter{Species: "cat", HealthStatus: All, Search: "b"}, []string{}},
		{"search no match", Filter{Species: All, HealthStatus: All, Search: "zzz"}, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Apply(fixtures(), tc.f))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Apply() mismatch (-want +got):\n%s", diff)
			}
			assert.True(t, isSubsequence(got, ids(fixtures())))
		})
	}
}

func TestMerge_OnlySuppliedFields(t *testing.T) {
	dog := "dog"
	f := DefaultFilter().Merge(FilterUpdate{Species: &dog})
	assert.Equal(t, Filter{Species: "dog", HealthStatus: All}, f)

	search := "bant"
	f = f.Merge(FilterUpdate{Search: &search})
	assert.Equal(t, Filter{Species: "dog", HealthStatus: All, Search: "bant"}, f)

	assert.Equal(t, f, f.Merge(FilterUpdate{}))
}

func TestRefine_FromQuery(t *testing.T) {
	q := url.Values{}
	q.Set("species", "dog")
	q.Set("healthStatus", "critical")
	q.Set("search", "black")

	assert.Equal(t, []string{"5"}, ids(Refine(fixtures(), q)))
	assert.Equal(t, ids(fixtures()), ids(Refine(fixtures(), url.Values{})))
}
