package recordstore

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTime(t *testing.T) {
	ref := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	local := ref.In(time.FixedZone("PHT", 8*3600))
	ms := ref.UnixMilli()

	cases := []struct {
		name string
		in   any
		ok   bool
	}{
		{"time", local, true},
		{"ptr", &local, true},
		{"null time valid", sql.NullTime{Time: ref, Valid: true}, true},
		{"null time invalid", sql.NullTime{}, false},
		{"millis", ms, true},
		{"millis ptr", &ms, true},
		{"null millis valid", sql.NullInt64{Int64: ms, Valid: true}, true},
		{"null millis invalid", sql.NullInt64{}, false},
		{"rfc3339", "2024-03-01T18:30:00+08:00", true},
		{"blank string", "  ", false},
		{"garbage string", "yesterday", false},
		{"nil", nil, false},
		{"zero time", time.Time{}, false},
		{"unsupported", 3.14, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NormalizeTime(tc.in)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.True(t, got.Equal(ref), "got %s", got)
				assert.Equal(t, time.UTC, got.Location())
			} else {
				assert.True(t, got.IsZero())
			}
		})
	}
}

func TestTimePtr_AbsentPassesThroughAsNil(t *testing.T) {
	assert.Nil(t, TimePtr(sql.NullInt64{}))

	ref := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	got := TimePtr(ToMillis(ref))
	require.NotNil(t, got)
	assert.True(t, got.Equal(ref))
}

func TestNullMillis(t *testing.T) {
	assert.False(t, NullMillis(nil).Valid)

	ref := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	n := NullMillis(&ref)
	require.True(t, n.Valid)
	assert.Equal(t, ref.UnixMilli(), n.Int64)
}

func TestEq(t *testing.T) {
	assert.Nil(t, Eq("species", ""))
	assert.Nil(t, Eq("species", "ALL"))
	assert.Equal(t, &Where{Field: "species", Value: "dog"}, Eq("species", " dog "))
}
