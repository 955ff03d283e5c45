//go:build unit

package availability_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"rentalhub/internal/domain/availability"
	"rentalhub/internal/domain/daterange"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(daterange.Layout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func rng(start, end string) daterange.DateRange {
	return daterange.MustNew(day(start), day(end))
}

func days(ss ...string) []time.Time {
	out := make([]time.Time, 0, len(ss))
	for _, s := range ss {
		out = append(out, day(s))
	}
	return out
}

func TestIndex_IsAvailable(t *testing.T) {
	idx := availability.NewIndex([]daterange.DateRange{
		rng("2024-06-10", "2024-06-12"),
		rng("2024-06-01", "2024-06-03"),
	})

	cases := []struct {
		name string
		r    daterange.DateRange
		want bool
	}{
		{"before everything", rng("2024-05-20", "2024-05-31"), true},
		{"check-in on checkout day", rng("2024-06-03", "2024-06-05"), false},
		{"day after checkout", rng("2024-06-04", "2024-06-05"), true},
		{"gap fully used", rng("2024-06-04", "2024-06-09"), true},
		{"spans both bookings", rng("2024-05-30", "2024-06-15"), false},
		{"inside second", rng("2024-06-11", "2024-06-11"), false},
		{"after everything", rng("2024-06-13", "2024-06-20"), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, idx.IsAvailable(tc.r))
			assert.Equal(t, tc.want, len(idx.Conflicts(tc.r)) == 0)
		})
	}
}

func TestIndex_Empty(t *testing.T) {
	idx := availability.NewIndex(nil)

	assert.True(t, idx.IsAvailable(rng("2024-06-01", "2024-06-30")))
	assert.Empty(t, idx.DisabledDays())
	assert.Zero(t, idx.Len())
}

func TestIndex_LongBookingShadowsLaterStarts(t *testing.T) {
	// The long range ends after the short one that starts later; a naive "last started" check misses it.
	idx := availability.NewIndex([]daterange.DateRange{
		rng("2024-06-01", "2024-06-30"),
		rng("2024-06-05", "2024-06-06"),
	})

	assert.False(t, idx.IsAvailable(rng("2024-06-20", "2024-06-21")))
	assert.Equal(t, []daterange.DateRange{rng("2024-06-01", "2024-06-30")}, idx.Conflicts(rng("2024-06-20", "2024-06-21")))
}

func TestIndex_DisabledDays(t *testing.T) {
	t.Run("single booking", func(t *testing.T) {
		idx := availability.NewIndex([]daterange.DateRange{rng("2024-06-01", "2024-06-03")})
		assert.Equal(t, days("2024-06-01", "2024-06-02", "2024-06-03"), idx.DisabledDays())
	})

	t.Run("unsorted input with overlap is deduplicated", func(t *testing.T) {
		idx := availability.NewIndex([]daterange.DateRange{
			rng("2024-06-10", "2024-06-11"),
			rng("2024-06-02", "2024-06-04"),
			rng("2024-06-01", "2024-06-03"),
			rng("2024-06-03", "2024-06-03"),
		})
		want := days("2024-06-01", "2024-06-02", "2024-06-03", "2024-06-04", "2024-06-10", "2024-06-11")
		if diff := cmp.Diff(want, idx.DisabledDays()); diff != "" {
			t.Errorf("DisabledDays mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestConflictPredicate(t *testing.T) {
	free := availability.ConflictPredicate(rng("2024-06-04", "2024-06-05"))

	assert.True(t, free(nil))
	assert.True(t, free([]daterange.DateRange{rng("2024-06-01", "2024-06-03")}))
	assert.False(t, free([]daterange.DateRange{rng("2024-06-05", "2024-06-07")}))
}

// The index must agree with a pairwise scan on arbitrary inputs.
func TestIndex_MatchesPairwiseScan(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	base := day("2024-01-01")
	randomRange := func() daterange.DateRange {
		s := base.AddDate(0, 0, r.IntN(120))
		return daterange.MustNew(s, s.AddDate(0, 0, r.IntN(10)))
	}

	for i := 0; i < 200; i++ {
		booked := make([]daterange.DateRange, r.IntN(8))
		for j := range booked {
			booked[j] = randomRange()
		}
		idx := availability.NewIndex(booked)

		for k := 0; k < 20; k++ {
			q := randomRange()
			require.Equal(t, availability.IsAvailable(booked, q), idx.IsAvailable(q), "booked=%v query=%v", booked, q)
		}

		seen := map[time.Time]bool{}
		for _, b := range booked {
			for d := range b.Days() {
				seen[d] = true
			}
		}
		got := idx.DisabledDays()
		require.Len(t, got, len(seen))
		for j := 1; j < len(got); j++ {
			require.True(t, got[j-1].Before(got[j]))
		}
	}
}
