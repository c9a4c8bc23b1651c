package analyze

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karsk-io/datascribe/internal/dataset"
)

func TestMissingStats(t *testing.T) {
	rows := make([][]string, 10)
	for i := range rows {
		rows[i] = []string{"x", "y", "z"}
	}
	rows[0][1] = ""
	rows[3][2] = ""
	rows[7][2] = ""

	frame := dataset.NewFrame([]string{"a", "b", "c"}, rows)
	got := MissingStats(frame)

	want := []MissingStat{
		{Column: "a", Count: 0, Pct: 0},
		{Column: "b", Count: 1, Pct: 10},
		{Column: "c", Count: 2, Pct: 20},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("missing stats mismatch (-want +got):\n%s", diff)
	}
}

func TestMissingStatsEmptyFrame(t *testing.T) {
	frame := dataset.NewFrame([]string{"a"}, nil)
	got := MissingStats(frame)
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].Count)
	assert.Equal(t, 0.0, got[0].Pct)
}

func TestCountDuplicates(t *testing.T) {
	frame := dataset.NewFrame(
		[]string{"a", "b"},
		[][]string{
			{"1", "x"},
			{"2", "y"},
			{"1", "x"},
			{"1", "x"},
			{"3", "z"},
		},
	)

	assert.Equal(t, 2, CountDuplicates(frame))
}

func TestCountDuplicatesNone(t *testing.T) {
	frame := dataset.NewFrame(
		[]string{"a"},
		[][]string{{"1"}, {"2"}, {"3"}},
	)

	assert.Equal(t, 0, CountDuplicates(frame))
}

func TestOutlierStats(t *testing.T) {
	rows := [][]string{
		{"1", "a"}, {"2", "b"}, {"3", "c"}, {"4", "d"}, {"5", "e"},
		{"6", "f"}, {"7", "g"}, {"8", "h"}, {"9", "i"}, {"100", "j"},
	}
	frame := dataset.NewFrame([]string{"v", "label"}, rows)

	got := OutlierStats(frame)
	require.Len(t, got, 1)
	assert.Equal(t, "v", got[0].Column)
	assert.Equal(t, 1, got[0].Count)
}

func TestOutlierStatsCleanColumn(t *testing.T) {
	frame := dataset.NewFrame(
		[]string{"v"},
		[][]string{{"5"}, {"5"}, {"5"}, {"5"}},
	)

	got := OutlierStats(frame)
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].Count)
}

func TestResultsTotals(t *testing.T) {
	r := &Results{
		Missing: []MissingStat{
			{Column: "a", Pct: 0},
			{Column: "b", Pct: 10},
			{Column: "c", Pct: 20},
		},
		Outliers: []OutlierStat{
			{Column: "a", Count: 2},
			{Column: "b", Count: 3},
		},
	}

	assert.Equal(t, 5, r.TotalOutliers())
	assert.Equal(t, []float64{0, 10, 20}, r.MissingPcts())
}
