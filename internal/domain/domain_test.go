package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "canonical", raw: "2024-06-10", want: "2024-06-10"},
		{name: "surrounding whitespace", raw: " 2024-06-10 ", want: "2024-06-10"},
		{name: "leap day", raw: "2024-02-29", want: "2024-02-29"},
		{name: "empty", raw: "", wantErr: true},
		{name: "not zero padded", raw: "2024-6-1", wantErr: true},
		{name: "impossible day", raw: "2023-02-29", wantErr: true},
		{name: "timestamp", raw: "2024-06-10T10:00:00Z", wantErr: true},
		{name: "free text", raw: "next tuesday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, key, err := ParseDate(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformedDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, key)
		})
	}
}

func TestMarkingDatesAreSorted(t *testing.T) {
	m := Marking{
		"2024-07-01": {Date: "2024-07-01"},
		"2023-12-31": {Date: "2023-12-31"},
		"2024-06-10": {Date: "2024-06-10"},
	}

	assert.Equal(t, []string{"2023-12-31", "2024-06-10", "2024-07-01"}, m.Dates())
	assert.Empty(t, Marking{}.Dates())
}

func TestMarkingBetween(t *testing.T) {
	m := Marking{
		"2024-06-01": {Date: "2024-06-01"},
		"2024-06-10": {Date: "2024-06-10"},
		"2024-06-30": {Date: "2024-06-30"},
	}

	assert.Equal(t, []string{"2024-06-10", "2024-06-30"}, m.Between("2024-06-10", "").Dates())
	assert.Equal(t, []string{"2024-06-01", "2024-06-10"}, m.Between("", "2024-06-10").Dates())
	assert.Equal(t, []string{"2024-06-10"}, m.Between("2024-06-02", "2024-06-29").Dates())
	assert.Len(t, m.Between("", ""), 3)
}

func TestDayMarkingHasType(t *testing.T) {
	day := DayMarking{Dots: []Dot{{Key: SessionTypeChangeSchedule, Color: "red"}}}

	assert.True(t, day.HasType(SessionTypeChangeSchedule))
	assert.False(t, day.HasType(SessionTypeRoutineAvailable))
}

func TestVideoKind(t *testing.T) {
	kind, err := ParseVideoKind("howToAssist")
	require.NoError(t, err)
	assert.Equal(t, VideoKindHowToAssist, kind)
	assert.Equal(t, "How to Assist", kind.Label())
	assert.Equal(t, "How to Play", VideoKindHowToPlay.Label())

	_, err = ParseVideoKind("howToWatch")
	assert.ErrorIs(t, err, ErrVideoKindInvalid)
}
