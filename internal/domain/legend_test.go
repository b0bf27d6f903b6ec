package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLegendAllTypesIsStable(t *testing.T) {
	t.Parallel()

	want := []SessionTypeInfo{
		{Type: SessionTypeRoutineAvailable, Label: "ROUTINE VOLUNTEERING STILL AVAILABLE", Color: "blue"},
		{Type: SessionTypeChangeSchedule, Label: "Change in schedule", Color: "red"},
		{Type: SessionTypeNewCompetitions, Label: "New Competitions", Color: "green"},
		{Type: SessionTypeOtherVolunteering, Label: "Other Volunteering", Color: "yellow"},
		{Type: SessionTypeRoutineOverbooked, Label: "ROUTINE VOLUNTEERING OVERBOOKED", Color: "orange"},
	}

	legend := DefaultLegend()
	for i := 0; i < 3; i++ {
		assert.Equal(t, want, legend.AllTypes())
	}
	assert.Equal(t, want, DefaultLegend().AllTypes())
}

func TestLegendAllTypesReturnsCopy(t *testing.T) {
	t.Parallel()

	legend := DefaultLegend()
	types := legend.AllTypes()
	types[0].Color = "purple"

	color, err := legend.ColorOf(SessionTypeRoutineAvailable)
	require.NoError(t, err)
	assert.Equal(t, "blue", color)
}

func TestLegendLookups(t *testing.T) {
	t.Parallel()

	legend := DefaultLegend()

	tests := []struct {
		sessionType SessionType
		color       string
		label       string
	}{
		{SessionTypeRoutineAvailable, "blue", "ROUTINE VOLUNTEERING STILL AVAILABLE"},
		{SessionTypeChangeSchedule, "red", "Change in schedule"},
		{SessionTypeNewCompetitions, "green", "New Competitions"},
		{SessionTypeOtherVolunteering, "yellow", "Other Volunteering"},
		{SessionTypeRoutineOverbooked, "orange", "ROUTINE VOLUNTEERING OVERBOOKED"},
	}

	for _, tt := range tests {
		t.Run(string(tt.sessionType), func(t *testing.T) {
			color, err := legend.ColorOf(tt.sessionType)
			require.NoError(t, err)
			assert.Equal(t, tt.color, color)

			label, err := legend.LabelOf(tt.sessionType)
			require.NoError(t, err)
			assert.Equal(t, tt.label, label)
			assert.True(t, legend.Contains(tt.sessionType))
		})
	}
}

func TestLegendUnknownTypeFails(t *testing.T) {
	t.Parallel()

	legend := DefaultLegend()

	_, err := legend.ColorOf("BOGUS")
	require.ErrorIs(t, err, ErrUnknownSessionType)

	var unknown *UnknownSessionTypeError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, SessionType("BOGUS"), unknown.SessionType)

	_, err = legend.LabelOf("routine_available")
	assert.ErrorIs(t, err, ErrUnknownSessionType)
	assert.False(t, legend.Contains("BOGUS"))
}

func TestNewLegendValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []SessionTypeInfo
		wantErr string
	}{
		{
			name:    "missing type",
			entries: []SessionTypeInfo{{Label: "x", Color: "red"}},
			wantErr: "session type is required",
		},
		{
			name:    "missing color",
			entries: []SessionTypeInfo{{Type: "A", Label: "x"}},
			wantErr: "color is required",
		},
		{
			name: "duplicate type",
			entries: []SessionTypeInfo{
				{Type: "A", Color: "red"},
				{Type: "A", Color: "blue"},
			},
			wantErr: "duplicate session type",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewLegend(tc.entries...)
			require.ErrorIs(t, err, ErrInvalidLegend)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestNewLegendKeepsDeclarationOrder(t *testing.T) {
	t.Parallel()

	legend, err := NewLegend(
		SessionTypeInfo{Type: "Z", Label: "last letter", Color: "#ffffff"},
		SessionTypeInfo{Type: "A", Label: "first letter", Color: "#000000"},
	)
	require.NoError(t, err)

	types := legend.AllTypes()
	require.Len(t, types, 2)
	assert.Equal(t, SessionType("Z"), types[0].Type)
	assert.Equal(t, SessionType("A"), types[1].Type)
	assert.Equal(t, 2, legend.Len())
}

func TestZeroLegendResolvesNothing(t *testing.T) {
	t.Parallel()

	var legend Legend
	_, err := legend.ColorOf(SessionTypeRoutineAvailable)
	assert.ErrorIs(t, err, ErrUnknownSessionType)
	assert.Empty(t, legend.AllTypes())
}
