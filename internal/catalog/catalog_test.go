package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCatalog = []Exercise{
	{Name: "Push-up", Equipment: nil, PrimaryMuscles: []string{"chest", "triceps"}},
	{Name: "Dumbbell Row", Equipment: []string{"dumbbell"}, PrimaryMuscles: []string{"back"}},
	{Name: "Bodyweight Squat", Equipment: nil, PrimaryMuscles: []string{"quads", "glutes"}},
	{Name: "Barbell Bench Press", Equipment: []string{"barbell", "bench"}, PrimaryMuscles: []string{"chest"}},
	{Name: "Plank", Equipment: nil, PrimaryMuscles: []string{"core"}},
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exercises.json")
	data := `[{"name":"Push-up","equipment":[],"primaryMuscles":["chest"]}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	exercises := Load(path, zerolog.Nop())
	require.Len(t, exercises, 1)
	assert.Equal(t, "Push-up", exercises[0].Name)
}

func TestLoadMissingFile(t *testing.T) {
	exercises := Load(filepath.Join(t.TempDir(), "nope.json"), zerolog.Nop())
	assert.Empty(t, exercises)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exercises.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	exercises := Load(path, zerolog.Nop())
	assert.Empty(t, exercises)
}

func TestRetrieveNoEquipmentNoFocus(t *testing.T) {
	got := Retrieve(testCatalog, Preferences{}, 6)

	require.Len(t, got, 3)
	for _, ex := range got {
		assert.Empty(t, ex.Equipment, "only zero-equipment exercises should qualify")
	}
}

func TestRetrieveEquipmentSubset(t *testing.T) {
	prefs := Preferences{Equipment: []string{"dumbbell"}}
	got := Retrieve(testCatalog, prefs, 6)

	names := exerciseNames(got)
	assert.Contains(t, names, "Dumbbell Row")
	assert.NotContains(t, names, "Barbell Bench Press")
}

func TestRetrieveFocusMatchesMuscleOrName(t *testing.T) {
	tests := []struct {
		name  string
		focus string
		want  []string
	}{
		{name: "muscle tag", focus: "Chest", want: []string{"Push-up"}},
		{name: "name substring", focus: "plank", want: []string{"Plank"}},
		{name: "muscle and equipment", focus: "core", want: []string{"Plank"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Retrieve(testCatalog, Preferences{Focus: tt.focus}, 6)
			assert.Equal(t, tt.want, exerciseNames(got))
		})
	}
}

func TestRetrieveFallbackToCatalogOrder(t *testing.T) {
	prefs := Preferences{Focus: "neck"} // nothing matches
	got := Retrieve(testCatalog, prefs, 3)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"Push-up", "Dumbbell Row", "Bodyweight Squat"}, exerciseNames(got))
}

func TestRetrieveRespectsLimit(t *testing.T) {
	got := Retrieve(testCatalog, Preferences{Equipment: []string{"dumbbell", "barbell", "bench"}}, 2)
	assert.Len(t, got, 2)
}

func TestRetrieveEmptyCatalog(t *testing.T) {
	got := Retrieve(nil, Preferences{Focus: "chest"}, 6)
	assert.Empty(t, got)
}

func exerciseNames(exercises []Exercise) []string {
	names := make([]string, 0, len(exercises))
	for _, ex := range exercises {
		names = append(names, ex.Name)
	}
	return names
}
