package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultContainsKnownActivities(t *testing.T) {
	activities, err := Default()
	require.NoError(t, err)
	require.Len(t, activities, 9)

	byName := make(map[string]int)
	for i, a := range activities {
		byName[a.Name] = i
	}
	require.Contains(t, byName, "Chess Club")
	require.Contains(t, byName, "Programming Class")

	chess := activities[byName["Chess Club"]]
	require.Equal(t, 12, chess.MaxParticipants)
	require.Equal(t, "Fridays, 3:30 PM - 5:00 PM", chess.Schedule)
	require.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)

	require.NotContains(t, activities[byName["Programming Class"]].Participants, "test.student@mergington.edu")
}

func TestParseOptionalFields(t *testing.T) {
	src := []byte(`
activity "Robotics" {
  max_participants = 0
}
`)
	activities, err := Parse(src, "inline.hcl")
	require.NoError(t, err)
	require.Len(t, activities, 1)
	require.Equal(t, "Robotics", activities[0].Name)
	require.NotNil(t, activities[0].Participants)
	require.Empty(t, activities[0].Participants)
}

func TestParseRejectsInvalidSeeds(t *testing.T) {
	cases := map[string]string{
		"duplicate": `
activity "Art Club" { max_participants = 1 }
activity "Art Club" { max_participants = 2 }
`,
		"negative capacity": `activity "Art Club" { max_participants = -1 }`,
		"missing capacity":  `activity "Art Club" { description = "paint" }`,
		"syntax":            `activity "Art Club" {`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(src), name+".hcl")
			require.Error(t, err)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clubs.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`activity "Choir" {
  schedule         = "Mondays, 3:30 PM"
  max_participants = 40
  participants     = ["lucy@mergington.edu"]
}
`), 0o600))

	activities, err := Load(path)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	require.Equal(t, "Choir", activities[0].Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)

	defaults, err := Load("")
	require.NoError(t, err)
	require.Len(t, defaults, 9)
}
