package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedOpportunityStoreDefaults(t *testing.T) {
	store := NewSeedOpportunityStore(nil)
	items, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, "Beach Cleanup Drive", items[0].Title)
	assert.Equal(t, "Women Skills Workshop", items[3].Title)

	items[0].Requirements[0] = "mutated"
	items[0].Title = "mutated"
	again, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Beach Cleanup Drive", again[0].Title)
	assert.NotEqual(t, "mutated", again[0].Requirements[0])
}

func TestParseSeed(t *testing.T) {
	raw := []byte(`
opportunities:
  - id: flood-1
    title: Flood Relief Kits
    ngo: Rapid Response
    cause: Disaster Relief
    location: Guwahati
    timeCommitment: 8 hours
    workType: Physical Work
    description: Pack relief kits.
    startDate: "2024-07-01"
    endDate: "2024-07-02"
    volunteersNeeded: 30
    volunteersApplied: 4
    urgency: High
`)
	store, err := ParseSeed(raw)
	require.NoError(t, err)
	items, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Disaster Relief", items[0].Cause)
	assert.Equal(t, "2024-07-01", items[0].StartDate.String())
	assert.Equal(t, []string{}, items[0].Requirements)
}

func TestParseSeedRejectsDuplicateIDs(t *testing.T) {
	_, err := ParseSeed([]byte("opportunities:\n  - id: a\n  - id: a\n"))
	assert.Error(t, err)

	_, err = ParseSeed([]byte("opportunities:\n  - title: no id\n"))
	assert.Error(t, err)
}

func TestParseSeedRejectsBadDate(t *testing.T) {
	_, err := ParseSeed([]byte("opportunities:\n  - id: a\n    startDate: 01/02/2024\n"))
	assert.Error(t, err)
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("opportunities: []\n"), 0o600))

	store, err := LoadSeedFile(path)
	require.NoError(t, err)
	items, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
