package importlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(file string) Entry {
	return Entry{
		BatchID:    "b7f9c2a0-0000-0000-0000-000000000001",
		File:       file,
		Status:     StatusPending,
		Parsed:     10,
		New:        8,
		Duplicates: 2,
		CreatedAt:  time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC),
	}
}

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Append(dir, []Entry{entry("march.json")}))
	require.NoError(t, Append(dir, []Entry{entry("april.json")}))

	got, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "march.json", got[0].File)
	assert.Equal(t, StatusPending, got[0].Status)
	assert.Equal(t, 10, got[0].Parsed)
	assert.Equal(t, 8, got[0].New)
	assert.Equal(t, 2, got[0].Duplicates)
	assert.True(t, got[0].CreatedAt.Equal(entry("").CreatedAt))
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMarkConfirmed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{entry("march.json"), entry("april.json")}))

	require.NoError(t, MarkConfirmed(dir, "march.json", 8))

	got, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, StatusConfirmed, got[0].Status)
	assert.Equal(t, 8, got[0].Saved)
	assert.Equal(t, StatusPending, got[1].Status)
}

func TestMarkConfirmed_NoPendingEntry(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{entry("march.json")}))
	require.NoError(t, MarkConfirmed(dir, "march.json", 8))

	assert.Error(t, MarkConfirmed(dir, "march.json", 8))
	assert.Error(t, MarkConfirmed(dir, "missing.json", 1))
}

func TestMarshalRoundTrip(t *testing.T) {
	e := entry("march.json")
	got, err := UnmarshalEntry(MarshalEntry(e))
	require.NoError(t, err)
	assert.Equal(t, e, got)
}
