package history

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/types"
)

func sampleSnapshot(title string) *types.ResumeSnapshot {
	return &types.ResumeSnapshot{
		PersonalInfo: types.PersonalInfo{Name: "Ada"},
		Experiences:  []types.Experience{{Company: "Acme", Title: title}},
	}
}

func TestAppend_StoresIndependentClone(t *testing.T) {
	store := NewStore()
	snapshot := sampleSnapshot("Engineer")

	version := store.Append(snapshot, "initial")

	assert.NotEqual(t, uuid.Nil, version.ID)
	assert.False(t, version.CreatedAt.IsZero())
	assert.Equal(t, "initial", version.Label)

	// Mutating the caller's snapshot must not reach the stored version.
	snapshot.Experiences[0].Title = "Senior Engineer"
	stored, err := store.Get(version.ID)
	require.NoError(t, err)
	assert.Equal(t, "Engineer", stored.Snapshot.Experiences[0].Title)
}

func TestAppend_PreservesOrder(t *testing.T) {
	store := NewStore()

	first := store.Append(sampleSnapshot("Engineer"), "v1")
	second := store.Append(sampleSnapshot("Senior Engineer"), "v2")

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, store.Len())

	listed := store.List()
	require.Len(t, listed, 2)
	assert.Equal(t, first.ID, listed[0].ID)
	assert.Equal(t, second.ID, listed[1].ID)
}

func TestLatest(t *testing.T) {
	store := NewStore()

	_, ok := store.Latest()
	assert.False(t, ok)

	store.Append(sampleSnapshot("Engineer"), "v1")
	second := store.Append(sampleSnapshot("Senior Engineer"), "v2")

	latest, ok := store.Latest()
	require.True(t, ok)
	assert.Equal(t, second.ID, latest.ID)
}

func TestGet_NotFound(t *testing.T) {
	store := NewStore()
	store.Append(sampleSnapshot("Engineer"), "v1")

	missing := uuid.New()
	_, err := store.Get(missing)

	require.Error(t, err)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, missing, notFound.ID)
}

func TestDiffLatest(t *testing.T) {
	store := NewStore()

	_, ok := store.DiffLatest()
	assert.False(t, ok)

	store.Append(sampleSnapshot("Engineer"), "v1")
	_, ok = store.DiffLatest()
	assert.False(t, ok)

	store.Append(sampleSnapshot("Senior Engineer"), "v2")
	diff, ok := store.DiffLatest()
	require.True(t, ok)
	require.Len(t, diff.Changes, 1)
	assert.Equal(t, types.ChangeModification, diff.Changes[0].ChangeType)
	assert.Equal(t, "Engineer", diff.Changes[0].OldValue)
	assert.Equal(t, "Senior Engineer", diff.Changes[0].NewValue)
}

func TestList_CopyIsInsulated(t *testing.T) {
	store := NewStore()
	version := store.Append(sampleSnapshot("Engineer"), "v1")

	listed := store.List()
	listed[0].Label = "tampered"

	stored, err := store.Get(version.ID)
	require.NoError(t, err)
	assert.Equal(t, "v1", stored.Label)
}
