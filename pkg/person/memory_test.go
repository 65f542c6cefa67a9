package person_test

import (
	"context"
	"sync"
	"testing"

	"crudapp/pkg/person"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepo_CreateThenList(t *testing.T) {
	ctx := context.Background()
	svc := person.NewService(person.NewMemoryRepo())

	created, err := svc.Create(ctx, person.Form{FirstName: "A", LastName: "B", Email: "a@b.com", Gender: "F"})
	require.NoError(t, err)

	people, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, people, 1)

	assert.Equal(t, created.ID, people[0].ID)
	assert.NotEmpty(t, people[0].ID)
	assert.Equal(t, "A", people[0].FirstName)
	assert.Equal(t, "B", people[0].LastName)
	assert.Equal(t, "a@b.com", people[0].Email)
	assert.Equal(t, "F", people[0].Gender)
}

func TestMemoryRepo_UpdateRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := person.NewService(person.NewMemoryRepo())

	created, err := svc.Create(ctx, person.Form{FirstName: "A", LastName: "B", Email: "a@b.com", Gender: "F"})
	require.NoError(t, err)

	err = svc.Update(ctx, created.ID, person.Form{FirstName: "C", Email: "c@d.com"})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "C", got.FirstName)
	assert.Empty(t, got.LastName, "update replaces every field")
	assert.Equal(t, "c@d.com", got.Email)
	assert.Empty(t, got.Gender)
}

func TestMemoryRepo_UpdateMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := person.NewMemoryRepo()

	err := repo.Update(ctx, "missing", person.Form{FirstName: "ghost"})
	require.NoError(t, err)

	people, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, people)
}

func TestMemoryRepo_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := person.NewMemoryRepo()

	keep := &person.Person{FirstName: "keep"}
	gone := &person.Person{FirstName: "gone"}
	require.NoError(t, repo.Create(ctx, keep))
	require.NoError(t, repo.Create(ctx, gone))

	require.NoError(t, repo.Delete(ctx, gone.ID))
	require.NoError(t, repo.Delete(ctx, gone.ID))
	require.NoError(t, repo.Delete(ctx, "never-existed"))

	people, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, keep.ID, people[0].ID)

	_, err = repo.GetByID(ctx, gone.ID)
	assert.ErrorIs(t, err, person.ErrNotFound)
}

// Concurrent edits of one record are last-write-wins: every writer succeeds
// and the stored value is exactly one of the submitted forms, never a merge.
func TestMemoryRepo_ConcurrentEditsLastWriteWins(t *testing.T) {
	ctx := context.Background()
	repo := person.NewMemoryRepo()

	p := &person.Person{FirstName: "orig"}
	require.NoError(t, repo.Create(ctx, p))

	forms := []person.Form{
		{FirstName: "one", LastName: "1", Email: "one@x", Gender: "a"},
		{FirstName: "two", LastName: "2", Email: "two@x", Gender: "b"},
		{FirstName: "three", LastName: "3", Email: "three@x", Gender: "c"},
	}

	var wg sync.WaitGroup
	for _, f := range forms {
		wg.Add(1)
		go func(f person.Form) {
			defer wg.Done()
			assert.NoError(t, repo.Update(ctx, p.ID, f))
		}(f)
	}
	wg.Wait()

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)

	actual := person.Form{FirstName: got.FirstName, LastName: got.LastName, Email: got.Email, Gender: got.Gender}
	assert.Contains(t, forms, actual)
}
