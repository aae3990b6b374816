package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/hammock-spots/internal/domain"
	"github.com/pkordes/hammock-spots/internal/repo"
	"github.com/pkordes/hammock-spots/testutil"
)

// newPgRepo opens a transaction against the test database and returns a
// HammockSpotRepo backed by that transaction. The transaction is rolled back
// when the test finishes, giving free per-test isolation.
func newPgRepo(t *testing.T) repo.HammockSpotRepo {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return repo.NewHammockSpotRepo(tx)
}

// newSQLiteRepo returns a HammockSpotRepo over a fresh in-memory database.
func newSQLiteRepo(t *testing.T) repo.HammockSpotRepo {
	t.Helper()
	return repo.NewSQLiteHammockSpotRepo(testutil.NewSQLiteDB(t))
}

// Both stores must honour the same contract, so every case runs against each.
func TestHammockSpotRepo_Postgres(t *testing.T) { runRepoContract(t, newPgRepo) }

func TestHammockSpotRepo_SQLite(t *testing.T) { runRepoContract(t, newSQLiteRepo) }

// spotFixture returns a domain.HammockSpot with sensible defaults.
// Callers can override individual fields after calling this function.
func spotFixture() domain.HammockSpot {
	return domain.HammockSpot{
		Name:    "Shady Oak",
		Lat:     40.0,
		Lng:     -73.9,
		OwnerID: uuid.MustParse("11111111-1111-1111-1111-111111111111"),
	}
}

func ptr[T any](v T) *T { return &v }

func runRepoContract(t *testing.T, newRepo func(t *testing.T) repo.HammockSpotRepo) {
	t.Run("Create", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		input := spotFixture()
		got, err := r.Create(ctx, input)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, got.ID, "ID should be store-generated")
		assert.Equal(t, input.Name, got.Name)
		assert.Equal(t, input.Lat, got.Lat)
		assert.Equal(t, input.Lng, got.Lng)
		assert.Equal(t, input.OwnerID, got.OwnerID)
		assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by the store")
		assert.False(t, got.UpdatedAt.IsZero(), "UpdatedAt should be set by the store")
	})

	t.Run("Create_RejectsOutOfRangeLatitude", func(t *testing.T) {
		r := newRepo(t)

		input := spotFixture()
		input.Lat = 91

		_, err := r.Create(context.Background(), input)

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("FindByID_RoundTrip", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		created, err := r.Create(ctx, spotFixture())
		require.NoError(t, err)

		l, err := r.FindByID(ctx, created.ID)
		require.NoError(t, err)

		got, ok := l.Get()
		require.True(t, ok, "created spot should be found")
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, created.Name, got.Name)
		assert.Equal(t, created.Lat, got.Lat)
		assert.Equal(t, created.Lng, got.Lng)
		assert.Equal(t, created.OwnerID, got.OwnerID)
	})

	t.Run("FindByID_Absent", func(t *testing.T) {
		r := newRepo(t)

		l, err := r.FindByID(context.Background(), uuid.New())

		require.NoError(t, err, "absence is not an error at the store level")
		_, ok := l.Get()
		assert.False(t, ok)
	})

	t.Run("List_InsertionOrderAndStable", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		var want []uuid.UUID
		for _, name := range []string{"First", "Second", "Third"} {
			s := spotFixture()
			s.Name = name
			created, err := r.Create(ctx, s)
			require.NoError(t, err)
			want = append(want, created.ID)
		}

		first, err := r.List(ctx)
		require.NoError(t, err)
		second, err := r.List(ctx)
		require.NoError(t, err)

		ids := func(spots []domain.HammockSpot) []uuid.UUID {
			var out []uuid.UUID
			for _, s := range spots {
				out = append(out, s.ID)
			}
			return out
		}
		assert.Equal(t, want, ids(first))
		assert.Equal(t, ids(first), ids(second), "repeated List calls must agree")
	})

	t.Run("Update_MergesSuppliedFields", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		created, err := r.Create(ctx, spotFixture())
		require.NoError(t, err)

		err = r.Update(ctx, created.ID, domain.HammockSpotPatch{Name: ptr("Shadier Oak")})
		require.NoError(t, err)

		l, err := r.FindByID(ctx, created.ID)
		require.NoError(t, err)
		got, ok := l.Get()
		require.True(t, ok)
		assert.Equal(t, "Shadier Oak", got.Name)
		assert.Equal(t, created.Lat, got.Lat, "lat must be untouched")
		assert.Equal(t, created.Lng, got.Lng, "lng must be untouched")
		assert.Equal(t, created.OwnerID, got.OwnerID)
		assert.True(t, got.CreatedAt.Equal(created.CreatedAt), "created_at must be untouched")
	})

	t.Run("Update_NotFound", func(t *testing.T) {
		r := newRepo(t)

		err := r.Update(context.Background(), uuid.New(), domain.HammockSpotPatch{Lat: ptr(1.0)})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		created, err := r.Create(ctx, spotFixture())
		require.NoError(t, err)

		require.NoError(t, r.Delete(ctx, created.ID))

		l, err := r.FindByID(ctx, created.ID)
		require.NoError(t, err)
		_, ok := l.Get()
		assert.False(t, ok, "spot should be gone after delete")

		assert.ErrorIs(t, r.Delete(ctx, created.ID), domain.ErrNotFound, "second delete finds nothing")
	})
}
