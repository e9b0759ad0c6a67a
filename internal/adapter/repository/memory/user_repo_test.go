package memory

import (
	"context"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/sync/errgroup"

	domain "user-rest-service/internal/domain/user"
)

func setupRepo(t *testing.T) *UserRepository {
	return NewUserRepository(zaptest.NewLogger(t))
}

func seedUsers(t *testing.T, repo *UserRepository, n int) []domain.User {
	t.Helper()
	ctx := context.Background()

	users := make([]domain.User, 0, n)
	for i := 1; i <= n; i++ {
		u, err := repo.Create(ctx, &domain.User{
			Name:  fmt.Sprintf("User %d", i),
			Age:   20 + i,
			Email: fmt.Sprintf("user%d@example.com", i),
		})
		require.NoError(t, err)
		users = append(users, *u)
	}
	return users
}

func TestCreate_AssignsSequentialIDs(t *testing.T) {
	repo := setupRepo(t)
	users := seedUsers(t, repo, 5)

	for i, u := range users {
		assert.Equal(t, int64(i+1), u.ID)
	}
}

func TestCreate_CanonicalizesNameAndEmail(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	u, err := repo.Create(ctx, &domain.User{
		Name:  "  John Doe  ",
		Age:   30,
		Email: "  John.Doe@Example.COM  ",
	})
	require.NoError(t, err)

	assert.Equal(t, "John Doe", u.Name)
	assert.Equal(t, "john.doe@example.com", u.Email)

	stored, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "john.doe@example.com", stored.Email)
}

// Next id is max(existing ids)+1 recomputed per create, so deleting the
// highest-id user frees its id for the next insert. This behavior is
// deliberate and pinned here.
func TestCreate_ReusesIDAfterDeletingMax(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	seedUsers(t, repo, 3)

	deleted, err := repo.Delete(ctx, 3)
	require.NoError(t, err)
	require.True(t, deleted)

	u, err := repo.Create(ctx, &domain.User{Name: "Replacement", Age: 40, Email: "replacement@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), u.ID)
}

func TestCreate_Concurrent_UniqueIDs(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	const n = 50
	var g errgroup.Group
	var mu sync.Mutex
	ids := make(map[int64]struct{}, n)

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			u, err := repo.Create(ctx, &domain.User{
				Name:  fmt.Sprintf("Concurrent %d", i),
				Age:   25,
				Email: fmt.Sprintf("concurrent%d@example.com", i),
			})
			if err != nil {
				return err
			}
			mu.Lock()
			ids[u.ID] = struct{}{}
			mu.Unlock()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	// No duplicate ids and no lost updates
	assert.Len(t, ids, n)
	_, total, err := repo.List(ctx, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(n), total)
}

func TestGetByID_AbsentReturnsNil(t *testing.T) {
	repo := setupRepo(t)

	u, err := repo.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestGetByID_ReturnsCopy(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	seedUsers(t, repo, 1)

	first, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	first.Name = "mutated"

	second, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "User 1", second.Name)
}

func TestUpdate_OverwritesInPlace(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	seedUsers(t, repo, 2)

	updated, err := repo.Update(ctx, 1, &domain.User{
		Name:  "  Renamed  ",
		Age:   55,
		Email: "Renamed@Example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, int64(1), updated.ID)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, 55, updated.Age)
	assert.Equal(t, "renamed@example.com", updated.Email)

	_, total, err := repo.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestUpdate_AbsentReturnsNil(t *testing.T) {
	repo := setupRepo(t)

	updated, err := repo.Update(context.Background(), 99, &domain.User{Name: "Nobody", Age: 30, Email: "nobody@example.com"})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDelete(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	seedUsers(t, repo, 2)

	deleted, err := repo.Delete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, 1)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, total, err := repo.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestList_Pagination(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	seedUsers(t, repo, 3)

	page, total, err := repo.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 1)
	assert.Equal(t, int64(3), page[0].ID)
}

func TestList_OutOfRangePageIsEmpty(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	seedUsers(t, repo, 3)

	page, total, err := repo.List(ctx, 99, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Empty(t, page)
}

// Huge page numbers must behave like any other out-of-range page. Both
// values below overflow (page-1)*pageSize if computed directly: the first
// wraps the window start negative, the second wraps it back to 0 and would
// alias page 1's data.
func TestList_HugePageYieldsEmpty(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	seedUsers(t, repo, 1)

	for _, tc := range []struct {
		page     int64
		pageSize int64
	}{
		{1<<61 + 1, 12},
		{1<<62 + 1, 4},
		{math.MaxInt64, 100},
	} {
		page, total, err := repo.List(ctx, tc.page, tc.pageSize)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Empty(t, page, "page=%d pageSize=%d", tc.page, tc.pageSize)
	}
}

func TestEmailExists_CaseInsensitive(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.User{Name: "John Doe", Age: 30, Email: "john.doe@example.com"})
	require.NoError(t, err)

	exists, err := repo.EmailExists(ctx, "JOHN.DOE@EXAMPLE.COM", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.EmailExists(ctx, "other@example.com", 0)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestEmailExists_ExcludesGivenID(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	seedUsers(t, repo, 2)

	// user1@example.com belongs to id 1; excluding id 1 must hide it
	exists, err := repo.EmailExists(ctx, "user1@example.com", 1)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.EmailExists(ctx, "user1@example.com", 2)
	require.NoError(t, err)
	assert.True(t, exists)
}
