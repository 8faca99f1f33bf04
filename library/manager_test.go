package library

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempManager(t *testing.T) *Manager {
	t.Helper()
	manager, err := NewManager(Options{Path: filepath.Join(t.TempDir(), "data.json")})
	require.NoError(t, err)
	return manager
}

func TestNewManagerCreatesBackingFile(t *testing.T) {
	manager := tempManager(t)

	books, err := manager.Books.List()
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestEnsureDemoUserSeedsOnce(t *testing.T) {
	manager := tempManager(t)

	require.NoError(t, manager.EnsureDemoUser())
	require.NoError(t, manager.EnsureDemoUser())

	users, err := manager.Users.All()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, DemoUsername, users[0].Username)
	assert.Equal(t, DemoRole, users[0].Role)
}

func TestEnsureDemoUserSkipsExistingUsername(t *testing.T) {
	manager := tempManager(t)

	require.NoError(t, manager.Users.Add(User{Username: DemoUsername, Password: "custom", Role: "admin"}))
	require.NoError(t, manager.EnsureDemoUser())

	users, err := manager.Users.All()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "custom", users[0].Password)
}

func TestLogin(t *testing.T) {
	manager := tempManager(t)
	require.NoError(t, manager.EnsureDemoUser())

	ok, err := manager.Login(DemoUsername, DemoPassword)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = manager.Login(DemoUsername, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestScenarioAddListReport(t *testing.T) {
	manager := tempManager(t)

	book, err := manager.Books.Add("Dune", "Herbert", "SciFi", "1965")
	require.NoError(t, err)

	list, err := manager.Books.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, book.ID, list[0].ID)
	assert.Equal(t, "Dune", list[0].Title)
	assert.Equal(t, "Herbert", list[0].Author)
	assert.Equal(t, "SciFi", list[0].Category)
	assert.Equal(t, 1965, list[0].Year)
	assert.Len(t, list[0].ID, 8)

	counts, err := manager.Reports.CountByCategory()
	require.NoError(t, err)
	assert.Equal(t, []CategoryCount{{Category: "SciFi", Count: 1}}, counts)
}
