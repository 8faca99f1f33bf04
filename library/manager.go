package library

// Demo credentials seeded on first run so the catalog is usable out of the
// box.
const (
	DemoUsername = "librarian"
	DemoPassword = "lib123"
	DemoRole     = "admin"
)

// Manager is a thin façade over the Store, keeping CLI code simple.
type Manager struct {
	store *Store

	Books   *Books
	Users   *Users
	Reports *Reports
}

// NewManager wires the repositories over a single store and makes sure the
// backing file exists.
func NewManager(opts Options) (*Manager, error) {
	store := NewStore(opts)
	if err := store.Ensure(); err != nil {
		return nil, err
	}
	return &Manager{
		store:   store,
		Books:   NewBooks(store),
		Users:   NewUsers(store),
		Reports: NewReports(store),
	}, nil
}

// Path returns the backing file location.
func (m *Manager) Path() string { return m.store.Path() }

// EnsureDemoUser seeds the demo login unless a user with that username
// already exists. Safe to call on every startup.
func (m *Manager) EnsureDemoUser() error {
	users, err := m.Users.All()
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Username == DemoUsername {
			return nil
		}
	}
	return m.Users.Add(User{
		Username: DemoUsername,
		Password: DemoPassword,
		Role:     DemoRole,
	})
}

// Login reports whether the credentials match a known user.
func (m *Manager) Login(username, password string) (bool, error) {
	return m.Users.Authenticate(username, password)
}
