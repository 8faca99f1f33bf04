package library

// Users provides append-only access to the users collection.
type Users struct {
	store *Store
}

// NewUsers returns a directory over the given store.
func NewUsers(store *Store) *Users { return &Users{store: store} }

// All returns every user in stored order.
func (u *Users) All() ([]User, error) {
	doc, err := u.store.Read()
	if err != nil {
		return nil, err
	}
	return doc.Users, nil
}

// Add appends a user. Username uniqueness is by caller convention only;
// the bootstrap step checks for an existing user before calling.
func (u *Users) Add(user User) error {
	doc, err := u.store.Read()
	if err != nil {
		return err
	}
	doc.Users = append(doc.Users, user)
	return u.store.Write(doc)
}

// Authenticate reports whether a user with exactly this username and
// password exists.
func (u *Users) Authenticate(username, password string) (bool, error) {
	doc, err := u.store.Read()
	if err != nil {
		return false, err
	}
	for _, user := range doc.Users {
		if user.Username == username && user.Password == password {
			return true, nil
		}
	}
	return false, nil
}
