package library

// Book is a single catalog record. The id is an 8-character token assigned
// at creation time and never changes afterwards.
type Book struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Category string `json:"category"`
	Year     int    `json:"year"`
}

// User is a catalog login. Passwords are stored as-is; this is a
// single-user demo system, not an auth service.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Document is the complete catalog state persisted to the backing file.
// Slice order is insertion order and survives round-trips.
type Document struct {
	Books []Book `json:"books"`
	Users []User `json:"users"`
}

// CategoryCount is one row of the category report.
type CategoryCount struct {
	Category string
	Count    int
}
