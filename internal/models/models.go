package models

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

// Valid reports whether the role is one the router can gate on. An empty
// or unknown role means the user document is missing or malformed.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleClient
}

// User mirrors a users/<uid> document. ID is the provider-issued uid and
// doubles as the document ID, so it is not stored as a field.
type User struct {
	ID    string `firestore:"-"           json:"id"`
	Email string `firestore:"email"       json:"email"`
	Name  string `firestore:"name"        json:"name"`
	Phone string `firestore:"phone"       json:"phone"`
	Role  Role   `firestore:"role"        json:"role"`
}

type Product struct {
	ID    string  `firestore:"-"          json:"id"`
	Name  string  `firestore:"name"       json:"name"`
	Price float64 `firestore:"price"      json:"price"`
}

// CartLine holds one product for one user. Name and Price are copies of
// the product values taken when the line was first added; later catalog
// edits do not touch them.
type CartLine struct {
	ID        string  `firestore:"-"          json:"id"`
	UserID    string  `firestore:"userId"     json:"user_id"`
	ProductID string  `firestore:"productId"  json:"product_id"`
	Name      string  `firestore:"name"       json:"name"`
	Price     float64 `firestore:"price"      json:"price"`
	Quantity  int64   `firestore:"quantity"   json:"quantity"`
}

// Session is process-lifetime state, rebuilt from the auth provider on
// start and on every sign-in or sign-out.
type Session struct {
	User    *User
	Role    Role
	Loading bool
}
