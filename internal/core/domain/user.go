package domain

const (
	RoleAdmin = "admin"
	RoleGuest = "guest"
)

// User is a document in the user directory. Email is the unique key; the
// profile fields are free-form and only ever written as a named subset.
type User struct {
	ID        string `json:"_id,omitempty" bson:"_id,omitempty"`
	Email     string `json:"email" bson:"email"`
	Name      string `json:"name,omitempty" bson:"name,omitempty"`
	Role      string `json:"role,omitempty" bson:"role,omitempty"`
	Education string `json:"education,omitempty" bson:"education,omitempty"`
	City      string `json:"city,omitempty" bson:"city,omitempty"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty"`
	LinkedIn  string `json:"linkedIn,omitempty" bson:"linkedIn,omitempty"`
	Address   string `json:"address,omitempty" bson:"address,omitempty"`
}

// Profile is the named field subset a user may update on their own record.
type Profile struct {
	Education string `json:"education" bson:"education"`
	City      string `json:"city" bson:"city"`
	Phone     string `json:"phone" bson:"phone"`
	LinkedIn  string `json:"linkedIn" bson:"linkedIn"`
	Address   string `json:"address" bson:"address"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
