package entity

// User is the aggregate root for the user domain. Passwords are stored as
// bcrypt hashes. The document id (user_id) is a server-generated uuid hex,
// distinct from Mongo's _id.
type User struct {
	UserID    string `bson:"user_id" json:"user_id"`
	FirstName string `bson:"first_name" json:"first_name"`
	LastName  string `bson:"last_name" json:"last_name"`
	Email     string `bson:"email" json:"email"`
	Mobile    string `bson:"mobile" json:"mobile"`
	Password  string `bson:"password" json:"-"`
}

// Identity is the minimal projection of a user kept in the session and the
// identity cache. Disposable; always derivable from the persisted record.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
