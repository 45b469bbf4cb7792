package entity

type User struct {
	ID           int64  `db:"id"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
}

// UserPublic is the externally visible shape of User.
// The password hash never leaves the repository layer through it.
type UserPublic struct {
	ID    int64  `db:"id"`
	Email string `db:"email"`
}
