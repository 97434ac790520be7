package types

import "time"

// AdminUser marks an auth provider account as an administrator.
type AdminUser struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}
