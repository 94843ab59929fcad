package user

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, email, password_hash, first_name, last_name, is_admin, created_at`

func scanUser(row *sql.Row, u *User) error {
	// first_name and last_name are nullable
	var firstName, lastName sql.NullString
	if err := row.Scan(&u.ID, &u.Email, &u.Password, &firstName, &lastName, &u.IsAdmin, &u.CreatedAt); err != nil {
		return err
	}
	u.FirstName = firstName.String
	u.LastName = lastName.String
	return nil
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	var u User
	err := scanUser(r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = $1`, id), &u)
	if err == sql.ErrNoRows {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	var u User
	err := scanUser(r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = $1`, email), &u)
	if err == sql.ErrNoRows {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) Create(u User) (User, error) {
	err := r.db.QueryRow(`
        INSERT INTO users (email, password_hash, first_name, last_name)
        VALUES ($1, $2, $3, $4)
        RETURNING id, is_admin, created_at
    `, u.Email, u.Password, u.FirstName, u.LastName).Scan(&u.ID, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		// unique_violation on users.email
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return User{}, ErrEmailExists
		}
		return User{}, err
	}
	return u, nil
}
