package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/matt-dz/foodgram/internal/database"
)

const userColumns = "id, email, username, first_name, last_name, password_hash, role"

func scanUser(row pgx.Row) (database.User, error) {
	var (
		u    database.User
		role string
	)
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.FirstName, &u.LastName, &u.PasswordHash, &role)
	u.Role = database.Role(role)
	return u, err
}

const createUser = `-- name: CreateUser :one
INSERT INTO users (email, username, first_name, last_name, password_hash, role)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + userColumns

func (q *Queries) CreateUser(ctx context.Context, arg database.CreateUserParams) (database.User, error) {
	row := q.db.QueryRow(ctx, createUser,
		arg.Email, arg.Username, arg.FirstName, arg.LastName, arg.PasswordHash, string(arg.Role))
	u, err := scanUser(row)
	return u, translateError(err)
}

const getUserByID = `-- name: GetUserByID :one
SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) GetUserByID(ctx context.Context, id int64) (database.User, error) {
	u, err := scanUser(q.db.QueryRow(ctx, getUserByID, id))
	return u, translateError(err)
}

const getUserByEmail = `-- name: GetUserByEmail :one
SELECT ` + userColumns + ` FROM users WHERE email = $1`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (database.User, error) {
	u, err := scanUser(q.db.QueryRow(ctx, getUserByEmail, email))
	return u, translateError(err)
}

const listUsers = `-- name: ListUsers :many
SELECT ` + userColumns + ` FROM users ORDER BY id LIMIT $1 OFFSET $2`

func (q *Queries) ListUsers(ctx context.Context, arg database.ListUsersParams) ([]database.User, error) {
	rows, err := q.db.Query(ctx, listUsers, arg.Limit, arg.Offset)
	return collect(rows, err, scanUser)
}

const listUsersByIDs = `-- name: ListUsersByIDs :many
SELECT ` + userColumns + ` FROM users WHERE id = ANY($1::bigint[]) ORDER BY id`

func (q *Queries) ListUsersByIDs(ctx context.Context, ids []int64) ([]database.User, error) {
	rows, err := q.db.Query(ctx, listUsersByIDs, ids)
	return collect(rows, err, scanUser)
}

const countUsers = `-- name: CountUsers :one
SELECT COUNT(*) FROM users`

func (q *Queries) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countUsers).Scan(&count)
	return count, translateError(err)
}

const updateUserPassword = `-- name: UpdateUserPassword :exec
UPDATE users SET password_hash = $2 WHERE id = $1`

func (q *Queries) UpdateUserPassword(ctx context.Context, arg database.UpdateUserPasswordParams) error {
	tag, err := q.db.Exec(ctx, updateUserPassword, arg.ID, arg.PasswordHash)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return database.ErrNoRows
	}
	return nil
}

const getAdminCount = `-- name: GetAdminCount :one
SELECT COUNT(*) FROM users WHERE role = 'admin'`

func (q *Queries) GetAdminCount(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, getAdminCount).Scan(&count)
	return count, translateError(err)
}
