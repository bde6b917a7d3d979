package sqlite

import (
	"context"

	"github.com/matt-dz/foodgram/internal/database"
)

const userColumns = "id, email, username, first_name, last_name, password_hash, role"

func scanUser(row scanner) (database.User, error) {
	var (
		u    database.User
		role string
	)
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.FirstName, &u.LastName, &u.PasswordHash, &role)
	u.Role = database.Role(role)
	return u, err
}

func (q *Queries) CreateUser(ctx context.Context, arg database.CreateUserParams) (database.User, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO users (email, username, first_name, last_name, password_hash, role)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING `+userColumns,
		arg.Email, arg.Username, arg.FirstName, arg.LastName, arg.PasswordHash, string(arg.Role))
	u, err := scanUser(row)
	return u, translateError(err)
}

func (q *Queries) GetUserByID(ctx context.Context, id int64) (database.User, error) {
	u, err := scanUser(q.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	return u, translateError(err)
}

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (database.User, error) {
	u, err := scanUser(q.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email))
	return u, translateError(err)
}

func (q *Queries) ListUsers(ctx context.Context, arg database.ListUsersParams) ([]database.User, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id LIMIT ? OFFSET ?`, arg.Limit, arg.Offset)
	return collect(rows, err, scanUser)
}

func (q *Queries) ListUsersByIDs(ctx context.Context, ids []int64) ([]database.User, error) {
	if len(ids) == 0 {
		return []database.User{}, nil
	}
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id IN (`+inList(len(ids))+`) ORDER BY id`,
		int64Args(ids)...)
	return collect(rows, err, scanUser)
}

func (q *Queries) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, translateError(err)
}

func (q *Queries) UpdateUserPassword(ctx context.Context, arg database.UpdateUserPasswordParams) error {
	res, err := q.db.ExecContext(ctx, `UPDATE users SET password_hash = ? WHERE id = ?`, arg.PasswordHash, arg.ID)
	if err != nil {
		return translateError(err)
	}
	n, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if n == 0 {
		return database.ErrNoRows
	}
	return nil
}

func (q *Queries) GetAdminCount(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE role = 'admin'`).Scan(&count)
	return count, translateError(err)
}
