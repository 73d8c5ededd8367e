// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/items-keeper/models"
)

var (
	userColumns = []string{"id", "email", "username", "password_hash", "created_at"}
	itemColumns = []string{"id", "title", "description", "price", "created_at", "updated_at"}
)

func (db *DB) buildInsertUserQuery(user models.User) (string, []any, error) {
	q := db.builder.
		Insert(user.TableName()).
		Columns("email", "username", "password_hash", "created_at").
		Values(user.Email, user.Username, user.PasswordHash, user.CreatedAt)

	return db.toSQL(db.returningID(q))
}

func (db *DB) buildSelectUserQuery(where sq.Eq) (string, []any, error) {
	return db.toSQL(db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		Limit(1))
}

func (db *DB) buildListUsersQuery(page models.Pagination) (string, []any, error) {
	return db.toSQL(db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("id").
		Limit(page.Limit).
		Offset(page.Skip))
}

func (db *DB) buildInsertItemQuery(item models.Item) (string, []any, error) {
	q := db.builder.
		Insert(item.TableName()).
		Columns("title", "description", "price", "created_at", "updated_at").
		Values(item.Title, item.Description, item.Price, item.CreatedAt, item.UpdatedAt)

	return db.toSQL(db.returningID(q))
}

func (db *DB) buildSelectItemQuery(id int64) (string, []any, error) {
	return db.toSQL(db.builder.
		Select(itemColumns...).
		From(models.Item{}.TableName()).
		Where(sq.Eq{"id": id}))
}

func (db *DB) buildListItemsQuery(page models.Pagination) (string, []any, error) {
	return db.toSQL(db.builder.
		Select(itemColumns...).
		From(models.Item{}.TableName()).
		OrderBy("id").
		Limit(page.Limit).
		Offset(page.Skip))
}

func (db *DB) buildUpdateItemQuery(item models.Item, updatedAt time.Time) (string, []any, error) {
	return db.toSQL(db.builder.
		Update(item.TableName()).
		Set("title", item.Title).
		Set("description", item.Description).
		Set("price", item.Price).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": item.ID}))
}

func (db *DB) buildDeleteItemQuery(id int64) (string, []any, error) {
	return db.toSQL(db.builder.
		Delete(models.Item{}.TableName()).
		Where(sq.Eq{"id": id}))
}

// returningID appends RETURNING id where the driver cannot report the last
// insert id. SQLite statements are executed and use LastInsertId instead.
func (db *DB) returningID(q sq.InsertBuilder) sq.InsertBuilder {
	if db.dialect == DialectSQLite {
		return q
	}
	return q.Suffix("RETURNING id")
}

func (db *DB) toSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
