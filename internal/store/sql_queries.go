// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	ownersTable = "owners"
	todosTable  = "todos"
)

func buildInsertOwnerQuery(b sq.StatementBuilderType, owner string) (string, []any, error) {
	query, args, err := b.Insert(ownersTable).
		Columns("name").
		Values(owner).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildEnsureOwnerQuery inserts owner unless it already exists. ON CONFLICT
// DO NOTHING is understood by both PostgreSQL and SQLite.
func buildEnsureOwnerQuery(b sq.StatementBuilderType, owner string) (string, []any, error) {
	query, args, err := b.Insert(ownersTable).
		Columns("name").
		Values(owner).
		Suffix("ON CONFLICT (name) DO NOTHING").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectOwnerTodosQuery(b sq.StatementBuilderType, owner string) (string, []any, error) {
	query, args, err := b.Select("id", "label").
		From(todosTable).
		Where(sq.Eq{"owner": owner}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertTodoQuery(b sq.StatementBuilderType, owner, label string) (string, []any, error) {
	query, args, err := b.Insert(todosTable).
		Columns("owner", "label").
		Values(owner, label).
		Suffix("RETURNING id, label").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateTodoQuery(b sq.StatementBuilderType, id int64, label string) (string, []any, error) {
	query, args, err := b.Update(todosTable).
		Set("label", label).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, label").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteTodoQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.Delete(todosTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
