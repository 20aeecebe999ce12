package site

import (
	"context"
	"database/sql"
	"fmt"
)

// SetupSchema creates the members and workshops tables. Rows keep the order of
// the source documents through their position column.
func SetupSchema(db *sql.DB) error {
	const (
		schemaMembers = `
CREATE TABLE IF NOT EXISTS members (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    image TEXT NOT NULL,
    statement TEXT NOT NULL,
    shop TEXT,
    instagram TEXT,
    website TEXT
);
`
		schemaWorkshops = `
CREATE TABLE IF NOT EXISTS workshops (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    date TEXT NOT NULL,
    time TEXT NOT NULL,
    image TEXT NOT NULL,
    description TEXT NOT NULL,
    link TEXT,
    instructor TEXT
);
`
	)

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	for _, stmt := range []string{schemaMembers, schemaWorkshops} {
		if _, err = tx.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return tx.Commit()
}

// ReplaceRecords swaps the stored members and workshops for the given ones.
// Both tables change in one transaction, so a failure leaves the previous
// records of both in place.
func ReplaceRecords(ctx context.Context, db *sql.DB, members []Member, workshops []Workshop) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	if err = replaceMembers(ctx, tx, members); err != nil {
		return err
	}
	if err = replaceWorkshops(ctx, tx, workshops); err != nil {
		return err
	}
	return tx.Commit()
}

func replaceMembers(ctx context.Context, tx *sql.Tx, members []Member) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM members"); err != nil {
		return fmt.Errorf("failed to clear members: %w", err)
	}
	for i, m := range members {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO members (position, name, image, statement, shop, instagram, website) VALUES (?, ?, ?, ?, ?, ?, ?)",
			i, m.Name, m.Image, m.Statement, nullable(m.Shop), nullable(m.Instagram), nullable(m.Website))
		if err != nil {
			return fmt.Errorf("failed to insert member #%d: %w", i, err)
		}
	}
	return nil
}

func replaceWorkshops(ctx context.Context, tx *sql.Tx, workshops []Workshop) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM workshops"); err != nil {
		return fmt.Errorf("failed to clear workshops: %w", err)
	}
	for i, w := range workshops {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO workshops (position, name, date, time, image, description, link, instructor) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			i, w.Name, w.Date, w.Time, w.Image, w.Description, nullable(w.Link), nullable(w.Instructor))
		if err != nil {
			return fmt.Errorf("failed to insert workshop #%d: %w", i, err)
		}
	}
	return nil
}

// LoadMembersDB reads the stored members in position order.
func LoadMembersDB(ctx context.Context, db *sql.DB) ([]Member, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT name, image, statement, shop, instagram, website FROM members ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputMalformed, err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var members []Member
	for rows.Next() {
		var m Member
		var shop, instagram, website sql.NullString
		if err = rows.Scan(&m.Name, &m.Image, &m.Statement, &shop, &instagram, &website); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInputMalformed, err)
		}
		m.Shop, m.Instagram, m.Website = shop.String, instagram.String, website.String
		members = append(members, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputMalformed, err)
	}
	return members, nil
}

// LoadWorkshopsDB reads the stored workshops in position order.
func LoadWorkshopsDB(ctx context.Context, db *sql.DB) ([]Workshop, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT name, date, time, image, description, link, instructor FROM workshops ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputMalformed, err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var workshops []Workshop
	for rows.Next() {
		var w Workshop
		var link, instructor sql.NullString
		if err = rows.Scan(&w.Name, &w.Date, &w.Time, &w.Image, &w.Description, &link, &instructor); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInputMalformed, err)
		}
		w.Link, w.Instructor = link.String, instructor.String
		workshops = append(workshops, w)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputMalformed, err)
	}
	return workshops, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
