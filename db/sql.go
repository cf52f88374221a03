// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.mongodb.org/mongo-driver/bson/primitive"
	msqlite "modernc.org/sqlite"
)

func init() {
	// modernc registers as "sqlite", which sqlx does not know about.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// dialect holds the bits of SQL that differ between backends.
type dialect struct {
	driver           string
	createTable      string
	listTables       string
	isDuplicate      func(error) bool
	isUndefinedTable func(error) bool
}

var sqliteDialect = dialect{
	driver: "sqlite",
	createTable: `CREATE TABLE %s (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		body BLOB NOT NULL
	)`,
	listTables: `SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite\_%' ESCAPE '\'
		ORDER BY name`,
	isDuplicate: func(err error) bool {
		return sqliteErrorContains(err, "already exists")
	},
	isUndefinedTable: func(err error) bool {
		return sqliteErrorContains(err, "no such table")
	},
}

var postgresDialect = dialect{
	driver: "postgres",
	createTable: `CREATE TABLE %s (
		seq BIGSERIAL PRIMARY KEY,
		id TEXT NOT NULL UNIQUE,
		body BYTEA NOT NULL
	)`,
	listTables: `SELECT table_name FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_type = 'BASE TABLE'
		ORDER BY table_name`,
	isDuplicate: func(err error) bool {
		return pqErrorCode(err) == "42P07" // duplicate_table
	},
	isUndefinedTable: func(err error) bool {
		return pqErrorCode(err) == "42P01" // undefined_table
	},
}

func sqliteErrorContains(err error, fragment string) bool {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return strings.Contains(sqliteErr.Error(), fragment)
}

func pqErrorCode(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return ""
	}
	return pqErr.Code
}

// SQLStore keeps each collection in its own table of BSON-encoded bodies.
type SQLStore struct {
	db      *sqlx.DB
	dialect dialect
}

type documentRow struct {
	ID   string `db:"id"`
	Body []byte `db:"body"`
}

// OpenSQLite opens (creating if needed) a SQLite database file.
func OpenSQLite(ctx context.Context, path string) (*SQLStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	return openSQL(ctx, sqliteDialect, sqliteDSN(path))
}

// sqliteDSN appends the busy timeout pragma, keeping any query the caller
// already put on the path.
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=busy_timeout(5000)"
}

// OpenPostgres connects to a PostgreSQL database.
func OpenPostgres(ctx context.Context, url string) (*SQLStore, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errors.New("postgres URL is required")
	}
	return openSQL(ctx, postgresDialect, url)
}

func openSQL(ctx context.Context, d dialect, dsn string) (*SQLStore, error) {
	conn, err := sqlx.Open(d.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", d.driver, err)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", d.driver, err)
	}
	if d.driver == "sqlite" {
		// One writer at a time; avoids SQLITE_BUSY under concurrent uploads.
		conn.SetMaxOpenConns(1)
	}
	return &SQLStore{db: conn, dialect: d}, nil
}

// Close closes the underlying connection pool.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

func quoteIdent(name string) string {
	return `"` + name + `"`
}

// CreateCollection creates the backing table. It fails with
// ErrCollectionExists when the table is already there.
func (s *SQLStore) CreateCollection(ctx context.Context, name string) error {
	if err := validateCollection(name); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, fmt.Sprintf(s.dialect.createTable, quoteIdent(name)))
	if err != nil {
		if s.dialect.isDuplicate(err) {
			return fmt.Errorf("%w: %q", ErrCollectionExists, name)
		}
		return fmt.Errorf("failed to create collection %q: %w", name, err)
	}
	return nil
}

// ListCollections returns table names in sorted order.
func (s *SQLStore) ListCollections(ctx context.Context) ([]string, error) {
	names := []string{}
	if err := s.db.SelectContext(ctx, &names, s.dialect.listTables); err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}

func (s *SQLStore) wrapTableErr(err error, collection, action string) error {
	if s.dialect.isUndefinedTable(err) {
		return fmt.Errorf("%w: %q", ErrCollectionNotFound, collection)
	}
	return fmt.Errorf("failed to %s in %q: %w", action, collection, err)
}

// InsertOne stores doc under a fresh ObjectID and returns its hex form.
func (s *SQLStore) InsertOne(ctx context.Context, collection string, doc Document) (string, error) {
	if err := validateCollection(collection); err != nil {
		return "", err
	}

	body, err := encodeBody(doc)
	if err != nil {
		return "", err
	}

	id := primitive.NewObjectID().Hex()
	query := s.db.Rebind(fmt.Sprintf("INSERT INTO %s (id, body) VALUES (?, ?)", quoteIdent(collection)))
	if _, err := s.db.ExecContext(ctx, query, id, body); err != nil {
		return "", s.wrapTableErr(err, collection, "insert document")
	}
	return id, nil
}

// Find returns every document in insertion order.
func (s *SQLStore) Find(ctx context.Context, collection string) ([]Document, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}

	var rows []documentRow
	query := fmt.Sprintf("SELECT id, body FROM %s ORDER BY seq", quoteIdent(collection))
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, s.wrapTableErr(err, collection, "query documents")
	}

	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		doc, err := decodeBody(row.ID, row.Body)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// FindOne returns the document with the given id or ErrNotFound.
func (s *SQLStore) FindOne(ctx context.Context, collection, id string) (Document, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}
	if _, err := parseID(id); err != nil {
		return nil, err
	}

	var row documentRow
	query := s.db.Rebind(fmt.Sprintf("SELECT id, body FROM %s WHERE id = ?", quoteIdent(collection)))
	err := s.db.GetContext(ctx, &row, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, s.wrapTableErr(err, collection, "query document")
	}
	return decodeBody(row.ID, row.Body)
}

// UpdateOne merges set into the stored document, like Mongo's $set.
func (s *SQLStore) UpdateOne(ctx context.Context, collection, id string, set Document) error {
	if err := validateCollection(collection); err != nil {
		return err
	}
	if _, err := parseID(id); err != nil {
		return err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var row documentRow
	query := tx.Rebind(fmt.Sprintf("SELECT id, body FROM %s WHERE id = ?", quoteIdent(collection)))
	err = tx.GetContext(ctx, &row, query, id)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return s.wrapTableErr(err, collection, "query document")
	}

	doc, err := decodeBody(row.ID, row.Body)
	if err != nil {
		return err
	}
	for k, v := range withoutID(set) {
		doc[k] = v
	}
	body, err := encodeBody(doc)
	if err != nil {
		return err
	}

	update := tx.Rebind(fmt.Sprintf("UPDATE %s SET body = ? WHERE id = ?", quoteIdent(collection)))
	if _, err := tx.ExecContext(ctx, update, body, id); err != nil {
		return s.wrapTableErr(err, collection, "update document")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteOne removes the document with the given id or returns ErrNotFound.
func (s *SQLStore) DeleteOne(ctx context.Context, collection, id string) error {
	if err := validateCollection(collection); err != nil {
		return err
	}
	if _, err := parseID(id); err != nil {
		return err
	}

	query := s.db.Rebind(fmt.Sprintf("DELETE FROM %s WHERE id = ?", quoteIdent(collection)))
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return s.wrapTableErr(err, collection, "delete document")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
