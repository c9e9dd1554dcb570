package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/piperubio/registry/logging"
	"github.com/piperubio/registry/model"
	"github.com/piperubio/registry/registry"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStorage is a registry mirror kept in a single sqlite file. It serves
// the same documents as registry.FileStore.
type SQLiteStorage struct {
	db *sql.DB
}

var _ registry.Source = (*SQLiteStorage)(nil)

const indexKey = "index"

func InitDBStorage(db *sql.DB) error {
	statements := []string{
		`create table if not exists meta(key text primary key, value blob not null)`,
		`create table if not exists components(name text primary key, document blob not null)`,
		`create table if not exists files(component text not null, position int not null, path text not null, content text not null,
			primary key (component, position))`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("could not run %q: %w", stmt, err)
		}
	}

	return nil
}

func ConnectDB(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}

	// :memory: databases are per connection.
	db.SetMaxOpenConns(1)

	if err := InitDBStorage(db); err != nil {
		_ = db.Close()

		return nil, err
	}

	slog.DebugContext(logging.PackageCtx("db"), "Opened registry database", "path", path)

	return &SQLiteStorage{db}, nil
}

func (s *SQLiteStorage) StoreIndex(ctx context.Context, document []byte) error {
	_, err := s.db.ExecContext(ctx,
		`insert into meta(key, value) values(?, ?) on conflict(key) do update set value = excluded.value`,
		indexKey, document)
	if err != nil {
		return fmt.Errorf("could not store index: %w", err)
	}

	return nil
}

// StoreComponent replaces a component document together with its sources.
func (s *SQLiteStorage) StoreComponent(ctx context.Context, name string, document []byte, code *model.ComponentCode) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}

	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`insert into components(name, document) values(?, ?) on conflict(name) do update set document = excluded.document`,
		name, document); err != nil {
		return fmt.Errorf("could not store component %s: %w", name, err)
	}

	if _, err := tx.ExecContext(ctx, `delete from files where component = ?`, name); err != nil {
		return fmt.Errorf("could not clear files of %s: %w", name, err)
	}

	if code != nil {
		for i, f := range code.Files {
			if _, err := tx.ExecContext(ctx,
				`insert into files(component, position, path, content) values(?, ?, ?, ?)`,
				name, i, f.Path, f.Content); err != nil {
				return fmt.Errorf("could not store file %s of %s: %w", f.Path, name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit component %s: %w", name, err)
	}

	return nil
}

func (s *SQLiteStorage) Index(ctx context.Context) ([]byte, error) {
	var document []byte

	err := s.db.QueryRowContext(ctx, `select value from meta where key = ?`, indexKey).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("registry index: %w", registry.ErrNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("could not load index: %w", err)
	}

	return document, nil
}

func (s *SQLiteStorage) Component(ctx context.Context, name string) ([]byte, error) {
	var document []byte

	err := s.db.QueryRowContext(ctx, `select document from components where name = ?`, name).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("component %q: %w", name, registry.ErrNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("could not load component %s: %w", name, err)
	}

	return document, nil
}

func (s *SQLiteStorage) Code(ctx context.Context, name string) (*model.ComponentCode, error) {
	document, err := s.Component(ctx, name)
	if err != nil {
		return nil, err
	}

	var item model.RegistryItem
	if err := json.Unmarshal(document, &item); err != nil {
		return nil, fmt.Errorf("could not decode component %s: %w", name, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`select position, content from files where component = ? order by position`, name)
	if err != nil {
		return nil, fmt.Errorf("could not load files of %s: %w", name, err)
	}
	defer rows.Close()

	contents := make(map[int]string, len(item.Files))

	for rows.Next() {
		var (
			position int
			content  string
		)

		if err := rows.Scan(&position, &content); err != nil {
			return nil, fmt.Errorf("could not scan file of %s: %w", name, err)
		}

		contents[position] = content
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read files of %s: %w", name, err)
	}

	files := make([]model.ComponentFile, 0, len(item.Files))

	for i, ref := range item.Files {
		content, ok := contents[i]
		if !ok {
			return nil, fmt.Errorf("source %s of %s: %w", ref.Path, name, registry.ErrNotFound)
		}

		files = append(files, model.ComponentFile{
			Name:    ref.Name,
			Path:    ref.Path,
			Type:    ref.Type,
			Target:  ref.Target,
			Content: content,
		})
	}

	return registry.NewComponentCode(item, files), nil
}

// Names lists stored components alphabetically.
func (s *SQLiteStorage) Names(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `select name from components order by name`)
	if err != nil {
		return nil, fmt.Errorf("could not list components: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("could not scan component name: %w", err)
		}

		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not list components: %w", err)
	}

	return names, nil
}

func (s *SQLiteStorage) Close() {
	if err := s.db.Close(); err != nil {
		slog.ErrorContext(logging.PackageCtx("db"), "Failed to close database", "error", err)
	}
}
