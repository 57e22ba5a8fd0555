package catalog

import (
	"database/sql"
	"encoding/json"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/enumeral/enumeral/internal/enumtype"
)

//go:embed schema.sql
var schemaSQL string

// Store persists registered enum types in SQLite so a registry can be
// rebuilt without re-reading declaration files.
type Store struct {
	db *sql.DB
}

// OpenStore creates or opens a catalog database at the given path.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode
//   - 5-second busy timeout for lock contention
//
// This function is idempotent - safe to call multiple times.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to catalog database: %w", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY under concurrent registration.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply catalog schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// storedEntry is the JSON shape of one entry in the entries column.
type storedEntry struct {
	Key  string `json:"key"`
	Int  int64  `json:"int,omitempty"`
	Text string `json:"text,omitempty"`
}

// execer abstracts sql.DB and sql.Tx for inserts.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// SaveDefinition persists one definition. Saving a name that already
// exists (case-insensitively) fails, matching the registry's
// DuplicateTypeError semantics at the storage layer.
func (s *Store) SaveDefinition(def *enumtype.Definition) error {
	return insertDefinition(s.db, def)
}

// SaveAll persists definitions in one transaction.
func (s *Store) SaveAll(defs []*enumtype.Definition) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	for _, def := range defs {
		if err := insertDefinition(tx, def); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func insertDefinition(db execer, def *enumtype.Definition) error {
	entries := make([]storedEntry, len(def.Entries()))
	for i, e := range def.Entries() {
		entries[i] = storedEntry{Key: e.Key}
		switch e.Value.Kind() {
		case enumtype.KindIntegral:
			entries[i].Int = e.Value.Int64()
		case enumtype.KindTextual:
			entries[i].Text = e.Value.Text()
		}
	}
	encoded, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode entries for '%s': %w", def.Name(), err)
	}

	_, err = db.Exec(
		`INSERT INTO enum_types (id, qualified_name, kind, entries, registered_at)
		 VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), def.Name(), def.Kind().String(), string(encoded), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("save enum type '%s': %w", def.Name(), err)
	}
	return nil
}

// LoadAll rebuilds every stored definition in registration order.
func (s *Store) LoadAll() ([]*enumtype.Definition, error) {
	rows, err := s.db.Query(
		`SELECT qualified_name, kind, entries
		 FROM enum_types
		 ORDER BY registered_at, qualified_name`)
	if err != nil {
		return nil, fmt.Errorf("load enum types: %w", err)
	}
	defer rows.Close()

	var defs []*enumtype.Definition
	for rows.Next() {
		var name, kindStr, encoded string
		if err := rows.Scan(&name, &kindStr, &encoded); err != nil {
			return nil, fmt.Errorf("scan enum type: %w", err)
		}

		var kind enumtype.Kind
		switch kindStr {
		case "integral":
			kind = enumtype.KindIntegral
		case "textual":
			kind = enumtype.KindTextual
		default:
			return nil, fmt.Errorf("enum type '%s': unknown stored kind %q", name, kindStr)
		}

		var stored []storedEntry
		if err := json.Unmarshal([]byte(encoded), &stored); err != nil {
			return nil, fmt.Errorf("decode entries for '%s': %w", name, err)
		}
		entries := make([]enumtype.Entry, len(stored))
		for i, e := range stored {
			if kind == enumtype.KindIntegral {
				entries[i] = enumtype.Entry{Key: e.Key, Value: enumtype.IntegralRaw(e.Int)}
			} else {
				entries[i] = enumtype.Entry{Key: e.Key, Value: enumtype.TextualRaw(e.Text)}
			}
		}

		def, err := enumtype.NewDefinition(name, kind, entries)
		if err != nil {
			return nil, fmt.Errorf("rebuild enum type '%s': %w", name, err)
		}
		defs = append(defs, def)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate enum types: %w", err)
	}
	return defs, nil
}
