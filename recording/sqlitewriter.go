package recording

import (
	"database/sql"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/fatih/structs"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// tableName is the one table a trace database holds.
const tableName = "register_access"

// SQLiteWriter stores access traces in a SQLite database. Entries are
// buffered and written in batches.
type SQLiteWriter struct {
	*sql.DB

	dbName    string
	batchSize int
	entries   []AccessTrace
}

// NewSQLiteWriter creates a SQLiteWriter that writes to path + ".sqlite3".
// An empty path picks a unique name.
func NewSQLiteWriter(path string) *SQLiteWriter {
	return &SQLiteWriter{
		dbName:    path,
		batchSize: 100000,
	}
}

// Init establishes the database connection and creates the trace table.
// The flush at process exit is registered here.
func (w *SQLiteWriter) Init() {
	if w.dbName == "" {
		w.dbName = "register_trace_" + xid.New().String()
	}

	filename := w.dbName + ".sqlite3"

	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	fmt.Fprintf(os.Stderr, "Recording register accesses to: %s\n", filename)

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	w.DB = db
	w.createTable()

	atexit.Register(func() { w.Flush() })
}

// Write buffers one trace entry.
func (w *SQLiteWriter) Write(t AccessTrace) {
	w.entries = append(w.entries, t)

	if len(w.entries) >= w.batchSize {
		w.Flush()
	}
}

// Flush writes all buffered entries to the database.
func (w *SQLiteWriter) Flush() {
	if len(w.entries) == 0 {
		return
	}

	w.mustExecute("BEGIN TRANSACTION")
	defer w.mustExecute("COMMIT TRANSACTION")

	stmt := w.prepareStatement()
	defer stmt.Close()

	for _, t := range w.entries {
		v := []any{}

		fields := reflect.ValueOf(t)
		for i := 0; i < fields.NumField(); i++ {
			v = append(v, fields.Field(i).Interface())
		}

		_, err := stmt.Exec(v...)
		if err != nil {
			panic(err)
		}
	}

	w.entries = nil
}

func (w *SQLiteWriter) createTable() {
	columns := strings.Join(structs.Names(AccessTrace{}), ", \n\t")

	createTableSQL := `CREATE TABLE ` + tableName +
		` (` + "\n\t" + columns + "\n" + `);`
	w.mustExecute(createTableSQL)
}

func (w *SQLiteWriter) prepareStatement() *sql.Stmt {
	n := structs.Names(AccessTrace{})
	for i := 0; i < len(n); i++ {
		n[i] = "?"
	}

	sqlStr := "INSERT INTO " + tableName +
		" VALUES (" + strings.Join(n, ", ") + ")"

	stmt, err := w.Prepare(sqlStr)
	if err != nil {
		panic(err)
	}

	return stmt
}

func (w *SQLiteWriter) mustExecute(query string) sql.Result {
	res, err := w.Exec(query)
	if err != nil {
		fmt.Printf("Failed to execute: %s\n", query)
		panic(err)
	}

	return res
}
