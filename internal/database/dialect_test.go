package database

import (
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

func TestDriverNames(t *testing.T) {
	tests := []struct {
		dialect Dialect
		want    string
	}{
		{NewSQLiteDialect(), "sqlite3"},
		{NewPostgresDialect(), "postgres"},
		{NewMySQLDialect(), "mysql"},
	}

	for _, tt := range tests {
		if got := tt.dialect.DriverName(); got != tt.want {
			t.Errorf("DriverName() = %q, want %q", got, tt.want)
		}
	}
}

func TestRewriteQuery(t *testing.T) {
	query := "SELECT id, title FROM lessons WHERE level = ? AND lesson_number = ?"

	t.Run("sqlite keeps placeholders", func(t *testing.T) {
		if got := NewSQLiteDialect().RewriteQuery(query); got != query {
			t.Errorf("unexpected rewrite: %q", got)
		}
	})

	t.Run("mysql keeps placeholders", func(t *testing.T) {
		if got := NewMySQLDialect().RewriteQuery(query); got != query {
			t.Errorf("unexpected rewrite: %q", got)
		}
	})

	t.Run("postgres numbers placeholders", func(t *testing.T) {
		want := "SELECT id, title FROM lessons WHERE level = $1 AND lesson_number = $2"
		if got := NewPostgresDialect().RewriteQuery(query); got != want {
			t.Errorf("RewriteQuery() = %q, want %q", got, want)
		}
	})

	t.Run("no placeholders", func(t *testing.T) {
		plain := "DELETE FROM lessons"
		if got := NewPostgresDialect().RewriteQuery(plain); got != plain {
			t.Errorf("unexpected rewrite: %q", got)
		}
	})
}

func TestMySQLDSNParams(t *testing.T) {
	d := NewMySQLDialect()

	t.Run("appends required params", func(t *testing.T) {
		dsn := d.DSN(DialectConfig{URL: "user:pw@tcp(localhost:3306)/lesen"})
		want := "user:pw@tcp(localhost:3306)/lesen?parseTime=true&multiStatements=true"
		if dsn != want {
			t.Errorf("DSN() = %q, want %q", dsn, want)
		}
	})

	t.Run("keeps existing params", func(t *testing.T) {
		dsn := d.DSN(DialectConfig{URL: "user:pw@tcp(localhost:3306)/lesen?charset=utf8mb4"})
		want := "user:pw@tcp(localhost:3306)/lesen?charset=utf8mb4&parseTime=true&multiStatements=true"
		if dsn != want {
			t.Errorf("DSN() = %q, want %q", dsn, want)
		}
	})
}

func TestIsUniqueViolation(t *testing.T) {
	t.Run("sqlite", func(t *testing.T) {
		d := NewSQLiteDialect()
		uniqueErr := sqlite3.Error{
			Code:         sqlite3.ErrConstraint,
			ExtendedCode: sqlite3.ErrConstraintUnique,
		}
		if !d.IsUniqueViolation(uniqueErr) {
			t.Error("unique constraint error should be detected")
		}
		otherErr := sqlite3.Error{
			Code:         sqlite3.ErrConstraint,
			ExtendedCode: sqlite3.ErrConstraintNotNull,
		}
		if d.IsUniqueViolation(otherErr) {
			t.Error("not-null violation should not be detected as unique")
		}
	})

	t.Run("postgres", func(t *testing.T) {
		d := NewPostgresDialect()
		if !d.IsUniqueViolation(&pq.Error{Code: "23505"}) {
			t.Error("unique_violation code should be detected")
		}
		if d.IsUniqueViolation(&pq.Error{Code: "23503"}) {
			t.Error("foreign key violation should not be detected as unique")
		}
	})

	t.Run("mysql", func(t *testing.T) {
		d := NewMySQLDialect()
		if !d.IsUniqueViolation(&mysql.MySQLError{Number: 1062}) {
			t.Error("ER_DUP_ENTRY should be detected")
		}
		if d.IsUniqueViolation(&mysql.MySQLError{Number: 1048}) {
			t.Error("other MySQL errors should not be detected as unique")
		}
	})

	t.Run("plain errors", func(t *testing.T) {
		plain := errors.New("connection refused")
		for _, d := range []Dialect{NewSQLiteDialect(), NewPostgresDialect(), NewMySQLDialect()} {
			if d.IsUniqueViolation(plain) {
				t.Errorf("%s: plain error should not be a unique violation", d.DriverName())
			}
		}
	})
}
