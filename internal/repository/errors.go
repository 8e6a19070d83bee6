package repository

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)

// mysqlDuplicateEntry is the MySQL server error number for unique violations.
const mysqlDuplicateEntry = 1062

// isDuplicateEntryError reports whether err is a unique constraint violation
// from either supported driver.
func isDuplicateEntryError(err error) bool {
	if err == nil {
		return false
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

type scanner interface {
	Scan(dest ...any) error
}

// stringList stores an ordered []string as a JSON array column.
type stringList []string

func (l stringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *stringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = stringList{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return errors.New("stringList: unsupported column type")
	}
	if len(raw) == 0 {
		*l = stringList{}
		return nil
	}
	out := []string{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	*l = out
	return nil
}

// nullable maps an optional string onto a nullable column; empty clears it.
func nullable(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}
