package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
)

// ErrDuplicate is returned when an insert or update hits a unique index
// (employee login, one shift per employee per date).
var ErrDuplicate = errors.New("duplicate record")

const mysqlErrDupEntry = 1062

// isUniqueViolation reports whether err is a unique-constraint failure from
// either supported driver.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.ExtendedCode == sqlite3.ErrConstraintUnique || se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == mysqlErrDupEntry
	}
	return false
}

// normalize maps driver unique violations to ErrDuplicate and leaves other errors untouched.
func normalize(err error) error {
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}
