package db

import (
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrConstraint marks a statement rejected by a schema constraint (foreign
// key, unique, check or not-null).
var ErrConstraint = errors.New("constraint violation")

// ErrForeignKey narrows ErrConstraint to a reference to a missing row. Errors
// matching it also match ErrConstraint.
var ErrForeignKey = fmt.Errorf("%w: foreign key", ErrConstraint)

func IsConstraint(err error) bool { return errors.Is(err, ErrConstraint) }

func IsForeignKey(err error) bool { return errors.Is(err, ErrForeignKey) }

// mapError tags SQLite constraint failures with ErrConstraint, keeping the
// driver error in the chain.
func mapError(err error) error {
	if err == nil || errors.Is(err, ErrConstraint) {
		return err
	}
	var se *sqlite.Error
	if !errors.As(err, &se) || se.Code()&0xff != sqlite3.SQLITE_CONSTRAINT {
		return err
	}
	if se.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
		return fmt.Errorf("%w: %w", ErrForeignKey, err)
	}
	return fmt.Errorf("%w: %w", ErrConstraint, err)
}
