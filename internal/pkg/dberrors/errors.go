package dberrors

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the API classifies.
const (
	CodeUniqueViolation           = "23505"
	CodeForeignKeyViolation       = "23503"
	CodeCheckViolation            = "23514"
	CodeNotNullViolation          = "23502"
	CodeInvalidTextRepresentation = "22P02"
)

// pgCode returns the SQLSTATE of err, or "" when err is not a PgError.
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUniqueViolation checks if the error is a PostgreSQL unique violation error.
func IsUniqueViolation(err error) bool {
	return pgCode(err) == CodeUniqueViolation
}

// IsForeignKeyViolation reports a reference to a missing row.
func IsForeignKeyViolation(err error) bool {
	return pgCode(err) == CodeForeignKeyViolation
}

// IsInvalidTextRepresentation reports a value the server could not cast, such
// as a malformed uuid literal.
func IsInvalidTextRepresentation(err error) bool {
	return pgCode(err) == CodeInvalidTextRepresentation
}

// IsConstraintViolation reports check and not-null violations, which surface
// schema rules the request validation did not catch.
func IsConstraintViolation(err error) bool {
	code := pgCode(err)
	return code == CodeCheckViolation || code == CodeNotNullViolation
}

// ConstraintMessage returns the server-side description of a violated constraint.
func ConstraintMessage(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Message
	}
	return ""
}

// InvalidTextValue extracts the rejected literal from an invalid text
// representation error, e.g. `abc` from `invalid input syntax for type uuid: "abc"`.
func InvalidTextValue(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != CodeInvalidTextRepresentation {
		return ""
	}
	_, value, ok := strings.Cut(pgErr.Message, ": ")
	if !ok {
		return ""
	}
	return strings.Trim(value, `"`)
}
