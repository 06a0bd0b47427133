package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: UniqueViolationCode, ConstraintName: "skills_name_key"}

	if !IsUniqueViolation(pgErr) {
		t.Error("expected unique violation to be detected")
	}
	if !IsUniqueViolation(fmt.Errorf("error creating skill: %w", pgErr)) {
		t.Error("expected wrapped unique violation to be detected")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: ForeignKeyViolationCode}) {
		t.Error("foreign key violation misdetected as unique violation")
	}
	if IsUniqueViolation(errors.New("boom")) {
		t.Error("plain error misdetected as unique violation")
	}
}

func TestIsDuplicateConstraintError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: UniqueViolationCode, ConstraintName: "users_email_key"}

	if !IsDuplicateConstraintError(pgErr, "users_email_key") {
		t.Error("expected duplicate on named constraint to be detected")
	}
	if IsDuplicateConstraintError(pgErr, "skills_name_key") {
		t.Error("constraint name mismatch should not match")
	}
	if IsDuplicateConstraintError(&pgconn.PgError{Code: ForeignKeyViolationCode, ConstraintName: "users_email_key"}, "users_email_key") {
		t.Error("non-unique code should not match")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: ForeignKeyViolationCode, ConstraintName: "sessions_tutor_id_fkey"}

	if !IsForeignKeyViolation(pgErr) {
		t.Error("expected foreign key violation to be detected")
	}
	if !IsForeignKeyViolation(fmt.Errorf("error creating session: %w", pgErr)) {
		t.Error("expected wrapped foreign key violation to be detected")
	}
	if IsForeignKeyViolation(&pgconn.PgError{Code: UniqueViolationCode}) {
		t.Error("unique violation misdetected as foreign key violation")
	}
	if IsForeignKeyViolation(errors.New("boom")) {
		t.Error("plain error misdetected as foreign key violation")
	}
}
