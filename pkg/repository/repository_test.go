package repository_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/PRagan/gleaner/pkg/repository"
)

var (
	errNotFound  = errors.New("record not found")
	errDuplicate = errors.New("record already exists")
)

func TestMapErrorNil(t *testing.T) {
	if got := repository.MapError(nil, errNotFound, errDuplicate); got != nil {
		t.Errorf("MapError(nil) = %v, want nil", got)
	}
}

func TestMapErrorNotFound(t *testing.T) {
	got := repository.MapError(sql.ErrNoRows, errNotFound, errDuplicate)
	if !errors.Is(got, errNotFound) {
		t.Errorf("MapError(sql.ErrNoRows) = %v, want %v", got, errNotFound)
	}
}

func TestMapErrorDuplicate(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505"}
	got := repository.MapError(pgErr, errNotFound, errDuplicate)
	if !errors.Is(got, errDuplicate) {
		t.Errorf("MapError(unique violation) = %v, want %v", got, errDuplicate)
	}
}

func TestMapErrorPassthrough(t *testing.T) {
	original := errors.New("connection refused")
	got := repository.MapError(original, errNotFound, errDuplicate)
	if !errors.Is(got, original) {
		t.Errorf("MapError(unrelated) = %v, want %v", got, original)
	}
}

func TestMapErrorPgNonDuplicate(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503"}
	got := repository.MapError(pgErr, errNotFound, errDuplicate)
	if got != error(pgErr) {
		t.Errorf("MapError(foreign key violation) = %v, want the original error", got)
	}
}
