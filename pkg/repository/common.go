package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// writeAttempts limits retries of a write blocked by another writer
const writeAttempts = 5

// criticalError marks a write failure that is not worth retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error {
	return e.err
}

// execFunc runs a single write statement
type execFunc func(ctx context.Context, query string, args ...any) (sql.Result, error)

// retryWrite runs the statement, retrying lock errors with backoff.
// Any other error ends the loop after the first attempt and is returned as criticalError.
func retryWrite(ctx context.Context, exec execFunc, op, query string, args ...any) error {
	var critical error
	err := repeater.NewBackoff(writeAttempts, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second)).Do(ctx, func() error {
		_, err := exec(ctx, query, args...)
		switch {
		case err == nil:
			return nil
		case isLockError(err):
			return err // retry
		default:
			critical = &criticalError{err: fmt.Errorf("%s: %w", op, err)}
			return nil // stop
		}
	})
	if critical != nil {
		return critical
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}
