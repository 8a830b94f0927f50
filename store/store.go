package store

import (
	"context"
	"errors"

	"github.com/hradmin/employee-admin/models"
)

var (
	// ErrDuplicateEmail is the unique-index conflict on email. Kept
	// separate from validation failures: it means the record already
	// exists, not that the input was malformed.
	ErrDuplicateEmail = errors.New("employee email already exists")

	ErrNotFound = errors.New("employee not found")
)

// EmployeeStore is the persistence boundary. All invariant checking
// happens before this layer; the only constraint it owns is the unique
// index on email.
type EmployeeStore interface {
	Insert(ctx context.Context, e *models.Employee) error
	Update(ctx context.Context, e *models.Employee) error
	Get(ctx context.Context, id uint) (*models.Employee, error)
}
