package port

import "context"

type IdempotencyStatus int

const (
	// IdempotencyReserved means the caller now owns the key and must either
	// Complete or Release it.
	IdempotencyReserved IdempotencyStatus = iota
	// IdempotencyPending means another request holds the key.
	IdempotencyPending
	// IdempotencyCompleted means a stored response is available for replay.
	IdempotencyCompleted
)

type IdempotencyStore interface {
	// Reserve claims key for owner, returns the stored response when the key already completed
	Reserve(ctx context.Context, key, owner string) (IdempotencyStatus, []byte, error)

	// Complete stores the response for key if owner still holds it
	Complete(ctx context.Context, key, owner string, response []byte) error

	// Release drops the reservation so the request can be retried
	Release(ctx context.Context, key, owner string) error
}
