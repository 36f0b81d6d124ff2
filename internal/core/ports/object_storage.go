package ports

import "context"

// ObjectStorage is the external collaborator holding uploaded artifacts
// (payment proofs, supporting documents). The workflow core never reads the
// bytes back; it only records the public reference Put returns.
//
// Implementations generate a unique content key under the given category
// prefix, so two uploads of the same file never collide. Failures surface as
// errs.ErrStorage.
type ObjectStorage interface {
	Put(ctx context.Context, category string, data []byte, contentType string) (string, error)
}
