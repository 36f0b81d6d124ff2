package queries

import (
	"context"
	"database/sql"
	"errors"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/errs"

	"gorm.io/gorm"
)

// authorizeRequestAccess checks that the actor may read data belonging to a
// request: coordinators always may, students only for their own request.
// Returns errs.ErrObjectNotFound when the request does not exist.
func authorizeRequestAccess(ctx context.Context, db *gorm.DB, actor kernel.Principal, requestID uint64) error {
	if actor.IsCoordinator() {
		return nil
	}

	var ownerID uint64
	row := db.WithContext(ctx).Raw(`
		SELECT user_id FROM requests WHERE id = ?
	`, requestID).Row()
	if err := row.Scan(&ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.NewObjectNotFoundError("requestID", requestID)
		}
		return err
	}

	if ownerID != actor.UserID() {
		return errs.NewForbiddenError("read another user's request data")
	}

	return nil
}
