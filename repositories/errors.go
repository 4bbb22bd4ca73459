package repositories

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"myblog-api/models"

	"gorm.io/gorm"
)

// storeErr translates connection-level failures into
// models.ErrStoreUnavailable so callers can tell "the store is down"
// apart from ordinary query errors. Everything else, record-not-found
// included, passes through untouched.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, gorm.ErrInvalidDB) || errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	return err
}
