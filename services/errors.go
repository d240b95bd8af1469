package services

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Error kinds surfaced by the entity access layer. Handlers map these onto
// HTTP status categories; anything else is an uncategorized storage failure.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateValue = errors.New("value already registered")
	ErrInvalidInput   = errors.New("invalid input")
)

// translate rewrites storage errors into the service taxonomy. Uniqueness
// violations get a generic kind so callers never learn which constraint
// fired. Uncategorized errors are logged and passed through.
func translate(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey),
		strings.Contains(err.Error(), "duplicate key value violates unique constraint"):
		logrus.WithError(err).Warn("uniqueness violation")
		return ErrDuplicateValue
	}
	logrus.WithError(err).Error("storage failure")
	return err
}
