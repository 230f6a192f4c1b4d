package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cairncms/cairn/pkg/server/store"
)

// translate maps GORM's not-found sentinel to the store-level one.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	return err
}
