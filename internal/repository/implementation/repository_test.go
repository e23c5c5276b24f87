package implementation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"open-law-be/internal/pkg/apperr"
)

func TestStorageErr(t *testing.T) {
	assert.NoError(t, storageErr(nil, "create book"))

	cause := errors.New("pq: connection refused")
	err := storageErr(cause, "create book")
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "create book")
}
