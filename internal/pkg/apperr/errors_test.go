package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := NotFound("collection %d not found", 42)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Contains(t, err.Error(), "collection 42 not found")

	wrapped := fmt.Errorf("handling request: %w", err)
	assert.Equal(t, KindNotFound, KindOf(wrapped))

	assert.Equal(t, KindStorage, KindOf(errors.New("connection reset")))
}

func TestStorageUnwrap(t *testing.T) {
	cause := errors.New("pq: deadlock detected")
	err := Storage(cause, "delete cascade failed")

	assert.Equal(t, KindStorage, KindOf(err))
	assert.ErrorIs(t, err, cause)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, 404, HTTPStatus(KindNotFound))
	assert.Equal(t, 400, HTTPStatus(KindInvalidOperation))
	assert.Equal(t, 400, HTTPStatus(KindValidation))
	assert.Equal(t, 409, HTTPStatus(KindDuplicateLabel))
	assert.Equal(t, 409, HTTPStatus(KindAlreadyExists))
	assert.Equal(t, 403, HTTPStatus(KindUnauthorized))
	assert.Equal(t, 500, HTTPStatus(KindStorage))
}
