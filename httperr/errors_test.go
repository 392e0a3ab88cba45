package httperr

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Status(Validation("bad")))
	assert.Equal(t, http.StatusNotFound, Status(NotFound("missing")))
	assert.Equal(t, http.StatusConflict, Status(Conflict("dup")))
	assert.Equal(t, http.StatusInternalServerError, Status(Store(errors.New("down"))))
}

func TestStatusOfUnclassifiedError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("anything")))
}

func TestStatusSeesThroughWrapping(t *testing.T) {
	wrapped := errors.Wrap(NotFound("missing"), "while fetching")
	assert.Equal(t, http.StatusNotFound, Status(wrapped))
	assert.True(t, IsNotFound(wrapped))
}

func TestStoreHidesTheCause(t *testing.T) {
	err := Store(errors.New("connection refused"))
	assert.Equal(t, "storage unavailable", err.Error())
	assert.Contains(t, errors.Cause(err.Cause).Error(), "connection refused")
}
