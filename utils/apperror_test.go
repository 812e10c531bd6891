package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{BadRequest("post already liked"), http.StatusBadRequest},
		{Unauthorized("token is empty"), http.StatusUnauthorized},
		{Forbidden("you cannot delete another user's post"), http.StatusForbidden},
		{NotFound("post not found"), http.StatusNotFound},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestIsKindSeesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("deleting post: %w", NotFound("post not found"))
	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindForbidden))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}
