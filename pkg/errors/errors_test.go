package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	base := fmt.Errorf("base failure")

	wrapped := Wrap(base, "context")
	require.Error(t, wrapped)
	assert.Equal(t, "context: base failure", wrapped.Error())
	assert.True(t, errors.Is(wrapped, base))

	assert.NoError(t, Wrap(nil, "context"))
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrDownloadFailed, "fetching %s", "mod.zip")
	require.Error(t, wrapped)
	assert.Equal(t, "fetching mod.zip: download failed", wrapped.Error())
	assert.True(t, errors.Is(wrapped, ErrDownloadFailed))

	assert.NoError(t, Wrapf(nil, "fetching %s", "mod.zip"))
}
