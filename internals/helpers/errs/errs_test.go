package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorReason(t *testing.T) {
	err := NewValidation("Amount must be greater than %d", 0)
	assert.Equal(t, "Amount must be greater than 0", err.Error())

	var ve *ValidationError
	require.ErrorAs(t, error(err), &ve)
	assert.Equal(t, err.Reason, ve.Reason)
}

func TestStoreWrapsAndUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := Store(cause)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "store:")

	assert.NoError(t, Store(nil))
}

func TestFileStoreWrapsAndUnwraps(t *testing.T) {
	cause := errors.New("disk full")
	err := FileStore(cause)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "filestore:")

	assert.NoError(t, FileStore(nil))
}

func TestNotFoundSentinelsAreDistinct(t *testing.T) {
	assert.NotErrorIs(t, ErrClaimNotFound, ErrDocumentNotFound)
	assert.NotErrorIs(t, ErrDocumentNotFound, ErrFileNotFound)
}
