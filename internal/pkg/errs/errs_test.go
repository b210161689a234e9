//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"lendhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSentinel = errors.New("sentinel")

type causeError struct {
	Code int
}

func (e *causeError) Error() string { return "cause failed" }

func TestMark_SentinelMatchesWithNonNilCause(t *testing.T) {
	err := errs.Mark(&causeError{Code: 42}, errSentinel)

	assert.ErrorIs(t, err, errSentinel)
}

func TestMark_CauseStaysInspectable(t *testing.T) {
	err := errs.Mark(&causeError{Code: 42}, errSentinel)

	var cause *causeError
	require.ErrorAs(t, err, &cause)
	assert.Equal(t, 42, cause.Code)
	assert.Equal(t, "cause failed", err.Error())
}

func TestMark_NilCauseReturnsMark(t *testing.T) {
	assert.Same(t, errSentinel, errs.Mark(nil, errSentinel))
}

func TestMark_NestedMarksAllMatch(t *testing.T) {
	other := errors.New("other")
	err := errs.Mark(errs.Mark(&causeError{}, errSentinel), other)

	assert.ErrorIs(t, err, errSentinel)
	assert.ErrorIs(t, err, other)
}

func TestMark_UnrelatedSentinelDoesNotMatch(t *testing.T) {
	err := errs.Mark(&causeError{}, errSentinel)

	assert.False(t, errors.Is(err, errors.New("unrelated")))
}
