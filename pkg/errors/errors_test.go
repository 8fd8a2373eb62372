package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppErrorMessage(t *testing.T) {
	err := New(CodeUnknownResource, "no such study")
	require.Equal(t, "[UnknownResource] no such study", err.Error())

	wrapped := Wrap(fmt.Errorf("disk gone"), CodeDatabase, "lookup failed")
	require.Equal(t, "[Database] lookup failed: disk gone", wrapped.Error())
}

func TestWrapNil(t *testing.T) {
	require.Nil(t, Wrap(nil, CodeDatabase, "ignored"))
}

func TestWrapPreservesContext(t *testing.T) {
	inner := New(CodeInexistentItem, "missing").WithContext("series", "1.2.840.4711")
	outer := Wrap(inner, CodeDatabase, "query failed")

	require.Equal(t, CodeDatabase, outer.Code)
	require.Equal(t, "1.2.840.4711", outer.Context["series"])
	require.True(t, stderrors.Is(outer, inner) || Is(outer.Err, CodeInexistentItem))
}

func TestIsMatchesCode(t *testing.T) {
	err := NewParameterOutOfRange("rank 5")
	require.True(t, Is(err, CodeParameterOutOfRange))
	require.False(t, Is(err, CodeBadRequest))
	require.False(t, Is(fmt.Errorf("plain"), CodeParameterOutOfRange))

	// wrapped in a plain fmt error, still detectable through As
	chained := fmt.Errorf("outer: %w", err)
	require.True(t, Is(chained, CodeParameterOutOfRange))
}

func TestCodeOf(t *testing.T) {
	require.Equal(t, CodeSuccess, CodeOf(nil))
	require.Equal(t, CodeTimeout, CodeOf(New(CodeTimeout, "slow modality")))
	require.Equal(t, CodeInternalError, CodeOf(fmt.Errorf("opaque")))
}

func TestConstructors(t *testing.T) {
	require.Equal(t, CodeInternalError, NewInternalError("x").Code)
	require.Equal(t, CodeNotImplemented, NewNotImplemented("x").Code)
	require.Equal(t, CodeBadSequenceOfCalls, NewBadSequenceOfCalls("x").Code)
	require.Equal(t, CodeBadRequest, NewBadRequest("x").Code)
	require.Equal(t, CodeInexistentItem, NewInexistentItem("x").Code)
	require.Equal(t, CodeUnknownResource, NewUnknownResource("x").Code)
	require.Equal(t, CodeBadParameterType, NewBadParameterType("x").Code)
}
