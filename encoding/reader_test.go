package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/numcodec/errs"
)

func TestReader_Basics(t *testing.T) {
	require := require.New(t)

	r := NewReader([]byte("abc"))
	require.Equal(3, r.Len())
	require.False(r.EOF())

	b, ok := r.Peek()
	require.True(ok)
	require.Equal(byte('a'), b)
	require.Equal(0, r.Pos())

	b, ok = r.Next()
	require.True(ok)
	require.Equal(byte('a'), b)
	require.Equal(1, r.Pos())
	require.Equal(2, r.Len())

	r.Next()
	r.Next()
	require.True(r.EOF())

	_, ok = r.Next()
	require.False(ok)
	_, ok = r.Peek()
	require.False(ok)
}

func TestReader_ReadFull(t *testing.T) {
	require := require.New(t)

	r := NewReader([]byte{1, 2, 3, 4})
	b, err := r.ReadFull(3)
	require.NoError(err)
	require.Equal([]byte{1, 2, 3}, b)

	_, err = r.ReadFull(2)
	require.ErrorIs(err, errs.ErrUnexpectedEnd)

	b, err = r.ReadFull(1)
	require.NoError(err)
	require.Equal([]byte{4}, b)
}

func TestReader_Expect(t *testing.T) {
	require := require.New(t)

	r := NewReader([]byte(`"null"`))
	require.NoError(r.ExpectByte('"'))
	require.NoError(r.ExpectLiteral("null"))
	require.NoError(r.ExpectByte('"'))
	require.True(r.EOF())

	r.Reset([]byte("nul"))
	err := r.ExpectLiteral("null")
	require.ErrorIs(err, errs.ErrUnexpectedEnd)

	r.Reset([]byte("nope"))
	err = r.ExpectLiteral("null")
	require.ErrorIs(err, errs.ErrMalformedInput)
}
