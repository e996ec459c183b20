package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKind_Size(t *testing.T) {
	tests := []struct {
		kind Kind
		size int
	}{
		{KindInt8, 1},
		{KindUint8, 1},
		{KindInt16, 2},
		{KindUint16, 2},
		{KindInt32, 4},
		{KindUint32, 4},
		{KindFloat32, 4},
		{KindInt64, 8},
		{KindUint64, 8},
		{KindFloat64, 8},
		{KindInt128, 16},
		{KindUint128, 16},
		{KindInt256, 32},
		{KindUint256, 32},
		{KindInvalid, 0},
	}

	for _, tt := range tests {
		require.Equal(t, tt.size, tt.kind.Size(), "kind %s", tt.kind)
	}
}

func TestKind_Traits(t *testing.T) {
	require := require.New(t)

	for _, k := range Kinds() {
		require.NotEqual(0, k.Size(), "kind %s", k)
		require.NotEqual("Unknown", k.String())

		if k.IsFloat() {
			require.False(k.IsInteger(), "kind %s", k)
			require.False(k.IsSigned(), "kind %s", k)
		} else {
			require.True(k.IsInteger(), "kind %s", k)
		}
	}

	require.True(KindInt8.IsSigned())
	require.True(KindInt256.IsSigned())
	require.False(KindUint64.IsSigned())
	require.False(KindFloat64.IsInteger())
}

func TestKind_OrderPreserving(t *testing.T) {
	supported := map[Kind]bool{
		KindInt8: true, KindInt16: true, KindInt32: true, KindInt64: true,
		KindUint8: true, KindUint16: true, KindUint32: true, KindUint64: true,
	}

	for _, k := range Kinds() {
		require.Equal(t, supported[k], k.OrderPreserving(), "kind %s", k)
	}
}

func TestKind_KindsComplete(t *testing.T) {
	require.Len(t, Kinds(), 14)

	seen := make(map[Kind]struct{})
	for _, k := range Kinds() {
		seen[k] = struct{}{}
	}
	require.Len(t, seen, 14)
}
