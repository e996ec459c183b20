package format

// Kind identifies one of the fourteen fixed-width numeric kinds handled by
// the codec: signed and unsigned integers of 8 to 256 bits, plus two float
// widths.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindInt128
	KindInt256
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUint128
	KindUint256
	KindFloat32
	KindFloat64
)

// Size returns the in-memory width of the kind in bytes.
//
// This is the narrowed physical storage width of a column value, which may
// be smaller than the logical field type a caller works with.
func (k Kind) Size() int {
	switch k {
	case KindInt8, KindUint8:
		return 1
	case KindInt16, KindUint16:
		return 2
	case KindInt32, KindUint32, KindFloat32:
		return 4
	case KindInt64, KindUint64, KindFloat64:
		return 8
	case KindInt128, KindUint128:
		return 16
	case KindInt256, KindUint256:
		return 32
	default:
		return 0
	}
}

// IsInteger reports whether the kind is one of the twelve integer kinds.
func (k Kind) IsInteger() bool {
	switch k {
	case KindInt8, KindInt16, KindInt32, KindInt64, KindInt128, KindInt256,
		KindUint8, KindUint16, KindUint32, KindUint64, KindUint128, KindUint256:
		return true
	default:
		return false
	}
}

// IsSigned reports whether the kind is a signed integer kind.
func (k Kind) IsSigned() bool {
	switch k {
	case KindInt8, KindInt16, KindInt32, KindInt64, KindInt128, KindInt256:
		return true
	default:
		return false
	}
}

// IsFloat reports whether the kind is one of the two floating-point kinds.
func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// OrderPreserving reports whether the kind supports the order-preserving
// (mem-comparable) binary encoding.
//
// Only integer kinds narrower than 128 bits support it; 128-bit and
// 256-bit integers and both float kinds do not.
func (k Kind) OrderPreserving() bool {
	return k.IsInteger() && k.Size() < 16
}

func (k Kind) String() string {
	switch k {
	case KindInt8:
		return "Int8"
	case KindInt16:
		return "Int16"
	case KindInt32:
		return "Int32"
	case KindInt64:
		return "Int64"
	case KindInt128:
		return "Int128"
	case KindInt256:
		return "Int256"
	case KindUint8:
		return "UInt8"
	case KindUint16:
		return "UInt16"
	case KindUint32:
		return "UInt32"
	case KindUint64:
		return "UInt64"
	case KindUint128:
		return "UInt128"
	case KindUint256:
		return "UInt256"
	case KindFloat32:
		return "Float32"
	case KindFloat64:
		return "Float64"
	default:
		return "Unknown"
	}
}

// Kinds returns all fourteen numeric kinds in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindInt8, KindInt16, KindInt32, KindInt64, KindInt128, KindInt256,
		KindUint8, KindUint16, KindUint32, KindUint64, KindUint128, KindUint256,
		KindFloat32, KindFloat64,
	}
}
