package protocol

// Operation encodes the comparison operation requested by a session server.
// Its value is the operation's on-the-wire tag byte.
type Operation byte

const (
	// OperationDiff indicates a two-way file comparison.
	OperationDiff Operation = 0x01
	// OperationMerge indicates a three-way file merge with an output file.
	OperationMerge Operation = 0x02
)

// Supported returns whether or not the operation is a known protocol
// operation.
func (o Operation) Supported() bool {
	switch o {
	case OperationDiff:
		return true
	case OperationMerge:
		return true
	default:
		return false
	}
}

// PathCount returns the number of paths exchanged for the operation. The
// count is fixed by the operation itself and is never transmitted. It panics
// for unsupported operations.
func (o Operation) PathCount() int {
	switch o {
	case OperationDiff:
		return 2
	case OperationMerge:
		return 4
	default:
		panic("unsupported operation")
	}
}

// String provides a human-readable representation of the operation.
func (o Operation) String() string {
	switch o {
	case OperationDiff:
		return "diff"
	case OperationMerge:
		return "merge"
	default:
		return "unknown"
	}
}
