package workload

import (
	"fmt"
	"strings"
)

// Kind enumerates the kinds of commands.
type Kind uint8

// Command kinds. The zero value is not a valid kind.
const (
	Insert Kind = iota + 1 // insert Value at position Left
	Update                 // replace element at position Left with Value
	Sum                    // sum of range [Left, Right)
	Permute                // next permutation of range [Left, Right)
)

var kindNames = [...]string{"", "insert", "update", "sum", "permute"}

func (k Kind) String() string {
	if k < Insert || k > Permute {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, error) {
	for k := Insert; k <= Permute; k++ {
		if strings.EqualFold(name, kindNames[k]) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown command kind %q", name)
}

// Command is a single operation on a sequence.
//
// Insert and Update use Left as the position and ignore Right; Sum and
// Permute address the half-open range [Left, Right) and ignore Value.
type Command struct {
	Kind  Kind
	Left  uint64
	Right uint64
	Value int64
}

// InsertCmd creates an insert command.
func InsertCmd(value int64, pos uint64) Command {
	return Command{Kind: Insert, Left: pos, Value: value}
}

// UpdateCmd creates an update command.
func UpdateCmd(value int64, pos uint64) Command {
	return Command{Kind: Update, Left: pos, Value: value}
}

// SumCmd creates a range-sum command.
func SumCmd(left, right uint64) Command {
	return Command{Kind: Sum, Left: left, Right: right}
}

// PermuteCmd creates a next-permutation command.
func PermuteCmd(left, right uint64) Command {
	return Command{Kind: Permute, Left: left, Right: right}
}

// String formats a command in script notation, e.g. "insert 5 0".
func (c Command) String() string {
	switch c.Kind {
	case Insert, Update:
		return fmt.Sprintf("%s %d %d", c.Kind, c.Value, c.Left)
	default:
		return fmt.Sprintf("%s %d %d", c.Kind, c.Left, c.Right)
	}
}

// Sequence is the set of operations a workload exercises. It is implemented
// by *permrope.Rope and by *reference.Slice.
type Sequence interface {
	Insert(value int64, pos uint64) error
	Update(value int64, pos uint64) error
	RangeSum(left, right uint64) (int64, error)
	NextPermutation(left, right uint64) (bool, error)
}
