package scene

import "fmt"

// Kind tags what an Id refers to.
type Kind uint32

const (
	KindEmitter Kind = iota + 1
	KindBody
)

func (k Kind) String() string {
	switch k {
	case KindEmitter:
		return "emitter"
	case KindBody:
		return "body"
	}
	return fmt.Sprintf("Kind(%d)", uint32(k))
}

// Id encodes both the kind (upper 32 bits) and a per-scene sequence number (lower 32 bits)
type Id uint64

// NewId creates an Id from a kind and sequence number
func NewId(kind Kind, index uint32) Id {
	return Id(uint64(kind)<<32 | uint64(index))
}

// Kind extracts the kind from the id
func (id Id) Kind() Kind {
	return Kind(id >> 32)
}

// Index extracts the sequence number from the id
func (id Id) Index() uint32 {
	return uint32(id & 0xFFFFFFFF)
}

func (id Id) String() string {
	return fmt.Sprintf("%s#%d", id.Kind(), id.Index())
}
