package barrier

import (
	"strconv"
	"strings"

	"github.com/matzehuels/barrierkit/pkg/errors"
)

// Kind selects a barrier layout.
type Kind int

const (
	KindNone Kind = iota
	KindVerticalBar
	KindRandomVerticalBar
	KindStaggeredBlocks
	KindHorizontalBar
	KindIslands
	KindSpots
)

var kindInfo = [...]struct {
	name string
	desc string
}{
	KindNone:              {"none", "no barrier"},
	KindVerticalBar:       {"vertical-bar", "vertical bar in a constant location"},
	KindRandomVerticalBar: {"random-vertical-bar", "vertical bar in a random location"},
	KindStaggeredBlocks:   {"staggered-blocks", "five blocks staggered"},
	KindHorizontalBar:     {"horizontal-bar", "horizontal bar in a constant location"},
	KindIslands:           {"islands", "floating islands, new locations every generation"},
	KindSpots:             {"spots", "spots down the vertical midline"},
}

// Kinds returns every valid kind in selector order.
func Kinds() []Kind {
	out := make([]Kind, len(kindInfo))
	for i := range kindInfo {
		out[i] = Kind(i)
	}
	return out
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool { return k >= 0 && int(k) < len(kindInfo) }

// String returns the kind name, or the number for unknown kinds.
func (k Kind) String() string {
	if !k.Valid() {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindInfo[k].name
}

// Description returns a one-line human description.
func (k Kind) Description() string {
	if !k.Valid() {
		return ""
	}
	return kindInfo[k].desc
}

// Randomized reports whether the layout consumes the random source.
func (k Kind) Randomized() bool {
	return k == KindRandomVerticalBar || k == KindIslands
}

// Clustered reports whether the layout records cluster centers.
func (k Kind) Clustered() bool {
	return k == KindRandomVerticalBar || k == KindIslands || k == KindSpots
}

// ParseKind accepts a selector number ("5") or a name ("islands").
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if n, err := strconv.Atoi(s); err == nil {
		if k := Kind(n); k.Valid() {
			return k, nil
		}
		return 0, errors.New(errors.ErrCodeInvalidKind, "unknown barrier kind %d (valid: 0-%d)", n, len(kindInfo)-1)
	}
	for i, info := range kindInfo {
		if info.name == s {
			return Kind(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidKind, "unknown barrier kind %q", s)
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidKind, "unknown barrier kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText accepts anything ParseKind accepts.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
