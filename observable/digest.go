package observable

import (
	"encoding/hex"
	"fmt"

	"github.com/esavini/collections/internal/utils"
	"github.com/fxamacker/cbor/v2"
	"github.com/zeebo/blake3"
)

// A Digest is a 32-byte BLAKE3 keyed hash of the content of a sequence.
type Digest [32]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

var (
	// key of the BLAKE3 keyed hash: ASCII encoding of the domain name, zero-padded to 32 bytes.
	contentDigestKey = [32]byte{
		'o', 'b', 's', 'e', 'r', 'v', 'a', 'b', 'l', 'e', '.',
		's', 'e', 'q', 'u', 'e', 'n', 'c', 'e', '.',
		'c', 'o', 'n', 't', 'e', 'n', 't', 0, 0, 0, 0, 0,
	}

	//Core Deterministic Encoding: the same elements always produce the same bytes.
	contentEncMode = utils.Must(cbor.CoreDetEncOptions().EncMode())
)

// Digest returns a hash of the elements in order, it is computed from their deterministic CBOR
// encoding: elements with the same encoding (for example two pointers to equal values, or structs
// only differing by unexported fields) are not distinguished. An error is returned if an element
// cannot be encoded (channels for example).
func (s *Sequence[T]) Digest() (Digest, error) {
	encoded, err := contentEncMode.Marshal(utils.EmptySliceIfNil(s.elements))
	if err != nil {
		return Digest{}, fmt.Errorf("failed to encode the elements: %w", err)
	}

	hasher := utils.Must(blake3.NewKeyed(contentDigestKey[:]))
	hasher.Write(encoded)

	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest, nil
}
