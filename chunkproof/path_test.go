package chunkproof

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/liteseed/weave-index/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noteBytes renders value into the low 16 bytes of a 32-byte note, with
// an opaque, non-zero high half: NoteValue only ever looks at the low
// half, so a correct implementation must ignore the high bytes entirely.
func noteBytes(value int64) []byte {
	n := make([]byte, types.NoteLength)
	for i := 0; i < 16; i++ {
		n[i] = 0xAB
	}
	vb := big.NewInt(value).Bytes()
	copy(n[32-len(vb):], vb)
	return n
}

func chunkRootOf(b []byte) types.ChunkRoot {
	var r types.ChunkRoot
	copy(r[:], b)
	return r
}

func TestValidatePathLeaf(t *testing.T) {
	data := bytes.Repeat([]byte{0x11}, types.ChunkRootLength)
	note := noteBytes(100)
	root := chunkRootOf(hashLeaf(data, note))

	path := append(append([]byte{}, data...), note...)

	result, ok := ValidatePath(root, types.NewWeaveInt(50), types.NewWeaveInt(100), types.Path(path))
	require.True(t, ok)
	assert.Equal(t, "0", result.Start.String())
	assert.Equal(t, "100", result.End.String())
	assert.Equal(t, data, result.Root[:])
}

func TestValidatePathLeafTamperRejected(t *testing.T) {
	data := bytes.Repeat([]byte{0x11}, types.ChunkRootLength)
	note := noteBytes(100)
	root := chunkRootOf(hashLeaf(data, note))

	path := append(append([]byte{}, data...), note...)
	path[0] ^= 0xFF // flip a byte of the claimed leaf data

	_, ok := ValidatePath(root, types.NewWeaveInt(50), types.NewWeaveInt(100), types.Path(path))
	assert.False(t, ok)
}

func TestValidatePathDescendsThroughInterior(t *testing.T) {
	leftData := bytes.Repeat([]byte{0x22}, types.ChunkRootLength)
	leftNote := noteBytes(300)
	leftLeafRoot := hashLeaf(leftData, leftNote)

	rightOpaque := bytes.Repeat([]byte{0x33}, types.ChunkRootLength)
	interiorNote := noteBytes(300) // split point: left owns [0, 300)
	interiorRoot := chunkRootOf(hashInterior(leftLeafRoot, rightOpaque, interiorNote))

	path := append([]byte{}, leftLeafRoot...)
	path = append(path, rightOpaque...)
	path = append(path, interiorNote...)
	path = append(path, leftData...)
	path = append(path, leftNote...)

	result, ok := ValidatePath(interiorRoot, types.NewWeaveInt(100), types.NewWeaveInt(500), types.Path(path))
	require.True(t, ok)
	assert.Equal(t, "0", result.Start.String())
	assert.Equal(t, "300", result.End.String())
	assert.Equal(t, leftData, result.Root[:])

	t.Run("tampering the untraversed sibling still breaks verification", func(t *testing.T) {
		tampered := append([]byte{}, path...)
		tampered[types.ChunkRootLength] ^= 0xFF // first byte of rightOpaque
		_, ok := ValidatePath(interiorRoot, types.NewWeaveInt(100), types.NewWeaveInt(500), types.Path(tampered))
		assert.False(t, ok)
	})
}

func TestValidatePathRejectsZeroBlockSize(t *testing.T) {
	_, ok := ValidatePath(types.ChunkRoot{}, types.NewWeaveInt(0), types.NewWeaveInt(0), types.Path{})
	assert.False(t, ok)
}

func TestValidatePathClampsOutOfRangeOffset(t *testing.T) {
	data := bytes.Repeat([]byte{0x44}, types.ChunkRootLength)
	note := noteBytes(100)
	root := chunkRootOf(hashLeaf(data, note))
	path := append(append([]byte{}, data...), note...)

	t.Run("offset beyond block_size clamps to block_size-1", func(t *testing.T) {
		result, ok := ValidatePath(root, types.NewWeaveInt(10000), types.NewWeaveInt(100), types.Path(path))
		require.True(t, ok)
		assert.Equal(t, "100", result.End.String())
	})

	t.Run("negative offset clamps to zero", func(t *testing.T) {
		result, ok := ValidatePath(root, types.NewWeaveInt(-5), types.NewWeaveInt(100), types.Path(path))
		require.True(t, ok)
		assert.Equal(t, "0", result.Start.String())
	})
}
