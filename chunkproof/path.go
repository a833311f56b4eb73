package chunkproof

import (
	"bytes"

	"github.com/liteseed/weave-index/crypto"
	"github.com/liteseed/weave-index/types"
)

// ValidateResult is the leaf a successful ValidatePath walk bottoms out
// at: the leaf's own root (the raw data hash before the final sha256),
// and the half-open [Start, End) byte window it claims.
type ValidateResult struct {
	Root  types.ChunkRoot
	Start types.WeaveOffset
	End   types.WeaveOffset
}

// ValidatePath walks a flat Merkle proof from root down to the leaf
// that contains offset, within a tree spanning [0, blockSize). It
// returns false on any malformed path, length mismatch, or hash
// mismatch at any level — all such failures collapse to "proof
// invalid" with no finer diagnostic exposed (§4.2).
func ValidatePath(root types.ChunkRoot, offset types.WeaveOffset, blockSize types.WeaveSize, path types.Path) (ValidateResult, bool) {
	if !blockSize.GreaterThan(types.NewWeaveInt(0)) {
		return ValidateResult{}, false
	}
	if offset.GreaterOrEqual(blockSize) {
		offset = blockSize.Sub(types.NewWeaveInt(1))
	}
	if offset.IsNegative() {
		offset = types.NewWeaveInt(0)
	}
	left := types.NewWeaveInt(0)
	right := blockSize
	return validatePathLR(root, offset, left, right, path)
}

const leafPathLength = types.ChunkRootLength + types.NoteLength
const interiorPathLength = 2*types.ChunkRootLength + types.NoteLength

// validatePathLR is the iterative form of the recursive path walker;
// the spec calls out that implementations may (and should) avoid
// recursion here.
func validatePathLR(root types.ChunkRoot, offset, left, right types.WeaveOffset, path types.Path) (ValidateResult, bool) {
	for {
		if len(path) == leafPathLength {
			data := path[0:types.ChunkRootLength]
			note := path[types.ChunkRootLength:leafPathLength]

			if !bytes.Equal(root[:], hashLeaf(data, note)) {
				return ValidateResult{}, false
			}

			var n types.Note
			copy(n[:], note)
			noteBN, err := n.NoteValue()
			if err != nil {
				return ValidateResult{}, false
			}

			end := types.MinWeaveInt(right, noteBN)
			end = types.MaxWeaveInt(end, left.Add(types.NewWeaveInt(1)))

			var leafRoot types.ChunkRoot
			copy(leafRoot[:], data)
			return ValidateResult{Root: leafRoot, Start: left, End: end}, true
		}

		if len(path) < interiorPathLength {
			return ValidateResult{}, false
		}

		l := path[0:types.ChunkRootLength]
		r := path[types.ChunkRootLength : 2*types.ChunkRootLength]
		note := path[2*types.ChunkRootLength : interiorPathLength]
		rest := path[interiorPathLength:]

		if !bytes.Equal(root[:], hashInterior(l, r, note)) {
			return ValidateResult{}, false
		}

		var n types.Note
		copy(n[:], note)
		noteBN, err := n.NoteValue()
		if err != nil {
			return ValidateResult{}, false
		}

		if offset.LessThan(noteBN) {
			copy(root[:], l)
			right = types.MinWeaveInt(right, noteBN)
		} else {
			copy(root[:], r)
			left = types.MaxWeaveInt(left, noteBN)
		}
		path = rest
	}
}

func hashLeaf(data, note []byte) []byte {
	return crypto.SHA256(concat(crypto.SHA256(data), crypto.SHA256(note)))
}

func hashInterior(l, r, note []byte) []byte {
	return crypto.SHA256(concat(crypto.SHA256(l), crypto.SHA256(r), crypto.SHA256(note)))
}

func concat(parts ...[]byte) []byte {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]byte, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
