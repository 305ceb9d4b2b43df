package vector

import (
	"encoding/binary"
	"fmt"
	"math"
)

// EncodedSize is the length of an encoded Vector3D BLOB.
const EncodedSize = 12

// Encode encodes v as three little-endian IEEE 754 float32 values (x, y, z)
// suitable for passing to SQLite as a BLOB. It is the embedding encoding of
// v.Slice().
func Encode(v Vector3D) []byte {
	b, _ := EncodeEmbedding(v.Slice())
	return b
}

// Decode decodes a BLOB produced by Encode. An empty BLOB stands for an
// absent vector and returns ok=false without error.
func Decode(b []byte) (v Vector3D, ok bool, err error) {
	if len(b) == 0 {
		return Zero, false, nil
	}
	if len(b) != EncodedSize {
		return Zero, false, fmt.Errorf("vector: invalid vector blob length %d (want %d)", len(b), EncodedSize)
	}
	components, err := DecodeEmbedding(b)
	if err != nil {
		return Zero, false, err
	}
	if v, err = FromSlice(components); err != nil {
		return Zero, false, err
	}
	return v, true, nil
}

// EncodeEmbedding encodes float32 values as a little-endian sequence with no
// length prefix; the length is derived from the BLOB size on decode.
func EncodeEmbedding(vec []float32) ([]byte, error) {
	if len(vec) == 0 {
		return nil, nil
	}
	b := make([]byte, len(vec)*4)
	for i, v := range vec {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(v))
	}
	return b, nil
}

// DecodeEmbedding is the inverse of EncodeEmbedding.
func DecodeEmbedding(b []byte) ([]float32, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("vector: invalid embedding blob length %d (not multiple of 4)", len(b))
	}
	vec := make([]float32, len(b)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return vec, nil
}
