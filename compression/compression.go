// Package compression provides the codecs used to store session snapshots.
package compression

import (
	"fmt"
	"runtime"
	"sort"
)

type CompressionType int

const (
	TypeNone CompressionType = iota
	TypeXZ
)

// String returns the string representation of compression type
func (t CompressionType) String() string {
	switch t {
	case TypeXZ:
		return "XZ"
	default:
		return "None"
	}
}

// Codec compresses and decompresses whole buffers.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
	Type() CompressionType
	Implementation() string
}

var codecs = map[CompressionType]Codec{
	TypeNone: noneCodec{},
	TypeXZ:   NewXZCodec(),
}

// Lookup returns the codec for the specified type
func Lookup(compType CompressionType) (Codec, error) {
	codec, exists := codecs[compType]
	if !exists {
		return nil, fmt.Errorf("unsupported compression type: %s", compType.String())
	}
	return codec, nil
}

// Detect guesses the compression of data from its header.
func Detect(data []byte) CompressionType {
	if isXZ(data) {
		return TypeXZ
	}
	return TypeNone
}

// Decompress decompresses data with the codec matching its header
func Decompress(data []byte) ([]byte, error) {
	codec, err := Lookup(Detect(data))
	if err != nil {
		return nil, err
	}
	return codec.Decompress(data)
}

// GetSupportedTypes returns all supported compression types in ascending order
func GetSupportedTypes() []CompressionType {
	types := make([]CompressionType, 0, len(codecs))
	for t := range codecs {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// GetImplementationInfo returns information about the implementation of each codec
func GetImplementationInfo() map[CompressionType]string {
	info := make(map[CompressionType]string)
	for t, c := range codecs {
		info[t] = c.Implementation()
	}
	return info
}

// GetBuildInfo returns build information reported by the version command
func GetBuildInfo() map[string]string {
	return map[string]string{
		"go_version": runtime.Version(),
		"goos":       runtime.GOOS,
		"goarch":     runtime.GOARCH,
	}
}

type noneCodec struct{}

func (noneCodec) Compress(data []byte) ([]byte, error)   { return data, nil }
func (noneCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
func (noneCodec) Type() CompressionType                  { return TypeNone }
func (noneCodec) Implementation() string                 { return "Passthrough" }
