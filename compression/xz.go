package compression

import (
	"bytes"
	"io"

	"github.com/ulikunitz/xz"
)

type XZCodec struct{}

// NewXZCodec creates a new XZ codec using pure Go implementation
func NewXZCodec() Codec {
	return &XZCodec{}
}

func (c *XZCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *XZCodec) Decompress(data []byte) ([]byte, error) {
	reader, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(reader)
}

func (c *XZCodec) Type() CompressionType {
	return TypeXZ
}

func (c *XZCodec) Implementation() string {
	return "Pure Go (ulikunitz/xz)"
}

func isXZ(data []byte) bool {
	return len(data) >= xz.HeaderLen && xz.ValidHeader(data)
}
