package backup

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// Backup archives start with a fixed 32-byte header:
//
//	4 bytes  magic "GVBK"
//	2 bytes  format version, big-endian
//	1 byte   encryption method id
//	1 byte   compression level
//	8 bytes  creation timestamp, unix milliseconds, big-endian
//	16 bytes AES IV
//
// followed by the AES-CBC-encrypted ZIP stream.
const (
	headerMagic = "GVBK"
	headerSize  = 32

	FormatVersion = 1

	// MethodAES256CBC is the only encryption method currently defined.
	MethodAES256CBC byte = 1
)

type Header struct {
	Version     uint16
	Method      byte
	Compression byte
	CreatedAt   time.Time
	IV          [16]byte
}

func (h Header) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, headerSize)
	copy(buf[0:4], headerMagic)
	binary.BigEndian.PutUint16(buf[4:6], h.Version)
	buf[6] = h.Method
	buf[7] = h.Compression
	binary.BigEndian.PutUint64(buf[8:16], uint64(h.CreatedAt.UnixMilli()))
	copy(buf[16:32], h.IV[:])

	n, err := w.Write(buf)
	return int64(n), err
}

// ReadHeader consumes exactly headerSize bytes and validates magic, version
// and encryption method before any decryption is attempted.
func ReadHeader(r io.Reader) (Header, error) {
	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Header{}, fmt.Errorf("failed to read backup header: %v", err)
	}
	if string(buf[0:4]) != headerMagic {
		return Header{}, fmt.Errorf("not a vault backup: bad magic %q", buf[0:4])
	}

	h := Header{
		Version:     binary.BigEndian.Uint16(buf[4:6]),
		Method:      buf[6],
		Compression: buf[7],
		CreatedAt:   time.UnixMilli(int64(binary.BigEndian.Uint64(buf[8:16]))).UTC(),
	}
	copy(h.IV[:], buf[16:32])

	if h.Version != FormatVersion {
		return Header{}, fmt.Errorf("unsupported backup version %d", h.Version)
	}
	if h.Method != MethodAES256CBC {
		return Header{}, fmt.Errorf("unsupported encryption method %d", h.Method)
	}
	return h, nil
}
