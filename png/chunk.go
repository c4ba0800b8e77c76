package png

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

// pngSignature is the fixed 8-byte magic at the start of every PNG stream.
const pngSignature = "\x89PNG\r\n\x1a\n"

// Chunk is one length-prefixed, typed, CRC-checked record of the
// container. ISO/IEC 15948 §5.3.
type Chunk struct {
	Type string // 4-byte type code, e.g. "IHDR"
	Data []byte // payload, length as declared by the record
	CRC  uint32 // CRC-32 over type code + payload
}

// Critical reports whether the chunk is critical: bit 5 of the first
// type byte is clear. A decoder may skip ancillary chunks but must not
// skip critical ones.
func (c *Chunk) Critical() bool {
	return c.Type[0]&0x20 == 0
}

// chunkReader walks the container strictly by declared lengths. Payload
// bytes are unconstrained and may contain sequences that look like a
// chunk type code, so boundaries are never found by content scanning.
type chunkReader struct {
	data   []byte
	offset int
}

func (r *chunkReader) remaining() int {
	return len(r.data) - r.offset
}

func (r *chunkReader) next(verifyCRC bool) (*Chunk, error) {
	if r.remaining() < 8 {
		return nil, fmt.Errorf("%w: %d bytes left for chunk header", ErrTruncatedChunk, r.remaining())
	}
	length := binary.BigEndian.Uint32(r.data[r.offset:])
	typ := r.data[r.offset+4 : r.offset+8]
	r.offset += 8

	if int64(r.remaining()) < int64(length)+4 {
		return nil, fmt.Errorf("%w: %q declares %d payload bytes, %d left", ErrTruncatedChunk, typ, length, r.remaining())
	}
	payload := r.data[r.offset : r.offset+int(length)]
	r.offset += int(length)
	crc := binary.BigEndian.Uint32(r.data[r.offset:])
	r.offset += 4

	if verifyCRC {
		h := crc32.NewIEEE()
		h.Write(typ)
		h.Write(payload)
		if sum := h.Sum32(); sum != crc {
			return nil, fmt.Errorf("%w: %q declared %08x, computed %08x", ErrCRCMismatch, typ, crc, sum)
		}
	}
	return &Chunk{Type: string(typ), Data: payload, CRC: crc}, nil
}

// splitChunks verifies the signature and splits the stream into chunks,
// stopping at IEND or at the end of the buffer.
func splitChunks(data []byte, verifyCRC bool) ([]Chunk, error) {
	if len(data) < len(pngSignature) || string(data[:len(pngSignature)]) != pngSignature {
		return nil, ErrSignatureMismatch
	}
	r := &chunkReader{data: data, offset: len(pngSignature)}

	var chunks []Chunk
	for r.remaining() > 0 {
		c, err := r.next(verifyCRC)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, *c)
		if c.Type == "IEND" {
			break
		}
	}
	return chunks, nil
}

// demuxed groups the chunks the pixel pipeline consumes.
type demuxed struct {
	header  *Chunk
	palette *Chunk
	idat    [][]byte
}

// Chunk ordering stage, after the PNG chunk ordering rules:
// IHDR first, PLTE (if present) before any IDAT, IDAT before IEND.
// ISO/IEC 15948 §5.6.
const (
	dsStart = iota
	dsSeenIHDR
	dsSeenPLTE
	dsSeenIDAT
)

// knownChunks are the critical chunk types this decoder interprets.
var knownChunks = map[string]bool{
	"IHDR": true,
	"PLTE": true,
	"IDAT": true,
	"IEND": true,
}

// demux enforces the ordering rules and collects header, palette and
// pixel payloads. Ancillary chunks are skipped without inspection.
func demux(chunks []Chunk) (*demuxed, error) {
	d := &demuxed{}
	stage := dsStart

	for i := range chunks {
		c := &chunks[i]
		switch c.Type {
		case "IHDR":
			if stage != dsStart || i != 0 {
				return nil, fmt.Errorf("%w: duplicate or misplaced IHDR", ErrMalformedChunkOrder)
			}
			d.header = c
			stage = dsSeenIHDR
		case "PLTE":
			if stage != dsSeenIHDR {
				return nil, fmt.Errorf("%w: PLTE must appear once, after IHDR and before IDAT", ErrMalformedChunkOrder)
			}
			d.palette = c
			stage = dsSeenPLTE
		case "IDAT":
			if stage < dsSeenIHDR {
				return nil, fmt.Errorf("%w: IDAT before IHDR", ErrMalformedChunkOrder)
			}
			d.idat = append(d.idat, c.Data)
			stage = dsSeenIDAT
		case "IEND":
			// Terminator; content ignored.
		default:
			if c.Critical() && !knownChunks[c.Type] {
				return nil, fmt.Errorf("%w: %q", ErrUnknownCriticalChunk, c.Type)
			}
			// Ancillary chunk: length-based skip already happened in
			// splitChunks, nothing to interpret.
		}
	}

	if d.header == nil {
		return nil, fmt.Errorf("%w: no IHDR", ErrMalformedChunkOrder)
	}
	if len(d.idat) == 0 {
		return nil, fmt.Errorf("%w: no IDAT", ErrMissingRequiredChunk)
	}
	return d, nil
}
