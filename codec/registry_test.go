package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCodec is a minimal decode-only codec for registry tests.
type fakeCodec struct {
	name  string
	media string
	magic []byte
}

func (f *fakeCodec) Encode(params EncodeParams) ([]byte, error) { return nil, ErrEncodeNotSupported }
func (f *fakeCodec) Decode(data []byte) (*DecodeResult, error)  { return &DecodeResult{}, nil }
func (f *fakeCodec) MediaType() string                          { return f.media }
func (f *fakeCodec) Name() string                               { return f.name }
func (f *fakeCodec) Sniff(data []byte) bool {
	return len(data) >= len(f.magic) && string(data[:len(f.magic)]) == string(f.magic)
}

func TestRegistryGet(t *testing.T) {
	r := NewRegistry()
	qoi := &fakeCodec{name: "qoi", media: "image/qoi", magic: []byte("qoif")}
	r.Register(qoi)

	tests := []struct {
		name      string
		key       string
		wantFound bool
	}{
		{"by name", "qoi", true},
		{"by media type", "image/qoi", true},
		{"unknown key", "image/webp", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := r.Get(tt.key)
			if tt.wantFound {
				require.NoError(t, err)
				assert.Equal(t, "qoi", c.Name())
			} else {
				assert.ErrorIs(t, err, ErrCodecNotFound)
			}
		})
	}
}

func TestRegistryList(t *testing.T) {
	r := NewRegistry()
	a := &fakeCodec{name: "a", media: "image/a"}
	b := &fakeCodec{name: "b", media: "image/b"}
	r.Register(a)
	r.Register(b)

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].Name(), "List preserves registration order")
	assert.Equal(t, "b", list[1].Name())
}

func TestRegistrySniff(t *testing.T) {
	r := NewRegistry()
	r.Register(&fakeCodec{name: "qoi", media: "image/qoi", magic: []byte("qoif")})
	r.Register(&fakeCodec{name: "bmp", media: "image/bmp", magic: []byte("BM")})

	c, err := r.Sniff([]byte("BM\x36\x00"))
	require.NoError(t, err)
	assert.Equal(t, "bmp", c.Name())

	_, err = r.Sniff([]byte("\xFF\xD8\xFF"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
