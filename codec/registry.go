package codec

import "sync"

// Registry manages the available codecs
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Codec // key can be either name or media type
	order  []Codec          // registration order, for deterministic sniffing
}

var defaultRegistry = NewRegistry()

// NewRegistry creates an empty codec registry
func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Codec),
	}
}

// Register registers a codec in the default registry
func Register(codec Codec) {
	defaultRegistry.Register(codec)
}

// Get retrieves a codec by name or media type from the default registry
func Get(nameOrMediaType string) (Codec, error) {
	return defaultRegistry.Get(nameOrMediaType)
}

// List returns all codecs registered in the default registry
func List() []Codec {
	return defaultRegistry.List()
}

// Sniff finds a codec in the default registry whose magic bytes match data
func Sniff(data []byte) (Codec, error) {
	return defaultRegistry.Sniff(data)
}

// Register registers a codec using both its name and media type
func (r *Registry) Register(codec Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codecs[codec.Name()] = codec
	r.codecs[codec.MediaType()] = codec
	r.order = append(r.order, codec)
}

// Get retrieves a codec by name or media type
func (r *Registry) Get(nameOrMediaType string) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codec, ok := r.codecs[nameOrMediaType]
	if !ok {
		return nil, ErrCodecNotFound
	}
	return codec, nil
}

// List returns all registered codecs in registration order
func (r *Registry) List() []Codec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codecs := make([]Codec, len(r.order))
	copy(codecs, r.order)
	return codecs
}

// Sniff returns the first registered codec whose magic bytes match the
// start of data. Codecs that do not implement Sniffer are skipped.
func (r *Registry) Sniff(data []byte) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, codec := range r.order {
		if s, ok := codec.(Sniffer); ok && s.Sniff(data) {
			return codec, nil
		}
	}
	return nil, ErrUnknownFormat
}
