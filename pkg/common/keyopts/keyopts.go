package keyopts

// KeyData is the metadata stored for a key: who owns it and the SKI under
// which the material itself is vaulted.
type KeyData struct {
	Owner string
	SKI   string
}

// Options is a bag of key lookup attributes ("id", "owner").
type Options interface {
	Set(kVs ...interface{}) error
	Get(key string) (interface{}, bool)
}

// KeyOpts manages the storage of key metadata referred to by a key ID.
type KeyOpts interface {
	// Import registers key metadata (the SKI) under the ID and owner
	// carried by opts.
	Import(data interface{}, opts Options) error

	// Get returns the key metadata registered under opts.
	Get(opts Options) (*KeyData, error)

	// GetAll returns all owners' metadata registered under the ID in opts.
	GetAll(opts Options) (map[string]*KeyData, error)

	// Delete removes the metadata registered under opts.
	Delete(opts Options) error

	// DeleteAll removes all metadata registered under the ID in opts.
	DeleteAll(opts Options) error
}
