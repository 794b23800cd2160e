package keystore

import (
	"github.com/mr-shifu/pkc-lib/pkg/common/keyopts"
)

// Keystore combines a vault for key material with a metadata registry, so
// keys can be addressed by lookup options rather than raw SKIs.
type Keystore interface {
	Import(ski string, key []byte, opts keyopts.Options) error
	Update(key []byte, opts keyopts.Options) error
	Get(opts keyopts.Options) ([]byte, error)
	Delete(opts keyopts.Options) error
	DeleteAll(opts keyopts.Options) error
}
