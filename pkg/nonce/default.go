package nonce

import (
	"crypto/rand"
	"sync"
)

var (
	defaultOnce     sync.Once
	defaultProvider Provider
)

// Default returns a process-scoped provider backed by a random secret
// generated on first use. Tokens it issues only verify within the same
// process lifetime; deployments that restart or run multiple replicas
// should construct a TokenProvider with a shared secret instead.
func Default() Provider {
	defaultOnce.Do(func() {
		secret := make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			panic("nonce: generate default secret: " + err.Error())
		}
		defaultProvider, _ = NewTokenProvider(secret)
	})
	return defaultProvider
}
