package fireconv

import "github.com/m-mizutani/fireconv/pkg/domain/interfaces"

// NewClientWithStore creates a client over an arbitrary document store
func NewClientWithStore(store interfaces.DocumentStore, opts ...Option) *Client {
	return newClient(store, applyOptions(opts))
}
