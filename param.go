package predql

import "github.com/zoobzio/predql/internal/types"

// NewParams creates an empty parameter sink.
//
// A sink may be reused across several compilations: generated names are
// numbered from its current length, so fragments compiled into the same sink
// never collide and can be joined into one statement.
func NewParams() *Params {
	return types.NewParams()
}
