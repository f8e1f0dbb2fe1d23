package predql

import "github.com/zoobzio/predql/internal/types"

// Re-export direction constants for public API.
const (
	ASC  = types.ASC
	DESC = types.DESC
)
