package arbor

import (
	"errors"
	"fmt"
)

// ErrUnsupportedBackend is returned at startup when the device reports a
// rendering backend arbor has no default shader for. It is not retried.
var ErrUnsupportedBackend = errors.New("arbor: unsupported rendering backend")

// AssetErrorKind classifies an asset load failure.
type AssetErrorKind uint8

const (
	AssetErrIO     AssetErrorKind = iota // the byte source could not be read
	AssetErrDecode                       // the type's decoder rejected the bytes
)

func (k AssetErrorKind) String() string {
	switch k {
	case AssetErrIO:
		return "io"
	case AssetErrDecode:
		return "decode"
	default:
		return fmt.Sprintf("AssetErrorKind(%d)", uint8(k))
	}
}

// AssetError reports a failed asset load. It identifies the asset type and
// path and wraps the underlying cause.
type AssetError struct {
	Kind AssetErrorKind
	Path string
	Type string
	Err  error
}

func (e *AssetError) Error() string {
	switch e.Kind {
	case AssetErrIO:
		return fmt.Sprintf("arbor: could not read %s for %s: %v", e.Path, e.Type, e.Err)
	default:
		return fmt.Sprintf("arbor: failed to decode %s from %s: %v", e.Type, e.Path, e.Err)
	}
}

func (e *AssetError) Unwrap() error { return e.Err }
