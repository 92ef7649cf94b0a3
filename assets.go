package arbor

import (
	"fmt"
	"io/fs"
	"os"
	"reflect"
)

// Asset is implemented by pointer types that can be decoded from raw bytes.
// A decoded asset is shared by every caller and must not be mutated.
type Asset interface {
	DecodeAsset(data []byte) error
}

// GPUAsset is implemented by pointer types whose decoding also allocates
// device resources, such as textures.
type GPUAsset interface {
	DecodeGPUAsset(data []byte, rc *RenderContext) error
}

// Assets memoizes decoded resources by asset type and path. A given
// (type, path) pair is read and decoded at most once for the lifetime of the
// cache; every later request returns the same pointer.
//
// Assets is not safe for concurrent use. It is consulted only from the update
// and draw passes, which run on one goroutine.
type Assets struct {
	fsys   fs.FS
	tables map[reflect.Type]any // reflect.Type of T -> *assetTable[T]
}

type assetTable[T any] struct {
	loaded map[string]*T
}

// NewAssets creates an empty cache that reads from fsys. A nil fsys reads
// paths directly from the operating system.
func NewAssets(fsys fs.FS) *Assets {
	return &Assets{
		fsys:   fsys,
		tables: make(map[reflect.Type]any),
	}
}

// Len returns the total number of cached assets across all types.
func (a *Assets) Len() int {
	n := 0
	for _, t := range a.tables {
		n += t.(interface{ len() int }).len()
	}
	return n
}

func (t *assetTable[T]) len() int { return len(t.loaded) }

func (a *Assets) read(path string) ([]byte, error) {
	if a.fsys == nil {
		return os.ReadFile(path)
	}
	return fs.ReadFile(a.fsys, path)
}

// tableFor returns the sub-cache for T, creating it on first use.
func tableFor[T any](a *Assets) *assetTable[T] {
	key := reflect.TypeFor[T]()
	if t, ok := a.tables[key]; ok {
		tbl, ok := t.(*assetTable[T])
		if !ok {
			panic(fmt.Sprintf("arbor: asset table for %s has wrong type %T", key, t))
		}
		return tbl
	}
	tbl := &assetTable[T]{loaded: make(map[string]*T)}
	a.tables[key] = tbl
	return tbl
}

// Has reports whether an asset of type T is cached for path.
func Has[T any](a *Assets, path string) bool {
	_, ok := tableFor[T](a).loaded[path]
	return ok
}

// Load returns the cached T for path, reading and decoding it on first
// request. Failures are returned as *AssetError and are not cached.
//
//	img, err := arbor.Load[arbor.Image](assets, "hero.png")
func Load[T any, PT interface {
	*T
	Asset
}](a *Assets, path string) (*T, error) {
	return load(a, path, func(data []byte) (*T, error) {
		v := new(T)
		if err := PT(v).DecodeAsset(data); err != nil {
			return nil, err
		}
		return v, nil
	})
}

// LoadGPU is Load for assets that need the render context while decoding.
// It must be called on the goroutine that owns the device.
func LoadGPU[T any, PT interface {
	*T
	GPUAsset
}](a *Assets, path string, rc *RenderContext) (*T, error) {
	return load(a, path, func(data []byte) (*T, error) {
		v := new(T)
		if err := PT(v).DecodeGPUAsset(data, rc); err != nil {
			return nil, err
		}
		return v, nil
	})
}

func load[T any](a *Assets, path string, decode func([]byte) (*T, error)) (*T, error) {
	tbl := tableFor[T](a)
	if v, ok := tbl.loaded[path]; ok {
		return v, nil
	}
	typeName := reflect.TypeFor[T]().String()
	data, err := a.read(path)
	if err != nil {
		return nil, &AssetError{Kind: AssetErrIO, Path: path, Type: typeName, Err: err}
	}
	v, err := decode(data)
	if err != nil {
		return nil, &AssetError{Kind: AssetErrDecode, Path: path, Type: typeName, Err: err}
	}
	tbl.loaded[path] = v
	Logger().Debug("arbor: asset loaded", "type", typeName, "path", path, "bytes", len(data))
	return v, nil
}
