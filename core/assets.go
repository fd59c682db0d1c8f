package core

import (
	"embed"
	"io/fs"
	"os"
	"path"

	"github.com/pkg/errors"
)

const LogoAsset = "logo.png"

//go:embed static/logo.png
var staticFS embed.FS

// AssetSource resolves a static resource by name. Missing resources are
// reported as ErrNotFound.
type AssetSource interface {
	Asset(name string) ([]byte, error)
}

type FSAssets struct {
	fsys fs.FS
}

func NewFSAssets(fsys fs.FS) *FSAssets {
	return &FSAssets{fsys: fsys}
}

func EmbeddedAssets() *FSAssets {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return NewFSAssets(sub)
}

func DirAssets(dir string) *FSAssets {
	return NewFSAssets(os.DirFS(dir))
}

func (a *FSAssets) Asset(name string) ([]byte, error) {
	name = path.Clean(name)
	if !fs.ValidPath(name) || name == "." {
		return nil, errors.Wrapf(ErrNotFound, "asset %q", name)
	}

	data, err := fs.ReadFile(a.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(ErrNotFound, "asset %q", name)
		}
		return nil, errors.Wrapf(err, "read asset %q", name)
	}
	return data, nil
}

// LayeredAssets returns the first source that has the asset.
type LayeredAssets []AssetSource

func (l LayeredAssets) Asset(name string) ([]byte, error) {
	for _, src := range l {
		data, err := src.Asset(name)
		if err == nil {
			return data, nil
		}
		if !IsNotFoundError(err) {
			return nil, err
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "asset %q", name)
}

// NewAssetSource prefers files in dir over the bundled assets.
func NewAssetSource(dir string) AssetSource {
	if dir == "" {
		return EmbeddedAssets()
	}
	return LayeredAssets{DirAssets(dir), EmbeddedAssets()}
}
