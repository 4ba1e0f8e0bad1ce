package vos

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/josephlewis42/pipesh/core/config"
	"github.com/spf13/afero"
)

// VFS implements a virtual filesystem and is the filesystem layer of the
// virtual OS. All paths given to a raw VFS are absolute.
type VFS = afero.Fs

// NewVFSFromConfig creates the backing filesystem selected by the
// configuration along with the directory sessions should start in.
func NewVFSFromConfig(configuration *config.Configuration) (VFS, string, error) {
	switch configuration.Filesystem {
	case config.FilesystemMemory:
		startDir := configuration.StartDir
		if startDir == "" {
			startDir = "/"
		}
		return NewScratchFs(startDir)

	case config.FilesystemOS, "":
		startDir := configuration.StartDir
		if startDir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return nil, "", err
			}
			startDir = wd
		}
		startDir, err := filepath.Abs(startDir)
		if err != nil {
			return nil, "", err
		}
		return afero.NewOsFs(), startDir, nil

	default:
		return nil, "", fmt.Errorf("unknown filesystem %q", configuration.Filesystem)
	}
}

// NewScratchFs creates an empty in-memory filesystem containing startDir.
func NewScratchFs(startDir string) (VFS, string, error) {
	startDir = filepath.Clean(filepath.Join(string(filepath.Separator), startDir))
	memFs := afero.NewMemMapFs()
	if err := memFs.MkdirAll(startDir, 0755); err != nil {
		return nil, "", err
	}
	return memFs, startDir, nil
}

// NewRelativeFs resolves relative names against the directory returned by
// getwd before handing them to base.
func NewRelativeFs(base VFS, getwd func() string) VFS {
	return NewPathMappingFs(base, func(op FsOp, name string) (string, error) {
		if name == "" {
			return "", os.ErrNotExist
		}
		return resolvePath(getwd(), name), nil
	})
}

func resolvePath(dir, name string) string {
	if !filepath.IsAbs(name) {
		name = filepath.Join(dir, name)
	}
	return filepath.Clean(name)
}
