package vos

import (
	"os"
	"time"

	"github.com/spf13/afero"
)

// FsOp is a textual description of the filesystem operation.
type FsOp = string

const (
	FsOpChtimes FsOp = "chtimes"
	FsOpChmod   FsOp = "chmod"
	FsOpChown   FsOp = "chown"
	FsOpStat    FsOp = "stat"
	FsOpRename  FsOp = "rename"
	FsOpRemove  FsOp = "remove"
	FsOpOpen    FsOp = "open"
	FsOpMkdir   FsOp = "mkdir"
	FsOpCreate  FsOp = "create"
)

// FileMapper rewrites a path before the operation reaches the base
// filesystem.
type FileMapper func(op FsOp, name string) (path string, err error)

// PathMappingFs maps all paths on a filesystem via callback to another path.
type PathMappingFs struct {
	BaseFs afero.Fs
	Mapper FileMapper
}

var _ afero.Fs = (*PathMappingFs)(nil)

func NewPathMappingFs(base afero.Fs, mapper FileMapper) afero.Fs {
	return &PathMappingFs{BaseFs: base, Mapper: mapper}
}

func (b *PathMappingFs) Name() string {
	return "PathMappingFs"
}

func (b *PathMappingFs) Chtimes(name string, atime, mtime time.Time) error {
	mapped, err := b.Mapper(FsOpChtimes, name)
	if err != nil {
		return &os.PathError{Op: FsOpChtimes, Path: name, Err: err}
	}
	return b.BaseFs.Chtimes(mapped, atime, mtime)
}

func (b *PathMappingFs) Chmod(name string, mode os.FileMode) error {
	mapped, err := b.Mapper(FsOpChmod, name)
	if err != nil {
		return &os.PathError{Op: FsOpChmod, Path: name, Err: err}
	}
	return b.BaseFs.Chmod(mapped, mode)
}

func (b *PathMappingFs) Chown(name string, uid, gid int) error {
	mapped, err := b.Mapper(FsOpChown, name)
	if err != nil {
		return &os.PathError{Op: FsOpChown, Path: name, Err: err}
	}
	return b.BaseFs.Chown(mapped, uid, gid)
}

func (b *PathMappingFs) Stat(name string) (os.FileInfo, error) {
	mapped, err := b.Mapper(FsOpStat, name)
	if err != nil {
		return nil, &os.PathError{Op: FsOpStat, Path: name, Err: err}
	}
	return b.BaseFs.Stat(mapped)
}

func (b *PathMappingFs) Rename(oldname, newname string) error {
	mappedOld, err := b.Mapper(FsOpRename, oldname)
	if err != nil {
		return &os.LinkError{Op: FsOpRename, Old: oldname, New: newname, Err: err}
	}
	mappedNew, err := b.Mapper(FsOpRename, newname)
	if err != nil {
		return &os.LinkError{Op: FsOpRename, Old: oldname, New: newname, Err: err}
	}
	return b.BaseFs.Rename(mappedOld, mappedNew)
}

func (b *PathMappingFs) RemoveAll(name string) error {
	mapped, err := b.Mapper(FsOpRemove, name)
	if err != nil {
		return &os.PathError{Op: FsOpRemove, Path: name, Err: err}
	}
	return b.BaseFs.RemoveAll(mapped)
}

func (b *PathMappingFs) Remove(name string) error {
	mapped, err := b.Mapper(FsOpRemove, name)
	if err != nil {
		return &os.PathError{Op: FsOpRemove, Path: name, Err: err}
	}
	return b.BaseFs.Remove(mapped)
}

func (b *PathMappingFs) OpenFile(name string, flag int, mode os.FileMode) (afero.File, error) {
	mapped, err := b.Mapper(FsOpOpen, name)
	if err != nil {
		return nil, &os.PathError{Op: FsOpOpen, Path: name, Err: err}
	}
	return b.BaseFs.OpenFile(mapped, flag, mode)
}

func (b *PathMappingFs) Open(name string) (afero.File, error) {
	mapped, err := b.Mapper(FsOpOpen, name)
	if err != nil {
		return nil, &os.PathError{Op: FsOpOpen, Path: name, Err: err}
	}
	return b.BaseFs.Open(mapped)
}

func (b *PathMappingFs) Mkdir(name string, mode os.FileMode) error {
	mapped, err := b.Mapper(FsOpMkdir, name)
	if err != nil {
		return &os.PathError{Op: FsOpMkdir, Path: name, Err: err}
	}
	return b.BaseFs.Mkdir(mapped, mode)
}

func (b *PathMappingFs) MkdirAll(name string, mode os.FileMode) error {
	mapped, err := b.Mapper(FsOpMkdir, name)
	if err != nil {
		return &os.PathError{Op: FsOpMkdir, Path: name, Err: err}
	}
	return b.BaseFs.MkdirAll(mapped, mode)
}

func (b *PathMappingFs) Create(name string) (afero.File, error) {
	mapped, err := b.Mapper(FsOpCreate, name)
	if err != nil {
		return nil, &os.PathError{Op: FsOpCreate, Path: name, Err: err}
	}
	return b.BaseFs.Create(mapped)
}
