package build

import "errors"

var (
	ErrArchiveRead         = errors.New("unable to read class archive")
	ErrDescriptorWrite     = errors.New("unable to write module descriptor")
	ErrCompile             = errors.New("descriptor compilation failed")
	ErrAssembly            = errors.New("module archive assembly failed")
	ErrPackaging           = errors.New("module packaging failed")
	ErrLink                = errors.New("image linking failed")
	ErrFileSystemOperation = errors.New("file system operation failed")
)
