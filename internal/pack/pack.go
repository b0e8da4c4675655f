// Package pack packages output folders into zip archives.
package pack

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"
)

// ZipFolder writes every regular file under folder into a deflated archive at
// zipPath. Entry names are relative to folder, or to its parent when includeRoot
// is set so the folder name becomes the top-level directory.
func ZipFolder(folder, zipPath string, includeRoot bool) error {
	absFolder, err := filepath.Abs(folder)
	if err != nil {
		return err
	}
	info, err := os.Stat(absFolder)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", folder)
	}

	absZip, err := filepath.Abs(zipPath)
	if err != nil {
		return err
	}

	base := absFolder
	if includeRoot {
		base = filepath.Dir(absFolder)
	}

	out, err := os.Create(absZip)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}

	zw := zip.NewWriter(out)
	walkErr := filepath.WalkDir(absFolder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() || path == absZip {
			return nil
		}
		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}
		return addFile(zw, path, filepath.ToSlash(rel))
	})

	closeErr := zw.Close()
	if err := out.Close(); err != nil && closeErr == nil {
		closeErr = err
	}
	if walkErr != nil {
		_ = os.Remove(absZip)
		return walkErr
	}
	if closeErr != nil {
		_ = os.Remove(absZip)
		return closeErr
	}
	return nil
}

// addFile copies one file into the archive under name.
func addFile(zw *zip.Writer, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = name
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("failed to add %s: %w", name, err)
	}
	_, err = io.Copy(w, f)
	return err
}
