package transform

import (
	"fmt"
	"os"
	"path/filepath"
)

// File transforms a document file in place.
//
// The result is written to a temporary file in the same directory and
// renamed over the original, so a failed transform leaves the file
// untouched. With WithKeepOriginal the previous contents survive as
// "<path>.orig".
func (t *Transformer) File(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("transform: reading %s: %w", path, err)
	}

	out, err := t.Bytes(data)
	if err != nil {
		return fmt.Errorf("transform: %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("transform: stat %s: %w", path, err)
	}

	if t.keep {
		if err := os.WriteFile(path+".orig", data, info.Mode().Perm()); err != nil {
			return fmt.Errorf("transform: keeping original of %s: %w", path, err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("transform: creating temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(out); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("transform: writing %s: %w", tmpName, err)
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("transform: setting mode of %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("transform: closing %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("transform: replacing %s: %w", path, err)
	}
	return nil
}

// FileTo transforms a document file and writes the result to a different
// path, leaving the input untouched.
func (t *Transformer) FileTo(in, out string) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("transform: reading %s: %w", in, err)
	}

	result, err := t.Bytes(data)
	if err != nil {
		return fmt.Errorf("transform: %s: %w", in, err)
	}

	if err := os.WriteFile(out, result, 0o644); err != nil {
		return fmt.Errorf("transform: writing %s: %w", out, err)
	}
	return nil
}
