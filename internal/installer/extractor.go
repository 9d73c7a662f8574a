package installer

import (
	"archive/tar"    // For reading .tar archives
	"archive/zip"    // For reading .zip archives
	"compress/bzip2" // For reading .bz2 compressed data
	"compress/gzip"  // For reading .gz compressed data
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip" // For reading .7z archives
	"github.com/xi2/xz"          // For reading .xz compressed data

	"digispark-uploader/internal/logger"
)

// ExtractArchive writes every entry of the archive at src below dest, creating
// directories as needed and overwriting existing files. A missing or zero-byte
// archive fails before anything is written under dest.
//
// Entry names are joined to dest as-is. Only archives from the fixed sources
// in config may be passed here, and dest is always cleared by the caller.
func ExtractArchive(src, dest string, out io.Writer) error {
	info, err := os.Stat(src)
	if err != nil || info.IsDir() || info.Size() == 0 {
		return NewArchiveEmptyError(src)
	}

	switch {
	case strings.HasSuffix(src, ".zip"):
		logger.Debug("[DEBUG] compression type is zip\n")
		err = extractZip(src, dest, out)
	case strings.HasSuffix(src, ".7z"):
		logger.Debug("[DEBUG] compression type is 7z\n")
		err = extract7z(src, dest, out)
	case strings.HasSuffix(src, ".tar"), strings.HasSuffix(src, ".tar.gz"), strings.HasSuffix(src, ".tgz"),
		strings.HasSuffix(src, ".tar.bz2"), strings.HasSuffix(src, ".tar.xz"):
		logger.Debug("[DEBUG] compression type is tar.*\n")
		err = extractTar(src, dest, out)
	default:
		return NewExtractionError(errUnsupportedFormat, src, dest)
	}
	if err != nil {
		return NewExtractionError(err, src, dest)
	}

	logger.Info("[INFO] Extraction complete\n")
	return nil
}

var errUnsupportedFormat = errors.New("unsupported archive format")

// writeEntry copies one regular file entry to target.
func writeEntry(target string, mode fs.FileMode, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	if mode.Perm() == 0 {
		mode = 0o644
	}
	outFile, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm()|0o200)
	if err != nil {
		return err
	}
	if _, err := io.Copy(outFile, r); err != nil {
		outFile.Close()
		return err
	}
	return outFile.Close()
}

func extractZip(src, dest string, out io.Writer) error {
	r, err := zip.OpenReader(src)
	if err != nil {
		return err
	}
	defer r.Close()

	bar := newEntryProgress(out, "Extracting", int64(len(r.File)))
	defer bar.Finish()

	for _, f := range r.File {
		target := filepath.Join(dest, f.Name)
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			bar.Add(1)
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return err
		}
		err = writeEntry(target, f.Mode(), rc)
		rc.Close()
		if err != nil {
			return err
		}
		bar.Add(1)
	}
	return nil
}

func extract7z(src, dest string, out io.Writer) error {
	r, err := sevenzip.OpenReader(src)
	if err != nil {
		return err
	}
	defer r.Close()

	bar := newEntryProgress(out, "Extracting", int64(len(r.File)))
	defer bar.Finish()

	for _, f := range r.File {
		target := filepath.Join(dest, f.Name)
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			bar.Add(1)
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return err
		}
		err = writeEntry(target, f.Mode(), rc)
		rc.Close()
		if err != nil {
			return err
		}
		bar.Add(1)
	}
	return nil
}

// extractTar handles plain and compressed tarballs. Tar streams carry no
// entry count, so progress is an unbounded counter.
func extractTar(src, dest string, out io.Writer) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	var reader io.Reader = f
	switch {
	case strings.HasSuffix(src, ".tar.gz"), strings.HasSuffix(src, ".tgz"):
		gr, err := gzip.NewReader(f)
		if err != nil {
			return err
		}
		defer gr.Close()
		reader = gr
	case strings.HasSuffix(src, ".tar.bz2"):
		reader = bzip2.NewReader(f)
	case strings.HasSuffix(src, ".tar.xz"):
		xzr, err := xz.NewReader(f, 0)
		if err != nil {
			return err
		}
		reader = xzr
	}

	bar := newEntryProgress(out, "Extracting", -1)
	defer bar.Finish()

	tr := tar.NewReader(reader)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		target := filepath.Join(dest, hdr.Name)
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := writeEntry(target, hdr.FileInfo().Mode(), tr); err != nil {
				return err
			}
		}
		bar.Add(1)
	}
}
