// Package archive downloads driver archives and installs a single named
// entry from them as an executable binary.
package archive

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"getdriver.dev/cli/internal/core/domain"
	"getdriver.dev/cli/internal/core/ports"
)

// Installer implements ports.ArchiveInstaller. The archive is spooled to a
// temp file first (zip needs random access), the requested entry is read
// fully into memory, and only then is the output file written — a failed
// install never leaves a partial binary behind.
type Installer struct {
	fetcher ports.Fetcher
}

// NewInstaller creates an archive installer backed by the given fetcher.
func NewInstaller(fetcher ports.Fetcher) *Installer {
	return &Installer{fetcher: fetcher}
}

// InstallBinary downloads req.URL, extracts the entry named
// req.NameInArchive, and writes it executable to req.OutputDir/req.OutputName.
func (i *Installer) InstallBinary(ctx context.Context, req ports.InstallRequest) (string, error) {
	archivePath, err := i.download(ctx, req)
	if err != nil {
		return "", err
	}
	defer os.Remove(archivePath)

	var data []byte
	if req.Zip {
		data, err = readZipEntry(archivePath, req.NameInArchive)
	} else {
		data, err = readTarGzEntry(archivePath, req.NameInArchive)
	}
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(req.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	outPath := filepath.Join(req.OutputDir, req.OutputName)
	if err := os.WriteFile(outPath, data, 0o755); err != nil {
		return "", fmt.Errorf("write %s: %w", outPath, err)
	}
	// WriteFile's mode is filtered by the umask; chmod makes the executable
	// bit unconditional. On Windows this is effectively a no-op.
	if err := os.Chmod(outPath, 0o755); err != nil {
		return "", fmt.Errorf("mark executable %s: %w", outPath, err)
	}

	return outPath, nil
}

// download spools the archive body into a temp file and returns its path.
func (i *Installer) download(ctx context.Context, req ports.InstallRequest) (string, error) {
	body, size, err := i.fetcher.Fetch(ctx, req.URL)
	if err != nil {
		return "", fmt.Errorf("download archive: %w", err)
	}
	defer body.Close()

	var reader io.Reader = body
	if req.Progress != nil {
		reader = &progressReader{r: body, total: size, report: req.Progress}
	}

	tmp, err := os.CreateTemp("", "getdriver-*.archive")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, reader); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("download archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("flush archive: %w", err)
	}

	return tmpPath, nil
}

func readZipEntry(archivePath, name string) ([]byte, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("open zip archive: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if path.Clean(f.Name) != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open zip entry %q: %w", name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read zip entry %q: %w", name, err)
		}
		return data, nil
	}

	return nil, fmt.Errorf("zip entry %q: %w", name, domain.ErrEntryNotFound)
}

func readTarGzEntry(archivePath, name string) ([]byte, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("open gzip archive: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read tar archive: %w", err)
		}
		if header.Typeflag != tar.TypeReg {
			continue
		}
		if path.Clean(header.Name) != name {
			continue
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			return nil, fmt.Errorf("read tar entry %q: %w", name, err)
		}
		return data, nil
	}

	return nil, fmt.Errorf("tar entry %q: %w", name, domain.ErrEntryNotFound)
}

// progressReader reports cumulative bytes read to a ProgressFunc, mirroring
// the download body as it streams to disk.
type progressReader struct {
	r      io.Reader
	total  int64
	read   int64
	report ports.ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.read += int64(n)
		p.report(p.read, p.total)
	}
	return n, err
}
