package deb

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/blakesmith/ar"
	"github.com/ulikunitz/xz"
)

// copyrightPattern matches the canonical installed location of a
// package's copyright file.
//
// Reference: https://www.debian.org/doc/debian-policy/ch-docs.html#copyright-information
const copyrightPattern = "usr/share/doc/*/copyright"

// ExtractCopyright iterates through the AR archive structure of a .deb
// file to locate the data archive (data.tar, data.tar.gz or data.tar.xz)
// and returns the content of the copyright file inside it.
func ExtractCopyright(r io.Reader) (string, error) {
	arR := ar.NewReader(r)
	for {
		header, err := arR.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("reading ar header: %w", err)
		}
		if !strings.HasPrefix(header.Name, "data.tar") {
			continue
		}

		var tr *tar.Reader
		switch {
		case strings.HasSuffix(header.Name, ".gz"):
			gzr, err := gzip.NewReader(arR)
			if err != nil {
				return "", fmt.Errorf("opening %s: %w", header.Name, err)
			}
			defer gzr.Close()
			tr = tar.NewReader(gzr)
		case strings.HasSuffix(header.Name, ".xz"):
			xzr, err := xz.NewReader(arR)
			if err != nil {
				return "", fmt.Errorf("opening %s: %w", header.Name, err)
			}
			tr = tar.NewReader(xzr)
		default:
			tr = tar.NewReader(arR)
		}

		for {
			th, err := tr.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return "", fmt.Errorf("reading data tar header: %w", err)
			}
			if th.Typeflag != tar.TypeReg {
				continue
			}
			name := strings.TrimPrefix(th.Name, "./")
			if ok, _ := path.Match(copyrightPattern, name); !ok {
				continue
			}
			var buf bytes.Buffer
			if _, err := io.Copy(&buf, tr); err != nil {
				return "", fmt.Errorf("reading %s: %w", th.Name, err)
			}
			return buf.String(), nil
		}
	}
	return "", fmt.Errorf("no %s entry found in data archive", copyrightPattern)
}
