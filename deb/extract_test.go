package deb

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/blakesmith/ar"
	"github.com/ulikunitz/xz"
)

const testCopyright = `Format: https://www.debian.org/doc/packaging-manuals/copyright-format/1.0/
Upstream-Name: demo

Files: *
Copyright: 2020, Example Org.
License: MIT
`

// buildDataTar writes a data archive containing the usual doc entries for
// a package named "demo".
func buildDataTar(t *testing.T, w io.Writer, copyrightContent string) {
	t.Helper()
	tw := tar.NewWriter(w)
	entries := []struct {
		name string
		body string
	}{
		{"./usr/bin/demo", "#!/bin/sh\n"},
		{"./usr/share/doc/demo/copyright", copyrightContent},
		{"./usr/share/doc/demo/changelog.gz", "not really gzip"},
	}
	for _, e := range entries {
		hdr := &tar.Header{
			Name:    e.name,
			Mode:    0644,
			Size:    int64(len(e.body)),
			ModTime: time.Now(),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("writing tar header: %v", err)
		}
		if _, err := tw.Write([]byte(e.body)); err != nil {
			t.Fatalf("writing tar body: %v", err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("closing tar: %v", err)
	}
}

// buildMockDeb assembles a minimal .deb around the given data archive.
func buildMockDeb(t *testing.T, dataName string, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	arW := ar.NewWriter(&buf)
	if err := arW.WriteGlobalHeader(); err != nil {
		t.Fatalf("writing ar global header: %v", err)
	}
	add := func(name string, body []byte) {
		header := &ar.Header{
			Name:    name,
			Size:    int64(len(body)),
			Mode:    0644,
			ModTime: time.Now(),
		}
		if err := arW.WriteHeader(header); err != nil {
			t.Fatalf("writing ar header: %v", err)
		}
		if _, err := arW.Write(body); err != nil {
			t.Fatalf("writing ar body: %v", err)
		}
	}
	add("debian-binary", []byte("2.0\n"))
	add("control.tar.gz", []byte{})
	add(dataName, data)
	return buf.Bytes()
}

func TestExtractCopyrightGzip(t *testing.T) {
	var data bytes.Buffer
	gw := gzip.NewWriter(&data)
	buildDataTar(t, gw, testCopyright)
	if err := gw.Close(); err != nil {
		t.Fatalf("closing gzip: %v", err)
	}
	debBytes := buildMockDeb(t, "data.tar.gz", data.Bytes())

	got, err := ExtractCopyright(bytes.NewReader(debBytes))
	if err != nil {
		t.Fatalf("ExtractCopyright failed: %v", err)
	}
	if got != testCopyright {
		t.Errorf("expected %q, got %q", testCopyright, got)
	}
}

func TestExtractCopyrightXz(t *testing.T) {
	var data bytes.Buffer
	xw, err := xz.NewWriter(&data)
	if err != nil {
		t.Fatalf("creating xz writer: %v", err)
	}
	buildDataTar(t, xw, testCopyright)
	if err := xw.Close(); err != nil {
		t.Fatalf("closing xz: %v", err)
	}
	debBytes := buildMockDeb(t, "data.tar.xz", data.Bytes())

	got, err := ExtractCopyright(bytes.NewReader(debBytes))
	if err != nil {
		t.Fatalf("ExtractCopyright failed: %v", err)
	}
	if got != testCopyright {
		t.Errorf("expected %q, got %q", testCopyright, got)
	}
}

func TestExtractCopyrightPlainTar(t *testing.T) {
	var data bytes.Buffer
	buildDataTar(t, &data, testCopyright)
	debBytes := buildMockDeb(t, "data.tar", data.Bytes())

	got, err := ExtractCopyright(bytes.NewReader(debBytes))
	if err != nil {
		t.Fatalf("ExtractCopyright failed: %v", err)
	}
	if got != testCopyright {
		t.Errorf("expected %q, got %q", testCopyright, got)
	}
}

func TestExtractCopyrightMissing(t *testing.T) {
	var data bytes.Buffer
	tw := tar.NewWriter(&data)
	hdr := &tar.Header{Name: "./usr/bin/demo", Mode: 0755, Size: 2, ModTime: time.Now()}
	tw.WriteHeader(hdr)
	tw.Write([]byte("hi"))
	tw.Close()
	debBytes := buildMockDeb(t, "data.tar", data.Bytes())

	_, err := ExtractCopyright(bytes.NewReader(debBytes))
	if err == nil {
		t.Fatal("expected an error for a package without a copyright file")
	}
	if !strings.Contains(err.Error(), "copyright") {
		t.Errorf("unexpected error: %v", err)
	}
}
