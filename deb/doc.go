// Package deb reads Debian binary packages far enough to locate the
// copyright document a package installs under /usr/share/doc/<package>/.
//
// The package walks the outer AR container of a .deb entirely in memory,
// without dpkg or temporary files, and understands plain, gzip and xz
// compressed data archives.
package deb
