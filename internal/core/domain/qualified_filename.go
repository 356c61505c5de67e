package domain

import (
	"regexp"
	"strings"
)

// QualifiedFilename is a file name qualified with the host and directory of
// the server that owns it. Values are compared by FullName.
type QualifiedFilename struct {
	Host      string
	Path      string
	Filename  string
	Separator string
	CanAccess bool
	IsVirtual bool
}

// NewQualifiedFilename builds a qualified file name from its parts.
func NewQualifiedFilename(host, path, filename, separator string) QualifiedFilename {
	if separator == "" {
		separator = "/"
	}
	return QualifiedFilename{
		Host:      NormalizeHost(host),
		Path:      strings.TrimSuffix(path, separator),
		Filename:  filename,
		Separator: separator,
		CanAccess: true,
	}
}

// ParseQualifiedFilename splits "host:/dir/file" into its parts. A name
// without a host prefix belongs to LocalHost.
func ParseQualifiedFilename(s string) QualifiedFilename {
	host := LocalHost
	rest := s
	if i := strings.Index(s, ":"); i > 0 && !isDriveLetter(s, i) {
		host = s[:i]
		rest = s[i+1:]
	}

	sep := "/"
	if strings.Contains(rest, `\`) && !strings.Contains(rest, "/") {
		sep = `\`
	}

	dir, file := "", rest
	if i := strings.LastIndex(rest, sep); i >= 0 {
		dir, file = rest[:i], rest[i+1:]
	}

	q := NewQualifiedFilename(host, dir, file, sep)
	q.IsVirtual = IsVirtualDatabaseName(file)
	return q
}

func isDriveLetter(s string, colon int) bool {
	return colon == 1 && len(s) > 2 && (s[2] == '\\' || s[2] == '/')
}

// PathAndFile returns the directory and file name joined by the separator.
func (q QualifiedFilename) PathAndFile() string {
	if q.Path == "" {
		return q.Separator + q.Filename
	}
	return q.Path + q.Separator + q.Filename
}

// FullName returns "host:path/file".
func (q QualifiedFilename) FullName() string {
	return q.Host + ":" + q.PathAndFile()
}

// Empty reports whether no file is named.
func (q QualifiedFilename) Empty() bool {
	return q.Filename == ""
}

func (q QualifiedFilename) String() string {
	return q.FullName()
}

// VirtualDatabaseSuffix marks a grouped sequence of numbered files.
const VirtualDatabaseSuffix = " database"

// IsVirtualDatabaseName reports whether name is a grouped file name such as
// "wave*.csv database".
func IsVirtualDatabaseName(name string) bool {
	return strings.HasSuffix(name, VirtualDatabaseSuffix) && strings.Contains(name, "*")
}

// numbered splits "wave0012.csv" into "wave", "0012" and ".csv".
var numbered = regexp.MustCompile(`^(.*?)(\d+)(\.[A-Za-z][A-Za-z0-9]*)?$`)

// SplitNumbered splits a numbered file name into prefix, sequence digits and
// extension. ok is false when name has no trailing sequence number.
func SplitNumbered(name string) (prefix, digits, ext string, ok bool) {
	m := numbered.FindStringSubmatch(name)
	if m == nil {
		return "", "", "", false
	}
	return m[1], m[2], m[3], true
}

// VirtualDatabaseName returns the grouped name of numbered files sharing
// prefix and ext.
func VirtualDatabaseName(prefix, ext string) string {
	return prefix + "*" + ext + VirtualDatabaseSuffix
}
