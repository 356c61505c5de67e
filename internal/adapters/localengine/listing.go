package localengine

import (
	"cmp"
	"os"
	"path"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/zerr"
)

// ListDirectory lists dir the way a metadata server reports it.
func ListDirectory(dir string, req domain.FileListRequest) (domain.FileList, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return domain.FileList{}, zerr.With(zerr.Wrap(domain.ErrGetFileListFailed, err.Error()), "directory", dir)
	}

	list := domain.FileList{
		Directory: dir,
		Dirs:      []domain.FileEntry{{Name: "..", CanAccess: true}},
	}
	patterns := strings.Fields(req.Filter)
	var files []domain.FileEntry
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			continue
		}
		entry := domain.FileEntry{Name: e.Name(), Size: info.Size(), CanAccess: true}
		switch {
		case e.IsDir():
			entry.Size = 0
			list.Dirs = append(list.Dirs, entry)
		case !info.Mode().IsRegular():
			list.Others = append(list.Others, entry)
		case matchesFilter(patterns, e.Name()):
			files = append(files, entry)
		}
	}

	if req.AutomaticFileGrouping {
		files = groupFiles(files, req.SmartFileGrouping)
	}
	list.Files = files
	return list, nil
}

// matchesFilter reports whether name matches any of the patterns. No
// patterns match everything.
func matchesFilter(patterns []string, name string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, p := range patterns {
		if ok, err := path.Match(p, name); err == nil && ok {
			return true
		}
	}
	return false
}

type groupKey struct {
	prefix string
	ext    string
	width  int
}

// groupFiles folds numbered files sharing a prefix and extension into one
// virtual database entry. With smart grouping the numbers must also share a
// digit width, so "a1.csv" and "a10.csv" stay apart from "a001.csv".
func groupFiles(files []domain.FileEntry, smart bool) []domain.FileEntry {
	groups := map[groupKey][]domain.FileEntry{}
	var order []groupKey
	var out []domain.FileEntry
	for _, f := range files {
		prefix, digits, ext, ok := domain.SplitNumbered(f.Name)
		if !ok {
			out = append(out, f)
			continue
		}
		k := groupKey{prefix: prefix, ext: ext}
		if smart {
			k.width = len(digits)
		}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], f)
	}

	for _, k := range order {
		members := groups[k]
		if len(members) < 2 {
			out = append(out, members...)
			continue
		}
		slices.SortFunc(members, func(a, b domain.FileEntry) int {
			return cmp.Or(cmp.Compare(sequence(a.Name), sequence(b.Name)), cmp.Compare(a.Name, b.Name))
		})
		v := domain.FileEntry{
			Name:      domain.VirtualDatabaseName(k.prefix, k.ext),
			CanAccess: true,
			IsVirtual: true,
		}
		for _, m := range members {
			v.Size += m.Size
			v.Members = append(v.Members, m.Name)
		}
		out = append(out, v)
	}

	slices.SortFunc(out, func(a, b domain.FileEntry) int { return cmp.Compare(a.Name, b.Name) })
	return out
}

func sequence(name string) int {
	_, digits, _, _ := domain.SplitNumbered(name)
	n, _ := strconv.Atoi(digits)
	return n
}
