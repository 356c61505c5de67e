package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/ui/style"
	"go.trai.ch/zerr"
)

// printResult writes v as indented JSON with --output json, or runs pretty.
func (c *CLI) printResult(w io.Writer, v any, pretty func(io.Writer)) error {
	if !c.jsonResults {
		pretty(w)
		return nil
	}
	data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode result")
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printFileList(w io.Writer, list domain.FileList) {
	_, _ = fmt.Fprintln(w, style.Heading.Render(list.Directory))
	for _, d := range list.Dirs {
		_, _ = fmt.Fprintf(w, "  %s/\n", style.Dim.Render(d.Name))
	}
	for _, f := range list.Files {
		line := fmt.Sprintf("  %-40s %10d", f.Name, f.Size)
		if f.IsVirtual {
			line += style.Dim.Render(fmt.Sprintf("  %d files", len(f.Members)))
		}
		if !f.CanAccess {
			line += " " + style.Caution.Render(style.Warning+" no access")
		}
		_, _ = fmt.Fprintln(w, line)
	}
	for _, o := range list.Others {
		_, _ = fmt.Fprintf(w, "  %s\n", style.Dim.Render(o.Name))
	}
}

func printFileInfo(w io.Writer, file domain.QualifiedFilename, md *domain.Metadata, sil *domain.SIL) {
	_, _ = fmt.Fprintln(w, style.Heading.Render(file.FullName()))
	if md != nil {
		_, _ = fmt.Fprintf(w, "  format   %s\n", md.FileFormat)
		_, _ = fmt.Fprintf(w, "  states   %d\n", md.NumStates)
		if len(md.Cycles) > 0 {
			_, _ = fmt.Fprintf(w, "  cycles   %s\n", joinInts(md.Cycles))
		}
		for _, m := range md.Meshes {
			_, _ = fmt.Fprintf(w, "  mesh     %s\n", m.Name)
		}
		for _, v := range md.Variables {
			_, _ = fmt.Fprintf(w, "  variable %s %s\n", v.Name, style.Dim.Render(fmt.Sprintf("[%g, %g]", v.Min, v.Max)))
		}
	}
	if sil != nil {
		_, _ = fmt.Fprintf(w, "  sil      %d sets, %d collections\n", len(sil.Sets), len(sil.Collections))
	}
}

func joinInts(v []int) string {
	s := make([]string, len(v))
	for i, n := range v {
		s[i] = strconv.Itoa(n)
	}
	return strings.Join(s, " ")
}
