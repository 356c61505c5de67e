// Package config loads visit.yaml and writes the file server settings back
// into it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only config version understood.
const SupportedVersion = "1"

// Loader implements ports.ConfigLoader.
type Loader struct {
	Logger ports.Logger
	// Home is searched for .visit/visit.yaml when no file is found above
	// the working directory. Empty means the user's home directory.
	Home string
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration visible from cwd. Without any file the
// defaults are returned.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	path, ok := l.findConfiguration(cwd)
	if !ok {
		return domain.DefaultConfig(), nil
	}

	var vf Visitfile
	if err := readAndUnmarshalYAML(path, &vf); err != nil {
		return nil, err
	}
	if vf.Version != "" && vf.Version != SupportedVersion {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "unsupported version"),
			"version", vf.Version), "path", path)
	}

	cfg, err := l.toDomain(&vf)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

// Path returns the configuration file visible from cwd, or the file that
// SaveFileServer would create.
func (l *Loader) Path(cwd string) string {
	if path, ok := l.findConfiguration(cwd); ok {
		return path
	}
	return filepath.Join(cwd, domain.ConfigFileName)
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	for dir := cwd; ; {
		candidate := filepath.Join(dir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	home := l.Home
	if home == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		home = h
	}
	candidate := filepath.Join(domain.DefaultVisitPath(home), domain.ConfigFileName)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, true
	}
	return "", false
}

func (l *Loader) toDomain(vf *Visitfile) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	if e := vf.Engine; e != nil {
		if err := applyEngine(&cfg.Engine, e); err != nil {
			return nil, err
		}
	}

	if c := vf.Cache; c != nil {
		if c.MetadataSize < 0 || c.SILSize < 0 {
			return nil, zerr.Wrap(domain.ErrConfigParseFailed, "cache sizes must not be negative")
		}
		if c.MetadataSize > 0 {
			cfg.Cache.MetaDataSize = c.MetadataSize
		}
		if c.SILSize > 0 {
			cfg.Cache.SILSize = c.SILSize
		}
	}

	for i, h := range vf.Hosts {
		if h.Host == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "launch profile without host"), "index", i)
		}
		method := domain.LaunchMethod(h.LaunchMethod)
		if !slices.Contains(launchMethods, method) {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "unknown launch method"), "method", h.LaunchMethod)
		}
		name := h.Name
		if name == "" {
			name = fmt.Sprintf("profile%d", i)
			l.Logger.Warn(fmt.Sprintf("launch profile %d for %s has no name, using %q", i, h.Host, name))
		}
		cfg.Profiles = append(cfg.Profiles, domain.LaunchProfile{
			Name:          name,
			Host:          domain.NormalizeHost(h.Host),
			Arguments:     h.Arguments,
			LaunchMethod:  method,
			Parallel:      h.Parallel,
			NumProcs:      max(h.NumProcs, 1),
			ShareBatchJob: h.ShareBatchJob,
			Executable:    h.Executable,
		})
	}

	if f := vf.FileServer; f != nil {
		cfg.FileServer = fileServerFromDTO(f)
	}
	return cfg, nil
}

var launchMethods = []domain.LaunchMethod{
	domain.LaunchDirect, domain.LaunchMPIRun, domain.LaunchSrun, domain.LaunchQsub, domain.LaunchSbatch,
}

func applyEngine(dst *domain.EngineConfig, e *EngineDTO) error {
	if e.NumRestarts != nil {
		if *e.NumRestarts < 0 {
			return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "numRestarts must not be negative"),
				"numRestarts", *e.NumRestarts)
		}
		dst.NumRestarts = *e.NumRestarts
	}

	for _, d := range []struct {
		field string
		value string
		dst   *time.Duration
	}{
		{"retryDelay", e.RetryDelay, &dst.RetryDelay},
		{"launchTimeout", e.LaunchTimeout, &dst.LaunchTimeout},
		{"keepAliveInterval", e.KeepAliveInterval, &dst.KeepAliveInterval},
	} {
		if d.value == "" {
			continue
		}
		v, err := time.ParseDuration(d.value)
		if err != nil || v < 0 {
			return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "invalid duration"), "field", d.field)
		}
		*d.dst = v
	}

	dst.Arguments = slices.Clone(e.Arguments)
	dst.TreatAllDatabasesAsTimeVarying = e.TreatAllDatabasesAsTimeVarying
	dst.Executable = e.Executable
	if e.RemotePortBase > 0 {
		dst.RemotePortBase = e.RemotePortBase
	}

	switch p := domain.Precision(e.Precision); p {
	case "":
	case domain.PrecisionNative, domain.PrecisionFloat, domain.PrecisionDouble:
		dst.Settings.Precision = p
	default:
		return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "unknown precision"), "precision", e.Precision)
	}
	switch b := domain.Backend(e.Backend); b {
	case "":
	case domain.BackendDefault, domain.BackendAccelerated:
		dst.Settings.Backend = b
	default:
		return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "unknown backend"), "backend", e.Backend)
	}
	dst.Settings.RemoveDuplicateNodes = e.RemoveDuplicateNodes
	for k, v := range e.DefaultFileOpenOptions {
		dst.Settings.FileOpenOptions[k] = v
	}
	return nil
}

func fileServerFromDTO(dto *FileServerDTO) domain.FileServerSettings {
	s := domain.DefaultFileServerSettings()
	if dto.Host != "" {
		s.Host = domain.NormalizeHost(dto.Host)
	}
	if dto.Path != "" {
		s.Path = dto.Path
	}
	if dto.Filter != "" {
		s.Filter = dto.Filter
	}
	if dto.UseCurrentDir != nil {
		s.UseCurrentDir = *dto.UseCurrentDir
	}
	if dto.AutomaticFileGrouping != nil {
		s.AutomaticFileGrouping = *dto.AutomaticFileGrouping
	}
	if dto.SmartFileGrouping != nil {
		s.SmartFileGrouping = *dto.SmartFileGrouping
	}
	for host, joined := range dto.RecentPaths {
		var paths []string
		for _, p := range strings.Fields(joined) {
			paths = append(paths, domain.DecodeRecentPath(p))
		}
		s.RecentPaths[domain.NormalizeHost(host)] = paths
	}
	return s
}

func fileServerToDTO(s domain.FileServerSettings) *FileServerDTO {
	dto := &FileServerDTO{
		Host:                  s.Host,
		Path:                  s.Path,
		Filter:                s.Filter,
		UseCurrentDir:         &s.UseCurrentDir,
		AutomaticFileGrouping: &s.AutomaticFileGrouping,
		SmartFileGrouping:     &s.SmartFileGrouping,
	}
	for _, host := range s.RecentHosts() {
		encoded := make([]string, len(s.RecentPaths[host]))
		for i, p := range s.RecentPaths[host] {
			encoded[i] = domain.EncodeRecentPath(p)
		}
		if dto.RecentPaths == nil {
			dto.RecentPaths = make(map[string]string)
		}
		dto.RecentPaths[host] = strings.Join(encoded, " ")
	}
	return dto
}

// SaveFileServer replaces the fileServer section of the configuration file
// visible from cwd, creating the file when there is none. Other sections
// and comments are kept.
func (l *Loader) SaveFileServer(cwd string, settings domain.FileServerSettings) error {
	path := l.Path(cwd)

	var doc yaml.Node
	data, err := os.ReadFile(path) //nolint:gosec // path is the config file we located
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
		}
	}

	root, err := mappingRoot(&doc)
	if err != nil {
		return zerr.With(err, "path", path)
	}

	var section yaml.Node
	if err := section.Encode(fileServerToDTO(settings)); err != nil {
		return zerr.Wrap(err, "failed to encode file server settings")
	}
	setMappingValue(root, "version", &yaml.Node{Kind: yaml.ScalarNode, Value: SupportedVersion, Style: yaml.DoubleQuotedStyle}, false)
	setMappingValue(root, "fileServer", &section, true)

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return zerr.Wrap(err, "failed to encode config file")
	}
	if err := writeFileAtomic(path, out); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", path)
	}
	l.Logger.Info("saved file server settings to " + path)
	return nil
}

func mappingRoot(doc *yaml.Node) (*yaml.Node, error) {
	if doc.Kind == 0 {
		doc.Kind = yaml.DocumentNode
	}
	if len(doc.Content) == 0 {
		doc.Content = []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, zerr.Wrap(domain.ErrConfigParseFailed, "config file is not a mapping")
	}
	return root, nil
}

// setMappingValue sets key in m. An existing value is replaced only when
// overwrite is set.
func setMappingValue(m *yaml.Node, key string, value *yaml.Node, overwrite bool) {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			if overwrite {
				m.Content[i+1] = value
			}
			return
		}
	}
	m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, value)
}

func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".visit-*.yaml")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func readAndUnmarshalYAML(path string, v any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is the config file we located
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}
	return nil
}
