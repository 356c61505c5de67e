package launcher

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/core/ports"
	"go.trai.ch/zerr"
)

// LocalProcess starts detached processes on this machine. Output goes to
// the log path of the request.
type LocalProcess struct{}

// LaunchProcess implements ports.ProcessLauncher.
func (LocalProcess) LaunchProcess(_ context.Context, req domain.ProcessLaunchRequest) error {
	if req.Program == "" {
		return zerr.Wrap(domain.ErrSpawnFailed, "no program to launch")
	}

	logFile, err := openLog(req.LogPath)
	if err != nil {
		return err
	}

	//nolint:gosec // G204: program and arguments come from the launch profile
	cmd := exec.Command(req.Program, req.Arguments...)
	if logFile != nil {
		cmd.Stdout = logFile
		cmd.Stderr = logFile
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}

	if err := cmd.Start(); err != nil {
		if logFile != nil {
			_ = logFile.Close()
		}
		return zerr.With(zerr.Wrap(domain.ErrSpawnFailed, err.Error()), "program", req.Program)
	}

	go func() {
		_ = cmd.Wait()
		if logFile != nil {
			_ = logFile.Close()
		}
	}()
	return nil
}

func openLog(path string) (*os.File, error) {
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create log directory"), "path", path)
	}
	//nolint:gosec // G304: path is the configured engine log
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, domain.PrivateFilePerm)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open engine log"), "path", path)
	}
	return f, nil
}

// RemoteShell starts processes on Host through ssh.
type RemoteShell struct {
	Host string
	// Shell is the remote shell client, "ssh" when empty.
	Shell string
	// Forward, when set, is a local port forwarded to RemotePort on the
	// remote loopback for as long as the launched process runs.
	Forward    int
	RemotePort int
	// Local starts the shell client itself.
	Local ports.ProcessLauncher
}

// remoteLog is where remote servers write their output, relative to the
// remote home directory.
const remoteLog = domain.VisitDirName + "/" + domain.EngineLogFileName

// LaunchProcess implements ports.ProcessLauncher.
func (r RemoteShell) LaunchProcess(ctx context.Context, req domain.ProcessLaunchRequest) error {
	shell := r.Shell
	if shell == "" {
		shell = "ssh"
	}
	local := r.Local
	if local == nil {
		local = LocalProcess{}
	}

	return local.LaunchProcess(ctx, domain.ProcessLaunchRequest{
		Program:   shell,
		Arguments: r.shellArguments(req),
		LogPath:   req.LogPath,
	})
}

func (r RemoteShell) shellArguments(req domain.ProcessLaunchRequest) []string {
	command := shellJoin(append([]string{req.Program}, req.Arguments...))
	mkdir := "mkdir -p " + domain.VisitDirName

	if r.Forward > 0 {
		forward := strings.Join([]string{strconv.Itoa(r.Forward), "127.0.0.1", strconv.Itoa(r.RemotePort)}, ":")
		return []string{"-L", forward, r.Host, mkdir + " && exec " + command + " >> " + remoteLog + " 2>&1"}
	}
	return []string{"-n", r.Host, mkdir + " && nohup " + command + " >> " + remoteLog + " 2>&1 < /dev/null &"}
}

// shellJoin quotes args for a POSIX shell.
func shellJoin(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if a != "" && strings.IndexFunc(a, needsQuote) < 0 {
			quoted[i] = a
			continue
		}
		quoted[i] = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
	}
	return strings.Join(quoted, " ")
}

func needsQuote(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case strings.ContainsRune("-_./:=,+@%", r):
		return false
	default:
		return true
	}
}

// Provider implements ports.LauncherProvider with RemoteShell.
type Provider struct {
	Shell string
}

// Launcher returns a RemoteShell for host.
func (p Provider) Launcher(_ context.Context, host string, _ domain.LaunchProfile) (ports.ProcessLauncher, error) {
	if domain.IsLocalHost(host) {
		return LocalProcess{}, nil
	}
	return RemoteShell{Host: host, Shell: p.Shell}, nil
}
