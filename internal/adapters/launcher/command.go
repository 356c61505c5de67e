package launcher

import (
	"slices"
	"strconv"

	"go.trai.ch/visit/internal/core/domain"
)

// serverArguments returns the arguments of "visit <role> serve".
func serverArguments(req domain.LaunchRequest, listen string) []string {
	role := req.Role
	if role == "" {
		role = domain.RoleEngine
	}
	args := []string{"engine", "serve", "--role", role, "--listen", listen, "--key", req.SecurityKey}
	if len(req.Arguments) > 0 {
		args = append(append(args, "--"), req.Arguments...)
	}
	return args
}

// parallelCommand prefixes program with the parallel launcher of profile.
// Serial profiles run program unchanged.
func parallelCommand(profile domain.LaunchProfile, program string, args []string) (string, []string) {
	if !profile.Parallel {
		return program, args
	}
	np := strconv.Itoa(max(profile.NumProcs, 1))

	switch profile.LaunchMethod {
	case domain.LaunchSrun:
		return "srun", slices.Concat([]string{"-n", np, program}, args)
	case domain.LaunchSbatch:
		script := shellJoin(slices.Concat([]string{"srun", program}, args))
		return "sbatch", []string{"-n", np, "--wrap", script}
	case domain.LaunchQsub:
		return "qsub", slices.Concat([]string{"-l", "select=" + np, "--", program}, args)
	default:
		return "mpirun", slices.Concat([]string{"-np", np, program}, args)
	}
}
