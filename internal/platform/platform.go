// Package platform describes the machine a benchmark ran on, so results
// from different hosts can be told apart.
package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// Info is a summary of the host CPU.
type Info struct {
	OS       string
	Arch     string
	CPUs     int
	Features []string
}

// Detect returns the Info for the current process.
func Detect() Info {
	return Info{
		OS:       runtime.GOOS,
		Arch:     runtime.GOARCH,
		CPUs:     runtime.NumCPU(),
		Features: features(),
	}
}

// String renders the info on one line, e.g. "linux/amd64 8 cpus [avx2 bmi2]".
func (i Info) String() string {
	s := fmt.Sprintf("%s/%s %d cpus", i.OS, i.Arch, i.CPUs)
	if len(i.Features) > 0 {
		s += " [" + strings.Join(i.Features, " ") + "]"
	}
	return s
}

// collect returns the names whose flag is set, in the order given.
func collect(flags []flag) []string {
	var out []string
	for _, f := range flags {
		if f.on {
			out = append(out, f.name)
		}
	}
	return out
}

type flag struct {
	name string
	on   bool
}
