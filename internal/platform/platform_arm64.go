//go:build arm64

package platform

import "golang.org/x/sys/cpu"

func features() []string {
	return collect([]flag{
		{"asimd", cpu.ARM64.HasASIMD},
		{"atomics", cpu.ARM64.HasATOMICS},
		{"crc32", cpu.ARM64.HasCRC32},
		{"sve", cpu.ARM64.HasSVE},
		{"sve2", cpu.ARM64.HasSVE2},
	})
}
