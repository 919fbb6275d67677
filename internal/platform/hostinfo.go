package platform

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// HostInfo is the diagnostic view of the host printed by `getdriver doctor`.
// Distro fields are Linux-only and empty when detection fails.
type HostInfo struct {
	OS            string
	Arch          string
	Platform      string // distro ID, e.g. "ubuntu"
	Family        string // distro family, e.g. "debian"
	Version       string // distro or OS version
	KernelVersion string
}

// CollectHostInfo gathers host details via gopsutil. Detection failures fall
// back to the bare GOOS/GOARCH view rather than failing the command; a
// cancelled context is the only hard error.
func CollectHostInfo(ctx context.Context) (HostInfo, error) {
	info := HostInfo{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}

	platform, family, version, err := host.PlatformInformationWithContext(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return HostInfo{}, ctx.Err()
		}
		return info, nil
	}
	info.Platform = platform
	info.Family = family
	info.Version = version

	if kernel, err := host.KernelVersionWithContext(ctx); err == nil {
		info.KernelVersion = kernel
	}

	return info, nil
}
