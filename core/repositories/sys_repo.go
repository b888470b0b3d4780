package repositories

import (
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
)

type SysRepo interface {
	GetHostInfo() (string, string)
}

type sysRepoImpl struct{}

func NewSysRepo() SysRepo {
	return &sysRepoImpl{}
}

// GetHostInfo probes the machine once for the boot diagnostics log line.
// Never call it from the health path: health reports process liveness
// only and must not touch the system.
func (r *sysRepoImpl) GetHostInfo() (string, string) {
	hostInfo, _ := host.Info()
	cpuInfo, _ := cpu.Info()

	osName := "Unknown OS"
	if hostInfo != nil {
		osName = hostInfo.OS + " " + hostInfo.Platform
	}

	cpuName := "Unknown CPU"
	if len(cpuInfo) > 0 && cpuInfo[0].ModelName != "" {
		cpuName = cpuInfo[0].ModelName
	}

	return osName, cpuName
}
