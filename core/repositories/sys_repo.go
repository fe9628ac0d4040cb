package repositories

import (
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
)

type DeviceInfo struct {
	OS  string
	CPU string
}

type SysRepo interface {
	GetDeviceInfo() DeviceInfo
}

type sysRepoImpl struct{}

func NewSysRepo() SysRepo {
	return &sysRepoImpl{}
}

func (r *sysRepoImpl) GetDeviceInfo() DeviceInfo {
	info := DeviceInfo{OS: "Unknown OS", CPU: "Unknown CPU"}

	if hostInfo, err := host.Info(); err == nil && hostInfo != nil {
		info.OS = hostInfo.OS + " " + hostInfo.Platform
	}

	if cpuInfo, err := cpu.Info(); err == nil && len(cpuInfo) > 0 {
		info.CPU = cpuInfo[0].ModelName
	}

	return info
}
