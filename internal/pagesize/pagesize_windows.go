package pagesize

import "golang.org/x/sys/windows"

// Get returns the host's memory page size via a SYSTEM_INFO query.
func Get() int {
	var info windows.SystemInfo
	windows.GetSystemInfo(&info)
	return int(info.PageSize)
}
