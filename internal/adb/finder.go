package adb

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// FindADB locates the adb executable. preferred may be a full path or a
// name on PATH; common install locations are tried after it.
func FindADB(preferred string) (string, error) {
	candidates := []string{}
	if preferred != "" {
		candidates = append(candidates, preferred)
	}

	if runtime.GOOS == "windows" {
		candidates = append(candidates,
			`C:\Program Files\Netease\MuMuPlayer-12.0\shell\adb.exe`,
			`C:\Program Files\BlueStacks_nxt\HD-Adb.exe`,
			`${LOCALAPPDATA}\Android\Sdk\platform-tools\adb.exe`,
			"adb.exe",
		)
	} else {
		candidates = append(candidates,
			"/usr/bin/adb",
			"/usr/local/bin/adb",
			"${HOME}/Android/Sdk/platform-tools/adb",
			"adb",
		)
	}

	for _, path := range candidates {
		expanded := os.ExpandEnv(path)
		if info, err := os.Stat(expanded); err == nil && !info.IsDir() {
			return expanded, nil
		}
		if found, err := exec.LookPath(expanded); err == nil {
			return found, nil
		}
	}

	return "", fmt.Errorf("adb not found, please set adbPath in settings")
}
