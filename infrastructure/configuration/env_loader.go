package configuration

import (
	"bufio"
	"os"
	"strings"

	"jobcast/infrastructure/logger"
)

// LoadEnvFromFile reads KEY=VALUE pairs from the given files into the process
// environment. Missing files are skipped. Variables already present in the
// environment win, so deployment config always overrides file defaults.
func LoadEnvFromFile(paths ...string) {
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			continue
		}
		loaded := 0
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			key, val, ok := parseEnvLine(scanner.Text())
			if !ok {
				continue
			}
			if _, exists := os.LookupEnv(key); exists {
				continue
			}
			_ = os.Setenv(key, val)
			loaded++
		}
		_ = f.Close()
		if loaded > 0 {
			logger.GetLogger().WithField("file", p).WithField("vars", loaded).Info("Environment loaded from file")
		}
	}
}

// parseEnvLine accepts KEY=VALUE, export KEY=VALUE, and quoted values.
// Blank lines and # comments yield ok=false.
func parseEnvLine(line string) (key, val string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimPrefix(line, "export ")
	key, val, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	val = strings.Trim(strings.TrimSpace(val), `"'`)
	return key, val, true
}
