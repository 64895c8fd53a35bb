package logic

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// FormatParams renders a tuned configuration as a single params-file line.
func FormatParams(r TuneResult) string {
	return fmt.Sprintf("K=%g, k=%g, alpha=%g, val_logloss=%.6f\n",
		r.Config.K, r.Config.Scale, r.Config.Alpha, r.Metrics.LogLoss)
}

// ParseParams reads "K=32, k=0.004, alpha=0.4, val_logloss=0.646084".
// Keys missing from the line keep their default value; val_logloss is ignored.
func ParseParams(line string) (EloConfig, error) {
	cfg := DefaultEloConfig()
	line = strings.TrimSpace(line)
	if line == "" {
		return cfg, fmt.Errorf("empty params line")
	}

	for _, part := range strings.Split(line, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return cfg, fmt.Errorf("malformed param %q", part)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return cfg, fmt.Errorf("param %s: %w", key, err)
		}
		switch strings.TrimSpace(key) {
		case "K":
			cfg.K = f
		case "k":
			cfg.Scale = f
		case "alpha":
			cfg.Alpha = f
		}
	}
	return cfg, nil
}

// LoadParams reads a params file written by the tune command.
func LoadParams(path string) (EloConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return DefaultEloConfig(), err
	}
	return ParseParams(string(content))
}

// SaveParams overwrites the params file with the tuned configuration.
func SaveParams(path string, r TuneResult) error {
	return os.WriteFile(path, []byte(FormatParams(r)), 0o644)
}
