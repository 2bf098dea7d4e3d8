package cli

import (
	"os"
	"path/filepath"
)

// DataDirEnv overrides the data directory, mainly for tests and portable
// installs.
const DataDirEnv = "PONTO_DATA_DIR"

// dataDir resolves the directory holding dados_ponto.json and config.json.
func dataDir() (string, error) {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".ponto"), nil
}
