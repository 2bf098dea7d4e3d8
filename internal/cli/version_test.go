package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionOutput(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2025-03-05")
	defer SetVersionInfo("dev", "none", "unknown")

	cmd, buf := newTestCmd()
	versionCmd.Run(cmd, nil)

	assert.Equal(t, "ponto 1.2.3 (commit: abc123, built: 2025-03-05)\n", buf.String())
}
