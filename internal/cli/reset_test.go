package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YannaMedova/controle-ponto/internal/config"
)

func TestResetSetsCountingStart(t *testing.T) {
	dir := t.TempDir()
	cmd, buf := newTestCmd()

	err := runReset(cmd, dir, PromptKit{Confirm: AlwaysYes()}, nowFn())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "2025-03-05")

	cfg := config.Load(dir)
	require.NotNil(t, cfg.CountingStart)
	assert.Equal(t, "2025-03-05", *cfg.CountingStart)
}

func TestResetNeedsBothConfirmations(t *testing.T) {
	dir := t.TempDir()
	cmd, _ := newTestCmd()

	// Accept the first prompt, decline the second.
	answers := []bool{true, false}
	pk := PromptKit{Confirm: func(_ string) (bool, error) {
		ans := answers[0]
		answers = answers[1:]
		return ans, nil
	}}

	require.NoError(t, runReset(cmd, dir, pk, nowFn()))
	assert.Nil(t, config.Load(dir).CountingStart)
}

func TestResetDeclinedIsANoOp(t *testing.T) {
	dir := t.TempDir()
	cmd, _ := newTestCmd()

	require.NoError(t, runReset(cmd, dir, PromptKit{Confirm: AlwaysNo()}, nowFn()))
	assert.Nil(t, config.Load(dir).CountingStart)
	assert.False(t, config.Exists(dir))
}
