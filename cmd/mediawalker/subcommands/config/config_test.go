package config

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/kontza/mediawalker/appcontext"
	"github.com/kontza/mediawalker/config"
	"github.com/kontza/mediawalker/logging"
	"github.com/stretchr/testify/require"
)

func newContext(t *testing.T) (*appcontext.AppContext, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	ctx := appcontext.NewAppContext(context.Background())
	t.Cleanup(ctx.Close)

	ctx.SetOutput(&stdout, &stderr)
	ctx.SetLogger(logging.NewLogger(&stdout, &stderr))
	ctx.SetConfigPath(filepath.Join(t.TempDir(), "mediawalker", "config.yaml"))
	return ctx, &stdout, &stderr
}

func TestConfigList(t *testing.T) {
	ctx, stdout, _ := newContext(t)

	require.Equal(t, 0, cmd_config(ctx, nil))
	require.Equal(t, ""+
		"buffer_size: 0\n"+
		"classifier: mime\n"+
		"color: true\n"+
		"format: text\n"+
		"progress: true\n", stdout.String())
}

func TestConfigGetSet(t *testing.T) {
	ctx, stdout, _ := newContext(t)

	require.Equal(t, 0, cmd_config(ctx, []string{"set", "format", "msgpack"}))
	require.Equal(t, 0, cmd_config(ctx, []string{"get", "format"}))
	require.Equal(t, "msgpack\n", stdout.String())

	saved, err := config.LoadConfig(ctx.GetConfigPath())
	require.NoError(t, err)
	require.Equal(t, "msgpack", saved.Format)
}

func TestConfigErrors(t *testing.T) {
	ctx, _, _ := newContext(t)

	require.Equal(t, 1, cmd_config(ctx, []string{"get"}))
	require.Equal(t, 1, cmd_config(ctx, []string{"get", "colour"}))
	require.Equal(t, 1, cmd_config(ctx, []string{"set", "format"}))
	require.Equal(t, 1, cmd_config(ctx, []string{"set", "format", "xml"}))
	require.Equal(t, 1, cmd_config(ctx, []string{"unset", "format"}))
	require.Equal(t, "text", ctx.GetConfig().Format)
}
