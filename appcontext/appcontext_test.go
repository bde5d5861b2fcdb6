package appcontext

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/kontza/mediawalker/config"
	"github.com/kontza/mediawalker/logging"
	"github.com/stretchr/testify/require"
)

func TestSettersAndGetters(t *testing.T) {
	ctx := NewAppContext(context.Background())
	defer ctx.Close()

	tests := []struct {
		name     string
		setter   func()
		getter   func() interface{}
		expected interface{}
	}{
		{"NumCPU", func() { ctx.SetNumCPU(4) }, func() interface{} { return ctx.GetNumCPU() }, 4},
		{"Username", func() { ctx.SetUsername("testuser") }, func() interface{} { return ctx.GetUsername() }, "testuser"},
		{"Hostname", func() { ctx.SetHostname("testhost") }, func() interface{} { return ctx.GetHostname() }, "testhost"},
		{"CommandLine", func() { ctx.SetCommandLine("mediawalker walk /tmp") }, func() interface{} { return ctx.GetCommandLine() }, "mediawalker walk /tmp"},
		{"HomeDir", func() { ctx.SetHomeDir("/home/testuser") }, func() interface{} { return ctx.GetHomeDir() }, "/home/testuser"},
		{"ConfigPath", func() { ctx.SetConfigPath("/etc/mw.yaml") }, func() interface{} { return ctx.GetConfigPath() }, "/etc/mw.yaml"},
		{"OperatingSystem", func() { ctx.SetOperatingSystem("linux") }, func() interface{} { return ctx.GetOperatingSystem() }, "linux"},
		{"Architecture", func() { ctx.SetArchitecture("amd64") }, func() interface{} { return ctx.GetArchitecture() }, "amd64"},
		{"ProcessID", func() { ctx.SetProcessID(12345) }, func() interface{} { return ctx.GetProcessID() }, 12345},
		{"CWD", func() { ctx.SetCWD("/srv/media") }, func() interface{} { return ctx.GetCWD() }, "/srv/media"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setter()
			require.Equal(t, tt.expected, tt.getter())
		})
	}
}

func TestDefaults(t *testing.T) {
	ctx := NewAppContext(context.Background())
	defer ctx.Close()

	require.NotNil(t, ctx.Events())
	require.NotNil(t, ctx.GetLogger())
	require.Equal(t, config.DefaultConfig(), ctx.GetConfig())

	logger := logging.Discard()
	ctx.SetLogger(logger)
	require.Same(t, logger, ctx.GetLogger())

	cfg := config.DefaultConfig()
	cfg.Format = "json"
	ctx.SetConfig(cfg)
	require.Equal(t, "json", ctx.GetConfig().Format)

	require.Equal(t, os.Stdout, ctx.Stdout())
	require.Equal(t, os.Stderr, ctx.Stderr())

	var stdout, stderr bytes.Buffer
	ctx.SetOutput(&stdout, &stderr)
	require.Same(t, &stdout, ctx.Stdout())
	require.Same(t, &stderr, ctx.Stderr())
}

func TestCloseCancels(t *testing.T) {
	ctx := NewAppContext(context.Background())
	listener := ctx.Events().Listen()

	ctx.Close()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context not cancelled")
	}
	require.ErrorIs(t, ctx.Err(), context.Canceled)

	_, ok := <-listener
	require.False(t, ok)
}

func TestCancel(t *testing.T) {
	ctx := NewAppContext(context.Background())
	defer ctx.Close()

	ctx.Cancel()
	<-ctx.Done()
	require.ErrorIs(t, ctx.Err(), context.Canceled)
}
