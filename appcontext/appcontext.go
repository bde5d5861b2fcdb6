package appcontext

import (
	"context"
	"io"
	"os"

	"github.com/kontza/mediawalker/config"
	"github.com/kontza/mediawalker/events"
	"github.com/kontza/mediawalker/logging"
)

type AppContext struct {
	context.Context
	cancel context.CancelFunc

	events *events.Receiver
	logger *logging.Logger
	config *config.Configuration

	stdout io.Writer
	stderr io.Writer

	numCPU      int
	username    string
	homeDir     string
	hostname    string
	commandLine string
	configPath  string

	operatingSystem string
	architecture    string
	processID       int

	cwd string
}

func NewAppContext(parent context.Context) *AppContext {
	ctx, cancel := context.WithCancel(parent)
	return &AppContext{
		Context: ctx,
		cancel:  cancel,
		events:  events.New(),
		logger:  logging.Discard(),
		config:  config.DefaultConfig(),
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
}

// Cancel stops every walk started with this context.
func (c *AppContext) Cancel() {
	c.cancel()
}

func (c *AppContext) Close() {
	c.cancel()
	c.events.Close()
}

func (c *AppContext) Events() *events.Receiver {
	return c.events
}

func (c *AppContext) SetLogger(logger *logging.Logger) {
	c.logger = logger
}

func (c *AppContext) GetLogger() *logging.Logger {
	return c.logger
}

func (c *AppContext) SetConfig(config *config.Configuration) {
	c.config = config
}

func (c *AppContext) GetConfig() *config.Configuration {
	return c.config
}

func (c *AppContext) SetOutput(stdout io.Writer, stderr io.Writer) {
	c.stdout = stdout
	c.stderr = stderr
}

func (c *AppContext) Stdout() io.Writer {
	return c.stdout
}

func (c *AppContext) Stderr() io.Writer {
	return c.stderr
}

func (c *AppContext) SetConfigPath(configPath string) {
	c.configPath = configPath
}

func (c *AppContext) GetConfigPath() string {
	return c.configPath
}

func (c *AppContext) SetCWD(cwd string) {
	c.cwd = cwd
}

func (c *AppContext) GetCWD() string {
	return c.cwd
}

func (c *AppContext) SetNumCPU(numCPU int) {
	c.numCPU = numCPU
}

func (c *AppContext) GetNumCPU() int {
	return c.numCPU
}

func (c *AppContext) SetUsername(username string) {
	c.username = username
}

func (c *AppContext) GetUsername() string {
	return c.username
}

func (c *AppContext) SetHostname(hostname string) {
	c.hostname = hostname
}

func (c *AppContext) GetHostname() string {
	return c.hostname
}

func (c *AppContext) SetCommandLine(commandLine string) {
	c.commandLine = commandLine
}

func (c *AppContext) GetCommandLine() string {
	return c.commandLine
}

func (c *AppContext) SetHomeDir(homeDir string) {
	c.homeDir = homeDir
}

func (c *AppContext) GetHomeDir() string {
	return c.homeDir
}

func (c *AppContext) SetOperatingSystem(operatingSystem string) {
	c.operatingSystem = operatingSystem
}

func (c *AppContext) GetOperatingSystem() string {
	return c.operatingSystem
}

func (c *AppContext) SetArchitecture(architecture string) {
	c.architecture = architecture
}

func (c *AppContext) GetArchitecture() string {
	return c.architecture
}

func (c *AppContext) SetProcessID(processID int) {
	c.processID = processID
}

func (c *AppContext) GetProcessID() int {
	return c.processID
}
