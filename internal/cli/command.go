package cli

import (
	"errors"
	"os"
	"os/signal"
	"soilgate/internal/common"
	"strings"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
)

type CommandOpts struct {
	Name  string
	Flags Flags

	Use     string
	Aliases []string
	Short   string
	Long    string

	Run func(cmd *cobra.Command, opts *Command, args []string) error
}

// NewCommand initialises and returns a data structure that contains
// a set of common constructs and information for all commands to use
func NewCommand(opts CommandOpts) *Command {
	output := &Command{
		flags:             opts.Flags,
		name:              opts.Name,
		shutdownProcesses: map[string]func() error{},
	}
	serviceLogs := make(chan common.ServiceLog, 64)
	common.StartServiceLogLoop(serviceLogs)
	output.serviceLogs = serviceLogs

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown_hostname"
	}
	output.hostname = hostname

	output.Command = &cobra.Command{
		Use:     opts.Use,
		Aliases: opts.Aliases,
		Short:   opts.Short,
		Long:    opts.Long,
		PreRun: func(cmd *cobra.Command, args []string) {
			opts.Flags.BindViper(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := opts.Run(cmd, output, args)
			output.shutdownOnce.Do(output.Shutdown)
			return errors.Join(err, output.Error())
		},
	}
	opts.Flags.AddToCommand(output.Command)

	return output
}

// Command is an abstraction for the commands of the soilgate cli that
// run long-lived processes or hold connections that need closing
type Command struct {
	errs              []error
	errsMutex         sync.Mutex
	flags             Flags
	name              string
	hostname          string
	serviceLogs       chan common.ServiceLog
	shutdownMutex     sync.Mutex
	shutdownOnce      sync.Once
	shutdownProcesses map[string]func() error

	*cobra.Command
}

// AddShutdownProcess adds a `process` named `id` for use when the
// Shutdown() method is called
func (cd *Command) AddShutdownProcess(id string, process func() error) {
	cd.shutdownMutex.Lock()
	defer cd.shutdownMutex.Unlock()
	if _, ok := cd.shutdownProcesses[id]; ok {
		cd.serviceLogs <- common.ServiceLogf(common.LogLevelWarn, "process[%s] was overwritten", id)
	}
	cd.shutdownProcesses[id] = process
}

// Error returns any errors collected from shutdown processes
func (cd *Command) Error() error {
	cd.errsMutex.Lock()
	defer cd.errsMutex.Unlock()
	return errors.Join(cd.errs...)
}

// Get returns the underlying cobra.Command
func (cd *Command) Get() *cobra.Command {
	return cd.Command
}

// GetFullname returns the full namespaced ID of the current command
func (cd *Command) GetFullname() string {
	return strings.ToLower("soilgate." + cd.name)
}

// GetHostname returns the current hostname of the machine, useful
// for identifying connections
func (cd *Command) GetHostname() string {
	return cd.hostname
}

// GetServiceLogs returns an instance of the service logs channel
// that other components can use for logging to a central logging
// system
func (cd *Command) GetServiceLogs() chan common.ServiceLog {
	return cd.serviceLogs
}

// OnSignal calls `handler` once SIGINT or SIGTERM is received, use it
// to stop servers so that Run can return
func (cd *Command) OnSignal(handler func()) {
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-signalChannel
		cd.serviceLogs <- common.ServiceLogf(common.LogLevelInfo, "received signal[%s]", sig)
		handler()
	}()
}

// Shutdown runs all registered shutdown processes concurrently and
// waits for them to complete
func (cd *Command) Shutdown() {
	cd.shutdownMutex.Lock()
	processes := make(map[string]func() error, len(cd.shutdownProcesses))
	for id, process := range cd.shutdownProcesses {
		processes[id] = process
	}
	cd.shutdownMutex.Unlock()

	var waiter sync.WaitGroup
	cd.serviceLogs <- common.ServiceLogf(common.LogLevelDebug, "triggering shutdownProcesses (%v registered)", len(processes))
	for id, shutdownProcess := range processes {
		waiter.Add(1)
		go func(processId string, process func() error) {
			defer waiter.Done()
			if err := process(); err != nil {
				cd.serviceLogs <- common.ServiceLogf(common.LogLevelError, "shutdownProcess[%s] failed: %s", processId, err)
				cd.errsMutex.Lock()
				cd.errs = append(cd.errs, err)
				cd.errsMutex.Unlock()
				return
			}
			cd.serviceLogs <- common.ServiceLogf(common.LogLevelDebug, "shutdownProcess[%s] succeeded", processId)
		}(id, shutdownProcess)
	}
	waiter.Wait()
}
