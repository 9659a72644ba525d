package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/leanware/leango/internal/bootstrap"
	"github.com/leanware/leango/internal/config"
	"github.com/leanware/leango/internal/logging"
)

func main() {
	app := kingpin.New("leango", "LeanGo starter toolkit - demonstrates the bootstrap, secrets, configuration, and logging helpers")
	configFile := app.Flag("config", "Path to YAML configuration file").String()
	debug := app.Flag("debug", "Set logging level to DEBUG").Short('d').Bool()
	dateSuffix := app.Flag("date", "Suffix the log file with a timestamp").Bool()
	someNumber := app.Flag("somenumber", "Demo numeric setting").Default("-1").Int()
	boolExample := app.Flag("bool-example", "Demo boolean setting").Short('b').Bool()

	showConfig := app.Command("config", "Pretty-print the resolved configuration store")
	checkEnv := app.Command("env", "Report which secret keys are present in the environment")
	envKeys := checkEnv.Arg("keys", "Environment variables to check").Default("SECRET_API_TOKEN", "USER", "PASSWORD").Strings()
	logDemo := app.Command("logdemo", "Demonstrate labeled log handles over the shared logger")

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	overrides := &config.Overrides{
		ConfigFile:  *configFile,
		Debug:       *debug,
		DateSuffix:  *dateSuffix,
		BoolExample: *boolExample,
	}
	if *someNumber >= 0 {
		overrides.SomeNumber = someNumber
	}

	runtime, err := bootstrap.Init(bootstrap.Options{Config: overrides})
	if err != nil {
		panic(fmt.Sprintf("failed to bootstrap: %v", err))
	}

	switch command {
	case showConfig.FullCommand():
		writeConfig(os.Stdout, runtime)
	case checkEnv.FullCommand():
		writeEnvReport(os.Stdout, *envKeys)
	case logDemo.FullCommand():
		runLogDemo(runtime)
	}
}

// writeConfig pretty-prints the resolved configuration store.
func writeConfig(w io.Writer, runtime *bootstrap.Runtime) {
	cfg := runtime.Config
	fmt.Fprintf(w, "project root:  %s\n", runtime.Root)
	fmt.Fprintf(w, "logger name:   %s\n", cfg.LoggerName)
	fmt.Fprintf(w, "log folder:    %s\n", cfg.LogFolder)
	fmt.Fprintf(w, "log level:     %s\n", cfg.LogLevel)
	fmt.Fprintf(w, "date suffix:   %t\n", cfg.DateSuffix)
	fmt.Fprintf(w, "some number:   %d\n", cfg.SomeNumber)
	fmt.Fprintf(w, "bool example:  %t\n", cfg.BoolExample)

	settings := cfg.Settings()
	if len(settings) == 0 {
		return
	}
	keys := make([]string, 0, len(settings))
	for key := range settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintln(w, "settings:")
	for _, key := range keys {
		fmt.Fprintf(w, "  %s: %v\n", key, settings[key])
	}
}

// writeEnvReport reports which of the given keys are set in the environment.
// Values are never printed; these are secrets.
func writeEnvReport(w io.Writer, keys []string) {
	for _, key := range keys {
		if _, ok := os.LookupEnv(key); ok {
			fmt.Fprintf(w, "%s: present\n", key)
		} else {
			fmt.Fprintf(w, "%s: not set\n", key)
		}
	}
}

// runLogDemo shows that differently labeled handles all write through the
// one shared logger.
func runLogDemo(runtime *bootstrap.Runtime) {
	handle := runtime.Logger("example")
	handle.Info("hello from a labeled handle")
	handle.Warn("this is a warning")
	handle.Debug("this only shows up when -d was given")

	other := runtime.Logger("another")
	other.Info("a second handle, same underlying logger")

	shared := logging.Shared()
	shared.Info("and this is the shared logger itself")

	err := fmt.Errorf("demo failure: %w", os.ErrNotExist)
	handle.Error("an error with the automatic stacktrace", zap.Error(err))
	logging.NoStack(handle).Error("the same error without the stacktrace", zap.Error(err))

	_ = shared.Sync()
}
