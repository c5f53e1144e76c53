// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/linsolve/config"
	"github.com/katalvlaran/linsolve/driver"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "linsolve.yaml"

var (
	configFile string
	methods    string
	maxIter    int
	refine     bool
	refineIter int
	threshold  float64
	plot       bool
	showSystem bool
	logLevel   string
)

// main registers the commands and flags and exits with status 1 when the
// command returns an error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "linsolve [file]",
		Short: "solve dense linear systems with Gauss, Jacobi and Gauss-Seidel",
		Long: "linsolve reads systems in the format \"n tol a11 .. ann b1 .. bn\" " +
			"(whitespace separated, stdin when no file is given) and solves each one " +
			"with every configured method.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runSolve,
	}

	f := rootCmd.Flags()
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&methods, "methods", "", "comma separated methods: gauss,jacobi,seidel")
	f.IntVar(&maxIter, "max-iter", 0, "iteration cap of the iterative methods")
	f.BoolVar(&refine, "refine", true, "refine solutions whose residual norm exceeds the threshold")
	f.IntVar(&refineIter, "refine-iter", 0, "refinement pass cap")
	f.Float64Var(&threshold, "threshold", 0, "residual L2 norm above which refinement runs")
	f.BoolVar(&plot, "plot", false, "plot convergence histories")
	f.BoolVar(&showSystem, "show-system", false, "print the coefficients and right-hand side of each system")
	f.StringVar(&logLevel, "log-level", "", "debug, info, warn or error")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the configuration file",
	}
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)

	return rootCmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.LogLevel, cmd.ErrOrStderr())

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}

	d, err := driver.New(cfg, cmd.OutOrStdout(), logger)
	if err != nil {
		return err
	}
	sums, err := d.Run(in)
	logger.WithField("systems", len(sums)).Debug("run finished")

	return err
}

// buildConfig loads the config file when given and applies the flags the
// user set explicitly on top of it.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("methods") {
		cfg.Methods = splitMethods(methods)
	}
	if f.Changed("max-iter") {
		cfg.MaxIterations = maxIter
	}
	if f.Changed("refine") {
		cfg.Refine.Enabled = refine
	}
	if f.Changed("refine-iter") {
		cfg.Refine.MaxIterations = refineIter
	}
	if f.Changed("threshold") {
		cfg.Refine.Threshold = threshold
	}
	if f.Changed("plot") {
		cfg.Plot = plot
	}
	if f.Changed("show-system") {
		cfg.ShowSystem = showSystem
	}
	if f.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func splitMethods(s string) []string {
	var out []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}

	return out
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := defaultConfigPath
	if len(args) == 1 {
		path = args[0]
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)

	return nil
}

func setupLogger(level string, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	switch strings.ToLower(level) {
	case "debug":
		logger.SetLevel(logrus.DebugLevel)
	case "warn":
		logger.SetLevel(logrus.WarnLevel)
	case "error":
		logger.SetLevel(logrus.ErrorLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}

	return logger
}
