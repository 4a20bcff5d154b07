package cmd

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"roundtrip/config"
	"roundtrip/logging"
	"roundtrip/roundtrip"
	"roundtrip/toolexec"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Verbose bool   `help:"Print more diagnostic messages" short:"v"`
	OutDir  string `help:"Output directory for files (kept after the run; default is a temp directory destroyed at exit)" short:"o" placeholder:"PATH" type:"path"`
	Encoder string `help:"Encoder executable converting text to the binary format" short:"e" placeholder:"PATH" env:"WASM_ENCODER"`
	Decoder string `help:"Decoder executable converting the binary format back to text" placeholder:"PATH" env:"WASM_DECODER"`
	Stdout  bool   `help:"Do one roundtrip and write the decoded text to stdout"`

	UseLibcAllocator bool `help:"Forward --use-libc-allocator to both tools"`
	DebugNames       bool `help:"Forward --debug-names to both tools"`
	GenerateNames    bool `help:"Forward --generate-names to the decoder"`

	File string `arg:"" help:"Test file" placeholder:"FILE"`
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	if c.Encoder == "" {
		if _, hasEnv := os.LookupEnv(toolexec.EncoderEnv); !hasEnv {
			c.Encoder = settings.Encoder
		}
	}

	if c.Decoder == "" {
		if _, hasEnv := os.LookupEnv(toolexec.DecoderEnv); !hasEnv {
			c.Decoder = settings.Decoder
		}
	}

	if c.OutDir == "" && settings.OutDir != "" {
		c.OutDir = settings.OutDir
	}

	if c.MaxLogFiles == 1000 {
		if _, hasEnv := os.LookupEnv("ROUNDTRIP_MAX_LOG_FILES"); !hasEnv {
			if settings.MaxLogFiles != nil {
				c.MaxLogFiles = *settings.MaxLogFiles
			}
		}
	}

	if !c.Debug {
		if _, hasEnv := os.LookupEnv("ROUNDTRIP_DEBUG"); !hasEnv {
			if settings.Debug != nil && *settings.Debug {
				c.Debug = true
			}
		}
	}

	return logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
}

// Execute runs one round-trip and reports the outcome: the diagnostic, if
// any, goes to stderr and the return value is the process exit code.
func (c *CLI) Execute(stderr io.Writer) int {
	return roundtrip.Report(stderr, c.run())
}

func (c *CLI) run() roundtrip.Outcome {
	encoder := toolexec.NewExecutable(
		toolexec.Resolve(c.Encoder, toolexec.EncoderEnv, toolexec.DefaultEncoder))
	decoder := toolexec.NewExecutable(
		toolexec.Resolve(c.Decoder, toolexec.DecoderEnv, toolexec.DefaultDecoder))

	if c.UseLibcAllocator {
		encoder.AppendArg("--use-libc-allocator")
		decoder.AppendArg("--use-libc-allocator")
	}
	if c.DebugNames {
		encoder.AppendArg("--debug-names")
		decoder.AppendArg("--debug-names")
	}
	if c.GenerateNames {
		decoder.AppendArg("--generate-names")
	}

	workdir, err := roundtrip.OpenWorkdir(c.OutDir)
	if err != nil {
		return roundtrip.Errorf("%s", err)
	}
	defer workdir.Close()

	// A harness-owned temp directory must not leak even on interrupt.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(sig)
		close(sig)
	}()
	go func() {
		if _, ok := <-sig; ok {
			workdir.Close()
			os.Exit(int(roundtrip.StatusError))
		}
	}()

	runner := &roundtrip.Runner{
		Encoder: encoder,
		Decoder: decoder,
		Workdir: workdir,
		Verbose: c.Verbose,
	}

	logging.Logger.Info("Starting round-trip", "file", c.File,
		"encoder", encoder.Path, "decoder", decoder.Path, "stdout", c.Stdout)

	if c.Stdout {
		return runner.OneRoundtripToStdout(c.File)
	}
	return runner.TwoRoundtrips(c.File)
}
