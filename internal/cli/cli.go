package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"

	"github.com/vk/bconv/internal/app"
	"github.com/vk/bconv/internal/config"
	"github.com/vk/bconv/internal/fsutil"
	"github.com/vk/bconv/internal/radix"
)

// Version is the bconv release, overridable at build time with -ldflags.
var Version = "0.0.1"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// usageError wraps any validation failure as a code 1 ExitError.
func usageError(err error) *ExitError {
	return &ExitError{Code: 1, Message: err.Error()}
}

// valueFlags are the flags that consume the following argument.
var valueFlags = map[string]bool{
	"-o": true, "--base": true,
	"-i": true, "--input-base": true,
	"-w": true, "--width": true,
	"-c": true, "--config": true,
	"--log-level": true, "--log-format": true,
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// When no value is given on the command line and stdin is not a terminal,
// the value is read from the first non-empty line of stdin.
func Parse(args []string, output io.Writer, stdin io.Reader) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := pflag.NewFlagSet("bconv", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.SortFlags = false

	flagSet.Usage = func() {
		fmt.Fprint(output, `
bconv - lightweight numeric base converter.

Usage:
  bconv [options] <value>

Arguments:
  <value>
    Integer literal: decimal (255, -42), hexadecimal (0xFF, -0x1f) or
    binary (0b1010). Read from stdin when omitted and stdin is piped.

By default the value is printed in decimal, hexadecimal and binary.

Examples:
  bconv 0x3A
  bconv -b -g 48879
  bconv -x -w 8 0x1FF
  bconv -o 36 1295
  bconv -i 8 -- -777

Options:
`)
		flagSet.PrintDefaults()
	}

	decFlag := flagSet.BoolP("dec", "d", false, "Print decimal output only.")
	hexFlag := flagSet.BoolP("hex", "x", false, "Print hexadecimal output only.")
	binFlag := flagSet.BoolP("bin", "b", false, "Print binary output only.")
	baseFlag := flagSet.IntP("base", "o", 0, "Print the value in an arbitrary base (2-36) only.")
	inputBaseFlag := flagSet.IntP("input-base", "i", 0, "Read the value in this base (2-36) instead of auto-detecting.")
	groupFlag := flagSet.BoolP("group", "g", false, "Group hex and binary digits in blocks of 4.")
	widthFlag := flagSet.IntP("width", "w", 0, "Bit width limit: 8, 16, 32 or 64. Simulates fixed-width overflow.")
	upperFlag := flagSet.BoolP("upper", "u", true, "Uppercase hex digits. Use --upper=false for lowercase.")
	prefixFlag := flagSet.BoolP("prefix", "p", false, "Prefix hex output with 0x and binary output with 0b.")
	configFlag := flagSet.StringArrayP("config", "c", nil, "Profile file (.hcl, .yaml, .yml) with default options. Repeatable.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "auto", "Log output format. Options: 'auto', 'text' or 'json'.")
	helpFlag := flagSet.BoolP("help", "h", false, "Show this help and exit.")
	versionFlag := flagSet.BoolP("version", "v", false, "Show the version and exit.")

	if err := flagSet.Parse(protectNegativeLiterals(args)); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			flagSet.Usage()
			return nil, true, nil
		}
		return nil, false, usageError(err)
	}
	slog.Debug("Arguments parsed successfully.")

	if *helpFlag {
		flagSet.Usage()
		return nil, true, nil
	}
	if *versionFlag {
		fmt.Fprintf(output, "version:%s\n", Version)
		return nil, true, nil
	}

	literal, err := literalFrom(flagSet.Args(), stdin)
	if err != nil {
		return nil, false, usageError(err)
	}
	if literal == "" {
		slog.Debug("No value provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	slog.Debug("Value determined.", "literal", literal)

	var selected []string
	if *decFlag {
		selected = append(selected, config.OutputDecimal)
	}
	if *hexFlag {
		selected = append(selected, config.OutputHex)
	}
	if *binFlag {
		selected = append(selected, config.OutputBinary)
	}

	// Only flags the user typed override profile files.
	var overrides config.Profile
	if flagSet.Changed("base") {
		overrides.OutputBase = config.Int(*baseFlag)
	}
	if flagSet.Changed("group") {
		overrides.GroupDigits = config.Bool(*groupFlag)
	}
	if flagSet.Changed("width") {
		overrides.BitWidth = config.Int(*widthFlag)
	}
	if flagSet.Changed("upper") {
		overrides.HexUppercase = config.Bool(*upperFlag)
	}
	if flagSet.Changed("prefix") {
		overrides.RadixPrefix = config.Bool(*prefixFlag)
	}
	if flagSet.Changed("log-level") {
		overrides.LogLevel = config.String(strings.ToLower(*logLevelFlag))
	}
	if flagSet.Changed("log-format") {
		overrides.LogFormat = config.String(strings.ToLower(*logFormatFlag))
	}

	inputBase := *inputBaseFlag
	if flagSet.Changed("input-base") && inputBase == 0 {
		// 0 means auto-detect internally, so reject it explicitly.
		return nil, false, usageError(radix.ValidateBase(inputBase))
	}

	cfg, err := app.NewConfig(app.Config{
		Literal:      literal,
		InputBase:    inputBase,
		ProfilePaths: *configFlag,
		Selected:     selected,
		Overrides:    overrides,
	})
	if err != nil {
		return nil, false, usageError(err)
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

// literalFrom picks the single value to convert from the positional
// arguments, falling back to piped stdin. An empty result means none was given.
func literalFrom(positional []string, stdin io.Reader) (string, error) {
	switch len(positional) {
	case 0:
	case 1:
		return positional[0], nil
	default:
		return "", fmt.Errorf("expected exactly one value, got %d: %s", len(positional), strings.Join(positional, " "))
	}

	if stdin == nil || fsutil.IsTerminal(stdin) {
		return "", nil
	}
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read value from stdin: %w", err)
	}
	return "", nil
}

// protectNegativeLiterals moves arguments such as "-5" or "-0x1F" behind a
// "--" terminator so the flag parser does not mistake them for shorthand
// flags. Arguments that are the value of a preceding flag are left alone.
func protectNegativeLiterals(args []string) []string {
	var flags, literals []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			literals = append(literals, args[i+1:]...)
			break
		}
		if !(i > 0 && consumesNext(args[i-1])) && isNegativeLiteral(arg) {
			literals = append(literals, arg)
			continue
		}
		flags = append(flags, arg)
	}
	if len(literals) == 0 {
		return flags
	}
	return append(append(flags, "--"), literals...)
}

// consumesNext reports whether arg is a flag that takes the following
// argument as its value, including bundled shorthand groups such as "-gw"
// whose last flag takes a value.
func consumesNext(arg string) bool {
	if valueFlags[arg] {
		return true
	}
	if len(arg) < 3 || arg[0] != '-' || arg[1] == '-' {
		return false
	}
	for _, c := range arg[1:] {
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return valueFlags["-"+arg[len(arg)-1:]]
}

func isNegativeLiteral(arg string) bool {
	return len(arg) > 1 && arg[0] == '-' && arg[1] >= '0' && arg[1] <= '9'
}
