package workspace

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for workspace configuration, allowing callers
// to customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Vendor   string
	Command  string
	Index    string
	Generate string
	Blank    string
	Test     string
	YAML     string
	Short    string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
		Index: 1,
	}
}

// Config holds CLI flag values selecting the vendor+command pair to work on
// and the operation to perform.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags].
type Config struct {
	Flags Flags

	Vendor  string
	Command string
	Index   int

	// Operation selectors; at most one is expected to be set.
	Generate bool
	Blank    bool
	Test     bool
	YAML     bool
	Short    bool
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Vendor:   "vendor",
		Command:  "command",
		Index:    "index",
		Generate: "generate",
		Blank:    "blank",
		Test:     "test",
		YAML:     "yml",
		Short:    "short",
	}

	return f.NewConfig()
}

// RegisterFlags adds workspace flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Vendor, c.Flags.Vendor, "v", "",
		"vendor os of the device command")
	flags.StringVarP(&c.Command, c.Flags.Command, "c", "",
		"device command the template parses")
	flags.IntVarP(&c.Index, c.Flags.Index, "i", c.Index,
		"raw sample index (2 and up select additional samples)")
	flags.BoolVarP(&c.Generate, c.Flags.Generate, "g", false,
		"scaffold the raw and template file pair")
	flags.BoolVarP(&c.Blank, c.Flags.Blank, "b", false,
		`replace whitespace runs in template rules with \s+`)
	flags.BoolVarP(&c.Test, c.Flags.Test, "t", false,
		"run the template against the raw sample and print the records")
	flags.BoolVarP(&c.YAML, c.Flags.YAML, "y", false,
		"write canonical yml results for every raw sample of the command")
	flags.BoolVarP(&c.Short, c.Flags.Short, "s", false,
		"print an index registration line from a shortened command form")
}

// RegisterCompletions registers shell completions for workspace flags on
// cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, flag := range []string{c.Flags.Vendor, c.Flags.Command, c.Flags.Index} {
		err := cmd.RegisterFlagCompletionFunc(flag, noFileComp)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	return nil
}
