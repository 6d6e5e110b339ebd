package main

import (
	"fmt"
	"strings"

	"github.com/san-kum/pixie/internal/config"
	"github.com/san-kum/pixie/internal/generator"
	"github.com/san-kum/pixie/internal/render"
	"github.com/san-kum/pixie/internal/viz"
	"github.com/spf13/cobra"
)

type options struct {
	output     string
	size       int
	file       string
	configFile string
	preset     string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "pixie [word]",
		Short:         "generate an identicon from a word",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return generate(args[0], cfg)
		},
	}

	rootCmd.Flags().StringVarP(&opts.output, "output", "o", config.DefaultOutput,
		"format of the generated image ("+strings.Join(render.Formats(), "|")+")")
	rootCmd.Flags().IntVarP(&opts.size, "size", "s", config.DefaultSize, "size of the pixel grid")
	rootCmd.Flags().StringVarP(&opts.file, "file", "f", config.DefaultFile,
		"file where the image should be written. '-' is used to mean stdout.")
	rootCmd.Flags().StringVar(&opts.configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&opts.preset, "preset", "", "use preset grid size")

	rootCmd.AddCommand(newVersionCmd(), newPresetsCmd(), newInspectCmd())
	return rootCmd
}

// resolveConfig layers defaults, preset, config file and explicitly set flags.
func resolveConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if opts.preset != "" {
		preset := config.GetPreset(opts.preset)
		if preset == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", opts.preset, config.ListPresets())
		}
		cfg = preset
	}

	if opts.configFile != "" {
		if err := cfg.Merge(opts.configFile); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("size") {
		cfg.Size = opts.size
	}
	if flags.Changed("file") {
		cfg.File = opts.file
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func generate(word string, cfg *config.Config) error {
	r, err := render.ForFormat(cfg.Output)
	if err != nil {
		return err
	}

	canvas := generator.NewCanvas(cfg.Size, generator.NewSeed(word))
	return render.ToFile(r, cfg.File, canvas)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "show version info",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pixie %s (commit: %s)\n", version, commit)
		},
	}
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list available size presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, viz.Title.Render("presets:"))
			for _, name := range config.ListPresets() {
				fmt.Fprintf(out, "  %-8s %d\n", name, config.Presets[name])
			}
		},
	}
}

func newInspectCmd() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "inspect [word]",
		Short: "show digest, color and fill statistics for a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 0 || size > config.MaxSize {
				return fmt.Errorf("size %d out of range [0, %d]", size, config.MaxSize)
			}
			fmt.Fprint(cmd.OutOrStdout(), viz.Inspect(args[0], size))
			return nil
		},
	}
	cmd.Flags().IntVarP(&size, "size", "s", config.DefaultSize, "size of the pixel grid")
	return cmd
}
