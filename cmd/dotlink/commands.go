package dotlink

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/arthur-debert/dotlink/internal/version"
	"github.com/arthur-debert/dotlink/pkg/cobrax/topics"
	"github.com/arthur-debert/dotlink/pkg/config"
	"github.com/arthur-debert/dotlink/pkg/core"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicsFS embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		configPath     string
		dryRun         bool
		checkTemplates bool
		verbosity      int
		formatName     string
	)

	rootCmd := &cobra.Command{
		Use:     "dotlink",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf(MsgErrArgs, args)
			}

			format, err := output.ParseFormat(formatName)
			if err != nil {
				return fmt.Errorf(MsgErrFormat, err)
			}
			format = output.ResolveFormat(format, os.Stdout)

			stdout := cmd.OutOrStdout()
			actionsOut := stdout
			if format == output.FormatJSON || format == output.FormatYAML {
				actionsOut = cmd.ErrOrStderr()
			}

			logging.LogCommand(cmd.Name(), os.Args[1:])
			_, err = core.Run(cmd.Context(), core.Options{
				ConfigPath:     configPath,
				DryRun:         dryRun,
				CheckTemplates: checkTemplates,
				Reporter:       output.NewPrinter(actionsOut, format),
				ReportOut:      stdout,
				ReportFormat:   format,
			})
			if err != nil {
				return err
			}

			if dryRun && !checkTemplates {
				fmt.Fprintln(actionsOut, MsgDryRunNotice)
			}
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", MsgFlagConfig)
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.Flags().BoolVar(&checkTemplates, "check-templates", false, MsgFlagCheckTemplates)
	rootCmd.Flags().StringVar(&formatName, "format", output.FormatAuto.String(), MsgFlagFormat)
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	_ = rootCmd.MarkFlagRequired("config")
	_ = rootCmd.MarkFlagFilename("config", "toml", "yaml", "yml", "json")
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newGenConfigCmd())

	if sub, err := fs.Sub(topicsFS, "topics"); err == nil {
		_, err := topics.Install(rootCmd, sub, topics.Options{
			Extensions: []string{".md", ".txt"},
			Renderer:   topics.NewGlamourRenderer(),
		})
		if err != nil {
			log.Warn().Err(err).Msg("Help topics unavailable")
		}
	}

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionLine, version.Version)
			fmt.Fprintf(out, MsgCommitLine, version.Commit)
			fmt.Fprintf(out, MsgBuiltLine, version.Date)
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeSampleConfig(cmd.OutOrStdout())
		},
	}
}

func writeSampleConfig(w io.Writer) error {
	data, err := config.MarshalTOML(config.Sample())
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
