package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/toolstack/addressit/internal/transfer"
	"github.com/toolstack/addressit/internal/views"
)

func newExportCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the checklist as JSON backup, CSV, XLSX or Markdown report",
		Long: `Write an export file. Without --out the file goes to the export
directory under its dated default name; --out - writes to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := openEnv(cmd.Context(), v)
			if err != nil {
				return err
			}
			defer env.Close()

			format, _ := cmd.Flags().GetString("format")
			kind, err := transfer.ParseFileKind(format)
			if err != nil {
				return err
			}
			data, name, err := env.session.ExportFile(kind)
			if err != nil {
				return err
			}

			out, _ := cmd.Flags().GetString("out")
			if out == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if out == "" {
				out = filepath.Join(env.cfg.ExportDir, name)
			}
			if err := transfer.WriteFile(out, data); err != nil {
				return err
			}
			env.logger.Info("export written", zap.String("kind", string(kind)), zap.String("path", out))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", env.session.Strings().Exported, out)
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "json", "json, csv, xlsx or md")
	cmd.Flags().StringP("out", "o", "", "output path, - for stdout")
	return cmd
}

func newImportCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the checklist with a JSON backup",
		Long: `Import a JSON backup written by export (or an older export shape).
The current checklist is replaced, so the command asks first unless --yes
is given. FILE may be - to read stdin, which then requires --yes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(cmd.Context(), v)
			if err != nil {
				return err
			}
			defer env.Close()
			s := env.session
			str := s.Strings()
			yes, _ := cmd.Flags().GetBool("yes")

			source := args[0]
			var raw []byte
			if source == "-" {
				if !yes {
					return errors.New("reading from stdin requires --yes")
				}
				raw, err = io.ReadAll(cmd.InOrStdin())
				source = "stdin"
			} else {
				raw, err = os.ReadFile(source)
			}
			if err != nil {
				return err
			}

			if _, err := s.RequestImport(raw, source); err != nil {
				return err
			}
			if !yes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), str.ConfirmImport+" "+str.ConfirmPrompt) {
				_ = s.Decline()
				fmt.Fprintln(cmd.OutOrStdout(), str.Declined)
				return nil
			}
			if _, err := s.Confirm(cmd.Context()); err != nil {
				if errors.Is(err, transfer.ErrInvalidPayload) {
					return fmt.Errorf("%s: %w", str.InvalidJSON, err)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", str.Imported, len(s.State().Sections))
			return nil
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
	return cmd
}

func newReportCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the Markdown report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := openEnv(cmd.Context(), v)
			if err != nil {
				return err
			}
			defer env.Close()

			md := env.session.Report()
			if raw, _ := cmd.Flags().GetBool("raw"); raw {
				_, err := io.WriteString(cmd.OutOrStdout(), md)
				return err
			}
			width, _ := cmd.Flags().GetInt("width")
			if width <= 0 {
				width = env.cfg.UI.ReportWidth
			}
			fmt.Fprintln(cmd.OutOrStdout(), views.RenderMarkdown(md, width))
			return nil
		},
	}
	cmd.Flags().Bool("raw", false, "print Markdown source instead of rendering it")
	cmd.Flags().Int("width", 0, "wrap width (default ui.report_width)")
	return cmd
}

func newResetCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved checklist and start over",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := openEnv(cmd.Context(), v)
			if err != nil {
				return err
			}
			defer env.Close()
			s := env.session
			str := s.Strings()

			if _, err := s.RequestReset(); err != nil {
				return err
			}
			if yes, _ := cmd.Flags().GetBool("yes"); !yes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), str.ConfirmReset+" "+str.ConfirmPrompt) {
				_ = s.Decline()
				fmt.Fprintln(cmd.OutOrStdout(), str.Declined)
				return nil
			}
			if _, err := s.Confirm(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), str.ResetDone)
			return nil
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
	return cmd
}
