package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkeyran/language-tutor/internal/config"
	"github.com/mkeyran/language-tutor/internal/state"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the saved session as Markdown",
	Long:  "Render the saved session state as a Markdown document to stdout or, with --out, to a file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		statePath, err := config.StatePath()
		if err != nil {
			return fmt.Errorf("resolve state path: %w", err)
		}
		s, err := state.LoadFile(statePath)
		if err != nil {
			return fmt.Errorf("no saved session: %w", err)
		}

		md := s.ToMarkdown()
		if out == "" {
			fmt.Print(md)
			return nil
		}
		if err := state.WriteAtomic(out, []byte(md)); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Exported to", out)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "", "Write to a file instead of stdout")
}
