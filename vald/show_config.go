package vald

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/axelarnetwork/dicegame/vald/config"
)

const flagOutput = "output"

// GetConfigCommand returns the command to print the effective configuration as TOML
func GetConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration, or write it to a file to start from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			valdCfg, err := GetContextFromCmd(cmd).ValdConfig()
			if err != nil {
				return err
			}

			output, err := cmd.Flags().GetString(flagOutput)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := config.WriteTOML(&buf, valdCfg); err != nil {
				return err
			}

			if output == "" {
				fmt.Print(buf.String())
				return nil
			}

			if err := os.MkdirAll(filepath.Dir(output), RWX); err != nil {
				return err
			}

			return os.WriteFile(output, buf.Bytes(), RW)
		},
	}

	cmd.Flags().String(flagOutput, "", "write the configuration to this file instead of stdout")
	return cmd
}
