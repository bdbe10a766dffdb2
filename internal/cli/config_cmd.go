// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/spf13/cobra"

	"github.com/jeranaias/daynight-tui/internal/config"
)

// configPaths is the JSON form of `config path`.
type configPaths struct {
	Config  string `json:"config"`
	Loaded  bool   `json:"loaded"`
	State   string `json:"state"`
	Log     string `json:"log"`
	Backend string `json:"backend"`
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := loadRuntime(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			if jsonMode(cmd) {
				return printJSON(cmd, rt.cfg)
			}

			out := rt.cfg.String()
			w := cmd.OutOrStdout()
			if ColorsEnabled(w) {
				out = highlight(out, "toml")
			}
			_, err = fmt.Fprint(w, out)
			return err
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where config, state and log live",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := loadRuntime(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			paths := configPaths{
				Config:  rt.cfgPath,
				Loaded:  rt.cfgPath != "",
				Backend: rt.cfg.Storage.Backend,
			}
			if paths.Config == "" {
				if paths.Config, err = config.ConfigPathTOML(); err != nil {
					return err
				}
			}
			if paths.State, err = rt.cfg.StatePath(); err != nil {
				return err
			}
			if paths.Log, err = rt.cfg.LogPath(); err != nil {
				return err
			}

			if jsonMode(cmd) {
				return printJSON(cmd, paths)
			}
			st := newOutputStyles(cmd.OutOrStdout())
			note := ""
			if !paths.Loaded {
				note = " (not present, using defaults)"
			}
			fmt.Fprintln(cmd.OutOrStdout(), st.Field("config", paths.Config+note))
			fmt.Fprintln(cmd.OutOrStdout(), st.Field("state", paths.State+" ["+paths.Backend+"]"))
			fmt.Fprintln(cmd.OutOrStdout(), st.Field("log", paths.Log))
			return nil
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			explicit, _ := cmd.Root().PersistentFlags().GetString("config")
			path := explicit
			if path == "" {
				var err error
				if path, err = config.ConfigPathTOML(); err != nil {
					return err
				}
			}
			if strings.HasSuffix(path, ".json") {
				return fmt.Errorf("config init writes TOML; choose a .toml path")
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			var err error
			if explicit == "" {
				err = config.Save(config.Default())
			} else {
				err = config.SaveTOML(config.Default(), path)
			}
			if err != nil {
				return err
			}

			if jsonMode(cmd) {
				return printJSON(cmd, map[string]string{"path": path})
			}
			st := newOutputStyles(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), st.Success.Render("Wrote "+path))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}

// highlight applies syntax highlighting using chroma.
// Returns the input unchanged if highlighting fails.
func highlight(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return buf.String()
}
