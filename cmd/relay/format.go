package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"webhook-relay/config"
	"webhook-relay/internal/model"
	"webhook-relay/internal/relay"
	relayUC "webhook-relay/internal/relay/usecase"
	"webhook-relay/pkg/log"
)

func newFormatCmd(configPath *string) *cobra.Command {
	var glyphs bool

	cmd := &cobra.Command{
		Use:   "format [payload.json|-]",
		Short: "Print the notification a payload would produce, without sending it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			relayCfg := relay.DefaultConfig()
			if *configPath != "" {
				cfg, err := config.LoadFrom(*configPath)
				if err != nil {
					return err
				}
				relayCfg = relayConfig(cfg.Relay)
			}

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			return format(cmd.Context(), cmd.OutOrStdout(), in, relayCfg, glyphs)
		},
	}
	cmd.Flags().BoolVar(&glyphs, "glyphs", false, "Render icon shortcodes as emoji")
	return cmd
}

func format(ctx context.Context, out io.Writer, in io.Reader, cfg relay.Config, glyphs bool) error {
	var payload model.Payload
	if err := json.NewDecoder(in).Decode(&payload); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	uc := relayUC.New(log.NewNop(), cfg, nil)
	output, err := uc.Preview(ctx, payload)
	if err != nil {
		if errors.Is(err, relay.ErrInvalidPayload) {
			return errors.New("payload must be a JSON object")
		}
		return err
	}

	if output.Suppressed {
		_, err = fmt.Fprintf(out, "suppressed (%s)\n", output.Reason)
		return err
	}

	text := output.Text
	if glyphs {
		text = model.ReplaceIcons(text)
	}
	_, err = fmt.Fprintf(out, "[%s]\n%s\n", output.Category, text)
	return err
}
