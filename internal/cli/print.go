package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/atomicstack/termfolio/internal/calc"
	"github.com/atomicstack/termfolio/internal/command"
	"github.com/atomicstack/termfolio/internal/content"
	"github.com/atomicstack/termfolio/internal/theme"
	"github.com/atomicstack/termfolio/internal/weather"
)

func newPrintCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "print <command> [args...]",
		Short: "Print one command's output and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			registry := command.BuildRegistry()
			styles := theme.Resolve(st.cfg.App.Theme)
			res := registry.Run(command.Context{
				Resume:     content.MustDefault(),
				Weather:    weather.NewClient(st.cfg.App.Weather, nil),
				Calculator: calc.New(),
				Theme:      styles.Name,
				Themes:     theme.Names(),
			}, strings.Join(args, " "))

			blocks := res.Blocks
			if res.Pending != nil {
				block, err := waitPending(ctx, res.Pending)
				if err != nil {
					return err
				}
				blocks = append(blocks, block)
			}
			out := cmd.OutOrStdout()
			if !isTerminal(out) {
				styles = nil
			}
			writeBlocks(out, styles, blocks)
			if res.Unknown {
				return fmt.Errorf("unknown command: %s", args[0])
			}
			return nil
		},
	}
}

func waitPending(ctx context.Context, p *command.Pending) (content.Block, error) {
	if p.Delay > 0 {
		timer := time.NewTimer(p.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return content.Block{}, ctx.Err()
		case <-timer.C:
		}
	}
	return p.Run(ctx), nil
}

// writeBlocks prints blocks styled with styles, or plain when styles is nil.
func writeBlocks(w io.Writer, styles *theme.Styles, blocks []content.Block) {
	for _, b := range blocks {
		if styles == nil {
			fmt.Fprintln(w, content.PlainText(b))
			continue
		}
		rows := make([]string, 0, len(b.Lines)+1)
		if b.Title != "" {
			rows = append(rows, styles.Tone(content.ToneHeading).Render(b.Title))
		}
		for _, line := range b.Lines {
			if line.Bar != nil {
				rows = append(rows, styles.Tone(content.ToneSuccess).Render(line.Plain()))
				continue
			}
			rows = append(rows, styles.Line(line))
		}
		text := strings.Join(rows, "\n")
		if b.Framed {
			text = styles.Frame.Render(text)
		}
		fmt.Fprintln(w, text)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
