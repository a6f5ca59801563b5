package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
	"github.com/philipparndt/gethexy/pkg/config"
	"github.com/philipparndt/gethexy/pkg/geometry"
	"github.com/philipparndt/gethexy/pkg/perimeter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	traceJSON      bool
	traceStartEdge int
	traceStartT    float64
)

var traceCmd = &cobra.Command{
	Use:   "trace [file|-]",
	Short: "Replay drag events through the perimeter tracker",
	Long: `Read drag events, one JSON object per line, and print the tracked
position and progress after each one. Coordinates are in view box units.

  {"type":"start"}
  {"type":"move","x":40,"y":80}
  {"type":"end"}

"cancel" abandons the current drag. Reads stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		in := cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open trace: %w", err)
			}
			defer f.Close()
			in = f
		}

		start := perimeter.Position{Edge: traceStartEdge, T: traceStartT}
		return runTrace(cfg, start, in, cmd.OutOrStdout(), traceJSON)
	},
}

func init() {
	traceCmd.Flags().BoolVar(&traceJSON, "json", false, "Print results as JSON lines")
	traceCmd.Flags().IntVar(&traceStartEdge, "start-edge", 0, "Edge the disc rests on initially")
	traceCmd.Flags().Float64Var(&traceStartT, "start-t", 0, "Parameter along the start edge")
	rootCmd.AddCommand(traceCmd)
}

// traceEvent is one line of trace input. Coordinates are pointers so a move
// without them can be told apart from a move to the origin.
type traceEvent struct {
	Type string   `json:"type"`
	X    *float64 `json:"x"`
	Y    *float64 `json:"y"`
}

// traceResult is one line of trace output
type traceResult struct {
	Type     string  `json:"type"`
	Edge     int     `json:"edge"`
	T        float64 `json:"t"`
	Progress float64 `json:"progress"`
	Changed  bool    `json:"changed"`
	Complete bool    `json:"complete,omitempty"` // Only on the end that completed the boundary
}

func runTrace(cfg *config.Config, start perimeter.Position, in io.Reader, out io.Writer, asJSON bool) error {
	opts := append(cfg.TrackerOptions(),
		perimeter.WithStart(start),
		perimeter.WithOnComplete(func(p perimeter.Position) {
			log.Info().Int("edge", p.Edge).Float64("t", p.T).Msg("trace: boundary completed")
		}),
	)

	tracker, err := perimeter.New(cfg.HexagonPoints(), opts...)
	if err != nil {
		return err
	}

	var session *perimeter.Session
	dec := sonic.ConfigDefault.NewDecoder(in)
	for line := 1; ; line++ {
		var ev traceEvent
		if err := dec.Decode(&ev); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("event %d: %w", line, err)
		}

		res := traceResult{Type: ev.Type}
		var pos perimeter.Position

		switch ev.Type {
		case "start":
			session = tracker.BeginDrag()
			pos = session.Position()
		case "move":
			if ev.X == nil || ev.Y == nil {
				log.Debug().Int("event", line).Msg("trace: move without coordinates ignored")
				pos = tracker.Resting()
				if session.Active() {
					pos = session.Position()
				}
				break
			}
			pos, res.Changed = tracker.UpdateDrag(session, geometry.NewVector2(*ev.X, *ev.Y))
		case "end":
			wasComplete := tracker.Completed()
			pos = tracker.EndDrag(session)
			res.Changed = true
			res.Complete = !wasComplete && tracker.Completed()
			session = nil
		case "cancel":
			tracker.CancelDrag(session)
			session = nil
			pos = tracker.Resting()
		default:
			return fmt.Errorf("event %d: unknown type %q", line, ev.Type)
		}

		res.Edge, res.T = pos.Edge, pos.T
		res.Progress = tracker.ProgressPercent(pos)
		if err := writeTraceResult(out, res, asJSON); err != nil {
			return err
		}
	}
}

func writeTraceResult(out io.Writer, res traceResult, asJSON bool) error {
	if asJSON {
		data, err := sonic.Marshal(res)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s\n", data)
		return err
	}

	line := fmt.Sprintf("%-6s edge=%d t=%.4f progress=%6.2f%%", res.Type, res.Edge, res.T, res.Progress)
	if res.Type == "move" && !res.Changed {
		line += " (ignored)"
	}
	if res.Complete {
		line += " complete"
	}
	_, err := fmt.Fprintln(out, line)
	return err
}
