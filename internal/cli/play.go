package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/sosgame/internal/dependencies/random"
	"github.com/mcoot/sosgame/internal/model"
	"github.com/mcoot/sosgame/internal/services/bot"
	"github.com/mcoot/sosgame/internal/services/game"
)

const playHelp = `Enter a move as: <row> <col> <letter>   e.g. "1 2 S"
Other commands: hint, help, quit`

type playOptions struct {
	size     int
	mode     string
	starting string
	red      string
	blue     string
	seed     uint64
	seeded   bool
}

func newPlayCmd() *cobra.Command {
	var opts playOptions

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal",
		Long: `Play SOS in the terminal without a server.

Either seat can be a human or the easy computer opponent. With --seed the
computer's choices are reproducible.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.seeded = cmd.Flags().Changed("seed")
			return runPlay(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.size, "size", "s", 3, "Board size (3-8)")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "simple", "Game mode: simple, general")
	cmd.Flags().StringVar(&opts.starting, "starting", "", "Starting player: red, blue (default red)")
	cmd.Flags().StringVar(&opts.red, "red", "human", "Red seat: human, computer")
	cmd.Flags().StringVar(&opts.blue, "blue", "computer", "Blue seat: human, computer")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for the computer opponent")

	return cmd
}

func runPlay(in io.Reader, out io.Writer, opts playOptions) error {
	var starting model.Player
	if opts.starting != "" {
		p, err := model.ParsePlayer(opts.starting)
		if err != nil {
			return err
		}
		starting = p
	}

	seats := make(map[model.Player]model.SeatKind, 2)
	for p, s := range map[model.Player]string{model.PlayerRed: opts.red, model.PlayerBlue: opts.blue} {
		kind, err := model.ParseSeatKind(s)
		if err != nil {
			return err
		}
		seats[p] = kind
	}

	engine, err := game.New(opts.size, opts.mode, starting)
	if err != nil {
		return err
	}

	var rnd random.Random = random.New()
	if opts.seeded {
		rnd = random.NewSeeded(opts.seed)
	}
	strategy := bot.NewEasyStrategy(rnd)

	scanner := bufio.NewScanner(in)
	fmt.Fprintf(out, "SOS %dx%d, %s mode\n%s\n", engine.Size(), engine.Size(), engine.Mode(), playHelp)

	for !engine.IsOver() {
		fmt.Fprintln(out)
		printBoard(out, boardCells(engine.Board()))

		player := engine.CurrentPlayer()
		if seats[player] == model.SeatComputer {
			move, err := strategy.ChooseMove(engine)
			if err != nil {
				return err
			}
			lines, err := placeAndCount(engine, move.Row, move.Col, move.Letter.String())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s (computer) plays %s at row %d, col %d%s\n", player, move.Letter, move.Row, move.Col, completed(lines))
			continue
		}

		fmt.Fprintf(out, "%s [red %d, blue %d]> ", player, engine.RedScore(), engine.BlueScore())
		if !scanner.Scan() {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Game abandoned")
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "quit", "exit":
			fmt.Fprintln(out, "Game abandoned")
			return nil
		case "help":
			fmt.Fprintln(out, playHelp)
		case "hint":
			move, err := strategy.ChooseMove(engine)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Hint: %s at row %d, col %d\n", move.Letter, move.Row, move.Col)
		default:
			row, col, letter, err := parseMoveFields(fields)
			if err != nil {
				fmt.Fprintf(out, "Error: %s\n", err)
				continue
			}
			lines, err := placeAndCount(engine, row, col, letter)
			if err != nil {
				fmt.Fprintf(out, "Error: %s\n", err)
				continue
			}
			if lines > 0 {
				fmt.Fprintf(out, "%s%s\n", player, completed(lines))
			}
		}
	}

	fmt.Fprintln(out)
	printBoard(out, boardCells(engine.Board()))
	fmt.Fprintf(out, "Final score: red %d, blue %d\n", engine.RedScore(), engine.BlueScore())
	if winner := engine.Winner(); winner != model.PlayerNone {
		fmt.Fprintf(out, "Winner: %s\n", winner)
	} else {
		fmt.Fprintln(out, "Result: draw")
	}
	return nil
}

// placeAndCount plays a move and returns how many lines it completed
func placeAndCount(engine *game.Engine, row, col int, letter string) (int, error) {
	before := len(engine.CompletedLines())
	if err := engine.PlaceLetter(row, col, letter); err != nil {
		return 0, err
	}
	return len(engine.CompletedLines()) - before, nil
}

func parseMoveFields(fields []string) (int, int, string, error) {
	if len(fields) != 3 {
		return 0, 0, "", fmt.Errorf("expected <row> <col> <letter>")
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, "", fmt.Errorf("invalid row %q", fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, "", fmt.Errorf("invalid col %q", fields[1])
	}
	return row, col, fields[2], nil
}

func completed(lines int) string {
	if lines == 0 {
		return ""
	}
	return " completing " + plural(lines, "SOS", "SOSes")
}

func boardCells(b *model.Board) [][]string {
	cells := make([][]string, b.Size)
	for row := range cells {
		cells[row] = make([]string, b.Size)
		for col := range cells[row] {
			cells[row][col] = b.Cells[row][col].String()
		}
	}
	return cells
}
