package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"neoblock/internal/client"
	"neoblock/internal/config"
	"neoblock/internal/game"
	"neoblock/internal/room"
)

var presetFlag = &cli.StringFlag{Name: "preset", Value: "classic", Usage: "classic, blitz or sudden-death"}

func main() {
	cfg := config.Load()
	cfg.ConfigureLogging()

	app := &cli.App{
		Name:  "neoblock",
		Usage: "two-player wall-and-pawn race in the terminal",
		Commands: []*cli.Command{
			{
				Name:  "local",
				Usage: "hot-seat match on this terminal",
				Flags: []cli.Flag{presetFlag},
				Action: func(c *cli.Context) error {
					p, err := preset(c.String("preset"))
					if err != nil {
						return err
					}
					e := game.NewEngine()
					if _, err := e.InitSession(p.BoardSize, p.MaxWalls); err != nil {
						return err
					}
					out := &screen{w: os.Stdout}
					ctl := client.NewController(e, client.WithAdvisory(client.NewAdvisory(cfg.AdvisoryTTL)), client.OnChange(out.draw))
					out.draw(ctl.Session())
					return play(os.Stdin, out, ctl)
				},
			},
			{
				Name:  "online",
				Usage: "create or join a room on a server",
				Flags: []cli.Flag{
					presetFlag,
					&cli.StringFlag{Name: "server", Value: "http://localhost:8080"},
					&cli.StringFlag{Name: "join", Usage: "room code to join instead of creating one"},
					&cli.StringFlag{Name: "name", Value: os.Getenv("USER")},
				},
				Action: func(c *cli.Context) error {
					return online(c.Context, cfg, c.String("server"), c.String("join"), c.String("name"), c.String("preset"))
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func preset(name string) (config.Preset, error) {
	p, ok := config.PresetByName(name)
	if !ok {
		return p, fmt.Errorf("unknown preset %q", name)
	}
	return p, nil
}

func online(ctx context.Context, cfg config.Config, server, code, name, presetName string) error {
	lobby := client.NewLobby(server)

	var (
		seat client.Seat
		err  error
	)
	if code == "" {
		seat, err = lobby.Create(ctx, name, presetName)
	} else {
		seat, err = lobby.Join(ctx, code, name, "")
	}
	if err != nil {
		return err
	}

	out := &screen{w: os.Stdout}
	e := game.NewEngine(game.WithAuthorizer(game.SeatAuthorizer{}), game.WithIdentity(seat.PlayerID))
	ctl := client.NewController(e,
		client.WithTimeout(cfg.SyncTimeout),
		client.WithAdvisory(client.NewAdvisory(cfg.AdvisoryTTL)),
		client.OnChange(out.draw),
	)
	if err := ctl.Replace(seat.Room.State); err != nil {
		return err
	}

	remote, err := client.DialRoom(ctx, server, seat.RoomCode, seat.PlayerID, func(s room.Snapshot) {
		if err := ctl.Replace(s.State); err != nil {
			log.WithError(err).Warn("dropping bad snapshot")
		}
	})
	if err != nil {
		return err
	}
	defer remote.Close()
	ctl.SetRemote(remote)

	fmt.Fprintf(out.w, "room %s, you are player %d\n", seat.RoomCode, ctl.Session().PlayerIndex(seat.PlayerID)+1)
	return play(os.Stdin, out, ctl)
}

const help = "commands: m <row> <col> move, w <row> <col> wall, t toggle wall, q quit"

// play reads commands until q or EOF.
func play(in io.Reader, out *screen, ctl *client.Controller) error {
	out.println(help)
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		f := strings.Fields(sc.Text())
		if len(f) == 0 {
			continue
		}
		switch f[0] {
		case "q":
			return nil
		case "t":
			out.println("wall orientation: " + ctl.ToggleOrientation().String())
			continue
		case "m", "w":
		default:
			out.println(help)
			continue
		}

		if len(f) != 3 {
			out.println(help)
			continue
		}
		r, errR := strconv.Atoi(f[1])
		c, errC := strconv.Atoi(f[2])
		if errR != nil || errC != nil {
			out.println("row and column must be numbers")
			continue
		}

		var err error
		if f[0] == "m" {
			_, err = ctl.Move(r, c)
		} else {
			_, err = ctl.PlaceWall(r, c)
		}
		if msg := ctl.Advisory(); err != nil || msg != "" {
			out.println(msg)
		}
		if ctl.Session().Phase() == game.PhaseTerminal {
			return nil
		}
	}
	return sc.Err()
}

// screen serialises output from the input loop and the sync goroutine.
type screen struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *screen) println(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.w, line)
}

func (s *screen) draw(sess game.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	printBoard(s.w, sess)
}

// printBoard draws cells on even rows and columns and walls in the gaps
// between them.
func printBoard(w io.Writer, s game.Session) {
	n := s.BoardSize
	if n == 0 {
		return
	}
	size := 2*n - 1
	grid := make([][]byte, size)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", size))
		if i%2 == 0 {
			for j := 0; j < size; j += 2 {
				grid[i][j] = '.'
			}
		}
	}
	for _, wl := range s.Walls {
		if !game.WallInBounds(wl, n) {
			continue
		}
		if wl.Orientation == game.Horizontal {
			for j := 2 * wl.Col; j <= 2*wl.Col+2; j++ {
				grid[2*wl.Row+1][j] = '='
			}
		} else {
			for i := 2 * wl.Row; i <= 2*wl.Row+2; i++ {
				grid[i][2*wl.Col+1] = '|'
			}
		}
	}
	for i, p := range s.Players {
		grid[2*p.Row][2*p.Col] = byte('1' + i)
	}

	var b strings.Builder
	b.WriteString("    ")
	for c := 0; c < n; c++ {
		fmt.Fprintf(&b, "%-2d", c%100)
	}
	b.WriteByte('\n')
	for i, line := range grid {
		if i%2 == 0 {
			fmt.Fprintf(&b, "%3d ", i/2)
		} else {
			b.WriteString("    ")
		}
		b.Write(line)
		b.WriteByte('\n')
	}

	switch s.Phase() {
	case game.PhaseTerminal:
		fmt.Fprintf(&b, "player %d wins\n", *s.Winner+1)
	case game.PhasePlaying:
		cur := s.Current()
		fmt.Fprintf(&b, "player %d to move, %d walls left", s.CurrentPlayer+1, cur.WallsRemaining)
		if s.TurnHasPlacedWall {
			b.WriteString(", wall placed")
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(w, b.String())
}
