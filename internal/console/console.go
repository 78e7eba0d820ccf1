package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"lucky_dice/internal/model"
	"lucky_dice/internal/service"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// GameFactory открывает игру для только что введённого игрока
type GameFactory func(ctx context.Context, player *model.Player) (service.GameService, error)

// errQuit конец сессии: пункт меню "Salir" или EOF
var errQuit = errors.New("quit")

// State всё состояние консольной сессии
type State struct {
	in   *bufio.Scanner
	out  io.Writer
	game service.GameService
}

// command один пункт меню
type command struct {
	title string
	run   func(ctx context.Context, st *State) error
}

type Console struct {
	in       io.Reader
	out      io.Writer
	newGame  GameFactory
	log      *zap.Logger
	commands map[string]command
	order    []string
}

func New(in io.Reader, out io.Writer, newGame GameFactory, log *zap.Logger) *Console {
	if log == nil {
		log = zap.NewNop()
	}
	return &Console{
		in:      in,
		out:     out,
		newGame: newGame,
		log:     log,
		commands: map[string]command{
			"1": {title: "Realizar apuesta", run: placeBet},
			"2": {title: "Mostrar historial", run: showHistory},
			"3": {title: "Salir", run: quit},
			"4": {title: "Estadísticas", run: showStats},
		},
		order: []string{"1", "2", "3", "4"},
	}
}

// Run читает игрока и крутит меню до выхода или EOF
func (c *Console) Run(ctx context.Context) error {
	st := &State{
		in:  bufio.NewScanner(c.in),
		out: c.out,
	}

	player, err := readPlayer(st)
	if errors.Is(err, errQuit) {
		return nil
	}
	if err != nil {
		return err
	}

	st.game, err = c.newGame(ctx, player)
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	c.log.Debug("console session started", zap.String("session_id", st.game.SessionID()))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := c.step(ctx, st); err != nil {
			if errors.Is(err, errQuit) {
				st.println("Gracias por jugar. ¡Hasta luego!")
				return nil
			}
			return err
		}
	}
}

// step один проход меню: вывод, выбор, выполнение команды
func (c *Console) step(ctx context.Context, st *State) error {
	c.printMenu(st)
	choice, err := st.prompt(fmt.Sprintf("Elige una opción (%s): ", strings.Join(c.order, "/")))
	if err != nil {
		return err
	}

	cmd, ok := c.commands[choice]
	if !ok {
		st.println("Opción no válida. Por favor, elige nuevamente.")
		return nil
	}
	return cmd.run(ctx, st)
}

func (c *Console) printMenu(st *State) {
	st.println("")
	st.println("Opciones:")
	for _, key := range c.order {
		st.printf("%s. %s\n", key, c.commands[key].title)
	}
}

// prompt печатает вопрос и читает одну строку без пробелов по краям
func (st *State) prompt(question string) (string, error) {
	st.printf("%s", question)
	if !st.in.Scan() {
		if err := st.in.Err(); err != nil {
			return "", err
		}
		return "", errQuit
	}
	return strings.TrimSpace(st.in.Text()), nil
}

func (st *State) println(s string) {
	fmt.Fprintln(st.out, s)
}

func (st *State) printf(format string, args ...any) {
	fmt.Fprintf(st.out, format, args...)
}

func readPlayer(st *State) (*model.Player, error) {
	name, err := st.prompt("Ingresa el nombre del jugador: ")
	if err != nil {
		return nil, err
	}

	for {
		raw, err := st.prompt("Ingresa el saldo inicial del jugador: ")
		if err != nil {
			return nil, err
		}
		balance, err := decimal.NewFromString(raw)
		if err != nil || balance.IsNegative() {
			st.println("Saldo no válido. Ingresa un número no negativo.")
			continue
		}
		return model.NewPlayer(name, balance), nil
	}
}

func quit(context.Context, *State) error {
	return errQuit
}
