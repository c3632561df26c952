// Package console drives the view controller from an interactive terminal
// session. It owns the command loop plus the terminal implementations of the
// renderer and prompter ports.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tablewise/posterm/internal/api"
	"github.com/tablewise/posterm/internal/controller"
	"github.com/tablewise/posterm/internal/format"
	"github.com/tablewise/posterm/internal/models"
	"github.com/tablewise/posterm/internal/store"
)

type Session struct {
	ctrl *controller.Controller
	in   *bufio.Scanner
	out  io.Writer
}

func New(cfg *models.Config) *Session {
	client := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)
	f := format.NewFormatter(cfg.CurrencySymbol)
	renderer := newTerminalRenderer(os.Stdout)

	// the session and the prompter must share one scanner; two buffered
	// readers over the same stdin would steal each other's input
	scanner := bufio.NewScanner(os.Stdin)
	prompter := &stdinPrompter{in: scanner, out: os.Stdout}
	ctrl := controller.New(client, store.New(), renderer, prompter, f)
	return &Session{
		ctrl: ctrl,
		in:   scanner,
		out:  os.Stdout,
	}
}

// Run reads commands until quit or EOF. Commands execute one at a time; a
// new command is not read until the previous action fully resolved.
func (s *Session) Run(ctx context.Context) error {
	s.ctrl.ShowLanding()
	s.printHelp()

	for {
		fmt.Fprint(s.out, "> ")
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}
		fields := strings.Fields(s.in.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "orders":
			s.ctrl.ShowOrders(ctx)
		case "all-items":
			s.ctrl.ShowAllItems(ctx)
		case "items":
			if id, ok := s.parseID(args, "usage: items <order-id>"); ok {
				s.ctrl.ShowOrderItems(ctx, id)
			}
		case "add-order":
			s.ctrl.AddOrder(ctx)
		case "add-item":
			s.ctrl.AddItem(ctx)
		case "edit-order":
			if id, ok := s.parseID(args, "usage: edit-order <order-id>"); ok {
				s.ctrl.EditOrder(ctx, id)
			}
		case "delete-order":
			if id, ok := s.parseID(args, "usage: delete-order <order-id>"); ok {
				s.ctrl.DeleteOrder(ctx, id)
			}
		case "edit-item":
			if id, ok := s.parseID(args, "usage: edit-item <item-id>"); ok {
				s.ctrl.EditItem(ctx, id)
			}
		case "delete-item":
			if id, ok := s.parseID(args, "usage: delete-item <item-id>"); ok {
				s.ctrl.DeleteItem(ctx, id)
			}
		case "home":
			s.ctrl.ShowLanding()
		case "help":
			s.printHelp()
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(s.out, "Unknown command %q, type 'help'.\n", cmd)
		}
	}
}

func (s *Session) parseID(args []string, usage string) (int64, bool) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(s.out, usage)
		return 0, false
	}
	return id, true
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.out, `Commands:
  orders                 load and show all orders
  items <order-id>       show the items of one order
  all-items              load and show every item
  add-order              create a new order
  add-item               create a new item
  edit-order <order-id>  edit an order
  delete-order <order-id>
  edit-item <item-id>    edit an item
  delete-item <item-id>
  home                   back to the landing screen
  quit`)
}
