package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tablewise/posterm/internal/models"
)

// stdinPrompter captures typed drafts field by field. Numeric input is
// parsed here and re-asked on failure, so a draft handed to the controller
// is always well formed. When editing, an empty answer keeps the current
// value; entering "cancel" at any field abandons the form.
type stdinPrompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newStdinPrompter(in io.Reader, out io.Writer) *stdinPrompter {
	return &stdinPrompter{in: bufio.NewScanner(in), out: out}
}

var errCancelled = fmt.Errorf("form cancelled")

func (p *stdinPrompter) OrderDraft(existing *models.Order) (models.OrderDraft, bool) {
	var draft models.OrderDraft
	if existing != nil {
		draft = models.DraftFrom(*existing)
	}

	table, err := p.askString("Table number", draft.TableNumber)
	if err != nil {
		return models.OrderDraft{}, false
	}
	server, err := p.askString("Server name", draft.ServerName)
	if err != nil {
		return models.OrderDraft{}, false
	}
	guests, err := p.askInt("Guest count", existing != nil, draft.GuestCount)
	if err != nil {
		return models.OrderDraft{}, false
	}
	notes, err := p.askOptional("Notes", draft.Notes)
	if err != nil {
		return models.OrderDraft{}, false
	}

	draft.TableNumber = table
	draft.ServerName = server
	draft.GuestCount = guests
	draft.Notes = notes
	return draft, true
}

func (p *stdinPrompter) ItemDraft(existing *models.Item) (models.ItemDraft, bool) {
	var draft models.ItemDraft
	editing := existing != nil
	if editing {
		draft = models.ItemDraftFrom(*existing)
	}

	if !editing {
		orderID, err := p.askInt("Order id", false, 0)
		if err != nil {
			return models.ItemDraft{}, false
		}
		draft.OrderID = int64(orderID)
	}
	name, err := p.askString("Item name", draft.ItemName)
	if err != nil {
		return models.ItemDraft{}, false
	}
	qty, err := p.askInt("Quantity", editing, draft.ItemQuantity)
	if err != nil {
		return models.ItemDraft{}, false
	}
	price, err := p.askFloat("Item price", editing, draft.ItemPrice)
	if err != nil {
		return models.ItemDraft{}, false
	}
	sides, err := p.askOptional("Sides", draft.Sides)
	if err != nil {
		return models.ItemDraft{}, false
	}
	var sidePrice *float64
	if sides != nil {
		v, err := p.askFloat("Side price", draft.SidePrice != nil, deref(draft.SidePrice))
		if err != nil {
			return models.ItemDraft{}, false
		}
		sidePrice = &v
	}
	modifiers, err := p.askOptional("Modifiers", draft.Modifiers)
	if err != nil {
		return models.ItemDraft{}, false
	}

	draft.ItemName = name
	draft.ItemQuantity = qty
	draft.ItemPrice = price
	draft.Sides = sides
	draft.SidePrice = sidePrice
	draft.Modifiers = modifiers
	return draft, true
}

func (p *stdinPrompter) Confirm(question string) bool {
	for {
		line, ok := p.readLine(question + " [y/N]: ")
		if !ok {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		case "", "n", "no":
			return false
		}
	}
}

func (p *stdinPrompter) askString(label, current string) (string, error) {
	for {
		line, ok := p.readLine(promptLabel(label, current))
		if !ok {
			return "", errCancelled
		}
		line = strings.TrimSpace(line)
		if line == "cancel" {
			return "", errCancelled
		}
		if line == "" {
			if current != "" {
				return current, nil
			}
			fmt.Fprintln(p.out, "A value is required.")
			continue
		}
		return line, nil
	}
}

func (p *stdinPrompter) askInt(label string, hasCurrent bool, current int) (int, error) {
	for {
		shown := ""
		if hasCurrent {
			shown = strconv.Itoa(current)
		}
		line, ok := p.readLine(promptLabel(label, shown))
		if !ok {
			return 0, errCancelled
		}
		line = strings.TrimSpace(line)
		if line == "cancel" {
			return 0, errCancelled
		}
		if line == "" && hasCurrent {
			return current, nil
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 0 {
			fmt.Fprintln(p.out, "Please enter a whole number.")
			continue
		}
		return n, nil
	}
}

func (p *stdinPrompter) askFloat(label string, hasCurrent bool, current float64) (float64, error) {
	for {
		shown := ""
		if hasCurrent {
			shown = strconv.FormatFloat(current, 'f', -1, 64)
		}
		line, ok := p.readLine(promptLabel(label, shown))
		if !ok {
			return 0, errCancelled
		}
		line = strings.TrimSpace(line)
		if line == "cancel" {
			return 0, errCancelled
		}
		if line == "" && hasCurrent {
			return current, nil
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil || v < 0 {
			fmt.Fprintln(p.out, "Please enter a non-negative number.")
			continue
		}
		return v, nil
	}
}

// askOptional returns nil for an empty answer, "-" clears a current value.
func (p *stdinPrompter) askOptional(label string, current *string) (*string, error) {
	shown := ""
	if current != nil {
		shown = *current
	}
	line, ok := p.readLine(promptLabel(label+" (optional)", shown))
	if !ok {
		return nil, errCancelled
	}
	line = strings.TrimSpace(line)
	switch line {
	case "cancel":
		return nil, errCancelled
	case "":
		return current, nil
	case "-":
		return nil, nil
	default:
		return &line, nil
	}
}

func (p *stdinPrompter) readLine(prompt string) (string, bool) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		fmt.Fprintln(p.out)
		return "", false
	}
	return p.in.Text(), true
}

func promptLabel(label, current string) string {
	if current != "" {
		return fmt.Sprintf("%s [%s]: ", label, current)
	}
	return label + ": "
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
