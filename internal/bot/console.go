package bot

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
)

// consoleStyles contains styling for the interactive prompt
type consoleStyles struct {
	prompt lipgloss.Style
	cards  lipgloss.Style
	value  lipgloss.Style
	err    lipgloss.Style
}

// Console is the interactive human agent: it shows the hand and the dealer's
// upcard, lists the legal actions by number, and re-prompts until the input
// is a valid action number. It never propagates an input error.
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	styles consoleStyles
}

// NewConsole creates a console agent reading from in and writing to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
		styles: consoleStyles{
			prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
			cards:  lipgloss.NewStyle().Foreground(lipgloss.Color("#74B9FF")),
			value:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")),
			err:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		},
	}
}

// Decide prompts until the human picks one of the legal actions.
func (c *Console) Decide(hand []deck.Card, legal []game.Action, dealerUp []deck.Card) game.Action {
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "  Your cards: %s %s\n",
		c.styles.cards.Render(formatCards(hand)),
		c.styles.value.Render(fmt.Sprintf("(%.1f points)", game.HandValue(hand))))
	fmt.Fprintf(c.out, "  Dealer's visible card: %s %s\n",
		c.styles.cards.Render(formatCards(dealerUp)),
		c.styles.value.Render(fmt.Sprintf("(%.1f points)", game.HandValue(dealerUp))))

	for {
		fmt.Fprintln(c.out, c.styles.prompt.Render("  Which action do you want to take?"))
		for i, action := range legal {
			fmt.Fprintf(c.out, "  %d %s\n", i+1, action)
		}

		if !c.in.Scan() {
			// Input closed out from under us: stand rather than crash.
			return game.Stand
		}
		choice, err := strconv.Atoi(strings.TrimSpace(c.in.Text()))
		if err != nil || choice < 1 || choice > len(legal) {
			fmt.Fprintln(c.out, c.styles.err.Render("  >>> Please enter a valid action number <<<"))
			continue
		}
		return legal[choice-1]
	}
}

// Reset is a no-op
func (c *Console) Reset() {}

func formatCards(cards []deck.Card) string {
	names := make([]string, len(cards))
	for i, card := range cards {
		names[i] = card.String()
	}
	return strings.Join(names, ", ")
}
