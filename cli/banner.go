package cli

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"unicode"

	"github.com/dmcfalls/CSet/lazy"
	"github.com/dmcfalls/CSet/should"
)

const (
	boxTopLeft     = "╒"
	boxBottomLeft  = "└"
	boxTopRight    = "╕"
	boxBottomRight = "┘"
	boxSide        = "│"
	boxTop         = "═"
	boxBottom      = "─"
	dividerLeft    = "┠"
	dividerMiddle  = "─"
	dividerRight   = "┨"
	ellipsis       = "…"
)

const (
	bannerPadding   = 2
	dividerPadding  = 2
	truncateReserve = 1
	halfDivisor     = 2
)

// DefaultTerminalWidth is assumed when the real width cannot be determined.
const DefaultTerminalWidth = 80

// Alignment positions banner text within the box.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Banners can be turned off wholesale, e.g. when piping demo output.
var suppressBanner = lazy.New[bool](func() bool {
	val, ok := os.LookupEnv("CSET_NO_BANNER")
	if !ok {
		return false
	}

	suppress, err := strconv.ParseBool(val)
	if err != nil {
		return false
	}

	return suppress
})

// Banner draws s inside a box of the given width, truncating long lines
// with an ellipsis. With banners suppressed it returns the text followed
// by a newline.
func Banner(s string, width int, alignment Alignment) string {
	if suppressBanner.Get() {
		return s + "\n"
	}

	lines := splitLines(s)
	if len(lines) == 0 || width <= 0 {
		return ""
	}

	if alignment < AlignLeft || alignment > AlignRight {
		return ""
	}

	top := fmt.Sprintf("%s%s%s", boxTopLeft, strings.Repeat(boxTop, width-bannerPadding), boxTopRight)
	parts := []string{top}

	for _, l := range lines {
		line := pad(l, width-bannerPadding, alignment)
		parts = append(parts, fmt.Sprintf("%s%s%s", boxSide, line, boxSide))
	}

	bottom := fmt.Sprintf("%s%s%s", boxBottomLeft, strings.Repeat(boxBottom, width-bannerPadding), boxBottomRight)
	parts = append(parts, bottom)

	return strings.Join(parts, "\n")
}

// BannerAutoWidth draws s in a box as wide as the terminal, falling back
// to DefaultTerminalWidth when the size cannot be determined.
func BannerAutoWidth(s string, a Alignment) string {
	if suppressBanner.Get() {
		return s + "\n"
	}

	_, w, err := TerminalDimensions()
	if err != nil || w == 0 {
		w = DefaultTerminalWidth
	}

	return Banner(s, int(w), a) //nolint:gosec // Terminal width is bounded by screen size, no overflow risk
}

// Divider draws a horizontal rule of the given width.
func Divider(width int) string {
	return fmt.Sprintf("%s%s%s\n", dividerLeft, strings.Repeat(dividerMiddle, width-dividerPadding), dividerRight)
}

// DividerAutoWidth draws a horizontal rule as wide as the terminal.
func DividerAutoWidth() string {
	_, w, err := TerminalDimensions()
	if err != nil || w == 0 {
		w = DefaultTerminalWidth
	}

	return Divider(int(w)) //nolint:gosec // Terminal width is bounded by screen size, no overflow risk
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	return strings.Split(s, "\n")
}

// pad fits text into width graphic columns, truncating with an ellipsis
// when it does not fit. An unknown alignment yields an empty string.
func pad(text string, width int, alignment Alignment) string {
	length := countGraphic(text)
	if length > width {
		text, length = truncateGraphic(text, width-truncateReserve)
		text += ellipsis
	}

	diff := width - length

	switch alignment {
	case AlignLeft:
		return text + strings.Repeat(" ", diff)
	case AlignRight:
		return strings.Repeat(" ", diff) + text
	case AlignCenter:
		left := diff / halfDivisor

		return strings.Repeat(" ", left) + text + strings.Repeat(" ", diff-left)
	default:
		return ""
	}
}

func countGraphic(s string) int {
	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			count++
		}
	}

	return count
}

func truncateGraphic(s string, n int) (string, int) {
	out := ""
	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			count++
		}

		if count >= n {
			break
		}

		out += string(r)
	}

	return out, count
}

// TerminalDimensions returns (rows, cols, err) for the controlling terminal.
func TerminalDimensions() (uint, uint, error) {
	f, err := os.Open("/dev/tty")
	if err != nil {
		return 0, 0, err
	}

	defer should.Close(f, "closing /dev/tty")

	// Outputs: "rows columns"
	cmd := exec.Command("stty", "size")
	cmd.Stdin = f

	out, err := cmd.Output()
	if err != nil {
		return 0, 0, err
	}

	parts := strings.Fields(string(out))
	if len(parts) != 2 { //nolint:mnd // stty size prints exactly two fields
		return 0, 0, fmt.Errorf("unexpected stty output: %q", out)
	}

	rows, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, err
	}

	cols, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, err
	}

	return uint(rows), uint(cols), nil //nolint:gosec // Terminal dimensions are small positive integers, no overflow risk
}
