package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ahurst/ahcalc"
)

const usage = `Type any arithmetic sequence to calculate its value.
Use +, -, *, /, !, ^, **, (), or [].
Parentheses may be arbitrarily nested.
Whitespace and commas are fine and will be discarded.
Type "exit" or press Control-C to leave. "help" repeats this message.`

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func main() {
	log.SetFlags(0)
	var (
		inname string
		echo   bool
		quiet  bool
	)
	flag.StringVar(&inname, "in", "", "input file of expressions, one per line (default interactive stdin)")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.BoolVar(&quiet, "q", false, "suppress the usage banner")
	flag.Parse()

	// Expressions on the command line evaluate once each; no prompt, and the
	// exit status reflects failures.
	if flag.NArg() > 0 {
		code := 0
		for _, arg := range flag.Args() {
			if err := calc(arg, echo); err != nil {
				fmt.Println(errorStyle.Render(err.Error()))
				code = 1
			}
		}
		os.Exit(code)
	}

	if inname != "" && inname != "-" {
		f, err := os.Open(inname)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		code := 0
		if err := feed(f, echo, &code); err != nil {
			log.Fatal(err)
		}
		os.Exit(code)
	}

	if !quiet {
		fmt.Println(usage)
	}
	repl(echo)
}

// repl reads expressions interactively until exit or EOF. Errors print and
// the loop continues.
func repl(echo bool) {
	scan := bufio.NewScanner(os.Stdin)
	prompt := promptStyle.Render("ahcalc:")
	for {
		fmt.Print(prompt, " ")
		if !scan.Scan() {
			if err := scan.Err(); err != nil {
				log.Fatal(err)
			}
			fmt.Println()
			return
		}
		switch line := strings.TrimSpace(scan.Text()); line {
		case "":
			continue
		case "q", "quit", "exit":
			return
		case "h", "help", "?":
			fmt.Println(usage)
		default:
			if err := calc(line, echo); err != nil {
				fmt.Println(errorStyle.Render(err.Error()))
			}
		}
	}
}

// feed evaluates expressions line by line from a file, skipping blank lines.
func feed(r io.Reader, echo bool, code *int) error {
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" {
			continue
		}
		if err := calc(line, echo); err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
			*code = 1
		}
	}
	return scan.Err()
}

// calc evaluates one expression and prints its result.
func calc(src string, echo bool) error {
	e, err := ahcalc.Parse(src)
	if err != nil {
		return err
	}
	if echo {
		fmt.Printf("%v : ", e)
	}
	r, err := e.Eval()
	if err != nil {
		return err
	}
	fmt.Println(display(r))
	return nil
}

// display renders a result as an integer when it has no fractional part and
// is small enough for every integer to be exact, otherwise as a float.
func display(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
