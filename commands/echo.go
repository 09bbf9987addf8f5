package commands

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cascade-sh/cascade/core/shell"
)

var (
	unescapeOctal   = regexp.MustCompile(`\\0[0-8][0-8]?[0-8]?`)
	unescapeHex     = regexp.MustCompile(`\\x[0-9a-fA-F][0-9a-fA-F]?`)
	unescapeReplace = strings.NewReplacer(
		`\n`, "\n", // newline
		`\r`, "\r", // carriage return
		`\t`, "\t", // horizontal tab
		`\\`, `\`, // backslash literal
		`\b`, "\b", // backspace
		`\a`, "\a", // alert
		`\f`, "\f", // form feed
		`\v`, "\v", // vertical tab
	)
)

func unescape(s string) string {
	s = unescapeReplace.Replace(s)
	s = unescapeOctal.ReplaceAllStringFunc(s, func(arg string) string {
		out, err := strconv.ParseInt(arg[2:], 8, 8)
		if err != nil {
			return arg
		}
		return string(rune(out))
	})
	s = unescapeHex.ReplaceAllStringFunc(s, func(arg string) string {
		out, err := strconv.ParseInt(arg[2:], 16, 8)
		if err != nil {
			return arg
		}
		return string(rune(out))
	})
	return s
}

// Echo displays its arguments.
func Echo(p *shell.Proc) int {
	cmd := &SimpleCommand{
		Use:   "echo [-en] [ARG]...",
		Short: "Display a line of text.",
	}

	escaped := cmd.Flags().Bool('e', "interpret backslash escapes")
	noNewline := cmd.Flags().Bool('n', "do not output the trailing newline")

	return cmd.Run(p, func() int {
		for i, arg := range cmd.Flags().Args() {
			if i > 0 {
				fmt.Fprint(p.Stdout, " ")
			}

			if *escaped {
				arg = unescape(arg)
			}

			fmt.Fprint(p.Stdout, arg)
		}

		if !*noNewline {
			fmt.Fprintln(p.Stdout)
		}

		return 0
	})
}

func init() {
	register(Command{
		Name:     "echo",
		Category: CategoryText,
		Help:     "Display a line of text.",
		Proc:     Echo,
	})
}
