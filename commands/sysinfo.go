package commands

import (
	"encoding/json"
	"fmt"

	"github.com/cascade-sh/cascade/core/shell"
)

// Sysinfo fetches and displays the target's system description.
func Sysinfo(p *shell.Proc) int {
	cmd := &SimpleCommand{
		Use:   "sysinfo [--json]",
		Short: "Show information about the target system.",
	}

	asJSON := cmd.Flags().BoolLong("json", 0, "emit machine readable output")

	return cmd.Run(p, func() int {
		info, err := p.Client.SysInfo(p.Ctx)
		if err != nil {
			fmt.Fprintf(p.Stderr, "sysinfo: %v\n", err)
			return 1
		}

		if *asJSON {
			enc := json.NewEncoder(p.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(info); err != nil {
				fmt.Fprintf(p.Stderr, "sysinfo: %v\n", err)
				return 1
			}
			return 0
		}

		body := fmt.Sprintf("os:      %s\narch:    %s\nversion: %s",
			info.OS, info.Arch, info.Version)
		p.Printer.Panel(info.Hostname, body)
		return 0
	})
}

func init() {
	register(Command{
		Name:     "sysinfo",
		Category: CategoryTarget,
		Help:     "Show information about the target system.",
		Proc:     Sysinfo,
	})
}
