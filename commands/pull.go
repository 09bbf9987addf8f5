package commands

import (
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/juju/ratelimit"

	"github.com/cascade-sh/cascade/core/shell"
)

// Pull copies a file from the target to the local machine, optionally
// throttled by a token bucket.
func Pull(p *shell.Proc) int {
	cmd := &SimpleCommand{
		Use:   "pull [--limit-rate RATE] REMOTE [LOCAL]",
		Short: "Copy a file from the target to the local machine.",
	}

	limitRate := cmd.Flags().StringLong("limit-rate", 0, "", "throttle the transfer, e.g. 500K or 2M")

	return cmd.Run(p, func() int {
		args := cmd.Flags().Args()
		if len(args) < 1 || len(args) > 2 {
			fmt.Fprintln(p.Stderr, "pull: expected REMOTE [LOCAL]")
			return 1
		}

		remotePath := p.Session.ResolvePath(args[0])
		localPath := path.Base(remotePath)
		if len(args) == 2 {
			localPath = args[1]
		}

		rc, err := p.Client.Pull(p.Ctx, remotePath)
		if err != nil {
			fmt.Fprintf(p.Stderr, "pull: %s: %v\n", args[0], err)
			return 1
		}
		defer rc.Close()

		var src io.Reader = rc
		if *limitRate != "" {
			rate, err := parseRate(*limitRate)
			if err != nil {
				fmt.Fprintf(p.Stderr, "pull: %v\n", err)
				return 1
			}
			tokenBucket := ratelimit.NewBucketWithRate(rate, int64(rate))
			src = ratelimit.Reader(rc, tokenBucket)
		}

		var dst io.Writer
		if localPath == "-" {
			dst = p.Stdout
		} else {
			fd, err := os.Create(localPath)
			if err != nil {
				fmt.Fprintf(p.Stderr, "pull: %v\n", err)
				return 1
			}
			defer fd.Close()
			dst = fd
		}

		n, err := io.Copy(dst, src)
		if err != nil {
			fmt.Fprintf(p.Stderr, "pull: %v\n", err)
			return 1
		}

		if localPath != "-" {
			fmt.Fprintf(p.Stdout, "pulled %s -> %s (%s)\n", remotePath, localPath, BytesToHuman(n))
		}
		return 0
	})
}

// parseRate reads a bytes-per-second rate with an optional K/M/G suffix.
func parseRate(s string) (float64, error) {
	multiplier := 1.0
	switch {
	case strings.HasSuffix(s, "K"), strings.HasSuffix(s, "k"):
		multiplier, s = 1e3, s[:len(s)-1]
	case strings.HasSuffix(s, "M"), strings.HasSuffix(s, "m"):
		multiplier, s = 1e6, s[:len(s)-1]
	case strings.HasSuffix(s, "G"), strings.HasSuffix(s, "g"):
		multiplier, s = 1e9, s[:len(s)-1]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid rate %q", s)
	}
	return v * multiplier, nil
}

func init() {
	register(Command{
		Name:     "pull",
		Category: CategoryFiles,
		Help:     "Copy a file from the target to the local machine.",
		Proc:     Pull,
	})
}
