package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cascade-sh/cascade/core/remote/remotetest"
)

func TestParseRate(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "1000", want: 1000},
		{in: "500K", want: 500e3},
		{in: "2M", want: 2e6},
		{in: "1g", want: 1e9},
		{in: "fast", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "0", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseRate(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPull(t *testing.T) {
	local := filepath.Join(t.TempDir(), "out.txt")
	cmd := remotetest.Command(Pull, "pull", "/data/report.txt", local)
	cmd.Setup = func(f *remotetest.Fake) error {
		return f.Seed("/data/report.txt", "quarterly numbers\n")
	}

	out, err := cmd.CombinedOutput()

	require.NoError(t, err)
	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Contains(t, string(out), "pulled /data/report.txt -> "+local)

	content, err := os.ReadFile(local)
	require.NoError(t, err)
	assert.Equal(t, "quarterly numbers\n", string(content))
}

func TestPull_toStdout(t *testing.T) {
	cmd := remotetest.Command(Pull, "pull", "/data/report.txt", "-")
	cmd.Setup = func(f *remotetest.Fake) error {
		return f.Seed("/data/report.txt", "streamed\n")
	}

	out, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, "streamed\n", string(out))
}

func TestPull_limitRate(t *testing.T) {
	cmd := remotetest.Command(Pull, "pull", "--limit-rate", "10M", "/data/blob", "-")
	cmd.Setup = func(f *remotetest.Fake) error {
		return f.Seed("/data/blob", "throttled contents")
	}

	out, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Equal(t, "throttled contents", string(out))
}

func TestPull_badRate(t *testing.T) {
	cmd := remotetest.Command(Pull, "pull", "--limit-rate", "warp", "/data/blob", "-")
	cmd.Setup = func(f *remotetest.Fake) error {
		return f.Seed("/data/blob", "x")
	}

	_, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, 1, cmd.ExitStatus)
}

func TestPull_missingRemote(t *testing.T) {
	cmd := remotetest.Command(Pull, "pull", "/nope", "-")

	out, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, 1, cmd.ExitStatus)
	assert.Contains(t, string(out), "pull: /nope:")
}
