package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/whatf0xx/tempers/mt"
	"github.com/whatf0xx/tempers/predict"
)

// run executes the CLI with args and stdin, returning stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.Execute()
	return stdout.String(), err
}

// lines formats nums one per line.
func lines(nums ...uint32) string {
	var b strings.Builder
	for _, n := range nums {
		b.WriteString(strconv.FormatUint(uint64(n), 10))
		b.WriteByte('\n')
	}
	return b.String()
}

func TestGenerate(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{
			[]string{"generate", "--seed", "5489", "--count", "3"},
			lines(3499211612, 581869302, 3890346734),
		},
		{
			[]string{"generate", "-n", "2", "--skip", "1"},
			lines(581869302, 3890346734),
		},
		{
			[]string{"generate", "-n", "0"},
			"",
		},
	}
	for _, c := range cases {
		got, err := run(t, "", c.args...)
		require.NoError(t, err, "%v", c.args)
		assert.Equal(t, c.want, got, "%v", c.args)
	}
}

func TestGenerateNegativeCount(t *testing.T) {
	_, err := run(t, "", "generate", "-n", "-1")
	assert.Error(t, err)
}

func TestGenerateConfigSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tempers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 1\n"), 0644))

	got, err := run(t, "", "--config", path, "generate", "-n", "1")
	require.NoError(t, err)
	assert.Equal(t, lines(mt.New(1).Uint32()), got)
}

func TestInvalidLogLevel(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--log-level", "loud", "generate"})
	assert.Error(t, root.Execute())
}

func TestUntemper(t *testing.T) {
	got, err := run(t, "", "untemper", "3499211612", "0")
	require.NoError(t, err)
	assert.Equal(t, lines(2601187879, 0), got)

	got, err = run(t, "3499211612\n581869302\n", "untemper")
	require.NoError(t, err)
	assert.Equal(t, lines(2601187879, 3919438689), got)

	got, err = run(t, "", "untemper", "--reverse", "2601187879")
	require.NoError(t, err)
	assert.Equal(t, lines(3499211612), got)

	_, err = run(t, "", "untemper", "nope")
	assert.Error(t, err)
}

func TestPredict(t *testing.T) {
	for _, size := range []int{mt.StateSize + 1, 1000} {
		g := mt.New(8675309)
		for i := 0; i < 100; i++ {
			g.Uint32()
		}
		observed := make([]uint32, size)
		for i := range observed {
			observed[i] = g.Uint32()
		}
		want := make([]uint32, 5)
		for i := range want {
			want[i] = g.Uint32()
		}

		got, err := run(t, lines(observed...), "predict", "-n", "5")
		require.NoError(t, err, "%d outputs", size)
		assert.Equal(t, lines(want...), got, "%d outputs", size)

		path := filepath.Join(t.TempDir(), "observed.txt")
		require.NoError(t, os.WriteFile(path, []byte(lines(observed...)), 0644))
		got, err = run(t, "", "predict", "-n", "5", path)
		require.NoError(t, err, "%d outputs", size)
		assert.Equal(t, lines(want...), got, "%d outputs", size)
	}
}

func TestPredictFollowsWholeInput(t *testing.T) {
	g := mt.New(8675309)
	observed := make([]uint32, 1000)
	for i := range observed {
		observed[i] = g.Uint32()
	}

	got, err := run(t, lines(observed...), "predict", "-n", "1")
	require.NoError(t, err)
	assert.Equal(t, lines(g.Uint32()), got)
	assert.NotEqual(t, lines(observed[mt.StateSize+1]), got)
}

func TestPredictDivergedInput(t *testing.T) {
	g := mt.New(8675309)
	observed := make([]uint32, 800)
	for i := range observed {
		observed[i] = g.Uint32()
	}
	observed[700]++

	_, err := run(t, lines(observed...), "predict")
	assert.ErrorIs(t, err, predict.ErrDiverged)
}

func TestPredictMissingFile(t *testing.T) {
	_, err := run(t, "", "predict", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPredictTooFewOutputs(t *testing.T) {
	_, err := run(t, lines(1, 2, 3), "predict")
	assert.ErrorContains(t, err, "ended before enough outputs")
}

func TestWithInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.txt")
	require.NoError(t, os.WriteFile(path, []byte(lines(1, 2, 3)), 0644))
	cmd := newRootCmd()

	var got []uint32
	err := withInput(cmd, path, func(r *predict.Reader) error {
		for n, ok := r.Next(); ok; n, ok = r.Next() {
			got = append(got, n)
		}
		return r.Err()
	})
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 2, 3}, got)

	err = withInput(cmd, path, func(*predict.Reader) error {
		return predict.ErrIncompleteStream
	})
	assert.ErrorIs(t, err, predict.ErrIncompleteStream)
}

func TestState(t *testing.T) {
	got, err := run(t, "", "state", "--seed", "5489")
	require.NoError(t, err)

	var snap snapshot
	require.NoError(t, yaml.Unmarshal([]byte(got), &snap))
	assert.Equal(t, 0, snap.Index)
	require.Len(t, snap.Words, mt.StateSize)
	assert.Equal(t, uint32(2601187879), snap.Words[0])

	got, err = run(t, "", "state", "--skip", "3")
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal([]byte(got), &snap))
	assert.Equal(t, 3, snap.Index)
}

func TestStateFrom(t *testing.T) {
	for _, size := range []int{mt.StateSize + 1, 2000} {
		g := mt.New(4)
		observed := make([]uint32, size)
		for i := range observed {
			observed[i] = g.Uint32()
		}

		got, err := run(t, lines(observed...), "state", "--from", "-")
		require.NoError(t, err, "%d outputs", size)

		var snap snapshot
		require.NoError(t, yaml.Unmarshal([]byte(got), &snap))
		assert.Equal(t, newSnapshot(g), snap, "%d outputs", size)
	}
}

func TestCrackSeed(t *testing.T) {
	first := mt.New(1000).Uint32()
	got, err := run(t, "", "crack", "seed", strconv.FormatUint(uint64(first), 10),
		"--from", "900", "--to", "1100")
	require.NoError(t, err)
	assert.Equal(t, lines(1000), got)

	_, err = run(t, "", "crack", "seed", strconv.FormatUint(uint64(first), 10),
		"--from", "0", "--to", "10")
	assert.Error(t, err)
}

func TestCrackKey(t *testing.T) {
	known := "aaaaaaaaaaaaaa"
	buf := append([]byte("xyzzy"), known...)
	mt.New(1234).XORKeyStream(buf, buf)

	got, err := run(t, "", "crack", "key", hex.EncodeToString(buf), "--known", known)
	require.NoError(t, err)
	assert.Equal(t, lines(1234), got)
}

func TestCrackToken(t *testing.T) {
	token := mt.New(1699999990).Bytes(16)
	got, err := run(t, "", "crack", "token", hex.EncodeToString(token), "--now", "1700000000")
	require.NoError(t, err)
	assert.Equal(t, lines(1699999990), got)
}

func TestCrackTokenInvalidNow(t *testing.T) {
	token := hex.EncodeToString(mt.New(5).Bytes(4))
	for _, now := range []string{"-1", "4294967296"} {
		_, err := run(t, "", "crack", "token", token, "--now", now)
		assert.ErrorContains(t, err, "not a 32-bit Unix time", "--now %s", now)
	}
}
