package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--no-color"}, args...))
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestEvalGolden(t *testing.T) {

	var buf bytes.Buffer

	for _, args := range [][]string{
		{"eval", "add", "1", "2", "3", "4"},
		{"eval", "sub", "3", "4", "1", "2"},
		{"eval", "mul", "1", "2", "3", "4"},
		{"eval", "mul", "--", "-1", "2", "-3", "4"},
		{"eval", "div", "3", "4", "1", "2"},
		{"eval", "div", "1", "1", "3", "3"},
		{"eval", "neg", "1", "2"},
		{"eval", "add", "0.1", "0.1", "0.2", "0.2"},
		{"--precision", "float32", "eval", "add", "0.1", "0.1", "0.2", "0.2"},
	} {
		out, _, err := run(t, args...)
		require.NoError(t, err, "%v", args)
		buf.WriteString(out)
	}

	goldie.New(t).Assert(t, t.Name(), buf.Bytes())
}

func TestEvalErrors(t *testing.T) {
	for _, args := range [][]string{
		{"eval", "pow", "1", "2", "3", "4"},
		{"eval", "add", "1", "2"},
		{"eval", "neg", "1", "2", "3", "4"},
		{"eval", "add", "2", "1", "3", "4"},
		{"eval", "add", "one", "2", "3", "4"},
		{"eval", "div", "1", "2", "0", "1"},
		{"--precision", "float16", "eval", "add", "1", "2", "3", "4"},
	} {
		_, _, err := run(t, args...)
		require.Error(t, err, "%v", args)
	}
}

func TestSin(t *testing.T) {

	t.Run("Float64", func(t *testing.T) {
		out, _, err := run(t, "sin", "--iterations", "1000", "--center", "0.785", "--epsilon", "0.02")
		require.NoError(t, err)
		require.Contains(t, out, "x         = [0.765, 0.805]")
		require.Contains(t, out, "enclosed  = yes")
	})

	t.Run("Float32", func(t *testing.T) {
		out, _, err := run(t, "--precision", "float32", "sin", "--iterations", "1000", "--center", "0.5", "--epsilon", "0.01")
		require.NoError(t, err)
		require.Contains(t, out, "enclosed  = yes")
	})

	t.Run("InvalidIterations", func(t *testing.T) {
		_, _, err := run(t, "sin", "--iterations", "6")
		require.Error(t, err)
	})

	t.Run("Verbose", func(t *testing.T) {
		_, stderr, err := run(t, "-v", "sin", "--iterations", "4")
		require.NoError(t, err)
		require.Contains(t, stderr, "4 iterations on float64")
	})
}

func TestRounding(t *testing.T) {
	out, _, err := run(t, "rounding")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 11)
	require.Equal(t, "float32", lines[0])
	require.Equal(t, "float64", lines[6])

	require.Contains(t, lines[2], "downward")
	require.Contains(t, lines[2], "z1 = -5.9604644775e-08")
	require.Contains(t, lines[3], "z2 =  5.9604644775e-08")

	require.Contains(t, lines[7], "nearest")
	require.Contains(t, lines[8], "z1 = -1.1102230246e-16")
	require.Contains(t, lines[9], "z2 =  1.1102230246e-16")
	require.Contains(t, lines[10], "toward zero")
}

func TestSweep(t *testing.T) {

	out, _, err := run(t, "sweep", "--from", "0.7", "--to", "0.8", "--steps", "2", "--iterations", "1001")
	require.NoError(t, err)
	require.Contains(t, out, "centers   = 3")
	require.Contains(t, out, "misses    = 0")

	_, _, err = run(t, "sweep", "--steps", "0")
	require.Error(t, err)

	_, _, err = run(t, "sweep", "--from", "1", "--to", "0")
	require.Error(t, err)
}

func TestLoadConfig(t *testing.T) {

	t.Run("YAML", func(t *testing.T) {
		cfg, err := LoadConfig(writeFile(t, "inter.yaml", "precision: float32\niterations: 1000\nverbose: true\ncolor: false\n"))
		require.NoError(t, err)
		require.Equal(t, "float32", cfg.Precision)
		require.Equal(t, 1000, *cfg.Iterations)
		require.True(t, cfg.Verbose)
		require.False(t, *cfg.Color)
	})

	t.Run("TOML", func(t *testing.T) {
		cfg, err := LoadConfig(writeFile(t, "inter.toml", "precision = \"float64\"\niterations = 4\n"))
		require.NoError(t, err)
		require.Equal(t, "float64", cfg.Precision)
		require.Equal(t, 4, *cfg.Iterations)
		require.False(t, cfg.Verbose)
		require.Nil(t, cfg.Color)
	})

	t.Run("Empty", func(t *testing.T) {
		cfg, err := LoadConfig(writeFile(t, "inter.yml", ""))
		require.NoError(t, err)
		require.Equal(t, Config{}, cfg)
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := LoadConfig(writeFile(t, "inter.json", "{}"))
		require.Error(t, err)

		_, err = LoadConfig(writeFile(t, "inter.yaml", "precision: float16\n"))
		require.Error(t, err)

		_, err = LoadConfig(writeFile(t, "inter.toml", "precision = \n"))
		require.Error(t, err)

		_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func TestConfigPrecedence(t *testing.T) {

	path := writeFile(t, "inter.yaml", "precision: float32\niterations: 4\nverbose: true\n")

	out, stderr, err := run(t, "--config", path, "eval", "add", "0.1", "0.1", "0.2", "0.2")
	require.NoError(t, err)
	require.Equal(t, "[0.1, 0.1] + [0.2, 0.2] = [0.29999998, 0.3]\n", out)
	require.Contains(t, stderr, "add: width")

	out, _, err = run(t, "--config", path, "--precision", "float64", "eval", "add", "0.1", "0.1", "0.2", "0.2")
	require.NoError(t, err)
	require.Equal(t, "[0.1, 0.1] + [0.2, 0.2] = [0.3, 0.30000000000000004]\n", out)

	_, stderr, err = run(t, "--config", path, "sin")
	require.NoError(t, err)
	require.Contains(t, stderr, "4 iterations on float32")
}
