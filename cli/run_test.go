package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"
)

func TestRunAction(t *testing.T) {
	var out, errOut bytes.Buffer
	err := NewApp(&out, &errOut).Run([]string{"pointfx", "run", "--points", "40", "--steps", "3", "--seed", "9"})
	test.That(t, err, test.ShouldBeNil)

	printed := out.String()
	test.That(t, printed, test.ShouldContainSubstring, "mean neighbors")
	test.That(t, printed, test.ShouldContainSubstring, "pooled points")
	test.That(t, printed, test.ShouldContainSubstring, "p95 neighbors")
	test.That(t, printed, test.ShouldContainSubstring, "120")
}

func TestRunActionWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fx.json")
	raw := `{
		// json5 allows comments and trailing commas
		points: 25,
		spread: 2,
		radius: 0.5,
		tree: {half_size: 4, max_depth: 5, minimum_node_size: 0.1},
	}`
	test.That(t, os.WriteFile(path, []byte(raw), 0o600), test.ShouldBeNil)

	var out bytes.Buffer
	err := NewApp(&out, &out).Run([]string{"pointfx", "--config", path, "run", "--steps", "2"})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out.String(), test.ShouldContainSubstring, "50")

	t.Run("invalid config", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		test.That(t, os.WriteFile(bad, []byte(`{"tree": {"max_depth": -3}}`), 0o600), test.ShouldBeNil)
		err := NewApp(&out, &out).Run([]string{"pointfx", "--config", bad, "run"})
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "max_depth")
	})

	t.Run("missing config", func(t *testing.T) {
		err := NewApp(&out, &out).Run([]string{"pointfx", "--config", filepath.Join(t.TempDir(), "nope.json"), "run"})
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "cannot read config")
	})
}
