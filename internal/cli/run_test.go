package cli_test

import (
	"testing"

	"rebrand/internal/cli"
)

func TestRun_NoArgsPrintsUsage(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stdout := c.MustRun()
	cli.AssertContains(t, stdout, "Usage: rebrand")
	cli.AssertContains(t, stdout, "apply")
	cli.AssertContains(t, stdout, "print-config")
}

func TestRun_HelpFlag(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stdout := c.MustRun("--help")
	cli.AssertContains(t, stdout, "Usage: rebrand")
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stderr := c.MustFail("bogus")
	cli.AssertContains(t, stderr, "unknown command: bogus")
	cli.AssertContains(t, stderr, "Usage: rebrand")
}

func TestRun_UnknownGlobalFlag(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stderr := c.MustFail("--bogus", "apply")
	cli.AssertContains(t, stderr, "unknown flag")
}

func TestRun_ConfigFlagRequiresArg(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stderr := c.MustFail("-c")
	cli.AssertContains(t, stderr, "flag requires an argument")
}

func TestRun_ExplicitConfigMissing(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stderr := c.MustFail("-c", "missing.json", "print-config")
	cli.AssertContains(t, stderr, "config file not found")
}
