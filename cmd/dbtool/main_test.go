package main

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunSubcommand_Unknown(t *testing.T) {
	args := os.Args
	t.Cleanup(func() { os.Args = args })
	os.Args = []string{"dbtool", "bogus"}

	err := runSubcommand(context.Background(), &dbtoolFlags{})

	assert.EqualError(t, err, "unknown subcommand: bogus")
}
