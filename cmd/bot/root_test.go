package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := newRootCmd()

	names := make([]string, 0)
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "run"}, names)
	assert.NotNil(t, cmd.RunE)

	serve, _, err := cmd.Find([]string{"serve"})
	assert.NoError(t, err)
	assert.NotNil(t, serve.Flags().Lookup("port"))
}
