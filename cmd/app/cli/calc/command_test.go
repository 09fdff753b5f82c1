package calc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestCommand(t *testing.T) {
	var out bytes.Buffer
	app := &cli.App{
		Writer:   &out,
		Commands: []*cli.Command{Command()},
	}

	require.NoError(t, app.Run([]string{"droptracker", "calc", "3450", "2", "3"}))
	assert.Equal(t, "Total: 34 pulls (11.33%)\n", out.String())

	out.Reset()
	require.NoError(t, app.Run([]string{"droptracker", "calc", "lots", "NaN"}))
	assert.Equal(t, "Total: 0 pulls (0.00%)\n", out.String())
}
