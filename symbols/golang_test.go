package symbols

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goSample = `package sample

import (
	"fmt"
	"os"
)

// Server handles requests.
type Server struct {
	Addr string
}

// Run starts the server.
func Run(s *Server) error {
	fmt.Fprintln(os.Stdout, s.Addr)
	return nil
}

func internalHelper() {}
`

func Test_GoExtractor_Symbols(t *testing.T) {
	syms, _, err := GoExtractor{}.Extract([]byte(goSample))
	require.NoError(t, err)
	require.Len(t, syms, 3)

	names := make(map[string]Symbol)
	for _, s := range syms {
		names[s.Name] = s
	}

	assert.Equal(t, KindClass, names["Server"].Kind)
	assert.Equal(t, "Server handles requests.", names["Server"].Doc)
	assert.Equal(t, KindFunction, names["Run"].Kind)
	assert.Equal(t, "Run starts the server.", names["Run"].Doc)
	assert.Empty(t, names["internalHelper"].Doc)
}

func Test_GoExtractor_Imports(t *testing.T) {
	_, imports, err := GoExtractor{}.Extract([]byte(goSample))
	require.NoError(t, err)
	assert.Equal(t, []string{"fmt", "os"}, imports)
}

func Test_GoExtractor_SyntaxError(t *testing.T) {
	_, _, err := GoExtractor{}.Extract([]byte("package broken\n\nfunc oops( {\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
}
