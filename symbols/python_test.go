package symbols

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pythonSample = `"""Module docstring."""
import os
import json as j
from pathlib import Path
from collections.abc import Mapping


def top_level(x):
    """Adds one."""
    return x + 1


class Greeter:
    """Says hello."""

    def greet(self, name):
        return f"hello {name}"


def undocumented():
    pass
`

func Test_PythonExtractor_Symbols(t *testing.T) {
	syms, _, err := PythonExtractor{}.Extract([]byte(pythonSample))
	require.NoError(t, err)

	names := make(map[string]Symbol)
	for _, s := range syms {
		names[s.Name] = s
	}

	require.Contains(t, names, "top_level")
	assert.Equal(t, KindFunction, names["top_level"].Kind)
	assert.Equal(t, 8, names["top_level"].Line)
	assert.Equal(t, "Adds one.", names["top_level"].Doc)

	require.Contains(t, names, "Greeter")
	assert.Equal(t, KindClass, names["Greeter"].Kind)
	assert.Equal(t, "Says hello.", names["Greeter"].Doc)

	// Nested method declarations are walked too.
	require.Contains(t, names, "greet")
	assert.Equal(t, KindFunction, names["greet"].Kind)

	require.Contains(t, names, "undocumented")
	assert.Empty(t, names["undocumented"].Doc)
}

func Test_PythonExtractor_Imports(t *testing.T) {
	_, imports, err := PythonExtractor{}.Extract([]byte(pythonSample))
	require.NoError(t, err)

	assert.Contains(t, imports, "os")
	assert.Contains(t, imports, "json")
	assert.Contains(t, imports, "pathlib")
	assert.Contains(t, imports, "collections.abc")
}

func Test_PythonExtractor_SyntaxError(t *testing.T) {
	_, _, err := PythonExtractor{}.Extract([]byte("def broken(:\n    pass\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
}

func Test_TrimPythonQuotes(t *testing.T) {
	assert.Equal(t, "abc", trimPythonQuotes(`"""abc"""`))
	assert.Equal(t, "abc", trimPythonQuotes("'''abc'''"))
	assert.Equal(t, "abc", trimPythonQuotes(`"abc"`))
	assert.Equal(t, "abc", trimPythonQuotes(`r"abc"`))
}
