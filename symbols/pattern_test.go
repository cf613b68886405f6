package symbols

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_PatternImports_JavaScript(t *testing.T) {
	src := []byte(`
import React from 'react';
import { useState, useEffect } from "react";
import * as path from './utils/path';
const x = require('not-matched');
`)
	imports := PatternImports(src)
	assert.Equal(t, []string{"react", "react", "./utils/path"}, imports)
}

func Test_PatternImports_NoMatches(t *testing.T) {
	assert.Empty(t, PatternImports([]byte("int main() { return 0; }\n")))
}

func Test_PatternImports_CommentedImportStillMatches(t *testing.T) {
	// Best-effort extraction: no semantic filtering, false positives tolerated.
	imports := PatternImports([]byte(`// import legacy from "old-lib";`))
	assert.Equal(t, []string{"old-lib"}, imports)
}

func Test_Registry_UnknownLanguage(t *testing.T) {
	_, ok := For("cobol")
	assert.False(t, ok)
}

func Test_Registry_RegisteredLanguages(t *testing.T) {
	_, ok := For("python")
	assert.True(t, ok)
	_, ok = For("go")
	assert.True(t, ok)
}
