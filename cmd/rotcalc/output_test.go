package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeYAML(&buf, quatOut{W: 1}))
	assert.Equal(t, "x: 0\ny: 0\nz: 0\nw: 1\n", buf.String())
}

func TestWriteYAMLReportsWriteErrors(t *testing.T) {
	err := writeYAML(failingWriter{}, quatOut{W: 1})
	assert.ErrorContains(t, err, "disk full")
}
