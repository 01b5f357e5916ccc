package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCedulaCmd(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"cedula", "001-1234567-3"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "00112345673\tvalid")
}

func TestCedulaCmd_Invalid(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"cedula", "00112345673", "001-1234567-8"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, out.String(), "001-1234567-8\tinvalid")
}
