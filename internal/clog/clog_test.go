package clog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugf_DiscardsWhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	EnableDebug = "false"
	Debugf("should not appear: %d", 1)
	assert.Empty(t, buf.String())
}

func TestDebugf_WritesWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	EnableDebug = "true"
	defer func() { EnableDebug = "false" }()

	Debugf("value=%d", 42)
	assert.Equal(t, "value=42\n", buf.String())
}

func TestDebugf_NoOutputWriterIsSafe(t *testing.T) {
	SetOutput(nil)
	EnableDebug = "true"
	defer func() { EnableDebug = "false" }()

	assert.NotPanics(t, func() { Debugf("nothing listens") })
}
