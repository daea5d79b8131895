// Copyright (C) 2024-2026, Tilework, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToLevel(t *testing.T) {
	require := require.New(t)

	for name, expected := range map[string]Level{
		"debug": Debug,
		"INFO":  Info,
		"Warn":  Warn,
		"error": Error,
	} {
		level, err := ToLevel(name)
		require.NoError(err)
		require.Equal(expected, level)
	}

	_, err := ToLevel("loud")
	require.Error(err)
}

func TestNewLogger(t *testing.T) {
	require := require.New(t)

	buf := &bytes.Buffer{}
	log := NewLogger("test", Info, buf)

	log.Debug("dropped")
	log.Info("kept")
	require.NoError(log.Sync())

	out := buf.String()
	require.Contains(out, "kept")
	require.NotContains(out, "dropped")
	require.Contains(out, "test")
}
