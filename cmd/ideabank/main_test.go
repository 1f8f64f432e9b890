package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestDependencyGraph(t *testing.T) {
	err := fx.ValidateApp(
		options(),
		fx.Invoke(startServer),
	)
	require.NoError(t, err)
}
