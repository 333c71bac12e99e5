package nbtio

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelfab/nanofab/command"
	"github.com/voxelfab/nanofab/model"
	"github.com/voxelfab/nanofab/ncd"
)

func TestModelFile_RoundTrip(t *testing.T) {
	m, err := model.NewMatrix(3)
	require.NoError(t, err)
	require.NoError(t, m.Set(ncd.Position{X: 1, Y: 0, Z: 1}, model.Full))
	require.NoError(t, m.Set(ncd.Position{X: 2, Y: 2, Z: 0}, model.Full))

	b := WriteModelFile(m)
	got, err := ReadModelFile(b)
	require.NoError(t, err)
	require.True(t, got.Equal(m))
}

func TestReadModelFile_TruncatedFails(t *testing.T) {
	_, err := ReadModelFile(nil)
	require.ErrorIs(t, err, model.ErrTruncatedModel)
}

func TestTraceFile_RoundTrip(t *testing.T) {
	out, err := ncd.NewLLCD(1, 0, 0)
	require.NoError(t, err)
	trace := []command.Command{command.NewSMove(out), command.NewHalt()}

	b := WriteTraceFile(trace)
	got, err := ReadTraceFile(b)
	require.NoError(t, err)
	require.Equal(t, trace, got)
}

func TestReadTraceFile_MalformedFails(t *testing.T) {
	_, err := ReadTraceFile([]byte{0b00000000})
	require.ErrorIs(t, err, command.ErrMalformedCommand)
}
