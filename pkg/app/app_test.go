package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"carfactory/pkg/car"
	"carfactory/pkg/version"
)

func TestRunBuildsClientRequests(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), nil, &out, zap.NewNop())
	require.NoError(t, err)

	want := "New car = Red, Manual, Hardtop\n" +
		"New car = Silver, Automatic, Convertible\n" +
		"New car = Yellow, SemiAuto, Hardtop\n"
	assert.Equal(t, want, out.String())
}

func TestRunLogsCompletion(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	require.NoError(t, Run(context.Background(), nil, &bytes.Buffer{}, zap.New(core)))

	entries := logs.FilterMessage("client requests fulfilled").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(3), entries[0].ContextMap()["count"])
}

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), []string{"--version"}, &out, zap.NewNop()))
	assert.Equal(t, "carfactory version "+version.Version()+"\n", out.String())
}

func TestRunRejectsArguments(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), []string{"extra"}, &out, zap.NewNop())
	require.Error(t, err)
	assert.Empty(t, out.String())
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := Run(ctx, nil, &out, zap.NewNop())
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestDefaultRequests(t *testing.T) {
	requests, err := parseRequests(defaultRequests)
	require.NoError(t, err)
	assert.Equal(t, []Request{
		{Color: "Red", Transmission: car.Manual, Convertible: false},
		{Color: "Silver", Transmission: car.Automatic, Convertible: true},
		{Color: "Yellow", Transmission: car.SemiAuto, Convertible: false},
	}, requests)
}

func TestParseRequestsRejectsUnknownTransmission(t *testing.T) {
	_, err := parseRequests([]byte("- color: Blue\n  transmission: DualClutch\n"))
	require.ErrorIs(t, err, car.ErrUnknownTransmission)
}

func TestVerify(t *testing.T) {
	req := Request{Color: "Red", Transmission: car.Manual}
	require.NoError(t, verify(0, req, car.Car{Color: "Red", Transmission: car.Manual}))

	tests := []struct {
		name  string
		built car.Car
		msg   string
	}{
		{"color", car.Car{Color: "Blue", Transmission: car.Manual}, "client request 2: color = Blue, want Red"},
		{"transmission", car.Car{Color: "Red", Transmission: car.Automatic}, "client request 2: transmission = Automatic, want Manual"},
		{"convertible", car.Car{Color: "Red", Transmission: car.Manual, Convertible: true}, "client request 2: convertible = true, want false"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := verify(1, req, tt.built)
			require.Error(t, err)
			assert.True(t, IsExpectation(err))
			assert.EqualError(t, err, tt.msg)
		})
	}
}
