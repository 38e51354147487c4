package transport

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/imagepick/internal/snapshot"
	apperrors "github.com/alexisbeaulieu97/imagepick/pkg/errors"
)

func TestHostWritesProtocolLines(t *testing.T) {
	var buf bytes.Buffer
	host := NewHost(&buf, nil)
	ctx := context.Background()

	require.NoError(t, host.SetComponentReady(ctx))
	require.NoError(t, host.SetComponentValue(ctx, snapshot.Pointer{Row: 0, Image: 1}))
	require.NoError(t, host.SetFrameHeight(ctx, 0))
	require.NoError(t, host.SetFrameHeight(ctx, 12))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	require.JSONEq(t, `{"isStreamlitMessage":true,"type":"streamlit:componentReady","apiVersion":1}`, lines[0])
	require.JSONEq(t, `{"isStreamlitMessage":true,"type":"streamlit:setComponentValue","value":{"rowIndex":0,"index":1},"dataType":"json"}`, lines[1])
	require.JSONEq(t, `{"isStreamlitMessage":true,"type":"streamlit:setFrameHeight","height":0}`, lines[2])
	require.JSONEq(t, `{"isStreamlitMessage":true,"type":"streamlit:setFrameHeight","height":12}`, lines[3])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestHostReportsWriteFailures(t *testing.T) {
	host := NewHost(failingWriter{}, nil)

	err := host.SetFrameHeight(context.Background(), 3)
	require.Error(t, err)
	var transportErr *apperrors.TransportError
	require.ErrorAs(t, err, &transportErr)
	require.Contains(t, err.Error(), TypeSetFrameHeight)
}

func TestHostRejectsCancelledContext(t *testing.T) {
	var buf bytes.Buffer
	host := NewHost(&buf, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, host.SetComponentReady(ctx), context.Canceled)
	require.Zero(t, buf.Len())
}

func TestHostEncodeFailure(t *testing.T) {
	var buf bytes.Buffer
	host := NewHost(&buf, nil)

	err := host.SetComponentValue(context.Background(), make(chan int))
	require.Error(t, err)
	require.Zero(t, buf.Len())
}
