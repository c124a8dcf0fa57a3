// internal/writer/ingest/client_test.go
package ingest

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPacketV1(t *testing.T) {
	pkt := buildPacketV1(3, 7, 0x0102, 2, []byte{0xAA, 0xBB, 0xCC, 0xDD})

	assert.Equal(t, []byte{
		'R', 'I', 0x01, 0x03,
		0x00, 0x07,
		0x01, 0x02,
		0x00, 0x02,
		0xAA, 0xBB, 0xCC, 0xDD,
	}, pkt)
}

// pipeClient returns a client whose dial hands out one end of a net.Pipe;
// the other end is served by serve.
func pipeClient(t *testing.T, serve func(conn net.Conn)) *EndpointClient {
	t.Helper()

	c, err := NewEndpointClient(Config{Endpoint: "pipe", Timeout: time.Second})
	require.NoError(t, err)

	c.dial = func(_, _ string, _ time.Duration) (net.Conn, error) {
		client, server := net.Pipe()
		go func() {
			defer server.Close()
			serve(server)
		}()
		return client, nil
	}
	return c
}

func TestWriteRegisters_OK(t *testing.T) {
	got := make(chan []byte, 1)

	c := pipeClient(t, func(conn net.Conn) {
		buf := make([]byte, headerLen+4)
		if _, err := io.ReadFull(conn, buf); err != nil {
			return
		}
		got <- buf
		_, _ = conn.Write([]byte{respOK})
	})

	require.NoError(t, c.WriteRegisters(3, 1, 40, []uint16{0x3031, 0x3233}))

	pkt := <-got
	assert.Equal(t, []byte{0x30, 0x31, 0x32, 0x33}, pkt[headerLen:])
	assert.Equal(t, []byte{0x00, 0x28}, pkt[6:8])
}

func TestWriteRegisters_Rejected(t *testing.T) {
	c := pipeClient(t, func(conn net.Conn) {
		buf := make([]byte, headerLen+2)
		if _, err := io.ReadFull(conn, buf); err != nil {
			return
		}
		_, _ = conn.Write([]byte{respRejected})
	})

	err := c.WriteRegisters(3, 1, 0, []uint16{1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rejected")
}

func TestNewEndpointClient_RequiresEndpoint(t *testing.T) {
	_, err := NewEndpointClient(Config{})
	assert.Error(t, err)
}
