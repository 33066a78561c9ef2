package capture

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net"
	"sync"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	mqttserver "github.com/mochi-co/mqtt/server"
	"github.com/mochi-co/mqtt/server/listeners"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/timzifer/siggen/acquisition"
	"github.com/timzifer/siggen/config"
)

type collected struct {
	mu       sync.Mutex
	payloads map[string][]byte
	end      chan struct{}
}

func subscribe(t *testing.T, brokerURL, filter string) *collected {
	t.Helper()
	c := &collected{payloads: make(map[string][]byte), end: make(chan struct{})}
	client := connectClient(t, brokerURL, "subscriber")
	t.Cleanup(func() { client.Disconnect(250) })

	token := client.Subscribe(filter, 1, func(_ mqtt.Client, msg mqtt.Message) {
		c.mu.Lock()
		c.payloads[msg.Topic()] = append(c.payloads[msg.Topic()], msg.Payload()...)
		c.mu.Unlock()
		if msg.Topic() == "lab/gen/end" {
			close(c.end)
		}
	})
	require.True(t, token.WaitTimeout(5*time.Second), "subscribe timeout")
	require.NoError(t, token.Error())
	return c
}

func (c *collected) get(topic string) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.payloads[topic]
}

func TestMQTTPublisherForwardsPackets(t *testing.T) {
	brokerURL, shutdown := startMockBroker(t)
	defer shutdown()
	messages := subscribe(t, brokerURL, "lab/gen/#")

	pub, err := NewMQTTPublisher(config.MQTTConfig{
		Broker: brokerURL,
		Topic:  "lab/gen/",
		QoS:    1,
	}, zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, "lab/gen", pub.Topic())

	rec := NewRecorder()
	runAcquisition(t, Fanout{rec, pub}, 5*time.Millisecond, 10*time.Millisecond)
	require.NoError(t, pub.Close())
	require.ErrorIs(t, pub.Send(&acquisition.FrameBegin{}), acquisition.ErrSinkClosed)

	select {
	case <-messages.end:
	case <-time.After(5 * time.Second):
		t.Fatal("end message not received")
	}

	var header headerMessage
	require.NoError(t, json.Unmarshal(messages.get("lab/gen/header"), &header))
	require.Equal(t, uint64(1000), header.SampleRate)
	require.Equal(t, 2, header.UnitSize)
	require.Equal(t, []string{"A0", "probe/1"}, header.AnalogChannels)

	require.Equal(t, rec.Logic(), messages.get("lab/gen/logic"))
	require.Equal(t, rec.Analog(0), decodeFloats(messages.get("lab/gen/analog/A0")))
	require.Equal(t, rec.Analog(1), decodeFloats(messages.get("lab/gen/analog/probe_1")))

	var end endMessage
	require.NoError(t, json.Unmarshal(messages.get("lab/gen/end"), &end))
	require.Equal(t, uint64(10), end.SentSamples)
	require.Equal(t, header.RunID, end.RunID)
	require.Empty(t, end.Error)
}

type heldToken struct {
	done chan struct{}
	err  error
}

func (t *heldToken) finish(err error) {
	t.err = err
	close(t.done)
}

func (t *heldToken) Wait() bool { <-t.done; return true }

func (t *heldToken) WaitTimeout(d time.Duration) bool {
	select {
	case <-t.done:
		return true
	case <-time.After(d):
		return false
	}
}

func (t *heldToken) Done() <-chan struct{} { return t.done }
func (t *heldToken) Error() error          { return t.err }

// heldClient accepts publishes and leaves them in flight until the test
// finishes their tokens.
type heldClient struct {
	mqtt.Client
	tokens []*heldToken
}

func (c *heldClient) IsConnected() bool { return false }

func (c *heldClient) Publish(string, byte, bool, interface{}) mqtt.Token {
	tok := &heldToken{done: make(chan struct{})}
	c.tokens = append(c.tokens, tok)
	return tok
}

func TestMQTTPublisherDoesNotWaitForBroker(t *testing.T) {
	client := &heldClient{}
	pub := &MQTTPublisher{
		client:  client,
		topic:   "lab",
		timeout: 50 * time.Millisecond,
		logger:  zerolog.Nop(),
		names:   make(map[int]string),
	}

	start := time.Now()
	for i := 0; i < 40; i++ {
		require.NoError(t, pub.Send(&acquisition.FrameBegin{}))
	}
	require.Less(t, time.Since(start), time.Second)
	require.Len(t, client.tokens, 40)

	client.tokens[0].finish(errors.New("not authorized"))
	require.ErrorContains(t, pub.Send(&acquisition.FrameEnd{}), "not authorized")

	for _, tok := range client.tokens[1:40] {
		tok.finish(nil)
	}
	err := pub.Close()
	require.ErrorContains(t, err, "lab/frame timed out")
	require.Empty(t, pub.pending)
}

func TestMQTTPublisherRequiresBroker(t *testing.T) {
	_, err := NewMQTTPublisher(config.MQTTConfig{}, zerolog.Nop())
	require.ErrorContains(t, err, "broker address is required")

	_, err = NewMQTTPublisher(config.MQTTConfig{Broker: "tcp://127.0.0.1:1", QoS: 5}, zerolog.Nop())
	require.ErrorContains(t, err, "invalid qos")
}

func TestBuildTLSConfigReportsMissingFiles(t *testing.T) {
	cfg, err := buildTLSConfig(config.MQTTTLSConfig{Enabled: true, ServerName: "broker.lab"})
	require.NoError(t, err)
	require.Equal(t, "broker.lab", cfg.ServerName)

	_, err = buildTLSConfig(config.MQTTTLSConfig{Enabled: true, CAFile: "/nonexistent/ca.pem"})
	require.ErrorContains(t, err, "read ca file")
}

func decodeFloats(b []byte) []float32 {
	out := make([]float32, 0, len(b)/4)
	for i := 0; i+4 <= len(b); i += 4 {
		out = append(out, math.Float32frombits(binary.LittleEndian.Uint32(b[i:])))
	}
	return out
}

func startMockBroker(t *testing.T) (string, func()) {
	t.Helper()

	port := freePort(t)
	addr := fmt.Sprintf("127.0.0.1:%d", port)

	server := mqttserver.NewServer(nil)
	tcp := listeners.NewTCP("test", addr)

	if err := server.AddListener(tcp, nil); err != nil {
		t.Fatalf("add listener: %v", err)
	}
	if err := server.Serve(); err != nil {
		t.Fatalf("serve: %v", err)
	}

	if err := waitForBroker(addr, 5*time.Second); err != nil {
		t.Fatalf("wait for broker: %v", err)
	}

	return "tcp://" + addr, func() {
		_ = server.Close()
	}
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func waitForBroker(addr string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", addr, 200*time.Millisecond)
		if err == nil {
			_ = conn.Close()
			return nil
		}
		time.Sleep(20 * time.Millisecond)
	}
	return fmt.Errorf("broker at %s did not start", addr)
}

func connectClient(t *testing.T, brokerURL, clientID string) mqtt.Client {
	t.Helper()
	opts := mqtt.NewClientOptions().AddBroker(brokerURL).SetClientID(clientID)
	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(5 * time.Second) {
		t.Fatalf("connect timeout")
	}
	if err := token.Error(); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	return client
}
