package capture

import (
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/timzifer/siggen/acquisition"
	"github.com/timzifer/siggen/config"
)

const (
	defaultMQTTTopic   = "siggen"
	defaultMQTTTimeout = 10 * time.Second
)

type headerMessage struct {
	RunID          string    `json:"run_id"`
	Start          time.Time `json:"start"`
	SampleRate     uint64    `json:"sample_rate"`
	UnitSize       int       `json:"unit_size"`
	LogicChannels  int       `json:"logic_channels"`
	AnalogChannels []string  `json:"analog_channels"`
}

type endMessage struct {
	RunID       string `json:"run_id"`
	SentSamples uint64 `json:"sent_samples"`
	Frames      uint64 `json:"frames"`
	Error       string `json:"error,omitempty"`
}

// MQTTPublisher forwards packets to an MQTT broker. Below the configured
// topic prefix it publishes:
//
//	header            JSON, retained
//	logic             packed logic rows
//	analog/<channel>  little-endian float32 samples
//	frame             "begin" or "end"
//	end               JSON
//
// Publishing does not wait for the broker. Failed deliveries are reported by
// a later Send or by Close, which waits for everything still in flight.
type MQTTPublisher struct {
	mu      sync.Mutex
	client  mqtt.Client
	topic   string
	qos     byte
	timeout time.Duration
	logger  zerolog.Logger
	names   map[int]string
	pending []pendingPublish
	closed  bool
}

type pendingPublish struct {
	topic string
	token mqtt.Token
}

// NewMQTTPublisher connects to cfg.Broker.
func NewMQTTPublisher(cfg config.MQTTConfig, logger zerolog.Logger) (*MQTTPublisher, error) {
	timeout := cfg.ConnectTimeout.Duration
	if timeout <= 0 {
		timeout = defaultMQTTTimeout
	}
	topic := strings.TrimSuffix(strings.TrimSpace(cfg.Topic), "/")
	if topic == "" {
		topic = defaultMQTTTopic
	}
	if cfg.QoS < 0 || cfg.QoS > 2 {
		return nil, fmt.Errorf("mqtt: invalid qos %d", cfg.QoS)
	}
	client, err := buildMQTTClient(cfg, timeout, logger)
	if err != nil {
		return nil, err
	}
	return &MQTTPublisher{
		client:  client,
		topic:   topic,
		qos:     byte(cfg.QoS),
		timeout: timeout,
		logger:  logger,
		names:   make(map[int]string),
	}, nil
}

func buildMQTTClient(cfg config.MQTTConfig, timeout time.Duration, logger zerolog.Logger) (mqtt.Client, error) {
	if cfg.Broker == "" {
		return nil, errors.New("mqtt: broker address is required")
	}
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "siggen-" + strings.ToLower(ulid.Make().String())
	}
	opts.SetClientID(clientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.SetConnectTimeout(timeout)
	if cfg.TLS.Enabled {
		tlsConfig, err := buildTLSConfig(cfg.TLS)
		if err != nil {
			return nil, err
		}
		opts.SetTLSConfig(tlsConfig)
	}
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		logger.Warn().Err(err).Msg("mqtt: connection lost")
	})
	opts.SetReconnectingHandler(func(_ mqtt.Client, _ *mqtt.ClientOptions) {
		logger.Info().Msg("mqtt: reconnecting")
	})

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(timeout) {
		return nil, errors.New("mqtt: connect timeout")
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt: connect failed: %w", err)
	}
	return client, nil
}

func buildTLSConfig(settings config.MQTTTLSConfig) (*tls.Config, error) {
	cfg := &tls.Config{InsecureSkipVerify: settings.InsecureSkipVerify}
	if settings.ServerName != "" {
		cfg.ServerName = settings.ServerName
	}
	if settings.CAFile != "" {
		ca, err := os.ReadFile(settings.CAFile)
		if err != nil {
			return nil, fmt.Errorf("mqtt: read ca file: %w", err)
		}
		pool := x509.NewCertPool()
		if ok := pool.AppendCertsFromPEM(ca); !ok {
			return nil, fmt.Errorf("mqtt: parse ca file %s", settings.CAFile)
		}
		cfg.RootCAs = pool
	}
	if settings.CertFile != "" && settings.KeyFile != "" {
		cert, err := tls.LoadX509KeyPair(settings.CertFile, settings.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("mqtt: load client certificate: %w", err)
		}
		cfg.Certificates = []tls.Certificate{cert}
	}
	return cfg, nil
}

// Send implements acquisition.Sink. The returned error covers publishes of
// earlier packets that have failed since the previous call.
func (p *MQTTPublisher) Send(pkt acquisition.Packet) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return acquisition.ErrSinkClosed
	}

	var (
		suffix   string
		payload  []byte
		retained bool
		err      error
	)
	switch v := pkt.(type) {
	case *acquisition.Header:
		suffix, retained = "header", true
		payload, err = json.Marshal(headerMessage{
			RunID:          v.RunID.String(),
			Start:          v.Start,
			SampleRate:     v.SampleRate,
			UnitSize:       v.UnitSize,
			LogicChannels:  v.LogicChannels,
			AnalogChannels: v.AnalogChannels,
		})
	case *acquisition.Logic:
		// Data is reused by the scheduler once Send returns.
		suffix = "logic"
		payload = bytes.Clone(v.Data)
	case *acquisition.Analog:
		name, ok := p.names[v.Channel]
		if !ok {
			name = safeName(v.Name, v.Channel)
			p.names[v.Channel] = name
		}
		suffix = "analog/" + name
		payload = make([]byte, 0, 4*len(v.Samples))
		for _, s := range v.Samples {
			payload = binary.LittleEndian.AppendUint32(payload, math.Float32bits(s))
		}
	case *acquisition.FrameBegin:
		suffix, payload = "frame", []byte("begin")
	case *acquisition.FrameEnd:
		suffix, payload = "frame", []byte("end")
	case *acquisition.End:
		msg := endMessage{RunID: v.RunID.String(), SentSamples: v.SentSamples, Frames: v.Frames}
		if v.Err != nil {
			msg.Error = v.Err.Error()
		}
		suffix = "end"
		payload, err = json.Marshal(msg)
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("mqtt: encode %s: %w", pkt.Kind(), err)
	}
	failed := p.reap()
	topic := p.topic + "/" + suffix
	p.pending = append(p.pending, pendingPublish{
		topic: topic,
		token: p.client.Publish(topic, p.qos, retained, payload),
	})
	return failed
}

// reap drops completed publishes and joins their errors.
func (p *MQTTPublisher) reap() error {
	var errs []error
	kept := p.pending[:0]
	for _, pub := range p.pending {
		select {
		case <-pub.token.Done():
			if err := pub.token.Error(); err != nil {
				errs = append(errs, fmt.Errorf("mqtt: publish to %s: %w", pub.topic, err))
			}
		default:
			kept = append(kept, pub)
		}
	}
	clear(p.pending[len(kept):])
	p.pending = kept
	return errors.Join(errs...)
}

// flush waits for the outstanding publishes, sharing one timeout.
func (p *MQTTPublisher) flush() error {
	deadline := time.Now().Add(p.timeout)
	var errs []error
	for _, pub := range p.pending {
		if !waitToken(pub.token, time.Until(deadline)) {
			errs = append(errs, fmt.Errorf("mqtt: publish to %s timed out", pub.topic))
			continue
		}
		if err := pub.token.Error(); err != nil {
			errs = append(errs, fmt.Errorf("mqtt: publish to %s: %w", pub.topic, err))
		}
	}
	p.pending = nil
	return errors.Join(errs...)
}

func waitToken(token mqtt.Token, d time.Duration) bool {
	select {
	case <-token.Done():
		return true
	default:
	}
	if d <= 0 {
		return false
	}
	return token.WaitTimeout(d)
}

// Topic returns the topic prefix.
func (p *MQTTPublisher) Topic() string { return p.topic }

// Close waits for in-flight publishes and disconnects from the broker.
// Further packets are rejected.
func (p *MQTTPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	err := p.flush()
	if p.client.IsConnected() {
		p.client.Disconnect(250)
	}
	p.logger.Debug().Str("topic", p.topic).Msg("mqtt: publisher closed")
	return err
}
