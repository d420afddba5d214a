// Package publish forwards dashboard snapshots to a message broker.
package publish

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

// Publisher hands a value to some outside consumer.
type Publisher interface {
	Publish(v any) error
}

// Nop discards everything.
type Nop struct{}

// Publish implements Publisher.
func (Nop) Publish(any) error { return nil }

// DefaultTopic is the topic snapshots are published to if none is configured.
const DefaultTopic = "lunadash/snapshot"

const publishTimeout = 5 * time.Second

// MQTTOptions configure an MQTT publisher.
type MQTTOptions struct {
	Broker   string
	ClientID string
	Topic    string
	Username string
	Password string
}

// MQTT publishes JSON-encoded values as retained messages to a single topic.
type MQTT struct {
	client mqtt.Client
	topic  string
}

// NewMQTT connects to the broker and returns a publisher.
func NewMQTT(opts MQTTOptions) (*MQTT, error) {
	clientID := opts.ClientID
	if clientID == "" {
		clientID = fmt.Sprintf("lunadash-%d", time.Now().UnixNano())
	}

	o := mqtt.NewClientOptions()
	o.AddBroker(opts.Broker)
	o.SetClientID(clientID)
	o.SetUsername(opts.Username)
	o.SetPassword(opts.Password)
	o.SetAutoReconnect(true)
	o.SetConnectTimeout(10 * time.Second)
	o.OnConnect = func(mqtt.Client) {
		log.Info().Str("broker", opts.Broker).Msg("connected to mqtt broker")
	}
	o.OnConnectionLost = func(_ mqtt.Client, err error) {
		log.Warn().Err(err).Str("broker", opts.Broker).Msg("lost connection to mqtt broker")
	}

	client := mqtt.NewClient(o)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("could not connect to mqtt broker '%s' (%w)", opts.Broker, token.Error())
	}
	return NewMQTTWithClient(client, opts.Topic), nil
}

// NewMQTTWithClient returns a publisher using an existing client.
func NewMQTTWithClient(client mqtt.Client, topic string) *MQTT {
	if topic == "" {
		topic = DefaultTopic
	}
	return &MQTT{client: client, topic: topic}
}

// Publish implements Publisher.
func (p *MQTT) Publish(v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not encode payload (%w)", err)
	}

	token := p.client.Publish(p.topic, 1, true, payload)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("publishing to '%s' timed out", p.topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("could not publish to '%s' (%w)", p.topic, err)
	}
	log.Debug().Str("topic", p.topic).Int("bytes", len(payload)).Msg("published")
	return nil
}

// Close disconnects from the broker.
func (p *MQTT) Close() {
	p.client.Disconnect(250)
}
