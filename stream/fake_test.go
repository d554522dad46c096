package stream

import (
	"sync"

	"github.com/eclipse/paho.mqtt.golang"
)

type fakeToken struct {
	mqtt.Token
	err error
}

func (t *fakeToken) Wait() bool   { return true }
func (t *fakeToken) Error() error { return t.err }

type published struct {
	topic   string
	payload []byte
}

// fakeClient records publishes and subscriptions. Other mqtt.Client methods
// are not used by the streamer.
type fakeClient struct {
	mqtt.Client

	mu        sync.Mutex
	published []published
	handlers  map[string]mqtt.MessageHandler
}

func newFakeClient() *fakeClient {
	return &fakeClient{handlers: make(map[string]mqtt.MessageHandler)}
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.published = append(c.published, published{topic, payload.([]byte)})
	return &fakeToken{}
}

func (c *fakeClient) Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[topic] = callback
	return &fakeToken{}
}

func (c *fakeClient) on(topic string) [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	var payloads [][]byte
	for _, p := range c.published {
		if p.topic == topic {
			payloads = append(payloads, p.payload)
		}
	}
	return payloads
}

func (c *fakeClient) deliver(topic string, payload string) {
	c.mu.Lock()
	handler := c.handlers[topic]
	c.mu.Unlock()
	handler(c, &fakeMessage{topic: topic, payload: []byte(payload)})
}

type fakeMessage struct {
	mqtt.Message
	topic   string
	payload []byte
}

func (m *fakeMessage) Topic() string     { return m.topic }
func (m *fakeMessage) Payload() []byte   { return m.payload }
func (m *fakeMessage) MessageID() uint16 { return 1 }
