package stream

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/ledtween/tween"
)

// Streamer plays tweens and streams each value as an RGB frame to an ledrx
// device.
type Streamer struct {
	config    Config
	client    mqtt.Client
	scheduler *tween.RefreshScheduler
	options   []tween.Option

	mu         sync.Mutex
	generation uint64
	tween      *tween.Tween
	renderer   Renderer
	value      float64
}

// NewStreamer creates an instance of a Streamer. Options are passed to every
// tween it builds.
func NewStreamer(config Config, client mqtt.Client, options ...tween.Option) (*Streamer, error) {
	s := new(Streamer)
	s.config = config
	s.client = client
	s.scheduler = tween.NewRefreshScheduler(config.Display.RefreshHz)
	s.options = options

	if err := s.load(nil); err != nil {
		return nil, err
	}
	return s, nil
}

// Scheduler is the refresh loop the streamer's tweens tick on.
func (s *Streamer) Scheduler() *tween.RefreshScheduler {
	return s.scheduler
}

// load builds the tween and renderer for the configured tween with overrides
// applied. Callers other than NewStreamer hold mu.
func (s *Streamer) load(overrides *PlayOverrides) error {
	config := s.config
	config.Tween = overrides.Apply(s.config.Tween)
	if !tween.Known(config.Tween.Easing) {
		log.Printf("Unknown easing %q, playing linear", config.Tween.Easing)
	}

	renderer, err := NewRenderer(config)
	if err != nil {
		return err
	}

	generation := s.generation + 1
	config.Tween.OnTick = func(value float64) {
		s.onTick(generation, value)
	}
	config.Tween.OnComplete = func() {
		s.onComplete(generation)
	}
	t, err := tween.New(config.Tween, s.scheduler, s.options...)
	if err != nil {
		return err
	}

	if s.tween != nil {
		s.tween.Stop()
	}
	s.generation = generation
	s.tween = t
	s.renderer = renderer
	s.value = config.Tween.Start
	return nil
}

func (s *Streamer) onTick(generation uint64, value float64) {
	s.mu.Lock()
	if generation != s.generation {
		// Last tick of a replaced tween.
		s.mu.Unlock()
		return
	}
	s.value = value
	renderer := s.renderer
	s.mu.Unlock()

	s.SendFrame(renderer.Render(value))
}

func (s *Streamer) onComplete(generation uint64) {
	s.mu.Lock()
	if generation != s.generation {
		s.mu.Unlock()
		return
	}
	value := s.value
	s.mu.Unlock()

	log.Printf("Tween complete at %v", value)
	s.publishEvent(EventMessage{Type: TypeComplete, Value: value})
}

// Play starts the tween from the beginning. Non-nil overrides replace the
// tween with one built from the configured tween plus the overrides.
func (s *Streamer) Play(overrides *PlayOverrides) error {
	s.mu.Lock()
	if overrides != nil {
		if err := s.load(overrides); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	t := s.tween
	start := t.Config().Start
	s.value = start
	s.mu.Unlock()

	t.Play()
	s.publishEvent(EventMessage{Type: TypePlay, Value: start})
	return nil
}

// Stop ends the current tween at its next tick.
func (s *Streamer) Stop() {
	s.mu.Lock()
	t := s.tween
	value := s.value
	s.mu.Unlock()

	t.Stop()
	s.publishEvent(EventMessage{Type: TypeStop, Value: value})
}

// Status reports the current tween and its last value.
func (s *Streamer) Status() Status {
	s.mu.Lock()
	t := s.tween
	value := s.value
	s.mu.Unlock()

	timing := t.Timing()
	return Status{
		State:      t.State().String(),
		Value:      value,
		FrameCount: timing.FrameCount,
		DurationMs: timing.TotalMs(),
		Tween:      t.Config(),
	}
}

// SendFrame sends a frame as binary over MQTT to an ledrx device.
func (s *Streamer) SendFrame(f *Frame) {
	b, _ := f.MarshalBinary()
	token := s.client.Publish(s.config.Mqtt.Topics.Stream, s.config.Mqtt.Qos, false, b)
	if token.Wait() && token.Error() != nil {
		log.Println(token.Error())
	}
}

func (s *Streamer) publishEvent(event EventMessage) {
	if s.config.Mqtt.Topics.Events == "" {
		return
	}
	b, err := json.Marshal(event)
	if err != nil {
		log.Println(err)
		return
	}
	token := s.client.Publish(s.config.Mqtt.Topics.Events, s.config.Mqtt.Qos, false, b)
	if token.Wait() && token.Error() != nil {
		log.Println(token.Error())
	}
}

func (s *Streamer) handleControlMessages(client mqtt.Client, msg mqtt.Message) {
	log.Printf("Received msg %d on %s: %s\n", msg.MessageID(), msg.Topic(), msg.Payload())

	var message ControlMessage
	if err := json.Unmarshal(msg.Payload(), &message); err != nil {
		log.Printf("Bad control message: %v", err)
		return
	}

	switch message.Type {
	case TypePlay:
		overrides := &message.PlayOverrides
		if *overrides == (PlayOverrides{}) {
			overrides = nil
		}
		if err := s.Play(overrides); err != nil {
			log.Printf("Cannot play: %v", err)
		}
	case TypeStop:
		s.Stop()
	default:
		log.Printf("Unknown control message type %q", message.Type)
	}
}

// Subscribe listens for play and stop commands on the control topic.
func (s *Streamer) Subscribe() error {
	token := s.client.Subscribe(s.config.Mqtt.Topics.Control, s.config.Mqtt.Qos, s.handleControlMessages)
	token.Wait()
	return token.Error()
}

// Run drives tween ticks until ctx is done.
func (s *Streamer) Run(ctx context.Context) {
	s.scheduler.Run(ctx)
}
