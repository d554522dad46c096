package stream

import (
	"os"

	"github.com/matt-g-everett/ledtween/tween"
	"gopkg.in/yaml.v2"
)

// Display modes.
const (
	ModeBar  = "bar"
	ModeFill = "fill"
)

type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		ClientID string `yaml:"clientId"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Qos      byte   `yaml:"qos"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
			Events  string `yaml:"events"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Tween   tween.Config `yaml:"tween"`
	Display struct {
		Pixels     int           `yaml:"pixels"`
		RefreshHz  float64       `yaml:"refreshHz"`
		Mode       string        `yaml:"mode"`
		Foreground string        `yaml:"foreground"`
		Background string        `yaml:"background"`
		Gradient   GradientTable `yaml:"gradient"`
	} `yaml:"display"`
	Api struct {
		Listen string `yaml:"listen"`
		Static string `yaml:"static"`
	} `yaml:"api"`
}

// DefaultConfig is the configuration that LoadConfig decodes on top of.
func DefaultConfig() Config {
	var c Config
	c.Mqtt.ClientID = "ledtween"
	c.Mqtt.Topics.Stream = "home/xmastree/stream"
	c.Mqtt.Topics.Control = "home/xmastree/tween/control"
	c.Mqtt.Topics.Events = "home/xmastree/tween/events"
	c.Tween = tween.DefaultConfig()
	c.Display.Pixels = 500
	c.Display.RefreshHz = tween.DefaultRefreshHz
	c.Display.Mode = ModeBar
	c.Display.Foreground = "#808080"
	c.Display.Background = "#000005"
	c.Display.Gradient = DefaultGradient()
	c.Api.Listen = ":3000"
	return c
}

// LoadConfig reads a YAML config file. Keys missing from the file keep their
// defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return c, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&c); err != nil {
		return c, err
	}
	return c, nil
}
