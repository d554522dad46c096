package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/ledtween/api"
	"github.com/matt-g-everett/ledtween/stream"
	"github.com/matt-g-everett/ledtween/tween"
)

type app struct {
	Config   stream.Config
	Client   mqtt.Client
	Streamer *stream.Streamer
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	if err := a.Streamer.Subscribe(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func (a *app) run(autoplay bool) {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}
	if autoplay {
		if err := a.Streamer.Play(nil); err != nil {
			panic(err)
		}
	}
	a.Streamer.Run(context.Background())
}

func (a *app) readConfig(configPath string) {
	config, err := stream.LoadConfig(configPath)
	if err != nil {
		panic(err)
	}
	a.Config = config
}

func main() {
	// mqtt.DEBUG = log.New(os.Stdout, "", 0)
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	autoplay := flag.Bool("play", false, "Play the configured tween on start-up.")
	verbose := flag.Bool("v", false, "Log tween lifecycle events.")
	flag.Parse()

	// Read the config
	a := newApp()
	a.readConfig(*configPath)
	log.Printf("Config: %+v", a.Config)

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(a.Config.Mqtt.ClientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	client := mqtt.NewClient(options)
	a.Client = client

	var tweenOptions []tween.Option
	if *verbose {
		tweenOptions = append(tweenOptions, tween.WithLogger(log.New(os.Stdout, "", log.LstdFlags)))
	}
	streamer, err := stream.NewStreamer(a.Config, client, tweenOptions...)
	if err != nil {
		panic(err)
	}
	a.Streamer = streamer

	server := api.NewApi(streamer, a.Config.Api.Static)
	go func() {
		if err := server.Serve(a.Config.Api.Listen); err != nil {
			log.Println(err)
		}
	}()

	a.run(*autoplay)
}
