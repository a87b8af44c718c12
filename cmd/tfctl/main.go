package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/tradeforge/tradeforge/exchanges/bitflyer"
)

var (
	apiKey    string
	apiSecret string
	envFile   string
	timeout   time.Duration
	verbose   bool

	log = logrus.New()
)

const defaultTimeout = time.Second * 30

func jsonOutput(in any) {
	j, err := json.MarshalIndent(in, "", " ")
	if err != nil {
		return
	}
	fmt.Println(string(j))
}

// setupExchange returns a configured exchange. Credentials come from flags
// first, then from the environment, so a .env file is enough for day to day
// use.
func setupExchange() *bitflyer.Bitflyer {
	b := bitflyer.New()
	b.Verbose = verbose

	key, secret := apiKey, apiSecret
	if key == "" {
		key = os.Getenv("BITFLYER_API_KEY")
	}
	if secret == "" {
		secret = os.Getenv("BITFLYER_API_SECRET")
	}
	if key != "" && secret != "" {
		b.SetCredentials(key, secret)
	}
	return b
}

func main() {
	app := cli.NewApp()
	app.Name = "tfctl"
	app.Usage = "command line interface for the tradeforge exchange adapters"
	app.EnableBashCompletion = true
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "apikey",
			Usage:       "API key for authenticated requests",
			Destination: &apiKey,
		},
		&cli.StringFlag{
			Name:        "apisecret",
			Usage:       "API secret for authenticated requests",
			Destination: &apiSecret,
		},
		&cli.StringFlag{
			Name:        "env",
			Value:       ".env",
			Usage:       "path to an env file holding credentials",
			Destination: &envFile,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Value:       defaultTimeout,
			Usage:       "the default context timeout value for requests",
			Destination: &timeout,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Usage:       "log raw requests and responses",
			Destination: &verbose,
		},
	}
	app.Before = func(_ *cli.Context) error {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", envFile, err)
		}
		return nil
	}
	app.Commands = []*cli.Command{
		marketsCommand,
		tickerCommand,
		boardCommand,
		tradesCommand,
		healthCommand,
		boardStateCommand,
		chatsCommand,
		balanceCommand,
		ordersCommand,
		executionsCommand,
		positionsCommand,
		depositsCommand,
		withdrawalsCommand,
		addressesCommand,
		feeCommand,
		withdrawCommand,
		chainCommand,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
