package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/tradeforge/tradeforge/currency"
	"github.com/tradeforge/tradeforge/exchanges/order"
)

func withTimeout(c *cli.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Context, timeout)
}

var marketsCommand = &cli.Command{
	Name:  "markets",
	Usage: "list all markets across the domestic, USA and EU boards",
	Action: func(c *cli.Context) error {
		ctx, cancel := withTimeout(c)
		defer cancel()
		markets, err := setupExchange().FetchMarkets(ctx)
		if err != nil {
			return err
		}
		jsonOutput(markets)
		return nil
	},
}

var tickerCommand = &cli.Command{
	Name:      "ticker",
	Usage:     "get the ticker for a product",
	ArgsUsage: "<product_code>",
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return cli.ShowSubcommandHelp(c)
		}
		product := c.Args().Get(0)
		ctx, cancel := withTimeout(c)
		defer cancel()
		price, err := setupExchange().FetchTicker(ctx, product)
		if err != nil {
			return err
		}
		jsonOutput(price)
		return nil
	},
}

var boardCommand = &cli.Command{
	Name:      "board",
	Usage:     "get the order book for a product",
	ArgsUsage: "<product_code>",
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return cli.ShowSubcommandHelp(c)
		}
		product := c.Args().Get(0)
		ctx, cancel := withTimeout(c)
		defer cancel()
		book, err := setupExchange().FetchOrderBook(ctx, product)
		if err != nil {
			return err
		}
		jsonOutput(book)
		return nil
	},
}

var tradesCommand = &cli.Command{
	Name:      "trades",
	Usage:     "get recent public executions for a product",
	ArgsUsage: "<product_code>",
	Flags: []cli.Flag{
		&cli.Int64Flag{Name: "count", Usage: "maximum number of trades to return"},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return cli.ShowSubcommandHelp(c)
		}
		product := c.Args().Get(0)
		ctx, cancel := withTimeout(c)
		defer cancel()
		trades, err := setupExchange().FetchTrades(ctx, product, c.Int64("count"))
		if err != nil {
			return err
		}
		jsonOutput(trades)
		return nil
	},
}

var healthCommand = &cli.Command{
	Name:  "health",
	Usage: "get overall exchange status",
	Action: func(c *cli.Context) error {
		ctx, cancel := withTimeout(c)
		defer cancel()
		status, err := setupExchange().GetExchangeStatus(ctx)
		if err != nil {
			return err
		}
		jsonOutput(map[string]string{"status": status})
		return nil
	},
}

var boardStateCommand = &cli.Command{
	Name:      "boardstate",
	Usage:     "get operational state for a product's board",
	ArgsUsage: "<product_code>",
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return cli.ShowSubcommandHelp(c)
		}
		product := c.Args().Get(0)
		ctx, cancel := withTimeout(c)
		defer cancel()
		state, err := setupExchange().GetBoardState(ctx, product)
		if err != nil {
			return err
		}
		jsonOutput(state)
		return nil
	},
}

var chatsCommand = &cli.Command{
	Name:  "chats",
	Usage: "get trollbox chat log",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "from", Usage: "return entries after this date, e.g. 2026-08-30"},
	},
	Action: func(c *cli.Context) error {
		ctx, cancel := withTimeout(c)
		defer cancel()
		chats, err := setupExchange().GetChats(ctx, c.String("from"))
		if err != nil {
			return err
		}
		jsonOutput(chats)
		return nil
	},
}

var balanceCommand = &cli.Command{
	Name:  "balance",
	Usage: "get account balances",
	Action: func(c *cli.Context) error {
		ctx, cancel := withTimeout(c)
		defer cancel()
		holdings, err := setupExchange().FetchBalance(ctx)
		if err != nil {
			return err
		}
		jsonOutput(holdings)
		return nil
	},
}

var ordersCommand = &cli.Command{
	Name:  "orders",
	Usage: "manage child orders",
	Subcommands: []*cli.Command{
		{
			Name:      "list",
			Usage:     "list orders for a product",
			ArgsUsage: "<product_code>",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "open", Usage: "only open orders"},
				&cli.BoolFlag{Name: "closed", Usage: "only closed orders"},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() == 0 {
					return cli.ShowSubcommandHelp(c)
				}
				product := c.Args().Get(0)
				ctx, cancel := withTimeout(c)
				defer cancel()
				b := setupExchange()
				var details []order.Detail
				var err error
				switch {
				case c.Bool("open"):
					details, err = b.FetchOpenOrders(ctx, product)
				case c.Bool("closed"):
					details, err = b.FetchClosedOrders(ctx, product)
				default:
					details, err = b.FetchOrders(ctx, product)
				}
				if err != nil {
					return err
				}
				jsonOutput(details)
				return nil
			},
		},
		{
			Name:      "get",
			Usage:     "look up a single order by acceptance ID",
			ArgsUsage: "<product_code> <order_id>",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					return cli.ShowSubcommandHelp(c)
				}
				ctx, cancel := withTimeout(c)
				defer cancel()
				detail, err := setupExchange().FetchOrder(ctx, c.Args().Get(1), c.Args().Get(0))
				if err != nil {
					return err
				}
				jsonOutput(detail)
				return nil
			},
		},
		{
			Name:  "submit",
			Usage: "place a new order",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "product", Usage: "product code, e.g. BTC_JPY", Required: true},
				&cli.StringFlag{Name: "side", Usage: "buy or sell", Required: true},
				&cli.StringFlag{Name: "type", Usage: "limit or market", Value: "limit"},
				&cli.Float64Flag{Name: "price", Usage: "limit price"},
				&cli.Float64Flag{Name: "amount", Usage: "order size", Required: true},
				&cli.Int64Flag{Name: "expiry", Usage: "minutes until the order expires"},
				&cli.StringFlag{Name: "tif", Usage: "time in force: GTC, IOC or FOK"},
			},
			Action: func(c *cli.Context) error {
				ctx, cancel := withTimeout(c)
				defer cancel()
				resp, err := setupExchange().SubmitOrder(ctx, &order.Submit{
					Symbol:          c.String("product"),
					Side:            order.NewSide(c.String("side")),
					Type:            order.NewType(c.String("type")),
					Price:           c.Float64("price"),
					Amount:          c.Float64("amount"),
					MinutesToExpire: c.Int64("expiry"),
					TimeInForce:     c.String("tif"),
				})
				if err != nil {
					return err
				}
				jsonOutput(resp)
				return nil
			},
		},
		{
			Name:      "cancel",
			Usage:     "cancel an order by acceptance ID",
			ArgsUsage: "<product_code> <order_id>",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					return cli.ShowSubcommandHelp(c)
				}
				ctx, cancel := withTimeout(c)
				defer cancel()
				if err := setupExchange().CancelOrder(ctx, c.Args().Get(1), c.Args().Get(0)); err != nil {
					return err
				}
				log.Infof("cancel request accepted for %s", c.Args().Get(1))
				return nil
			},
		},
		{
			Name:      "cancelall",
			Usage:     "cancel all orders on a product",
			ArgsUsage: "<product_code>",
			Action: func(c *cli.Context) error {
				if c.NArg() == 0 {
					return cli.ShowSubcommandHelp(c)
				}
				product := c.Args().Get(0)
				ctx, cancel := withTimeout(c)
				defer cancel()
				if err := setupExchange().CancelAllChildOrders(ctx, product); err != nil {
					return err
				}
				log.Infof("cancel all request accepted for %s", product)
				return nil
			},
		},
	},
}

var executionsCommand = &cli.Command{
	Name:      "executions",
	Usage:     "get your own executions for a product",
	ArgsUsage: "<product_code>",
	Flags: []cli.Flag{
		&cli.Int64Flag{Name: "count", Usage: "maximum number of executions to return"},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return cli.ShowSubcommandHelp(c)
		}
		product := c.Args().Get(0)
		ctx, cancel := withTimeout(c)
		defer cancel()
		trades, err := setupExchange().FetchMyTrades(ctx, product, c.Int64("count"))
		if err != nil {
			return err
		}
		jsonOutput(trades)
		return nil
	},
}

var positionsCommand = &cli.Command{
	Name:      "positions",
	Usage:     "get open positions for a product",
	ArgsUsage: "<product_code>",
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return cli.ShowSubcommandHelp(c)
		}
		product := c.Args().Get(0)
		ctx, cancel := withTimeout(c)
		defer cancel()
		positions, err := setupExchange().FetchPositions(ctx, product)
		if err != nil {
			return err
		}
		jsonOutput(positions)
		return nil
	},
}

var depositsCommand = &cli.Command{
	Name:  "deposits",
	Usage: "get crypto deposit history",
	Action: func(c *cli.Context) error {
		ctx, cancel := withTimeout(c)
		defer cancel()
		txns, err := setupExchange().FetchDeposits(ctx)
		if err != nil {
			return err
		}
		jsonOutput(txns)
		return nil
	},
}

var withdrawalsCommand = &cli.Command{
	Name:  "withdrawals",
	Usage: "get crypto withdrawal history",
	Action: func(c *cli.Context) error {
		ctx, cancel := withTimeout(c)
		defer cancel()
		txns, err := setupExchange().FetchWithdrawals(ctx)
		if err != nil {
			return err
		}
		jsonOutput(txns)
		return nil
	},
}

var addressesCommand = &cli.Command{
	Name:  "addresses",
	Usage: "get crypto deposit addresses",
	Action: func(c *cli.Context) error {
		ctx, cancel := withTimeout(c)
		defer cancel()
		addrs, err := setupExchange().GetDepositAddresses(ctx)
		if err != nil {
			return err
		}
		jsonOutput(addrs)
		return nil
	},
}

var feeCommand = &cli.Command{
	Name:      "fee",
	Usage:     "get the account commission rate for a product",
	ArgsUsage: "<product_code>",
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return cli.ShowSubcommandHelp(c)
		}
		product := c.Args().Get(0)
		ctx, cancel := withTimeout(c)
		defer cancel()
		fee, err := setupExchange().FetchTradingFee(ctx, product)
		if err != nil {
			return err
		}
		jsonOutput(fee)
		return nil
	},
}

var withdrawCommand = &cli.Command{
	Name:  "withdraw",
	Usage: "request a JPY bank withdrawal",
	Flags: []cli.Flag{
		&cli.Float64Flag{Name: "amount", Usage: "amount of JPY to withdraw", Required: true},
		&cli.Int64Flag{Name: "bank-account-id", Usage: "registered bank account ID", Required: true},
	},
	Action: func(c *cli.Context) error {
		ctx, cancel := withTimeout(c)
		defer cancel()
		txn, err := setupExchange().Withdraw(ctx, currency.JPY, c.Float64("amount"), c.Int64("bank-account-id"))
		if err != nil {
			return err
		}
		jsonOutput(txn)
		return nil
	},
}

var chainCommand = &cli.Command{
	Name:  "chain",
	Usage: "query the chain analysis system",
	Subcommands: []*cli.Command{
		{
			Name:  "block",
			Usage: "get the latest block, or a block by hash or height",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "hash", Usage: "block hash"},
				&cli.Int64Flag{Name: "height", Usage: "block height"},
			},
			Action: func(c *cli.Context) error {
				ctx, cancel := withTimeout(c)
				defer cancel()
				b := setupExchange()
				switch {
				case c.String("hash") != "":
					block, err := b.GetBlockCA(ctx, c.String("hash"))
					if err != nil {
						return err
					}
					jsonOutput(block)
				case c.IsSet("height"):
					block, err := b.GetBlockByHeightCA(ctx, c.Int64("height"))
					if err != nil {
						return err
					}
					jsonOutput(block)
				default:
					block, err := b.GetLatestBlockCA(ctx)
					if err != nil {
						return err
					}
					jsonOutput(block)
				}
				return nil
			},
		},
		{
			Name:      "tx",
			Usage:     "get a transaction by hash",
			ArgsUsage: "<tx_hash>",
			Action: func(c *cli.Context) error {
				if c.NArg() == 0 {
					return cli.Exit("transaction hash required", 1)
				}
				ctx, cancel := withTimeout(c)
				defer cancel()
				txn, err := setupExchange().GetTransactionByHashCA(ctx, c.Args().Get(0))
				if err != nil {
					return err
				}
				jsonOutput(txn)
				return nil
			},
		},
		{
			Name:      "address",
			Usage:     "get balance information for an address",
			ArgsUsage: "<address>",
			Action: func(c *cli.Context) error {
				if c.NArg() == 0 {
					return cli.Exit("address required", 1)
				}
				ctx, cancel := withTimeout(c)
				defer cancel()
				info, err := setupExchange().GetAddressInfoCA(ctx, c.Args().Get(0))
				if err != nil {
					return err
				}
				jsonOutput(info)
				return nil
			},
		},
	},
}
