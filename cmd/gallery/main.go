package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli"
	"golang.org/x/term"

	"github.com/timmy/photofeed/internal/config"
	"github.com/timmy/photofeed/internal/gallery"
	"github.com/timmy/photofeed/internal/logger"
	"github.com/timmy/photofeed/internal/ui"
)

func main() {
	app := cli.NewApp()
	app.Name = "gallery"
	app.Usage = "Browse the public photo feed in the terminal"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "config, c",
			Usage:  "path to a YAML config file",
			EnvVar: "CONFIG_PATH",
		},
		cli.StringFlag{
			Name:  "api-url",
			Usage: "base URL of the photo proxy (default from gallery.api_url)",
		},
		cli.DurationFlag{
			Name:  "timeout",
			Usage: "per-fetch timeout (default from gallery.timeout)",
		},
	}
	app.Action = galleryAction

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func galleryAction(ctx *cli.Context) error {
	cfg, err := config.Load(ctx.String("config"))
	if err != nil {
		return err
	}

	// Keep the terminal for the gallery; only warnings go to stderr
	logger.SetDefaultLogger(logger.New(&logger.Config{
		Level:       "warn",
		Format:      "text",
		Output:      os.Stderr,
		ServiceName: "gallery",
	}))

	apiURL := cfg.Gallery.APIURL
	if ctx.IsSet("api-url") {
		apiURL = ctx.String("api-url")
	}
	timeout := cfg.Gallery.Timeout
	if ctx.IsSet("timeout") {
		timeout = ctx.Duration("timeout")
	}

	width := ui.DefaultWidth
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}

	controller := gallery.NewController(gallery.NewAPIClient(apiURL, timeout), timeout)
	defer controller.Close()

	controller.Subscribe(func(st gallery.State) {
		if st.Status == gallery.StatusLoading {
			fmt.Println(ui.DimStyle.Render("Loading photos..."))
			return
		}
		if st.Status == gallery.StatusFailed {
			logger.Warn("Feed load failed: filter=%s, err=%s", st.Selection.Kind(), st.Err)
		}
		fmt.Print(ui.RenderState(st, width))
		fmt.Print(prompt())
	})

	fmt.Print(ui.Help())
	controller.Start()

	return repl(controller)
}

func repl(controller *gallery.Controller) error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		cmd, err := ui.ParseCommand(scanner.Text())
		if err != nil {
			fmt.Println(ui.ErrorStyle.Render(err.Error()))
			fmt.Print(prompt())
			continue
		}

		issued := true
		switch cmd.Kind {
		case ui.CmdNone:
			fmt.Print(prompt())
			continue
		case ui.CmdQuit:
			return nil
		case ui.CmdHelp:
			fmt.Print(ui.Help())
			fmt.Print(prompt())
			continue
		case ui.CmdReload:
			controller.Reload()
		case ui.CmdHome:
			issued = controller.ClearSelection()
		case ui.CmdTag:
			issued = controller.SelectTag(cmd.Tag)
		case ui.CmdAuthor:
			cards := gallery.BuildCards(controller.State().Photos)
			if cmd.Index > len(cards) {
				fmt.Println(ui.ErrorStyle.Render(fmt.Sprintf("no card #%d on screen", cmd.Index)))
				fmt.Print(prompt())
				continue
			}
			card := cards[cmd.Index-1]
			issued = controller.SelectAuthor(card.AuthorName, card.AuthorID)
		}

		if !issued {
			fmt.Println(ui.DimStyle.Render("Already showing that view, use r to reload"))
			fmt.Print(prompt())
		}
	}
	return scanner.Err()
}

func prompt() string {
	return ui.CommandStyle.Render(time.Now().Format("15:04:05")+" >") + " "
}
