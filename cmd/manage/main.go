package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/recipeapp/internal/flagx"
	"github.com/dmitrijs2005/recipeapp/internal/server"
	"github.com/dmitrijs2005/recipeapp/internal/server/config"
	"github.com/dmitrijs2005/recipeapp/internal/server/manage"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	owned := append(append([]string{}, config.Flags...), flagx.ConfigFileFlags...)
	args := flagx.StripArgs(os.Args[1:], owned)

	r := manage.NewRunner(app, app.Accounts, app.Recipes, os.Stdin, os.Stdout)
	err = r.Run(ctx, args)
	_ = app.Close()

	if err != nil {
		if !errors.Is(err, manage.ErrUsage) {
			log.Printf("%v", err)
		}
		os.Exit(1)
	}
}
