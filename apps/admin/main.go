package main

import (
	"context"
	"log"
	"os"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	dig_container "github.com/trezcool/gpatracker/apps/api/di/dig"
	"github.com/trezcool/gpatracker/core"
	"github.com/trezcool/gpatracker/core/record"
	logsvc "github.com/trezcool/gpatracker/services/logger"
)

var logger core.Logger

func main() {
	code := 0
	defer func() { os.Exit(code) }()

	c := dig_container.New()
	errAndDie(c.Invoke(func(
		conf *core.Config,
		slot core.SlotCloser,
		store *record.Store,
		validate *validator.Validate,
		translator ut.Translator,
	) {
		logger = logsvc.New(conf, "ADMIN")
		defer func() {
			if err := slot.Close(); err != nil {
				logger.Error("Failed to close storage", err)
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), conf.Storage.WriteTimeout+time.Second)
			defer cancel()
			if err := store.Close(ctx); err != nil {
				logger.Error("could not save changes", err)
				code = 1
			}
		}()

		// start CLI
		cli := commandLine{
			store:      store,
			validate:   validate,
			translator: translator,
			out:        os.Stdout,
			in:         os.Stdin,
			now:        time.Now,
		}
		if err := cli.run(os.Args); err != nil {
			if err != errHelp {
				logger.Error("command failed: "+err.Error(), err)
			}
			code = 1
		}
	}))
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
