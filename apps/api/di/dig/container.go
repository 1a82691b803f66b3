package dig_container

import (
	"log"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/trezcool/gpatracker/apps/api/echo"
	"github.com/trezcool/gpatracker/core"
	"github.com/trezcool/gpatracker/core/catalog"
	"github.com/trezcool/gpatracker/core/grading"
	"github.com/trezcool/gpatracker/core/record"
	logsvc "github.com/trezcool/gpatracker/services/logger"
	"github.com/trezcool/gpatracker/storage/slot"
)

type StoreLoggerParam struct {
	dig.In
	Logger core.Logger `name:"storeLogger"`
}

func newLogger(conf *core.Config) core.Logger {
	return logsvc.New(conf, "API")
}

func newStoreLogger(conf *core.Config) core.Logger {
	return logsvc.New(conf, "STORE")
}

func newValidator() (*validator.Validate, ut.Translator) {
	validate, translator := core.NewValidator()
	grading.InitValidators(validate, translator)
	return validate, translator
}

// newCatalog loads the catalog file when one is configured, the built-in catalog otherwise.
func newCatalog(conf *core.Config, validate *validator.Validate) (*catalog.Catalog, error) {
	if conf.Catalog.Path == "" {
		return catalog.Default(), nil
	}
	f, err := os.Open(conf.Catalog.Path)
	if err != nil {
		return nil, errors.Wrap(err, "opening catalog")
	}
	defer f.Close()
	return catalog.Load(f, validate)
}

func newStore(
	conf *core.Config,
	cat *catalog.Catalog,
	s core.SlotCloser,
	loggerParam StoreLoggerParam,
	validate *validator.Validate,
	translator ut.Translator,
) (*record.Store, error) {
	layout := record.Layout{Years: conf.Record.Years, SemestersPerYear: conf.Record.SemestersPerYear}
	return record.NewStore(
		layout,
		cat,
		s,
		loggerParam.Logger,
		record.WithWriteTimeout(conf.Storage.WriteTimeout),
		record.WithValidator(validate, translator),
	)
}

func newServer(
	conf *core.Config,
	logger core.Logger,
	store *record.Store,
	validate *validator.Validate,
	translator ut.Translator,
) *echoapi.Server {
	return echoapi.NewServer(echoapi.ServerDeps{
		Conf:       conf,
		Logger:     logger,
		Store:      store,
		Validate:   validate,
		Translator: translator,
	})
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newStoreLogger, dig.Name("storeLogger")))
	must(c.Provide(slot.Open))
	must(c.Provide(newValidator))
	must(c.Provide(newCatalog))
	must(c.Provide(newStore))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
