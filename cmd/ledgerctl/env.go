package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jhoicas/copyshop-ledger/internal/application/dto"
	"github.com/jhoicas/copyshop-ledger/internal/bootstrap"
	"github.com/jhoicas/copyshop-ledger/pkg/config"
	"github.com/jhoicas/copyshop-ledger/pkg/date"
	"github.com/jhoicas/copyshop-ledger/pkg/logger"
)

var verbose = flag.Bool("v", false, "log detallado en stderr")

// load lee la configuración y crea un logger que escribe en stderr para no mezclarse con la salida.
func load() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	level := "warn"
	if *verbose {
		level = "debug"
	}
	log := logger.New(logger.Config{Env: "development", Level: level, Output: os.Stderr})
	return cfg, log, nil
}

func openServices(ctx context.Context) (*bootstrap.Services, *config.Config, error) {
	cfg, log, err := load()
	if err != nil {
		return nil, nil, err
	}
	svc, err := bootstrap.New(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return svc, cfg, nil
}

// saleFilterFlags filtros de ventas comunes a summary y report.
type saleFilterFlags struct {
	from, to, category, payment string
}

func (s *saleFilterFlags) register(f *flag.FlagSet) {
	f.StringVar(&s.from, "from", "today", "primer día (YYYY-MM-DD, today o vacío = sin límite)")
	f.StringVar(&s.to, "to", "today", "último día (YYYY-MM-DD, today o vacío = sin límite)")
	f.StringVar(&s.category, "category", "", "stationery | consumable | service")
	f.StringVar(&s.payment, "payment", "", "cash | electronic")
}

// filter resuelve "today" con la zona horaria de la tienda.
func (s *saleFilterFlags) filter(loc *time.Location) dto.SaleFilter {
	day := func(v string) string {
		if strings.EqualFold(strings.TrimSpace(v), "today") {
			return date.Today(loc).String()
		}
		return v
	}
	return dto.SaleFilter{
		Category:      s.category,
		PaymentMethod: s.payment,
		DateFrom:      day(s.from),
		DateTo:        day(s.to),
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
