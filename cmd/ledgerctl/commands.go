package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/jhoicas/copyshop-ledger/internal/bootstrap"
	"github.com/jhoicas/copyshop-ledger/internal/infrastructure/terminal"
)

// ── migrate ───────────────────────────────────────────────────────────────────

type migrateCmd struct{}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "crea o actualiza el esquema del almacén" }
func (*migrateCmd) Usage() string {
	return `ledgerctl migrate

  Aplica el esquema en el almacén configurado (STORE_DRIVER). Es idempotente.
`
}
func (*migrateCmd) SetFlags(*flag.FlagSet) {}

func (*migrateCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, _, err := load()
	if err != nil {
		fail("%v", err)
		return subcommands.ExitFailure
	}
	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		fail("%v", err)
		return subcommands.ExitFailure
	}
	defer store.Close()
	fmt.Printf("esquema aplicado (%s)\n", cfg.Store.Driver)
	return subcommands.ExitSuccess
}

// ── seed ──────────────────────────────────────────────────────────────────────

type seedCmd struct{}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "carga el catálogo de ejemplo si no hay productos" }
func (*seedCmd) Usage() string {
	return `ledgerctl seed

  Inserta productos de ejemplo (ATK y MM) con su stock inicial. No hace nada si ya hay productos.
`
}
func (*seedCmd) SetFlags(*flag.FlagSet) {}

func (*seedCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc, _, err := openServices(ctx)
	if err != nil {
		fail("%v", err)
		return subcommands.ExitFailure
	}
	defer svc.Close()

	n, err := svc.Products.Seed(ctx)
	if err != nil {
		fail("sembrar catálogo: %v", err)
		return subcommands.ExitFailure
	}
	if n == 0 {
		fmt.Println("el catálogo ya tiene productos; nada que hacer")
		return subcommands.ExitSuccess
	}
	fmt.Printf("%d productos creados\n", n)
	return subcommands.ExitSuccess
}

// ── adjust ────────────────────────────────────────────────────────────────────

type adjustCmd struct {
	product string
	delta   int
}

func (*adjustCmd) Name() string     { return "adjust" }
func (*adjustCmd) Synopsis() string { return "ajusta el stock de un producto" }
func (*adjustCmd) Usage() string {
	return `ledgerctl adjust -product <id> -delta <n>

  Delta positivo registra una entrada; negativo es una corrección (puede dejar stock negativo).
`
}

func (c *adjustCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.product, "product", "", "ID del producto")
	f.IntVar(&c.delta, "delta", 0, "cantidad a sumar (negativa para restar)")
}

func (c *adjustCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.product == "" || c.delta == 0 {
		fail("-product y -delta (distinto de cero) son requeridos")
		return subcommands.ExitUsageError
	}
	svc, _, err := openServices(ctx)
	if err != nil {
		fail("%v", err)
		return subcommands.ExitFailure
	}
	defer svc.Close()

	stock, err := svc.Adjust.AdjustStock(ctx, c.product, c.delta)
	if err != nil {
		fail("ajustar stock: %v", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("stock de %s: %d\n", c.product, stock)
	return subcommands.ExitSuccess
}

// ── summary ───────────────────────────────────────────────────────────────────

type summaryCmd struct {
	filters saleFilterFlags
	sales   bool
	style   string
	width   int
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "muestra el resumen de ventas en la terminal" }
func (*summaryCmd) Usage() string {
	return `ledgerctl summary [-from <día>] [-to <día>] [-category <c>] [-payment <m>] [-sales]

  Ingresos, costo y utilidad por categoría y por método de pago. Por defecto, el día de hoy.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.filters.register(f)
	f.BoolVar(&c.sales, "sales", false, "incluye el detalle de ventas")
	f.StringVar(&c.style, "style", "dark", "estilo glamour: dark, light, notty, ascii")
	f.IntVar(&c.width, "width", 100, "ancho de línea")
}

func (c *summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc, cfg, err := openServices(ctx)
	if err != nil {
		fail("%v", err)
		return subcommands.ExitFailure
	}
	defer svc.Close()

	report, err := svc.Reports.Build(ctx, c.filters.filter(cfg.Shop.Location()))
	if err != nil {
		fail("resumen: %v", err)
		return subcommands.ExitFailure
	}
	if err := terminal.Print(os.Stdout, terminal.SummaryMarkdown(report, c.sales), c.style, c.width); err != nil {
		fail("%v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// ── report ────────────────────────────────────────────────────────────────────

type reportCmd struct {
	filters saleFilterFlags
	out     string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "genera el reporte de ventas en PDF" }
func (*reportCmd) Usage() string {
	return `ledgerctl report -o <archivo.pdf> [-from <día>] [-to <día>] [-category <c>] [-payment <m>]

  Escribe el reporte de ventas del período en un PDF.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.filters.register(f)
	f.StringVar(&c.out, "o", "", "archivo de salida")
}

func (c *reportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.out == "" {
		fail("-o es requerido")
		return subcommands.ExitUsageError
	}
	svc, cfg, err := openServices(ctx)
	if err != nil {
		fail("%v", err)
		return subcommands.ExitFailure
	}
	defer svc.Close()

	doc, err := svc.Reports.PDF(ctx, c.filters.filter(cfg.Shop.Location()))
	if err != nil {
		fail("reporte: %v", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.out, doc, 0o644); err != nil {
		fail("escribir %s: %v", c.out, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("reporte escrito en %s (%d bytes)\n", c.out, len(doc))
	return subcommands.ExitSuccess
}
