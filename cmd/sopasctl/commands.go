package main

import (
	"fmt"
	"io"
	"time"

	"github.com/SscSPs/sopas_backend/internal/apperrors"
	"github.com/SscSPs/sopas_backend/internal/core/domain"
	"github.com/SscSPs/sopas_backend/internal/utils"
	"github.com/SscSPs/sopas_backend/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
)

func migrateCommand(env *runtime) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "apply pending database migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Usage: "migrations source", EnvVars: []string{"MIGRATIONS_PATH"}},
		},
		Action: func(cCtx *cli.Context) error {
			if env.cfg.DatabaseURL == "" {
				return errNoDatabaseURL
			}
			path := env.cfg.MigrationsPath
			if p := cCtx.String("path"); p != "" {
				path = p
			}
			applied, err := database.RunMigrations(env.cfg.DatabaseURL, path)
			if err != nil {
				return err
			}
			if applied {
				fmt.Fprintln(cCtx.App.Writer, "migrations applied")
			} else {
				fmt.Fprintln(cCtx.App.Writer, "no new migrations")
			}
			return nil
		},
	}
}

func jornadaCommand(env *runtime) *cli.Command {
	return &cli.Command{
		Name:  "jornada",
		Usage: "open, inspect and close business days",
		Subcommands: []*cli.Command{
			{
				Name:  "abrir",
				Usage: "open today's jornada",
				Action: func(cCtx *cli.Context) error {
					svc, err := env.container(cCtx.Context)
					if err != nil {
						return err
					}
					j, err := svc.Jornada.OpenToday(cCtx.Context)
					if err != nil {
						return cliError(err)
					}
					printJornada(cCtx.App.Writer, j)
					return nil
				},
			},
			{
				Name:  "activa",
				Usage: "show the open jornada",
				Action: func(cCtx *cli.Context) error {
					svc, err := env.container(cCtx.Context)
					if err != nil {
						return err
					}
					j, err := svc.Jornada.GetActive(cCtx.Context)
					if err != nil {
						return cliError(err)
					}
					printJornada(cCtx.App.Writer, j)
					return nil
				},
			},
			{
				Name:      "cerrar",
				Usage:     "close a jornada and print its snapshot",
				ArgsUsage: "<jornada-id>",
				Action: func(cCtx *cli.Context) error {
					id, err := requireArg(cCtx, "jornada-id")
					if err != nil {
						return err
					}
					svc, err := env.container(cCtx.Context)
					if err != nil {
						return err
					}
					j, err := svc.Jornada.Close(cCtx.Context, id)
					if err != nil {
						return cliError(err)
					}
					printJornada(cCtx.App.Writer, j)
					return nil
				},
			},
			{
				Name:      "dashboard",
				Usage:     "show the live rollup of a jornada",
				ArgsUsage: "<jornada-id>",
				Action: func(cCtx *cli.Context) error {
					id, err := requireArg(cCtx, "jornada-id")
					if err != nil {
						return err
					}
					svc, err := env.container(cCtx.Context)
					if err != nil {
						return err
					}
					d, err := svc.Jornada.Dashboard(cCtx.Context, id)
					if err != nil {
						return cliError(err)
					}
					w := cCtx.App.Writer
					fmt.Fprintf(w, "pedidos:    %d\n", d.TotalPedidos)
					fmt.Fprintf(w, "recaudado:  %s\n", utils.FormatMonto(d.TotalRecaudado))
					fmt.Fprintf(w, "pendientes: %d\n", d.Pendientes)
					fmt.Fprintf(w, "entregados: %d\n", d.Entregados)
					fmt.Fprintf(w, "cancelados: %d\n", d.Cancelados)
					return nil
				},
			},
		},
	}
}

func catalogoCommand(env *runtime) *cli.Command {
	return &cli.Command{
		Name:  "catalogo",
		Usage: "inspect and change product prices",
		Subcommands: []*cli.Command{
			{
				Name:  "listar",
				Usage: "list products and prices",
				Action: func(cCtx *cli.Context) error {
					svc, err := env.container(cCtx.Context)
					if err != nil {
						return err
					}
					tipos, err := svc.Catalog.ListTiposSopa(cCtx.Context)
					if err != nil {
						return cliError(err)
					}
					for _, t := range tipos {
						fmt.Fprintf(cCtx.App.Writer, "%-12s %-30s %s\n", t.Codigo, t.Nombre, utils.FormatMonto(t.Precio))
					}
					return nil
				},
			},
			{
				Name:      "precio",
				Usage:     "show a product's price, or change it with --set",
				ArgsUsage: "<codigo>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "set", Usage: "new unit price, e.g. 190.00"},
				},
				Action: func(cCtx *cli.Context) error {
					codigo, err := requireArg(cCtx, "codigo")
					if err != nil {
						return err
					}
					svc, err := env.container(cCtx.Context)
					if err != nil {
						return err
					}

					if raw := cCtx.String("set"); raw != "" {
						precio, err := decimal.NewFromString(raw)
						if err != nil {
							return fmt.Errorf("invalid price %q: %w", raw, err)
						}
						t, err := svc.Catalog.UpdatePrice(cCtx.Context, codigo, precio)
						if err != nil {
							return cliError(err)
						}
						fmt.Fprintf(cCtx.App.Writer, "%s %s\n", t.Codigo, utils.FormatMonto(t.Precio))
						return nil
					}

					precio, err := svc.Catalog.GetPrice(cCtx.Context, codigo)
					if err != nil {
						return cliError(err)
					}
					fmt.Fprintf(cCtx.App.Writer, "%s %s\n", codigo, utils.FormatMonto(precio))
					return nil
				},
			},
		},
	}
}

func requireArg(cCtx *cli.Context, name string) (string, error) {
	if cCtx.NArg() < 1 {
		return "", fmt.Errorf("missing argument <%s>", name)
	}
	return cCtx.Args().First(), nil
}

// cliError shows the user-facing message for domain errors and the full chain otherwise.
func cliError(err error) error {
	if apperrors.IsKnown(err) {
		return cli.Exit(apperrors.Message(err), 1)
	}
	return err
}

func printJornada(w io.Writer, j *domain.Jornada) {
	fmt.Fprintf(w, "id:     %s\n", j.ID)
	fmt.Fprintf(w, "fecha:  %s\n", j.Fecha.Format(time.DateOnly))
	fmt.Fprintf(w, "estado: %s\n", j.Estado)
	if j.ClosedAt == nil {
		return
	}
	fmt.Fprintf(w, "cerrada:        %s\n", j.ClosedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "pedidos:        %d\n", j.TotalPedidos)
	fmt.Fprintf(w, "recaudado:      %s\n", utils.FormatMonto(j.TotalRecaudado))
	fmt.Fprintf(w, "efectivo:       %s\n", utils.FormatMonto(j.TotalEfectivo))
	fmt.Fprintf(w, "transferencia:  %s\n", utils.FormatMonto(j.TotalTransferencia))
	fmt.Fprintf(w, "cancelados:     %d\n", j.CanceladosAlCierre)
}
