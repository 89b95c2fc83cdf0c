// backup exporta, restaura o reinicia los datos del backend REST sin levantar la consola.
//
// Uso:
//
//	go run ./cmd/backup export [-out archivo.json]
//	go run ./cmd/backup import -yes respaldo.json
//	go run ./cmd/backup reset -phrase REINICIAR
//
// Lee API_URL y el resto de la configuración igual que cmd/api.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/amazonia/internal/application/command"
	"github.com/jhoicas/amazonia/internal/bootstrap"
	"github.com/jhoicas/amazonia/internal/infrastructure/memory"
	"github.com/jhoicas/amazonia/internal/infrastructure/rest"
	"github.com/jhoicas/amazonia/pkg/config"
	"github.com/jhoicas/amazonia/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: "development", Level: cfg.App.LogLevel, Output: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := bootstrap.New(bootstrap.Options{
		Client: rest.NewClient(rest.Options{
			BaseURL: cfg.Backend.BaseURL,
			Timeout: cfg.Backend.Timeout,
			Logger:  log.Component("rest"),
		}),
		Journal:   memory.NewIncompleteSaleRepository(),
		ImageBase: cfg.App.ImageBasePath,
		StoreName: cfg.App.StoreName,
		Log:       log.Zerolog(),
	})
	if _, err := app.Store.Reload(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Cargar datos de %s: %v\n", cfg.Backend.BaseURL, err)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "export":
		err = runExport(app, os.Args[2:])
	case "import":
		err = runImport(ctx, app, os.Args[2:])
	case "reset":
		err = runReset(ctx, app, os.Args[2:])
	default:
		usage()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "uso: backup export [-out archivo] | import -yes archivo | reset -phrase REINICIAR")
	os.Exit(2)
}

func runExport(app *bootstrap.App, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("out", "", "archivo de salida (por defecto amazonia-backup-<fecha>.json)")
	_ = fs.Parse(args)

	data, filename, err := app.Backup.Export()
	if err != nil {
		return err
	}
	if *out != "" {
		filename = *out
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", filename, err)
	}
	fmt.Printf("Respaldo escrito en %s\n", filename)
	return nil
}

func runImport(ctx context.Context, app *bootstrap.App, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	yes := fs.Bool("yes", false, "confirma el reemplazo de todos los datos")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("indica el archivo de respaldo")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("leer %s: %w", fs.Arg(0), err)
	}
	out, err := app.Commands.Dispatch(ctx, command.Command{
		Kind:      command.ImportBackup,
		Confirmed: *yes,
		Payload:   command.BackupFile{Data: data},
	})
	if err != nil {
		return err
	}
	fmt.Printf("Importado: %+v\n", out)
	return nil
}

func runReset(ctx context.Context, app *bootstrap.App, args []string) error {
	fs := flag.NewFlagSet("reset", flag.ExitOnError)
	phrase := fs.String("phrase", "", "frase de confirmación")
	_ = fs.Parse(args)

	_, err := app.Commands.Dispatch(ctx, command.Command{
		Kind:      command.ResetData,
		Confirmed: *phrase != "",
		Payload:   command.ResetRequest{Phrase: *phrase},
	})
	if err != nil {
		return err
	}
	fmt.Println("Datos reiniciados")
	return nil
}
