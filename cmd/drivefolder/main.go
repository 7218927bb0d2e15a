// Command drivefolder manages pipeline output files in a Google Drive
// folder: listing, uploading, bulk cleanup, and a health probe.
package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	drivefolder "github.com/okineko/go-drivefolder"
	"github.com/okineko/go-drivefolder/auth"
	"github.com/okineko/go-drivefolder/config"
	"github.com/okineko/go-drivefolder/logger"
)

func main() {
	app := &cli.App{
		Name:  "drivefolder",
		Usage: "manage pipeline output files in a Google Drive folder",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "folder",
				Usage:   "Drive folder ID all operations are scoped to",
				EnvVars: []string{"OUTPUT_FOLDER_ID"},
			},
			&cli.StringFlag{
				Name:    "credentials",
				Usage:   "path to a service-account JSON key",
				EnvVars: []string{"GDRIVE_CREDENTIALS_FILE"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "minimum log level (trace, debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			listCommand(),
			cleanCommand(),
			uploadCommand(),
			healthCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

// setup resolves configuration (flags override environment), then
// builds the gateway, manager, and scope. The single gateway is shared
// by the manager and the uploader.
func setup(c *cli.Context) (*drivefolder.Manager, drivefolder.Gateway, drivefolder.Scope, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, nil, drivefolder.Scope{}, err
	}
	logger.SetLevel(cfg.LogLevel)

	service, err := auth.NewDriveService(c.Context, auth.Config{
		CredentialsFile: cfg.CredentialsFile,
	})
	if err != nil {
		return nil, nil, drivefolder.Scope{}, err
	}

	gateway := drivefolder.NewDriveGateway(service)
	manager := drivefolder.New(gateway,
		drivefolder.WithPageSize(cfg.PageSize),
		drivefolder.WithMaxPageFetches(cfg.MaxPageFetches),
		drivefolder.WithLogger(logger.Log),
	)
	return manager, gateway, drivefolder.Scope{FolderID: cfg.FolderID}, nil
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	if v := c.String("folder"); v != "" {
		os.Setenv("OUTPUT_FOLDER_ID", v)
	}
	if v := c.String("credentials"); v != "" {
		os.Setenv("GDRIVE_CREDENTIALS_FILE", v)
	}
	if v := c.String("log-level"); v != "" {
		os.Setenv("LOG_LEVEL", v)
	}
	return config.Load()
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list files in the folder",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prefix", Usage: "only names starting with this prefix"},
			&cli.IntFlag{Name: "limit", Usage: "stop after this many records"},
			&cli.BoolFlag{Name: "trashed", Usage: "include trashed files"},
		},
		Action: func(c *cli.Context) error {
			manager, _, scope, err := setup(c)
			if err != nil {
				return err
			}

			filter := drivefolder.Filter{NamePrefix: c.String("prefix")}
			var records []drivefolder.FileRecord
			if c.Bool("trashed") {
				records, err = manager.ListTrashed(c.Context, scope, filter)
			} else {
				records, err = manager.ListFiles(c.Context, scope, filter, c.Int("limit"))
			}
			if err != nil {
				return err
			}

			rows := pterm.TableData{{"ID", "Name", "Size", "Trashed"}}
			for _, rec := range records {
				rows = append(rows, []string{
					rec.ID, rec.Name, fmt.Sprintf("%d", rec.Size), fmt.Sprintf("%v", rec.Trashed),
				})
			}
			if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
				return err
			}
			pterm.Info.Printfln("%d file(s)", len(records))
			return nil
		},
	}
}

func cleanCommand() *cli.Command {
	return &cli.Command{
		Name:  "clean",
		Usage: "remove files from the folder by name prefix",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prefix", Usage: "only names starting with this prefix (empty clears the folder)"},
			&cli.BoolFlag{Name: "trash", Usage: "move to trash instead of deleting permanently"},
		},
		Action: func(c *cli.Context) error {
			manager, _, scope, err := setup(c)
			if err != nil {
				return err
			}

			prefix := c.String("prefix")
			var report *drivefolder.Report
			if c.Bool("trash") {
				report, err = manager.TrashByPrefix(c.Context, scope, prefix)
			} else {
				report, err = manager.DeleteByPrefix(c.Context, scope, prefix)
			}
			if err != nil {
				return err
			}

			pterm.Success.Printfln("removed %d file(s)", len(report.SucceededIDs))
			for _, item := range report.Failed {
				pterm.Warning.Printfln("failed: %s (%s): %s", item.Name, item.ID, item.Reason)
			}
			if !report.AllSucceeded() {
				return cli.Exit(fmt.Sprintf("%d file(s) could not be removed", len(report.Failed)), 1)
			}
			return nil
		},
	}
}

func uploadCommand() *cli.Command {
	return &cli.Command{
		Name:      "upload",
		Usage:     "upload local files into the folder",
		ArgsUsage: "<path> [<path>...]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit("upload requires at least one file path", 1)
			}
			_, gateway, scope, err := setup(c)
			if err != nil {
				return err
			}
			uploader := drivefolder.NewUploader(gateway,
				drivefolder.WithUploadLogger(logger.Log))

			for _, path := range c.Args().Slice() {
				rec, err := uploader.UploadFile(c.Context, path, scope)
				if err != nil {
					return err
				}
				pterm.Success.Printfln("uploaded %s (ID: %s)", rec.Name, rec.ID)
			}
			return nil
		},
	}
}

func healthCommand() *cli.Command {
	return &cli.Command{
		Name:  "health",
		Usage: "verify round-trip access to the folder",
		Action: func(c *cli.Context) error {
			manager, _, scope, err := setup(c)
			if err != nil {
				return err
			}

			ok, message := manager.Healthcheck(c.Context, scope)
			if !ok {
				pterm.Error.Printfln("[FAIL] %s", message)
				return cli.Exit("health check failed: folder is unreachable", 1)
			}
			pterm.Success.Printfln("[OK] %s", message)
			return nil
		},
	}
}
