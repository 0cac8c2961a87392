package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/apex/log"
	logcli "github.com/apex/log/handlers/cli"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/lmoura/vidcat/internal/catalog"
	"github.com/lmoura/vidcat/internal/config"
	"github.com/lmoura/vidcat/internal/db"
	"github.com/lmoura/vidcat/internal/lock"
	"github.com/lmoura/vidcat/internal/migration"
	"github.com/lmoura/vidcat/internal/scanner"
	"github.com/lmoura/vidcat/internal/search"
	"github.com/lmoura/vidcat/internal/service"
)

var Version = "v0.0.0"

const appName = "vidcat"

func main() {
	app := &cli.App{
		Name:    appName,
		Version: Version,
		Usage:   "catalog video files by camera filename conventions",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to configuration file",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"debug"},
				Usage:   "debug log level",
			},
		},
		Before: func(c *cli.Context) error {
			log.SetHandler(logcli.New(os.Stderr))
			if c.Bool("verbose") {
				log.SetLevel(log.DebugLevel)
			}
			return config.Load(c.String("config"))
		},
		Commands: []*cli.Command{
			scanCommand(),
			importCommand(),
			setCommand(),
			tagCommand(),
			favoriteCommand(),
			removeCommand(),
			exportCommand(),
			statsCommand(),
			searchCommand(),
			resetCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("%s", err)
	}
}

// withService connects to the database, runs pending migrations and
// hands a ready service to fn.
func withService(ctx context.Context, fn func(s *service.CatalogService) error) error {
	cfg := config.Config()

	database, err := db.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database failed: %w", err)
	}
	defer func() { _ = database.Close(ctx) }()
	log.Debug("Connected to database")

	m := migration.Migrator{
		CurrentVersion: Version,
		Database:       database,
		Config:         cfg,
	}
	if err = m.Run(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	s := service.NewService(service.Settings{
		Database: database,
		Locker:   lock.NewLocker(),
	})
	return fn(s)
}

func scanCommand() *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Usage:     "add video files of a directory to the working set",
		ArgsUsage: "<directory>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "camera",
				Usage: "camera model label, selects the filename grammar",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected a directory to scan")
			}
			camera := c.String("camera")
			if camera == "" {
				camera = config.Config().CameraModel
			}

			files, err := scanner.Scan(c.Args().First())
			if err != nil {
				return err
			}

			return withService(c.Context, func(s *service.CatalogService) error {
				result, err := s.AddVideos(c.Context, camera, files)
				if err != nil {
					return err
				}
				fmt.Printf("Added %d, skipped %d\n", result.Added, result.Skipped)
				return nil
			})
		},
	}
}

func importCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "merge exported catalog files into the working set",
		ArgsUsage: "<catalog.json>...",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("expected at least one catalog file")
			}

			payloads := make([][]byte, 0, c.NArg())
			for _, path := range c.Args().Slice() {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				payloads = append(payloads, data)
			}

			return withService(c.Context, func(s *service.CatalogService) error {
				result, err := s.ImportCatalogs(c.Context, payloads)
				if err != nil {
					return err
				}
				fmt.Printf("Imported %d, skipped %d, invalid entries %d, rejected files %d\n",
					result.Imported, result.Skipped, result.Invalid, len(result.Errors))
				return nil
			})
		},
	}
}

func setCommand() *cli.Command {
	simple := func(name, usage string, set func(s *service.CatalogService, ctx context.Context, filename, value string) error) *cli.Command {
		return &cli.Command{
			Name:      name,
			Usage:     usage,
			ArgsUsage: "<filename> <value>",
			Action: func(c *cli.Context) error {
				if c.NArg() != 2 {
					return fmt.Errorf("expected a filename and a value")
				}
				return withService(c.Context, func(s *service.CatalogService) error {
					return set(s, c.Context, c.Args().Get(0), c.Args().Get(1))
				})
			},
		}
	}

	return &cli.Command{
		Name:  "set",
		Usage: "annotate a working set entry",
		Subcommands: []*cli.Command{
			simple("title", "set the title", func(s *service.CatalogService, ctx context.Context, f, v string) error {
				return s.SetTitle(ctx, f, v)
			}),
			simple("date", "set the recording date (YYYY-MM-DD)", func(s *service.CatalogService, ctx context.Context, f, v string) error {
				return s.SetDate(ctx, f, v)
			}),
			simple("location", "set the location", func(s *service.CatalogService, ctx context.Context, f, v string) error {
				return s.SetLocation(ctx, f, v)
			}),
			simple("notes", "set free form notes", func(s *service.CatalogService, ctx context.Context, f, v string) error {
				return s.SetNotes(ctx, f, v)
			}),
			simple("thumbnail", "set the thumbnail data URL", func(s *service.CatalogService, ctx context.Context, f, v string) error {
				return s.SetThumbnail(ctx, f, v)
			}),
			{
				Name:      "field",
				Usage:     "set a custom field",
				ArgsUsage: "<filename> <key> [value]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "delete",
						Usage: "remove the field instead",
					},
				},
				Action: func(c *cli.Context) error {
					if c.Bool("delete") {
						if c.NArg() != 2 {
							return fmt.Errorf("expected a filename and a key")
						}
						return withService(c.Context, func(s *service.CatalogService) error {
							return s.RemoveCustomField(c.Context, c.Args().Get(0), c.Args().Get(1))
						})
					}
					if c.NArg() != 3 {
						return fmt.Errorf("expected a filename, a key and a value")
					}
					return withService(c.Context, func(s *service.CatalogService) error {
						return s.SetCustomField(c.Context, c.Args().Get(0), c.Args().Get(1), c.Args().Get(2))
					})
				},
			},
		},
	}
}

func tagCommand() *cli.Command {
	action := func(add bool) cli.ActionFunc {
		return func(c *cli.Context) error {
			if c.NArg() != 2 {
				return fmt.Errorf("expected a filename and a tag")
			}
			return withService(c.Context, func(s *service.CatalogService) error {
				if add {
					return s.AddTag(c.Context, c.Args().Get(0), c.Args().Get(1))
				}
				return s.RemoveTag(c.Context, c.Args().Get(0), c.Args().Get(1))
			})
		}
	}

	return &cli.Command{
		Name:  "tag",
		Usage: "manage entry tags",
		Subcommands: []*cli.Command{
			{Name: "add", Usage: "add a tag", ArgsUsage: "<filename> <tag>", Action: action(true)},
			{Name: "remove", Usage: "remove a tag", ArgsUsage: "<filename> <tag>", Action: action(false)},
		},
	}
}

func favoriteCommand() *cli.Command {
	return &cli.Command{
		Name:      "favorite",
		Usage:     "mark an entry as favorite",
		ArgsUsage: "<filename>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "off",
				Usage: "clear the favorite mark",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected a filename")
			}
			return withService(c.Context, func(s *service.CatalogService) error {
				return s.SetFavorite(c.Context, c.Args().First(), !c.Bool("off"))
			})
		},
	}
}

func removeCommand() *cli.Command {
	return &cli.Command{
		Name:      "remove",
		Usage:     "remove an entry of the working set",
		ArgsUsage: "<filename>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected a filename")
			}
			return withService(c.Context, func(s *service.CatalogService) error {
				return s.RemoveVideo(c.Context, c.Args().First())
			})
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "write the working set as a catalog file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format: json or csv",
				Value: "json",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "output file path",
			},
			&cli.StringFlag{
				Name:  "camera",
				Usage: "camera model written in the catalog header",
			},
		},
		Action: func(c *cli.Context) error {
			format := c.String("format")
			if format != "json" && format != "csv" {
				return fmt.Errorf("unknown format: %s", format)
			}

			output := c.String("output")
			if output == "" {
				output = filepath.Join(config.Config().Export.Directory, "catalog."+format)
			}

			return withService(c.Context, func(s *service.CatalogService) error {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()

				if format == "csv" {
					if err = s.ExportCSV(c.Context, f); err != nil {
						return err
					}
				} else {
					camera := c.String("camera")
					if camera == "" {
						camera = config.Config().CameraModel
					}
					doc, err := s.ExportJSON(c.Context, camera)
					if err != nil {
						return err
					}
					if err = catalog.WriteJSON(f, doc); err != nil {
						return err
					}
				}

				log.Infof("Catalog written to %s", output)
				return nil
			})
		},
	}
}

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "show working set statistics",
		Action: func(c *cli.Context) error {
			return withService(c.Context, func(s *service.CatalogService) error {
				stats, err := s.Stats(c.Context)
				if err != nil {
					return err
				}

				tw := table.NewWriter()
				tw.SetStyle(table.StyleRounded)
				tw.AppendHeader(table.Row{"Metric", "Count"})
				tw.AppendRow(table.Row{"Videos", stats.Total})
				tw.AppendRow(table.Row{"With title", stats.WithTitle})
				tw.AppendRow(table.Row{"With location", stats.WithLocation})
				tw.AppendRow(table.Row{"With tags", stats.WithTags})
				tw.AppendRow(table.Row{"Favorites", stats.Favorites})
				fmt.Println(tw.Render())

				cameras := make([]string, 0, len(stats.ByCamera))
				for camera := range stats.ByCamera {
					cameras = append(cameras, camera)
				}
				sort.Strings(cameras)

				tw = table.NewWriter()
				tw.SetStyle(table.StyleRounded)
				tw.AppendHeader(table.Row{"Camera", "Videos"})
				for _, camera := range cameras {
					tw.AppendRow(table.Row{camera, stats.ByCamera[camera]})
				}
				fmt.Println(tw.Render())
				return nil
			})
		},
	}
}

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "find entries by text, camera or favorite mark",
		ArgsUsage: "[text]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "camera",
				Usage: "keep only entries of this camera model",
			},
			&cli.BoolFlag{
				Name:  "favorites",
				Usage: "keep only favorites",
			},
		},
		Action: func(c *cli.Context) error {
			q := search.Query{
				Text:          strings.Join(c.Args().Slice(), " "),
				Camera:        c.String("camera"),
				FavoritesOnly: c.Bool("favorites"),
			}

			return withService(c.Context, func(s *service.CatalogService) error {
				videos, err := s.Search(c.Context, q)
				if err != nil {
					return err
				}

				tw := table.NewWriter()
				tw.SetStyle(table.StyleRounded)
				tw.AppendHeader(table.Row{"File", "Title", "Date", "Camera", "Tags"})
				for _, v := range videos {
					tw.AppendRow(table.Row{
						v.Filename,
						v.Metadata.Title,
						v.Metadata.Date,
						v.Metadata.CameraModel,
						strings.Join(v.Metadata.Tags, ", "),
					})
				}
				fmt.Println(tw.Render())
				return nil
			})
		},
	}
}

func resetCommand() *cli.Command {
	return &cli.Command{
		Name:  "reset",
		Usage: "drop the entire working set",
		Action: func(c *cli.Context) error {
			return withService(c.Context, func(s *service.CatalogService) error {
				return s.Reset(c.Context)
			})
		},
	}
}
