package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/Aashish23092/e3w-credit-analysis/dto"
	"github.com/Aashish23092/e3w-credit-analysis/repository"
	"github.com/Aashish23092/e3w-credit-analysis/scoring"
	"github.com/Aashish23092/e3w-credit-analysis/service"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

const (
	debugFlag    = "debug"
	formatFlag   = "format"
	dossiersFlag = "dossiers"
	idFlag       = "id"
)

var version = "v0.0.1-default"

// Flags are built per call: urfave flags keep parse state, and tests run
// the app several times.
func newIDFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  idFlag,
		Usage: "Catalog dossier id, used instead of a credit file argument",
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "e3w",
		Version: version,
		Usage:   "Credit file scoring from the command line",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  debugFlag,
				Usage: "Prints verbose logs (optional, default: false)",
			},
			&cli.StringFlag{
				Name:  formatFlag,
				Usage: "Output format [json, yaml]",
				Value: formatJSON,
			},
			&cli.StringFlag{
				Name:  dossiersFlag,
				Usage: "Path to a dossier catalog JSON file (optional, defaults to the demo catalog)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool(debugFlag) {
				initLogging(true)
			}

			switch strings.ToLower(cmd.String(formatFlag)) {
			case formatJSON, formatYAML, "yml":
			default:
				return ctx, fmt.Errorf("unsupported format %q, use json or yaml", cmd.String(formatFlag))
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			listCommand(),
			analyzeCommand(),
			reportCommand(),
			inspectCommand(),
			scheduleCommand(),
		},
	}
}

// analysisService builds the service on the catalog selected by --dossiers.
func analysisService(cmd *cli.Command, annualRate float64) (*service.AnalysisService, error) {
	repo, err := repository.NewDossierRepository(cmd.String(dossiersFlag))
	if err != nil {
		return nil, err
	}
	return service.NewAnalysisService(repo, annualRate), nil
}

// creditFile returns the dossier named by --id, or the one decoded from the
// file argument. YAML is picked by extension, anything else is read as JSON.
func creditFile(cmd *cli.Command, svc *service.AnalysisService) (dto.CreditFile, error) {
	if id := cmd.Int(idFlag); id != 0 {
		f, err := svc.GetDossier(id, false)
		if err != nil {
			return dto.CreditFile{}, err
		}
		return *f, nil
	}

	path := cmd.Args().First()
	if path == "" {
		return dto.CreditFile{}, errors.New("a credit file argument or --id is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return dto.CreditFile{}, fmt.Errorf("reading credit file: %w", err)
	}

	var f dto.CreditFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	default:
		err = json.Unmarshal(data, &f)
	}
	if err != nil {
		return dto.CreditFile{}, fmt.Errorf("decoding %s: %w", path, err)
	}

	log.WithField("file", path).Debug("credit file loaded")
	return f, nil
}

func printResult(cmd *cli.Command, v any) error {
	var (
		out []byte
		err error
	)

	switch strings.ToLower(cmd.String(formatFlag)) {
	case formatYAML, "yml":
		out, err = yaml.Marshal(v)
	default:
		out, err = json.MarshalIndent(v, "", "  ")
		out = append(out, '\n')
	}
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	_, err = cmd.Root().Writer.Write(out)
	return err
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List catalog dossiers with their scores",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "Case-insensitive search on client name and purpose",
			},
			&cli.StringFlag{
				Name:  "status",
				Usage: "Status filter [pending, approved, rejected, simulation]",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			svc, err := analysisService(cmd, scoring.DefaultAnnualRate)
			if err != nil {
				return err
			}

			status := dto.FileStatus(cmd.String("status"))
			switch status {
			case "", dto.FileStatusPending, dto.FileStatusApproved, dto.FileStatusRejected, dto.FileStatusSimulation:
			default:
				return fmt.Errorf("%w: status %q", dto.ErrInvalidEnum, status)
			}

			return printResult(cmd, svc.ListDossiers(cmd.String("query"), status))
		},
	}
}

func analyzeCommand() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Score a credit file and print the analysis",
		ArgsUsage: "<file.json|file.yaml>",
		Flags:     []cli.Flag{newIDFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			svc, err := analysisService(cmd, scoring.DefaultAnnualRate)
			if err != nil {
				return err
			}

			f, err := creditFile(cmd, svc)
			if err != nil {
				return err
			}

			result, err := svc.Analyze(f)
			if err != nil {
				return err
			}
			return printResult(cmd, result)
		},
	}
}

func reportCommand() *cli.Command {
	return &cli.Command{
		Name:      "report",
		Usage:     "Write the PDF analysis report of a credit file",
		ArgsUsage: "<file.json|file.yaml>",
		Flags: []cli.Flag{
			newIDFlag(),
			&cli.StringFlag{
				Name:  "brand",
				Usage: "Brand printed on generated reports",
				Value: "E3W",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Output path (optional, defaults to the report file name in the current directory)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			svc, err := analysisService(cmd, scoring.DefaultAnnualRate)
			if err != nil {
				return err
			}

			f, err := creditFile(cmd, svc)
			if err != nil {
				return err
			}
			if err := f.Validate(); err != nil {
				return err
			}

			reports := service.NewReportService(service.NewPDFProcessor(), cmd.String("brand"))
			report, err := reports.Generate(f)
			if err != nil {
				return err
			}

			out := cmd.String("out")
			if out == "" {
				out = report.FileName
			}
			if err := os.WriteFile(out, report.Content, 0o644); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}

			_, err = fmt.Fprintf(cmd.Root().Writer, "%s (%d pages)\n", out, report.Pages)
			return err
		},
	}
}

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Read back an exported analysis report",
		ArgsUsage: "<report.pdf>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return dto.ErrMissingFile
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading report: %w", err)
			}

			reports := service.NewReportService(service.NewPDFProcessor(), "")
			summary, err := reports.Inspect(filepath.Base(path), data)
			if err != nil {
				return err
			}
			return printResult(cmd, summary)
		},
	}
}

func scheduleCommand() *cli.Command {
	return &cli.Command{
		Name:  "schedule",
		Usage: "Print the monthly amortization schedule of a loan",
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:     "amount",
				Usage:    "Borrowed amount (FCFA)",
				Required: true,
			},
			&cli.IntFlag{
				Name:     "duration",
				Usage:    "Duration in months",
				Required: true,
			},
			&cli.FloatFlag{
				Name:  "rate",
				Usage: "Nominal annual interest rate in percent",
				Value: scoring.DefaultAnnualRate,
			},
			&cli.StringFlag{
				Name:  "start",
				Usage: "Start date dd/mm/yyyy (optional, defaults to today)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rate := cmd.Float("rate")
			svc, err := analysisService(cmd, rate)
			if err != nil {
				return err
			}

			result, err := svc.Schedule(dto.AmortizationRequest{
				Amount:     cmd.Float("amount"),
				Duration:   cmd.Int("duration"),
				AnnualRate: &rate,
				StartDate:  cmd.String("start"),
			})
			if err != nil {
				return err
			}
			return printResult(cmd, result)
		},
	}
}
