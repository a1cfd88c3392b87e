package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/dingla0/TranslationTracker/internal/adapter/postgres"
	"github.com/dingla0/TranslationTracker/internal/auth"
	"github.com/dingla0/TranslationTracker/internal/domain"
	"github.com/dingla0/TranslationTracker/internal/importer"
	"github.com/dingla0/TranslationTracker/internal/service/match"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply pending database migrations",
		Action: func(c *cli.Context) error {
			return withDB(c, func(ctx context.Context, e *env) error {
				return postgres.Migrate(ctx, e.pool, e.log)
			})
		},
		Subcommands: []*cli.Command{
			{
				Name:  "status",
				Usage: "List migrations and whether they are applied",
				Action: func(c *cli.Context) error {
					return withDB(c, func(ctx context.Context, e *env) error {
						states, err := postgres.MigrationStatus(ctx, e.pool)
						if err != nil {
							return err
						}
						tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
						fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tFILE")
						for _, st := range states {
							state, at := "pending", "-"
							if st.Applied {
								state, at = "applied", st.AppliedAt.Format(time.RFC3339)
							}
							fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", st.Version, state, at, st.Path)
						}
						return tw.Flush()
					})
				},
			},
		},
	}
}

func importCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Bulk-create segments from a tab-separated file",
		ArgsUsage: "<file.tsv | ->",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "Concurrent inserts",
				Value:   4,
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Parse the file and report the row count without writing",
			},
		},
		Action: func(c *cli.Context) error {
			rows, err := readRows(c.Args().First())
			if err != nil {
				return err
			}
			if c.Bool("dry-run") {
				fmt.Fprintf(c.App.Writer, "parsed %d rows\n", len(rows))
				return nil
			}

			return withDB(c, func(ctx context.Context, e *env) error {
				res, err := importer.New(e.log, e.services.Segments, c.Int("workers")).Import(ctx, rows)
				for _, rej := range res.Rejected {
					fmt.Fprintf(c.App.ErrWriter, "rejected %v\n", rej)
				}
				fmt.Fprintf(c.App.Writer, "imported %d of %d rows (%d rejected)\n",
					res.Imported, len(rows), len(res.Rejected))
				return err
			})
		},
	}
}

func readRows(path string) ([]importer.Row, error) {
	if path == "" {
		return nil, errors.New("import: file argument is required")
	}
	if path == "-" {
		return importer.ParseTSV(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := importer.ParseTSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return rows, nil
}

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Aliases:   []string{"s"},
		Usage:     "Rank stored segments against a source text",
		ArgsUsage: "<source text>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "source-language", Usage: "Source language (default from config)"},
			&cli.StringFlag{Name: "target-language", Usage: "Target language (default from config)"},
			&cli.IntFlag{Name: "similarity", Usage: "Minimum final score 0-100 (default from config)"},
			&cli.StringFlag{Name: "event", Usage: "Preferred event tag"},
			&cli.StringFlag{Name: "topic", Usage: "Preferred topic tag"},
			&cli.StringFlag{Name: "translator", Usage: "Preferred translator ID"},
			&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Usage: "Max results"},
			&cli.BoolFlag{Name: "json", Aliases: []string{"j"}, Usage: "Output as JSON"},
		},
		Action: func(c *cli.Context) error {
			input, err := searchInput(c)
			if err != nil {
				return err
			}
			return withDB(c, func(ctx context.Context, e *env) error {
				matches, err := e.services.Matches.Search(ctx, input)
				if err != nil {
					return err
				}
				if c.Bool("json") {
					return writeJSON(c.App.Writer, matchRows(matches))
				}
				return printMatches(c.App.Writer, matches)
			})
		},
	}
}

func searchInput(c *cli.Context) (match.SearchInput, error) {
	input := match.SearchInput{
		SourceText:     strings.Join(c.Args().Slice(), " "),
		SourceLanguage: c.String("source-language"),
		TargetLanguage: c.String("target-language"),
		Event:          optionalFlag(c, "event"),
		Topic:          optionalFlag(c, "topic"),
		Limit:          c.Int("limit"),
	}
	if c.IsSet("similarity") {
		v := c.Int("similarity")
		input.Threshold = &v
	}
	if raw := c.String("translator"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return input, fmt.Errorf("translator: %w", err)
		}
		input.TranslatorID = &id
	}
	return input, nil
}

func optionalFlag(c *cli.Context, name string) *string {
	if !c.IsSet(name) {
		return nil
	}
	v := c.String(name)
	return &v
}

type matchRow struct {
	ID         uuid.UUID `json:"id"`
	Score      int       `json:"score"`
	BaseScore  int       `json:"baseScore"`
	Tier       string    `json:"tier"`
	SourceText string    `json:"sourceText"`
	TargetText string    `json:"targetText"`
	UsageCount int       `json:"usageCount"`
	AvgRating  *float64  `json:"avgRating"`
}

func matchRows(matches []domain.Match) []matchRow {
	rows := make([]matchRow, len(matches))
	for i, m := range matches {
		rows[i] = matchRow{
			ID:         m.Segment.ID,
			Score:      m.Score,
			BaseScore:  m.BaseScore,
			Tier:       m.Tier.String(),
			SourceText: m.Segment.SourceText,
			TargetText: m.Segment.TargetText,
			UsageCount: m.Segment.UsageCount,
			AvgRating:  m.Segment.AvgRating,
		}
	}
	return rows
}

func printMatches(w io.Writer, matches []domain.Match) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCORE\tBASE\tTIER\tUSED\tSOURCE\tTARGET\tID")
	for _, m := range matches {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%d\t%s\t%s\t%s\n",
			m.Score, m.BaseScore, m.Tier, m.Segment.UsageCount,
			m.Segment.SourceText, m.Segment.TargetText, m.Segment.ID)
	}
	return tw.Flush()
}

func versionsCommand() *cli.Command {
	return &cli.Command{
		Name:      "versions",
		Usage:     "Show the version history of a segment",
		ArgsUsage: "<segment id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "order", Usage: "asc or desc", Value: string(domain.SortOrderDesc)},
			&cli.BoolFlag{Name: "json", Aliases: []string{"j"}, Usage: "Output as JSON"},
		},
		Action: func(c *cli.Context) error {
			id, err := uuid.Parse(c.Args().First())
			if err != nil {
				return fmt.Errorf("segment id: %w", err)
			}
			order := domain.SortOrder(strings.ToLower(c.String("order")))

			return withDB(c, func(ctx context.Context, e *env) error {
				records, err := e.services.Ledger.ListVersions(ctx, id, order)
				if err != nil {
					return err
				}
				if c.Bool("json") {
					return writeJSON(c.App.Writer, versionRows(records))
				}

				tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "VERSION\tCREATED AT\tCHANGED BY\tSOURCE\tTARGET\tREASON")
				for _, r := range records {
					reason := ""
					if r.ChangeReason != nil {
						reason = *r.ChangeReason
					}
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
						r.Version, r.CreatedAt.Format(time.RFC3339), r.ChangedBy,
						r.SourceText, r.TargetText, reason)
				}
				return tw.Flush()
			})
		},
	}
}

type versionRow struct {
	Version      int       `json:"version"`
	SourceText   string    `json:"sourceText"`
	TargetText   string    `json:"targetText"`
	ChangedBy    uuid.UUID `json:"changedBy"`
	ChangeReason *string   `json:"changeReason"`
	CreatedAt    time.Time `json:"createdAt"`
}

func versionRows(records []domain.VersionRecord) []versionRow {
	rows := make([]versionRow, len(records))
	for i, r := range records {
		rows[i] = versionRow{
			Version:      r.Version,
			SourceText:   r.SourceText,
			TargetText:   r.TargetText,
			ChangedBy:    r.ChangedBy,
			ChangeReason: r.ChangeReason,
			CreatedAt:    r.CreatedAt,
		}
	}
	return rows
}

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Mint an access token signed with the configured secret",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "user", Aliases: []string{"u"}, Usage: "User ID (default: random)"},
			&cli.StringFlag{Name: "role", Usage: "Role claim, e.g. admin"},
			&cli.DurationFlag{Name: "ttl", Usage: "Lifetime (default from config)"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			userID := uuid.New()
			if raw := c.String("user"); raw != "" {
				if userID, err = uuid.Parse(raw); err != nil {
					return fmt.Errorf("user: %w", err)
				}
			}
			ttl := cfg.Auth.AccessTokenTTL
			if c.IsSet("ttl") {
				ttl = c.Duration("ttl")
			}

			token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, ttl).
				GenerateAccessToken(userID, c.String("role"))
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, token)
			return nil
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
