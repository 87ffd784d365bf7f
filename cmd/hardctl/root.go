package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	appsvcs "github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/application/services"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain/models"
	domainsvcs "github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain/services"
)

// opener returns the moderation service and a func that releases it.
type opener func(ctx context.Context) (*appsvcs.ModerationService, func(), error)

// cli holds state shared by subcommands for one invocation.
type cli struct {
	open    opener
	mod     *appsvcs.ModerationService
	release func()
}

func newRootCmd(open opener) *cobra.Command {
	c := &cli{open: open}

	root := &cobra.Command{
		Use:   "hardctl",
		Short: "Moderate the hard-thing catalog",
		Long: `hardctl reviews public submissions and seeds approved items.

It connects to the store configured by STORAGE_DRIVER and DATABASE_URL
(or SQLITE_PATH), the same variables the API server reads.`,
		SilenceUsage:       true,
		PersistentPreRunE:  c.connect,
		PersistentPostRunE: c.disconnect,
	}

	root.AddCommand(
		c.pendingCmd(),
		c.statusCmd("approve", "approved", "Approve a pending item", (*appsvcs.ModerationService).Approve),
		c.statusCmd("reject", "rejected", "Reject a pending item", (*appsvcs.ModerationService).Reject),
		c.seedCmd(),
	)
	return root
}

func (c *cli) connect(cmd *cobra.Command, _ []string) error {
	mod, release, err := c.open(cmd.Context())
	if err != nil {
		return err
	}
	c.mod, c.release = mod, release
	return nil
}

func (c *cli) disconnect(*cobra.Command, []string) error {
	if c.release != nil {
		c.release()
	}
	return nil
}

func (c *cli) pendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List pending items as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := c.mod.Pending(cmd.Context())
			if err != nil {
				return err
			}
			out := make([]pendingItem, len(items))
			for i, it := range items {
				out[i] = toPendingItem(it)
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}

func (c *cli) statusCmd(use, done, short string, apply func(*appsvcs.ModerationService, context.Context, int64) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[0])
			}
			if err := apply(c.mod, cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "item %d: %s\n", id, done)
			return nil
		},
	}
}

func (c *cli) seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.json>",
		Short: "Insert approved items from a JSON file",
		Long: `seed reads a JSON array of {name, category, is_half, weight} objects
and inserts each as an approved item. Entries whose name already exists
(ignoring case) are skipped and reported. An invalid entry stops the run.

Example:
  hardctl seed seed.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := readSeedFile(args[0])
			if err != nil {
				return err
			}
			report, err := c.mod.Seed(cmd.Context(), entries)
			if werr := writeJSON(cmd.OutOrStdout(), report); werr != nil && err == nil {
				err = werr
			}
			return err
		},
	}
}

// pendingItem is the JSON shape printed by `hardctl pending`.
type pendingItem struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	IsHalf    bool    `json:"is_half"`
	Weight    float64 `json:"weight"`
	CreatedAt string  `json:"created_at"`
}

func toPendingItem(it *models.Item) pendingItem {
	return pendingItem{
		ID:        it.ID,
		Name:      it.Name.String(),
		Category:  string(it.Category),
		IsHalf:    it.IsHalf,
		Weight:    it.Weight,
		CreatedAt: it.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

type seedEntry struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	IsHalf   bool     `json:"is_half"`
	Weight   *float64 `json:"weight"`
}

func readSeedFile(path string) ([]domainsvcs.Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var entries []seedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	out := make([]domainsvcs.Candidate, len(entries))
	for i, e := range entries {
		out[i] = domainsvcs.Candidate{Name: e.Name, Category: e.Category, IsHalf: e.IsHalf, Weight: e.Weight}
	}
	return out, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
