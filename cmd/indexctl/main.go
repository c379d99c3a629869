// Command indexctl manages the month-partitioned order search indexes and
// the read alias that fronts them.
//
// Usage:
//
//	indexctl ensure              create the current month index and point the
//	                             alias at it if the alias does not exist yet
//	indexctl rollover            create the current month index and move the
//	                             alias to it
//	indexctl status              show physical indexes, alias target and
//	                             document counts
//	indexctl drop -index NAME    drop a physical index (never the alias target
//	                             unless -force)
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kailas-cloud/ordex"
	"github.com/kailas-cloud/ordex/internal/config"
	logpkg "github.com/kailas-cloud/ordex/internal/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "indexctl:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return errors.New("missing command: ensure | rollover | status | drop")
	}
	command, args := args[0], args[1:]

	env := config.GetEnv()
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	client, err := ordex.New(
		ordex.WithAddrs(cfg.Database.Addrs...),
		ordex.WithRedisAuth(cfg.Database.Username, cfg.Database.Password),
		ordex.WithAlias(cfg.Search.Alias),
		ordex.WithLogger(logger),
		ordex.WithReadinessTimeout(time.Duration(cfg.Database.ReadinessTimeout)*time.Second),
	)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx := context.Background()
	indexes := client.Indexes()

	switch command {
	case "ensure":
		return indexes.Ensure(ctx)
	case "rollover":
		return indexes.Rollover(ctx)
	case "status":
		return status(ctx, indexes, cfg.Search.Alias)
	case "drop":
		fs := flag.NewFlagSet("drop", flag.ContinueOnError)
		name := fs.String("index", "", "physical index name to drop")
		force := fs.Bool("force", false, "allow dropping the alias target")
		if err := fs.Parse(args); err != nil {
			return err
		}
		return indexes.Drop(ctx, *name, *force)
	default:
		return fmt.Errorf("unknown command %q: ensure | rollover | status | drop", command)
	}
}

// status prints the alias target and every order index with its document count.
func status(ctx context.Context, indexes *ordex.IndexService, alias string) error {
	target, statuses, err := indexes.Status(ctx)
	if err != nil {
		return err
	}

	if target == "" {
		fmt.Printf("alias %s: (not set)\n", alias)
	} else {
		fmt.Printf("alias %s -> %s\n", alias, target)
	}

	for _, s := range statuses {
		marker := ""
		if s.AliasTarget {
			marker = " *"
		}
		fmt.Printf("%s\t%d docs%s\n", s.Name, s.Docs, marker)
	}
	return nil
}
