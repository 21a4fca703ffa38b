// The mirror command runs the replication sync loop: pull the primary's
// snapshot once at startup, then push the locally cached snapshot to the
// primary on a fixed interval.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/mybank/ledgerd/internal/config"
	"github.com/mybank/ledgerd/internal/replication"
	"github.com/mybank/ledgerd/internal/storage/jsonfile"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	local := jsonfile.NewSnapshotStore(cfg.MirrorSnapshotFile)
	loop := replication.NewSyncLoop(local, cfg.PrimaryURL, cfg.SyncInterval, cfg.SyncTimeout)

	log.Printf("mirror syncing %s to %s every %s", cfg.MirrorSnapshotFile, cfg.PrimaryURL, cfg.SyncInterval)
	loop.Run(ctx)
	log.Println("mirror stopped")
}
