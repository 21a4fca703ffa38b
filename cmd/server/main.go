// The server command runs the primary ledger process: the full account and
// transfer API plus the replication ingest/pull endpoints.
package main

import (
	"log"
	"net/http"

	"github.com/mybank/ledgerd/internal/config"
	"github.com/mybank/ledgerd/internal/events/kafka"
	"github.com/mybank/ledgerd/internal/events/noop"
	"github.com/mybank/ledgerd/internal/interfaces"
	"github.com/mybank/ledgerd/internal/ledger"
	"github.com/mybank/ledgerd/internal/server"
	"github.com/mybank/ledgerd/internal/storage/jsonfile"
	"github.com/mybank/ledgerd/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var store interfaces.DocumentStore
	if cfg.PostgresDSN != "" {
		pg, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()
		store = pg
	} else {
		store = jsonfile.NewStore(cfg.DataFile)
	}

	var publisher interfaces.EventPublisher = noop.Publisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kp := kafka.NewPublisher(cfg.KafkaBrokers)
		defer kp.Close()
		publisher = kp
	}

	svc := ledger.New(store, publisher, ledger.Credentials{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
	})
	if err := svc.EnsureAdmin(); err != nil {
		// A malformed document must stop the process here rather than let it
		// serve and truncate data on the first save.
		log.Fatal(err)
	}

	snapshots := jsonfile.NewSnapshotStore(cfg.SnapshotFile)
	srv := server.New(svc, snapshots)

	log.Println("ledger server listening on", cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, srv.Router()))
}
