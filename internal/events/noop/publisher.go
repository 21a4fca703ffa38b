// Package noop discards events. It is wired when no brokers are configured
// and keeps callers free of nil checks.
package noop

import "github.com/mybank/ledgerd/internal/interfaces"

type Publisher struct{}

func (Publisher) Publish(string, any) error { return nil }

var _ interfaces.EventPublisher = Publisher{}
