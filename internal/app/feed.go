package app

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/five82/liftoff/internal/config"
	"github.com/five82/liftoff/internal/graphql"
	"github.com/five82/liftoff/internal/query"
	"github.com/five82/liftoff/internal/spacex"
	"github.com/five82/liftoff/internal/state"
)

// feed owns one binding per endpoint. comments is nil when no comments
// endpoint is configured.
type feed struct {
	launches *query.Binding[[]spacex.Launch]
	comments *query.Binding[[]spacex.Comment]
}

// newFeed builds an independent client and binding for each endpoint. When
// store is non-nil every transition is forwarded to it.
func newFeed(cfg config.Config, logger logrus.FieldLogger, store *state.Store) (*feed, error) {
	launchesFetch, err := graphql.New(cfg.Launches.URL, graphql.Config{
		Headers:  cfg.Launches.Headers,
		Timeout:  cfg.Timeout,
		RetryMax: cfg.RetryMax,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("launches client: %w", err)
	}

	launchOpts := query.Options[[]spacex.Launch]{Name: "launches", Logger: logger}
	if store != nil {
		launchOpts.OnChange = store.UpdateLaunches
	}
	f := &feed{launches: query.New(launchesFetch, spacex.DecodeLaunches, launchOpts)}

	if !cfg.Comments.Enabled() {
		return f, nil
	}

	commentsFetch, err := graphql.New(cfg.Comments.URL, graphql.Config{
		Headers:  cfg.Comments.Headers,
		Timeout:  cfg.Timeout,
		RetryMax: cfg.RetryMax,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("comments client: %w", err)
	}
	commentOpts := query.Options[[]spacex.Comment]{Name: "comments", Logger: logger}
	if store != nil {
		commentOpts.OnChange = store.UpdateComments
	}
	f.comments = query.New(commentsFetch, spacex.DecodeComments, commentOpts)
	return f, nil
}

func (f *feed) close() {
	f.launches.Close()
	if f.comments != nil {
		f.comments.Close()
	}
}
