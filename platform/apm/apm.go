package apm

import (
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/ribgsilva/note-app/sys"
)

// Start creates the new relic application from sys.Configs.NewRelic.
// When the agent is disabled it returns right away without waiting for a connection.
func Start() (*newrelic.Application, error) {
	cfg := sys.Configs.NewRelic
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.AppName),
		newrelic.ConfigLicense(cfg.Licence),
		newrelic.ConfigEnabled(cfg.Enabled),
	)
	if err != nil {
		return nil, err
	}
	if !cfg.Enabled {
		return app, nil
	}
	if err := app.WaitForConnection(cfg.ConnectionTimeout); err != nil {
		return nil, err
	}
	return app, nil
}
