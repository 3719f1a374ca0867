// Package clients provides a factory for collaborator clients.
package clients

import (
	"github.com/SBianucci/DevSyncAI/config"
	"github.com/SBianucci/DevSyncAI/internal/clients/ai"
	"github.com/SBianucci/DevSyncAI/internal/clients/github"
	"github.com/SBianucci/DevSyncAI/internal/clients/jira"

	"go.uber.org/zap"
)

// Clients aggregates all external collaborators.
type Clients struct {
	Tracker   IssueTracker
	Source    SourceHost
	Generator TextGenerator
}

// New constructs all collaborator clients from configuration.
func New(log *zap.SugaredLogger, cfg *config.Config) *Clients {
	return &Clients{
		Tracker:   jira.New(log.Named("client.jira"), cfg.Jira),
		Source:    github.New(log.Named("client.github"), cfg.GitHub),
		Generator: ai.New(log.Named("client.ai"), cfg.AI),
	}
}

type configurable interface {
	IsConfigured() bool
}

// Health reports per-collaborator readiness for the health endpoint.
func (c *Clients) Health() map[string]string {
	status := map[string]string{}
	for name, client := range map[string]any{
		"jira":   c.Tracker,
		"github": c.Source,
		"ai":     c.Generator,
	} {
		status[name] = "ok"
		if cc, ok := client.(configurable); ok && !cc.IsConfigured() {
			status[name] = "unconfigured"
		}
	}
	return status
}
