package config

import (
	"github.com/solmsted/rippled/internal/core/XRPAmount"
	"github.com/solmsted/rippled/internal/core/amendment"
)

// Fees builds the reserve schedule the apply layer consults from this
// config's Reserve section.
func (c *Config) Fees() XRPAmount.Fees {
	return XRPAmount.Fees{
		Base:      XRPAmount.NewXRPAmount(c.Reserve.Base),
		Reserve:   XRPAmount.NewXRPAmount(c.Reserve.Reserve),
		Increment: XRPAmount.NewXRPAmount(c.Reserve.Increment),
	}
}

// Rules resolves this config's amendment name list into the feature-id
// set the apply layer checks.
func (c *Config) Rules() *amendment.Rules {
	ids := make([][32]byte, 0, len(c.Amendments))
	for _, name := range c.Amendments {
		if id, ok := amendment.Resolve(name); ok {
			ids = append(ids, id)
		}
	}
	return amendment.NewRules(ids...)
}
