package urlcleaner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/njchilds90/urlcleaner"
)

func TestTrackingPolicy_Resolve(t *testing.T) {
	allKnown := []string{
		"utm_source", "utm_medium", "utm_campaign", "utm_term",
		"utm_content", "utm_id",
		"gclid", "gclsrc", "dclid", "fbclid", "mscklid", "zanpid",
	}

	t.Run("zero value resolves every category", func(t *testing.T) {
		var p urlcleaner.TrackingPolicy
		assert.ElementsMatch(t, allKnown, p.Resolve())
	})

	t.Run("nil policy resolves like zero value", func(t *testing.T) {
		var p *urlcleaner.TrackingPolicy
		assert.ElementsMatch(t, allKnown, p.Resolve())
	})

	t.Run("allowed category contributes nothing", func(t *testing.T) {
		p := urlcleaner.TrackingPolicy{AllowUTM: true}
		resolved := p.Resolve()
		assert.NotContains(t, resolved, "utm_source")
		assert.NotContains(t, resolved, "utm_content")
		assert.Contains(t, resolved, "gclid")
		assert.Contains(t, resolved, "fbclid")
	})

	t.Run("single-name categories toggle independently", func(t *testing.T) {
		p := urlcleaner.TrackingPolicy{
			AllowGclid:   true,
			AllowFbclid:  true,
			AllowZanpid:  true,
			AllowMscklid: true,
			AllowDclid:   true,
			AllowGclsrc:  true,
		}
		assert.ElementsMatch(t, []string{
			"utm_source", "utm_medium", "utm_campaign", "utm_term",
			"utm_content", "utm_id",
		}, p.Resolve())
	})

	t.Run("everything allowed resolves empty", func(t *testing.T) {
		p := urlcleaner.TrackingPolicy{
			AllowUTM:     true,
			AllowGclid:   true,
			AllowGclsrc:  true,
			AllowDclid:   true,
			AllowFbclid:  true,
			AllowMscklid: true,
			AllowZanpid:  true,
		}
		assert.Empty(t, p.Resolve())
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		var p urlcleaner.TrackingPolicy
		assert.Equal(t, p.Resolve(), p.Resolve())
	})
}
