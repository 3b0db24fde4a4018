package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHead_SetIsIdempotentUpsert(t *testing.T) {
	h := NewHead("x").Description("first").Canonical("https://a.de/")
	h.Description("second").Description("second")

	tags := h.Tags()
	require.Len(t, tags, 2)
	assert.Equal(t, `meta[name="description"]`, tags[0].Key)
	assert.Equal(t, "second", tags[0].Value)
	assert.Equal(t, `link[rel="canonical"]`, tags[1].Key)
}

func TestForRoute_Refer(t *testing.T) {
	h := ForRoute("https://breakouttalents.de", "/refer")

	assert.Equal(t, "Refer Talent – Earn €500 | BreakoutTalents (AI Headhunter)", h.Title)
	canonical, ok := h.Lookup(`link[rel="canonical"]`)
	require.True(t, ok)
	assert.Equal(t, "https://breakouttalents.de/refer", canonical)

	ogURL, ok := h.Lookup(`meta[property="og:url"]`)
	require.True(t, ok)
	assert.Equal(t, canonical, ogURL)
}

func TestForRoute_ApplyHasNoOpenGraph(t *testing.T) {
	h := ForRoute("https://breakouttalents.de", "/apply")
	_, ok := h.Lookup(`meta[property="og:title"]`)
	assert.False(t, ok)
	assert.Len(t, h.Tags(), 2)
}

func TestForRoute_UnknownPathUsesLanding(t *testing.T) {
	h := ForRoute("https://breakouttalents.de", "/jobs")
	assert.Equal(t, Pages["/"].Title, h.Title)
	canonical, _ := h.Lookup(`link[rel="canonical"]`)
	assert.Equal(t, "https://breakouttalents.de/jobs", canonical)
}

func TestPaths(t *testing.T) {
	assert.Equal(t, []string{"/", "/apply", "/privacy", "/refer"}, Paths())
}
