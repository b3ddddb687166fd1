package models

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCategorySlug(t *testing.T) {
	assert.Equal(t, "garden-design", CategorySlug("Garden Design"))
	assert.Equal(t, "diseno-de-jardines", CategorySlug("Diseño de Jardines"))
	assert.Equal(t, "riego-automatico", CategorySlug("  Riego   Automático "))
}

func TestProjectSlugCarriesTimestampSuffix(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	slug := ProjectSlug("Backyard Renovation", now)

	assert.True(t, strings.HasPrefix(slug, "backyard-renovation-"))

	suffix := strings.TrimPrefix(slug, "backyard-renovation-")
	millis, err := strconv.ParseInt(suffix, 36, 64)
	assert.NoError(t, err)
	assert.Equal(t, now.UnixMilli(), millis)
}

func TestProjectSlugDistinguishesRepeatedTitles(t *testing.T) {
	first := ProjectSlug("Patio", time.UnixMilli(1700000000000))
	second := ProjectSlug("Patio", time.UnixMilli(1700000000001))
	assert.NotEqual(t, first, second)
}
