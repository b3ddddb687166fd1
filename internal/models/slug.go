package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gosimple/slug"
)

// CategorySlug derives the URL-safe slug for a category name. Uniqueness is
// backed by the unique index on categories.slug; a clash surfaces as a
// conflict at write time.
func CategorySlug(name string) string {
	return slug.Make(name)
}

// ProjectSlug derives a project slug from its title with a base-36 timestamp
// suffix, so repeated titles never collide. Regenerated only on create or
// when the title changes.
func ProjectSlug(title string, now time.Time) string {
	return fmt.Sprintf("%s-%s", slug.Make(title), strconv.FormatInt(now.UnixMilli(), 36))
}
