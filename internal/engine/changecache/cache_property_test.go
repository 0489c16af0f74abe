//go:build property

package changecache_test

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.trai.ch/esb/internal/engine/changecache"
)

func TestWhenChangedProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("task runs exactly once per distinct consecutive content", prop.ForAll(
		func(contents []string) bool {
			cache := changecache.New()
			runs := 0
			expected := 0
			for i, content := range contents {
				if i == 0 || contents[i-1] != content {
					expected++
				}
				_, err := cache.WhenChanged(context.Background(), "key", content, func(context.Context) error {
					runs++
					return nil
				})
				if err != nil {
					return false
				}
			}
			return runs == expected
		},
		gen.SliceOf(gen.OneConstOf("a", "b", "c")),
	))

	properties.Property("failing task never updates the digest", prop.ForAll(
		func(content string, attempts int) bool {
			cache := changecache.New()
			for range attempts {
				ran, _ := cache.WhenChanged(context.Background(), "key", content, func(context.Context) error {
					return context.Canceled
				})
				if !ran {
					return false
				}
			}
			_, stored := cache.Lookup("key")
			return !stored
		},
		gen.AnyString(),
		gen.IntRange(1, 5),
	))

	properties.TestingRun(t)
}
