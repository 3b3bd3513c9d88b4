package tests

import (
	"context"
	"testing"

	"github.com/aretw0/typecheck/pkg/ports"
)

// VerdictCacheContractTest is a reusable test suite that verifies if an adapter complies with ports.VerdictCache.
func VerdictCacheContractTest(t *testing.T, cache ports.VerdictCache) {
	t.Helper()
	ctx := context.Background()

	t.Run("Get_Missing", func(t *testing.T) {
		_, found, err := cache.Get(ctx, "contract:missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Error("expected no verdict for an unknown key")
		}
	})

	t.Run("Put_Get", func(t *testing.T) {
		for key, want := range map[string]bool{"contract:valid": true, "contract:invalid": false} {
			if err := cache.Put(ctx, key, want); err != nil {
				t.Fatalf("unexpected error storing %s: %v", key, err)
			}
			got, found, err := cache.Get(ctx, key)
			if err != nil {
				t.Fatalf("unexpected error loading %s: %v", key, err)
			}
			if !found {
				t.Fatalf("verdict for %s not found after Put", key)
			}
			if got != want {
				t.Errorf("verdict for %s = %v, want %v", key, got, want)
			}
		}
	})

	t.Run("Put_Overwrites", func(t *testing.T) {
		key := "contract:overwrite"
		if err := cache.Put(ctx, key, true); err != nil {
			t.Fatal(err)
		}
		if err := cache.Put(ctx, key, false); err != nil {
			t.Fatal(err)
		}
		got, found, err := cache.Get(ctx, key)
		if err != nil || !found {
			t.Fatalf("expected verdict, found=%v err=%v", found, err)
		}
		if got {
			t.Error("expected the latest verdict to win")
		}
	})
}
