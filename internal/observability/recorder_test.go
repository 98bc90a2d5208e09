package observability_test

import (
	"sync"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/catalog-inventory/services/internal/observability"
)

func TestRecorderCapturesLevelsAndFields(t *testing.T) {
	c := qt.New(t)

	rec := observability.NewRecorder()
	rec.Info("first", observability.F("k", 1))
	rec.Warn("second")

	c.Assert(rec.Entries(), qt.HasLen, 2)
	infos := rec.ByLevel("info")
	c.Assert(infos, qt.HasLen, 1)
	c.Assert(infos[0].Msg, qt.Equals, "first")
	c.Assert(infos[0].Fields, qt.DeepEquals, []observability.Field{observability.F("k", 1)})
}

func TestRecorderWithPrependsFixedFields(t *testing.T) {
	c := qt.New(t)

	rec := observability.NewRecorder()
	child := rec.With(observability.F("service", "inventory"))
	child.Error("boom", observability.F("productId", int64(7)))

	entries := rec.Entries()
	c.Assert(entries, qt.HasLen, 1)
	c.Assert(entries[0].Fields, qt.DeepEquals, []observability.Field{
		observability.F("service", "inventory"),
		observability.F("productId", int64(7)),
	})
}

// Parent and child log into the same slice; concurrent use must not lose or
// corrupt entries.
func TestRecorderConcurrentParentAndChild(t *testing.T) {
	c := qt.New(t)

	rec := observability.NewRecorder()
	child := rec.With(observability.F("scope", "child"))

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			rec.Info("parent")
		}()
		go func() {
			defer wg.Done()
			child.Warn("child")
		}()
	}
	wg.Wait()

	c.Assert(rec.Entries(), qt.HasLen, 2*n)
	c.Assert(rec.ByLevel("warn"), qt.HasLen, n)
}
