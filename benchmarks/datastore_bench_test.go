package benchmarks

import (
	"strconv"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/comalice/statestack/datastore"
	"github.com/comalice/statestack/internal/production"
)

func BenchmarkDatastoreGet(b *testing.B) {
	s := datastore.New()
	s.Add("score", 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := datastore.Get[int](s, "score"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDatastoreParallel(b *testing.B) {
	s := datastore.New()
	keys := make([]string, 64)
	for i := range keys {
		keys[i] = "k" + strconv.Itoa(i)
		s.Add(keys[i], i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			key := keys[i%len(keys)]
			if i%8 == 0 {
				s.Update(key, i)
			} else {
				_, _ = s.Lookup(key)
			}
			i++
		}
	})
}

func BenchmarkSnapshotYAMLDecode(b *testing.B) {
	data := GenSnapshotYAML(32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var snap production.Snapshot
		if err := yaml.Unmarshal(data, &snap); err != nil {
			b.Fatal(err)
		}
	}
}
