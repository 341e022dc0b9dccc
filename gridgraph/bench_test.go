package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/rectmaze/builder"
	"github.com/katalvlaran/rectmaze/gridgraph"
)

func BenchmarkExtractGraph_Serpentine(b *testing.B) {
	m := builder.MustBuild(builder.Serpentine(512, 512))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g, _ := gridgraph.NewGrid(m.Cells)
		if _, err := gridgraph.ExtractGraph(g, m.Start, m.Goal); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExtractGraph_Random(b *testing.B) {
	m := builder.MustBuild(builder.Random(256, 256, 0.2), builder.WithSeed(42))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g, _ := gridgraph.NewGrid(m.Cells)
		_, _ = gridgraph.ExtractGraph(g, m.Start, m.Goal, gridgraph.WithCoverAll())
	}
}

func BenchmarkReachableFrom(b *testing.B) {
	m := builder.MustBuild(builder.Room(256, 256))
	g, _ := gridgraph.NewGrid(m.Cells)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ReachableFrom(m.Start)
	}
}
