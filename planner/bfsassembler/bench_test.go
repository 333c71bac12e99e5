package bfsassembler

import (
	"testing"

	"github.com/voxelfab/nanofab/model"
	"github.com/voxelfab/nanofab/ncd"
)

// BenchmarkAssemble_SolidBlock measures Assemble planning a full n^3 solid
// block, the frontier-heavy end of the assembler's workload.
func BenchmarkAssemble_SolidBlock(b *testing.B) {
	const n = 6
	const r = 16
	target, err := model.NewMatrix(r)
	if err != nil {
		b.Fatal(err)
	}
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				if err := target.Set(ncd.Position{X: x, Y: y, Z: z}, model.Full); err != nil {
					b.Fatal(err)
				}
			}
		}
	}

	b.ReportAllocs()
	b.SetBytes(int64(n * n * n))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Assemble(target); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAssemble_SparseLayer measures Assemble planning a single sparse
// y=0 layer, the frontier-light end of the assembler's workload.
func BenchmarkAssemble_SparseLayer(b *testing.B) {
	const r = 16
	target, err := model.NewMatrix(r)
	if err != nil {
		b.Fatal(err)
	}
	for x := 0; x < r; x += 2 {
		for z := 0; z < r; z += 2 {
			if err := target.Set(ncd.Position{X: x, Y: 0, Z: z}, model.Full); err != nil {
				b.Fatal(err)
			}
		}
	}

	b.ReportAllocs()
	b.SetBytes(int64(r * r))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Assemble(target); err != nil {
			b.Fatal(err)
		}
	}
}
