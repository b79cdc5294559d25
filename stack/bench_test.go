// SPDX-License-Identifier: MIT
package stack_test

import (
	"testing"

	"github.com/katalvlaran/berreman/matrix"
	"github.com/katalvlaran/berreman/optics"
	"github.com/katalvlaran/berreman/stack"
)

var sinkStack []matrix.Mat4

func bragg(n int) []stack.Layer {
	hi := stack.Homogeneous{Thickness: 174, Material: optics.Index(2.23)}
	lo := stack.Homogeneous{Thickness: 264, Material: optics.Index(1.47)}

	return []stack.Layer{stack.Repeat{Period: []stack.Layer{hi, lo}, N: n}}
}

// BenchmarkRepeat composes a 1024-period mirror through binary powers.
func BenchmarkRepeat(b *testing.B) {
	lambda, kx := fixture(128, 0.2)
	layers := bragg(1024)
	c := stack.Composer{Kx: kx}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkStack, _ = c.Compose(layers, lambda)
	}
}

// BenchmarkTwisted composes a 50-slice twisted nematic cell.
func BenchmarkTwisted(b *testing.B) {
	lambda, kx := fixture(128, 0)
	layers := []stack.Layer{stack.Twisted(4330, 50, optics.Constant(optics.Uniaxial(1.5, 1.6, [3]float64{1, 0, 0})), 90)}
	c := stack.Composer{Kx: kx}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkStack, _ = c.Compose(layers, lambda)
	}
}
