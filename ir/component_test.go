package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type noopPrim struct{}

func (noopPrim) Commit(PortView) {}

func TestAllCellsIncludesSignatureOnlyWhenItCarriesAPrimitive(t *testing.T) {
	ordinary := NewCell("r", noopPrim{}, &Port{Name: "in"})
	comp := &Component{Cells: []*Cell{ordinary}}
	assert.Equal(t, []*Cell{ordinary}, comp.AllCells())

	sigPrim := NewCell("this", noopPrim{}, &Port{Name: "clk"})
	comp.Signature = sigPrim
	assert.Equal(t, []*Cell{sigPrim, ordinary}, comp.AllCells())
}

func TestAllCellsExcludesABoundarySignatureWithNoPrimitiveState(t *testing.T) {
	sig := NewCell("this", nil, &Port{Name: "x"})
	comp := &Component{Signature: sig}
	assert.Empty(t, comp.AllCells())
}

func TestInputPortSetOnlyIncludesInputDirectionSignaturePorts(t *testing.T) {
	x := &Port{Name: "x", Direction: Input}
	out := &Port{Name: "out", Direction: Output}
	comp := &Component{Signature: NewCell("this", nil, x, out)}

	set := comp.InputPortSet()
	assert.True(t, set[x])
	assert.False(t, set[out])
}

func TestInputPortSetIsEmptyWithNoSignature(t *testing.T) {
	comp := &Component{}
	assert.Empty(t, comp.InputPortSet())
}
