package zug

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func TestComposedStringGolden(t *testing.T) {
	g := goldie.New(t)
	c := Comp(
		Named("lift", Constantly("base")),
		Method("Get"),
		Constantly(21),
	)
	g.Assert(t, "composed_string", []byte(c.String()))
}

func TestDetailedErrorGolden(t *testing.T) {
	g := goldie.New(t)
	c := Comp(
		Named("getter", Method("Get")),
		Named("lift", Constantly(21)),
	)
	_, err := c.Condense()
	require.Error(t, err)
	g.Assert(t, "detailed_error", []byte(DetailedError(err)))
}
