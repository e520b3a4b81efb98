package debugs

import (
	"testing"

	"github.com/insomnimus/rainfuck/modes"
	"github.com/reusee/dscope"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "machine state", map[string]any{
			"ip":          3,
			"dp":          0,
			"reached_eof": false,
		})
	})
}
