package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestWorkspace(t *testing.T) {
	w := NewWorkspace()
	assert.Nil(t, w.Diagnostics("file:///missing.calc"))

	w.Update("file:///b.calc", "1 +")
	w.Update("file:///a.calc", "1 + 1")
	assert.Equal(t, []string{"file:///a.calc", "file:///b.calc"}, w.URIs())

	assert.Empty(t, w.Diagnostics("file:///a.calc"))
	diags := w.Diagnostics("file:///b.calc")
	require.Len(t, diags, 1)
	assert.Equal(t, "file:///b.calc", diags[0].Pos.Filename)

	w.Update("file:///b.calc", "1 + 2")
	assert.Empty(t, w.Diagnostics("file:///b.calc"))

	w.Remove("file:///b.calc")
	_, ok := w.Text("file:///b.calc")
	assert.False(t, ok)
}

func TestToProtocolDiagnostics(t *testing.T) {
	diags := Check("doc.calc", "x = 1\nx + )")
	require.Len(t, diags, 1)

	out := toProtocolDiagnostics(diags)
	require.Len(t, out, 1)
	assert.Equal(t, protocol.Position{Line: 1, Character: 2}, out[0].Range.Start)
	assert.Equal(t, protocol.Position{Line: 1, Character: 5}, out[0].Range.End)
	require.NotNil(t, out[0].Severity)
	assert.Equal(t, protocol.DiagnosticSeverityError, *out[0].Severity)
	assert.Equal(t, diags[0].Message, out[0].Message)

	assert.NotNil(t, toProtocolDiagnostics(nil), "an empty list clears the client's diagnostics")
}
