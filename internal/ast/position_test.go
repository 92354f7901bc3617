package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanApply(t *testing.T) {
	source := "entity Player = ;\nfn größe = x y\n"

	tests := []struct {
		name string
		span Span
		want string
	}{
		{"single token", SpanWithWidth(Position{Line: 1, Column: 17}, 1), ";"},
		{"stops at whitespace", SpanWithWidth(Position{Line: 1, Column: 8}, 10), "Player"},
		{"unicode columns", SpanWithWidth(Position{Line: 2, Column: 4}, 5), "größe"},
		{"multi line", Span{Start: Position{Line: 1, Column: 15}, End: Position{Line: 2, Column: 3}}, "= ;\nfn"},
		{"line out of range", SpanWithWidth(Position{Line: 9, Column: 1}, 1), ""},
		{"end of file", EOFSpan, "<EOF>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.span.Apply(source))
		})
	}
}

func TestPosition(t *testing.T) {
	assert.True(t, EOFPosition.IsEOF())
	assert.False(t, StartPosition().IsEOF())
	assert.Equal(t, "EOF", EOFPosition.String())
	assert.Equal(t, "3:7", Position{Line: 3, Column: 7}.String())
	assert.Equal(t, Position{Line: 2, Column: 5}, Position{Line: 2, Column: 1}.ExtendColumnBy(4))
	assert.Equal(t, "Span(1:1..1:4)", SpanWithWidth(StartPosition(), 3).String())
}

func TestStringLitSpan(t *testing.T) {
	lit := StringLit{Value: "km", Pos: Position{Line: 1, Column: 14}}
	assert.Equal(t, SpanWithWidth(Position{Line: 1, Column: 13}, 4), lit.Span())
	assert.Equal(t, `"km"`, lit.String())
}
