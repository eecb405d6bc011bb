package bounds

import (
	"errors"
	"testing"

	"github.com/segmentio/chains/seq"
)

func TestBounds(t *testing.T) {
	tests := []struct {
		scenario string
		err      error
		want     error
	}{
		{scenario: "first element index", err: Element(0, 3)},
		{scenario: "last element index", err: Element(2, 3)},
		{scenario: "element index equal to size", err: Element(3, 3), want: seq.ErrOutOfRange},
		{scenario: "negative element index", err: Element(-1, 3), want: seq.ErrOutOfRange},
		{scenario: "element index in empty container", err: Element(0, 0), want: seq.ErrOutOfRange},
		{scenario: "position equal to size", err: Position(3, 3)},
		{scenario: "position in empty container", err: Position(0, 0)},
		{scenario: "position past size", err: Position(4, 3), want: seq.ErrOutOfRange},
		{scenario: "negative position", err: Position(-1, 3), want: seq.ErrOutOfRange},
		{scenario: "full range", err: Range(0, 3, 3)},
		{scenario: "empty range", err: Range(2, 2, 3)},
		{scenario: "reversed range", err: Range(2, 1, 3), want: seq.ErrInvalidRange},
		{scenario: "range starting past size", err: Range(4, 4, 3), want: seq.ErrOutOfRange},
		{scenario: "range stopping past size", err: Range(1, 4, 3), want: seq.ErrOutOfRange},
		{scenario: "non-empty container", err: NotEmpty(1)},
		{scenario: "empty container", err: NotEmpty(0), want: seq.ErrEmpty},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			if test.want == nil {
				if test.err != nil {
					t.Errorf("unexpected error: %v", test.err)
				}
			} else if !errors.Is(test.err, test.want) {
				t.Errorf("error mismatch: got=%v want=%v", test.err, test.want)
			}
		})
	}
}
