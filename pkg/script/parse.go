package script

import (
	"strconv"

	"github.com/theapemachine/vimnav/pkg/errors"
)

/*
Parse builds a Message from its kind name and textual arguments, the way the
command line spells them: "scroll 0 25", "match ab", "show".
*/
func Parse(kind string, args ...string) (Message, error) {
	switch kind {
	case "scroll":
		if len(args) != 2 {
			return nil, errors.ErrUnknownMessage.WithMessagef("scroll takes dx and dy, got %d arguments", len(args))
		}

		dx, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, errors.ErrUnknownMessage.WithMessagef("invalid dx %q", args[0])
		}

		dy, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, errors.ErrUnknownMessage.WithMessagef("invalid dy %q", args[1])
		}

		return Scroll{DX: dx, DY: dy}, nil
	case "top":
		return ScrollToTop{}, nil
	case "end":
		return ScrollToEnd{}, nil
	case "show":
		return ShowLabels{}, nil
	case "hide":
		return HideLabels{}, nil
	case "match":
		if len(args) != 1 {
			return nil, errors.ErrUnknownMessage.WithMessagef("match takes one label, got %d arguments", len(args))
		}

		return MatchLabel{Text: args[0]}, nil
	}

	return nil, errors.ErrUnknownMessage.WithMessagef("unknown message kind %q", kind)
}
