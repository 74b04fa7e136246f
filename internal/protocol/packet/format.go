package packet

import (
	"fmt"
	"io"
	"strings"
)

// Format writes the tree to w, one packet per line, children indented
// under their parent.
func Format(w io.Writer, p *Packet) error {
	return format(w, p, 0)
}

func format(w io.Writer, p *Packet, depth int) error {
	if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), p); err != nil {
		return err
	}
	if p == nil {
		return nil
	}
	for _, child := range p.Children {
		if err := format(w, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}
