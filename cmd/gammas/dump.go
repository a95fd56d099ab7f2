package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/kovidgoyal/gammas"
	"github.com/kovidgoyal/gammas/display"
)

func dump_curves(w io.Writer, d display.Display, m gammas.Mode, c *gammas.Curves) error {
	fmt.Fprintf(w, "# display %d (%s): %s\n", d.ID, d.Name, m.Title())
	if c.Label != "" {
		fmt.Fprintf(w, "# %s\n", c.Label)
	}
	fmt.Fprintf(w, "# gamma: %v %v %v max: %v %v %v\n", c.Gamma[0], c.Gamma[1], c.Gamma[2], c.Max[0], c.Max[1], c.Max[2])
	if c.Overflowed() {
		fmt.Fprintf(w, "# table of %d entries is too large to show\n", c.Count)
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "index\tred\tgreen\tblue\t")
	for i := range c.Count {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t\n", i, c.Sample(0, i), c.Sample(1, i), c.Sample(2, i))
	}
	return tw.Flush()
}

func dump(w io.Writer, p display.Provider, displays []display.Display, modes []gammas.Mode) error {
	for _, d := range displays {
		for _, m := range modes {
			c, err := gammas.Load(p, d.ID, m)
			if err != nil {
				fmt.Fprintf(w, "# display %d (%s): %s: %s\n\n", d.ID, d.Name, m.Title(), err)
				continue
			}
			if err = dump_curves(w, d, m, c); err != nil {
				return err
			}
			fmt.Fprintln(w)
		}
	}
	return nil
}
