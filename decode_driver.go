package gammas

import (
	"fmt"

	"github.com/kovidgoyal/gammas/display"
)

type driverTableDecoder struct {
	src display.DriverTableProvider
}

func (driverTableDecoder) Mode() Mode { return DriverTable }
func (driverTableDecoder) decoder()   {}

func (d driverTableDecoder) Decode(id display.ID) (*Curves, error) {
	size, err := d.src.DriverTableSize(id)
	if err != nil {
		return nil, fmt.Errorf("display %d driver table: %w", id, err)
	}
	buf, err := allocate(size)
	if err != nil {
		return nil, fmt.Errorf("display %d driver table: %w", id, err)
	}
	n, err := d.src.ReadDriverTable(id, buf)
	if err != nil {
		return nil, fmt.Errorf("display %d driver table: %w", id, err)
	}
	c := &Curves{}
	if err = c.decode_gamma_body(buf[:n]); err != nil {
		return nil, fmt.Errorf("display %d driver table: %w", id, err)
	}
	return c, nil
}
