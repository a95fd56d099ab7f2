package icc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var ErrNoSuchTag = errors.New("no such tag in ICC profile")

const maxTagCount = 1024

type ProfileReader struct {
	reader io.Reader
}

type tagTableEntry struct {
	sig          Signature
	offset, size uint32
}

func NewProfileReader(r io.Reader) *ProfileReader {
	return &ProfileReader{reader: r}
}

func (pr *ProfileReader) readHeader(header *Header) error {
	var buf [HeaderSize]byte
	if _, err := io.ReadFull(pr.reader, buf[:]); err != nil {
		return err
	}
	return header.decode(buf[:])
}

func (pr *ProfileReader) readTagTable() ([]tagTableEntry, error) {
	var count uint32
	if err := binary.Read(pr.reader, binary.BigEndian, &count); err != nil {
		return nil, err
	}
	if count > maxTagCount {
		return nil, fmt.Errorf("tag count %d exceeds max allowed (%d)", count, maxTagCount)
	}
	raw := make([]uint32, 3*count)
	if err := binary.Read(pr.reader, binary.BigEndian, raw); err != nil {
		return nil, err
	}
	ans := make([]tagTableEntry, count)
	for i := range ans {
		ans[i] = tagTableEntry{sig: Signature(raw[3*i]), offset: raw[3*i+1], size: raw[3*i+2]}
	}
	return ans, nil
}

func (pr *ProfileReader) ReadProfile() (*Profile, error) {
	p := newProfile()
	if err := pr.readHeader(&p.Header); err != nil {
		return nil, err
	}
	entries, err := pr.readTagTable()
	if err != nil {
		return nil, err
	}
	body, err := io.ReadAll(pr.reader)
	if err != nil {
		return nil, err
	}
	// tag offsets are relative to the start of the profile
	base := uint64(HeaderSize + 4 + 12*len(entries))
	for _, e := range entries {
		start, end := uint64(e.offset), uint64(e.offset)+uint64(e.size)
		if start < base || end-base > uint64(len(body)) {
			return nil, fmt.Errorf("tag %v at offset %d with size %d lies outside the profile data", e.sig, e.offset, e.size)
		}
		p.TagTable.add(e.sig, body[start-base:end-base])
	}
	return p, nil
}
