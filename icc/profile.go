package icc

import (
	"bytes"
	"fmt"
	"os"
)

var _ = fmt.Println

type Profile struct {
	Header   Header
	TagTable TagTable
}

func (p *Profile) Description() (string, error) {
	return p.TagTable.getProfileDescription()
}

func (p *Profile) DeviceManufacturerDescription() (string, error) {
	return p.TagTable.getDeviceManufacturerDescription()
}

func (p *Profile) DeviceModelDescription() (string, error) {
	return p.TagTable.getDeviceModelDescription()
}

// TagSize returns the size in bytes of the tag element with the specified
// signature.
func (p *Profile) TagSize(sig Signature) (int, error) {
	data, ok := p.TagTable.entries[sig]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrNoSuchTag, sig)
	}
	return len(data), nil
}

// ReadTag copies the tag element with the specified signature into dst,
// returning the number of bytes copied.
func (p *Profile) ReadTag(sig Signature, dst []byte) (int, error) {
	data, ok := p.TagTable.entries[sig]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrNoSuchTag, sig)
	}
	return copy(dst, data), nil
}

// Close releases the profile. Profiles are fully memory resident so this
// never fails.
func (p *Profile) Close() error { return nil }

func newProfile() *Profile {
	return &Profile{
		TagTable: emptyTagTable(),
	}
}

func DecodeProfile(data []byte) (*Profile, error) {
	return NewProfileReader(bytes.NewReader(data)).ReadProfile()
}

func ReadProfileFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := DecodeProfile(data)
	if err != nil {
		return nil, fmt.Errorf("failed to read ICC profile from %s: %w", path, err)
	}
	return p, nil
}
